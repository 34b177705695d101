/*
Package maze models rectangular wall/empty grids and finds shortest paths on them.

Movement wraps at the borders: leaving the grid through one edge re-enters it
from the opposite edge, so the grid behaves like a torus.

Grids are read from and written to a line based text format where ' ' is an
open cell and '#' a wall. Solved grids are rendered with 'i', 'O' and '.' for
the start, end and path cells; that rendering is output only and is not
accepted by Decode.
*/
package maze

import "strings"

// Grid is a rectangular array of cells. Every row holds exactly Cols cells.
type Grid struct {
	Rows  int
	Cols  int
	Cells [][]Cell
}

// New returns a rows x cols grid of empty cells.
func New(rows, cols int) *Grid {
	cells := make([][]Cell, rows)
	for i := range cells {
		cells[i] = make([]Cell, cols)
	}
	return &Grid{Rows: rows, Cols: cols, Cells: cells}
}

// InBounds reports whether p addresses a cell of the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Rows && p.Y >= 0 && p.Y < g.Cols
}

// At returns the cell at p. p must be in bounds.
func (g *Grid) At(p Point) Cell {
	return g.Cells[p.X][p.Y]
}

// Set stores c at p. p must be in bounds.
func (g *Grid) Set(p Point, c Cell) {
	g.Cells[p.X][p.Y] = c
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([][]Cell, len(g.Cells))
	for i, row := range g.Cells {
		cells[i] = append([]Cell(nil), row...)
	}
	return &Grid{Rows: g.Rows, Cols: g.Cols, Cells: cells}
}

// Equal reports whether both grids have the same size and cells.
// A nil grid only equals another nil grid.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.Rows != other.Rows || g.Cols != other.Cols {
		return false
	}
	for r := range g.Cells {
		for c := range g.Cells[r] {
			if g.Cells[r][c] != other.Cells[r][c] {
				return false
			}
		}
	}
	return true
}

// Count returns how many cells hold c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, row := range g.Cells {
		for _, cell := range row {
			if cell == c {
				n++
			}
		}
	}
	return n
}

// String renders the grid in the text format, see Encode.
func (g *Grid) String() string {
	return Encode(g)
}

// Encode renders g one row per line. Rows are separated by '\n' and the
// last row has no trailing line break.
func Encode(g *Grid) string {
	var sb strings.Builder
	sb.Grow(g.Rows * (g.Cols + 1))
	for r, row := range g.Cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			sb.WriteRune(cell.Symbol())
		}
	}
	return sb.String()
}
