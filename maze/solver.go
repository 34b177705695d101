package maze

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds = errors.New("position is out of the maze")
	ErrOnWall      = errors.New("position is on a wall")
)

// InvalidCoordinateError is returned by Solve and ShortestPath when start or
// end cannot be used as a path endpoint.
type InvalidCoordinateError struct {
	Which string // "start" or "end"
	Point Point
	Err   error // ErrOutOfBounds or ErrOnWall
}

func (e *InvalidCoordinateError) Error() string {
	return fmt.Sprintf("invalid %s (%d, %d): %s", e.Which, e.Point.X, e.Point.Y, e.Err)
}

func (e *InvalidCoordinateError) Unwrap() error {
	return e.Err
}

// Directions in exploration order: up, down, left, right.
// The order decides which path wins among equally short ones.
var Directions = [4]Point{
	{X: -1, Y: 0},
	{X: 1, Y: 0},
	{X: 0, Y: -1},
	{X: 0, Y: 1},
}

// Validate checks that p is inside g and not a wall.
func Validate(g *Grid, which string, p Point) error {
	if !g.InBounds(p) {
		return &InvalidCoordinateError{Which: which, Point: p, Err: ErrOutOfBounds}
	}
	if g.At(p) == Wall {
		return &InvalidCoordinateError{Which: which, Point: p, Err: ErrOnWall}
	}
	return nil
}

// Neighbors returns the non-wall cells reachable from p in one step.
// Coordinates wrap around the grid edges, so a cell in a single row or
// column grid may list itself.
func Neighbors(g *Grid, p Point) []Point {
	result := make([]Point, 0, len(Directions))
	for _, d := range Directions {
		n := Point{X: wrap(p.X+d.X, g.Rows), Y: wrap(p.Y+d.Y, g.Cols)}
		if g.At(n) != Wall {
			result = append(result, n)
		}
	}
	return result
}

// wrap maps v into [0, n) for any v, including negative values.
func wrap(v, n int) int {
	m := v % n
	if m < 0 {
		m += n
	}
	return m
}

// ShortestPath runs a breadth first search from start to end and returns
// the path including both endpoints. The grid is not modified.
func ShortestPath(g *Grid, start, end Point) ([]Point, bool, error) {
	if err := Validate(g, "start", start); err != nil {
		return nil, false, err
	}
	if err := Validate(g, "end", end); err != nil {
		return nil, false, err
	}

	visited := make([][]bool, g.Rows)
	parent := make([][]Point, g.Rows)
	for r := range visited {
		visited[r] = make([]bool, g.Cols)
		parent[r] = make([]Point, g.Cols)
	}

	queue := []Point{start}
	visited[start.X][start.Y] = true

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == end {
			return backtrack(parent, start, end), true, nil
		}

		for _, n := range Neighbors(g, current) {
			if visited[n.X][n.Y] {
				continue
			}
			visited[n.X][n.Y] = true
			parent[n.X][n.Y] = current
			queue = append(queue, n)
		}
	}

	return nil, false, nil
}

// backtrack follows parent links from end to start and returns the path in
// start to end order.
func backtrack(parent [][]Point, start, end Point) []Point {
	path := []Point{end}
	for p := end; p != start; {
		p = parent[p.X][p.Y]
		path = append(path, p)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Mark stamps a path onto g: the first point becomes Start, the last End and
// every point between them Path, whatever the cells held before.
// Cells outside the path keep their value, including marks of earlier solves.
func Mark(g *Grid, path []Point) {
	for i, p := range path {
		switch i {
		case 0:
			g.Set(p, Start)
		case len(path) - 1:
			g.Set(p, End)
		default:
			g.Set(p, Path)
		}
	}
}

// Solve finds the shortest path from start to end and marks it on g.
// It returns false and leaves g untouched when end cannot be reached.
func Solve(g *Grid, start, end Point) (bool, error) {
	path, found, err := ShortestPath(g, start, end)
	if err != nil || !found {
		return false, err
	}
	Mark(g, path)
	return true, nil
}
