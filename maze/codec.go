package maze

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Decode errors. A *FormatError returned by Decode unwraps to one of these.
var (
	ErrEmptyMap      = errors.New("empty map")
	ErrEmptyRow      = errors.New("empty row")
	ErrRaggedRow     = errors.New("row length differs from the first row")
	ErrUnknownSymbol = errors.New("unknown symbol")
)

// FormatError describes why a map text could not be decoded.
type FormatError struct {
	Err    error // One of the Err* decode errors.
	Row    int   // Zero based row of the failure.
	Col    int   // Zero based column, only set for ErrUnknownSymbol.
	Symbol rune  // Offending character, only set for ErrUnknownSymbol.
	Want   int   // Expected row length, only set for ErrRaggedRow.
	Got    int   // Actual row length, only set for ErrRaggedRow.
}

func (e *FormatError) Error() string {
	switch {
	case errors.Is(e.Err, ErrUnknownSymbol):
		return fmt.Sprintf("%s %q at row %d, column %d", e.Err, e.Symbol, e.Row, e.Col)
	case errors.Is(e.Err, ErrRaggedRow):
		return fmt.Sprintf("%s: row %d has %d cells, want %d", e.Err, e.Row, e.Got, e.Want)
	case errors.Is(e.Err, ErrEmptyRow):
		return fmt.Sprintf("%s at row %d", e.Err, e.Row)
	default:
		return e.Err.Error()
	}
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Decode parses a map made of ' ' (empty) and '#' (wall) characters, one row
// per line. Lines may end with "\n" or "\r\n" and a single trailing line
// break is ignored. All rows must have the same length.
func Decode(text string) (*Grid, error) {
	lines := splitLines(text)
	if len(lines) == 0 {
		return nil, &FormatError{Err: ErrEmptyMap}
	}

	cols := utf8.RuneCountInString(lines[0])
	cells := make([][]Cell, len(lines))
	for r, line := range lines {
		n := utf8.RuneCountInString(line)
		if n == 0 {
			return nil, &FormatError{Err: ErrEmptyRow, Row: r}
		}
		if n != cols {
			return nil, &FormatError{Err: ErrRaggedRow, Row: r, Want: cols, Got: n}
		}

		row := make([]Cell, 0, cols)
		col := 0
		for _, ch := range line {
			cell, ok := decodeSymbol(ch)
			if !ok {
				return nil, &FormatError{Err: ErrUnknownSymbol, Row: r, Col: col, Symbol: ch}
			}
			row = append(row, cell)
			col++
		}
		cells[r] = row
	}

	return &Grid{Rows: len(lines), Cols: cols, Cells: cells}, nil
}

func decodeSymbol(ch rune) (Cell, bool) {
	switch ch {
	case EmptySymbol:
		return Empty, true
	case WallSymbol:
		return Wall, true
	default:
		return Empty, false
	}
}

// splitLines breaks text into lines the way a line reader would: the final
// line break does not start a new line and '\r' before '\n' is dropped.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
