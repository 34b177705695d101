package maze

// Cell is the content of a single maze square.
type Cell uint8

const (
	Empty Cell = iota // Empty is an open square.
	Wall              // Wall blocks movement.
	Start             // Start marks the first square of a solved path.
	End               // End marks the last square of a solved path.
	Path              // Path marks the interior squares of a solved path.
)

// Symbols used by the textual map format.
const (
	EmptySymbol = ' '
	WallSymbol  = '#'
	StartSymbol = 'i'
	EndSymbol   = 'O'
	PathSymbol  = '.'
)

// Symbol returns the character used to render the cell.
func (c Cell) Symbol() rune {
	switch c {
	case Wall:
		return WallSymbol
	case Start:
		return StartSymbol
	case End:
		return EndSymbol
	case Path:
		return PathSymbol
	default:
		return EmptySymbol
	}
}

func (c Cell) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Wall:
		return "Wall"
	case Start:
		return "Start"
	case End:
		return "End"
	case Path:
		return "Path"
	default:
		return "Unknown"
	}
}

// Point addresses a cell. X is the row index and Y the column index.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}
