package board

import "fmt"

// Position addresses a cell by zero-indexed row and column.
type Position struct {
	Row int
	Col int
}

// P is a convenience constructor for Position.
func P(row, col int) Position {
	return Position{Row: row, Col: col}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// CellState is the player-visible state of a cell.
//
//	Covered -> Empty | Detonated   (both terminal)
//	Covered <-> Flagged
type CellState uint8

const (
	Covered CellState = iota
	Empty
	Flagged
	Detonated
)

func (s CellState) String() string {
	switch s {
	case Covered:
		return "covered"
	case Empty:
		return "empty"
	case Flagged:
		return "flagged"
	case Detonated:
		return "detonated"
	default:
		return "unknown"
	}
}

// cell is one square of the grid. isMine and adjacent are written once, during
// mine placement.
type cell struct {
	state    CellState
	isMine   bool
	adjacent int
}

// CellView is a read-only snapshot of a cell handed to renderers.
// AdjacentMineCount is only reported for Empty cells.
type CellView struct {
	State             CellState
	AdjacentMineCount int
}

// Counts tallies cells by state.
type Counts struct {
	Covered   int
	Empty     int
	Flagged   int
	Detonated int
}
