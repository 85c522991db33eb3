package board

import "strings"

// Symbols used by String.
const (
	SymbolCovered   = '#'
	SymbolFlagged   = 'F'
	SymbolDetonated = '*'
	SymbolZero      = '.'
)

// Symbol returns the character String uses for a cell view.
func (v CellView) Symbol() rune {
	switch v.State {
	case Flagged:
		return SymbolFlagged
	case Detonated:
		return SymbolDetonated
	case Empty:
		if v.AdjacentMineCount == 0 {
			return SymbolZero
		}
		return rune('0' + v.AdjacentMineCount)
	default:
		return SymbolCovered
	}
}

// String renders the player's view of the board, one line per row.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.grid.cols + 1) * b.grid.rows)

	for r := range b.grid.rows {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range b.grid.cols {
			sb.WriteRune(b.Cell(P(r, c)).Symbol())
		}
	}
	return sb.String()
}
