package board

import (
	"io"
	"slices"
	"testing"

	"github.com/charmbracelet/log"
)

// newFixture builds a board whose mines are already laid at the given
// positions, bypassing random placement and the mine-count limit.
func newFixture(t *testing.T, rows, cols int, mines []Position, policy AssistPolicy) *Board {
	t.Helper()

	b := &Board{
		grid:      newGrid(rows, cols),
		mineCount: len(mines),
		policy:    policy,
		logger:    log.New(io.Discard),
	}
	b.layMines(mines)
	return b
}

func sortPositions(ps []Position) []Position {
	out := slices.Clone(ps)
	slices.SortFunc(out, func(a, b Position) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})
	return out
}

func allPositions(b *Board) []Position {
	ps := make([]Position, 0, b.Rows()*b.Columns())
	for r := range b.Rows() {
		for c := range b.Columns() {
			ps = append(ps, P(r, c))
		}
	}
	return ps
}

func statesOf(b *Board) map[Position]CellState {
	m := make(map[Position]CellState)
	for _, p := range allPositions(b) {
		m[p] = b.Cell(p).State
	}
	return m
}
