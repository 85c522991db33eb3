package minesweeper

import "github.com/vovakirdan/sweepster/internal/board"

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick           uint64
	Round          int
	Status         Status
	Paused         bool
	Cursor         board.Position
	Policy         board.AssistPolicy
	MinesRemaining int
	Counts         board.Counts
	Board          string // player's view, see board.Board.String
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:   g.tick,
		Round:  g.round,
		Status: g.status,
		Paused: g.paused,
		Cursor: g.cursor,
		Policy: g.policy,
	}
	if g.board != nil {
		s.MinesRemaining = g.board.MinesRemaining()
		s.Counts = g.board.Counts()
		s.Board = g.board.String()
	}
	return s
}
