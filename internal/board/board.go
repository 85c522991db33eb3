// Package board implements the minesweeper board engine: the cell grid,
// deferred mine placement, flood reveal, flags and the assist chains.
// It has no knowledge of rendering or input; callers drive it through
// Expose and ToggleFlag and re-read cells with Cell.
package board

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"
)

// AssistPolicy toggles the automatic flagging and revealing of logically
// certain cells.
type AssistPolicy struct {
	// AutoFlag flags the hidden neighbors of a revealed cell when their
	// number equals its mine count.
	AutoFlag bool `yaml:"auto_flag"`

	// AutoReveal exposes the covered neighbors of a satisfied cell.
	AutoReveal bool `yaml:"auto_reveal"`
}

// Board is one round of minesweeper. Its shape and mine count are fixed at
// construction; a new round needs a new Board.
//
// Board is not safe for concurrent use.
type Board struct {
	grid        grid
	mineCount   int
	minesPlaced bool
	policy      AssistPolicy
	last        ChainStats

	rng         *rand.Rand
	logger      *log.Logger
	maxAttempts int
}

// Option configures a Board.
type Option func(*Board)

// WithRand sets the random source used for mine placement.
func WithRand(r *rand.Rand) Option {
	return func(b *Board) {
		b.rng = r
	}
}

// WithSeed makes mine placement deterministic for the given seed.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// WithLogger sets the logger used for engine diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(b *Board) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithMaxPlacementAttempts caps the number of samples drawn while placing
// mines. Zero or negative restores the default.
func WithMaxPlacementAttempts(n int) Option {
	return func(b *Board) {
		b.maxAttempts = n
	}
}

// MaxMines returns the largest mine count a rows x columns board accepts.
// Every mine must fit outside the 3x3 safety zone of any first move.
func MaxMines(rows, columns int) int {
	if rows <= 0 || columns <= 0 {
		return 0
	}
	zone := min(rows, 3) * min(columns, 3)
	return rows*columns - zone
}

// New creates a board with every cell covered. Mines are placed lazily on
// the first Expose.
func New(rows, columns, mineCount int, policy AssistPolicy, opts ...Option) (*Board, error) {
	if rows <= 0 || columns <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, columns)
	}
	if mineCount < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMineCount, mineCount)
	}
	if limit := MaxMines(rows, columns); mineCount > limit {
		return nil, fmt.Errorf("%w: %d mines on %dx%d (max %d)",
			ErrTooManyMines, mineCount, rows, columns, limit)
	}

	b := &Board{
		grid:      newGrid(rows, columns),
		mineCount: mineCount,
		policy:    policy,
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.rng == nil {
		b.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return b, nil
}

// Rows returns the number of rows.
func (b *Board) Rows() int {
	return b.grid.rows
}

// Columns returns the number of columns.
func (b *Board) Columns() int {
	return b.grid.cols
}

// MineCount returns the number of mines the board holds once placed.
func (b *Board) MineCount() int {
	return b.mineCount
}

// MinesPlaced reports whether the first Expose has happened.
func (b *Board) MinesPlaced() bool {
	return b.minesPlaced
}

// Policy returns the current assist policy.
func (b *Board) Policy() AssistPolicy {
	return b.policy
}

// SetPolicy replaces the assist policy. It only affects later operations.
func (b *Board) SetPolicy(p AssistPolicy) {
	b.policy = p
}

// Contains reports whether p lies on the board.
func (b *Board) Contains(p Position) bool {
	return b.grid.contains(p)
}

// Cell returns a snapshot of the cell at p.
func (b *Board) Cell(p Position) CellView {
	b.mustContain("cell", p)
	c := b.grid.at(p)
	v := CellView{State: c.state}
	if c.state == Empty {
		v.AdjacentMineCount = c.adjacent
	}
	return v
}

// Solution returns the hidden contents of p: whether it is a mine and how
// many mines surround it. Intended for the end-of-round display; before
// placement it reports no mine.
func (b *Board) Solution(p Position) (mine bool, adjacent int) {
	b.mustContain("solution", p)
	c := b.grid.at(p)
	return c.isMine, c.adjacent
}

// MinesRemaining returns the mine count minus the number of flags.
// It goes negative when the player over-flags.
func (b *Board) MinesRemaining() int {
	return b.mineCount - b.Counts().Flagged
}

// Counts tallies every cell by state.
func (b *Board) Counts() Counts {
	var c Counts
	for i := range b.grid.cells {
		switch b.grid.cells[i].state {
		case Covered:
			c.Covered++
		case Empty:
			c.Empty++
		case Flagged:
			c.Flagged++
		case Detonated:
			c.Detonated++
		}
	}
	return c
}

func (b *Board) mustContain(op string, p Position) {
	if !b.grid.contains(p) {
		panic(ContractError{Op: op, Pos: p})
	}
}
