// Package minesweeper implements the minesweeper game on top of the board
// engine: cursor movement, mouse clicks, the round timer and win/loss
// detection.
package minesweeper

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sweepster/internal/board"
	"github.com/vovakirdan/sweepster/internal/config"
	"github.com/vovakirdan/sweepster/internal/core"
	"github.com/vovakirdan/sweepster/internal/registry"
)

// Status is the outcome of the current round.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Game implements the minesweeper game.
type Game struct {
	cfg    config.MinesweeperConfig
	logger *log.Logger

	runtime core.RuntimeConfig
	round   int
	board   *board.Board
	policy  board.AssistPolicy
	err     error // set when the board could not be built

	cursor  board.Position
	view    viewport
	status  Status
	paused  bool
	tick    uint64
	elapsed uint64 // ticks spent playing since the first reveal
}

// Package-level defaults for games built by the registry.
var (
	defaultsMu    sync.RWMutex
	defaultConfig = config.DefaultMinesweeperConfig()
	defaultLogger = log.New(io.Discard)
)

// Configure sets the configuration and logger used by games created
// through the registry.
func Configure(cfg config.MinesweeperConfig, logger *log.Logger) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()

	defaultConfig = cfg
	if logger != nil {
		defaultLogger = logger
	}
}

func init() {
	registry.Register("minesweeper", func() registry.Game {
		defaultsMu.RLock()
		defer defaultsMu.RUnlock()
		return New(defaultConfig, defaultLogger)
	})
}

// New creates a game. The board is built on Reset.
func New(cfg config.MinesweeperConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		cfg:    cfg,
		logger: logger,
		policy: cfg.Assist.Policy(),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "minesweeper"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Minesweeper"
}

// Reset starts a new round with the runtime's seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.round = 0
	g.tick = 0
	g.newRound()
}

// newRound builds a fresh board. Assist toggles carry over between rounds.
func (g *Game) newRound() {
	b := g.cfg.Board
	opts := []board.Option{
		board.WithLogger(g.logger),
		board.WithMaxPlacementAttempts(b.MaxPlacementAttempts),
	}
	if g.runtime.Seed != 0 {
		opts = append(opts, board.WithSeed(uint64(g.runtime.Seed)+uint64(g.round)))
	}

	g.board, g.err = board.New(b.Rows, b.Columns, b.Mines, g.policy, opts...)
	if g.err != nil {
		g.logger.Error("cannot create board", "err", g.err)
		return
	}

	g.cursor = board.P(b.Rows/2, b.Columns/2)
	g.view = viewport{}
	g.status = StatusPlaying
	g.paused = false
	g.elapsed = 0

	g.logger.Info("new board", "round", g.round,
		"rows", b.Rows, "columns", b.Columns, "mines", b.Mines)
}

// Step applies one frame of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.err != nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.round++
		g.newRound()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.status == StatusPlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionToggleAutoFlag) {
		g.policy.AutoFlag = !g.policy.AutoFlag
		g.applyPolicy()
	}
	if in.Has(core.ActionToggleAutoReveal) {
		g.policy.AutoReveal = !g.policy.AutoReveal
		g.applyPolicy()
	}

	if g.status != StatusPlaying {
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	switch {
	case in.Has(core.ActionReveal):
		g.Click(g.cursor, false)
	case in.Has(core.ActionFlag):
		g.Click(g.cursor, true)
	case in.Has(core.ActionChord):
		g.chord(g.cursor)
	}

	for _, c := range in.Clicks {
		p, ok := g.view.cellAt(c.X, c.Y)
		if !ok {
			continue
		}
		g.cursor = p
		g.Click(p, c.Secondary)
	}

	if g.status == StatusPlaying && g.board.MinesPlaced() {
		g.elapsed++
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(in core.InputFrame) {
	row, col := g.cursor.Row, g.cursor.Col
	switch {
	case in.Has(core.ActionUp):
		row--
	case in.Has(core.ActionDown):
		row++
	}
	switch {
	case in.Has(core.ActionLeft):
		col--
	case in.Has(core.ActionRight):
		col++
	}
	g.cursor = board.P(
		core.Clamp(row, 0, g.board.Rows()-1),
		core.Clamp(col, 0, g.board.Columns()-1),
	)
}

// Click applies a primary (reveal) or secondary (flag) press on pos.
// A primary press on a revealed number chords it. Presses after the round
// has ended or outside the board are ignored.
func (g *Game) Click(pos board.Position, secondary bool) {
	if g.board == nil || g.status != StatusPlaying || !g.board.Contains(pos) {
		return
	}

	switch {
	case secondary:
		g.board.ToggleFlag(pos)
		g.logger.Info("Flagged", "pos", pos,
			"state", g.board.Cell(pos).State, "remaining", g.board.MinesRemaining())
	case g.board.Cell(pos).State == board.Empty:
		g.chord(pos)
		return
	default:
		g.board.Expose(pos)
		g.logger.Info("Clicked", "pos", pos, "exposed", g.board.LastChain().Exposed)
	}

	g.afterMove()
}

func (g *Game) chord(pos board.Position) {
	g.board.Chord(pos)
	if g.board.LastChain().Visited > 0 {
		g.logger.Info("Chorded", "pos", pos, "exposed", g.board.LastChain().Exposed)
	}
	g.afterMove()
}

// afterMove logs assist activity and settles the round status.
func (g *Game) afterMove() {
	if chain := g.board.LastChain(); chain.Flagged > 0 {
		g.logger.Debug("assist chain", "visited", chain.Visited,
			"exposed", chain.Exposed, "flagged", chain.Flagged)
	}

	counts := g.board.Counts()
	switch {
	case counts.Detonated > 0:
		g.status = StatusLost
	case g.board.MinesPlaced() && counts.Empty == g.board.Rows()*g.board.Columns()-g.board.MineCount():
		g.status = StatusWon
	default:
		return
	}

	g.logger.Info("round over", "result", g.status, "round", g.round,
		"ticks", g.elapsed, "revealed", counts.Empty, "flags", counts.Flagged)
}

func (g *Game) applyPolicy() {
	if g.board != nil {
		g.board.SetPolicy(g.policy)
	}
	g.logger.Info("assist changed", "auto_flag", g.policy.AutoFlag, "auto_reveal", g.policy.AutoReveal)
}

// State returns the current game state. The score is the number of safe
// cells revealed.
func (g *Game) State() core.GameState {
	st := core.GameState{Paused: g.paused}
	if g.board == nil {
		st.GameOver = true
		return st
	}
	st.Score = g.board.Counts().Empty
	st.GameOver = g.status != StatusPlaying
	st.Won = g.status == StatusWon
	return st
}

// Board exposes the current round's board.
func (g *Game) Board() *board.Board {
	return g.board
}

// Cursor returns the cursor position.
func (g *Game) Cursor() board.Position {
	return g.cursor
}

// Status returns the round outcome so far.
func (g *Game) Status() Status {
	return g.status
}

// Err returns the error that prevented the board from being built, if any.
func (g *Game) Err() error {
	return g.err
}

// Seconds returns the round time in whole seconds.
func (g *Game) Seconds() int {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	return int(g.elapsed) / rate
}
