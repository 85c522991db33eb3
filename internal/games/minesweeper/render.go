package minesweeper

import (
	"fmt"

	"github.com/vovakirdan/sweepster/internal/board"
	"github.com/vovakirdan/sweepster/internal/core"
)

const (
	cellWidth   = 2 // a space and the cell symbol
	hudHeight   = 2
	hudMinWidth = 36
)

// Cell glyphs.
const (
	GlyphCovered   = '■'
	GlyphFlag      = '⚑'
	GlyphDetonated = '✹'
	GlyphMine      = '*'
	GlyphWrongFlag = 'x'
	GlyphZero      = ' '
)

var numberColors = [9]core.Color{
	1: core.ColorBrightBlue,
	2: core.ColorGreen,
	3: core.ColorBrightRed,
	4: core.ColorNavy,
	5: core.ColorMaroon,
	6: core.ColorTeal,
	7: core.ColorWhite,
	8: core.ColorGray,
}

// viewport maps the visible window of the board onto the screen.
type viewport struct {
	area    core.Rect // screen cells covered by board cells
	offRow  int
	offCol  int
	visRows int
	visCols int
}

// cellAt returns the board position drawn at screen point (x, y).
func (v viewport) cellAt(x, y int) (board.Position, bool) {
	if v.area.Empty() || !v.area.Contains(x, y) {
		return board.Position{}, false
	}
	return board.P(v.offRow+y-v.area.Y, v.offCol+(x-v.area.X)/cellWidth), true
}

// screenPos returns the screen point of a visible board position's symbol.
func (v viewport) screenPos(p board.Position) (x, y int, ok bool) {
	r, c := p.Row-v.offRow, p.Col-v.offCol
	if r < 0 || r >= v.visRows || c < 0 || c >= v.visCols {
		return 0, 0, false
	}
	return v.area.X + c*cellWidth + 1, v.area.Y + r, true
}

// Render draws the HUD and the visible part of the board.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.board == nil {
		g.view = viewport{}
		msg := "Cannot start a round"
		if g.err != nil {
			msg = g.err.Error()
		}
		dst.DrawTextCentered(dst.Height()/2, msg, core.Fg(core.ColorRed))
		return
	}

	if !g.layout(dst.Width(), dst.Height()) {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderFooter(dst)
}

// layout fits the board into a w x h screen, scrolling to keep the cursor
// visible. It reports false when not even one cell fits.
func (g *Game) layout(w, h int) bool {
	rows, cols := g.board.Rows(), g.board.Columns()

	// HUD, box borders and the footer line.
	visRows := min(rows, h-hudHeight-3)
	// Box borders and the trailing pad column.
	visCols := min(cols, (w-3)/cellWidth)
	if visRows < 1 || visCols < 1 {
		g.view = viewport{}
		return false
	}

	boxW := visCols*cellWidth + 3
	boxX := max((w-boxW)/2, 0)

	g.view = viewport{
		area:    core.NewRect(boxX+1, hudHeight+1, visCols*cellWidth, visRows),
		offRow:  core.Scroll(g.view.offRow, g.cursor.Row, visRows, rows),
		offCol:  core.Scroll(g.view.offCol, g.cursor.Col, visCols, cols),
		visRows: visRows,
		visCols: visCols,
	}
	return true
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.Plain)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.Plain)
}

func (g *Game) renderHUD(dst *core.Screen) {
	// The HUD spans the board box, widened to fit its longest line.
	box := g.boxRect()
	w := min(max(box.W, hudMinWidth), dst.Width())
	x := max(box.X-(w-box.W)/2, 0)

	dst.DrawStyledText(x, 0, g.Title(), core.Fg(core.ColorBrightWhite).With(core.AttrBold))
	counter := fmt.Sprintf("Mines: %3d  Time: %03d", g.board.MinesRemaining(), g.Seconds())
	dst.DrawText(max(x+w-len(counter), x), 0, counter)

	flag, flagStyle := onOff(g.policy.AutoFlag)
	reveal, revealStyle := onOff(g.policy.AutoReveal)
	dst.DrawText(x, 1, "Auto-flag:")
	dst.DrawStyledText(x+11, 1, flag, flagStyle)
	dst.DrawText(x+15, 1, "Auto-reveal:")
	dst.DrawStyledText(x+28, 1, reveal, revealStyle)
}

func onOff(on bool) (string, core.Style) {
	if on {
		return "on ", core.Fg(core.ColorGreen)
	}
	return "off", core.Fg(core.ColorGray)
}

func (g *Game) boxRect() core.Rect {
	a := g.view.area
	return core.NewRect(a.X-1, a.Y-1, a.W+3, a.H+2)
}

func (g *Game) renderBoard(dst *core.Screen) {
	v := g.view
	box := g.boxRect()
	frame := core.Fg(core.ColorGray)
	dst.DrawBox(box, frame)

	midX := box.X + box.W/2
	midY := box.Y + box.H/2
	if v.offRow > 0 {
		dst.SetStyled(midX, box.Y, '▲', frame)
	}
	if v.offRow+v.visRows < g.board.Rows() {
		dst.SetStyled(midX, box.Bottom()-1, '▼', frame)
	}
	if v.offCol > 0 {
		dst.SetStyled(box.X, midY, '◀', frame)
	}
	if v.offCol+v.visCols < g.board.Columns() {
		dst.SetStyled(box.Right()-1, midY, '▶', frame)
	}

	for r := range v.visRows {
		for c := range v.visCols {
			p := board.P(v.offRow+r, v.offCol+c)
			x, y, _ := v.screenPos(p)
			glyph, style := g.glyph(p)
			if p == g.cursor && g.status == StatusPlaying {
				style = style.With(core.AttrReverse)
			}
			dst.SetStyled(x, y, glyph, style)
		}
	}
}

// glyph picks the symbol and style of one cell. After a loss the hidden
// mines and the wrong flags are shown.
func (g *Game) glyph(p board.Position) (rune, core.Style) {
	view := g.board.Cell(p)
	lost := g.status == StatusLost

	switch view.State {
	case board.Detonated:
		return GlyphDetonated, core.Fg(core.ColorBrightRed).With(core.AttrBold)
	case board.Flagged:
		if lost {
			if mine, _ := g.board.Solution(p); !mine {
				return GlyphWrongFlag, core.Fg(core.ColorOrange)
			}
		}
		return GlyphFlag, core.Fg(core.ColorRed)
	case board.Empty:
		n := view.AdjacentMineCount
		if n == 0 {
			return GlyphZero, core.Plain
		}
		st := core.Fg(numberColors[n])
		if g.board.Satisfied(p) {
			st = st.With(core.AttrDim)
		}
		return rune('0' + n), st
	default:
		if lost {
			if mine, _ := g.board.Solution(p); mine {
				return GlyphMine, core.Fg(core.ColorRed)
			}
		}
		return GlyphCovered, core.Fg(core.ColorGray)
	}
}

func (g *Game) renderFooter(dst *core.Screen) {
	y := g.boxRect().Bottom()

	switch {
	case g.status == StatusWon:
		dst.DrawTextCentered(y, "Board cleared! Press R for a new board", core.Fg(core.ColorGreen).With(core.AttrBold))
	case g.status == StatusLost:
		dst.DrawTextCentered(y, "Boom! Press R for a new board", core.Fg(core.ColorBrightRed).With(core.AttrBold))
	case g.paused:
		dst.DrawTextCentered(y, "PAUSED", core.Fg(core.ColorYellow).With(core.AttrBold))
	}
}
