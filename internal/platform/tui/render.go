package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sweepster/internal/core"
)

// colorCodes maps core.Color to ANSI 256-color codes.
var colorCodes = map[core.Color]string{
	core.ColorRed:         "1",
	core.ColorGreen:       "2",
	core.ColorYellow:      "3",
	core.ColorBlue:        "4",
	core.ColorMagenta:     "5",
	core.ColorCyan:        "6",
	core.ColorWhite:       "7",
	core.ColorBrightRed:   "9",
	core.ColorBrightBlue:  "12",
	core.ColorBrightWhite: "15",
	core.ColorOrange:      "208",
	core.ColorGray:        "245",
	core.ColorNavy:        "18",
	core.ColorMaroon:      "88",
	core.ColorTeal:        "30",
}

var (
	stylesMu sync.Mutex
	styles   = make(map[core.Style]lipgloss.Style)
)

// lipglossStyle converts a cell style, caching the result.
func lipglossStyle(st core.Style) lipgloss.Style {
	stylesMu.Lock()
	defer stylesMu.Unlock()

	if s, ok := styles[st]; ok {
		return s
	}

	s := lipgloss.NewStyle()
	if code, ok := colorCodes[st.Color]; ok {
		s = s.Foreground(lipgloss.Color(code))
	}
	if st.Attr.Has(core.AttrBold) {
		s = s.Bold(true)
	}
	if st.Attr.Has(core.AttrDim) {
		s = s.Faint(true)
	}
	if st.Attr.Has(core.AttrReverse) {
		s = s.Reverse(true)
	}
	styles[st] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same style share one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		x := 0
		for x < s.Width() {
			style := s.GetCell(x, y).Style

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Style != style {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if style == core.Plain {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(lipglossStyle(style).Render(run.String()))
		}
	}
	return sb.String()
}
