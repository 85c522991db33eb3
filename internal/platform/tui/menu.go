package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sweepster/internal/config"
)

// MenuItem is one selectable board size.
type MenuItem struct {
	Preset config.DifficultyPreset // empty for the configured board
	Board  config.BoardConfig
}

// Title returns the label shown in the menu.
func (i MenuItem) Title() string {
	name := "custom"
	if i.Preset != "" {
		name = string(i.Preset)
	}
	return fmt.Sprintf("%-13s %3d x %-3d %4d mines", name, i.Board.Rows, i.Board.Columns, i.Board.Mines)
}

type menuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func defaultMenuKeyMap() menuKeyMap {
	return menuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k", "w")),
		Down:   key.NewBinding(key.WithKeys("down", "j", "s")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

// MenuModel is the Bubble Tea model of the board size picker.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	width    int
	height   int
	keys     menuKeyMap
	theme    Theme
	quitting bool
	selected *MenuItem
}

// NewMenuModel lists the difficulty presets followed by the board from
// the loaded configuration.
func NewMenuModel(custom config.MinesweeperConfig, width, height int) MenuModel {
	items := make([]MenuItem, 0, len(config.Presets())+1)
	for _, p := range config.Presets() {
		cfg := custom
		//nolint:errcheck // Presets() only returns known presets
		config.ApplyPreset(&cfg, p)
		items = append(items, MenuItem{Preset: p, Board: cfg.Board})
	}
	items = append(items, MenuItem{Board: custom.Board})

	return MenuModel{
		items:  items,
		width:  width,
		height: height,
		keys:   defaultMenuKeyMap(),
		theme:  DefaultTheme(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		selected := m.items[m.cursor]
		m.selected = &selected
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	lines := []string{
		"",
		m.theme.MenuTitle.Render("S W E E P S T E R"),
		"",
		m.theme.MenuDescription.Render("Choose a board"),
		"",
	}
	for i, item := range m.items {
		if i == m.cursor {
			lines = append(lines, m.theme.MenuItemActive.Render("> "+item.Title()))
			continue
		}
		lines = append(lines, m.theme.MenuItemNormal.Render("  "+item.Title()))
	}
	lines = append(lines, "", m.theme.MenuControls.Render("↑/↓: navigate  •  enter: play  •  q: quit"))

	body := strings.Join(lines, "\n")
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body)
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// RunMenu shows the board picker and returns the chosen item, or nil when
// the user quit.
func RunMenu(custom config.MinesweeperConfig, width, height int) (*MenuItem, error) {
	p := tea.NewProgram(NewMenuModel(custom, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("tui: menu: %w", err)
	}
	m, ok := final.(MenuModel)
	if !ok {
		return nil, nil
	}
	return m.Selected(), nil
}
