package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/velebak/tui-invaders/internal/config"
	"github.com/velebak/tui-invaders/internal/storage"
)

// MenuItem represents a selectable entry in the main menu.
type MenuItem int

const (
	MenuItemPlay MenuItem = iota
	MenuItemScores
	MenuItemQuit
)

// String returns the display label for a menu item.
func (i MenuItem) String() string {
	switch i {
	case MenuItemPlay:
		return "Play"
	case MenuItemScores:
		return "High Scores"
	case MenuItemQuit:
		return "Quit"
	default:
		return "?"
	}
}

// difficulties in cycling order for the left/right selector.
var difficulties = []config.Preset{config.PresetEasy, config.PresetNormal, config.PresetHard}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items      []MenuItem
	cursor     int
	diffCursor int
	width      int
	height     int
	store      *storage.Store
	keyMapper  *KeyMapper
	quitting   bool
	selected   *MenuItem // Set when user confirms an entry
}

// NewMenuModel creates a new menu model. The store is only used to show
// the current best score under the title, nil is fine.
func NewMenuModel(store *storage.Store, difficulty config.Preset) MenuModel {
	diffCursor := 1 // normal
	for i, d := range difficulties {
		if d == difficulty {
			diffCursor = i
		}
	}

	return MenuModel{
		items:      []MenuItem{MenuItemPlay, MenuItemScores, MenuItemQuit},
		cursor:     0,
		diffCursor: diffCursor,
		store:      store,
		keyMapper:  NewKeyMapper(),
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
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.diffCursor--
		if m.diffCursor < 0 {
			m.diffCursor = len(difficulties) - 1
		}

	case MenuActionRight:
		m.diffCursor = (m.diffCursor + 1) % len(difficulties)

	case MenuActionSelect:
		selected := m.items[m.cursor]
		if selected == MenuItemQuit {
			m.quitting = true
			return m, tea.Quit
		}
		m.selected = &selected
		return m, tea.Quit // Exit menu to start the chosen screen
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("120"))

	title := "  I N V A D E R S  "
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	if best, err := m.bestScore(); err == nil && best > 0 {
		b.WriteString(centerText(fmt.Sprintf("Best: %d", best), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item.String(), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	diff := fmt.Sprintf("< %s >", difficulties[m.diffCursor])
	b.WriteString(centerText("Difficulty: "+diff, m.width))
	b.WriteString("\n\n")

	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// bestScore fetches the stored high score for the header line.
func (m MenuModel) bestScore() (int, error) {
	if m.store == nil {
		return 0, fmt.Errorf("tui: no score store")
	}
	return m.store.HighScore()
}

// Selected returns the confirmed menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Difficulty returns the preset currently shown in the selector.
func (m MenuModel) Difficulty() config.Preset {
	return difficulties[m.diffCursor]
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Item       MenuItem
	Difficulty config.Preset
	Quit       bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, difficulty config.Preset) (MenuResult, error) {
	model := NewMenuModel(store, difficulty)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Difficulty: difficulty}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Difficulty: difficulty, Quit: true}, nil
	}

	result := MenuResult{Difficulty: m.Difficulty()}

	if m.IsQuitting() || m.Selected() == nil {
		result.Quit = true
		return result, nil
	}

	result.Item = *m.Selected()
	return result, nil
}
