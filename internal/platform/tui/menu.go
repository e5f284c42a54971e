package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/chomp/internal/core"
	"github.com/vovakirdan/chomp/internal/storage"
)

// MenuItem is one playable entry: a game mode on a level.
type MenuItem struct {
	GameID  string
	LevelID string
	Title   string
	Detail  string // e.g. "28x31 builtin"
}

// menuKeyMap lists the menu bindings for the help bar. Input handling goes
// through KeyMapper.
type menuKeyMap struct {
	Move   key.Binding
	Select key.Binding
	Runs   key.Binding
	Quit   key.Binding
}

func (k menuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Select, k.Runs, k.Quit}
}

func (k menuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultMenuKeyMap() menuKeyMap {
	return menuKeyMap{
		Move:   key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "choose")),
		Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "play")),
		Runs:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "runs")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	stats     map[string]*storage.LevelStats
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	keys      menuKeyMap
	help      help.Model
	quitting  bool
	selected  *MenuItem
	openRuns  bool
}

// NewMenuModel creates a menu over items. Run statistics are read from
// store when it is non-nil.
func NewMenuModel(items []MenuItem, store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		keys:      defaultMenuKeyMap(),
		help:      help.New(),
	}

	if store != nil {
		stats, err := store.AllLevelStats()
		if err != nil {
			logger.Warn("cannot load level stats", "error", err)
		} else {
			m.stats = stats
		}
	}

	return m
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
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
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

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionRuns:
		m.openRuns = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("C H O M P"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pick a level", m.width))
	b.WriteString("\n\n")

	list := m.renderList()
	if panel := m.renderStats(); panel != "" {
		list = lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", panel)
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, list))
	b.WriteString("\n\n")

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) renderList() string {
	if len(m.items) == 0 {
		return "No levels found."
	}

	active := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	for i, item := range m.items {
		if i > 0 {
			b.WriteString("\n")
		}
		line := "  " + item.Title
		if i == m.cursor {
			line = active.Render("> " + item.Title)
		}
		b.WriteString(line)
		if item.Detail != "" {
			b.WriteString(dim.Render("  " + item.Detail))
		}
	}
	return b.String()
}

// renderStats shows the run log summary for the highlighted level.
func (m MenuModel) renderStats() string {
	if len(m.items) == 0 || m.stats == nil {
		return ""
	}

	item := m.items[m.cursor]
	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	st, ok := m.stats[item.LevelID]
	if !ok {
		return panel.Render("Not played yet")
	}
	return panel.Render(fmt.Sprintf(
		"Runs     %d\nTicks    %d\nAvg FPS  %.1f\nLongest  %s\nLast     %s",
		st.Runs, st.TotalTicks, st.AvgFPS,
		formatMillis(st.LongestMs), st.LastPlayed.Format("Jan 02 15:04"),
	))
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsRuns returns true if user asked for the run log.
func (m MenuModel) WantsRuns() bool {
	return m.openRuns
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// formatMillis renders a duration in ms as m:ss.
func formatMillis(ms int64) string {
	secs := ms / 1000
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Item      MenuItem
	Config    core.RuntimeConfig
	WantsRuns bool
	Quit      bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(items []MenuItem, store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(items, store, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsRuns():
		result.WantsRuns = true
	case m.Selected() != nil:
		result.Item = *m.Selected()
	default:
		result.Quit = true
	}

	return result, nil
}
