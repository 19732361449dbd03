package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// MenuItem is one selectable mode with its record from the scores database.
type MenuItem struct {
	GameID    string
	Title     string
	HighScore int
	BestLines int
	Played    int
}

// menuChoice is how the menu was left.
type menuChoice int

const (
	choiceNone menuChoice = iota
	choicePlay
	choiceScores
	choiceQuit
)

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuCursor     = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	menuDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuBoxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 2)
)

// MenuKeyMap describes the menu bindings for the help line. Input itself
// goes through KeyMapper.MapKeyToMenuAction.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Scores key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp implements help.KeyMap.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scores, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Scores, k.Back, k.Quit},
	}
}

// DefaultMenuKeyMap returns the default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "w", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "s", "j"), key.WithHelp("↓/j", "down")),
		Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "play")),
		Scores: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "scores")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// MenuModel is the Bubble Tea model for the mode picker.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	keys      MenuKeyMap
	help      help.Model
	choice    menuChoice
}

// NewMenuModel lists every registered mode. A nil store shows no records.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	infos := registry.List()
	items := make([]MenuItem, 0, len(infos))
	for _, info := range infos {
		items = append(items, menuItem(store, info))
	}

	h := help.New()
	h.Width = cfg.ScreenW
	return MenuModel{
		items:     items,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		keys:      DefaultMenuKeyMap(),
		help:      h,
	}
}

func menuItem(store *storage.Store, info registry.GameInfo) MenuItem {
	item := MenuItem{GameID: info.ID, Title: info.Title}
	if store == nil {
		return item
	}
	if stats, err := store.GetGameStats(info.ID); err == nil {
		item.HighScore = stats.HighScore
		item.BestLines = stats.BestLines
		item.Played = stats.GamesCount
	}
	return item
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.choice = choiceQuit
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)
	case MenuActionDown:
		m.cursor = max(min(m.cursor+1, len(m.items)-1), 0)
	case MenuActionSelect:
		if len(m.items) > 0 {
			m.choice = choicePlay
			return m, tea.Quit
		}
	case MenuActionScoreboard:
		m.choice = choiceScores
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m MenuModel) View() string {
	if m.choice == choiceQuit {
		return ""
	}

	rows := make([]string, 0, len(m.items))
	for i, item := range m.items {
		record := "no games yet"
		if item.Played > 0 {
			record = fmt.Sprintf("best %d  lines %d  played %d", item.HighScore, item.BestLines, item.Played)
		}
		line := fmt.Sprintf("%-20s %s", item.Title, menuDimStyle.Render(record))
		if i == m.cursor {
			rows = append(rows, menuCursor.Render("▸ ")+line)
		} else {
			rows = append(rows, "  "+line)
		}
	}
	if len(rows) == 0 {
		rows = append(rows, menuDimStyle.Render("no modes registered"))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		menuTitleStyle.Render("B L O C K F A L L"),
		"",
		strings.Join(rows, "\n"),
	)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuBoxStyle.Render(body), m.config.ScreenW))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuDimStyle.Render(m.help.View(m.keys)), m.config.ScreenW))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen item, or nil if the menu was not left by
// picking a mode.
func (m MenuModel) Selected() *MenuItem {
	if m.choice != choicePlay || len(m.items) == 0 {
		return nil
	}
	item := m.items[m.cursor]
	return &item
}

// IsQuitting reports whether the user left the menu without a choice.
func (m MenuModel) IsQuitting() bool {
	return m.choice == choiceQuit
}

// WantsScoreboard reports whether the user asked for the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.choice == choiceScores
}

// Config returns the runtime config, updated by resizes.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers each line of text within width.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if w := lipgloss.Width(line); w < width {
			lines[i] = strings.Repeat(" ", (width-w)/2) + line
		}
	}
	return strings.Join(lines, "\n")
}

// MenuResult is what RunMenu returns to the command loop.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

func (m MenuModel) result() MenuResult {
	res := MenuResult{Config: m.config}
	switch {
	case m.WantsScoreboard():
		res.WantsScoreboard = true
	case m.Selected() != nil:
		res.GameID = m.Selected().GameID
	default:
		res.Quit = true
	}
	return res
}

// RunMenu shows the menu in the alternate screen until the user leaves it.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.result(), nil
}
