package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

const scoreboardLimit = 100

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Clear    key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.Clear, k.Back}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextMode, k.PrevMode},
		{k.Clear, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns the default scoreboard bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextMode: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next mode")),
		PrevMode: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev mode")),
		Clear:    key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "clear mode")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	boardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	boardDimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardWarnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
)

// ScoreboardModel shows the best runs of one mode at a time.
type ScoreboardModel struct {
	modes   []registry.GameInfo
	current int
	store   *storage.Store

	scores []storage.ScoreEntry
	stats  *storage.GameStats
	err    error

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width  int
	height int

	confirmClear bool
	quitting     bool
	goingBack    bool
}

// NewScoreboardModel creates a scoreboard over every registered mode.
// A nil store shows empty tables.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = newScoreTable(width, height)
	m.reload()
	return m
}

func newScoreTable(width, height int) table.Model {
	dateW := 12
	if width > 80 {
		dateW = min(width-68, 20)
	}
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 8},
		{Title: "Lines", Width: 6},
		{Title: "Pieces", Width: 7},
		{Title: "Run", Width: 9},
		{Title: "Date", Width: dateW},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height-11, 3)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// reload fetches scores and stats for the current mode.
func (m *ScoreboardModel) reload() {
	m.scores, m.stats, m.err = nil, nil, nil
	if m.store != nil && len(m.modes) > 0 {
		id := m.GameID()
		m.scores, m.err = m.store.TopScores(id, scoreboardLimit)
		if m.err == nil {
			m.stats, m.err = m.store.GetGameStats(id)
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(s.Score),
			strconv.Itoa(s.Lines),
			strconv.Itoa(s.Pieces),
			shortRunID(s.RunID),
			s.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func (m *ScoreboardModel) switchMode(delta int) {
	if len(m.modes) == 0 {
		return
	}
	m.current = (m.current + delta + len(m.modes)) % len(m.modes)
	m.confirmClear = false
	m.reload()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = newScoreTable(msg.Width, msg.Height)
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, m.keys.Clear) {
		m.confirmClear = false
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.goingBack = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextMode):
		m.switchMode(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevMode):
		m.switchMode(-1)
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		if m.store == nil || len(m.modes) == 0 {
			return m, nil
		}
		// First press arms, second press clears
		if !m.confirmClear {
			m.confirmClear = true
			return m, nil
		}
		m.confirmClear = false
		if err := m.store.ClearScores(m.GameID()); err != nil {
			m.err = err
			return m, nil
		}
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(boardTitleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(boardFrameStyle.Render(m.renderBody()), m.width))
	b.WriteString("\n")
	if line := m.statusLine(); line != "" {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText(boardDimStyle.Render(m.help.View(m.keys)), m.width))
	return b.String()
}

func (m ScoreboardModel) renderTabs() string {
	tabs := make([]string, len(m.modes))
	for i, mode := range m.modes {
		if i == m.current {
			tabs[i] = boardActiveTab.Render(mode.Title)
		} else {
			tabs[i] = boardTabStyle.Render(mode.Title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m ScoreboardModel) renderBody() string {
	if len(m.scores) == 0 {
		return boardDimStyle.Italic(true).Padding(1, 4).
			Render("No runs recorded yet.\nFinish a game to set a score.")
	}
	return m.table.View()
}

func (m ScoreboardModel) statusLine() string {
	switch {
	case m.err != nil:
		return boardWarnStyle.Render("error: " + m.err.Error())
	case m.confirmClear:
		return boardWarnStyle.Render("Press X again to delete every run of this mode")
	case m.stats != nil && m.stats.GamesCount > 0:
		return boardDimStyle.Render(fmt.Sprintf("%d games  avg %.0f  %d lines total  last %s",
			m.stats.GamesCount, m.stats.AvgScore, m.stats.TotalLines,
			m.stats.LastPlayed.Local().Format("Jan 02 15:04")))
	}
	return ""
}

// GameID returns the mode whose scores are shown.
func (m ScoreboardModel) GameID() string {
	if len(m.modes) == 0 {
		return ""
	}
	return m.modes[m.current].ID
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard and reports whether the user went back
// to the menu rather than quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
