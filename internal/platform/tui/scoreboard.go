package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/m-orlov/tui-runner/internal/storage"
)

// boardLimit is how many entries the leaderboard shows.
const boardLimit = 10

type scoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Restart key.Binding
	Quit    key.Binding
}

func (k scoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Restart, k.Quit}
}

func (k scoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Restart, k.Quit}}
}

var scoreboardKeys = scoreboardKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Restart: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "run again"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

var (
	boardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)
	boardErrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// ScoreboardModel shows the top scores after a run.
type ScoreboardModel struct {
	table   table.Model
	help    help.Model
	keys    scoreboardKeyMap
	width   int
	height  int
	loadErr error
	empty   bool
}

// NewScoreboardModel loads the top scores and builds the board. A nil
// store yields an empty board rather than an error.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		help:   help.New(),
		keys:   scoreboardKeys,
		width:  width,
		height: height,
	}

	var entries []storage.ScoreEntry
	if store != nil {
		var err error
		entries, err = store.TopScores(boardLimit)
		if err != nil {
			m.loadErr = err
			return m
		}
	}
	m.empty = len(entries) == 0

	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Player", Width: storage.MaxNameLength},
		{Title: "Score", Width: 8},
		{Title: "Date", Width: 12},
	}

	rows := make([]table.Row, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			e.PlayerName,
			fmt.Sprintf("%d", e.Score),
			e.CreatedAt.Format("2006-01-02"),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(rows)+1, boardLimit+1)),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	m.table = t
	return m
}

// SetSize updates the board layout for a new terminal size.
func (m *ScoreboardModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
}

// Update handles table navigation.
func (m ScoreboardModel) Update(msg tea.Msg) (ScoreboardModel, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the leaderboard centered on screen.
func (m ScoreboardModel) View() string {
	var body string
	switch {
	case m.loadErr != nil:
		body = boardErrStyle.Render("could not load scores: " + m.loadErr.Error())
	case m.empty:
		body = hintStyle.Render("No scores yet. Be the first!")
	default:
		body = m.table.View()
	}

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		boardTitleStyle.Render("TOP SCORES"),
		body,
		"",
		m.help.View(m.keys),
	)

	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
}
