package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/m-orlov/tui-runner/internal/core"
	"github.com/m-orlov/tui-runner/internal/registry"
	"github.com/m-orlov/tui-runner/internal/storage"
)

// bestScoreKey is the settings key remembering the best score this
// installation has seen, for the "new best" callout.
const bestScoreKey = "best_score_seen"

// phase is the session flow position: play, then submit, then board.
type phase int

const (
	phasePlaying phase = iota
	phaseNameEntry
	phaseBoard
)

var (
	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 3)
	dialogTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model for a full runner session:
// game -> score submission -> leaderboard -> restart.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keymap     *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState

	phase     phase
	nameInput textinput.Model
	board     ScoreboardModel
	saveErr   error
	newBest   bool

	// defaultName prefills the submission form (SSH username, or the
	// local OS user).
	defaultName string

	quitting bool
}

// NewModel creates a session model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, defaultName string) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.CharLimit = storage.MaxNameLength
	ti.Width = storage.MaxNameLength

	game.Reset(cfg)

	return Model{
		game:        game,
		screen:      core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:       store,
		config:      cfg,
		keymap:      NewKeyMapper(),
		inputFrame:  core.NewInputFrame(),
		nameInput:   ti,
		defaultName: defaultName,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey dispatches keyboard input by session phase.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.phase {
	case phasePlaying:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "ctrl+s":
			m.saveScreenshot()
			return m, nil
		}
		m.keymap.MapKeyToFrame(msg, &m.inputFrame)
		return m, nil

	case phaseNameEntry:
		// The form captures letters, so only non-typing keys act here.
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "esc":
			// Skip submission
			m.enterBoard()
			return m, nil
		case "enter":
			return m.submitScore()
		}
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd

	default: // phaseBoard
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "r":
			return m.restart()
		}
		var cmd tea.Cmd
		m.board, cmd = m.board.Update(msg)
		return m, cmd
	}
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.board.SetSize(msg.Width, msg.Height)

	// Mid-run resizes restart the run with the new dimensions.
	if m.phase == phasePlaying && !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick advances the simulation while a run is active.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.phase != phasePlaying {
		// Entry and board phases are purely event-driven.
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.GameOver {
		if m.store != nil && m.gameState.Score > 0 {
			m.beginNameEntry()
		} else {
			m.enterBoard()
		}
		return m, nil
	}

	return m, tickCmd(m.config.TickRate)
}

// beginNameEntry opens the score submission form.
func (m *Model) beginNameEntry() {
	m.phase = phaseNameEntry
	m.saveErr = nil
	m.nameInput.SetValue(m.defaultName)
	m.nameInput.CursorEnd()
	m.nameInput.Focus()
}

// submitScore validates and persists the submission. Validation errors
// keep the form open for correction.
func (m Model) submitScore() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.nameInput.Value())

	if _, err := m.store.SaveScore(name, m.gameState.Score); err != nil {
		m.saveErr = err
		return m, nil
	}

	m.trackBestScore()
	m.enterBoard()
	return m, nil
}

// trackBestScore updates the locally remembered best and flags a new
// record for the board view. Best-effort: settings failures are not
// worth interrupting the session for.
func (m *Model) trackBestScore() {
	if m.store == nil {
		return
	}
	prev, err := m.store.Setting(bestScoreKey, "0")
	if err != nil {
		return
	}
	best, _ := strconv.Atoi(prev)
	if m.gameState.Score > best {
		m.newBest = true
		//nolint:errcheck // Best-effort persistence
		m.store.SetSetting(bestScoreKey, strconv.Itoa(m.gameState.Score))
	}
}

// enterBoard loads and shows the leaderboard.
func (m *Model) enterBoard() {
	m.phase = phaseBoard
	m.board = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
}

// restart begins a fresh run with a new seed.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.phase = phasePlaying
	m.saveErr = nil
	m.newBest = false
	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".runner", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current phase to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.phase {
	case phaseNameEntry:
		return m.entryView()
	case phaseBoard:
		footer := hintStyle.Render("r: run again  •  q: quit")
		if m.newBest {
			footer = dialogTitleStyle.Render("NEW BEST!") + "\n" + footer
		}
		return m.board.View() + "\n" + footer
	default:
		m.game.Render(m.screen)
		return RenderScreen(m.screen)
	}
}

// entryView renders the score submission dialog centered on screen.
func (m Model) entryView() string {
	var b strings.Builder
	b.WriteString(dialogTitleStyle.Render("RUN OVER"))
	b.WriteString(fmt.Sprintf("\n\nScore: %d\n\n", m.gameState.Score))
	b.WriteString("Name for the leaderboard:\n")
	b.WriteString(m.nameInput.View())
	if m.saveErr != nil {
		b.WriteString("\n" + errorStyle.Render(m.saveErr.Error()))
	}
	b.WriteString("\n\n" + hintStyle.Render("enter: submit  •  esc: skip"))

	return lipgloss.Place(
		m.config.ScreenW, m.config.ScreenH,
		lipgloss.Center, lipgloss.Center,
		dialogStyle.Render(b.String()),
	)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, defaultName string) error {
	model := NewModel(game, store, cfg, defaultName)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
