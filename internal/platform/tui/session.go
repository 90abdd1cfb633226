package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/registry"
	"github.com/vovakirdan/tui-lander/internal/storage"
)

// SessionModel manages the session flow: flight <-> mission log.
// This is the top-level model for both local and SSH play.
type SessionModel struct {
	store      *storage.Store
	config     core.RuntimeConfig
	gameID     string
	gameModel  *Model
	scoreboard *ScoreboardModel
	inLog      bool
	quitting   bool
}

// NewSessionModel creates a new session model flying the given game.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, gameID string) (SessionModel, error) {
	game, err := registry.Create(gameID)
	if err != nil {
		return SessionModel{}, fmt.Errorf("cannot create game %q: %w", gameID, err)
	}

	gameModel := NewModel(game, store, cfg)
	return SessionModel{
		store:     store,
		config:    cfg,
		gameID:    gameID,
		gameModel: &gameModel,
	}, nil
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.gameModel.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Track terminal size globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.inLog && m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}
	return m.updateGame(msg)
}

// updateGame handles updates while flying.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	// Back from a finished or paused flight opens the mission log.
	if m.gameModel.BackToMenu() {
		sb := NewScoreboardModel(m.store, m.gameID, m.config.ScreenW, m.config.ScreenH)
		m.scoreboard = &sb
		m.inLog = true
		return m, m.scoreboard.Init()
	}

	return m, cmd
}

// updateScoreboard handles updates while the mission log is open.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to a fresh flight with new terrain.
	if m.scoreboard.IsGoingBack() {
		m.scoreboard = nil
		m.inLog = false

		game, err := registry.Create(m.gameID)
		if err != nil {
			m.quitting = true
			return m, tea.Quit
		}
		m.config.Seed = time.Now().UnixNano()
		gameModel := NewModel(game, m.store, m.config)
		m.gameModel = &gameModel
		return m, m.gameModel.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inLog && m.scoreboard != nil {
		return m.scoreboard.View()
	}
	return m.gameModel.View()
}

// Run starts an interactive session for the given game on the local
// terminal: flight first, the mission log on B/Esc, and back.
func Run(store *storage.Store, cfg core.RuntimeConfig, gameID string) error {
	model, err := NewSessionModel(store, cfg, gameID)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
