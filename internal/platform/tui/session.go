package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilemerge/internal/core"
	"github.com/vovakirdan/tilemerge/internal/game"
)

// SessionModel manages the full session flow: setup -> game -> setup.
// This is the top-level model for both local and SSH sessions.
type SessionModel struct {
	config    core.RuntimeConfig
	username  string
	logger    *log.Logger
	setup     SetupModel
	last      Selection
	gameModel *GameModel
	inGame    bool
	quitting  bool
}

// SessionOptions controls how a session opens.
type SessionOptions struct {
	Initial   Selection // size prefilled on the setup screen
	AutoStart bool      // skip setup and play Initial right away
}

// NewSessionModel creates a new session model.
func NewSessionModel(cfg core.RuntimeConfig, username string, logger *log.Logger, opts SessionOptions) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Initial.Width == 0 || opts.Initial.Height == 0 {
		opts.Initial = Selection{Width: 4, Height: 4}
	}

	m := SessionModel{
		config:   cfg,
		username: username,
		logger:   logger,
		last:     opts.Initial,
		setup:    NewSetupModel(cfg.ScreenW, cfg.ScreenH, opts.Initial),
	}

	if opts.AutoStart {
		if err := m.startGame(opts.Initial); err != nil {
			m.setup.err = err.Error()
		}
	}
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.inGame {
		return m.gameModel.Init()
	}
	return m.setup.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.inGame && m.gameModel != nil {
		return m.updateGame(msg)
	}
	return m.updateSetup(msg)
}

// updateSetup handles updates when on the setup screen.
func (m SessionModel) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	newSetup, cmd := m.setup.Update(msg)
	if setupModel, ok := newSetup.(SetupModel); ok {
		m.setup = setupModel
	}

	if m.setup.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if selected := m.setup.Selected(); selected != nil {
		if err := m.startGame(*selected); err != nil {
			m.setup.selection = nil
			m.setup.err = err.Error()
			return m, nil
		}
		return m, m.gameModel.Init()
	}

	return m, cmd
}

// startGame creates a board of the selected size and switches to it.
func (m *SessionModel) startGame(sel Selection) error {
	g, err := game.NewFromConfig(sel.Width, sel.Height, m.config)
	if err != nil {
		return err
	}

	m.last = sel
	gameModel := NewGameModel(g, m.config, m.logger)
	m.gameModel = &gameModel
	m.inGame = true
	m.logger.Info("game started", "user", m.username, "width", sel.Width, "height", sel.Height)
	return nil
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	// Check if user left the game (back to setup)
	if m.gameModel.BackToMenu() {
		m.logger.Info("game left", "user", m.username, "moves", m.gameModel.Game().Moves())
		m.inGame = false
		m.gameModel = nil
		m.setup = NewSetupModel(m.config.ScreenW, m.config.ScreenH, m.last)
		return m, m.setup.Init()
	}

	// Check if user quit entirely
	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inGame && m.gameModel != nil {
		return m.gameModel.View()
	}

	return m.setup.View()
}

// InGame reports whether a board is being played.
func (m SessionModel) InGame() bool {
	return m.inGame
}
