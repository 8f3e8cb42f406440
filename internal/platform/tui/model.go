package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilemerge/internal/core"
	"github.com/vovakirdan/tilemerge/internal/game"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// GameModel is the Bubble Tea model for one board. It is event driven:
// there is no tick loop, only a one-shot settle delay after changed moves.
type GameModel struct {
	game       *game.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	logger     *log.Logger
	gen        int // bumped on every move, reset and menu exit
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model playing g.
func NewGameModel(g *game.Game, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := GameModel{
		game:      g,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
		logger:    logger,
	}
	m.help.Width = cfg.ScreenW
	m.layout()
	return m
}

// Init initializes the model.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil
	case SettleMsg:
		if msg.game == m.game && msg.Gen == m.gen {
			m.game.Settle()
		}
		return m, nil
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionBack:
		m.gen++
		m.game.Settle()
		m.backToMenu = true
		return m, nil
	case core.ActionRestart:
		m.gen++
		if err := m.game.Reset(); err != nil {
			m.logger.Error("reset failed", "error", err)
		}
		m.logger.Debug("board reset", "width", m.game.Width(), "height", m.game.Height())
		return m, nil
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	if action.IsMove() {
		return m.move(action)
	}
	return m, nil
}

// move applies one move. While a previous move is settling, input is dropped.
func (m GameModel) move(action core.Action) (tea.Model, tea.Cmd) {
	if m.game.Settling() {
		m.logger.Debug("move dropped while settling", "action", action)
		return m, nil
	}

	dir := DirectionFor(action)
	res := m.game.Move(dir)
	m.logger.Debug("move", "dir", dir, "changed", res.Changed, "merges", res.Merges)
	if !res.Changed {
		return m, nil
	}

	m.gen++
	if m.config.MovePause <= 0 {
		m.game.Settle()
		return m, nil
	}
	return m, settleCmd(m.config.MovePause, m.game, m.gen)
}

// helpLines returns how many rows the help bar takes.
func (m GameModel) helpLines() int {
	if m.help.ShowAll {
		n := 0
		for _, col := range m.keyMapper.Keys().FullHelp() {
			n = core.Max(n, len(col))
		}
		return n
	}
	return 1
}

// layout sizes the board area to leave room for the help bar.
func (m GameModel) layout() {
	h := core.Max(0, m.config.ScreenH-m.helpLines())
	m.screen.Resize(m.config.ScreenW, h)
	m.game.Resize(m.config.ScreenW, h)
}

// View renders the board and the help bar.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keyMapper.Keys())))
	return b.String()
}

// Game returns the game being played.
func (m GameModel) Game() *game.Game {
	return m.game
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to setup.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a local session in the current terminal.
func Run(cfg core.RuntimeConfig, opts SessionOptions, logger *log.Logger) error {
	model := NewSessionModel(cfg, "local", logger, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
