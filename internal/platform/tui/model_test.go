package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tilemerge/internal/core"
	"github.com/vovakirdan/tilemerge/internal/game"
)

func testConfig(pause time.Duration) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1, MovePause: pause}
}

func newTestGameModel(t *testing.T, pause time.Duration) GameModel {
	t.Helper()
	g, err := game.New(4, 4, 1)
	if err != nil {
		t.Fatalf("game.New failed: %v", err)
	}
	return NewGameModel(g, testConfig(pause), nil)
}

func updateGame(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm, cmd
}

// firstChangingMove presses move keys until one changes the board.
func firstChangingMove(t *testing.T, m GameModel) (GameModel, tea.Cmd) {
	t.Helper()
	for _, r := range []rune{'a', 'd', 'w', 's'} {
		next, cmd := updateGame(t, m, runeKey(r))
		if next.Game().Moves() == 1 {
			return next, cmd
		}
		m = next
	}
	t.Fatal("no direction changed a fresh board")
	return m, nil
}

func TestMoveStartsSettle(t *testing.T) {
	m := newTestGameModel(t, time.Millisecond)

	m, cmd := firstChangingMove(t, m)
	if !m.Game().Settling() {
		t.Fatal("changed move did not start settling")
	}
	if cmd == nil {
		t.Fatal("changed move returned no settle command")
	}

	// Input is dropped while settling.
	before := m.Game().Cells()
	for _, r := range []rune{'a', 'd', 'w', 's'} {
		m, _ = updateGame(t, m, runeKey(r))
	}
	if m.Game().Moves() != 1 {
		t.Errorf("moves = %d while settling, want 1", m.Game().Moves())
	}
	after := m.Game().Cells()
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("board changed while settling")
		}
	}

	msg := cmd()
	if _, ok := msg.(SettleMsg); !ok {
		t.Fatalf("settle command produced %T", msg)
	}
	m, _ = updateGame(t, m, msg)
	if m.Game().Settling() {
		t.Error("SettleMsg did not end settling")
	}
}

func TestStaleSettleIgnored(t *testing.T) {
	m := newTestGameModel(t, time.Hour)
	m, _ = firstChangingMove(t, m)

	m, _ = updateGame(t, m, SettleMsg{Gen: m.gen - 1, game: m.game})
	if !m.Game().Settling() {
		t.Error("stale generation ended settling")
	}

	other, err := game.New(4, 4, 2)
	if err != nil {
		t.Fatalf("game.New failed: %v", err)
	}
	m, _ = updateGame(t, m, SettleMsg{Gen: m.gen, game: other})
	if !m.Game().Settling() {
		t.Error("settle for another game ended settling")
	}
}

func TestZeroPauseSettlesImmediately(t *testing.T) {
	m := newTestGameModel(t, 0)
	m, cmd := firstChangingMove(t, m)
	if m.Game().Settling() || cmd != nil {
		t.Error("zero pause should not leave a settle phase")
	}
}

func TestRestartCancelsSettle(t *testing.T) {
	m := newTestGameModel(t, time.Hour)
	m, _ = firstChangingMove(t, m)
	gen := m.gen

	m, _ = updateGame(t, m, runeKey('r'))
	if m.gen == gen {
		t.Error("restart did not bump the generation")
	}
	if m.Game().Settling() || m.Game().Moves() != 0 {
		t.Errorf("after restart: settling=%v moves=%d", m.Game().Settling(), m.Game().Moves())
	}
}

func TestBackAndQuit(t *testing.T) {
	m := newTestGameModel(t, core.DefaultMovePause)

	back, _ := updateGame(t, m, runeKey('m'))
	if !back.BackToMenu() {
		t.Error("m did not request the setup screen")
	}

	quit, cmd := updateGame(t, m, runeKey('q'))
	if !quit.IsQuitting() || cmd == nil {
		t.Error("q did not quit")
	}
	if quit.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestGameView(t *testing.T) {
	m := newTestGameModel(t, 0)
	view := m.View()
	for _, want := range []string{"Moves: 0", "new board", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSessionFlow(t *testing.T) {
	opts := SessionOptions{Initial: Selection{Width: 3, Height: 3}, AutoStart: true}
	m := NewSessionModel(testConfig(0), "tester", nil, opts)
	if !m.InGame() {
		t.Fatal("session with a start size should begin in game")
	}

	next, _ := m.Update(runeKey('m'))
	m = next.(SessionModel)
	if m.InGame() {
		t.Fatal("m should return to setup")
	}
	if !strings.Contains(m.View(), "T I L E M E R G E") {
		t.Errorf("setup view expected:\n%s", m.View())
	}
	if m.setup.widthInput.Value() != "3" {
		t.Errorf("setup width = %q, want last size 3", m.setup.widthInput.Value())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(SessionModel)
	if !m.InGame() {
		t.Error("enter on setup should start a game")
	}
}

func TestSessionOpensSetup(t *testing.T) {
	m := NewSessionModel(testConfig(0), "tester", nil, SessionOptions{Initial: Selection{Width: 6, Height: 4}})
	if m.InGame() {
		t.Fatal("session without AutoStart should open setup")
	}
	if m.setup.presetIdx < 0 || m.setup.presets[m.setup.presetIdx].ID != "wide" {
		t.Errorf("6x4 should preselect the wide preset, got index %d", m.setup.presetIdx)
	}
}

func TestSessionBadStart(t *testing.T) {
	opts := SessionOptions{Initial: Selection{Width: 1, Height: 1}, AutoStart: true}
	m := NewSessionModel(testConfig(0), "tester", nil, opts)
	if m.InGame() {
		t.Fatal("1x1 start should stay on setup")
	}
	if m.setup.Err() == "" {
		t.Error("setup should show why the start size failed")
	}
}
