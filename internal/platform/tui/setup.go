package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tilemerge/internal/game"
	"github.com/vovakirdan/tilemerge/internal/registry"
)

// ErrBadSize is returned by ParseSize for unusable width/height text.
var ErrBadSize = errors.New("bad board size")

// Selection is the board size chosen on the setup screen.
type Selection struct {
	Width  int
	Height int
}

// ParseSize validates the width and height fields of the setup screen.
func ParseSize(widthText, heightText string) (Selection, error) {
	w, err := strconv.Atoi(strings.TrimSpace(widthText))
	if err != nil {
		return Selection{}, fmt.Errorf("width %q is not a number: %w", widthText, ErrBadSize)
	}
	h, err := strconv.Atoi(strings.TrimSpace(heightText))
	if err != nil {
		return Selection{}, fmt.Errorf("height %q is not a number: %w", heightText, ErrBadSize)
	}
	if game.ValidateSize(w, h) != nil {
		return Selection{}, fmt.Errorf("sides must be %d..%d with at least 2 cells: %w", game.MinSide, game.MaxSide, ErrBadSize)
	}
	return Selection{Width: w, Height: h}, nil
}

type setupField int

const (
	fieldPreset setupField = iota
	fieldWidth
	fieldHeight
	fieldStart
	fieldCount
)

var (
	setupTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	setupErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	setupHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	setupFocusStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
)

// SetupModel lets users pick a board size, from a preset or typed in.
type SetupModel struct {
	presets     []registry.Preset
	presetIdx   int // -1 when the inputs match no preset
	focus       setupField
	widthInput  textinput.Model
	heightInput textinput.Model
	err         string
	width       int
	height      int
	keyMapper   *KeyMapper
	selection   *Selection
	quitting    bool
}

// NewSetupModel creates a setup screen prefilled with the given size.
func NewSetupModel(width, height int, initial Selection) SetupModel {
	newInput := func(value int) textinput.Model {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 2
		ti.Width = 3
		ti.Placeholder = "4"
		ti.SetValue(strconv.Itoa(value))
		return ti
	}

	m := SetupModel{
		presets:     registry.List(),
		width:       width,
		height:      height,
		widthInput:  newInput(initial.Width),
		heightInput: newInput(initial.Height),
		keyMapper:   NewKeyMapper(),
	}
	m.syncPreset()
	return m
}

// Init initializes the model.
func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m.updateInputs(msg)
}

func (m SetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Inputs own printable keys, so only a few keys are global there.
	if m.focus == fieldWidth || m.focus == fieldHeight {
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "esc":
			m.quitting = true
			return m, tea.Quit
		case "up", "shift+tab":
			return m.moveFocus(-1)
		case "down", "tab":
			return m.moveFocus(1)
		case "enter":
			return m.submit()
		}
		m.err = ""
		updated, cmd := m.updateInputs(msg)
		updated.syncPreset()
		return updated, cmd
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		return m.moveFocus(-1)
	case MenuActionDown:
		return m.moveFocus(1)
	case MenuActionLeft:
		if m.focus == fieldPreset {
			m.cyclePreset(-1)
		}
	case MenuActionRight:
		if m.focus == fieldPreset {
			m.cyclePreset(1)
		}
	case MenuActionSelect:
		return m.submit()
	}
	return m, nil
}

func (m SetupModel) updateInputs(msg tea.Msg) (SetupModel, tea.Cmd) {
	var wCmd, hCmd tea.Cmd
	m.widthInput, wCmd = m.widthInput.Update(msg)
	m.heightInput, hCmd = m.heightInput.Update(msg)
	return m, tea.Batch(wCmd, hCmd)
}

func (m SetupModel) moveFocus(delta int) (tea.Model, tea.Cmd) {
	m.focus = setupField((int(m.focus) + delta + int(fieldCount)) % int(fieldCount))

	m.widthInput.Blur()
	m.heightInput.Blur()
	var cmd tea.Cmd
	switch m.focus {
	case fieldWidth:
		cmd = m.widthInput.Focus()
	case fieldHeight:
		cmd = m.heightInput.Focus()
	}
	return m, cmd
}

// cyclePreset steps through presets and copies the size into the inputs.
func (m *SetupModel) cyclePreset(delta int) {
	if len(m.presets) == 0 {
		return
	}
	idx := m.presetIdx + delta
	if m.presetIdx < 0 {
		idx = 0
		if delta < 0 {
			idx = len(m.presets) - 1
		}
	}
	idx = (idx + len(m.presets)) % len(m.presets)

	p := m.presets[idx]
	m.presetIdx = idx
	m.widthInput.SetValue(strconv.Itoa(p.Width))
	m.heightInput.SetValue(strconv.Itoa(p.Height))
	m.err = ""
}

// syncPreset points presetIdx at the preset matching the inputs, if any.
func (m *SetupModel) syncPreset() {
	m.presetIdx = -1
	sel, err := ParseSize(m.widthInput.Value(), m.heightInput.Value())
	if err != nil {
		return
	}
	for i, p := range m.presets {
		if p.Width == sel.Width && p.Height == sel.Height {
			m.presetIdx = i
			return
		}
	}
}

func (m SetupModel) submit() (tea.Model, tea.Cmd) {
	sel, err := ParseSize(m.widthInput.Value(), m.heightInput.Value())
	if err != nil {
		m.err = err.Error()
		return m, nil
	}
	m.err = ""
	m.selection = &sel
	return m, nil
}

// View renders the setup screen.
func (m SetupModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(setupTitleStyle.Render("T I L E M E R G E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose a board size:", m.width))
	b.WriteString("\n\n")

	presetName := "Custom"
	if m.presetIdx >= 0 {
		presetName = m.presets[m.presetIdx].Title
	}

	rows := []struct {
		field setupField
		text  string
	}{
		{fieldPreset, fmt.Sprintf("Preset:  < %-12s >", presetName)},
		{fieldWidth, "Width:   " + m.widthInput.View()},
		{fieldHeight, "Height:  " + m.heightInput.View()},
		{fieldStart, "[ START ]"},
	}

	for _, row := range rows {
		cursor := "  "
		text := row.text
		if row.field == m.focus {
			cursor = "> "
			if row.field == fieldPreset || row.field == fieldStart {
				text = setupFocusStyle.Render(text)
			}
		}
		b.WriteString(centerText(cursor+text, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.err != "" {
		b.WriteString(centerText(setupErrorStyle.Render(m.err), m.width))
	}
	b.WriteString("\n\n")

	controls := "Up/Down: Field  |  Left/Right: Preset  |  Enter: Start  |  Esc: Quit"
	b.WriteString(centerText(setupHintStyle.Render(controls), m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m SetupModel) Selected() *Selection {
	return m.selection
}

// IsQuitting returns true if user wants to quit.
func (m SetupModel) IsQuitting() bool {
	return m.quitting
}

// Err returns the validation message currently shown.
func (m SetupModel) Err() string {
	return m.err
}

// centerText left-pads text so it is centered in width. Styled text is
// measured without its escape sequences.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}
