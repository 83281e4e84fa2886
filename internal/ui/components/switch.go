package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Switch is a two-state toggle with optional labels for each state.
type Switch struct {
	BaseComponent
	id       string
	checked  Value[bool]
	disabled bool
	onLabel  string
	offLabel string
	keys     KeyMap
}

// NewSwitch creates an unchecked, uncontrolled switch.
func NewSwitch() *Switch {
	return &Switch{
		BaseComponent: NewBaseComponent(),
		checked:       Uncontrolled(false),
		keys:          DefaultKeyMap(),
	}
}

func (s *Switch) WithID(id string) *Switch {
	s.id = id
	return s
}

// WithDefaultChecked sets the initial state of an uncontrolled switch.
func (s *Switch) WithDefaultChecked(checked bool) *Switch {
	onChange := s.checked.onChange
	s.checked = Uncontrolled(checked)
	s.checked.OnChange(onChange)
	return s
}

// WithChecked makes the switch controlled by its owner.
func (s *Switch) WithChecked(checked bool) *Switch {
	onChange := s.checked.onChange
	s.checked = Controlled(checked)
	s.checked.OnChange(onChange)
	return s
}

func (s *Switch) WithDisabled(disabled bool) *Switch {
	s.disabled = disabled
	return s
}

// WithLabels sets the text drawn inside the track for each state.
func (s *Switch) WithLabels(on, off string) *Switch {
	s.onLabel, s.offLabel = on, off
	return s
}

func (s *Switch) OnChange(fn func(checked bool)) *Switch {
	s.checked.OnChange(fn)
	return s
}

func (s *Switch) SyncChecked(checked bool) {
	s.checked.Sync(checked)
}

func (s *Switch) IsChecked() bool {
	return s.checked.Get()
}

// Toggle flips the switch unless it is disabled.
func (s *Switch) Toggle() bool {
	if s.disabled {
		return false
	}
	return s.checked.Set(!s.checked.Get())
}

func (s *Switch) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || s.disabled || !key.Matches(keyMsg, s.keys.Toggle, s.keys.Select) {
		return nil
	}
	next := !s.checked.Get()
	s.Toggle()
	return emit(ToggledMsg{ID: s.id, On: next})
}

func (s *Switch) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext draws the track with the thumb on the left when off and on
// the right when on; the label sits on the opposite side of the thumb.
func (s *Switch) ViewWithContext(ctx RenderContext) string {
	glyphs := ctx.Glyphs()
	checked := s.checked.Get()

	label := s.offLabel
	state := SwitchOff
	if checked {
		label = s.onLabel
		state = SwitchOn
	}
	if s.disabled {
		state = SwitchDisabled
	}

	width := max(lipgloss.Width(s.onLabel), lipgloss.Width(s.offLabel), 1)
	label += strings.Repeat(" ", width-lipgloss.Width(label))

	track := " " + glyphs.DotOn + " " + label + " "
	if checked {
		track = " " + label + " " + glyphs.DotOn + " "
	}
	return ctx.Theme.Style(s.ComputeStyle(ctx.Theme), state).Render(track)
}
