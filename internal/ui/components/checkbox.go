package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Checkbox is a labelled box that toggles on space or enter.
type Checkbox struct {
	BaseComponent
	id       string
	label    string
	checked  Value[bool]
	disabled bool
	keys     KeyMap
}

// NewCheckbox creates an unchecked, uncontrolled checkbox.
func NewCheckbox(label string) *Checkbox {
	return &Checkbox{
		BaseComponent: NewBaseComponent(),
		label:         label,
		checked:       Uncontrolled(false),
		keys:          DefaultKeyMap(),
	}
}

func (c *Checkbox) WithID(id string) *Checkbox {
	c.id = id
	return c
}

func (c *Checkbox) WithDefaultChecked(checked bool) *Checkbox {
	onChange := c.checked.onChange
	c.checked = Uncontrolled(checked)
	c.checked.OnChange(onChange)
	return c
}

// WithChecked makes the checkbox controlled by its owner.
func (c *Checkbox) WithChecked(checked bool) *Checkbox {
	onChange := c.checked.onChange
	c.checked = Controlled(checked)
	c.checked.OnChange(onChange)
	return c
}

func (c *Checkbox) WithDisabled(disabled bool) *Checkbox {
	c.disabled = disabled
	return c
}

func (c *Checkbox) OnChange(fn func(checked bool)) *Checkbox {
	c.checked.OnChange(fn)
	return c
}

func (c *Checkbox) SyncChecked(checked bool) {
	c.checked.Sync(checked)
}

func (c *Checkbox) IsChecked() bool {
	return c.checked.Get()
}

func (c *Checkbox) Label() string {
	return c.label
}

// Toggle flips the box unless it is disabled.
func (c *Checkbox) Toggle() bool {
	if c.disabled {
		return false
	}
	return c.checked.Set(!c.checked.Get())
}

func (c *Checkbox) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || c.disabled || !key.Matches(keyMsg, c.keys.Toggle, c.keys.Select) {
		return nil
	}
	next := !c.checked.Get()
	c.Toggle()
	return emit(ToggledMsg{ID: c.id, On: next})
}

func (c *Checkbox) View() string {
	return c.ViewWithContext(DefaultContext())
}

func (c *Checkbox) ViewWithContext(ctx RenderContext) string {
	glyphs := ctx.Glyphs()
	mark, state := glyphs.BoxOff, CheckOff
	if c.checked.Get() {
		mark, state = glyphs.BoxOn, CheckOn
	}
	if c.disabled {
		state = CheckDisabled
	}
	return ctx.Theme.Style(c.ComputeStyle(ctx.Theme), state).Render(mark + " " + c.label)
}
