package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/trellis/internal/ui"
)

// Collapse is a header that expands to reveal its panel.
type Collapse struct {
	BaseComponent
	id       string
	header   string
	panel    ui.Renderable
	expanded Value[bool]
	keys     KeyMap
}

// NewCollapse creates a collapsed, uncontrolled section.
func NewCollapse(header string, panel ui.Renderable) *Collapse {
	return &Collapse{
		BaseComponent: NewBaseComponent(),
		header:        header,
		panel:         panel,
		expanded:      Uncontrolled(false),
		keys:          DefaultKeyMap(),
	}
}

// WithID tags emitted messages.
func (c *Collapse) WithID(id string) *Collapse {
	c.id = id
	return c
}

// WithExpanded makes the section controlled by its owner.
func (c *Collapse) WithExpanded(expanded bool) *Collapse {
	onChange := c.expanded.onChange
	c.expanded = Controlled(expanded)
	c.expanded.OnChange(onChange)
	return c
}

// OnToggle registers a handler called with every requested state.
func (c *Collapse) OnToggle(fn func(expanded bool)) *Collapse {
	c.expanded.OnChange(fn)
	return c
}

// SyncExpanded pushes the owner's state into a controlled section.
func (c *Collapse) SyncExpanded(expanded bool) {
	c.expanded.Sync(expanded)
}

// IsExpanded reports whether the panel is shown.
func (c *Collapse) IsExpanded() bool {
	return c.expanded.Get()
}

// Toggle flips the section.
func (c *Collapse) Toggle() bool {
	return c.expanded.Set(!c.expanded.Get())
}

// Update toggles on the toggle or select keys and emits ToggledMsg.
func (c *Collapse) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !key.Matches(keyMsg, c.keys.Toggle, c.keys.Select) {
		return nil
	}
	next := !c.expanded.Get()
	c.Toggle()
	return emit(ToggledMsg{ID: c.id, On: next})
}

// View renders the section.
func (c *Collapse) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the header and, when expanded, the panel.
func (c *Collapse) ViewWithContext(ctx RenderContext) string {
	glyphs := ctx.Glyphs()
	icon := glyphs.Collapsed
	if c.expanded.Get() {
		icon = glyphs.Expanded
	}

	header := c.ComputeStyle(ctx.Theme).
		Border(ctx.Theme.Borders.Normal, true, true, !c.expanded.Get(), true).
		BorderForeground(ctx.Theme.Palette.Neutral.Muted).
		Padding(0, 1).
		Render(c.header + " " + icon)
	if !c.expanded.Get() {
		return header
	}

	panel := lipgloss.NewStyle().
		Border(ctx.Theme.Borders.Normal, false, true, true, true).
		BorderForeground(ctx.Theme.Palette.Neutral.Muted).
		Padding(0, 1).
		Width(max(lipgloss.Width(header)-2, 0)).
		Render(Render(c.panel, ctx))
	return lipgloss.JoinVertical(lipgloss.Left, header, panel)
}
