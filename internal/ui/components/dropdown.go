package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/trellis/internal/logger"
	"github.com/alexisbeaulieu97/trellis/internal/overlay"
	"github.com/alexisbeaulieu97/trellis/internal/ui"
)

// DefaultOverlayGap is the distance in cells between an anchor and its panel.
const DefaultOverlayGap = 1

// Dropdown shows a panel next to an anchor while open.
type Dropdown struct {
	BaseComponent
	id        string
	anchor    ui.Renderable
	panel     ui.Renderable
	placement overlay.Placement
	gap       float64
	open      Value[bool]
	keys      KeyMap
}

// NewDropdown creates a closed, uncontrolled dropdown placed below its anchor.
func NewDropdown(anchor, panel ui.Renderable) *Dropdown {
	return &Dropdown{
		BaseComponent: NewBaseComponent(),
		anchor:        anchor,
		panel:         panel,
		placement:     overlay.DropdownDefault,
		gap:           DefaultOverlayGap,
		open:          Uncontrolled(false),
		keys:          DefaultKeyMap(),
	}
}

// WithID tags emitted messages.
func (d *Dropdown) WithID(id string) *Dropdown {
	d.id = id
	return d
}

// WithPlacement sets the placement from a keyword. Unknown keywords fall back
// to the dropdown default.
func (d *Dropdown) WithPlacement(keyword string) *Dropdown {
	d.placement = overlay.ParsePlacement(keyword, overlay.DropdownDefault)
	if !overlay.IsKnown(keyword) {
		d.Logger().WithFields(map[string]any{
			"placement": keyword,
			"fallback":  d.placement.String(),
		}).Debug("unknown dropdown placement")
	}
	return d
}

// WithGap sets the anchor-to-panel distance in cells.
func (d *Dropdown) WithGap(gap float64) *Dropdown {
	d.gap = gap
	return d
}

// WithOpen makes the dropdown controlled by its owner.
func (d *Dropdown) WithOpen(open bool) *Dropdown {
	onChange := d.open.onChange
	d.open = Controlled(open)
	d.open.OnChange(onChange)
	return d
}

// OnToggle registers a handler called with every requested open state.
func (d *Dropdown) OnToggle(fn func(open bool)) *Dropdown {
	d.open.OnChange(fn)
	return d
}

// WithLogger attaches a logger for placement fallbacks.
func (d *Dropdown) WithLogger(log *logger.Logger) *Dropdown {
	d.SetLogger(log.WithComponent("dropdown"))
	return d
}

// WithKeyMap replaces the key bindings.
func (d *Dropdown) WithKeyMap(keys KeyMap) *Dropdown {
	d.keys = keys
	return d
}

// SetPanel replaces the panel content.
func (d *Dropdown) SetPanel(panel ui.Renderable) {
	d.panel = panel
}

// SyncOpen pushes the owner's state into a controlled dropdown.
func (d *Dropdown) SyncOpen(open bool) {
	d.open.Sync(open)
}

// IsOpen reports whether the panel is shown.
func (d *Dropdown) IsOpen() bool {
	return d.open.Get()
}

// Placement returns the resolved placement.
func (d *Dropdown) Placement() overlay.Placement {
	return d.placement
}

// Open shows the panel.
func (d *Dropdown) Open() bool {
	return d.open.Set(true)
}

// Close hides the panel.
func (d *Dropdown) Close() bool {
	return d.open.Set(false)
}

// Toggle flips the panel's visibility.
func (d *Dropdown) Toggle() bool {
	return d.open.Set(!d.open.Get())
}

// Update opens, closes or toggles the panel and emits DropdownToggledMsg
// with the requested state.
func (d *Dropdown) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	current := d.open.Get()
	switch {
	case key.Matches(keyMsg, d.keys.Toggle):
		d.Toggle()
		return emit(DropdownToggledMsg{ID: d.id, Open: !current})
	case key.Matches(keyMsg, d.keys.Close) && current:
		d.Close()
		return emit(DropdownToggledMsg{ID: d.id, Open: false})
	}
	return nil
}

// Floating describes the panel for a host Layer that knows where the anchor
// was drawn.
func (d *Dropdown) Floating(anchor overlay.Rect) Floating {
	return Floating{Content: d.panelView(), Anchor: anchor, Placement: d.placement, Gap: d.gap}
}

// AnchorView renders only the anchor.
func (d *Dropdown) AnchorView(ctx RenderContext) string {
	return Render(d.anchor, ctx)
}

func (d *Dropdown) panelView() ui.Renderable {
	return ContextFunc(func(ctx RenderContext) string {
		return ctx.Theme.Style(d.ComputeStyle(ctx.Theme), PanelDropdown).Render(Render(d.panel, ctx))
	})
}

// View renders the dropdown.
func (d *Dropdown) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the anchor and, when open, the positioned panel.
func (d *Dropdown) ViewWithContext(ctx RenderContext) string {
	anchor := d.AnchorView(ctx)
	if !d.open.Get() {
		return anchor
	}
	return composeFloating(anchor, Render(d.panelView(), ctx), d.placement, d.gap)
}
