package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/trellis/internal/logger"
	"github.com/alexisbeaulieu97/trellis/internal/overlay"
	"github.com/alexisbeaulieu97/trellis/internal/ui"
)

// DrawerEdge is the frame edge a drawer slides out of.
type DrawerEdge int

const (
	DrawerLeft DrawerEdge = iota
	DrawerRight
	DrawerTop
	DrawerBottom
)

var drawerEdges = map[string]DrawerEdge{
	"left":   DrawerLeft,
	"right":  DrawerRight,
	"top":    DrawerTop,
	"bottom": DrawerBottom,
}

// ParseDrawerEdge maps an edge name to its DrawerEdge. Unknown names give
// DrawerLeft and false.
func ParseDrawerEdge(name string) (DrawerEdge, bool) {
	edge, ok := drawerEdges[strings.ToLower(strings.TrimSpace(name))]
	return edge, ok
}

func (e DrawerEdge) String() string {
	switch e {
	case DrawerRight:
		return "right"
	case DrawerTop:
		return "top"
	case DrawerBottom:
		return "bottom"
	default:
		return "left"
	}
}

// vertical reports whether the drawer spans the frame's full height.
func (e DrawerEdge) vertical() bool {
	return e == DrawerLeft || e == DrawerRight
}

// Drawer is a panel anchored to one edge of the frame. Side drawers span the
// full height and top or bottom drawers the full width; the other extent is
// the configured size or, when unset, the content's. Escape requests a close.
type Drawer struct {
	BaseComponent
	id         string
	background ui.Renderable
	content    ui.Renderable
	open       Value[bool]
	edge       DrawerEdge
	size       int
	mask       bool
	keys       KeyMap
}

// NewDrawer creates a closed, uncontrolled drawer on the left edge.
func NewDrawer(background, content ui.Renderable) *Drawer {
	return &Drawer{
		BaseComponent: NewBaseComponent(),
		background:    background,
		content:       content,
		open:          Uncontrolled(false),
		mask:          true,
		keys:          DefaultKeyMap(),
	}
}

func (d *Drawer) WithID(id string) *Drawer {
	d.id = id
	return d
}

// WithLogger attaches a logger for edge fallbacks.
func (d *Drawer) WithLogger(log *logger.Logger) *Drawer {
	d.SetLogger(log.WithComponent("drawer"))
	return d
}

// WithEdge sets the edge by name, falling back to the left edge.
func (d *Drawer) WithEdge(name string) *Drawer {
	edge, ok := ParseDrawerEdge(name)
	if !ok {
		d.Logger().WithFields(map[string]any{
			"edge":     name,
			"fallback": edge.String(),
		}).Debug("unknown drawer edge")
	}
	d.edge = edge
	return d
}

// WithSize sets the drawer's width, or height for top and bottom drawers.
func (d *Drawer) WithSize(cells int) *Drawer {
	d.size = max(cells, 0)
	return d
}

func (d *Drawer) WithMask(mask bool) *Drawer {
	d.mask = mask
	return d
}

func (d *Drawer) WithDefaultOpen(open bool) *Drawer {
	onChange := d.open.onChange
	d.open = Uncontrolled(open)
	d.open.OnChange(onChange)
	return d
}

// WithOpen makes the drawer controlled by its owner.
func (d *Drawer) WithOpen(open bool) *Drawer {
	onChange := d.open.onChange
	d.open = Controlled(open)
	d.open.OnChange(onChange)
	return d
}

func (d *Drawer) WithAppliers(appliers ...StyleFunc) *Drawer {
	d.AddAppliers(appliers...)
	return d
}

func (d *Drawer) OnOpenChange(fn func(open bool)) *Drawer {
	d.open.OnChange(fn)
	return d
}

func (d *Drawer) SyncOpen(open bool) {
	d.open.Sync(open)
}

func (d *Drawer) IsOpen() bool {
	return d.open.Get()
}

func (d *Drawer) Edge() DrawerEdge {
	return d.edge
}

func (d *Drawer) Open() bool {
	return d.open.Set(true)
}

func (d *Drawer) Close() bool {
	return d.open.Set(false)
}

// Update closes an open drawer on escape.
func (d *Drawer) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !d.open.Get() || !key.Matches(keyMsg, d.keys.Close) {
		return nil
	}
	d.Close()
	return emit(ModalToggledMsg{ID: d.id, Open: false})
}

func (d *Drawer) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext draws the background and, while open, the drawer along its
// edge. Without a bounded context the frame is the background's size.
func (d *Drawer) ViewWithContext(ctx RenderContext) string {
	if !d.open.Get() {
		return Render(d.background, ctx)
	}

	canvas := backdrop(ctx, d.background, d.mask, 0, 0)
	width, height := canvas.Size()
	panel := d.panel(ctx, width, height)

	// The anchor is the zero-thickness frame edge; the panel sits inside it.
	w, h := float64(width), float64(height)
	var f Floating
	switch d.edge {
	case DrawerRight:
		f = Floating{Anchor: overlay.Rect{Left: w, Height: h}, Placement: overlay.PlacementLeftTop}
	case DrawerTop:
		f = Floating{Anchor: overlay.Rect{Width: w}, Placement: overlay.PlacementBottomLeft}
	case DrawerBottom:
		f = Floating{Anchor: overlay.Rect{Top: h, Width: w}, Placement: overlay.PlacementTopLeft}
	default:
		f = Floating{Anchor: overlay.Rect{Height: h}, Placement: overlay.PlacementRightTop}
	}
	top, left := f.Position(panel)
	canvas.Place(top, left, panel)
	return canvas.String()
}

// panel renders the content in the drawer frame, filling the frame along the
// drawer's edge.
func (d *Drawer) panel(ctx RenderContext, width, height int) string {
	style := ctx.Theme.Style(d.ComputeStyle(ctx.Theme), PanelDrawer)
	hFrame, vFrame := style.GetHorizontalFrameSize(), style.GetVerticalFrameSize()

	if d.edge.vertical() {
		inner := ctx.WithConstraints(Bounded(max(width-hFrame, 0), max(height-vFrame, 0)))
		if d.size > 0 {
			inner.Constraints.MaxWidth = max(min(d.size, width)-hFrame, 0)
		}
		body := Render(d.content, inner)
		w := lipgloss.Width(body)
		if d.size > 0 {
			w = inner.Constraints.MaxWidth
		}
		return style.
			Width(w + style.GetHorizontalPadding()).
			Height(max(height-vFrame, 0) + style.GetVerticalPadding()).
			Render(body)
	}

	inner := ctx.WithConstraints(Bounded(max(width-hFrame, 0), max(height-vFrame, 0)))
	if d.size > 0 {
		inner.Constraints.MaxHeight = max(min(d.size, height)-vFrame, 0)
	}
	body := Render(d.content, inner)
	style = style.Width(max(width-hFrame, 0) + style.GetHorizontalPadding())
	if d.size > 0 {
		style = style.Height(inner.Constraints.MaxHeight + style.GetVerticalPadding())
	}
	return style.Render(body)
}
