package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/trellis/internal/overlay"
	"github.com/alexisbeaulieu97/trellis/internal/ui"
)

// defaultModalOffset is the row a modal panel starts on.
const defaultModalOffset = 2

// Modal shows content over a background view while open. The panel is
// centred horizontally a few rows below the top edge, and the background is
// dimmed unless the mask is turned off. Escape requests a close.
type Modal struct {
	BaseComponent
	id         string
	background ui.Renderable
	content    ui.Renderable
	open       Value[bool]
	mask       bool
	offset     int
	keys       KeyMap
}

// NewModal creates a closed, uncontrolled modal.
func NewModal(background, content ui.Renderable) *Modal {
	return &Modal{
		BaseComponent: NewBaseComponent(),
		background:    background,
		content:       content,
		open:          Uncontrolled(false),
		mask:          true,
		offset:        defaultModalOffset,
		keys:          DefaultKeyMap(),
	}
}

func (m *Modal) WithID(id string) *Modal {
	m.id = id
	return m
}

// WithDefaultOpen sets the initial state of an uncontrolled modal.
func (m *Modal) WithDefaultOpen(open bool) *Modal {
	onChange := m.open.onChange
	m.open = Uncontrolled(open)
	m.open.OnChange(onChange)
	return m
}

// WithOpen makes the modal controlled by its owner.
func (m *Modal) WithOpen(open bool) *Modal {
	onChange := m.open.onChange
	m.open = Controlled(open)
	m.open.OnChange(onChange)
	return m
}

// WithMask turns background dimming on or off.
func (m *Modal) WithMask(mask bool) *Modal {
	m.mask = mask
	return m
}

// WithOffset sets the row the panel starts on.
func (m *Modal) WithOffset(rows int) *Modal {
	m.offset = max(rows, 0)
	return m
}

// WithBackground replaces the view drawn beneath the panel.
func (m *Modal) WithBackground(background ui.Renderable) *Modal {
	m.background = background
	return m
}

func (m *Modal) OnOpenChange(fn func(open bool)) *Modal {
	m.open.OnChange(fn)
	return m
}

func (m *Modal) SyncOpen(open bool) {
	m.open.Sync(open)
}

func (m *Modal) IsOpen() bool {
	return m.open.Get()
}

// Open requests the open state.
func (m *Modal) Open() bool {
	return m.open.Set(true)
}

// Close requests the closed state.
func (m *Modal) Close() bool {
	return m.open.Set(false)
}

// Update closes an open modal on escape.
func (m *Modal) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.open.Get() || !key.Matches(keyMsg, m.keys.Close) {
		return nil
	}
	m.Close()
	return emit(ModalToggledMsg{ID: m.id, Open: false})
}

func (m *Modal) View() string {
	return m.ViewWithContext(DefaultContext())
}

// ViewWithContext draws the background and, while open, the panel over it.
func (m *Modal) ViewWithContext(ctx RenderContext) string {
	if !m.open.Get() {
		return Render(m.background, ctx)
	}
	inner := ctx
	if ctx.Constraints.MaxWidth >= 0 && ctx.Constraints.MaxHeight >= 0 {
		inner = ctx.WithConstraints(Bounded(ctx.Constraints.MaxWidth, max(ctx.Constraints.MaxHeight-m.offset, 0)))
	}
	panel := Render(m.content, inner)
	canvas := backdrop(ctx, m.background, m.mask, lipgloss.Width(panel), m.offset+lipgloss.Height(panel))
	width, _ := canvas.Size()

	f := Floating{
		Anchor:    overlay.Rect{Width: float64(width), Height: float64(m.offset)},
		Placement: overlay.PlacementBottom,
	}
	top, left := f.Position(panel)
	canvas.Place(top, max(left, 0), panel)
	return canvas.String()
}

// backdrop renders background onto a canvas for a modal surface. A bounded
// context fixes the canvas to the viewport; otherwise the canvas covers the
// background and at least minWidth by minHeight cells. Masked backgrounds
// lose their styling and are drawn muted.
func backdrop(ctx RenderContext, background ui.Renderable, mask bool, minWidth, minHeight int) *Canvas {
	view := Render(background, ctx)
	if mask && view != "" {
		view = ctx.Theme.Typography.Muted.Render(ansi.Strip(view))
	}
	width, height := ctx.Constraints.MaxWidth, ctx.Constraints.MaxHeight
	if width < 0 || height < 0 {
		width = max(lipgloss.Width(view), minWidth)
		height = max(lipgloss.Height(view), minHeight)
		if view == "" {
			height = minHeight
		}
	}
	canvas := NewCanvas(width, height)
	canvas.Place(0, 0, view)
	return canvas
}
