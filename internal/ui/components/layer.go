package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/trellis/internal/overlay"
	"github.com/alexisbeaulieu97/trellis/internal/ui"
)

// Canvas is a fixed-size grid of terminal cells that blocks of styled text
// are composited onto. Anything drawn outside the grid is clipped.
type Canvas struct {
	width  int
	height int
	lines  []string
}

// NewCanvas creates a blank canvas.
func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = strings.Repeat(" ", width)
	}
	return &Canvas{width: width, height: height, lines: lines}
}

// CanvasFrom creates a canvas sized to background and draws it at the origin.
func CanvasFrom(background string) *Canvas {
	c := NewCanvas(lipgloss.Width(background), lipgloss.Height(background))
	c.Place(0, 0, background)
	return c
}

// Size returns the canvas dimensions in cells.
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Place draws block with its top-left corner at (top, left). Cells of the
// block replace the cells beneath them; the rest of each row is kept.
func (c *Canvas) Place(top, left int, block string) {
	if block == "" {
		return
	}
	for i, line := range strings.Split(block, "\n") {
		y := top + i
		if y < 0 || y >= c.height {
			continue
		}
		c.lines[y] = c.spliceRow(c.lines[y], left, line)
	}
}

func (c *Canvas) spliceRow(row string, left int, line string) string {
	lineWidth := ansi.StringWidth(line)
	if left < 0 {
		line = ansi.TruncateLeft(line, -left, "")
		lineWidth += left
		left = 0
	}
	if lineWidth <= 0 || left >= c.width {
		return row
	}
	if left+lineWidth > c.width {
		line = ansi.Truncate(line, c.width-left, "")
		lineWidth = c.width - left
	}

	prefix := ansi.Truncate(row, left, "")
	suffix := ansi.TruncateLeft(row, left+lineWidth, "")
	return prefix + line + suffix
}

// String returns the composited frame.
func (c *Canvas) String() string {
	return strings.Join(c.lines, "\n")
}

// Floating is a panel positioned against an anchor rectangle in cell
// coordinates.
type Floating struct {
	Content   ui.Renderable
	Anchor    overlay.Rect
	Placement overlay.Placement
	Gap       float64
}

// Position measures the rendered panel and returns its top-left cell.
func (f Floating) Position(panel string) (top, left int) {
	res := overlay.Compute(f.Anchor, f.Placement, f.Gap)
	origin := res.Resolve(measure(panel))
	return int(math.Round(origin.Top)), int(math.Round(origin.Left))
}

func measure(block string) overlay.Size {
	return overlay.Size{Width: float64(lipgloss.Width(block)), Height: float64(lipgloss.Height(block))}
}

// Layer draws floating panels over a base view. The frame keeps the base
// view's size unless Size sets a viewport, and panels are clipped at its edges.
type Layer struct {
	BaseComponent
	base     ui.Renderable
	floating []Floating
	width    int
	height   int
}

// NewLayer creates a layer over base.
func NewLayer(base ui.Renderable) *Layer {
	return &Layer{BaseComponent: NewBaseComponent(), base: base}
}

// Add stacks a floating panel; later panels draw on top.
func (l *Layer) Add(f Floating) *Layer {
	l.floating = append(l.floating, f)
	return l
}

// WithSize fixes the frame to a viewport.
func (l *Layer) WithSize(width, height int) *Layer {
	l.width, l.height = width, height
	return l
}

// View renders the layer.
func (l *Layer) View() string {
	return l.ViewWithContext(DefaultContext())
}

// ViewWithContext composites the panels over the base view.
func (l *Layer) ViewWithContext(ctx RenderContext) string {
	background := Render(l.base, ctx)
	canvas := CanvasFrom(background)
	if l.width > 0 && l.height > 0 {
		canvas = NewCanvas(l.width, l.height)
		canvas.Place(0, 0, background)
	}

	for _, f := range l.floating {
		panel := Render(f.Content, ctx)
		top, left := f.Position(panel)
		canvas.Place(top, left, panel)
	}
	return canvas.String()
}

// composeFloating lays out an anchor block and a panel placed against it on
// the smallest canvas holding both, for widgets rendered without a host frame.
func composeFloating(anchor, panel string, placement overlay.Placement, gap float64) string {
	anchorSize := measure(anchor)
	f := Floating{
		Anchor:    overlay.Rect{Width: anchorSize.Width, Height: anchorSize.Height},
		Placement: placement,
		Gap:       gap,
	}
	top, left := f.Position(panel)
	pw, ph := lipgloss.Width(panel), lipgloss.Height(panel)
	aw, ah := lipgloss.Width(anchor), lipgloss.Height(anchor)

	minTop, minLeft := min(0, top), min(0, left)
	width := max(aw, left+pw) - minLeft
	height := max(ah, top+ph) - minTop

	canvas := NewCanvas(width, height)
	canvas.Place(-minTop, -minLeft, anchor)
	canvas.Place(top-minTop, left-minLeft, panel)
	return canvas.String()
}
