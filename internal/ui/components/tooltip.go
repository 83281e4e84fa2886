package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/alexisbeaulieu97/trellis/internal/logger"
	"github.com/alexisbeaulieu97/trellis/internal/overlay"
	"github.com/alexisbeaulieu97/trellis/internal/ui"
)

// DefaultTooltipWidth is the wrap width of tooltip text in cells.
const DefaultTooltipWidth = 28

// Tooltip shows a short hint next to an anchor, optionally with an arrow
// pointing back at it.
type Tooltip struct {
	BaseComponent
	anchor    ui.Renderable
	content   string
	placement overlay.Placement
	gap       float64
	width     int
	arrow     bool
	visible   bool
}

// NewTooltip creates a hidden tooltip placed above its anchor.
func NewTooltip(anchor ui.Renderable, content string) *Tooltip {
	return &Tooltip{
		BaseComponent: NewBaseComponent(),
		anchor:        anchor,
		content:       content,
		placement:     overlay.TooltipDefault,
		gap:           0,
		width:         DefaultTooltipWidth,
		arrow:         true,
	}
}

// WithPlacement sets the placement from a keyword. Unknown keywords fall back
// to the tooltip default.
func (t *Tooltip) WithPlacement(keyword string) *Tooltip {
	t.placement = overlay.ParsePlacement(keyword, overlay.TooltipDefault)
	if !overlay.IsKnown(keyword) {
		t.Logger().WithFields(map[string]any{
			"placement": keyword,
			"fallback":  t.placement.String(),
		}).Debug("unknown tooltip placement")
	}
	return t
}

// WithGap sets the anchor-to-panel distance in cells.
func (t *Tooltip) WithGap(gap float64) *Tooltip {
	t.gap = gap
	return t
}

// WithWidth sets the wrap width; zero disables wrapping.
func (t *Tooltip) WithWidth(width int) *Tooltip {
	t.width = width
	return t
}

// WithArrow shows or hides the arrow.
func (t *Tooltip) WithArrow(show bool) *Tooltip {
	t.arrow = show
	return t
}

// WithVisible sets the initial visibility.
func (t *Tooltip) WithVisible(visible bool) *Tooltip {
	t.visible = visible
	return t
}

// WithLogger attaches a logger for placement fallbacks.
func (t *Tooltip) WithLogger(log *logger.Logger) *Tooltip {
	t.SetLogger(log.WithComponent("tooltip"))
	return t
}

// Show reveals the tooltip.
func (t *Tooltip) Show() { t.visible = true }

// Hide conceals the tooltip.
func (t *Tooltip) Hide() { t.visible = false }

// Toggle flips visibility.
func (t *Tooltip) Toggle() { t.visible = !t.visible }

// IsVisible reports whether the tooltip is shown.
func (t *Tooltip) IsVisible() bool { return t.visible }

// Placement returns the resolved placement.
func (t *Tooltip) Placement() overlay.Placement { return t.placement }

// Panel renders the tooltip body including its arrow.
func (t *Tooltip) Panel(ctx RenderContext) string {
	text := t.content
	if t.width > 0 {
		text = wordwrap.String(text, t.width)
	}
	body := ctx.Theme.Style(t.ComputeStyle(ctx.Theme), PanelTooltip).Render(text)
	if !t.arrow {
		return body
	}
	return attachArrow(body, overlay.ArrowFor(t.placement), ctx.ASCII)
}

// Floating describes the panel for a host Layer.
func (t *Tooltip) Floating(anchor overlay.Rect) Floating {
	return Floating{
		Content:   ContextFunc(t.Panel),
		Anchor:    anchor,
		Placement: t.placement,
		Gap:       t.gap,
	}
}

// View renders the tooltip.
func (t *Tooltip) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the anchor and, when visible, the positioned panel.
func (t *Tooltip) ViewWithContext(ctx RenderContext) string {
	anchor := Render(t.anchor, ctx)
	if !t.visible {
		return anchor
	}
	return composeFloating(anchor, t.Panel(ctx), t.placement, t.gap)
}

// attachArrow adds the arrow glyph as an extra row or column on the edge of
// body that faces the anchor.
func attachArrow(body string, arrow overlay.Arrow, ascii bool) string {
	glyph := arrow.Glyph(ascii)
	width, height := lipgloss.Width(body), lipgloss.Height(body)

	switch arrow.Edge {
	case overlay.SideTop, overlay.SideBottom:
		col := clampCell(arrow.Offset(float64(width)), width)
		row := strings.Repeat(" ", col) + glyph
		if arrow.Edge == overlay.SideTop {
			return row + "\n" + body
		}
		return body + "\n" + row
	default:
		line := clampCell(arrow.Offset(float64(height)), height)
		column := make([]string, height)
		for i := range column {
			column[i] = " "
		}
		column[line] = glyph
		if arrow.Edge == overlay.SideLeft {
			return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(column, "\n"), body)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, body, strings.Join(column, "\n"))
	}
}

// clampCell converts an arrow offset to a cell index inside [0, extent).
// Panels too small for the arrow's inset get a centered arrow.
func clampCell(offset float64, extent int) int {
	if extent <= 0 {
		return 0
	}
	cell := int(offset)
	if cell < 0 || cell >= extent {
		return extent / 2
	}
	return cell
}
