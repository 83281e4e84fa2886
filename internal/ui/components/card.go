package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/trellis/internal/ui"
)

// Card frames content in a rounded border with an optional title row.
type Card struct {
	BaseComponent
	title   string
	content ui.Renderable
}

// NewCard creates a card around content.
func NewCard(content ui.Renderable) *Card {
	c := &Card{BaseComponent: NewBaseComponent(), content: content}
	c.SetAppliers(Border(BorderVariantRounded), BorderColour(PaletteNeutral), PaddingX(SpacingSizeSmall))
	return c
}

func (c *Card) WithTitle(title string) *Card {
	c.title = title
	return c
}

func (c *Card) WithAppliers(appliers ...StyleFunc) *Card {
	c.AddAppliers(appliers...)
	return c
}

func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the card. A MaxWidth constraint bounds the outer
// width, border included; content is rendered against the inner width.
func (c *Card) ViewWithContext(ctx RenderContext) string {
	style := c.ComputeStyle(ctx.Theme)
	inner := ctx
	if ctx.Constraints.MaxWidth >= 0 {
		innerWidth := max(ctx.Constraints.MaxWidth-style.GetHorizontalFrameSize(), 0)
		inner = ctx.WithConstraints(Constraints{MaxWidth: innerWidth, MaxHeight: ctx.Constraints.MaxHeight})
		style = style.Width(innerWidth + style.GetHorizontalPadding())
	}

	body := Render(c.content, inner)
	if c.title != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, ctx.Theme.Typography.Title.Render(c.title), body)
	}
	return style.Render(body)
}
