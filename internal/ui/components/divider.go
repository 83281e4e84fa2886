package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultDividerWidth is used when neither the divider nor the context sets a width.
const DefaultDividerWidth = 40

// Divider renders a horizontal rule.
type Divider struct {
	BaseComponent
	char  string
	width int
}

// NewDivider creates a divider that fills the context's maximum width.
func NewDivider() *Divider {
	return &Divider{BaseComponent: NewBaseComponent()}
}

func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext draws the rule with "─", or "-" in ASCII mode, unless a
// character was set explicitly.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := d.width
	if width <= 0 {
		width = ctx.Constraints.MaxWidth
	}
	if width <= 0 {
		width = DefaultDividerWidth
	}

	char := d.char
	if char == "" {
		char = "─"
		if ctx.ASCII {
			char = "-"
		}
	}
	style := lipgloss.NewStyle().Foreground(ctx.Theme.Palette.Neutral.Muted).Inherit(d.ComputeStyle(ctx.Theme))
	return style.Render(strings.Repeat(char, width))
}

// WithChar overrides the rule character.
func (d *Divider) WithChar(char string) *Divider {
	d.char = char
	return d
}

func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

func (d *Divider) WithAppliers(appliers ...StyleFunc) *Divider {
	d.SetAppliers(appliers...)
	return d
}
