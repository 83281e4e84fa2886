package components

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// Badge is a small status indicator. When a count is set it renders the
// number, capped as "N+" above the overflow limit, and hides itself at zero
// unless ShowZero is enabled.
type Badge struct {
	BaseComponent
	text     string
	variant  BadgeVariant
	count    *int
	overflow int
	showZero bool
	dot      bool
}

// BadgeVariant specifies the visual style of a badge.
type BadgeVariant int

const (
	BadgeVariantDefault BadgeVariant = iota
	BadgeVariantPrimary
	BadgeVariantSecondary
	BadgeVariantSuccess
	BadgeVariantWarning
	BadgeVariantError
	BadgeVariantInfo
)

// DefaultBadgeOverflow is the largest count shown before it is capped.
const DefaultBadgeOverflow = 99

// NewBadge creates a new badge with the given text.
func NewBadge(text string) *Badge {
	return &Badge{
		BaseComponent: NewBaseComponent(),
		text:          text,
		variant:       BadgeVariantDefault,
		overflow:      DefaultBadgeOverflow,
	}
}

// CountBadge creates a numeric badge.
func CountBadge(count int) *Badge {
	return NewBadge("").WithCount(count).WithVariant(BadgeVariantError)
}

// View renders the badge.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge with the given theme context.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	label, visible := b.Label(ctx.Glyphs())
	if !visible {
		return ""
	}
	return ctx.Theme.Style(b.ComputeStyle(ctx.Theme), b.variant).Render(label)
}

// Label returns the text the badge displays and whether it is visible.
func (b *Badge) Label(glyphs Glyphs) (string, bool) {
	if b.dot {
		return glyphs.DotOn, true
	}
	if b.count == nil {
		return b.text, true
	}
	n := *b.count
	if n == 0 && !b.showZero {
		return "", false
	}
	if b.overflow > 0 && n > b.overflow {
		return strconv.Itoa(b.overflow) + "+", true
	}
	return strconv.Itoa(n), true
}

// WithVariant sets the badge variant.
func (b *Badge) WithVariant(variant BadgeVariant) *Badge {
	b.variant = variant
	return b
}

// WithCount switches the badge to numeric mode.
func (b *Badge) WithCount(count int) *Badge {
	b.count = &count
	return b
}

// WithOverflow sets the cap for numeric badges; zero disables capping.
func (b *Badge) WithOverflow(limit int) *Badge {
	b.overflow = limit
	return b
}

// WithShowZero keeps a zero count visible.
func (b *Badge) WithShowZero(show bool) *Badge {
	b.showZero = show
	return b
}

// WithDot renders a bare dot instead of text or count.
func (b *Badge) WithDot(dot bool) *Badge {
	b.dot = dot
	return b
}

// WithStyle sets the badge style.
func (b *Badge) WithStyle(style lipgloss.Style) *Badge {
	b.SetStyle(style)
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Badge) WithAppliers(appliers ...StyleFunc) *Badge {
	b.AddAppliers(appliers...)
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// PrimaryBadge creates a primary badge.
func PrimaryBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantPrimary)
}

// SuccessBadge creates a success badge.
func SuccessBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantSuccess)
}

// WarningBadge creates a warning badge.
func WarningBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantWarning)
}

// ErrorBadge creates an error badge.
func ErrorBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantError)
}
