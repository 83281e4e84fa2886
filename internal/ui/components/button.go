package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Button renders a labelled action. Disabled and loading buttons are drawn
// faint and ignore Press.
type Button struct {
	BaseComponent
	label    string
	variant  ButtonVariant
	disabled bool
	loading  bool
	active   bool
	spinner  string
	onPress  func()
}

// NewButton creates a new button with the given label.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		variant:       ButtonVariantPrimary,
	}
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given theme context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	style := ctx.Theme.Style(b.ComputeStyle(ctx.Theme), b.variant)
	if b.disabled || b.loading {
		style = style.Faint(true)
	}
	if b.active {
		style = style.Bold(true).Underline(true)
	}

	label := b.label
	if b.loading && b.spinner != "" {
		label = b.spinner + " " + label
	}
	return style.Render(label)
}

// Press invokes the press handler unless the button is disabled or loading.
// It reports whether the handler ran.
func (b *Button) Press() bool {
	if b.disabled || b.loading || b.onPress == nil {
		return false
	}
	b.onPress()
	return true
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithLoading sets the loading state; frame is the spinner glyph to show.
func (b *Button) WithLoading(loading bool, frame string) *Button {
	b.loading = loading
	b.spinner = frame
	return b
}

// WithActive sets the active/selected state.
func (b *Button) WithActive(active bool) *Button {
	b.active = active
	return b
}

// OnPress registers the press handler.
func (b *Button) OnPress(fn func()) *Button {
	b.onPress = fn
	return b
}

// WithStyle sets the button style.
func (b *Button) WithStyle(style lipgloss.Style) *Button {
	b.SetStyle(style)
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// IsDisabled returns true if the button is disabled.
func (b *Button) IsDisabled() bool {
	return b.disabled
}

// IsLoading returns true while the button shows a spinner.
func (b *Button) IsLoading() bool {
	return b.loading
}

// PrimaryButton creates a primary button.
func PrimaryButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantPrimary)
}

// SecondaryButton creates a secondary button.
func SecondaryButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantSecondary)
}

// MutedButton creates a muted/neutral button.
func MutedButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantMuted)
}
