package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultBreadcrumbMaxItems is the longest trail shown without collapsing.
const DefaultBreadcrumbMaxItems = 8

// Breadcrumbs renders a navigation trail. Trails longer than MaxItems start
// collapsed to the first item, an ellipsis and the last item until expanded.
type Breadcrumbs struct {
	BaseComponent
	items     []string
	maxItems  int
	collapsed bool
	separator string
	keys      KeyMap
}

// NewBreadcrumbs creates a trail with the default collapse limit.
func NewBreadcrumbs(items ...string) *Breadcrumbs {
	b := &Breadcrumbs{
		BaseComponent: NewBaseComponent(),
		items:         items,
		keys:          DefaultKeyMap(),
	}
	return b.WithMaxItems(DefaultBreadcrumbMaxItems)
}

// WithMaxItems sets the collapse limit and re-evaluates the initial state.
func (b *Breadcrumbs) WithMaxItems(limit int) *Breadcrumbs {
	b.maxItems = limit
	b.collapsed = limit < len(b.items)
	return b
}

// WithSeparator overrides the glyph drawn between items.
func (b *Breadcrumbs) WithSeparator(separator string) *Breadcrumbs {
	b.separator = separator
	return b
}

// IsCollapsed reports whether the middle of the trail is hidden.
func (b *Breadcrumbs) IsCollapsed() bool {
	return b.collapsed
}

// Expand reveals the full trail.
func (b *Breadcrumbs) Expand() bool {
	if !b.collapsed {
		return false
	}
	b.collapsed = false
	return true
}

// Visible returns the entries drawn, with ellipsis standing in for the
// hidden middle.
func (b *Breadcrumbs) Visible(ellipsis string) []string {
	if !b.collapsed || len(b.items) < 2 {
		return b.items
	}
	return []string{b.items[0], ellipsis, b.items[len(b.items)-1]}
}

// Update expands the trail on the select key.
func (b *Breadcrumbs) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, b.keys.Select) {
		b.Expand()
	}
	return nil
}

func (b *Breadcrumbs) View() string {
	return b.ViewWithContext(DefaultContext())
}

func (b *Breadcrumbs) ViewWithContext(ctx RenderContext) string {
	glyphs := ctx.Glyphs()
	separator := b.separator
	if separator == "" {
		separator = glyphs.Separator
	}

	visible := b.Visible(glyphs.Ellipsis)
	if len(visible) == 0 {
		return ""
	}
	muted := ctx.Theme.Typography.Muted
	current := ctx.Theme.Typography.Emphasis

	parts := make([]string, len(visible))
	for i, item := range visible {
		if i == len(visible)-1 {
			parts[i] = current.Render(item)
			continue
		}
		parts[i] = muted.Render(item)
	}
	return b.ComputeStyle(ctx.Theme).Render(strings.Join(parts, " "+muted.Render(separator)+" "))
}
