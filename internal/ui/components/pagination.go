package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/trellis/internal/logger"
	"github.com/alexisbeaulieu97/trellis/internal/pagination"
)

// DefaultPageSize is the page size used when none is configured.
const DefaultPageSize = 20

// Pagination renders a pager: a prev arrow, page buttons with the current one
// highlighted, ellipsis markers for collapsed ranges, and a next arrow.
// Arrows at either bound are drawn disabled.
type Pagination struct {
	BaseComponent
	id       string
	page     Value[int]
	pageSize int
	total    int
	ellipsis bool
	keys     KeyMap
}

// NewPagination creates an uncontrolled pager over total items starting at page 1.
func NewPagination(total int) *Pagination {
	return &Pagination{
		BaseComponent: NewBaseComponent(),
		page:          Uncontrolled(1),
		pageSize:      DefaultPageSize,
		total:         total,
		keys:          DefaultKeyMap(),
	}
}

// WithID tags emitted messages.
func (p *Pagination) WithID(id string) *Pagination {
	p.id = id
	return p
}

// WithPageSize sets the number of items per page.
func (p *Pagination) WithPageSize(size int) *Pagination {
	p.pageSize = size
	return p
}

// WithEllipsis enables collapsing long page ranges.
func (p *Pagination) WithEllipsis(enabled bool) *Pagination {
	p.ellipsis = enabled
	return p
}

// WithDefaultPage sets the starting page of an uncontrolled pager.
func (p *Pagination) WithDefaultPage(page int) *Pagination {
	onChange := p.page.onChange
	p.page = Uncontrolled(page)
	p.page.OnChange(onChange)
	return p
}

// WithPage makes the pager controlled: the owner supplies the page and
// applies requested changes through SyncPage.
func (p *Pagination) WithPage(page int) *Pagination {
	onChange := p.page.onChange
	p.page = Controlled(page)
	p.page.OnChange(onChange)
	return p
}

// OnChange registers a handler called with every requested page.
func (p *Pagination) OnChange(fn func(page int)) *Pagination {
	p.page.OnChange(fn)
	return p
}

// WithKeyMap replaces the key bindings.
func (p *Pagination) WithKeyMap(keys KeyMap) *Pagination {
	p.keys = keys
	return p
}

// WithAppliers applies theme-based style modifiers to the whole pager.
func (p *Pagination) WithAppliers(appliers ...StyleFunc) *Pagination {
	p.AddAppliers(appliers...)
	return p
}

// WithLogger attaches a logger for configuration fallbacks.
func (p *Pagination) WithLogger(log *logger.Logger) *Pagination {
	p.SetLogger(log.WithComponent("pagination"))
	return p
}

// SyncPage pushes the owner's page into a controlled pager.
func (p *Pagination) SyncPage(page int) {
	p.page.Sync(page)
}

// Page returns the current page.
func (p *Pagination) Page() int {
	return p.page.Get()
}

// Request describes the pager's current configuration.
func (p *Pagination) Request() pagination.Request {
	return pagination.Request{
		CurrentPage:  p.page.Get(),
		PageSize:     p.pageSize,
		TotalItems:   p.total,
		WithEllipsis: p.ellipsis,
	}
}

// Sequence computes the descriptors for the current state. Misconfigured
// pagers get the single-page fallback and the error is logged.
func (p *Pagination) Sequence() pagination.Sequence {
	req := p.Request()
	seq, err := pagination.Compute(req, p.activate)
	if err != nil {
		p.Logger().WithFields(map[string]any{
			"page_size":   req.PageSize,
			"total_items": req.TotalItems,
		}).Error(err, "invalid pagination configuration, rendering a single page")
		return pagination.Fallback(req, p.activate)
	}
	return seq
}

// GoTo requests a move to page, clamped to the valid range. It reports
// whether a change was requested.
func (p *Pagination) GoTo(page int) bool {
	target, ok := p.target(page)
	if ok {
		p.page.Set(target)
	}
	return ok
}

// activate handles a page button press. Every press reaches the change
// handler, including presses on the current page.
func (p *Pagination) activate(page int) {
	target, _ := p.target(page)
	p.page.Request(target)
}

// ActivateItem activates the descriptor at index i of the current sequence,
// the equivalent of clicking a page button. Ellipsis markers do nothing.
func (p *Pagination) ActivateItem(i int) bool {
	seq := p.Sequence()
	if i < 0 || i >= len(seq.Items) || seq.Items[i].Kind != pagination.KindPage {
		return false
	}
	before := p.page.Get()
	seq.Items[i].Activate()
	return p.page.Get() != before
}

// Prev moves one page back when allowed.
func (p *Pagination) Prev() bool {
	target, ok := p.step(-1)
	if ok {
		p.page.Set(target)
	}
	return ok
}

// Next moves one page forward when allowed.
func (p *Pagination) Next() bool {
	target, ok := p.step(1)
	if ok {
		p.page.Set(target)
	}
	return ok
}

func (p *Pagination) target(page int) (int, bool) {
	total := 1
	if p.pageSize > 0 && p.total >= 0 {
		total = pagination.TotalPages(p.pageSize, p.total)
	}
	page = min(max(page, 1), total)
	return page, page != p.page.Get()
}

func (p *Pagination) step(delta int) (int, bool) {
	seq := p.Sequence()
	next, ok := seq.Next()
	if delta < 0 {
		next, ok = seq.Prev()
	}
	if !ok {
		return 0, false
	}
	return p.target(next)
}

// Update handles navigation keys and emits PageChangedMsg with the requested
// page. Controlled pagers keep their page until the owner calls SyncPage.
func (p *Pagination) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	var target int
	var requested bool
	switch {
	case key.Matches(keyMsg, p.keys.Prev):
		target, requested = p.step(-1)
	case key.Matches(keyMsg, p.keys.Next):
		target, requested = p.step(1)
	case key.Matches(keyMsg, p.keys.First):
		target, requested = p.target(1)
	case key.Matches(keyMsg, p.keys.Last):
		target, requested = p.target(p.Sequence().TotalPages)
	}
	if !requested {
		return nil
	}

	p.page.Set(target)
	return emit(PageChangedMsg{ID: p.id, Page: target})
}

// View renders the pager.
func (p *Pagination) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the pager with the given theme context.
func (p *Pagination) ViewWithContext(ctx RenderContext) string {
	seq := p.Sequence()
	glyphs := ctx.Glyphs()
	theme := ctx.Theme
	base := p.ComputeStyle(theme)

	parts := make([]string, 0, len(seq.Items)+2)
	parts = append(parts, p.arrow(ctx, glyphs.Prev, seq.CanGoPrev))
	for _, item := range seq.Items {
		switch {
		case item.Kind == pagination.KindEllipsis:
			parts = append(parts, theme.Style(base, PageItemEllipsis).Render(glyphs.Ellipsis))
		case item.Current:
			parts = append(parts, theme.Style(base, PageItemCurrent).Render(strconv.Itoa(item.Page)))
		default:
			parts = append(parts, theme.Style(base, PageItemDefault).Render(strconv.Itoa(item.Page)))
		}
	}
	parts = append(parts, p.arrow(ctx, glyphs.Next, seq.CanGoNext))
	return strings.Join(parts, " ")
}

func (p *Pagination) arrow(ctx RenderContext, glyph string, enabled bool) string {
	state := PageItemDefault
	if !enabled {
		state = PageItemDisabled
	}
	return ctx.Theme.Style(p.ComputeStyle(ctx.Theme), state).Render(glyph)
}
