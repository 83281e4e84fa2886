// Package pagination computes the page buttons a pager widget renders.
//
// The computation is pure: given the current page, page size, item count and
// whether long ranges collapse behind ellipsis markers, Compute returns the
// ordered descriptors along with prev/next availability. Nothing here clamps
// the current page; callers own that decision.
package pagination

import (
	"fmt"

	trelliserrors "github.com/alexisbeaulieu97/trellis/pkg/errors"
)

// WindowRadius is the number of pages shown on each side of the current page
// when ellipsis collapsing is active.
const WindowRadius = 2

// collapseThreshold is the largest page count that is always shown in full.
const collapseThreshold = WindowRadius*2 + 3

// Kind distinguishes page buttons from elided ranges.
type Kind int

const (
	KindPage Kind = iota
	KindEllipsis
)

func (k Kind) String() string {
	switch k {
	case KindPage:
		return "page"
	case KindEllipsis:
		return "ellipsis"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Descriptor is one entry of a rendered page sequence.
type Descriptor struct {
	Kind    Kind
	Page    int
	Current bool

	activate func()
}

// Activate requests a transition to the descriptor's page. Every call fires
// the change callback again. Ellipsis markers ignore activation.
func (d Descriptor) Activate() {
	if d.Kind != KindPage || d.activate == nil {
		return
	}
	d.activate()
}

// Equal reports whether two descriptors render identically.
func (d Descriptor) Equal(other Descriptor) bool {
	return d.Kind == other.Kind && d.Page == other.Page && d.Current == other.Current
}

// Request holds the pagination inputs owned by the host component.
type Request struct {
	CurrentPage  int
	PageSize     int
	TotalItems   int
	WithEllipsis bool
}

// Sequence is the computed pager state.
type Sequence struct {
	Items      []Descriptor
	TotalPages int
	CanGoPrev  bool
	CanGoNext  bool

	current  int
	onChange func(int)
}

// TotalPages returns ceil(totalItems/pageSize), never less than one.
// pageSize must be positive.
func TotalPages(pageSize, totalItems int) int {
	if totalItems <= 0 {
		return 1
	}
	return (totalItems-1)/pageSize + 1
}

// Validate reports configuration errors in the request. An out-of-range
// current page is not an error.
func (r Request) Validate() error {
	if r.PageSize <= 0 {
		return trelliserrors.NewValidationError("page_size", fmt.Sprintf("must be at least 1, got %d", r.PageSize), nil)
	}
	if r.TotalItems < 0 {
		return trelliserrors.NewValidationError("total_items", fmt.Sprintf("must not be negative, got %d", r.TotalItems), nil)
	}
	return nil
}

// Compute builds the page sequence for the request. onChange receives the
// target page whenever a page descriptor is activated; it may be nil.
func Compute(req Request, onChange func(page int)) (Sequence, error) {
	if err := req.Validate(); err != nil {
		return Sequence{}, err
	}

	total := TotalPages(req.PageSize, req.TotalItems)
	seq := Sequence{
		TotalPages: total,
		CanGoPrev:  req.CurrentPage > 1,
		CanGoNext:  req.CurrentPage < total,
		current:    req.CurrentPage,
		onChange:   onChange,
	}

	if !req.WithEllipsis || total <= collapseThreshold {
		seq.Items = make([]Descriptor, 0, total)
		for page := 1; page <= total; page++ {
			seq.Items = append(seq.Items, seq.page(page))
		}
		return seq, nil
	}

	// current is unclamped and may sit at either int bound; compare before adding.
	current := req.CurrentPage
	lo, hi := 2, total-1
	if current > 2+WindowRadius {
		lo = current - WindowRadius
	}
	if current < total-1-WindowRadius {
		hi = current + WindowRadius
	}

	seq.Items = make([]Descriptor, 0, WindowRadius*2+5)
	seq.Items = append(seq.Items, seq.page(1))
	if lo > 2 {
		seq.Items = append(seq.Items, Descriptor{Kind: KindEllipsis})
	}
	for page := lo; page <= hi; page++ {
		seq.Items = append(seq.Items, seq.page(page))
	}
	if hi < total-1 {
		seq.Items = append(seq.Items, Descriptor{Kind: KindEllipsis})
	}
	seq.Items = append(seq.Items, seq.page(total))

	return seq, nil
}

// Fallback returns the degenerate single-page sequence rendered when a request
// is misconfigured.
func Fallback(req Request, onChange func(page int)) Sequence {
	seq := Sequence{
		TotalPages: 1,
		CanGoPrev:  req.CurrentPage > 1,
		CanGoNext:  req.CurrentPage < 1,
		current:    req.CurrentPage,
		onChange:   onChange,
	}
	seq.Items = []Descriptor{seq.page(1)}
	return seq
}

func (s Sequence) page(n int) Descriptor {
	d := Descriptor{Kind: KindPage, Page: n, Current: n == s.current}
	if s.onChange != nil {
		onChange := s.onChange
		d.activate = func() { onChange(n) }
	}
	return d
}

// CurrentPage returns the page the sequence was computed for, unclamped.
func (s Sequence) CurrentPage() int {
	return s.current
}

// Pages returns the page numbers of the sequence in order, skipping ellipsis markers.
func (s Sequence) Pages() []int {
	pages := make([]int, 0, len(s.Items))
	for _, item := range s.Items {
		if item.Kind == KindPage {
			pages = append(pages, item.Page)
		}
	}
	return pages
}

// Ellipses counts the ellipsis markers in the sequence.
func (s Sequence) Ellipses() int {
	count := 0
	for _, item := range s.Items {
		if item.Kind == KindEllipsis {
			count++
		}
	}
	return count
}

// Prev returns the page before the current one and whether moving there is allowed.
func (s Sequence) Prev() (int, bool) {
	if !s.CanGoPrev {
		return s.current, false
	}
	return s.current - 1, true
}

// Next returns the page after the current one and whether moving there is allowed.
func (s Sequence) Next() (int, bool) {
	if !s.CanGoNext {
		return s.current, false
	}
	return s.current + 1, true
}

// Equal reports structural equality, ignoring the change callbacks.
func (s Sequence) Equal(other Sequence) bool {
	if s.TotalPages != other.TotalPages || s.CanGoPrev != other.CanGoPrev || s.CanGoNext != other.CanGoNext {
		return false
	}
	if len(s.Items) != len(other.Items) {
		return false
	}
	for i := range s.Items {
		if !s.Items[i].Equal(other.Items[i]) {
			return false
		}
	}
	return true
}

// Bounds returns the half-open item range [start, end) shown on page.
// Pages outside [1, TotalPages] yield an empty range.
func Bounds(page, pageSize, totalItems int) (int, int) {
	if pageSize <= 0 || totalItems <= 0 || page < 1 {
		return 0, 0
	}
	if page > TotalPages(pageSize, totalItems) {
		return 0, 0
	}
	start := (page - 1) * pageSize
	if totalItems-start <= pageSize {
		return start, totalItems
	}
	return start, start + pageSize
}
