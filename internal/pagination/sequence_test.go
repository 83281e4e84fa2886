package pagination

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	trelliserrors "github.com/alexisbeaulieu97/trellis/pkg/errors"
)

func render(seq Sequence) []string {
	out := make([]string, 0, len(seq.Items))
	for _, item := range seq.Items {
		switch {
		case item.Kind == KindEllipsis:
			out = append(out, "...")
		case item.Current:
			out = append(out, "["+strconv.Itoa(item.Page)+"]")
		default:
			out = append(out, strconv.Itoa(item.Page))
		}
	}
	return out
}

func TestTotalPages(t *testing.T) {
	t.Parallel()

	cases := []struct {
		pageSize, total, want int
	}{
		{20, 0, 1},
		{20, 1, 1},
		{20, 20, 1},
		{20, 21, 2},
		{20, 102, 6},
		{8, 100, 13},
		{1, 7, 7},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TotalPages(tc.pageSize, tc.total), "pageSize=%d total=%d", tc.pageSize, tc.total)
	}
}

func TestTotalPagesMatchesCeilingForAllSmallInputs(t *testing.T) {
	t.Parallel()

	for pageSize := 1; pageSize <= 12; pageSize++ {
		for total := 0; total <= 150; total++ {
			want := (total + pageSize - 1) / pageSize
			if want < 1 {
				want = 1
			}
			seq, err := Compute(Request{CurrentPage: 1, PageSize: pageSize, TotalItems: total}, nil)
			require.NoError(t, err)
			require.Equal(t, want, seq.TotalPages)
		}
	}
}

func TestComputeWithoutEllipsisListsEveryPage(t *testing.T) {
	t.Parallel()

	seq, err := Compute(Request{CurrentPage: 5, PageSize: 20, TotalItems: 102}, nil)
	require.NoError(t, err)

	assert.Equal(t, 6, seq.TotalPages)
	assert.Equal(t, []string{"1", "2", "3", "4", "[5]", "6"}, render(seq))
	assert.True(t, seq.CanGoPrev)
	assert.True(t, seq.CanGoNext)
}

func TestComputeWithoutEllipsisLengthEqualsTotalPages(t *testing.T) {
	t.Parallel()

	for total := 0; total <= 400; total += 13 {
		seq, err := Compute(Request{CurrentPage: 3, PageSize: 7, TotalItems: total}, nil)
		require.NoError(t, err)
		pages := seq.Pages()
		require.Len(t, pages, seq.TotalPages)
		for i, page := range pages {
			require.Equal(t, i+1, page)
		}
		require.Zero(t, seq.Ellipses())
	}
}

func TestComputeWithEllipsisAtFirstPage(t *testing.T) {
	t.Parallel()

	seq, err := Compute(Request{CurrentPage: 1, PageSize: 8, TotalItems: 100, WithEllipsis: true}, nil)
	require.NoError(t, err)

	assert.Equal(t, 13, seq.TotalPages)
	assert.Equal(t, []string{"[1]", "2", "3", "...", "13"}, render(seq))
	assert.False(t, seq.CanGoPrev)
	assert.True(t, seq.CanGoNext)
}

func TestComputeWithEllipsisWindows(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		current int
		want    []string
	}{
		{"near start", 3, []string{"1", "2", "[3]", "4", "5", "...", "13"}},
		{"first gap", 5, []string{"1", "...", "3", "4", "[5]", "6", "7", "...", "13"}},
		{"middle", 7, []string{"1", "...", "5", "6", "[7]", "8", "9", "...", "13"}},
		{"near end", 11, []string{"1", "...", "9", "10", "[11]", "12", "13"}},
		{"last page", 13, []string{"1", "...", "11", "12", "[13]"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			seq, err := Compute(Request{CurrentPage: tc.current, PageSize: 8, TotalItems: 100, WithEllipsis: true}, nil)
			require.NoError(t, err)
			assert.Equal(t, tc.want, render(seq))
		})
	}
}

func TestComputeWithEllipsisShortRangeIsNotTruncated(t *testing.T) {
	t.Parallel()

	// Seven pages fit inside the window, so nothing collapses.
	seq, err := Compute(Request{CurrentPage: 1, PageSize: 10, TotalItems: 70, WithEllipsis: true}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"[1]", "2", "3", "4", "5", "6", "7"}, render(seq))

	seq, err = Compute(Request{CurrentPage: 1, PageSize: 10, TotalItems: 71, WithEllipsis: true}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, seq.Ellipses())
}

func TestComputeWithEllipsisSinglePage(t *testing.T) {
	t.Parallel()

	seq, err := Compute(Request{CurrentPage: 1, PageSize: 10, TotalItems: 0, WithEllipsis: true}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"[1]"}, render(seq))
	assert.False(t, seq.CanGoPrev)
	assert.False(t, seq.CanGoNext)
}

func TestComputeWithEllipsisInvariants(t *testing.T) {
	t.Parallel()

	for total := 0; total <= 60; total++ {
		for current := -2; current <= total+3; current++ {
			seq, err := Compute(Request{CurrentPage: current, PageSize: 1, TotalItems: total, WithEllipsis: true}, nil)
			require.NoError(t, err)

			require.LessOrEqual(t, seq.Ellipses(), 2)
			require.Equal(t, KindPage, seq.Items[0].Kind)
			require.Equal(t, 1, seq.Items[0].Page)
			last := seq.Items[len(seq.Items)-1]
			require.Equal(t, KindPage, last.Kind)
			require.Equal(t, seq.TotalPages, last.Page)

			pages := seq.Pages()
			for i := 1; i < len(pages); i++ {
				require.Less(t, pages[i-1], pages[i], "total=%d current=%d", total, current)
			}
			for i := 1; i < len(seq.Items); i++ {
				bothEllipsis := seq.Items[i-1].Kind == KindEllipsis && seq.Items[i].Kind == KindEllipsis
				require.False(t, bothEllipsis, "adjacent ellipsis markers")
			}
		}
	}
}

func TestAvailabilityFlags(t *testing.T) {
	t.Parallel()

	for _, current := range []int{-3, 0, 1, 2, 5, 6, 7, 40} {
		seq, err := Compute(Request{CurrentPage: current, PageSize: 20, TotalItems: 102}, nil)
		require.NoError(t, err)
		assert.Equal(t, current > 1, seq.CanGoPrev, "current=%d", current)
		assert.Equal(t, current < seq.TotalPages, seq.CanGoNext, "current=%d", current)
	}
}

func TestOutOfRangeCurrentMarksNothing(t *testing.T) {
	t.Parallel()

	for _, current := range []int{0, -1, 7, 100} {
		for _, ellipsis := range []bool{false, true} {
			seq, err := Compute(Request{CurrentPage: current, PageSize: 20, TotalItems: 102, WithEllipsis: ellipsis}, nil)
			require.NoError(t, err)
			for _, item := range seq.Items {
				assert.False(t, item.Current)
			}
			assert.Equal(t, current, seq.CurrentPage())
		}
	}
}

func TestOutOfRangeCurrentWithEllipsis(t *testing.T) {
	t.Parallel()

	seq, err := Compute(Request{CurrentPage: 100, PageSize: 8, TotalItems: 100, WithEllipsis: true}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "...", "13"}, render(seq))

	seq, err = Compute(Request{CurrentPage: -5, PageSize: 8, TotalItems: 100, WithEllipsis: true}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "...", "13"}, render(seq))
}

func TestComputeIsIdempotent(t *testing.T) {
	t.Parallel()

	req := Request{CurrentPage: 6, PageSize: 8, TotalItems: 100, WithEllipsis: true}
	first, err := Compute(req, func(int) {})
	require.NoError(t, err)
	second, err := Compute(req, func(int) {})
	require.NoError(t, err)

	assert.True(t, first.Equal(second))
	assert.Equal(t, render(first), render(second))

	other, err := Compute(Request{CurrentPage: 7, PageSize: 8, TotalItems: 100, WithEllipsis: true}, nil)
	require.NoError(t, err)
	assert.False(t, first.Equal(other))
}

func TestActivateFiresOncePerCall(t *testing.T) {
	t.Parallel()

	var fired []int
	seq, err := Compute(Request{CurrentPage: 1, PageSize: 8, TotalItems: 100, WithEllipsis: true}, func(page int) {
		fired = append(fired, page)
	})
	require.NoError(t, err)

	seq.Items[1].Activate()
	seq.Items[1].Activate()
	seq.Items[len(seq.Items)-1].Activate()
	seq.Items[3].Activate() // ellipsis

	assert.Equal(t, []int{2, 2, 13}, fired)
}

func TestActivateWithoutCallbackIsNoop(t *testing.T) {
	t.Parallel()

	seq, err := Compute(Request{CurrentPage: 1, PageSize: 10, TotalItems: 30}, nil)
	require.NoError(t, err)
	require.NotPanics(t, func() { seq.Items[0].Activate() })
}

func TestInvalidConfiguration(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		req   Request
		field string
	}{
		{"zero page size", Request{CurrentPage: 1, PageSize: 0, TotalItems: 10}, "page_size"},
		{"negative page size", Request{CurrentPage: 1, PageSize: -4, TotalItems: 10}, "page_size"},
		{"negative total", Request{CurrentPage: 1, PageSize: 10, TotalItems: -1}, "total_items"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Compute(tc.req, nil)
			var validationErr *trelliserrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestFallbackIsSinglePage(t *testing.T) {
	t.Parallel()

	var fired []int
	seq := Fallback(Request{CurrentPage: 1, PageSize: 0, TotalItems: 50}, func(page int) { fired = append(fired, page) })

	assert.Equal(t, 1, seq.TotalPages)
	assert.Equal(t, []string{"[1]"}, render(seq))
	assert.False(t, seq.CanGoPrev)
	assert.False(t, seq.CanGoNext)

	seq.Items[0].Activate()
	assert.Equal(t, []int{1}, fired)
}

func TestPrevNext(t *testing.T) {
	t.Parallel()

	seq, err := Compute(Request{CurrentPage: 1, PageSize: 10, TotalItems: 30}, nil)
	require.NoError(t, err)
	_, ok := seq.Prev()
	assert.False(t, ok)
	next, ok := seq.Next()
	assert.True(t, ok)
	assert.Equal(t, 2, next)

	seq, err = Compute(Request{CurrentPage: 3, PageSize: 10, TotalItems: 30}, nil)
	require.NoError(t, err)
	prev, ok := seq.Prev()
	assert.True(t, ok)
	assert.Equal(t, 2, prev)
	_, ok = seq.Next()
	assert.False(t, ok)
}

func TestBounds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		page, size, total int
		start, end        int
	}{
		{1, 20, 102, 0, 20},
		{6, 20, 102, 100, 102},
		{7, 20, 102, 0, 0},
		{0, 20, 102, 0, 0},
		{1, 0, 102, 0, 0},
		{1, 20, 0, 0, 0},
	}
	for _, tc := range cases {
		start, end := Bounds(tc.page, tc.size, tc.total)
		assert.Equal(t, tc.start, start, "page=%d", tc.page)
		assert.Equal(t, tc.end, end, "page=%d", tc.page)
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "page", KindPage.String())
	assert.Equal(t, "ellipsis", KindEllipsis.String())
	assert.Equal(t, "kind(9)", Kind(9).String())
}

func TestExtremeInputsDoNotOverflow(t *testing.T) {
	t.Parallel()

	require.Equal(t, math.MaxInt/2+1, TotalPages(2, math.MaxInt))
	require.Equal(t, math.MaxInt, TotalPages(1, math.MaxInt))
	require.Equal(t, 1, TotalPages(math.MaxInt, math.MaxInt))

	cases := []struct {
		name string
		req  Request
		want []string
	}{
		{
			name: "current far past the last page",
			req:  Request{CurrentPage: math.MaxInt, PageSize: 10, TotalItems: 1000, WithEllipsis: true},
			want: []string{"1", "...", "100"},
		},
		{
			name: "current far before the first page",
			req:  Request{CurrentPage: math.MinInt, PageSize: 10, TotalItems: 1000, WithEllipsis: true},
			want: []string{"1", "...", "100"},
		},
		{
			name: "current on the largest page",
			req:  Request{CurrentPage: math.MaxInt, PageSize: 1, TotalItems: math.MaxInt, WithEllipsis: true},
			want: []string{"1", "...", strconv.Itoa(math.MaxInt - 2), strconv.Itoa(math.MaxInt - 1), "[" + strconv.Itoa(math.MaxInt) + "]"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			seq, err := Compute(tc.req, nil)
			require.NoError(t, err)
			require.Equal(t, tc.want, render(seq))
			require.LessOrEqual(t, seq.Ellipses(), 1)
		})
	}
}

func TestBoundsAtExtremes(t *testing.T) {
	t.Parallel()

	start, end := Bounds(math.MaxInt/2+1, 2, math.MaxInt)
	require.Equal(t, math.MaxInt-1, start)
	require.Equal(t, math.MaxInt, end)

	start, end = Bounds(math.MaxInt, 10, 1000)
	require.Zero(t, start)
	require.Zero(t, end)
}
