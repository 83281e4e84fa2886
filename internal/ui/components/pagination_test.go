package components

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/trellis/internal/logger"
	"github.com/alexisbeaulieu97/trellis/internal/pagination"
)

func TestPaginationNavigation(t *testing.T) {
	t.Parallel()

	t.Run("next and prev move one page", func(t *testing.T) {
		t.Parallel()
		p := NewPagination(100).WithPageSize(10)
		require.Equal(t, 1, p.Page())
		require.False(t, p.Prev())
		require.True(t, p.Next())
		require.Equal(t, 2, p.Page())
		require.True(t, p.Prev())
		require.Equal(t, 1, p.Page())
	})

	t.Run("goto clamps to the page range", func(t *testing.T) {
		t.Parallel()
		p := NewPagination(100).WithPageSize(10)
		require.True(t, p.GoTo(50))
		require.Equal(t, 10, p.Page())
		require.False(t, p.Next())
		require.True(t, p.GoTo(-3))
		require.Equal(t, 1, p.Page())
	})

	t.Run("activating an ellipsis does nothing", func(t *testing.T) {
		t.Parallel()
		p := NewPagination(200).WithPageSize(10).WithEllipsis(true)
		seq := p.Sequence()
		require.Equal(t, []int{1, 2, 3, 20}, seq.Pages())
		require.Equal(t, pagination.KindEllipsis, seq.Items[3].Kind)

		require.False(t, p.ActivateItem(3))
		require.True(t, p.ActivateItem(4))
		require.Equal(t, 20, p.Page())
	})
}

func TestPaginationActivationFiresEveryPress(t *testing.T) {
	t.Parallel()

	var requested []int
	p := NewPagination(100).WithPageSize(10).OnChange(func(page int) {
		requested = append(requested, page)
	})

	require.True(t, p.ActivateItem(1))
	require.False(t, p.ActivateItem(1), "page 2 is already current")
	require.Equal(t, []int{2, 2}, requested)
	require.Equal(t, 2, p.Page())

	require.False(t, p.GoTo(2), "programmatic moves still skip the current page")
	require.Equal(t, []int{2, 2}, requested)
}

func TestPaginationUpdate(t *testing.T) {
	t.Parallel()

	p := NewPagination(100).WithPageSize(10).WithID("pager")

	msg := message(t, p.Update(keyPress(tea.KeyRight)))
	require.Equal(t, PageChangedMsg{ID: "pager", Page: 2}, msg)

	msg = message(t, p.Update(keyPress(tea.KeyEnd)))
	require.Equal(t, PageChangedMsg{ID: "pager", Page: 10}, msg)
	require.Nil(t, p.Update(keyPress(tea.KeyRight)), "next is disabled on the last page")

	msg = message(t, p.Update(runeKey('g')))
	require.Equal(t, PageChangedMsg{ID: "pager", Page: 1}, msg)
	require.Nil(t, p.Update(keyPress(tea.KeyLeft)), "prev is disabled on the first page")
}

func TestControlledPagination(t *testing.T) {
	t.Parallel()

	var requested []int
	p := NewPagination(100).WithPageSize(10).WithPage(3).OnChange(func(page int) {
		requested = append(requested, page)
	})

	require.False(t, p.page.Set(3))
	p.Next()
	require.Equal(t, []int{4}, requested)
	require.Equal(t, 3, p.Page(), "page waits for the owner")

	p.SyncPage(4)
	require.Equal(t, 4, p.Page())

	require.False(t, p.ActivateItem(0), "activation only requests the page")
	require.Equal(t, []int{4, 1}, requested)
}

func TestPaginationView(t *testing.T) {
	t.Parallel()

	p := NewPagination(200).WithPageSize(10).WithEllipsis(true).WithDefaultPage(10)
	fields := strings.Fields(plain(p.ViewWithContext(asciiContext())))
	require.Equal(t, []string{"<", "1", "...", "8", "9", "10", "11", "12", "...", "20", ">"}, fields)
}

func TestPaginationFallsBackOnInvalidConfig(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Level: "debug", Writer: &buf})
	require.NoError(t, err)

	p := NewPagination(100).WithPageSize(0).WithLogger(log)
	var view string
	require.NotPanics(t, func() { view = p.ViewWithContext(asciiContext()) })
	require.Equal(t, []string{"<", "1", ">"}, strings.Fields(plain(view)))
	require.Contains(t, buf.String(), "invalid pagination configuration")
	require.Contains(t, buf.String(), `"component":"pagination"`)

	require.False(t, p.Next())
	require.Equal(t, 1, p.Page())
}
