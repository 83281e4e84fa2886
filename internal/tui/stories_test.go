package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/trellis/internal/ui/components"
	trelliserrors "github.com/alexisbeaulieu97/trellis/pkg/errors"
)

func TestStoriesAreUniqueAndRender(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for _, story := range Stories() {
		require.False(t, seen[story.Name], "duplicate story %s", story.Name)
		seen[story.Name] = true

		view, err := RenderStory(story.Name, DefaultSettings(), components.DefaultContext())
		require.NoError(t, err)
		require.NotEmpty(t, strings.TrimSpace(ansi.Strip(view)), story.Name)
	}
}

func TestLookupUnknownStory(t *testing.T) {
	t.Parallel()

	_, err := Lookup("nope")
	var renderErr *trelliserrors.RenderError
	require.ErrorAs(t, err, &renderErr)
	require.Equal(t, "nope", renderErr.Story)
	require.Contains(t, err.Error(), "pagination")
}

func TestPagedListFollowsPager(t *testing.T) {
	t.Parallel()

	settings := DefaultSettings()
	settings.Pagination.PageSize = 3
	settings.Pagination.TotalItems = 7

	w := newPagedListStory(settings)
	view := ansi.Strip(w.ViewWithContext(components.DefaultContext()))
	require.Contains(t, view, "Item 3")
	require.NotContains(t, view, "Item 4")

	w.Update(tea.KeyMsg{Type: tea.KeyEnd})
	view = ansi.Strip(w.ViewWithContext(components.DefaultContext()))
	require.Contains(t, view, "Item 7")
	require.NotContains(t, view, "Item 6")
}

func TestPlacementStoriesCycle(t *testing.T) {
	t.Parallel()

	w := newTooltipStory(DefaultSettings())
	ctx := components.DefaultContext()
	require.Contains(t, ansi.Strip(w.ViewWithContext(ctx)), "placement: top")

	w.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	require.Contains(t, ansi.Strip(w.ViewWithContext(ctx)), "placement: top-left")

	w = newDropdownStory(DefaultSettings())
	require.Contains(t, ansi.Strip(w.ViewWithContext(ctx)), "placement: bottom")
	w.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	require.Contains(t, ansi.Strip(w.ViewWithContext(ctx)), "placement: bottom-left")
}

func TestTooltipStoryResizes(t *testing.T) {
	t.Parallel()

	w := newTooltipStory(DefaultSettings())
	w.Update(tea.WindowSizeMsg{Width: 30, Height: 12})
	lines := strings.Split(ansi.Strip(w.ViewWithContext(components.DefaultContext())), "\n")
	require.Len(t, lines, 11, "label plus a 10 row viewport")
	for _, line := range lines[1:] {
		require.LessOrEqual(t, len([]rune(line)), 30)
	}
}

func TestModalStoriesOpenAndClose(t *testing.T) {
	t.Parallel()

	ctx := components.DefaultContext().WithConstraints(components.Bounded(70, 20))
	open := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'o'}}

	w := newDialogStory(DefaultSettings())
	require.NotContains(t, ansi.Strip(w.ViewWithContext(ctx)), "Delete archive.zip?")
	cmd := w.Update(open)
	require.NotNil(t, cmd)
	require.Equal(t, components.ModalToggledMsg{ID: "dialog", Open: true}, cmd())
	require.Contains(t, ansi.Strip(w.ViewWithContext(ctx)), "Delete archive.zip?")
	require.NotNil(t, w.Update(tea.KeyMsg{Type: tea.KeyEnter}))
	require.NotContains(t, ansi.Strip(w.ViewWithContext(ctx)), "Delete archive.zip?")

	w = newDrawerStory(DefaultSettings())
	w.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	require.Contains(t, ansi.Strip(w.ViewWithContext(ctx)), "edge: right")
	require.NotNil(t, w.Update(open))
	require.Contains(t, ansi.Strip(w.ViewWithContext(ctx)), "Projects")
	cmd = w.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	require.Equal(t, components.ModalToggledMsg{ID: "drawer", Open: false}, cmd())
	require.NotContains(t, ansi.Strip(w.ViewWithContext(ctx)), "Projects")
}
