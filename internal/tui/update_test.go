package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/trellis/internal/ui/components"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	return NewModel(Options{Settings: DefaultSettings(), Clipboard: func(string) error { return nil }})
}

func press(m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestUpdateMovesBetweenStories(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, "paged-list", m.Current().Name)

	m, _ = press(m, runes("k"))
	m, _ = press(m, runes("k"))
	require.Equal(t, "badges", m.Current().Name, "cursor wraps")
}

func TestUpdateFocusForwardsKeysToStory(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.Focused())

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyRight})
	require.NotNil(t, cmd)
	msg := cmd()
	require.Equal(t, components.PageChangedMsg{ID: "pagination", Page: 2}, msg)

	updated, _ := m.Update(msg)
	m = updated.(Model)
	require.Equal(t, "pagination: page 2", m.Status())

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, "pagination", m.Current().Name, "arrows belong to the story while focused")

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyTab})
	require.False(t, m.Focused())
}

func TestUpdateQuit(t *testing.T) {
	m := newTestModel(t)

	_, cmd := press(m, runes("q"))
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	_, cmd = press(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())
}

func TestUpdateCopiesFrame(t *testing.T) {
	var copied string
	m := NewModel(Options{Settings: DefaultSettings(), Clipboard: func(s string) error {
		copied = s
		return nil
	}})

	m, cmd := press(m, runes("c"))
	require.NotNil(t, cmd)
	updated, _ := m.Update(cmd())
	m = updated.(Model)

	require.Contains(t, copied, "page 1 of")
	require.NotContains(t, copied, "\x1b[")
	require.Equal(t, "copied pagination to clipboard", m.Status())
}

func TestUpdateReportsCopyFailure(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(copiedMsg{story: "pagination", err: errors.New("no clipboard")})
	m = updated.(Model)
	require.Equal(t, "copy failed: no clipboard", m.Status())
}

func TestUpdateTogglesThemeAndGlyphs(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(m, runes("T"))
	require.Equal(t, "dark", m.theme.Name)
	m, _ = press(m, runes("T"))
	require.Equal(t, "light", m.theme.Name)

	m, _ = press(m, runes("a"))
	require.True(t, m.ascii)
}

func TestUpdateWindowSize(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)
	require.Equal(t, 120, m.width)
	require.Equal(t, 120-sidebarWidth-4, m.storyWidth())
	require.Equal(t, 40-chromeHeight, m.storyHeight())
}

func TestUpdateToggleHelp(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(m, runes("?"))
	require.True(t, m.showHelp)
	require.True(t, m.help.ShowAll)
}

func TestUpdateRecordsModalEvents(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(components.ModalToggledMsg{ID: "dialog", Open: true})
	m = updated.(Model)
	require.Equal(t, "dialog: opened", m.Status())

	updated, _ = m.Update(components.DialogSubmittedMsg{ID: "dialog"})
	m = updated.(Model)
	require.Equal(t, "dialog: submitted", m.Status())
}
