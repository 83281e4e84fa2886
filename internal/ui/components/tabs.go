package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/trellis/internal/ui"
)

// Tab is one labelled page of a Tabs widget.
type Tab struct {
	Label    string
	Content  ui.Renderable
	Disabled bool
}

// Tabs shows a row of labels and the content of the selected one. Moving
// past either end wraps around; disabled tabs are skipped.
type Tabs struct {
	BaseComponent
	id       string
	tabs     []Tab
	selected Value[int]
	keys     KeyMap
}

// NewTabs creates an uncontrolled tab group with the first tab selected.
func NewTabs(tabs ...Tab) *Tabs {
	return &Tabs{
		BaseComponent: NewBaseComponent(),
		tabs:          tabs,
		selected:      Uncontrolled(0),
		keys:          DefaultKeyMap(),
	}
}

func (t *Tabs) WithID(id string) *Tabs {
	t.id = id
	return t
}

// WithSelected makes the tab group controlled by its owner.
func (t *Tabs) WithSelected(index int) *Tabs {
	onChange := t.selected.onChange
	t.selected = Controlled(index)
	t.selected.OnChange(onChange)
	return t
}

func (t *Tabs) OnChange(fn func(index int)) *Tabs {
	t.selected.OnChange(fn)
	return t
}

func (t *Tabs) SyncSelected(index int) {
	t.selected.Sync(index)
}

// Selected returns the selected index.
func (t *Tabs) Selected() int {
	return t.selected.Get()
}

// Select requests tab i; out-of-range and disabled tabs are ignored.
func (t *Tabs) Select(i int) bool {
	if i < 0 || i >= len(t.tabs) || t.tabs[i].Disabled {
		return false
	}
	return t.selected.Set(i)
}

// Step returns the index delta tabs away from the selection, skipping
// disabled tabs and wrapping around. It returns the selection itself when
// no other tab is enabled.
func (t *Tabs) Step(delta int) int {
	n := len(t.tabs)
	current := t.selected.Get()
	if n == 0 || delta == 0 {
		return current
	}
	dir := 1
	if delta < 0 {
		dir = -1
	}
	i := current
	for range n {
		i = ((i+dir)%n + n) % n
		if !t.tabs[i].Disabled {
			return i
		}
	}
	return current
}

func (t *Tabs) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	var next int
	switch {
	case key.Matches(keyMsg, t.keys.Prev):
		next = t.Step(-1)
	case key.Matches(keyMsg, t.keys.Next):
		next = t.Step(1)
	default:
		return nil
	}
	if next == t.selected.Get() {
		return nil
	}
	t.Select(next)
	return emit(TabChangedMsg{ID: t.id, Index: next})
}

func (t *Tabs) View() string {
	return t.ViewWithContext(DefaultContext())
}

func (t *Tabs) ViewWithContext(ctx RenderContext) string {
	if len(t.tabs) == 0 {
		return ""
	}
	base := t.ComputeStyle(ctx.Theme)
	selected := t.selected.Get()

	labels := make([]string, len(t.tabs))
	for i, tab := range t.tabs {
		state := TabInactive
		if i == selected {
			state = TabActive
		}
		labels[i] = ctx.Theme.Style(base, state).Render(tab.Label)
	}
	header := strings.Join(labels, " ")
	rule := lipgloss.NewStyle().
		Foreground(ctx.Theme.Palette.Neutral.Muted).
		Render(strings.Repeat("─", lipgloss.Width(header)))
	if ctx.ASCII {
		rule = strings.Repeat("-", lipgloss.Width(header))
	}

	if selected < 0 || selected >= len(t.tabs) {
		return lipgloss.JoinVertical(lipgloss.Left, header, rule)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, rule, Render(t.tabs[selected].Content, ctx))
}
