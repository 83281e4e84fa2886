package components

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/trellis/internal/logger"
)

func dotGrid(ch string, width, height int) *Text {
	lines := make([]string, height)
	for i := range lines {
		lines[i] = strings.Repeat(ch, width)
	}
	return NewText(strings.Join(lines, "\n"))
}

func TestModal(t *testing.T) {
	t.Parallel()

	t.Run("closed modal shows the background", func(t *testing.T) {
		t.Parallel()
		bg := dotGrid(".", 10, 4)
		m := NewModal(bg, NewText("XY"))
		require.Equal(t, plain(bg.View()), plain(m.View()))
	})

	t.Run("panel is centred below the offset", func(t *testing.T) {
		t.Parallel()
		m := NewModal(dotGrid(".", 10, 4), NewText("XY")).WithOffset(1).WithDefaultOpen(true)
		lines := strings.Split(plain(m.View()), "\n")
		require.Equal(t, []string{"..........", "....XY....", "..........", ".........."}, lines)
	})

	t.Run("bounded context fixes the frame", func(t *testing.T) {
		t.Parallel()
		m := NewModal(nil, NewText("hi")).WithDefaultOpen(true)
		lines := strings.Split(plain(m.ViewWithContext(DefaultContext().WithConstraints(Bounded(10, 5)))), "\n")
		require.Len(t, lines, 5)
		require.Equal(t, "    hi    ", lines[2])
		require.Equal(t, strings.Repeat(" ", 10), lines[4])
	})

	t.Run("escape closes once", func(t *testing.T) {
		t.Parallel()
		m := NewModal(dotGrid(".", 4, 2), NewText("x")).WithID("m").WithDefaultOpen(true)
		require.Nil(t, m.Update(keyPress(tea.KeyEnter)))
		msg := message(t, m.Update(keyPress(tea.KeyEsc)))
		require.Equal(t, ModalToggledMsg{ID: "m", Open: false}, msg)
		require.False(t, m.IsOpen())
		require.Nil(t, m.Update(keyPress(tea.KeyEsc)))
	})

	t.Run("controlled waits for sync", func(t *testing.T) {
		t.Parallel()
		var requested []bool
		m := NewModal(nil, NewText("x")).WithOpen(false).OnOpenChange(func(open bool) {
			requested = append(requested, open)
		})
		m.Open()
		require.Equal(t, []bool{true}, requested)
		require.False(t, m.IsOpen())
		m.SyncOpen(true)
		require.True(t, m.IsOpen())
	})
}

func TestDialog(t *testing.T) {
	t.Parallel()

	newDialog := func(submitted *int) *Dialog {
		return NewDialog("Delete file", NewText("Remove it?")).WithID("del").OnSubmit(func() { *submitted++ })
	}

	t.Run("closed dialog ignores keys", func(t *testing.T) {
		t.Parallel()
		var submitted int
		d := newDialog(&submitted)
		require.Nil(t, d.Update(keyPress(tea.KeyEnter)))
		require.False(t, d.Submit())
		require.Zero(t, submitted)
		require.NotContains(t, plain(d.View()), "Delete file")
	})

	t.Run("confirm submits and closes", func(t *testing.T) {
		t.Parallel()
		var submitted int
		d := newDialog(&submitted)
		require.True(t, d.Open())
		require.Equal(t, DialogConfirm, d.Focused())

		view := plain(d.View())
		for _, want := range []string{"Delete file", "Remove it?", "Cancel", "Confirm"} {
			require.Contains(t, view, want)
		}

		msgs := collect(d.Update(keyPress(tea.KeyEnter)))
		require.ElementsMatch(t, []tea.Msg{
			DialogSubmittedMsg{ID: "del"},
			ModalToggledMsg{ID: "del", Open: false},
		}, msgs)
		require.Equal(t, 1, submitted)
		require.False(t, d.IsOpen())
	})

	t.Run("cancel closes without submitting", func(t *testing.T) {
		t.Parallel()
		var submitted int
		d := newDialog(&submitted)
		d.Open()
		require.Nil(t, d.Update(keyPress(tea.KeyLeft)))
		require.Equal(t, DialogCancel, d.Focused())

		msg := message(t, d.Update(keyPress(tea.KeyEnter)))
		require.Equal(t, ModalToggledMsg{ID: "del", Open: false}, msg)
		require.Zero(t, submitted)

		d.Open()
		require.Equal(t, DialogConfirm, d.Focused())
		msg = message(t, d.Update(keyPress(tea.KeyEsc)))
		require.Equal(t, ModalToggledMsg{ID: "del", Open: false}, msg)
		require.Zero(t, submitted)
	})

	t.Run("panel keeps a margin in narrow frames", func(t *testing.T) {
		t.Parallel()
		d := NewDialog("A title far too long to fit in the header row", NewText("body")).WithLabels("No", "Yes")
		ctx := asciiContext().WithConstraints(Bounded(30, 12))
		panel := d.Panel(ctx)
		require.Equal(t, 30-2*dialogMargin, lipgloss.Width(panel))
		require.Contains(t, plain(panel), "...")

		d.Open()
		lines := strings.Split(plain(d.ViewWithContext(ctx)), "\n")
		require.Len(t, lines, 12)
		require.True(t, strings.HasPrefix(lines[defaultModalOffset], strings.Repeat(" ", dialogMargin)+"╭"))
	})

	t.Run("wide frames cap the panel width", func(t *testing.T) {
		t.Parallel()
		d := NewDialog("t", NewText("body"))
		require.Equal(t, DefaultDialogWidth, lipgloss.Width(d.Panel(DefaultContext().WithConstraints(Bounded(120, 40)))))
	})
}

func TestDrawer(t *testing.T) {
	t.Parallel()

	newDrawer := func(edge string) *Drawer {
		return NewDrawer(dotGrid(".", 20, 6), NewText("menu")).WithID("nav").WithEdge(edge).WithMask(false).WithDefaultOpen(true)
	}

	t.Run("left drawer spans the height", func(t *testing.T) {
		t.Parallel()
		lines := strings.Split(plain(newDrawer("left").View()), "\n")
		require.Len(t, lines, 6)
		require.Equal(t, "┌──────┐"+strings.Repeat(".", 12), lines[0])
		require.Equal(t, "│ menu │"+strings.Repeat(".", 12), lines[1])
		require.Equal(t, "└──────┘"+strings.Repeat(".", 12), lines[5])
	})

	t.Run("right drawer hugs the right edge", func(t *testing.T) {
		t.Parallel()
		lines := strings.Split(plain(newDrawer("right").View()), "\n")
		require.Equal(t, strings.Repeat(".", 12)+"│ menu │", lines[1])
	})

	t.Run("top and bottom drawers span the width", func(t *testing.T) {
		t.Parallel()
		top := strings.Split(plain(newDrawer("top").WithSize(3).View()), "\n")
		require.Equal(t, "┌"+strings.Repeat("─", 18)+"┐", top[0])
		require.True(t, strings.HasPrefix(top[1], "│ menu"))
		require.Equal(t, strings.Repeat(".", 20), top[3])

		bottom := strings.Split(plain(newDrawer("bottom").WithSize(3).View()), "\n")
		require.Equal(t, strings.Repeat(".", 20), bottom[2])
		require.True(t, strings.HasPrefix(bottom[4], "│ menu"))
		require.Equal(t, "└"+strings.Repeat("─", 18)+"┘", bottom[5])
	})

	t.Run("unknown edges fall back to left", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log, err := logger.New(logger.Options{Level: "debug", Writer: &buf})
		require.NoError(t, err)

		d := NewDrawer(nil, NewText("x")).WithLogger(log).WithEdge("diagonal")
		require.Equal(t, DrawerLeft, d.Edge())
		require.Contains(t, buf.String(), "unknown drawer edge")

		edge, ok := ParseDrawerEdge(" Right ")
		require.True(t, ok)
		require.Equal(t, DrawerRight, edge)
		require.Equal(t, "right", edge.String())
	})

	t.Run("escape closes", func(t *testing.T) {
		t.Parallel()
		d := newDrawer("left")
		msg := message(t, d.Update(keyPress(tea.KeyEsc)))
		require.Equal(t, ModalToggledMsg{ID: "nav", Open: false}, msg)
		require.Equal(t, strings.Repeat(".", 20), strings.Split(plain(d.View()), "\n")[1])
	})
}
