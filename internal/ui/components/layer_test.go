package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/trellis/internal/overlay"
)

func TestCanvasPlace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		top, left int
		block     string
		want      string
	}{
		{name: "inside", top: 0, left: 1, block: "ab", want: " ab  \n     "},
		{name: "clipped right", top: 1, left: 3, block: "xyz", want: "     \n   xy"},
		{name: "clipped left", top: 0, left: -1, block: "xyz", want: "yz   \n     "},
		{name: "clipped bottom", top: 1, left: 0, block: "a\nb", want: "     \na    "},
		{name: "outside", top: 5, left: 0, block: "a", want: "     \n     "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := NewCanvas(5, 2)
			c.Place(tt.top, tt.left, tt.block)
			require.Equal(t, tt.want, c.String())
		})
	}
}

func TestCanvasKeepsCellsAroundStyledBlocks(t *testing.T) {
	t.Parallel()

	c := CanvasFrom("abcdef\nghijkl")
	w, h := c.Size()
	require.Equal(t, 6, w)
	require.Equal(t, 2, h)

	c.Place(1, 2, lipgloss.NewStyle().Bold(true).Render("XY"))
	require.Equal(t, "abcdef\nghXYkl", plain(c.String()))
}

func TestFloatingPosition(t *testing.T) {
	t.Parallel()

	anchor := overlay.Rect{Top: 5, Left: 10, Width: 6, Height: 1}

	top, left := Floating{Anchor: anchor, Placement: overlay.PlacementBottomLeft, Gap: 1}.Position("abc")
	require.Equal(t, 7, top)
	require.Equal(t, 10, left)

	top, left = Floating{Anchor: anchor, Placement: overlay.PlacementTop, Gap: 1}.Position("abcd\nefgh")
	require.Equal(t, 2, top)
	require.Equal(t, 11, left)
}

func TestLayerComposesPanelsInsideViewport(t *testing.T) {
	t.Parallel()

	base := NewText(strings.Repeat(".", 10) + "\n" + strings.Repeat(".", 10))
	layer := NewLayer(base).WithSize(10, 4).Add(Floating{
		Content:   NewText("XY"),
		Anchor:    overlay.Rect{Top: 0, Left: 8, Width: 2, Height: 1},
		Placement: overlay.PlacementBottomLeft,
	})

	lines := strings.Split(plain(layer.View()), "\n")
	require.Len(t, lines, 4)
	require.Equal(t, "........XY", lines[1])
	require.Equal(t, strings.Repeat(" ", 10), lines[3])
}
