package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFramesIdentical(t *testing.T) {
	t.Parallel()

	require.Empty(t, Frames("a\nb\n", "a\nb\n", "golden", "rendered"))
}

func TestFramesMarksChangedRows(t *testing.T) {
	t.Parallel()

	out := Frames("< 1 2 3 >\npage 1 of 3\n", "< 1 2 3 >\npage 2 of 3\n", "golden", "rendered")
	require.Contains(t, out, "--- golden\n+++ rendered\n")
	require.Contains(t, out, "@@ -1,2 +1,2 @@\n")
	require.Contains(t, out, " < 1 2 3 >\n")
	require.Contains(t, out, "-page 1 of 3\n")
	require.Contains(t, out, "+page 2 of 3\n")
}

func TestFramesAddedAndRemovedRows(t *testing.T) {
	t.Parallel()

	out := Frames("a\nb\n", "a\nb\nc\n", "want", "got")
	require.Contains(t, out, "+c\n")
	require.NotContains(t, out, "-a")

	out = Frames("a\nb\n", "b\n", "want", "got")
	require.Contains(t, out, "-a\n")
}

func TestFramesTruncates(t *testing.T) {
	t.Parallel()

	want := strings.Repeat("x\n", maxDiffLines+10)
	out := Frames(want, "", "want", "got")
	require.True(t, strings.HasSuffix(out, truncateMessage+"\n"))
}
