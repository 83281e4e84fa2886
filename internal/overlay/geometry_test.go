package overlay

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeFormulas(t *testing.T) {
	t.Parallel()

	anchor := Rect{Top: 100, Left: 200, Width: 50, Height: 20}
	const gap = 12

	cases := []struct {
		placement Placement
		x, y      Length
	}{
		{PlacementTop, Length{-50, 25}, Length{-100, -12}},
		{PlacementTopLeft, Length{0, 0}, Length{-100, -12}},
		{PlacementTopRight, Length{-100, 50}, Length{-100, -12}},
		{PlacementBottom, Length{-50, 25}, Length{0, 32}},
		{PlacementBottomLeft, Length{0, 0}, Length{0, 32}},
		{PlacementBottomRight, Length{-100, 50}, Length{0, 32}},
		{PlacementLeft, Length{-100, -12}, Length{-50, 10}},
		{PlacementLeftTop, Length{-100, -12}, Length{0, 0}},
		{PlacementLeftBottom, Length{-100, -12}, Length{-100, 20}},
		{PlacementRight, Length{0, 62}, Length{-50, 10}},
		{PlacementRightTop, Length{0, 62}, Length{0, 0}},
		{PlacementRightBottom, Length{0, 62}, Length{-100, 20}},
	}

	for _, tc := range cases {
		t.Run(tc.placement.String(), func(t *testing.T) {
			t.Parallel()
			res := Compute(anchor, tc.placement, gap)
			assert.Equal(t, tc.placement, res.Placement)
			assert.Equal(t, Point{Top: 100, Left: 200}, res.Offset)
			assert.Equal(t, tc.x, res.Translate.X)
			assert.Equal(t, tc.y, res.Translate.Y)
		})
	}
}

func TestComputeBottomLeftScenario(t *testing.T) {
	t.Parallel()

	res := Compute(Rect{Top: 100, Left: 200, Width: 50, Height: 20}, ParsePlacement("bottom-left", TooltipDefault), 12)

	assert.Equal(t, Point{Top: 100, Left: 200}, res.Offset)
	assert.Equal(t, Length{}, res.Translate.X)
	assert.Equal(t, Length{Pixels: 32}, res.Translate.Y)
	assert.Equal(t, "translate(0px, 32px)", res.Translate.String())
}

func TestComputeUnknownKeywordFallsBack(t *testing.T) {
	t.Parallel()

	zero := Rect{}
	require.NotPanics(t, func() {
		res := ComputeKeyword(zero, "unknown-placement", TooltipDefault, 12)
		assert.Equal(t, Compute(zero, PlacementTop, 12), res)
	})

	res := ComputeKeyword(zero, "unknown-placement", DropdownDefault, 12)
	assert.Equal(t, Compute(zero, PlacementBottom, 12), res)

	res = Compute(zero, Placement(42), 12)
	assert.Equal(t, PlacementTop, res.Placement)
	assert.Equal(t, Length{Percent: -100, Pixels: -12}, res.Translate.Y)
}

func TestComputeEveryPlacementIsDistinct(t *testing.T) {
	t.Parallel()

	anchor := Rect{Top: 5, Left: 5, Width: 30, Height: 10}
	seen := make(map[Translate]Placement)
	for _, p := range Placements() {
		res := Compute(anchor, p, 4)
		if other, dup := seen[res.Translate]; dup {
			t.Fatalf("%s and %s share a translate", p, other)
		}
		seen[res.Translate] = p
	}
}

func TestComputeHandlesEveryKnownPlacement(t *testing.T) {
	t.Parallel()

	require.Len(t, Placements(), len(placementKeywords), "every keyword is enumerated")

	anchor := Rect{Width: 8, Height: 2}
	for _, p := range Placements() {
		require.NotPanics(t, func() {
			res := Compute(anchor, p, 1)
			assert.Equal(t, p, res.Placement)
			assert.NotEqual(t, Translate{}, res.Translate, p.String())
		})
	}

	require.NotPanics(t, func() {
		assert.Equal(t, PlacementTop, Compute(anchor, PlacementInvalid, 1).Placement)
		assert.Equal(t, PlacementTop, Compute(anchor, Placement(-1), 1).Placement)
	})
}

func TestTopTranslateGrowsWithGap(t *testing.T) {
	t.Parallel()

	anchor := Rect{Top: 40, Left: 40, Width: 16, Height: 4}
	panel := Size{Width: 20, Height: 6}
	previous := 0.0
	for gap := 0.0; gap <= 24; gap += 2 {
		res := Compute(anchor, PlacementTop, gap)
		magnitude := math.Abs(res.Translate.Y.Resolve(panel.Height))
		if gap > 0 {
			assert.Greater(t, magnitude, previous, "gap=%v", gap)
		}
		previous = magnitude
	}
}

func TestComputeIsIdempotent(t *testing.T) {
	t.Parallel()

	anchor := Rect{Top: 3, Left: 9, Width: 7, Height: 1}
	for _, p := range Placements() {
		assert.Equal(t, Compute(anchor, p, 1), Compute(anchor, p, 1))
	}
}

func TestResolvePlacesPanelOutsideAnchor(t *testing.T) {
	t.Parallel()

	anchor := Rect{Top: 100, Left: 200, Width: 50, Height: 20}
	panel := Size{Width: 80, Height: 30}
	const gap = 12

	cases := []struct {
		placement Placement
		want      Point
	}{
		{PlacementTop, Point{Top: 100 - 30 - 12, Left: 200 + 25 - 40}},
		{PlacementTopLeft, Point{Top: 58, Left: 200}},
		{PlacementTopRight, Point{Top: 58, Left: 250 - 80}},
		{PlacementBottom, Point{Top: 132, Left: 185}},
		{PlacementBottomLeft, Point{Top: 132, Left: 200}},
		{PlacementBottomRight, Point{Top: 132, Left: 170}},
		{PlacementLeft, Point{Top: 110 - 15, Left: 200 - 80 - 12}},
		{PlacementLeftTop, Point{Top: 100, Left: 108}},
		{PlacementLeftBottom, Point{Top: 120 - 30, Left: 108}},
		{PlacementRight, Point{Top: 95, Left: 262}},
		{PlacementRightTop, Point{Top: 100, Left: 262}},
		{PlacementRightBottom, Point{Top: 90, Left: 262}},
	}

	for _, tc := range cases {
		got := Compute(anchor, tc.placement, gap).Resolve(panel)
		assert.Equal(t, tc.want, got, tc.placement.String())
	}
}

func TestResolvedPanelNeverOverlapsAnchor(t *testing.T) {
	t.Parallel()

	anchor := Rect{Top: 50, Left: 50, Width: 10, Height: 3}
	panel := Size{Width: 14, Height: 5}
	for _, p := range Placements() {
		b := Compute(anchor, p, 1).Bounds(panel)
		overlapX := b.Left < anchor.Left+anchor.Width && anchor.Left < b.Left+b.Width
		overlapY := b.Top < anchor.Top+anchor.Height && anchor.Top < b.Top+b.Height
		assert.False(t, overlapX && overlapY, p.String())
	}
}

func TestLengthString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0px", Length{}.String())
	assert.Equal(t, "32px", Length{Pixels: 32}.String())
	assert.Equal(t, "-50%", Length{Percent: -50}.String())
	assert.Equal(t, "calc(-100% - 12px)", Length{Percent: -100, Pixels: -12}.String())
	assert.Equal(t, "calc(-50% + 12.5px)", Length{Percent: -50, Pixels: 12.5}.String())
}
