package overlay

import (
	"math"
	"strconv"
)

// Rect is a measured box in viewport coordinates.
type Rect struct {
	Top    float64
	Left   float64
	Width  float64
	Height float64
}

// Point is an absolute position.
type Point struct {
	Top  float64
	Left float64
}

// Size is a measured panel size.
type Size struct {
	Width  float64
	Height float64
}

// Length is a translate component: Percent of the panel's own extent on the
// same axis plus a fixed Pixels amount.
type Length struct {
	Percent float64
	Pixels  float64
}

// Resolve converts the length to an absolute amount for a panel of the given extent.
func (l Length) Resolve(own float64) float64 {
	return l.Percent/100*own + l.Pixels
}

// String renders the length as CSS, using calc() when both parts are set.
func (l Length) String() string {
	switch {
	case l.Percent == 0:
		return formatNumber(l.Pixels) + "px"
	case l.Pixels == 0:
		return formatNumber(l.Percent) + "%"
	case l.Pixels < 0:
		return "calc(" + formatNumber(l.Percent) + "% - " + formatNumber(-l.Pixels) + "px)"
	default:
		return "calc(" + formatNumber(l.Percent) + "% + " + formatNumber(l.Pixels) + "px)"
	}
}

func formatNumber(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Translate is the transform applied to the panel after it is placed at Offset.
type Translate struct {
	X Length
	Y Length
}

// String renders the translate as a CSS transform.
func (t Translate) String() string {
	return "translate(" + t.X.String() + ", " + t.Y.String() + ")"
}

// Result is the computed position of a floating panel.
type Result struct {
	Placement Placement
	Offset    Point
	Translate Translate
}

// Resolve returns the panel's absolute top-left corner once its size is known.
func (r Result) Resolve(panel Size) Point {
	return Point{
		Top:  r.Offset.Top + r.Translate.Y.Resolve(panel.Height),
		Left: r.Offset.Left + r.Translate.X.Resolve(panel.Width),
	}
}

// Bounds returns the panel's absolute rectangle once its size is known.
func (r Result) Bounds(panel Size) Rect {
	origin := r.Resolve(panel)
	return Rect{Top: origin.Top, Left: origin.Left, Width: panel.Width, Height: panel.Height}
}

// Compute positions a panel against anchor. Placements outside the twelve
// known values are treated as PlacementTop. gap separates the panel from the
// anchor along the primary axis only.
func Compute(anchor Rect, placement Placement, gap float64) Result {
	if !placement.Valid() {
		placement = TooltipDefault
	}

	w, h := anchor.Width, anchor.Height
	above := Length{Percent: -100, Pixels: -gap}
	below := Length{Pixels: h + gap}
	before := Length{Percent: -100, Pixels: -gap}
	after := Length{Pixels: w + gap}

	var t Translate
	switch placement {
	case PlacementTop:
		t = Translate{X: Length{Percent: -50, Pixels: w / 2}, Y: above}
	case PlacementTopLeft:
		t = Translate{X: Length{}, Y: above}
	case PlacementTopRight:
		t = Translate{X: Length{Percent: -100, Pixels: w}, Y: above}
	case PlacementBottom:
		t = Translate{X: Length{Percent: -50, Pixels: w / 2}, Y: below}
	case PlacementBottomLeft:
		t = Translate{X: Length{}, Y: below}
	case PlacementBottomRight:
		t = Translate{X: Length{Percent: -100, Pixels: w}, Y: below}
	case PlacementLeft:
		t = Translate{X: before, Y: Length{Percent: -50, Pixels: h / 2}}
	case PlacementLeftTop:
		t = Translate{X: before, Y: Length{}}
	case PlacementLeftBottom:
		t = Translate{X: before, Y: Length{Percent: -100, Pixels: h}}
	case PlacementRight:
		t = Translate{X: after, Y: Length{Percent: -50, Pixels: h / 2}}
	case PlacementRightTop:
		t = Translate{X: after, Y: Length{}}
	case PlacementRightBottom:
		t = Translate{X: after, Y: Length{Percent: -100, Pixels: h}}
	default:
		panic("overlay: unhandled placement " + placement.String())
	}

	return Result{
		Placement: placement,
		Offset:    Point{Top: anchor.Top, Left: anchor.Left},
		Translate: t,
	}
}

// ComputeKeyword parses keyword with fallback and computes the placement.
func ComputeKeyword(anchor Rect, keyword string, fallback Placement, gap float64) Result {
	return Compute(anchor, ParsePlacement(keyword, fallback), gap)
}
