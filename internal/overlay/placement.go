// Package overlay positions floating panels (dropdown menus, tooltips)
// relative to an anchor box.
//
// The panel's own size is unknown when the position is computed, so a Result
// pairs an anchor-relative origin with a translate whose components mix a
// fraction of the panel's own size and a pixel (or cell) amount. Hosts either
// emit the translate directly as a self-relative transform or resolve it once
// the panel has been measured.
package overlay

import "strings"

// Placement names the side or corner of the anchor a panel attaches to.
type Placement int

const (
	PlacementInvalid Placement = iota
	PlacementTop
	PlacementTopLeft
	PlacementTopRight
	PlacementBottom
	PlacementBottomLeft
	PlacementBottomRight
	PlacementLeft
	PlacementLeftTop
	PlacementLeftBottom
	PlacementRight
	PlacementRightTop
	PlacementRightBottom
)

// Defaults used by the widgets when a keyword does not parse.
const (
	TooltipDefault  = PlacementTop
	DropdownDefault = PlacementBottom
)

var placementKeywords = map[Placement]string{
	PlacementTop:         "top",
	PlacementTopLeft:     "top-left",
	PlacementTopRight:    "top-right",
	PlacementBottom:      "bottom",
	PlacementBottomLeft:  "bottom-left",
	PlacementBottomRight: "bottom-right",
	PlacementLeft:        "left",
	PlacementLeftTop:     "left-top",
	PlacementLeftBottom:  "left-bottom",
	PlacementRight:       "right",
	PlacementRightTop:    "right-top",
	PlacementRightBottom: "right-bottom",
}

// Placements returns every valid placement in declaration order.
func Placements() []Placement {
	return []Placement{
		PlacementTop,
		PlacementTopLeft,
		PlacementTopRight,
		PlacementBottom,
		PlacementBottomLeft,
		PlacementBottomRight,
		PlacementLeft,
		PlacementLeftTop,
		PlacementLeftBottom,
		PlacementRight,
		PlacementRightTop,
		PlacementRightBottom,
	}
}

// ParsePlacement maps a keyword such as "bottom-left" to a Placement.
// Unknown keywords return fallback.
func ParsePlacement(keyword string, fallback Placement) Placement {
	normalized := strings.ToLower(strings.TrimSpace(keyword))
	for placement, name := range placementKeywords {
		if name == normalized {
			return placement
		}
	}
	return fallback
}

// IsKnown reports whether keyword names one of the twelve placements.
func IsKnown(keyword string) bool {
	return ParsePlacement(keyword, PlacementInvalid) != PlacementInvalid
}

// Valid reports whether p is one of the twelve placements.
func (p Placement) Valid() bool {
	_, ok := placementKeywords[p]
	return ok
}

func (p Placement) String() string {
	if name, ok := placementKeywords[p]; ok {
		return name
	}
	return "invalid"
}

// Side is the anchor edge the panel sits against.
type Side int

const (
	SideTop Side = iota
	SideBottom
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	default:
		return "right"
	}
}

// Align is where the panel sits along the anchor edge.
type Align int

const (
	AlignCenter Align = iota
	AlignStart
	AlignEnd
)

// Side returns the primary side of the placement.
func (p Placement) Side() Side {
	switch p {
	case PlacementBottom, PlacementBottomLeft, PlacementBottomRight:
		return SideBottom
	case PlacementLeft, PlacementLeftTop, PlacementLeftBottom:
		return SideLeft
	case PlacementRight, PlacementRightTop, PlacementRightBottom:
		return SideRight
	default:
		return SideTop
	}
}

// Align returns the cross-axis alignment of the placement. Start means the
// left edge for top/bottom placements and the top edge for left/right ones.
func (p Placement) Align() Align {
	switch p {
	case PlacementTopLeft, PlacementBottomLeft, PlacementLeftTop, PlacementRightTop:
		return AlignStart
	case PlacementTopRight, PlacementBottomRight, PlacementLeftBottom, PlacementRightBottom:
		return AlignEnd
	default:
		return AlignCenter
	}
}
