package overlay

// ArrowInset is the distance of a corner-aligned arrow from the panel corner.
const ArrowInset = 12

// Arrow describes the pointer drawn on a panel's edge facing the anchor.
type Arrow struct {
	// Edge is the panel edge that carries the arrow; it faces the anchor.
	Edge Side
	// Align positions the arrow along Edge.
	Align Align
	// Inset is the distance from the aligned corner; zero for centered arrows.
	Inset float64
}

// ArrowFor returns the arrow for a placement. Invalid placements use
// TooltipDefault.
func ArrowFor(placement Placement) Arrow {
	if !placement.Valid() {
		placement = TooltipDefault
	}

	var edge Side
	switch placement.Side() {
	case SideTop:
		edge = SideBottom
	case SideBottom:
		edge = SideTop
	case SideLeft:
		edge = SideRight
	case SideRight:
		edge = SideLeft
	}

	align := placement.Align()
	inset := 0.0
	if align != AlignCenter {
		inset = ArrowInset
	}
	return Arrow{Edge: edge, Align: align, Inset: inset}
}

// Offset returns the arrow's distance from the start of its edge on a panel
// of the given extent along that edge.
func (a Arrow) Offset(extent float64) float64 {
	switch a.Align {
	case AlignStart:
		return a.Inset
	case AlignEnd:
		return extent - a.Inset
	default:
		return extent / 2
	}
}

// Glyph returns the character pointing from the panel toward the anchor.
func (a Arrow) Glyph(ascii bool) string {
	if ascii {
		switch a.Edge {
		case SideTop:
			return "^"
		case SideBottom:
			return "v"
		case SideLeft:
			return "<"
		default:
			return ">"
		}
	}
	switch a.Edge {
	case SideTop:
		return "▲"
	case SideBottom:
		return "▼"
	case SideLeft:
		return "◀"
	default:
		return "▶"
	}
}
