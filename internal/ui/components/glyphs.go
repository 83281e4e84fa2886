package components

// Glyphs is the set of symbols widgets draw with.
type Glyphs struct {
	Prev      string
	Next      string
	Ellipsis  string
	Separator string
	Expanded  string
	Collapsed string
	Caret     string
	CaretOpen string
	StarFull  string
	StarHalf  string
	StarEmpty string
	DotOn     string
	DotOff    string
	Cursor    string
	Check     string
	Close     string
	BoxOn     string
	BoxOff    string
	RadioOn   string
	RadioOff  string
}

// UnicodeGlyphs is the default glyph set.
func UnicodeGlyphs() Glyphs {
	return Glyphs{
		Prev:      "‹",
		Next:      "›",
		Ellipsis:  "…",
		Separator: "›",
		Expanded:  "▾",
		Collapsed: "▸",
		Caret:     "▾",
		CaretOpen: "▴",
		StarFull:  "★",
		StarHalf:  "⯪",
		StarEmpty: "☆",
		DotOn:     "●",
		DotOff:    "○",
		Cursor:    "›",
		Check:     "✓",
		Close:     "×",
		BoxOn:     "☑",
		BoxOff:    "☐",
		RadioOn:   "◉",
		RadioOff:  "○",
	}
}

// ASCIIGlyphs is used when the terminal cannot draw unicode symbols.
func ASCIIGlyphs() Glyphs {
	return Glyphs{
		Prev:      "<",
		Next:      ">",
		Ellipsis:  "...",
		Separator: "/",
		Expanded:  "v",
		Collapsed: ">",
		Caret:     "v",
		CaretOpen: "^",
		StarFull:  "*",
		StarHalf:  "+",
		StarEmpty: ".",
		DotOn:     "o",
		DotOff:    ".",
		Cursor:    ">",
		Check:     "x",
		Close:     "x",
		BoxOn:     "[x]",
		BoxOff:    "[ ]",
		RadioOn:   "(*)",
		RadioOff:  "( )",
	}
}
