package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SpacingSize enumerates supported spacing size tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
)

const spacingSizeCount = int(SpacingSizeLarge) + 1

type spacingTable [spacingSizeCount]int

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBase TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantBody
	TypographyVariantCode
	TypographyVariantEmphasis
	TypographyVariantMuted
)

type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
	BorderVariantDouble
)

type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantSecondary
	ButtonVariantSuccess
	ButtonVariantError
	ButtonVariantWarning
	ButtonVariantInfo
	ButtonVariantMuted
)

// PageItemState is the visual state of a pagination entry.
type PageItemState int

const (
	PageItemDefault PageItemState = iota
	PageItemCurrent
	PageItemDisabled
	PageItemEllipsis
)

// TabState is the visual state of a tab label.
type TabState int

const (
	TabInactive TabState = iota
	TabActive
)

// OptionState is the visual state of a menu option.
type OptionState int

const (
	OptionIdle OptionState = iota
	OptionHighlighted
	OptionSelected
)

// PanelVariant styles floating panels.
type PanelVariant int

const (
	PanelTooltip PanelVariant = iota
	PanelDropdown
	PanelDialog
	PanelDrawer
)

// SwitchState is the visual state of a switch track.
type SwitchState int

const (
	SwitchOff SwitchState = iota
	SwitchOn
	SwitchDisabled
)

// CheckState is the visual state of a checkbox or radio mark.
type CheckState int

const (
	CheckOff CheckState = iota
	CheckOn
	CheckDisabled
)

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Info      ColourSet
	Neutral   ColourSet
	// Rating colours stars; #FBDB14 in both modes.
	Rating ColourSet
}

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// TypographyScale contains semantic typography presets.
type TypographyScale struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
	Muted    lipgloss.Style
}

// VariantRegistry maps component variants to their styling strategies.
// Keys are typed enum values, so equal integers of different variant types
// never collide.
type VariantRegistry struct {
	strategies map[any]StyleStrategy
}

// NewVariantRegistry creates a new variant registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{strategies: make(map[any]StyleStrategy)}
}

// Register adds a variant-to-strategy mapping.
func (vr *VariantRegistry) Register(variant any, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get retrieves the strategy for a variant, or nil if not found.
func (vr *VariantRegistry) Get(variant any) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme represents an immutable styling theme for components.
type Theme struct {
	Name       string
	Palette    Palette
	Borders    BorderSet
	Padding    spacingTable
	Typography TypographyScale
	Variants   *VariantRegistry
}

// Style resolves variant against base, returning base unchanged when the
// variant is not registered.
func (t Theme) Style(base lipgloss.Style, variant any) lipgloss.Style {
	if strategy := t.Variants.Get(variant); strategy != nil {
		return strategy.Apply(base, t)
	}
	return base
}

func defaultSpacingTable() spacingTable {
	return spacingTable{
		SpacingSizeNone:       0,
		SpacingSizeExtraSmall: 1,
		SpacingSizeSmall:      1,
		SpacingSizeMedium:     2,
		SpacingSizeLarge:      3,
	}
}

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// DefaultTheme returns the light theme.
func DefaultTheme() Theme {
	palette := Palette{
		Primary:   ColourSet{Base: ac("#3b82f6", "#60a5fa"), OnBase: ac("#f8fafc", "#0b1120"), Muted: ac("#2563eb", "#1d4ed8"), Contrast: ac("#facc15", "#ca8a04")},
		Secondary: ColourSet{Base: ac("#a855f7", "#c084fc"), OnBase: ac("#f8fafc", "#1f2937"), Muted: ac("#7c3aed", "#6b21a8"), Contrast: ac("#f472b6", "#f472b6")},
		Surface:   ColourSet{Base: ac("#f9fafb", "#111827"), OnBase: ac("#111827", "#f9fafb"), Muted: ac("#e2e8f0", "#1f2937"), Contrast: ac("#3b82f6", "#60a5fa")},
		Success:   ColourSet{Base: ac("#22c55e", "#4ade80"), OnBase: ac("#052e16", "#022c22"), Muted: ac("#16a34a", "#15803d"), Contrast: ac("#f8fafc", "#f8fafc")},
		Warning:   ColourSet{Base: ac("#eab308", "#facc15"), OnBase: ac("#422006", "#422006"), Muted: ac("#ca8a04", "#a16207"), Contrast: ac("#111827", "#111827")},
		Danger:    ColourSet{Base: ac("#ef4444", "#f87171"), OnBase: ac("#7f1d1d", "#450a0a"), Muted: ac("#dc2626", "#b91c1c"), Contrast: ac("#f8fafc", "#f8fafc")},
		Info:      ColourSet{Base: ac("#06b6d4", "#22d3ee"), OnBase: ac("#083344", "#04121a"), Muted: ac("#0891b2", "#0e7490"), Contrast: ac("#f8fafc", "#f8fafc")},
		Neutral:   ColourSet{Base: ac("#64748b", "#94a3b8"), OnBase: ac("#f1f5f9", "#0f172a"), Muted: ac("#cbd5e1", "#334155"), Contrast: ac("#f8fafc", "#f8fafc")},
		Rating:    ColourSet{Base: ac("#FBDB14", "#FBDB14"), OnBase: ac("#111827", "#111827"), Muted: ac("#F0F0F0", "#374151"), Contrast: ac("#ca8a04", "#ca8a04")},
	}
	return newTheme("light", palette)
}

// DarkTheme returns a dark theme variant.
func DarkTheme() Theme {
	theme := DefaultTheme()
	palette := theme.Palette
	palette.Surface = ColourSet{Base: ac("#111827", "#0b1120"), OnBase: ac("#f9fafb", "#e5e7eb"), Muted: ac("#1f2937", "#111827"), Contrast: ac("#3b82f6", "#60a5fa")}
	palette.Neutral = ColourSet{Base: ac("#475569", "#334155"), OnBase: ac("#e5e7eb", "#cbd5f5"), Muted: ac("#374151", "#1f2937"), Contrast: ac("#f8fafc", "#f8fafc")}
	return newTheme("dark", palette)
}

// LightTheme returns the light theme.
func LightTheme() Theme {
	return DefaultTheme()
}

// ThemeByName resolves a configured theme name.
func ThemeByName(name string) (Theme, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "light", "default":
		return LightTheme(), true
	case "dark":
		return DarkTheme(), true
	default:
		return DefaultTheme(), false
	}
}

func newTheme(name string, palette Palette) Theme {
	theme := Theme{
		Name:    name,
		Palette: palette,
		Borders: BorderSet{
			None:    lipgloss.Border{},
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
			Double:  lipgloss.DoubleBorder(),
		},
		Padding:    defaultSpacingTable(),
		Typography: defaultTypography(palette),
		Variants:   NewVariantRegistry(),
	}

	registerButtonVariants(theme.Variants)
	registerBadgeVariants(theme.Variants)
	registerPageItemVariants(theme.Variants)
	registerTabVariants(theme.Variants)
	registerOptionVariants(theme.Variants)
	registerPanelVariants(theme.Variants)
	registerSwitchVariants(theme.Variants)
	registerCheckVariants(theme.Variants)
	return theme
}

func registerButtonVariants(registry *VariantRegistry) {
	slots := map[ButtonVariant]PaletteSlot{
		ButtonVariantPrimary:   PalettePrimary,
		ButtonVariantSecondary: PaletteSecondary,
		ButtonVariantSuccess:   PaletteSuccess,
		ButtonVariantError:     PaletteDanger,
		ButtonVariantWarning:   PaletteWarning,
		ButtonVariantInfo:      PaletteInfo,
		ButtonVariantMuted:     PaletteNeutral,
	}
	for variant, slot := range slots {
		registry.Register(variant, NewCompositeStrategy(
			Background(slot),
			PaddingX(SpacingSizeMedium),
		))
	}
}

func registerBadgeVariants(registry *VariantRegistry) {
	slots := map[BadgeVariant]PaletteSlot{
		BadgeVariantDefault:   PaletteNeutral,
		BadgeVariantPrimary:   PalettePrimary,
		BadgeVariantSecondary: PaletteSecondary,
		BadgeVariantSuccess:   PaletteSuccess,
		BadgeVariantWarning:   PaletteWarning,
		BadgeVariantError:     PaletteDanger,
		BadgeVariantInfo:      PaletteInfo,
	}
	for variant, slot := range slots {
		registry.Register(variant, NewCompositeStrategy(
			Background(slot),
			PaddingX(SpacingSizeSmall),
		))
	}
}

func registerPageItemVariants(registry *VariantRegistry) {
	registry.Register(PageItemDefault, NewCompositeStrategy(
		Foreground(PaletteSurface),
		PaddingX(SpacingSizeSmall),
	))
	registry.Register(PageItemCurrent, NewCompositeStrategy(
		Background(PalettePrimary),
		PaddingX(SpacingSizeSmall),
		Typography(TypographyVariantEmphasis),
	))
	registry.Register(PageItemDisabled, NewCompositeStrategy(
		PaddingX(SpacingSizeSmall),
		Typography(TypographyVariantMuted),
	))
	registry.Register(PageItemEllipsis, NewCompositeStrategy(
		PaddingX(SpacingSizeNone),
		Typography(TypographyVariantMuted),
	))
}

func registerTabVariants(registry *VariantRegistry) {
	registry.Register(TabInactive, NewCompositeStrategy(
		PaddingX(SpacingSizeSmall),
		Typography(TypographyVariantMuted),
	))
	registry.Register(TabActive, NewCompositeStrategy(
		PaddingX(SpacingSizeSmall),
		Foreground(PalettePrimary),
		Typography(TypographyVariantEmphasis),
		func(base lipgloss.Style, _ Theme) lipgloss.Style { return base.Underline(true) },
	))
}

func registerOptionVariants(registry *VariantRegistry) {
	registry.Register(OptionIdle, NewCompositeStrategy(PaddingX(SpacingSizeSmall)))
	registry.Register(OptionHighlighted, NewCompositeStrategy(
		PaddingX(SpacingSizeSmall),
		Background(PaletteInfo),
	))
	registry.Register(OptionSelected, NewCompositeStrategy(
		PaddingX(SpacingSizeSmall),
		Foreground(PalettePrimary),
	))
}

func registerPanelVariants(registry *VariantRegistry) {
	registry.Register(PanelTooltip, NewCompositeStrategy(
		Background(PaletteNeutral),
		PaddingX(SpacingSizeSmall),
	))
	registry.Register(PanelDropdown, NewCompositeStrategy(
		Border(BorderVariantRounded),
		BorderColour(PaletteNeutral),
	))
	registry.Register(PanelDialog, NewCompositeStrategy(
		Border(BorderVariantRounded),
		BorderColour(PalettePrimary),
		PaddingX(SpacingSizeSmall),
	))
	registry.Register(PanelDrawer, NewCompositeStrategy(
		Border(BorderVariantNormal),
		BorderColour(PaletteNeutral),
		PaddingX(SpacingSizeSmall),
	))
}

func registerSwitchVariants(registry *VariantRegistry) {
	registry.Register(SwitchOff, NewCompositeStrategy(Background(PaletteNeutral)))
	registry.Register(SwitchOn, NewCompositeStrategy(Background(PalettePrimary)))
	registry.Register(SwitchDisabled, NewCompositeStrategy(
		Background(PaletteNeutral),
		Typography(TypographyVariantMuted),
	))
}

func registerCheckVariants(registry *VariantRegistry) {
	registry.Register(CheckOn, NewCompositeStrategy(Foreground(PalettePrimary)))
	registry.Register(CheckDisabled, NewCompositeStrategy(Typography(TypographyVariantMuted)))
}

func defaultTypography(p Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Base:     base,
		Title:    base.Bold(true).Foreground(p.Primary.Base),
		Subtitle: base.Foreground(p.Secondary.Muted).Faint(true),
		Body:     base,
		Code:     base.Foreground(p.Secondary.Base).Background(p.Surface.Muted).Padding(0, 1),
		Emphasis: base.Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(p.Neutral.Base).Faint(true),
	}
}

// BorderForVariant returns the border style for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantRounded:
		return theme.Borders.Rounded
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantDouble:
		return theme.Borders.Double
	default:
		return theme.Borders.None
	}
}

// PaddingValue returns the padding value for the given size.
func PaddingValue(theme Theme, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(theme.Padding) {
		index = int(SpacingSizeMedium)
	}
	return theme.Padding[index]
}

// TypographyStyle returns the specified typography style from the given theme.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantSubtitle:
		return typo.Subtitle
	case TypographyVariantBody:
		return typo.Body
	case TypographyVariantCode:
		return typo.Code
	case TypographyVariantEmphasis:
		return typo.Emphasis
	case TypographyVariantMuted:
		return typo.Muted
	default:
		return typo.Base
	}
}

// ColourSet represents a semantic color set with base, on-base, muted, and contrast colors.
//
//   - Base: The primary background or brand color
//   - OnBase: Text color that contrasts with Base
//   - Muted: A desaturated variant of Base
//   - Contrast: An accent that stands out against Base
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// PaletteSlot provides access to a semantic colour slot from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning   PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo      PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
	PaletteRating    PaletteSlot = func(p Palette) ColourSet { return p.Rating }
)

// Background applies a semantic background colour and matching foreground.
//
//	badge := NewBadge("new").WithAppliers(Background(PalettePrimary))
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour without changing the background.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// Border applies a border style from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

// BorderColour colours every border edge from a palette slot.
func BorderColour(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(slot(theme.Palette).Base)
	}
}

func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Padding(PaddingValue(theme, size))
	}
}

func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := PaddingValue(theme, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

// Typography applies typography styling
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}
