package config

import (
	"github.com/alexisbeaulieu97/trellis/internal/overlay"
	"github.com/alexisbeaulieu97/trellis/internal/pagination"
)

// Config is the optional user configuration for the trellis CLI.
type Config struct {
	Theme      string           `yaml:"theme" validate:"omitempty,oneof=light dark"`
	ASCII      bool             `yaml:"ascii"`
	LogLevel   string           `yaml:"log_level" validate:"omitempty,oneof=trace debug info warn error disabled"`
	Pagination PaginationConfig `yaml:"pagination"`
	Overlay    OverlayConfig    `yaml:"overlay"`
}

// PaginationConfig seeds the explorer's pagination stories.
type PaginationConfig struct {
	PageSize     int  `yaml:"page_size" validate:"min=1"`
	TotalItems   int  `yaml:"total_items" validate:"min=0"`
	WithEllipsis bool `yaml:"with_ellipsis"`
}

// OverlayConfig holds defaults for floating panels.
type OverlayConfig struct {
	Gap               float64 `yaml:"gap" validate:"min=0"`
	DropdownPlacement string  `yaml:"dropdown_placement" validate:"omitempty,placement"`
	TooltipPlacement  string  `yaml:"tooltip_placement" validate:"omitempty,placement"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Theme:    "light",
		LogLevel: "info",
		Pagination: PaginationConfig{
			PageSize:     8,
			TotalItems:   100,
			WithEllipsis: true,
		},
		Overlay: OverlayConfig{
			Gap:               1,
			DropdownPlacement: overlay.DropdownDefault.String(),
			TooltipPlacement:  overlay.TooltipDefault.String(),
		},
	}
}

// Request builds a pagination request for page.
func (p PaginationConfig) Request(page int) pagination.Request {
	return pagination.Request{
		CurrentPage:  page,
		PageSize:     p.PageSize,
		TotalItems:   p.TotalItems,
		WithEllipsis: p.WithEllipsis,
	}
}

// Dropdown returns the configured dropdown placement.
func (o OverlayConfig) Dropdown() overlay.Placement {
	return overlay.ParsePlacement(o.DropdownPlacement, overlay.DropdownDefault)
}

// Tooltip returns the configured tooltip placement.
func (o OverlayConfig) Tooltip() overlay.Placement {
	return overlay.ParsePlacement(o.TooltipPlacement, overlay.TooltipDefault)
}
