package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/trellis/internal/overlay"
)

type placeOptions struct {
	top         float64
	left        float64
	width       float64
	height      float64
	placement   string
	gap         float64
	panelWidth  float64
	panelHeight float64
	jsonOutput  bool
}

func newPlaceCmd(app *AppContext) *cobra.Command {
	opts := &placeOptions{}

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Position a floating panel against an anchor",
		Long: `Compute where a floating panel sits relative to an anchor rectangle.
Unknown placement keywords fall back to the configured tooltip placement.
Pass --panel-width and --panel-height to resolve the panel's absolute corner.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.load(cmd); err != nil {
				return err
			}
			return runPlace(cmd, app, opts)
		},
	}

	cmd.Flags().Float64Var(&opts.top, "top", 0, "Anchor top edge")
	cmd.Flags().Float64Var(&opts.left, "left", 0, "Anchor left edge")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "Anchor width")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "Anchor height")
	cmd.Flags().StringVar(&opts.placement, "placement", "", "Placement keyword such as top, bottom-left or right-bottom")
	cmd.Flags().Float64Var(&opts.gap, "gap", 0, "Distance between anchor and panel")
	cmd.Flags().Float64Var(&opts.panelWidth, "panel-width", 0, "Panel width used to resolve its position")
	cmd.Flags().Float64Var(&opts.panelHeight, "panel-height", 0, "Panel height used to resolve its position")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runPlace(cmd *cobra.Command, app *AppContext, opts *placeOptions) error {
	if opts.width < 0 || opts.height < 0 {
		return newCommandError("place", "reading the anchor rectangle", fmt.Errorf("anchor size %gx%g is negative", opts.width, opts.height), "Pass a non-negative --width and --height.")
	}

	fallback := app.Config.Overlay.Tooltip()
	placement := fallback
	if opts.placement != "" {
		placement = overlay.ParsePlacement(opts.placement, fallback)
		if !overlay.IsKnown(opts.placement) {
			app.Log.WithFields(map[string]any{"placement": opts.placement, "fallback": fallback.String()}).Warn("unknown placement, using fallback")
		}
	}
	gap := app.Config.Overlay.Gap
	if cmd.Flags().Changed("gap") {
		gap = opts.gap
	}

	anchor := overlay.Rect{Top: opts.top, Left: opts.left, Width: opts.width, Height: opts.height}
	result := overlay.Compute(anchor, placement, gap)
	arrow := overlay.ArrowFor(result.Placement)

	var panel *overlay.Rect
	if opts.panelWidth > 0 && opts.panelHeight > 0 {
		bounds := result.Bounds(overlay.Size{Width: opts.panelWidth, Height: opts.panelHeight})
		panel = &bounds
	}

	if opts.jsonOutput {
		return renderPlacementJSON(cmd, result, arrow, panel)
	}
	return renderPlacementText(cmd, result, arrow, panel, app.Config.ASCII)
}

type pointJSON struct {
	Top  float64 `json:"top"`
	Left float64 `json:"left"`
}

type arrowJSON struct {
	Edge   string   `json:"edge"`
	Offset *float64 `json:"offset,omitempty"`
}

type placementJSONPayload struct {
	Placement string     `json:"placement"`
	Offset    pointJSON  `json:"offset"`
	Transform string     `json:"transform"`
	Arrow     arrowJSON  `json:"arrow"`
	Panel     *pointJSON `json:"panel,omitempty"`
}

func renderPlacementJSON(cmd *cobra.Command, result overlay.Result, arrow overlay.Arrow, panel *overlay.Rect) error {
	payload := placementJSONPayload{
		Placement: result.Placement.String(),
		Offset:    pointJSON{Top: result.Offset.Top, Left: result.Offset.Left},
		Transform: result.Translate.String(),
		Arrow:     arrowJSON{Edge: arrow.Edge.String()},
	}
	if panel != nil {
		payload.Panel = &pointJSON{Top: panel.Top, Left: panel.Left}
		offset := arrow.Offset(arrowExtent(arrow, *panel))
		payload.Arrow.Offset = &offset
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func renderPlacementText(cmd *cobra.Command, result overlay.Result, arrow overlay.Arrow, panel *overlay.Rect, ascii bool) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "placement: %s\n", result.Placement)
	fmt.Fprintf(out, "offset:    top=%g left=%g\n", result.Offset.Top, result.Offset.Left)
	fmt.Fprintf(out, "transform: %s\n", result.Translate)
	if panel == nil {
		fmt.Fprintf(out, "arrow:     %s %s edge\n", arrow.Glyph(ascii), arrow.Edge)
		return nil
	}
	fmt.Fprintf(out, "panel:     top=%g left=%g\n", panel.Top, panel.Left)
	fmt.Fprintf(out, "arrow:     %s %s edge at %g\n", arrow.Glyph(ascii), arrow.Edge, arrow.Offset(arrowExtent(arrow, *panel)))
	return nil
}

// arrowExtent is the length of the panel edge carrying the arrow.
func arrowExtent(arrow overlay.Arrow, panel overlay.Rect) float64 {
	if arrow.Edge == overlay.SideTop || arrow.Edge == overlay.SideBottom {
		return panel.Width
	}
	return panel.Height
}
