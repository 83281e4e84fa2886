package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/trellis/internal/pagination"
)

type paginateOptions struct {
	page       int
	pageSize   int
	total      int
	ellipsis   bool
	jsonOutput bool
}

func newPaginateCmd(app *AppContext) *cobra.Command {
	opts := &paginateOptions{}

	cmd := &cobra.Command{
		Use:   "paginate",
		Short: "Print the page buttons a pager would render",
		Long: `Compute the page sequence for a pager. Page size, item count and ellipsis
collapsing default to the pagination section of the configuration file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.load(cmd); err != nil {
				return err
			}
			return runPaginate(cmd, app, opts)
		},
	}

	cmd.Flags().IntVar(&opts.page, "page", 1, "Current page (1-based, not clamped)")
	cmd.Flags().IntVar(&opts.pageSize, "page-size", 0, "Items per page")
	cmd.Flags().IntVar(&opts.total, "total", 0, "Total number of items")
	cmd.Flags().BoolVar(&opts.ellipsis, "ellipsis", false, "Collapse long page ranges behind ellipsis markers")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runPaginate(cmd *cobra.Command, app *AppContext, opts *paginateOptions) error {
	req := app.Config.Pagination.Request(opts.page)
	if cmd.Flags().Changed("page-size") {
		req.PageSize = opts.pageSize
	}
	if cmd.Flags().Changed("total") {
		req.TotalItems = opts.total
	}
	if cmd.Flags().Changed("ellipsis") {
		req.WithEllipsis = opts.ellipsis
	}

	seq, err := pagination.Compute(req, nil)
	if err != nil {
		app.Log.Error(err, "invalid pagination configuration")
		return newCommandError("paginate", "computing the page sequence", err, "Use a --page-size of at least 1 and a non-negative --total.")
	}
	app.Log.WithFields(map[string]any{"pages": seq.TotalPages, "items": len(seq.Items)}).Debug("page sequence computed")

	if opts.jsonOutput {
		return renderSequenceJSON(cmd, seq)
	}
	return renderSequenceText(cmd, seq)
}

type sequenceJSONItem struct {
	Kind    string `json:"kind"`
	Page    int    `json:"page,omitempty"`
	Current bool   `json:"current,omitempty"`
}

type sequenceJSONPayload struct {
	CurrentPage int                `json:"current_page"`
	TotalPages  int                `json:"total_pages"`
	CanGoPrev   bool               `json:"can_go_prev"`
	CanGoNext   bool               `json:"can_go_next"`
	Items       []sequenceJSONItem `json:"items"`
}

func renderSequenceJSON(cmd *cobra.Command, seq pagination.Sequence) error {
	payload := sequenceJSONPayload{
		CurrentPage: seq.CurrentPage(),
		TotalPages:  seq.TotalPages,
		CanGoPrev:   seq.CanGoPrev,
		CanGoNext:   seq.CanGoNext,
		Items:       make([]sequenceJSONItem, len(seq.Items)),
	}
	for i, item := range seq.Items {
		payload.Items[i] = sequenceJSONItem{Kind: item.Kind.String(), Page: item.Page, Current: item.Current}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

// renderSequenceText prints "< 1 ... 4 [5] 6 ... 20 >" with unavailable
// arrows replaced by spaces.
func renderSequenceText(cmd *cobra.Command, seq pagination.Sequence) error {
	parts := make([]string, 0, len(seq.Items)+2)
	parts = append(parts, arrowOrBlank("<", seq.CanGoPrev))
	for _, item := range seq.Items {
		switch {
		case item.Kind == pagination.KindEllipsis:
			parts = append(parts, "...")
		case item.Current:
			parts = append(parts, "["+strconv.Itoa(item.Page)+"]")
		default:
			parts = append(parts, strconv.Itoa(item.Page))
		}
	}
	parts = append(parts, arrowOrBlank(">", seq.CanGoNext))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "page %d of %d\n", seq.CurrentPage(), seq.TotalPages)
	fmt.Fprintln(out, strings.Join(parts, " "))
	return nil
}

func arrowOrBlank(arrow string, enabled bool) string {
	if enabled {
		return arrow
	}
	return " "
}
