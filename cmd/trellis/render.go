package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/trellis/internal/tui"
	"github.com/alexisbeaulieu97/trellis/internal/ui/components"
	"github.com/alexisbeaulieu97/trellis/pkg/diff"
)

type renderOptions struct {
	theme  string
	ascii  bool
	width  int
	height int
	plain  bool
	list   bool
	golden string
	update bool
}

func newRenderCmd(app *AppContext) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:       "render [story]",
		Short:     "Print one explorer story without starting the TUI",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: tui.StoryNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.list {
				return renderStoryList(cmd)
			}
			if len(args) == 0 {
				return newCommandError("render", "choosing a story", fmt.Errorf("no story given"), "Run 'trellis render --list' to see the available stories.")
			}
			if err := app.load(cmd); err != nil {
				return err
			}
			return runRender(cmd, app, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.theme, "theme", "", "Theme name: light or dark (default from config)")
	cmd.Flags().BoolVar(&opts.ascii, "ascii", false, "Use ASCII glyphs")
	cmd.Flags().IntVar(&opts.width, "width", 80, "Maximum frame width")
	cmd.Flags().IntVar(&opts.height, "height", 24, "Maximum frame height")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Strip colours and styling")
	cmd.Flags().BoolVar(&opts.list, "list", false, "List the available stories")
	cmd.Flags().StringVar(&opts.golden, "golden", "", "Compare the plain frame with this file and print a diff on mismatch")
	cmd.Flags().BoolVar(&opts.update, "update", false, "Rewrite the --golden file with the current frame")

	return cmd
}

func runRender(cmd *cobra.Command, app *AppContext, name string, opts *renderOptions) error {
	ctx, err := renderContext(cmd, app, opts)
	if err != nil {
		return err
	}

	frame, err := tui.RenderStory(name, app.settings(app.Log), ctx)
	if err != nil {
		return newCommandError("render", fmt.Sprintf("rendering story %q", name), err, "Run 'trellis render --list' to see the available stories.")
	}
	if opts.golden != "" {
		return checkGolden(cmd, app, name, ansi.Strip(frame)+"\n", opts)
	}
	if opts.plain {
		frame = ansi.Strip(frame)
	}
	fmt.Fprintln(cmd.OutOrStdout(), frame)
	return nil
}

// checkGolden compares a plain frame with the golden file, or rewrites the
// file when updating.
func checkGolden(cmd *cobra.Command, app *AppContext, name, frame string, opts *renderOptions) error {
	if opts.update {
		if err := os.WriteFile(opts.golden, []byte(frame), 0o644); err != nil {
			return newCommandError("render", "writing the golden file", err, "Check that the --golden directory exists and is writable.")
		}
		app.Log.WithFields(map[string]any{"story": name, "path": opts.golden}).Info("golden file updated")
		return nil
	}

	want, err := os.ReadFile(opts.golden)
	if err != nil {
		return newCommandError("render", "reading the golden file", err, "Create it first with --update.")
	}
	if out := diff.Frames(string(want), frame, opts.golden, name); out != "" {
		fmt.Fprint(cmd.OutOrStdout(), out)
		return newCommandError("render", fmt.Sprintf("comparing story %q", name), errors.New("frame differs from the golden file"), "Review the diff above and rerun with --update if the change is intended.")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s matches %s\n", name, opts.golden)
	return nil
}

// renderContext applies flag overrides on top of the configured theme and glyphs.
func renderContext(cmd *cobra.Command, app *AppContext, opts *renderOptions) (components.RenderContext, error) {
	name := app.Config.Theme
	if opts.theme != "" {
		name = opts.theme
	}
	theme, ok := components.ThemeByName(name)
	if !ok {
		return components.RenderContext{}, newCommandError("render", "selecting a theme", fmt.Errorf("unknown theme %q", name), "Use --theme light or --theme dark.")
	}

	ascii := app.Config.ASCII
	if cmd.Flags().Changed("ascii") {
		ascii = opts.ascii
	}

	return components.DefaultContext().
		WithTheme(theme).
		WithASCII(ascii).
		WithConstraints(components.Bounded(opts.width, opts.height)), nil
}

func renderStoryList(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	width := 0
	for _, story := range tui.Stories() {
		width = max(width, len(story.Name))
	}
	for _, story := range tui.Stories() {
		fmt.Fprintf(out, "%s%s  %s\n", story.Name, strings.Repeat(" ", width-len(story.Name)), story.Title)
	}
	return nil
}
