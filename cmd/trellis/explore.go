package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/trellis/internal/logger"
	"github.com/alexisbeaulieu97/trellis/internal/tui"
)

type exploreOptions struct {
	renderOptions
	logFile string
}

func newExploreCmd(app *AppContext) *cobra.Command {
	opts := &exploreOptions{}

	cmd := &cobra.Command{
		Use:       "explore [story]",
		Short:     "Launch the interactive component explorer",
		Long:      `Launch the component explorer TUI. Pass a story name to start on it.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: tui.StoryNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(cmd.OutOrStdout()) {
				return newCommandError("explore", "checking the terminal", errors.New("stdout is not a terminal"), "Run 'trellis render <story>' for non-interactive output.")
			}
			if err := app.load(cmd); err != nil {
				return err
			}
			start := ""
			if len(args) == 1 {
				start = args[0]
			}
			return runExplore(cmd, app, start, opts)
		},
	}

	cmd.Flags().StringVar(&opts.theme, "theme", "", "Theme name: light or dark (default from config)")
	cmd.Flags().BoolVar(&opts.ascii, "ascii", false, "Use ASCII glyphs")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Write widget events to this file while the explorer runs")

	return cmd
}

func runExplore(cmd *cobra.Command, app *AppContext, start string, opts *exploreOptions) error {
	if start != "" {
		if _, err := tui.Lookup(start); err != nil {
			return newCommandError("explore", fmt.Sprintf("opening story %q", start), err, "Run 'trellis render --list' to see the available stories.")
		}
	}

	ctx, err := renderContext(cmd, app, &opts.renderOptions)
	if err != nil {
		return err
	}

	// The explorer owns the terminal, so logs only go to an explicit file.
	log := logger.Nop()
	if opts.logFile != "" {
		file, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return newCommandError("explore", "opening the log file", err, "Check that the --log-file directory exists and is writable.")
		}
		defer file.Close()

		log, err = app.newLogger(file)
		if err != nil {
			return newCommandError("explore", "creating logger", err, "Use a valid --log-level.")
		}
	}
	app.Log.WithFields(map[string]any{"start": start, "theme": ctx.Theme.Name}).Debug("launching explorer")

	model := tui.NewModel(tui.Options{
		Settings: app.settings(log),
		Theme:    ctx.Theme,
		ASCII:    ctx.ASCII,
		Start:    start,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout()))
	if _, err := p.Run(); err != nil {
		app.Log.Error(err, "explorer execution failed")
		return fmt.Errorf("failed to run explorer: %w", err)
	}
	return nil
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
