package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	logLevel   string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &AppContext{flags: flags}

	cmd := &cobra.Command{
		Use:           "trellis",
		Short:         "Trellis renders terminal widgets and explores them interactively",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to the configuration file (default $XDG_CONFIG_HOME/trellis/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error or disabled")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newExploreCmd(app))
	cmd.AddCommand(newPaginateCmd(app))
	cmd.AddCommand(newPlaceCmd(app))
	cmd.AddCommand(newRenderCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
