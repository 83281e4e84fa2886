package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/trellis/internal/config"
	"github.com/alexisbeaulieu97/trellis/internal/logger"
	"github.com/alexisbeaulieu97/trellis/internal/tui"
)

// AppContext carries the configuration and logger shared by subcommands.
// It is loaded lazily so commands such as version never read the config file.
type AppContext struct {
	flags *rootFlags

	Config config.Config
	Log    *logger.Logger
	level  string
	loaded bool
}

func (a *AppContext) load(cmd *cobra.Command) error {
	if a.loaded {
		return nil
	}

	cfg, err := config.Load(a.flags.configPath)
	if err != nil {
		return newCommandError(cmd.Name(), "loading configuration", err, "Fix the configuration file or point --config at a valid one.")
	}

	a.level = resolveLevel(a.flags, cfg)
	log, err := a.newLogger(cmd.ErrOrStderr())
	if err != nil {
		return newCommandError(cmd.Name(), "creating logger", err, "Use one of trace, debug, info, warn, error or disabled for --log-level.")
	}

	a.Config = cfg
	a.Log = log.WithComponent(cmd.Name())
	a.loaded = true
	a.Log.Debug("configuration loaded")
	return nil
}

func (a *AppContext) newLogger(w io.Writer) (*logger.Logger, error) {
	return logger.New(logger.Options{Level: a.level, HumanReadable: true, Writer: w})
}

// settings seeds explorer stories from the loaded configuration.
func (a *AppContext) settings(log *logger.Logger) tui.Settings {
	return tui.Settings{
		Pagination: a.Config.Pagination,
		Overlay:    a.Config.Overlay,
		Log:        log,
	}
}

func resolveLevel(flags *rootFlags, cfg config.Config) string {
	switch {
	case flags.verbose:
		return "debug"
	case flags.logLevel != "":
		return flags.logLevel
	case cfg.LogLevel != "":
		return cfg.LogLevel
	default:
		return "info"
	}
}
