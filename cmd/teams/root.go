package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	appteams "github.com/preston-bernstein/afl-teams-service/internal/app/teams"
	"github.com/preston-bernstein/afl-teams-service/internal/config"
	"github.com/preston-bernstein/afl-teams-service/internal/domain/games"
	"github.com/preston-bernstein/afl-teams-service/internal/logging"
	"github.com/preston-bernstein/afl-teams-service/internal/providers"
	"github.com/preston-bernstein/afl-teams-service/internal/server"
)

// deps are the process-level collaborators; tests swap them out.
type deps struct {
	in          io.Reader
	out         io.Writer
	errOut      io.Writer
	loadConfig  func() config.Config
	newProvider func(cfg config.Config, logger *slog.Logger) providers.DataProvider
}

func defaultDeps() deps {
	return deps{
		in:         os.Stdin,
		out:        os.Stdout,
		errOut:     os.Stderr,
		loadConfig: config.Load,
		newProvider: func(cfg config.Config, logger *slog.Logger) providers.DataProvider {
			return server.NewProvider(cfg, logger, nil)
		},
	}
}

// app is what every subcommand needs once flags are resolved.
type app struct {
	cfg     config.Config
	logger  *slog.Logger
	service *appteams.Service
}

type rootOptions struct {
	provider string
	seasons  []string
}

func newRootCmd(d deps) *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "teams",
		Short:         "Browse AFL teams with their season records",
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetIn(d.in)
	cmd.SetOut(d.out)
	cmd.SetErr(d.errOut)
	cmd.PersistentPreRunE = func(*cobra.Command, []string) error {
		for _, season := range opts.seasons {
			if err := games.ValidateSeason(season); err != nil {
				return err
			}
		}
		return nil
	}
	cmd.PersistentFlags().StringVar(&opts.provider, "provider", "", "data provider (squiggle|fixture); defaults to PROVIDER")
	cmd.PersistentFlags().StringSliceVar(&opts.seasons, "seasons", nil, "seasons to load, oldest first; defaults to SEASONS")

	build := func() app {
		cfg := d.loadConfig()
		if opts.provider != "" {
			cfg.Provider = opts.provider
		}
		if len(opts.seasons) > 0 {
			cfg.Seasons = opts.seasons
		}
		level := cfg.LogLevel
		if level == "" {
			level = "warn"
		}
		logger := logging.NewLogger(logging.Config{
			Level:   level,
			Format:  cfg.LogFormat,
			Service: "afl-teams",
			Version: appVersion,
			Output:  d.errOut,
		})
		provider := d.newProvider(cfg, logger)
		return app{
			cfg:     cfg,
			logger:  logger,
			service: appteams.NewService(provider, cfg.Seasons, logger, nil),
		}
	}

	cmd.AddCommand(newListCmd(build), newWatchCmd(build))
	return cmd
}
