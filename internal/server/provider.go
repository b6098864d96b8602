package server

import (
	"log/slog"

	"github.com/preston-bernstein/afl-teams-service/internal/config"
	"github.com/preston-bernstein/afl-teams-service/internal/providers"
	"github.com/preston-bernstein/afl-teams-service/internal/providers/fixture"
	"github.com/preston-bernstein/afl-teams-service/internal/providers/squiggle"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch cfg.Provider {
	case "squiggle", "":
		return squiggle.NewClient(squiggle.Config{
			BaseURL:   cfg.Squiggle.BaseURL,
			UserAgent: cfg.Squiggle.UserAgent,
			Timeout:   cfg.Upstream.Timeout,
			Logger:    logger,
		})
	case "fixture":
		return fixture.New()
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
