package server

import (
	"log/slog"

	"github.com/preston-bernstein/afl-teams-service/internal/config"
	"github.com/preston-bernstein/afl-teams-service/internal/metrics"
	"github.com/preston-bernstein/afl-teams-service/internal/providers"
)

// providerFactory assembles the provider with shared wrappers (spacing + instrumentation).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	return f.wrap(cfg, selectProvider(cfg, f.logger))
}

func (f providerFactory) wrap(cfg config.Config, base providers.DataProvider) providers.DataProvider {
	limited := providers.NewRateLimitedProvider(base, cfg.Upstream.MinInterval, f.logger)
	return providers.NewInstrumentedProvider(limited, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base))
}

// NewProvider builds the configured provider with the same wrappers the server uses.
func NewProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) providers.DataProvider {
	return newProviderFactory(logger, recorder).build(cfg)
}
