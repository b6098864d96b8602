package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/afl-teams-service/internal/domain/games"
	"github.com/preston-bernstein/afl-teams-service/internal/domain/teams"
	"github.com/preston-bernstein/afl-teams-service/internal/logging"
	"github.com/preston-bernstein/afl-teams-service/internal/metrics"
)

// instrumentedProvider records attempt metrics for every upstream call.
// Failures are not retried; the wrapped client has already logged them.
type instrumentedProvider struct {
	inner        DataProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	now          func() time.Time
}

// NewInstrumentedProvider wraps inner with metrics and debug logging.
func NewInstrumentedProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, providerName string) DataProvider {
	if providerName == "" {
		providerName = "provider"
	}
	return &instrumentedProvider{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: providerName,
		now:          time.Now,
	}
}

func (p *instrumentedProvider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	if p.inner == nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.providerName, "provider unavailable")
		return nil, ErrProviderUnavailable
	}
	start := p.now()
	items, err := p.inner.FetchTeams(ctx)
	p.observe(ctx, "teams", "", start, len(items), err)
	return items, err
}

func (p *instrumentedProvider) FetchGames(ctx context.Context, season string) ([]games.Game, error) {
	if p.inner == nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.providerName, "provider unavailable")
		return nil, ErrProviderUnavailable
	}
	start := p.now()
	items, err := p.inner.FetchGames(ctx, season)
	p.observe(ctx, "games", season, start, len(items), err)
	return items, err
}

func (p *instrumentedProvider) observe(ctx context.Context, resource, season string, start time.Time, count int, err error) {
	elapsed := p.now().Sub(start)
	p.metrics.RecordProviderAttempt(p.providerName, resource, elapsed, err)
	if err != nil {
		return
	}
	args := []any{
		slog.String("resource", resource),
		slog.Int(logging.FieldCount, count),
		logging.Duration(elapsed),
		logging.Season(season),
	}
	logWithProvider(ctx, p.logger, slog.LevelDebug, p.providerName, "provider fetch complete", args...)
}
