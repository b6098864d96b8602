package providers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/afl-teams-service/internal/domain/games"
	"github.com/preston-bernstein/afl-teams-service/internal/domain/teams"
	"github.com/preston-bernstein/afl-teams-service/internal/logging"
)

const rateLimitedName = "rate-limited"

// rateLimitedProvider wraps a DataProvider and spaces upstream calls by a minimum interval.
type rateLimitedProvider struct {
	next     DataProvider
	interval time.Duration
	logger   *slog.Logger
	now      func() time.Time

	mu   sync.Mutex
	last time.Time
}

// NewRateLimitedProvider returns a DataProvider that waits at least interval between calls.
// A non-positive interval returns next unchanged.
func NewRateLimitedProvider(next DataProvider, interval time.Duration, logger *slog.Logger) DataProvider {
	if interval <= 0 {
		return next
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

func (p *rateLimitedProvider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchTeams(ctx)
}

func (p *rateLimitedProvider) FetchGames(ctx context.Context, season string) ([]games.Game, error) {
	if err := p.wait(ctx, slog.String(logging.FieldSeason, season)); err != nil {
		return nil, err
	}
	return p.next.FetchGames(ctx, season)
}

func (p *rateLimitedProvider) wait(ctx context.Context, attrs ...any) error {
	if p == nil || p.next == nil {
		if p != nil {
			logWithProvider(ctx, p.logger, slog.LevelWarn, rateLimitedName, "provider unavailable")
		}
		return ErrProviderUnavailable
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.last.IsZero() {
		if delay := p.last.Add(p.interval).Sub(p.now()); delay > 0 {
			timer := time.NewTimer(delay)
			defer timer.Stop()
			select {
			case <-ctx.Done():
				logWithProvider(ctx, p.logger, slog.LevelWarn, rateLimitedName, "rate-limited fetch canceled", attrs...)
				return ctx.Err()
			case <-timer.C:
			}
		}
	}
	p.last = p.now()
	logWithProvider(ctx, p.logger, slog.LevelDebug, rateLimitedName, "rate-limited provider fetch", attrs...)
	return nil
}
