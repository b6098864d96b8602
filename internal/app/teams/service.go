package teams

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	domaingames "github.com/preston-bernstein/afl-teams-service/internal/domain/games"
	domainteams "github.com/preston-bernstein/afl-teams-service/internal/domain/teams"
	"github.com/preston-bernstein/afl-teams-service/internal/logging"
	"github.com/preston-bernstein/afl-teams-service/internal/metrics"
	"github.com/preston-bernstein/afl-teams-service/internal/providers"
)

// readyFailureLimit is the number of consecutive failed loads after which the service reports not ready.
const readyFailureLimit = 3

// Status describes the recent health of the load path.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether a load has succeeded and loads are not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < readyFailureLimit
}

// Service loads teams and their season games from a provider and joins them.
// Every call performs a fresh load; nothing is cached between calls.
type Service struct {
	provider providers.DataProvider
	seasons  []string
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time

	statusMu sync.RWMutex
	status   Status
}

// NewService constructs a Service for the given seasons, in schedule order (oldest first).
func NewService(provider providers.DataProvider, seasons []string, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		provider: provider,
		seasons:  append([]string(nil), seasons...),
		logger:   logger,
		metrics:  recorder,
		now:      time.Now,
	}
}

// Seasons returns the configured season labels.
func (s *Service) Seasons() []string {
	return append([]string(nil), s.seasons...)
}

// Load fetches teams and every configured season, then joins them. A season label
// that is not a four digit year fails the load before anything is fetched.
// Seasons are fetched concurrently but assembled in configured order. Any failed fetch
// aborts the load and the join is never attempted.
func (s *Service) Load(ctx context.Context) ([]domainteams.TeamWithGames, error) {
	start := s.now()
	s.recordAttempt(start)

	joined, err := s.load(ctx)
	elapsed := time.Since(start)
	s.metrics.RecordLoad(elapsed, err)

	logger := logging.FromContext(ctx, s.logger)
	if err != nil {
		s.recordFailure(err)
		logging.Error(logger, "team load failed", err,
			logging.Duration(elapsed),
		)
		return nil, err
	}

	s.recordSuccess(start)
	logging.Info(logger, "teams loaded",
		logging.FieldCount, len(joined),
		logging.Duration(elapsed),
	)
	return joined, nil
}

func (s *Service) load(ctx context.Context) ([]domainteams.TeamWithGames, error) {
	if s.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}
	for _, season := range s.seasons {
		if err := domaingames.ValidateSeason(season); err != nil {
			return nil, err
		}
	}

	items, err := s.provider.FetchTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch teams: %w", err)
	}

	schedule := make([]domaingames.Season, len(s.seasons))
	g, gctx := errgroup.WithContext(ctx)
	for i, season := range s.seasons {
		g.Go(func() error {
			list, err := s.provider.FetchGames(gctx, season)
			if err != nil {
				return fmt.Errorf("fetch games %s: %w", season, err)
			}
			schedule[i] = domaingames.NewSeason(season, list)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return domainteams.Join(items, schedule)
}

// View loads fresh data and applies the selection: filter first, then sort.
func (s *Service) View(ctx context.Context, sel Selection) ([]domainteams.TeamWithGames, error) {
	items, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return sel.Apply(items), nil
}

// Status returns a snapshot of the load path's recent health.
func (s *Service) Status() Status {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return s.status
}

func (s *Service) recordAttempt(at time.Time) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.LastAttempt = at
}

func (s *Service) recordSuccess(at time.Time) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.ConsecutiveFailures = 0
	s.status.LastError = ""
	s.status.LastSuccess = at
}

func (s *Service) recordFailure(err error) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.ConsecutiveFailures++
	if err != nil {
		s.status.LastError = err.Error()
	}
}
