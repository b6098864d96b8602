package teams

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	domainteams "github.com/preston-bernstein/afl-teams-service/internal/domain/teams"
	"github.com/preston-bernstein/afl-teams-service/internal/logging"
	"github.com/preston-bernstein/afl-teams-service/internal/metrics"
	"github.com/preston-bernstein/afl-teams-service/internal/store"
)

// ErrSuperseded is returned when a newer interaction started before this one finished.
var ErrSuperseded = errors.New("interaction superseded")

// Viewer produces the team list for a selection.
type Viewer interface {
	View(ctx context.Context, sel Selection) ([]domainteams.TeamWithGames, error)
}

// Session owns one user's interaction state. Each Select gets a monotonically
// increasing token; starting a new Select cancels the one in flight, and only the
// newest token may publish into the view store.
type Session struct {
	viewer  Viewer
	views   *store.ViewStore
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time

	mu        sync.Mutex
	token     uint64
	cancel    context.CancelFunc
	selection Selection
}

// NewSession constructs a Session publishing into views.
func NewSession(viewer Viewer, views *store.ViewStore, logger *slog.Logger, recorder *metrics.Recorder) *Session {
	if views == nil {
		views = store.NewViewStore()
	}
	return &Session{
		viewer:    viewer,
		views:     views,
		logger:    logger,
		metrics:   recorder,
		now:       time.Now,
		selection: DefaultSelection(),
	}
}

// Selection returns the most recently requested selection.
func (s *Session) Selection() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection
}

// Views exposes the store the session publishes into.
func (s *Session) Views() *store.ViewStore {
	return s.views
}

// Result is the outcome of one interaction started with Start.
type Result struct {
	View store.View
	Err  error
}

// Select runs one interaction for sel. It returns ErrSuperseded, publishing nothing,
// when another Select started before this one completed.
func (s *Session) Select(ctx context.Context, sel Selection) (store.View, error) {
	token, ictx, cancel := s.begin(ctx, sel)
	defer cancel()
	return s.finish(ctx, ictx, token, sel)
}

// Start claims the next token before returning and runs the interaction in the
// background. Calls to Start are ordered the way they were made, which Select
// from separate goroutines cannot promise. The channel receives exactly one Result.
func (s *Session) Start(ctx context.Context, sel Selection) <-chan Result {
	token, ictx, cancel := s.begin(ctx, sel)
	out := make(chan Result, 1)
	go func() {
		defer cancel()
		view, err := s.finish(ctx, ictx, token, sel)
		out <- Result{View: view, Err: err}
	}()
	return out
}

func (s *Session) finish(ctx, ictx context.Context, token uint64, sel Selection) (store.View, error) {
	items, err := s.viewer.View(ictx, sel)

	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.token {
		s.metrics.RecordSuperseded()
		logging.Info(logging.FromContext(ctx, s.logger), "interaction superseded", logging.FieldToken, token)
		return store.View{}, ErrSuperseded
	}
	if err != nil {
		return store.View{}, err
	}

	view := store.View{
		Sort:   sel.SortValue(),
		Filter: sel.FilterValue(),
		Teams:  items,
		At:     s.now(),
	}
	if !s.views.Publish(token, view) {
		s.metrics.RecordSuperseded()
		return store.View{}, ErrSuperseded
	}
	view.Token = token
	return view, nil
}

// Close cancels any interaction still in flight.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Session) begin(ctx context.Context, sel Selection) (uint64, context.Context, context.CancelFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	s.token++
	s.selection = sel
	ictx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	return s.token, ictx, cancel
}
