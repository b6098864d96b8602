package teststubs

import (
	"context"
	"sync/atomic"

	"github.com/preston-bernstein/afl-teams-service/internal/domain/games"
	"github.com/preston-bernstein/afl-teams-service/internal/domain/teams"
)

// StubProvider is a test double for providers.DataProvider.
// Teams and Games are read concurrently; mutate them only before use.
type StubProvider struct {
	Teams    []teams.Team
	TeamsErr error
	Games    map[string][]games.Game
	GamesErr map[string]error
	Calls    atomic.Int32

	// BeforeTeams and BeforeGames run ahead of each fetch; a non-nil error is returned as-is.
	BeforeTeams func(ctx context.Context) error
	BeforeGames func(ctx context.Context, season string) error
}

// FetchTeams returns the configured teams (never nil on success) while tracking calls.
func (s *StubProvider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	s.Calls.Add(1)
	if s.BeforeTeams != nil {
		if err := s.BeforeTeams(ctx); err != nil {
			return nil, err
		}
	}
	if s.TeamsErr != nil {
		return nil, s.TeamsErr
	}
	if s.Teams == nil {
		return []teams.Team{}, nil
	}
	return s.Teams, nil
}

// FetchGames returns the configured games for season (never nil on success) while tracking calls.
func (s *StubProvider) FetchGames(ctx context.Context, season string) ([]games.Game, error) {
	s.Calls.Add(1)
	if s.BeforeGames != nil {
		if err := s.BeforeGames(ctx, season); err != nil {
			return nil, err
		}
	}
	if err := s.GamesErr[season]; err != nil {
		return nil, err
	}
	if g, ok := s.Games[season]; ok && g != nil {
		return g, nil
	}
	return []games.Game{}, nil
}
