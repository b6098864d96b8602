package providers

import (
	"context"

	"github.com/preston-bernstein/afl-teams-service/internal/domain/games"
	"github.com/preston-bernstein/afl-teams-service/internal/domain/teams"
)

// TeamProvider fetches normalized teams.
// A successful fetch always returns a non-nil slice.
type TeamProvider interface {
	FetchTeams(ctx context.Context) ([]teams.Team, error)
}

// GameProvider fetches normalized games for one season label (e.g. "2021").
// A successful fetch always returns a non-nil slice.
type GameProvider interface {
	FetchGames(ctx context.Context, season string) ([]games.Game, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	TeamProvider
	GameProvider
}

// Named is implemented by providers that report a stable name for logs and metrics.
type Named interface {
	Name() string
}
