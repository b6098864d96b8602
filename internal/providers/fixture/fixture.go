package fixture

import (
	"context"

	"github.com/preston-bernstein/afl-teams-service/internal/domain/games"
	"github.com/preston-bernstein/afl-teams-service/internal/domain/teams"
)

// Provider returns a static set of teams and games useful for local testing and bootstrapping.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchTeams returns a deterministic set of teams.
func (p *Provider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []teams.Team{
		{ID: 1, Name: "Adelaide", Abbrev: "ADE", Debut: 1991, Logo: "/squiggle/logos/Adelaide.png"},
		{ID: 5, Name: "Essendon", Abbrev: "ESS", Debut: 1897, Logo: "/squiggle/logos/Essendon.png"},
		{ID: 7, Name: "Geelong", Abbrev: "GEE", Debut: 1897, Logo: "/squiggle/logos/Geelong.png"},
		{ID: 16, Name: "Sydney", Abbrev: "SYD", Debut: 1897, Logo: "/squiggle/logos/Sydney.png"},
		{ID: 18, Name: "West Coast", Abbrev: "WCE", Debut: 1987, Logo: "/squiggle/logos/WestCoast.png"},
	}, nil
}

// FetchGames returns deterministic games for 2021 and 2022; other seasons are empty.
func (p *Provider) FetchGames(ctx context.Context, season string) ([]games.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	switch season {
	case "2021":
		return []games.Game{
			game(101, 2021, 1, 5, 16, winner(5)),
			game(102, 2021, 1, 1, 7, winner(7)),
			game(103, 2021, 2, 18, 5, winner(18)),
			game(104, 2021, 2, 16, 1, nil),
		}, nil
	case "2022":
		return []games.Game{
			game(201, 2022, 1, 16, 5, nil),
			game(202, 2022, 1, 7, 18, winner(7)),
			game(203, 2022, 2, 1, 5, winner(5)),
		}, nil
	default:
		return []games.Game{}, nil
	}
}

func game(id, year, round, home, away int, winnerID *int) games.Game {
	return games.Game{
		ID:           id,
		Year:         year,
		Round:        round,
		HomeTeamID:   home,
		AwayTeamID:   away,
		WinnerTeamID: winnerID,
		Complete:     100,
	}
}

func winner(id int) *int { return &id }

// Name identifies the fixture source in logs and metrics.
func (p *Provider) Name() string { return "fixture" }
