package squiggle

import (
	"strings"

	"github.com/preston-bernstein/afl-teams-service/internal/domain/games"
	"github.com/preston-bernstein/afl-teams-service/internal/domain/teams"
)

func mapTeams(in []teamResponse) []teams.Team {
	out := make([]teams.Team, 0, len(in))
	for _, t := range in {
		out = append(out, mapTeam(t))
	}
	return out
}

func mapTeam(t teamResponse) teams.Team {
	return teams.Team{
		ID:     t.ID,
		Name:   strings.TrimSpace(t.Name),
		Abbrev: strings.TrimSpace(t.Abbrev),
		Debut:  t.Debut,
		Logo:   strings.TrimSpace(t.Logo),
	}
}

func mapGames(in []gameResponse) []games.Game {
	out := make([]games.Game, 0, len(in))
	for _, g := range in {
		out = append(out, mapGame(g))
	}
	return out
}

func mapGame(g gameResponse) games.Game {
	return games.Game{
		ID:           g.ID,
		Year:         g.Year,
		Round:        g.Round,
		HomeTeamID:   g.HomeTeamID,
		AwayTeamID:   g.AwayTeamID,
		WinnerTeamID: mapWinner(g.WinnerTeamID),
		HomeTeam:     g.HomeTeam,
		AwayTeam:     g.AwayTeam,
		HomeScore:    g.HomeScore,
		AwayScore:    g.AwayScore,
		Complete:     g.Complete,
	}
}

// Squiggle reports unplayed games with a null winner; a zero id never names a real team.
func mapWinner(id *int) *int {
	if id == nil || *id == 0 {
		return nil
	}
	winner := *id
	return &winner
}
