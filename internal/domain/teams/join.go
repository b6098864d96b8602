package teams

import (
	"fmt"

	"github.com/preston-bernstein/afl-teams-service/internal/domain/games"
)

// Join attaches to every team the games it played in each season of schedule.
// A nil teams slice or a nil season game list fails the whole join.
// Neither input is modified.
func Join(items []Team, schedule []games.Season) ([]TeamWithGames, error) {
	if items == nil {
		return nil, fmt.Errorf("%w: teams missing", ErrInvalidInput)
	}
	for _, season := range schedule {
		if season.Games == nil {
			return nil, fmt.Errorf("%w: games missing for season %s", ErrInvalidInput, season.Label)
		}
	}

	joined := make([]TeamWithGames, 0, len(items))
	for _, team := range items {
		seasons := make([]games.Season, 0, len(schedule))
		for _, season := range schedule {
			seasons = append(seasons, games.NewSeason(season.Label, gamesInvolving(team.ID, season.Games)))
		}
		joined = append(joined, TeamWithGames{Team: team, Seasons: seasons})
	}
	return joined, nil
}

func gamesInvolving(teamID int, all []games.Game) []games.Game {
	matched := make([]games.Game, 0)
	for _, g := range all {
		if g.Involves(teamID) {
			matched = append(matched, g)
		}
	}
	return matched
}
