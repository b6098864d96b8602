package teams

import (
	"errors"

	"github.com/preston-bernstein/afl-teams-service/internal/domain/games"
)

var (
	// ErrInvalidInput is returned when a join is attempted against a missing collection.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidSelection is returned for unknown sort or filter selector values.
	ErrInvalidSelection = errors.New("invalid selection")
)

// Team represents the normalized team shape.
type Team struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Abbrev string `json:"abbrev,omitempty"`
	Debut  int    `json:"debut"`
	Logo   string `json:"logo"`
}

// TeamWithGames is a team plus its games per season.
// Seasons keep the schedule order they were joined with (oldest first).
type TeamWithGames struct {
	Team
	Seasons []games.Season `json:"seasons"`
}

// GamesFor returns the games attached for a season label.
func (t TeamWithGames) GamesFor(label string) ([]games.Game, bool) {
	for _, s := range t.Seasons {
		if s.Label == label {
			return s.Games, true
		}
	}
	return nil, false
}

// Names returns team names in order; handy for logs and assertions.
func Names(items []TeamWithGames) []string {
	out := make([]string, 0, len(items))
	for _, t := range items {
		out = append(out, t.Name)
	}
	return out
}
