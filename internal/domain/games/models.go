package games

import (
	"errors"
	"fmt"
)

// ErrInvalidSeason is returned for season labels that are not a four digit year.
var ErrInvalidSeason = errors.New("invalid season")

// ValidateSeason checks that label is a four digit year such as "2021".
func ValidateSeason(label string) error {
	if len(label) != 4 {
		return fmt.Errorf("%w: %q", ErrInvalidSeason, label)
	}
	for _, r := range label {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: %q", ErrInvalidSeason, label)
		}
	}
	return nil
}

// Game is the canonical game shape used throughout the service.
// WinnerTeamID is nil for draws and for games that have not been played.
type Game struct {
	ID           int    `json:"id"`
	Year         int    `json:"year"`
	Round        int    `json:"round"`
	HomeTeamID   int    `json:"homeTeamId"`
	AwayTeamID   int    `json:"awayTeamId"`
	WinnerTeamID *int   `json:"winnerTeamId"`
	HomeTeam     string `json:"homeTeam,omitempty"`
	AwayTeam     string `json:"awayTeam,omitempty"`
	HomeScore    int    `json:"homeScore"`
	AwayScore    int    `json:"awayScore"`
	Complete     int    `json:"complete"`
}

// Involves reports whether the team played in the game, home or away.
func (g Game) Involves(teamID int) bool {
	return g.HomeTeamID == teamID || g.AwayTeamID == teamID
}

// Season groups the games fetched for one season label (e.g. "2021").
type Season struct {
	Label string `json:"season"`
	Games []Game `json:"games"`
}

// NewSeason builds a Season payload.
func NewSeason(label string, games []Game) Season {
	return Season{
		Label: label,
		Games: games,
	}
}
