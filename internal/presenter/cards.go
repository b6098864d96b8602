package presenter

import (
	"strconv"
	"strings"

	domaingames "github.com/preston-bernstein/afl-teams-service/internal/domain/games"
	domainteams "github.com/preston-bernstein/afl-teams-service/internal/domain/teams"
)

// Card is the display model for one team.
type Card struct {
	ID           int         `json:"id"`
	Name         string      `json:"name"`
	LogoURL      string      `json:"logoUrl"`
	Debut        int         `json:"debut"`
	DebutCaption string      `json:"debutCaption"`
	Seasons      []SeasonRow `json:"seasons"`
}

// SeasonRow is one season's record for a team.
type SeasonRow struct {
	Season string `json:"season"`
	Played int    `json:"played"`
	Won    int    `json:"won"`
	Lost   int    `json:"lost"`
}

// Cards builds display cards in list order. Season rows run newest first.
func Cards(imageBase string, items []domainteams.TeamWithGames) []Card {
	base := strings.TrimRight(imageBase, "/")
	out := make([]Card, 0, len(items))
	for _, t := range items {
		out = append(out, card(base, t))
	}
	return out
}

func card(base string, t domainteams.TeamWithGames) Card {
	rows := make([]SeasonRow, 0, len(t.Seasons))
	for i := len(t.Seasons) - 1; i >= 0; i-- {
		s := t.Seasons[i]
		rec := domaingames.Tally(t.ID, s.Games)
		rows = append(rows, SeasonRow{
			Season: s.Label,
			Played: rec.Played,
			Won:    rec.Won,
			Lost:   rec.Lost,
		})
	}
	return Card{
		ID:           t.ID,
		Name:         t.Name,
		LogoURL:      logoURL(base, t.Logo),
		Debut:        t.Debut,
		DebutCaption: "Debut: " + strconv.Itoa(t.Debut),
		Seasons:      rows,
	}
}

func logoURL(base, logo string) string {
	if logo == "" {
		return ""
	}
	if strings.HasPrefix(logo, "http://") || strings.HasPrefix(logo, "https://") {
		return logo
	}
	if !strings.HasPrefix(logo, "/") {
		logo = "/" + logo
	}
	return base + logo
}
