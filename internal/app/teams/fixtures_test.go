package teams

import (
	domaingames "github.com/preston-bernstein/afl-teams-service/internal/domain/games"
	domainteams "github.com/preston-bernstein/afl-teams-service/internal/domain/teams"
	"github.com/preston-bernstein/afl-teams-service/internal/teststubs"
)

func winner(id int) *int { return &id }

// bombersSwans is the two-team, two-season schedule used across the end-to-end tests.
func bombersSwans() *teststubs.StubProvider {
	return &teststubs.StubProvider{
		Teams: []domainteams.Team{
			{ID: 1, Name: "Bombers", Debut: 1897, Logo: "/b.png"},
			{ID: 2, Name: "Swans", Debut: 1874, Logo: "/s.png"},
		},
		Games: map[string][]domaingames.Game{
			"2021": {{ID: 1, HomeTeamID: 1, AwayTeamID: 2, WinnerTeamID: winner(1)}},
			"2022": {{ID: 2, HomeTeamID: 2, AwayTeamID: 1}},
		},
	}
}
