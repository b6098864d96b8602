package squiggle

import "time"

const (
	providerName = "squiggle"

	defaultBaseURL     = "https://api.squiggle.com.au"
	defaultUserAgent   = "afl-teams-service"
	defaultHTTPTimeout = 10 * time.Second

	queryTeams = "q=teams"
	// maxErrorBody caps how much of a failed response body ends up in errors/logs.
	maxErrorBody = 512
)

func gamesQuery(season string) string {
	return "q=games;year=" + season
}
