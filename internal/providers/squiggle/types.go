package squiggle

type teamsResponse struct {
	Teams []teamResponse `json:"teams"`
}

type teamResponse struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Abbrev string `json:"abbrev"`
	Debut  int    `json:"debut"`
	Logo   string `json:"logo"`
}

type gamesResponse struct {
	Games []gameResponse `json:"games"`
}

type gameResponse struct {
	ID           int    `json:"id"`
	Year         int    `json:"year"`
	Round        int    `json:"round"`
	HomeTeamID   int    `json:"hteamid"`
	AwayTeamID   int    `json:"ateamid"`
	WinnerTeamID *int   `json:"winnerteamid"`
	HomeTeam     string `json:"hteam"`
	AwayTeam     string `json:"ateam"`
	HomeScore    int    `json:"hscore"`
	AwayScore    int    `json:"ascore"`
	Complete     int    `json:"complete"`
}
