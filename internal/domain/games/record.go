package games

// Record is a team's tally for a set of games.
type Record struct {
	Played int `json:"played"`
	Won    int `json:"won"`
	Lost   int `json:"lost"`
}

// Tally counts played, won and lost for teamID across games.
// Games without a recorded winner count as played but neither won nor lost.
func Tally(teamID int, games []Game) Record {
	rec := Record{Played: len(games)}
	for _, g := range games {
		if g.WinnerTeamID == nil {
			continue
		}
		if *g.WinnerTeamID == teamID {
			rec.Won++
		} else {
			rec.Lost++
		}
	}
	return rec
}

// Undecided returns the number of played games that were drawn or have no result yet.
func (r Record) Undecided() int {
	return r.Played - r.Won - r.Lost
}
