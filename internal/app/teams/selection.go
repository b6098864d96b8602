package teams

import (
	domainteams "github.com/preston-bernstein/afl-teams-service/internal/domain/teams"
)

// Selection is the user's current sort and filter choice.
type Selection struct {
	Direction domainteams.Direction
	Predicate domainteams.Predicate
}

// DefaultSelection is a-z over every team.
func DefaultSelection() Selection {
	return Selection{Direction: domainteams.Ascending, Predicate: domainteams.All()}
}

// ParseSelection validates raw selector values. Empty values take the defaults.
func ParseSelection(sort, filter string) (Selection, error) {
	dir, err := domainteams.ParseDirection(sort)
	if err != nil {
		return Selection{}, err
	}
	pred, err := domainteams.ParsePredicate(filter)
	if err != nil {
		return Selection{}, err
	}
	return Selection{Direction: dir, Predicate: pred}, nil
}

// WithDirection returns a copy of the selection using dir.
func (s Selection) WithDirection(dir domainteams.Direction) Selection {
	s.Direction = dir
	return s
}

// WithPredicate returns a copy of the selection using p.
func (s Selection) WithPredicate(p domainteams.Predicate) Selection {
	s.Predicate = p
	return s
}

// Apply filters then sorts items, returning a new slice.
func (s Selection) Apply(items []domainteams.TeamWithGames) []domainteams.TeamWithGames {
	dir := s.Direction
	if dir == "" {
		dir = domainteams.Ascending
	}
	return domainteams.Sort(domainteams.Filter(items, s.Predicate), dir)
}

// SortValue is the sort selector value.
func (s Selection) SortValue() string {
	if s.Direction == "" {
		return string(domainteams.Ascending)
	}
	return string(s.Direction)
}

// FilterValue is the filter selector value.
func (s Selection) FilterValue() string {
	return s.Predicate.String()
}
