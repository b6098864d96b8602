package teams

import (
	"fmt"
	"slices"
	"strings"
)

// Direction orders teams by name.
type Direction string

const (
	Ascending  Direction = "a-z"
	Descending Direction = "z-a"
)

// ParseDirection maps a sort selector value to a Direction. Empty means Ascending.
func ParseDirection(raw string) (Direction, error) {
	switch Direction(strings.TrimSpace(raw)) {
	case "", Ascending:
		return Ascending, nil
	case Descending:
		return Descending, nil
	default:
		return "", fmt.Errorf("%w: sort %q", ErrInvalidSelection, raw)
	}
}

// Sort returns a new slice ordered by name. Equal names keep their relative order.
// The input slice is never reordered.
func Sort(items []TeamWithGames, dir Direction) []TeamWithGames {
	sorted := slices.Clone(items)
	if sorted == nil {
		sorted = []TeamWithGames{}
	}
	slices.SortStableFunc(sorted, func(a, b TeamWithGames) int {
		if dir == Descending {
			return strings.Compare(b.Name, a.Name)
		}
		return strings.Compare(a.Name, b.Name)
	})
	return sorted
}
