package teams

import (
	"fmt"
	"strings"
)

// DebutPivotYear splits teams into the pre/post buckets offered by the filter selector.
const DebutPivotYear = 1980

// Filter selector values.
const (
	FilterAll  = "-"
	FilterPre  = "pre-1980"
	FilterPost = "post-1980"
)

type predicateKind int

const (
	kindAll predicateKind = iota
	kindBefore
	kindAfter
)

// Predicate selects teams by debut year.
type Predicate struct {
	kind predicateKind
	year int
}

// All keeps every team.
func All() Predicate { return Predicate{kind: kindAll} }

// DebutBefore keeps teams whose debut is strictly before year.
func DebutBefore(year int) Predicate { return Predicate{kind: kindBefore, year: year} }

// DebutAfter keeps teams whose debut is strictly after year.
func DebutAfter(year int) Predicate { return Predicate{kind: kindAfter, year: year} }

// Match reports whether the team satisfies the predicate.
func (p Predicate) Match(t Team) bool {
	switch p.kind {
	case kindBefore:
		return t.Debut < p.year
	case kindAfter:
		return t.Debut > p.year
	default:
		return true
	}
}

// String returns the selector value for the predicate.
func (p Predicate) String() string {
	switch {
	case p.kind == kindBefore && p.year == DebutPivotYear:
		return FilterPre
	case p.kind == kindAfter && p.year == DebutPivotYear:
		return FilterPost
	case p.kind == kindBefore:
		return fmt.Sprintf("pre-%d", p.year)
	case p.kind == kindAfter:
		return fmt.Sprintf("post-%d", p.year)
	default:
		return FilterAll
	}
}

// ParsePredicate maps a filter selector value to a Predicate. Empty means All.
func ParsePredicate(raw string) (Predicate, error) {
	switch strings.TrimSpace(raw) {
	case "", FilterAll:
		return All(), nil
	case FilterPre:
		return DebutBefore(DebutPivotYear), nil
	case FilterPost:
		return DebutAfter(DebutPivotYear), nil
	default:
		return Predicate{}, fmt.Errorf("%w: filter %q", ErrInvalidSelection, raw)
	}
}

// Filter returns a new slice with the teams matching p, in input order.
func Filter(items []TeamWithGames, p Predicate) []TeamWithGames {
	kept := make([]TeamWithGames, 0, len(items))
	for _, t := range items {
		if p.Match(t.Team) {
			kept = append(kept, t)
		}
	}
	return kept
}
