package squiggle

import "testing"

func TestMapWinnerCopiesValue(t *testing.T) {
	id := 5
	got := mapWinner(&id)
	if got == nil || *got != 5 {
		t.Fatalf("expected winner 5, got %v", got)
	}
	id = 6
	if *got != 5 {
		t.Fatalf("expected mapped winner to be independent of the response value")
	}
}

func TestMapTeamsEmpty(t *testing.T) {
	if got := mapTeams([]teamResponse{}); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}
