package teams

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domaingames "github.com/preston-bernstein/afl-teams-service/internal/domain/games"
	domainteams "github.com/preston-bernstein/afl-teams-service/internal/domain/teams"
	"github.com/preston-bernstein/afl-teams-service/internal/metrics"
	"github.com/preston-bernstein/afl-teams-service/internal/providers"
	"github.com/preston-bernstein/afl-teams-service/internal/testutil"
)

func TestLoadJoinsSeasonsInScheduleOrder(t *testing.T) {
	provider := bombersSwans()
	svc := NewService(provider, []string{"2021", "2022"}, nil, nil)

	joined, err := svc.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, joined, 2)

	bombers := joined[0]
	require.Equal(t, "Bombers", bombers.Name)
	require.Len(t, bombers.Seasons, 2)
	assert.Equal(t, "2021", bombers.Seasons[0].Label)
	assert.Equal(t, "2022", bombers.Seasons[1].Label)

	// one teams call plus one per season
	assert.EqualValues(t, 3, provider.Calls.Load())
}

func TestEndToEndBombersSwansScenario(t *testing.T) {
	svc := NewService(bombersSwans(), []string{"2021", "2022"}, nil, nil)

	joined, err := svc.Load(context.Background())
	require.NoError(t, err)

	g2021, ok := joined[0].GamesFor("2021")
	require.True(t, ok)
	assert.Equal(t, domaingames.Record{Played: 1, Won: 1, Lost: 0}, domaingames.Tally(1, g2021))
	g2022, ok := joined[0].GamesFor("2022")
	require.True(t, ok)
	assert.Equal(t, domaingames.Record{Played: 1, Won: 0, Lost: 0}, domaingames.Tally(1, g2022))

	desc, err := ParseSelection("z-a", "-")
	require.NoError(t, err)
	sorted, err := svc.View(context.Background(), desc)
	require.NoError(t, err)
	assert.Equal(t, []string{"Swans", "Bombers"}, domainteams.Names(sorted))

	// both debuts (1874, 1897) precede the pivot
	pre, err := ParseSelection("", "pre-1980")
	require.NoError(t, err)
	filtered, err := svc.View(context.Background(), pre)
	require.NoError(t, err)
	assert.Contains(t, domainteams.Names(filtered), "Swans")
	assert.Equal(t, []string{"Bombers", "Swans"}, domainteams.Names(filtered))

	onlySwans := Selection{Direction: domainteams.Ascending, Predicate: domainteams.DebutBefore(1880)}
	swans, err := svc.View(context.Background(), onlySwans)
	require.NoError(t, err)
	assert.Equal(t, []string{"Swans"}, domainteams.Names(swans))

	post, err := ParseSelection("", "post-1980")
	require.NoError(t, err)
	none, err := svc.View(context.Background(), post)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestLoadFetchesSeasonsConcurrently(t *testing.T) {
	provider := bombersSwans()
	started2022 := make(chan struct{})
	provider.BeforeGames = func(ctx context.Context, season string) error {
		if season == "2022" {
			close(started2022)
			return nil
		}
		// 2021 only finishes once 2022 has been requested, which deadlocks a serial loader.
		select {
		case <-started2022:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	svc := NewService(provider, []string{"2021", "2022"}, nil, nil)
	joined, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2021", joined[0].Seasons[0].Label)
	assert.Equal(t, "2022", joined[0].Seasons[1].Label)
}

func TestLoadAbortsOnTeamsFailure(t *testing.T) {
	provider := bombersSwans()
	provider.TeamsErr = &providers.HTTPError{Provider: "squiggle", Query: "q=teams", StatusCode: 503}
	rec := metrics.NewRecorder()
	logger, buf := testutil.NewBufferLogger()
	svc := NewService(provider, []string{"2021"}, logger, rec)

	joined, err := svc.Load(context.Background())
	assert.Nil(t, joined)
	require.ErrorIs(t, err, providers.ErrFetchFailed)
	assert.EqualValues(t, 1, provider.Calls.Load(), "games must not be fetched after a teams failure")
	assert.Equal(t, 1, rec.Loads().Errors)
	assert.True(t, strings.Contains(buf.String(), "team load failed"))
}

func TestLoadAbortsOnSeasonFailure(t *testing.T) {
	provider := bombersSwans()
	boom := &providers.DecodeError{Provider: "squiggle", Query: "q=games;year=2022", Err: errors.New("bad json")}
	provider.GamesErr = map[string]error{"2022": boom}
	svc := NewService(provider, []string{"2021", "2022"}, nil, nil)

	_, err := svc.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, providers.ErrFetchFailed)
	assert.Contains(t, err.Error(), "2022")
	assert.Equal(t, "decode", providers.Kind(err))
}

func TestLoadRejectsMalformedSeasonBeforeFetching(t *testing.T) {
	provider := bombersSwans()
	svc := NewService(provider, []string{"2021", "2022;source=1"}, nil, nil)

	_, err := svc.Load(context.Background())
	assert.ErrorIs(t, err, domaingames.ErrInvalidSeason)
	assert.Zero(t, provider.Calls.Load())
	assert.Equal(t, 1, svc.Status().ConsecutiveFailures)
}

func TestLoadWithoutProvider(t *testing.T) {
	svc := NewService(nil, []string{"2021"}, nil, nil)
	_, err := svc.Load(context.Background())
	assert.ErrorIs(t, err, providers.ErrProviderUnavailable)
}

func TestStatusTracksReadiness(t *testing.T) {
	provider := bombersSwans()
	svc := NewService(provider, []string{"2021"}, nil, nil)
	assert.False(t, svc.Status().IsReady(), "not ready before any load")

	_, err := svc.Load(context.Background())
	require.NoError(t, err)
	status := svc.Status()
	assert.True(t, status.IsReady())
	assert.False(t, status.LastSuccess.IsZero())
	assert.Zero(t, status.ConsecutiveFailures)

	provider.TeamsErr = errors.New("down")
	for i := 0; i < 2; i++ {
		_, _ = svc.Load(context.Background())
	}
	assert.True(t, svc.Status().IsReady(), "two failures keep the service ready")
	_, _ = svc.Load(context.Background())
	status = svc.Status()
	assert.False(t, status.IsReady())
	assert.Equal(t, 3, status.ConsecutiveFailures)
	assert.Contains(t, status.LastError, "down")

	provider.TeamsErr = nil
	_, err = svc.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, svc.Status().IsReady())
}

func TestViewDoesNotCorruptAcrossRepeatedSelections(t *testing.T) {
	svc := NewService(bombersSwans(), []string{"2021"}, nil, nil)
	pre, _ := ParseSelection("z-a", "pre-1980")
	post, _ := ParseSelection("a-z", "post-1980")

	for i := 0; i < 3; i++ {
		got, err := svc.View(context.Background(), pre)
		require.NoError(t, err)
		assert.Equal(t, []string{"Swans", "Bombers"}, domainteams.Names(got))
		got, err = svc.View(context.Background(), post)
		require.NoError(t, err)
		assert.Empty(t, got)
	}
}

func TestLoadRecordsMetrics(t *testing.T) {
	rec := metrics.NewRecorder()
	svc := NewService(bombersSwans(), []string{"2021", "2022"}, nil, rec)
	_, err := svc.Load(context.Background())
	require.NoError(t, err)
	loads := rec.Loads()
	assert.Equal(t, 1, loads.Cycles)
	assert.Zero(t, loads.Errors)
}

func TestSeasonsReturnsCopy(t *testing.T) {
	seasons := []string{"2021", "2022"}
	svc := NewService(nil, seasons, nil, nil)
	seasons[0] = "1999"
	got := svc.Seasons()
	assert.Equal(t, []string{"2021", "2022"}, got)
	got[1] = "2000"
	assert.Equal(t, []string{"2021", "2022"}, svc.Seasons())
}
