package server

import (
	"context"
	"testing"

	"github.com/preston-bernstein/afl-teams-service/internal/config"
	"github.com/preston-bernstein/afl-teams-service/internal/metrics"
	"github.com/preston-bernstein/afl-teams-service/internal/providers/fixture"
	"github.com/preston-bernstein/afl-teams-service/internal/providers/squiggle"
)

func TestProviderFactoryWrapsAndInstruments(t *testing.T) {
	rec := metrics.NewRecorder()
	factory := newProviderFactory(nil, rec)
	prov := factory.build(config.Config{Provider: "fixture"})
	if prov == nil {
		t.Fatalf("expected provider")
	}
	if _, err := prov.FetchTeams(context.Background()); err != nil {
		t.Fatalf("expected fixture teams, got %v", err)
	}
	if got := rec.ProviderCalls("fixture"); got != 1 {
		t.Fatalf("expected instrumented call under provider name, got %d", got)
	}
}

func TestSelectProviderDefaultsToSquiggle(t *testing.T) {
	for _, name := range []string{"", "squiggle"} {
		if _, ok := selectProvider(config.Config{Provider: name}, nil).(*squiggle.Client); !ok {
			t.Fatalf("expected squiggle client for %q", name)
		}
	}
}

func TestSelectProviderFallsBackToFixture(t *testing.T) {
	if _, ok := selectProvider(config.Config{Provider: "unknown"}, nil).(*fixture.Provider); !ok {
		t.Fatalf("expected fixture fallback")
	}
	if _, ok := selectProvider(config.Config{Provider: "fixture"}, nil).(*fixture.Provider); !ok {
		t.Fatalf("expected fixture provider")
	}
}

func TestNormalizeProviderName(t *testing.T) {
	if got := normalizeProviderName("Squiggle", nil); got != "squiggle" {
		t.Fatalf("expected lower-cased name, got %s", got)
	}
	if got := normalizeProviderName("mystery", fixture.New()); got != "fixture" {
		t.Fatalf("expected provider-reported name, got %s", got)
	}
	if got := normalizeProviderName("", squiggle.NewClient(squiggle.Config{})); got != "squiggle" {
		t.Fatalf("expected squiggle name, got %s", got)
	}
	if got := normalizeProviderName(" ", nil); got != "provider" {
		t.Fatalf("expected default name, got %s", got)
	}
}
