package squiggle

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/preston-bernstein/afl-teams-service/internal/providers"
)

func TestFetchTeamsHitsAPIAndMapsResponse(t *testing.T) {
	var capturedQuery, capturedUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedQuery = r.URL.RawQuery
		capturedUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"teams":[
			{"id":1,"name":"Bombers","abbrev":"ESS","debut":1897,"logo":"/b.png","retirement":9999},
			{"id":2,"name":" Swans ","debut":1874,"logo":"/s.png"}
		]}`)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL + "/", UserAgent: "tests"})
	items, err := client.FetchTeams(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if capturedQuery != "q=teams" {
		t.Fatalf("expected q=teams, got %s", capturedQuery)
	}
	if capturedUA != "tests" {
		t.Fatalf("expected user agent header, got %q", capturedUA)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(items))
	}
	if items[0].ID != 1 || items[0].Name != "Bombers" || items[0].Abbrev != "ESS" || items[0].Debut != 1897 || items[0].Logo != "/b.png" {
		t.Fatalf("unexpected team %+v", items[0])
	}
	if items[1].Name != "Swans" {
		t.Fatalf("expected trimmed name, got %q", items[1].Name)
	}
}

func TestFetchGamesUsesSeasonQueryAndMapsWinner(t *testing.T) {
	var capturedQuery string
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		capturedQuery = req.URL.RawQuery
		body := `{"games":[
			{"id":10,"year":2021,"round":1,"hteamid":1,"ateamid":2,"winnerteamid":1,"hteam":"Bombers","ateam":"Swans","hscore":90,"ascore":80,"complete":100},
			{"id":11,"year":2021,"round":2,"hteamid":2,"ateamid":1,"winnerteamid":null,"complete":0},
			{"id":12,"year":2021,"round":3,"hteamid":2,"ateamid":1,"winnerteamid":0,"complete":100}
		]}`
		return jsonResponse(http.StatusOK, body), nil
	})

	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})
	gs, err := client.FetchGames(context.Background(), "2021")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if capturedQuery != "q=games;year=2021" {
		t.Fatalf("unexpected query %s", capturedQuery)
	}
	if len(gs) != 3 {
		t.Fatalf("expected 3 games, got %d", len(gs))
	}
	if gs[0].WinnerTeamID == nil || *gs[0].WinnerTeamID != 1 {
		t.Fatalf("expected winner 1, got %v", gs[0].WinnerTeamID)
	}
	if gs[0].HomeTeamID != 1 || gs[0].AwayTeamID != 2 || gs[0].HomeScore != 90 || gs[0].Year != 2021 {
		t.Fatalf("unexpected game %+v", gs[0])
	}
	if gs[1].WinnerTeamID != nil || gs[2].WinnerTeamID != nil {
		t.Fatalf("expected undecided games to have nil winner, got %v / %v", gs[1].WinnerTeamID, gs[2].WinnerTeamID)
	}
}

func TestFetchGamesEmptySeasonReturnsNonNil(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"games":[]}`), nil
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	gs, err := client.FetchGames(context.Background(), "1850")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gs == nil || len(gs) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", gs)
	}
}

func TestFetchHandlesNon200(t *testing.T) {
	var logs bytes.Buffer
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadGateway, "boom"), nil
	})
	client := NewClient(Config{
		BaseURL:    "http://example.com",
		HTTPClient: &http.Client{Transport: rt},
		Logger:     slog.New(slog.NewTextHandler(&logs, nil)),
	})

	items, err := client.FetchTeams(context.Background())
	if items != nil {
		t.Fatalf("expected nil result on failure, got %+v", items)
	}
	var httpErr *providers.HTTPError
	if !errors.As(err, &httpErr) || httpErr.StatusCode != http.StatusBadGateway || httpErr.Body != "boom" {
		t.Fatalf("expected HTTPError 502, got %v", err)
	}
	if !strings.Contains(logs.String(), "squiggle request failed") || !strings.Contains(logs.String(), "kind=http") {
		t.Fatalf("expected failure to be logged, got %q", logs.String())
	}
}

func TestFetchHandlesDecodeError(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, "{bad json"), nil
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FetchGames(context.Background(), "2021")
	var decodeErr *providers.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if !errors.Is(err, providers.ErrFetchFailed) {
		t.Fatalf("expected ErrFetchFailed match")
	}
}

func TestFetchRejectsTrailingDataAfterJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"teams":[{"id":1,"name":"A"}]} <html>oops`)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	items, err := client.FetchTeams(context.Background())
	var decodeErr *providers.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected DecodeError for trailing data, got items=%v err=%v", items, err)
	}
	if items != nil {
		t.Fatalf("expected nil result on decode failure, got %v", items)
	}
}

func TestFetchAcceptsTrailingWhitespace(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, "{\"games\":[]}\n\n"), nil
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	got, err := client.FetchGames(context.Background(), "2021")
	if err != nil || got == nil {
		t.Fatalf("expected empty non-nil games, got %v err=%v", got, err)
	}
}

func TestFetchTreatsMissingCollectionAsDecodeError(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"other":[]}`), nil
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	if _, err := client.FetchTeams(context.Background()); providers.Kind(err) != "decode" {
		t.Fatalf("expected decode error for missing teams, got %v", err)
	}
	if _, err := client.FetchGames(context.Background(), "2021"); providers.Kind(err) != "decode" {
		t.Fatalf("expected decode error for missing games, got %v", err)
	}
}

func TestFetchHandlesTransportError(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FetchTeams(context.Background())
	var netErr *providers.NetworkError
	if !errors.As(err, &netErr) || netErr.Query != "q=teams" {
		t.Fatalf("expected NetworkError, got %v", err)
	}
}

func TestFetchRespectsCanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server")
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(Config{BaseURL: srv.URL})
	_, err := client.FetchTeams(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
	if providers.Kind(err) != "network" {
		t.Fatalf("expected cancellation reported as network failure, got %s", providers.Kind(err))
	}
}

func TestNewClientSetsDefaults(t *testing.T) {
	c := NewClient(Config{})
	httpClient, ok := c.httpClient.(*http.Client)
	if !ok {
		t.Fatalf("expected default http client")
	}
	if httpClient.Timeout != defaultHTTPTimeout {
		t.Fatalf("expected default timeout, got %s", httpClient.Timeout)
	}
	if c.baseURL != defaultBaseURL || c.userAgent != defaultUserAgent {
		t.Fatalf("unexpected defaults base=%s ua=%s", c.baseURL, c.userAgent)
	}
}

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}
