package squiggle

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/afl-teams-service/internal/domain/games"
	"github.com/preston-bernstein/afl-teams-service/internal/domain/teams"
	"github.com/preston-bernstein/afl-teams-service/internal/logging"
	"github.com/preston-bernstein/afl-teams-service/internal/providers"
)

// Config controls how the Squiggle client reaches the upstream API.
type Config struct {
	BaseURL    string
	UserAgent  string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client fetches teams and games from the Squiggle API and maps them to domain models.
// Every failure is logged here and returned as a *providers.NetworkError,
// *providers.HTTPError or *providers.DecodeError with a nil result.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient httpDoer
	logger     *slog.Logger
}

// NewClient constructs a Squiggle client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		userAgent:  resolveUserAgent(cfg.UserAgent),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		logger:     cfg.Logger,
	}
}

// Name identifies the upstream in logs and metrics.
func (c *Client) Name() string { return providerName }

// FetchTeams retrieves every team from ?q=teams.
func (c *Client) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	var payload teamsResponse
	if err := c.getJSON(ctx, queryTeams, &payload); err != nil {
		return nil, err
	}
	if payload.Teams == nil {
		return nil, c.fail(ctx, queryTeams, &providers.DecodeError{
			Provider: providerName,
			Query:    queryTeams,
			Err:      errors.New(`response missing "teams"`),
		})
	}
	return mapTeams(payload.Teams), nil
}

// FetchGames retrieves every game of one season from ?q=games;year=YYYY.
func (c *Client) FetchGames(ctx context.Context, season string) ([]games.Game, error) {
	query := gamesQuery(season)
	var payload gamesResponse
	if err := c.getJSON(ctx, query, &payload); err != nil {
		return nil, err
	}
	if payload.Games == nil {
		return nil, c.fail(ctx, query, &providers.DecodeError{
			Provider: providerName,
			Query:    query,
			Err:      errors.New(`response missing "games"`),
		})
	}
	return mapGames(payload.Games), nil
}

func (c *Client) getJSON(ctx context.Context, query string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/?"+query, nil)
	if err != nil {
		return c.fail(ctx, query, &providers.NetworkError{Provider: providerName, Query: query, Err: err})
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.fail(ctx, query, &providers.NetworkError{Provider: providerName, Query: query, Err: err})
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return c.fail(ctx, query, &providers.HTTPError{
			Provider:   providerName,
			Query:      query,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		})
	}

	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(dest); err != nil {
		return c.fail(ctx, query, &providers.DecodeError{Provider: providerName, Query: query, Err: err})
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return c.fail(ctx, query, &providers.DecodeError{
			Provider: providerName,
			Query:    query,
			Err:      errors.New("unexpected data after JSON body"),
		})
	}

	if logger := logging.FromContext(ctx, c.logger); logger != nil {
		logger.Debug("squiggle request complete",
			slog.String(logging.FieldProvider, providerName),
			slog.String(logging.FieldQuery, query),
			slog.Int(logging.FieldStatusCode, resp.StatusCode),
			logging.Duration(time.Since(start)),
		)
	}
	return nil
}

func (c *Client) fail(ctx context.Context, query string, err error) error {
	if logger := logging.FromContext(ctx, c.logger); logger != nil {
		logger.Warn("squiggle request failed",
			slog.String(logging.FieldProvider, providerName),
			slog.String(logging.FieldQuery, query),
			slog.String("kind", providers.Kind(err)),
			"error", err,
		)
	}
	return err
}
