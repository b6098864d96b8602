package handlers

import (
	"context"
	"errors"
	"log/slog"
	nethttp "net/http"

	appteams "github.com/preston-bernstein/afl-teams-service/internal/app/teams"
	domainteams "github.com/preston-bernstein/afl-teams-service/internal/domain/teams"
	"github.com/preston-bernstein/afl-teams-service/internal/presenter"
)

// TeamsResponse is the JSON payload for /api/teams.
type TeamsResponse struct {
	Sort   string           `json:"sort"`
	Filter string           `json:"filter"`
	Count  int              `json:"count"`
	Teams  []presenter.Card `json:"teams"`
}

// Handler wires HTTP routes to the team loader.
type Handler struct {
	viewer    appteams.Viewer
	imageBase string
	logger    *slog.Logger
	statusFn  func() appteams.Status
}

// NewHandler constructs a Handler. statusFn may be nil, in which case /ready always reports ready.
func NewHandler(viewer appteams.Viewer, imageBase string, logger *slog.Logger, statusFn func() appteams.Status) *Handler {
	return &Handler{
		viewer:    viewer,
		imageBase: imageBase,
		logger:    logger,
		statusFn:  statusFn,
	}
}

// ServeHTTP routes without a mux; used directly in tests and as a fallback.
func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch r.URL.Path {
	case "/health":
		h.Health(w, r)
	case "/ready":
		h.Ready(w, r)
	case "/api/teams", "/api/teams/":
		h.Teams(w, r)
	case "/":
		h.Page(w, r)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Teams loads fresh data, applies ?sort= and ?filter=, and returns cards as JSON.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	sel, err := selectionFrom(r)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}

	cards, err := h.cards(r.Context(), sel)
	if err != nil {
		logger := loggerFromContext(r, h.logger)
		if logger != nil {
			logger.Warn("team view failed", "error", err)
		}
		writeError(w, r, statusForLoadError(err), "could not load teams", h.logger)
		return
	}

	writeJSON(w, nethttp.StatusOK, TeamsResponse{
		Sort:   sel.SortValue(),
		Filter: sel.FilterValue(),
		Count:  len(cards),
		Teams:  cards,
	}, h.logger)
}

func (h *Handler) cards(ctx context.Context, sel appteams.Selection) ([]presenter.Card, error) {
	if h.viewer == nil {
		return nil, errors.New("no team source configured")
	}
	items, err := h.viewer.View(ctx, sel)
	if err != nil {
		return nil, err
	}
	return presenter.Cards(h.imageBase, items), nil
}

func selectionFrom(r *nethttp.Request) (appteams.Selection, error) {
	q := r.URL.Query()
	return appteams.ParseSelection(q.Get("sort"), q.Get("filter"))
}

func statusForLoadError(err error) int {
	switch {
	case errors.Is(err, domainteams.ErrInvalidSelection):
		return nethttp.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return nethttp.StatusGatewayTimeout
	default:
		return nethttp.StatusBadGateway
	}
}
