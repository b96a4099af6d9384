// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/medalboard/internal/adapters/render"
	"github.com/okian/medalboard/internal/adapters/repository"
	"github.com/okian/medalboard/internal/domain/dashboard"
	"github.com/okian/medalboard/internal/domain/facets"
	"github.com/okian/medalboard/internal/domain/model"
	"github.com/okian/medalboard/internal/domain/selection"
	"github.com/okian/medalboard/internal/domain/types"
	"github.com/okian/medalboard/pkg/logger"
	"github.com/okian/medalboard/pkg/metrics"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Render recomputes the dashboard for a selection.
	Render(ctx context.Context, c selection.Criteria) (dashboard.Artifacts, error)
	// Options lists the widget choices for a selection.
	Options(ctx context.Context, c selection.Criteria) (facets.Options, error)
	// Records pages through the filtered view.
	Records(ctx context.Context, c selection.Criteria, offset, limit int) (types.Page[model.Record], error)
	// MaxRecordsLimit caps the records page size.
	MaxRecordsLimit() int
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	selectionHandler *SelectionHandler
	dashboardHandler *DashboardHandler
}

// Option configures the Server.
type Option func(*serverOptions)

type serverOptions struct {
	renderer *render.Renderer
	logger   logger.Logger
}

// WithRenderer sets the chart renderer of /dashboard.
func WithRenderer(r *render.Renderer) Option {
	return func(o *serverOptions) {
		if r != nil {
			o.renderer = r
		}
	}
}

// WithLogger logs server-side failures through l.
func WithLogger(l logger.Logger) Option {
	return func(o *serverOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...Option) *Server {
	o := serverOptions{renderer: render.New()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		selectionHandler: NewSelectionHandler(deps, o.logger),
		dashboardHandler: NewDashboardHandler(deps, o.renderer, o.logger),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/dashboard", MetricsMiddleware(s.dashboardHandler.HandleDashboard, "dashboard"))
	mux.HandleFunc("/api/selection", MetricsMiddleware(s.selectionHandler.HandleSelection, "selection"))
	mux.HandleFunc("/api/options", MetricsMiddleware(s.selectionHandler.HandleOptions, "options"))
	mux.HandleFunc("/api/records", MetricsMiddleware(s.selectionHandler.HandleRecords, "records"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// classify maps an error to a status and a stable error code.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, ErrLimitExceeded):
		return http.StatusBadRequest, "limit_exceeded"
	case errors.Is(err, selection.ErrInvalidCriteria), errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest, "bad_request"
	case errors.Is(err, repository.ErrNotLoaded):
		return http.StatusServiceUnavailable, "unavailable"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// fail writes err as a JSON error and logs server-side failures.
func fail(w http.ResponseWriter, r *http.Request, l logger.Logger, err error) {
	status, code := classify(err)
	if status == http.StatusBadRequest {
		metrics.RecordCriteriaRejected()
	}
	if status >= http.StatusInternalServerError && l != nil {
		l.Error(r.Context(), "request failed",
			logger.String("path", r.URL.Path),
			logger.String("request_id", RequestIDFrom(r.Context())),
			logger.Int("status", status),
			logger.Error(err),
		)
	}
	writeError(w, status, code, err)
}

// onlyGet rejects anything but GET and HEAD.
func onlyGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	w.Header().Set("Allow", "GET, HEAD")
	writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
	return false
}
