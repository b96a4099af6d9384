package api

import (
	"bytes"
	"net/http"

	"github.com/okian/medalboard/internal/adapters/render"
	"github.com/okian/medalboard/internal/domain/selection"
	"github.com/okian/medalboard/pkg/logger"
	"github.com/okian/medalboard/pkg/metrics"
)

// DashboardHandler serves the rendered chart page.
type DashboardHandler struct {
	deps     Dependencies
	renderer *render.Renderer
	logger   logger.Logger
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(deps Dependencies, r *render.Renderer, l logger.Logger) *DashboardHandler {
	return &DashboardHandler{deps: deps, renderer: r, logger: l}
}

// HandleDashboard handles GET /dashboard requests. The query takes the same
// selection parameters as /api/selection.
func (h *DashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	if !onlyGet(w, r) {
		return
	}
	c, err := selection.ParseCriteria(r.URL.Query())
	if err != nil {
		fail(w, r, h.logger, err)
		return
	}
	a, err := h.deps.Render(r.Context(), c)
	if err != nil {
		fail(w, r, h.logger, err)
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.Page(a, &buf); err != nil {
		fail(w, r, h.logger, err)
		return
	}
	metrics.RecordRender("html")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
