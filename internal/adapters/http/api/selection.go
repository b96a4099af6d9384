package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/okian/medalboard/internal/domain/selection"
	"github.com/okian/medalboard/pkg/logger"
)

// SelectionHandler serves the JSON views of a selection.
type SelectionHandler struct {
	deps   Dependencies
	logger logger.Logger
}

// NewSelectionHandler creates a new selection handler.
func NewSelectionHandler(deps Dependencies, l logger.Logger) *SelectionHandler {
	return &SelectionHandler{deps: deps, logger: l}
}

// HandleSelection handles GET /api/selection?year_min&year_max&sport&event&gender&medal.
func (h *SelectionHandler) HandleSelection(w http.ResponseWriter, r *http.Request) {
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
	writeJSON(w, http.StatusOK, a)
}

// HandleOptions handles GET /api/options.
func (h *SelectionHandler) HandleOptions(w http.ResponseWriter, r *http.Request) {
	if !onlyGet(w, r) {
		return
	}
	c, err := selection.ParseCriteria(r.URL.Query())
	if err != nil {
		fail(w, r, h.logger, err)
		return
	}
	opts, err := h.deps.Options(r.Context(), c)
	if err != nil {
		fail(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, opts)
}

// HandleRecords handles GET /api/records?offset&limit plus selection parameters.
func (h *SelectionHandler) HandleRecords(w http.ResponseWriter, r *http.Request) {
	if !onlyGet(w, r) {
		return
	}
	q := r.URL.Query()
	c, err := selection.ParseCriteria(q)
	if err != nil {
		fail(w, r, h.logger, err)
		return
	}
	offset, err := nonNegative(q.Get("offset"), "offset")
	if err != nil {
		fail(w, r, h.logger, err)
		return
	}
	limit, err := nonNegative(q.Get("limit"), "limit")
	if err != nil {
		fail(w, r, h.logger, err)
		return
	}
	if maxLimit := h.deps.MaxRecordsLimit(); limit > maxLimit {
		fail(w, r, h.logger, fmt.Errorf("%w: %d > %d", ErrLimitExceeded, limit, maxLimit))
		return
	}
	page, err := h.deps.Records(r.Context(), c, offset, limit)
	if err != nil {
		fail(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// nonNegative parses an optional integer query parameter; absent is 0.
func nonNegative(raw, name string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", ErrBadRequest, name)
	}
	return n, nil
}
