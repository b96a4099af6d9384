// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/medalboard/internal/adapters/repository"
	"github.com/okian/medalboard/internal/domain/dashboard"
	"github.com/okian/medalboard/internal/domain/facets"
	"github.com/okian/medalboard/internal/domain/geo"
	"github.com/okian/medalboard/internal/domain/model"
	"github.com/okian/medalboard/internal/domain/selection"
	"github.com/okian/medalboard/internal/domain/tally"
	"github.com/okian/medalboard/internal/domain/types"
	"github.com/okian/medalboard/pkg/logger"
	"github.com/okian/medalboard/pkg/metrics"
)

const defaultRecordsLimit = 100

// Service answers dashboard queries against the dataset loaded at Start.
// Every query is synchronous and recomputes from the cached dataset.
type Service struct {
	mu sync.RWMutex

	store repository.Store

	// Configuration
	top             int
	table           geo.Table
	yearStep        int
	overviewFollows bool
	maxRecords      int

	// State
	started bool
	renders atomic.Int64

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStore sets the dataset store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithTopCountries sets the size of the medal tally.
func WithTopCountries(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.top = n
		}
	}
}

// WithTable replaces the country coordinate table.
func WithTable(t geo.Table) Option {
	return func(s *Service) {
		if t.Len() > 0 {
			s.table = t
		}
	}
}

// WithYearStep sets the slider step reported with the options.
func WithYearStep(step int) Option {
	return func(s *Service) {
		if step > 0 {
			s.yearStep = step
		}
	}
}

// WithOverviewFollowsSelection computes the participation and sport
// series from the filtered view.
func WithOverviewFollowsSelection(follow bool) Option {
	return func(s *Service) {
		s.overviewFollows = follow
	}
}

// WithMaxRecordsLimit caps the page size of Records.
func WithMaxRecordsLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxRecords = n
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		top:        tally.DefaultTop,
		table:      geo.DefaultTable(),
		yearStep:   facets.DefaultYearStep,
		maxRecords: 500,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start loads the dataset. A load failure is returned unchanged and the
// service stays stopped.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.store == nil {
		return ErrNoStore
	}

	s.logger.Info(ctx, "starting medal dashboard service...")
	ds, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Error(ctx, "dataset load failed", logger.Error(err))
		return err
	}

	s.started = true
	s.logger.Info(ctx, "medal dashboard service started",
		logger.Int("records", ds.Len()),
		logger.Int("columns", len(ds.Columns)),
		logger.Int("top", s.top),
		logger.Int("coordinates", s.table.Len()),
		logger.Bool("overviewFollowsSelection", s.overviewFollows),
	)
	return nil
}

// Stop marks the service stopped. The dataset stays cached in the store.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "medal dashboard service stopped")
}

func (s *Service) dataset(ctx context.Context) (model.Dataset, error) {
	s.mu.RLock()
	started, store := s.started, s.store
	s.mu.RUnlock()

	if store == nil {
		return model.Dataset{}, fmt.Errorf("%w: %w", ErrNoStore, repository.ErrNotLoaded)
	}
	if !started {
		return model.Dataset{}, fmt.Errorf("%w: %w", ErrNotStarted, repository.ErrNotLoaded)
	}
	return store.Dataset(ctx)
}

// Render recomputes every dashboard artifact for c.
func (s *Service) Render(ctx context.Context, c selection.Criteria) (dashboard.Artifacts, error) {
	start := time.Now()
	ds, err := s.dataset(ctx)
	if err != nil {
		metrics.RecordErrorByComponent("service", "dataset")
		return dashboard.Artifacts{}, err
	}

	a := dashboard.Build(ds, c, dashboard.Options{
		Top:                      s.top,
		Table:                    s.table,
		OverviewFollowsSelection: s.overviewFollows,
	})
	s.renders.Add(1)

	elapsed := time.Since(start)
	metrics.RecordRender("dashboard")
	metrics.RecordRenderLatency(float64(elapsed.Microseconds()) / 1000)
	metrics.RecordSelectionRows(a.Rows)
	metrics.RecordMarkersSkipped(len(a.SkippedCountries))
	metrics.UpdateTallyCountries(len(a.Tally))

	s.logger.Debug(ctx, "dashboard rendered",
		logger.Int("rows", a.Rows),
		logger.Int("tally", len(a.Tally)),
		logger.Int("markers", len(a.Markers)),
		logger.Int("skippedCountries", len(a.SkippedCountries)),
		logger.Duration("took", elapsed),
	)
	return a, nil
}

// Options returns the widget option lists for c.
func (s *Service) Options(ctx context.Context, c selection.Criteria) (facets.Options, error) {
	ds, err := s.dataset(ctx)
	if err != nil {
		return facets.Options{}, err
	}
	metrics.RecordRender("options")
	return facets.For(ds.Records, c, s.yearStep), nil
}

// Records returns a page of the filtered view. limit is capped by the
// configured maximum; a non-positive limit takes the default page size.
func (s *Service) Records(ctx context.Context, c selection.Criteria, offset, limit int) (types.Page[model.Record], error) {
	ds, err := s.dataset(ctx)
	if err != nil {
		return types.Page[model.Record]{}, err
	}
	metrics.RecordRender("records")

	if limit <= 0 {
		limit = min(defaultRecordsLimit, s.maxRecords)
	}
	limit = min(limit, s.maxRecords)
	offset = max(offset, 0)

	_, filtered := dashboard.Select(ds, c)
	page := types.Page[model.Record]{
		Total:  len(filtered),
		Offset: offset,
		Limit:  limit,
		Items:  []model.Record{},
	}
	if offset < len(filtered) {
		end := min(offset+limit, len(filtered))
		page.Items = filtered[offset:end]
	}
	return page, nil
}

// MaxRecordsLimit reports the page size cap of Records.
func (s *Service) MaxRecordsLimit() int { return s.maxRecords }

// Info describes the loaded dataset.
func (s *Service) Info() repository.LoadInfo {
	if s.store == nil {
		return repository.LoadInfo{}
	}
	return s.store.Info()
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":                  s.started,
		"topCountries":             s.top,
		"yearStep":                 s.yearStep,
		"maxRecordsLimit":          s.maxRecords,
		"coordinates":              s.table.Len(),
		"overviewFollowsSelection": s.overviewFollows,
		"renders":                  s.renders.Load(),
	}

	if s.store != nil {
		info := s.store.Info()
		stats["datasetLoaded"] = info.Loaded
		stats["datasetSource"] = info.Source
		stats["datasetRecords"] = info.Records
		stats["datasetSkippedRows"] = info.Skipped
		if info.Loaded {
			stats["datasetLoadedAt"] = info.LoadedAt.UTC().Format(time.RFC3339)
			metrics.UpdateDatasetRecords(info.Records)
		}
	}

	return stats
}
