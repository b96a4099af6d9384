// Package repository loads the medal dataset and keeps the immutable copy
// shared by every request.
package repository

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/okian/medalboard/internal/domain/model"
	"github.com/okian/medalboard/pkg/logger"
	"github.com/okian/medalboard/pkg/metrics"
)

const loadKey = "dataset"

// Store provides read access to the loaded dataset.
type Store interface {
	// Load fetches and parses the dataset once. Later calls return the cached copy.
	Load(ctx context.Context) (model.Dataset, error)
	// Dataset returns the cached dataset or ErrNotLoaded.
	Dataset(ctx context.Context) (model.Dataset, error)
	// Info describes the last successful load.
	Info() LoadInfo
}

// LoadInfo summarises a completed load.
type LoadInfo struct {
	Loaded   bool          `json:"loaded"`
	Source   string        `json:"source"`
	Records  int           `json:"records"`
	Columns  int           `json:"columns"`
	Skipped  int           `json:"skipped"`
	LoadedAt time.Time     `json:"loaded_at"`
	Duration time.Duration `json:"duration"`
}

type snapshot struct {
	ds   model.Dataset
	info LoadInfo
}

// DatasetStore is the process-scoped Store. Concurrent Load calls share one
// fetch; a failed load is not cached so a later call may retry.
type DatasetStore struct {
	source Source
	group  singleflight.Group
	cur    atomic.Pointer[snapshot]
	logger logger.Logger
}

// NewDatasetStore creates a store reading from source.
func NewDatasetStore(source Source, opts ...Option) *DatasetStore {
	s := &DatasetStore{source: source}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load implements Store.
func (s *DatasetStore) Load(ctx context.Context) (model.Dataset, error) {
	if snap := s.cur.Load(); snap != nil {
		return snap.ds, nil
	}
	v, err, _ := s.group.Do(loadKey, func() (interface{}, error) {
		if snap := s.cur.Load(); snap != nil {
			return snap, nil
		}
		return s.load(ctx)
	})
	if err != nil {
		return model.Dataset{}, err
	}
	return v.(*snapshot).ds, nil
}

func (s *DatasetStore) load(ctx context.Context) (*snapshot, error) {
	start := time.Now()
	metrics.RecordDatasetLoad()

	rc, err := s.source.Open(ctx)
	if err != nil {
		metrics.RecordErrorByComponent("repository", "fetch")
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	res, err := ParseCSV(rc)
	if err != nil {
		metrics.RecordErrorByComponent("repository", "parse")
		return nil, fmt.Errorf("%s: %w", s.source.Name(), err)
	}

	elapsed := time.Since(start)
	snap := &snapshot{
		ds: res.Dataset,
		info: LoadInfo{
			Loaded:   true,
			Source:   s.source.Name(),
			Records:  res.Dataset.Len(),
			Columns:  len(res.Dataset.Columns),
			Skipped:  res.Skipped,
			LoadedAt: start,
			Duration: elapsed,
		},
	}
	s.cur.Store(snap)

	metrics.RecordDatasetLoadLatency(float64(elapsed.Milliseconds()))
	metrics.UpdateDatasetRecords(res.Dataset.Len())
	metrics.RecordDatasetRowsSkipped(res.Skipped)

	if s.logger != nil {
		s.logger.Info(ctx, "dataset loaded",
			logger.String("source", s.source.Name()),
			logger.Int("records", res.Dataset.Len()),
			logger.Int("skipped", res.Skipped),
			logger.Duration("took", elapsed),
		)
		for _, issue := range res.Issues {
			s.logger.Debug(ctx, "skipped dataset row", logger.String("reason", issue))
		}
	}
	return snap, nil
}

// Dataset implements Store.
func (s *DatasetStore) Dataset(_ context.Context) (model.Dataset, error) {
	snap := s.cur.Load()
	if snap == nil {
		return model.Dataset{}, ErrNotLoaded
	}
	return snap.ds, nil
}

// Info implements Store.
func (s *DatasetStore) Info() LoadInfo {
	snap := s.cur.Load()
	if snap == nil {
		return LoadInfo{Source: s.source.Name()}
	}
	return snap.info
}
