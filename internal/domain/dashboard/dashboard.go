// Package dashboard turns a dataset and a selection into everything the
// dashboard displays. Build is pure: the same inputs always give the same
// artifacts and nothing is cached between calls.
package dashboard

import (
	"github.com/okian/medalboard/internal/domain/facets"
	"github.com/okian/medalboard/internal/domain/geo"
	"github.com/okian/medalboard/internal/domain/model"
	"github.com/okian/medalboard/internal/domain/selection"
	"github.com/okian/medalboard/internal/domain/tally"
	"github.com/okian/medalboard/internal/domain/types"
)

// Overview scopes for the participation and sport series.
const (
	ScopeDataset   = "dataset"
	ScopeSelection = "selection"
)

// Options tunes Build.
type Options struct {
	// Top is the number of countries in the medal table.
	Top int
	// Table resolves map coordinates.
	Table geo.Table
	// OverviewFollowsSelection computes the participation and sport series
	// from the filtered records instead of the whole dataset.
	OverviewFollowsSelection bool
}

// Artifacts is the full recomputed dashboard for one selection.
type Artifacts struct {
	Criteria         selection.Criteria   `json:"criteria"`
	Rows             int                  `json:"rows"`
	Columns          int                  `json:"columns"`
	DatasetRows      int                  `json:"dataset_rows"`
	Tally            []types.CountryTally `json:"tally"`
	Markers          []types.Marker       `json:"markers"`
	SkippedCountries []string             `json:"skipped_countries"`
	Participation    []types.YearCount    `json:"participation"`
	Sports           []types.KeyCount     `json:"sports"`
	OverviewScope    string               `json:"overview_scope"`
}

// Select clamps c to the dataset's years and returns the matching records.
func Select(ds model.Dataset, c selection.Criteria) (selection.Criteria, []model.Record) {
	b, _ := facets.YearBounds(ds.Records)
	c = c.Clamp(b.Min, b.Max)
	return c, selection.Apply(ds.Records, c)
}

// Build recomputes every dashboard artifact for c.
func Build(ds model.Dataset, c selection.Criteria, opts Options) Artifacts {
	if opts.Top <= 0 {
		opts.Top = tally.DefaultTop
	}
	c, filtered := Select(ds, c)
	placed := geo.Markers(filtered, opts.Table)

	overview, scope := ds.Records, ScopeDataset
	if opts.OverviewFollowsSelection {
		overview, scope = filtered, ScopeSelection
	}

	return Artifacts{
		Criteria:         c,
		Rows:             len(filtered),
		Columns:          len(ds.Columns),
		DatasetRows:      ds.Len(),
		Tally:            tally.Top(tally.Tally(filtered), opts.Top),
		Markers:          placed.Markers,
		SkippedCountries: placed.Skipped,
		Participation:    tally.ParticipationByYear(overview),
		Sports:           tally.CountBySport(overview),
		OverviewScope:    scope,
	}
}
