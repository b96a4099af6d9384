// Package facets derives the option lists offered to the user: year bounds,
// sports and the events of the selected sports.
package facets

import (
	"sort"

	"github.com/okian/medalboard/internal/domain/model"
	"github.com/okian/medalboard/internal/domain/selection"
)

// DefaultYearStep is the spacing of the year slider (one Games every four years).
const DefaultYearStep = 4

// Bounds is the closed year range covered by a dataset.
type Bounds struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Options is the full set of choices for the current criteria.
type Options struct {
	Years    Bounds   `json:"years"`
	YearStep int      `json:"year_step"`
	Sports   []string `json:"sports"`
	// Events is only populated when the criteria narrow the sports.
	Events  []string `json:"events,omitempty"`
	Genders []string `json:"genders"`
	Medals  []string `json:"medals"`
}

// YearBounds returns the smallest and largest year. ok is false for no records.
func YearBounds(records []model.Record) (Bounds, bool) {
	if len(records) == 0 {
		return Bounds{}, false
	}
	b := Bounds{Min: records[0].Year, Max: records[0].Year}
	for _, r := range records[1:] {
		if r.Year < b.Min {
			b.Min = r.Year
		}
		if r.Year > b.Max {
			b.Max = r.Year
		}
	}
	return b, true
}

// Sports returns "All" followed by the sorted distinct sports.
func Sports(records []model.Record) []string {
	return withAll(distinct(records, func(r model.Record) string { return r.Sport }, nil))
}

// Events returns "All" followed by the sorted distinct events of the given
// sports. An empty sports list yields just "All".
func Events(records []model.Record, sports []string) []string {
	if len(sports) == 0 {
		return []string{selection.All}
	}
	allowed := make(map[string]struct{}, len(sports))
	for _, s := range sports {
		allowed[s] = struct{}{}
	}
	keep := func(r model.Record) bool {
		_, ok := allowed[r.Sport]
		return ok
	}
	return withAll(distinct(records, func(r model.Record) string { return r.Event }, keep))
}

// For builds the options for c. Events are scoped to c's year range and
// sports, matching what the event picker would show.
func For(records []model.Record, c selection.Criteria, step int) Options {
	if step <= 0 {
		step = DefaultYearStep
	}
	b, _ := YearBounds(records)
	opts := Options{
		Years:    b,
		YearStep: step,
		Sports:   Sports(records),
		Genders:  []string{string(selection.GenderBoth), string(selection.GenderMen), string(selection.GenderWomen)},
		Medals: []string{
			string(selection.MedalAll), string(selection.MedalGold),
			string(selection.MedalSilver), string(selection.MedalBronze),
		},
	}
	if !c.AllSports() {
		c = c.Clamp(b.Min, b.Max)
		inRange := selection.Keep(records, selection.YearRange(c.YearMin, c.YearMax))
		opts.Events = Events(inRange, c.Sports)
	}
	return opts
}

func distinct(records []model.Record, key func(model.Record) string, keep func(model.Record) bool) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, r := range records {
		if keep != nil && !keep(r) {
			continue
		}
		k := key(r)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func withAll(values []string) []string {
	return append([]string{selection.All}, values...)
}
