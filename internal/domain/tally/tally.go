// Package tally computes the derived tables shown on the dashboard: the
// medal table and the count series.
package tally

import (
	"sort"

	"github.com/okian/medalboard/internal/domain/model"
	"github.com/okian/medalboard/internal/domain/types"
)

// DefaultTop is the size of the medal table shown by default.
const DefaultTop = 10

// Tally counts medals per country over the records that won one. Countries
// appear in the order they are first encountered; every count defaults to 0.
func Tally(records []model.Record) []types.CountryTally {
	index := make(map[string]int)
	out := make([]types.CountryTally, 0)
	for _, r := range records {
		if !r.Medal.Valid() {
			continue
		}
		i, ok := index[r.Country]
		if !ok {
			i = len(out)
			index[r.Country] = i
			out = append(out, types.CountryTally{Country: r.Country})
		}
		row := &out[i]
		switch r.Medal {
		case model.MedalGold:
			row.Gold++
		case model.MedalSilver:
			row.Silver++
		case model.MedalBronze:
			row.Bronze++
		}
		row.Total = row.Gold + row.Silver + row.Bronze
	}
	return out
}

// Top returns the n rows with the highest Total. Ties keep their input order.
// The input is not modified.
func Top(rows []types.CountryTally, n int) []types.CountryTally {
	sorted := make([]types.CountryTally, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Total > sorted[j].Total })
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// ParticipationByYear counts records per year, ascending by year.
func ParticipationByYear(records []model.Record) []types.YearCount {
	counts := make(map[int]int)
	for _, r := range records {
		counts[r.Year]++
	}
	out := make([]types.YearCount, 0, len(counts))
	for year, n := range counts {
		out = append(out, types.YearCount{Year: year, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// CountBySport counts records per sport, descending by count. Equal counts
// keep first-encounter order.
func CountBySport(records []model.Record) []types.KeyCount {
	out := countBy(records, func(r model.Record) string { return r.Sport })
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// CountByCountry counts records per country in first-encounter order.
func CountByCountry(records []model.Record) []types.KeyCount {
	return countBy(records, func(r model.Record) string { return r.Country })
}

func countBy(records []model.Record, key func(model.Record) string) []types.KeyCount {
	index := make(map[string]int)
	out := make([]types.KeyCount, 0)
	for _, r := range records {
		k := key(r)
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, types.KeyCount{Key: k})
		}
		out[i].Count++
	}
	return out
}
