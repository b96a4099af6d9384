package smoke

import (
	"errors"
	"fmt"

	"github.com/okian/medalboard/internal/domain/dashboard"
	"github.com/okian/medalboard/internal/domain/selection"
)

// Verify checks the invariants every dashboard response must hold.
// All violations are reported, joined into one error wrapping ErrViolation.
func Verify(a dashboard.Artifacts, top int) error {
	var errs []error
	violate := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrViolation}, args...)...))
	}

	if a.Criteria.YearMin > a.Criteria.YearMax {
		violate("criteria year range %d > %d", a.Criteria.YearMin, a.Criteria.YearMax)
	}
	if a.Rows < 0 || a.Rows > a.DatasetRows {
		violate("rows %d outside [0, %d]", a.Rows, a.DatasetRows)
	}

	if top > 0 && len(a.Tally) > top {
		violate("tally has %d entries, limit %d", len(a.Tally), top)
	}
	countries := make(map[string]struct{}, len(a.Tally))
	medalled := 0
	for i, t := range a.Tally {
		if t.Total != t.Gold+t.Silver+t.Bronze {
			violate("tally %s total %d != %d+%d+%d", t.Country, t.Total, t.Gold, t.Silver, t.Bronze)
		}
		if t.Total <= 0 {
			violate("tally %s has no medals", t.Country)
		}
		if i > 0 && a.Tally[i-1].Total < t.Total {
			violate("tally not sorted at %d: %d < %d", i, a.Tally[i-1].Total, t.Total)
		}
		if _, dup := countries[t.Country]; dup {
			violate("tally lists %s twice", t.Country)
		}
		countries[t.Country] = struct{}{}
		switch a.Criteria.Medal {
		case selection.MedalGold:
			if t.Silver+t.Bronze != 0 {
				violate("gold-only tally %s has other medals", t.Country)
			}
		case selection.MedalSilver:
			if t.Gold+t.Bronze != 0 {
				violate("silver-only tally %s has other medals", t.Country)
			}
		case selection.MedalBronze:
			if t.Gold+t.Silver != 0 {
				violate("bronze-only tally %s has other medals", t.Country)
			}
		}
		medalled += t.Total
	}
	if medalled > a.Rows {
		violate("tally counts %d medals for %d rows", medalled, a.Rows)
	}

	placed := make(map[string]struct{}, len(a.Markers))
	marked := 0
	for _, m := range a.Markers {
		if _, dup := placed[m.Country]; dup {
			violate("marker %s placed twice", m.Country)
		}
		placed[m.Country] = struct{}{}
		if m.Count <= 0 {
			violate("marker %s has count %d", m.Country, m.Count)
		}
		if want := fmt.Sprintf("%s - %d medals", m.Country, m.Count); m.Label != want {
			violate("marker label %q, want %q", m.Label, want)
		}
		marked += m.Count
	}
	if marked > a.Rows {
		violate("markers count %d records for %d rows", marked, a.Rows)
	}
	for _, code := range a.SkippedCountries {
		if _, ok := placed[code]; ok && code != "" {
			violate("country %s both placed and skipped", code)
		}
	}

	participants := 0
	for i, p := range a.Participation {
		if i > 0 && a.Participation[i-1].Year >= p.Year {
			violate("participation not ascending at %d", p.Year)
		}
		participants += p.Count
	}
	for i, s := range a.Sports {
		if i > 0 && a.Sports[i-1].Count < s.Count {
			violate("sports not sorted at %s", s.Key)
		}
	}
	switch a.OverviewScope {
	case dashboard.ScopeSelection:
		if participants != a.Rows {
			violate("participation sums to %d for %d rows", participants, a.Rows)
		}
	case dashboard.ScopeDataset:
		if participants != a.DatasetRows {
			violate("participation sums to %d for %d dataset rows", participants, a.DatasetRows)
		}
	}

	if a.Rows == 0 && (len(a.Tally) > 0 || len(a.Markers) > 0) {
		violate("empty selection with %d tally rows and %d markers", len(a.Tally), len(a.Markers))
	}
	return errors.Join(errs...)
}
