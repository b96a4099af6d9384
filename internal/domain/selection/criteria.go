// Package selection holds the user's filter state and the filter pipeline
// that narrows the dataset to it.
package selection

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// All is the option value meaning "no restriction" for sport and event lists.
const All = "All"

// Query parameter names understood by ParseCriteria.
const (
	ParamYearMin = "year_min"
	ParamYearMax = "year_max"
	ParamSport   = "sport"
	ParamEvent   = "event"
	ParamGender  = "gender"
	ParamMedal   = "medal"
)

// GenderChoice is the gender radio state.
type GenderChoice string

// Gender choices.
const (
	GenderBoth  GenderChoice = "Both"
	GenderMen   GenderChoice = "Men"
	GenderWomen GenderChoice = "Women"
)

// MedalChoice is the medal radio state.
type MedalChoice string

// Medal choices.
const (
	MedalAll    MedalChoice = "All"
	MedalGold   MedalChoice = "Gold"
	MedalSilver MedalChoice = "Silver"
	MedalBronze MedalChoice = "Bronze"
)

// Criteria is the active filter state. A nil Sports or Events list means All;
// a non-nil empty list is the empty set and matches nothing.
// A zero year means "unset" and is resolved by Clamp.
type Criteria struct {
	YearMin int          `json:"year_min"`
	YearMax int          `json:"year_max"`
	Sports  []string     `json:"sports"`
	Events  []string     `json:"events"`
	Gender  GenderChoice `json:"gender"`
	Medal   MedalChoice  `json:"medal"`
}

// Default returns criteria that select the whole dataset once clamped.
func Default() Criteria {
	return Criteria{Gender: GenderBoth, Medal: MedalAll}
}

// AllSports reports whether the sport filter is inactive.
func (c Criteria) AllSports() bool { return c.Sports == nil }

// AllEvents reports whether the event filter is inactive. Event choices are
// scoped to the selected sports, so they are ignored while all sports are on.
func (c Criteria) AllEvents() bool { return c.Events == nil || c.AllSports() }

// Clamp resolves unset years to the dataset bounds, swaps a reversed range and
// pulls both ends into [minYear, maxYear]. It never fails.
func (c Criteria) Clamp(minYear, maxYear int) Criteria {
	if minYear > maxYear {
		minYear, maxYear = maxYear, minYear
	}
	if c.YearMin == 0 {
		c.YearMin = minYear
	}
	if c.YearMax == 0 {
		c.YearMax = maxYear
	}
	if c.YearMin > c.YearMax {
		c.YearMin, c.YearMax = c.YearMax, c.YearMin
	}
	c.YearMin = clampInt(c.YearMin, minYear, maxYear)
	c.YearMax = clampInt(c.YearMax, minYear, maxYear)
	if c.Gender == "" {
		c.Gender = GenderBoth
	}
	if c.Medal == "" {
		c.Medal = MedalAll
	}
	return c
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ParseCriteria reads criteria from query parameters. Gender and medal are
// case-insensitive; sport and event names match exactly. Missing parameters
// keep their Default value, so an absent sport or event means All, while a
// parameter present with only blank values selects the empty set.
func ParseCriteria(q url.Values) (Criteria, error) {
	c := Default()

	var err error
	if c.YearMin, err = parseYear(q, ParamYearMin); err != nil {
		return Criteria{}, err
	}
	if c.YearMax, err = parseYear(q, ParamYearMax); err != nil {
		return Criteria{}, err
	}

	if raw, ok := q[ParamSport]; ok {
		c.Sports = parseList(raw)
	}
	if raw, ok := q[ParamEvent]; ok {
		c.Events = parseList(raw)
	}

	title := cases.Title(language.Und)
	if raw := strings.TrimSpace(q.Get(ParamGender)); raw != "" {
		switch g := GenderChoice(title.String(raw)); g {
		case GenderBoth, GenderMen, GenderWomen:
			c.Gender = g
		default:
			return Criteria{}, fmt.Errorf("%w: gender %q", ErrInvalidCriteria, raw)
		}
	}
	if raw := strings.TrimSpace(q.Get(ParamMedal)); raw != "" {
		switch m := MedalChoice(title.String(raw)); m {
		case MedalAll, MedalGold, MedalSilver, MedalBronze:
			c.Medal = m
		default:
			return Criteria{}, fmt.Errorf("%w: medal %q", ErrInvalidCriteria, raw)
		}
	}
	return c, nil
}

// Values encodes c back into query parameters, the inverse of ParseCriteria.
func (c Criteria) Values() url.Values {
	q := url.Values{}
	if c.YearMin != 0 {
		q.Set(ParamYearMin, strconv.Itoa(c.YearMin))
	}
	if c.YearMax != 0 {
		q.Set(ParamYearMax, strconv.Itoa(c.YearMax))
	}
	addList(q, ParamSport, c.Sports)
	addList(q, ParamEvent, c.Events)
	if c.Gender != "" {
		q.Set(ParamGender, string(c.Gender))
	}
	if c.Medal != "" {
		q.Set(ParamMedal, string(c.Medal))
	}
	return q
}

// addList encodes a non-nil empty list as one blank value so it survives
// the round trip as the empty set.
func addList(q url.Values, key string, values []string) {
	if values == nil {
		return
	}
	if len(values) == 0 {
		q.Set(key, "")
		return
	}
	for _, v := range values {
		q.Add(key, v)
	}
}

func parseYear(q url.Values, key string) (int, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidCriteria, key, raw)
	}
	return v, nil
}

// parseList trims and de-duplicates values. Any "All" entry disables the
// filter and returns nil; otherwise the result is never nil.
func parseList(raw []string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, v := range raw {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if strings.EqualFold(v, All) {
			return nil
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
