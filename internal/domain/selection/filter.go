package selection

import (
	"github.com/okian/medalboard/internal/domain/model"
)

// Predicate is one independent filter of the pipeline.
type Predicate struct {
	Name  string
	Match func(model.Record) bool
}

// Predicates returns the five filters for c in their canonical order:
// year, sport, event, gender, medal. Inactive filters match everything, so
// the list always has the same shape.
func Predicates(c Criteria) []Predicate {
	return []Predicate{
		YearRange(c.YearMin, c.YearMax),
		sportPredicate(c),
		eventPredicate(c),
		genderPredicate(c.Gender),
		medalPredicate(c.Medal),
	}
}

// Apply returns the records matching every filter of c in a single pass.
// The input slice is not modified.
func Apply(records []model.Record, c Criteria) []model.Record {
	preds := Predicates(c)
	out := make([]model.Record, 0, len(records))
	for _, r := range records {
		if matchAll(r, preds) {
			out = append(out, r)
		}
	}
	return out
}

// ApplyPredicates applies preds one after another. The order does not affect
// the result.
func ApplyPredicates(records []model.Record, preds ...Predicate) []model.Record {
	out := records
	for _, p := range preds {
		out = Keep(out, p)
	}
	if out == nil {
		return []model.Record{}
	}
	return out
}

// Keep returns the records matching p.
func Keep(records []model.Record, p Predicate) []model.Record {
	out := make([]model.Record, 0, len(records))
	for _, r := range records {
		if p.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

func matchAll(r model.Record, preds []Predicate) bool {
	for _, p := range preds {
		if !p.Match(r) {
			return false
		}
	}
	return true
}

// YearRange matches records with lo <= Year <= hi.
func YearRange(lo, hi int) Predicate {
	return Predicate{Name: "year", Match: func(r model.Record) bool {
		return r.Year >= lo && r.Year <= hi
	}}
}

func sportPredicate(c Criteria) Predicate {
	if c.AllSports() {
		return matchAny("sport")
	}
	set := toSet(c.Sports)
	return Predicate{Name: "sport", Match: func(r model.Record) bool {
		_, ok := set[r.Sport]
		return ok
	}}
}

func eventPredicate(c Criteria) Predicate {
	if c.AllEvents() {
		return matchAny("event")
	}
	set := toSet(c.Events)
	return Predicate{Name: "event", Match: func(r model.Record) bool {
		_, ok := set[r.Event]
		return ok
	}}
}

func genderPredicate(g GenderChoice) Predicate {
	if g == "" || g == GenderBoth {
		return matchAny("gender")
	}
	want := model.Gender(g)
	return Predicate{Name: "gender", Match: func(r model.Record) bool {
		return r.Gender == want
	}}
}

func medalPredicate(m MedalChoice) Predicate {
	if m == "" || m == MedalAll {
		return matchAny("medal")
	}
	want := model.Medal(m)
	return Predicate{Name: "medal", Match: func(r model.Record) bool {
		return r.Medal == want
	}}
}

func matchAny(name string) Predicate {
	return Predicate{Name: name, Match: func(model.Record) bool { return true }}
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
