package selection_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/okian/medalboard/internal/domain/model"
	"github.com/okian/medalboard/internal/domain/selection"
	. "github.com/smartystreets/goconvey/convey"
)

func sampleRecords() []model.Record {
	return []model.Record{
		{Year: 1896, Sport: "Athletics", Event: "100M", Gender: model.GenderMen, Country: "USA", Medal: model.MedalGold},
		{Year: 1900, Sport: "Athletics", Event: "x", Gender: model.GenderMen, Country: "USA", Medal: model.MedalGold},
		{Year: 1900, Sport: "Athletics", Event: "x", Gender: model.GenderMen, Country: "FRA", Medal: model.MedalSilver},
		{Year: 1904, Sport: "Swimming", Event: "y", Gender: model.GenderWomen, Country: "USA", Medal: model.MedalGold},
		{Year: 1908, Sport: "Swimming", Event: "200M", Gender: model.GenderMen, Country: "GBR", Medal: model.MedalBronze},
		{Year: 1912, Sport: "Fencing", Event: "Foil", Gender: model.GenderWomen, Country: "ITA", Medal: model.MedalNone},
		{Year: 1912, Sport: "Fencing", Event: "Sabre", Gender: model.GenderMen, Country: "HUN", Medal: model.MedalGold},
	}
}

// permutations returns every ordering of preds.
func permutations(preds []selection.Predicate) [][]selection.Predicate {
	if len(preds) <= 1 {
		return [][]selection.Predicate{append([]selection.Predicate(nil), preds...)}
	}
	var out [][]selection.Predicate
	for i := range preds {
		rest := make([]selection.Predicate, 0, len(preds)-1)
		rest = append(rest, preds[:i]...)
		rest = append(rest, preds[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]selection.Predicate{preds[i]}, p...))
		}
	}
	return out
}

func TestApply(t *testing.T) {
	Convey("Given the sample records", t, func() {
		records := sampleRecords()

		Convey("When filtering to the year range [1900, 1900]", func() {
			c := selection.Default()
			c.YearMin, c.YearMax = 1900, 1900
			got := selection.Apply(records, c)

			Convey("Then two records remain", func() {
				So(len(got), ShouldEqual, 2)
				So(got[0].Country, ShouldEqual, "USA")
				So(got[1].Country, ShouldEqual, "FRA")
			})
		})

		Convey("When every filter is inactive", func() {
			c := selection.Default().Clamp(1896, 1912)
			got := selection.Apply(records, c)

			Convey("Then the whole dataset is selected", func() {
				So(cmp.Diff(records, got), ShouldBeEmpty)
			})
		})

		Convey("When filtering on sport and gender", func() {
			c := selection.Default().Clamp(1896, 1912)
			c.Sports = []string{"Swimming", "Fencing"}
			c.Gender = selection.GenderWomen
			got := selection.Apply(records, c)

			Convey("Then only women's swimming and fencing remain", func() {
				So(len(got), ShouldEqual, 2)
				So(got[0].Event, ShouldEqual, "y")
				So(got[1].Event, ShouldEqual, "Foil")
			})
		})

		Convey("When events are set but all sports are selected", func() {
			c := selection.Default().Clamp(1896, 1912)
			c.Events = []string{"Foil"}
			got := selection.Apply(records, c)

			Convey("Then the event filter is ignored", func() {
				So(len(got), ShouldEqual, len(records))
			})
		})

		Convey("When events are set together with sports", func() {
			c := selection.Default().Clamp(1896, 1912)
			c.Sports = []string{"Fencing"}
			c.Events = []string{"Sabre"}
			got := selection.Apply(records, c)

			Convey("Then the event filter applies", func() {
				So(len(got), ShouldEqual, 1)
				So(got[0].Country, ShouldEqual, "HUN")
			})
		})

		Convey("When filtering to a medal with no matches", func() {
			c := selection.Default().Clamp(1896, 1912)
			c.Sports = []string{"Fencing"}
			c.Medal = selection.MedalBronze
			got := selection.Apply(records, c)

			Convey("Then the result is empty but not nil", func() {
				So(got, ShouldNotBeNil)
				So(len(got), ShouldEqual, 0)
			})
		})

		Convey("When applying to an empty dataset", func() {
			got := selection.Apply(nil, selection.Default().Clamp(1896, 2012))

			Convey("Then nothing fails", func() {
				So(len(got), ShouldEqual, 0)
			})
		})

		Convey("Then the input slice is never mutated", func() {
			before := sampleRecords()
			c := selection.Default().Clamp(1896, 1912)
			c.Medal = selection.MedalGold
			_ = selection.Apply(records, c)
			So(cmp.Diff(before, records), ShouldBeEmpty)
		})
	})
}

func TestFilterProperties(t *testing.T) {
	Convey("Given narrowed criteria on every filter", t, func() {
		records := sampleRecords()
		c := selection.Criteria{
			YearMin: 1896,
			YearMax: 1908,
			Sports:  []string{"Athletics", "Swimming"},
			Events:  []string{"x", "y", "100M"},
			Gender:  selection.GenderMen,
			Medal:   selection.MedalGold,
		}
		preds := selection.Predicates(c)
		want := selection.Apply(records, c)

		Convey("Then there are five predicates", func() {
			So(len(preds), ShouldEqual, 5)
		})

		Convey("Then every permutation of the predicates yields the same rows", func() {
			perms := permutations(preds)
			So(len(perms), ShouldEqual, 120)
			for _, perm := range perms {
				got := selection.ApplyPredicates(records, perm...)
				So(cmp.Diff(want, got), ShouldBeEmpty)
			}
		})

		Convey("Then re-applying the criteria is a no-op", func() {
			again := selection.Apply(want, c)
			So(cmp.Diff(want, again), ShouldBeEmpty)
		})

		Convey("Then the result never exceeds the input", func() {
			So(len(want), ShouldBeLessThanOrEqualTo, len(records))
		})
	})

	Convey("Given a sequence of narrowing year ranges", t, func() {
		records := sampleRecords()
		prev := len(records)
		for _, hi := range []int{1912, 1908, 1904, 1900, 1896} {
			c := selection.Default()
			c.YearMin, c.YearMax = 1896, hi
			got := len(selection.Apply(records, c))

			So(got, ShouldBeLessThanOrEqualTo, prev)
			prev = got
		}
	})

	Convey("Given a sequence of narrowing sport sets", t, func() {
		records := sampleRecords()
		prev := len(records)
		for _, sports := range [][]string{
			{"Athletics", "Swimming", "Fencing"},
			{"Athletics", "Swimming"},
			{"Athletics"},
			{"Curling"},
			{},
		} {
			c := selection.Default().Clamp(1896, 1912)
			c.Sports = sports
			got := len(selection.Apply(records, c))

			So(got, ShouldBeLessThanOrEqualTo, prev)
			prev = got
		}
		So(prev, ShouldEqual, 0)
	})

	Convey("Given a selection narrowed from one sport to none", t, func() {
		records := sampleRecords()
		c := selection.Default().Clamp(1896, 1912)
		c.Sports = []string{"Athletics"}
		one := selection.Apply(records, c)

		c.Sports = []string{}
		none := selection.Apply(records, c)

		Convey("The empty set matches nothing and the result does not grow", func() {
			So(len(one), ShouldBeGreaterThan, 0)
			So(none, ShouldBeEmpty)
			So(len(none), ShouldBeLessThanOrEqualTo, len(one))
			So(selection.ApplyPredicates(records, selection.Predicates(c)...), ShouldBeEmpty)
		})

		Convey("An empty event set under narrowed sports matches nothing", func() {
			c.Sports = []string{"Athletics"}
			c.Events = []string{}
			So(selection.Apply(records, c), ShouldBeEmpty)
		})
	})
}
