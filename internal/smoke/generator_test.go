package smoke

import (
	"slices"
	"testing"

	"github.com/okian/medalboard/internal/domain/facets"
	. "github.com/smartystreets/goconvey/convey"
)

func testCatalog() Catalog {
	return Catalog{
		Years:  facets.Bounds{Min: 1896, Max: 2012},
		Step:   4,
		Sports: []string{"Aquatics", "Athletics", "Fencing"},
		Events: map[string][]string{
			"Aquatics":  {"100M Freestyle", "Water Polo"},
			"Athletics": {"Marathon", "Long Jump"},
			"Fencing":   {"Foil", "Sabre"},
		},
	}
}

func TestGenerator(t *testing.T) {
	Convey("Given a generator with a fixed seed", t, func() {
		catalog := testCatalog()
		selections := NewGenerator(catalog, 42).Generate(500)

		Convey("It returns the requested number of selections", func() {
			So(selections, ShouldHaveLength, 500)
		})

		Convey("The same seed gives the same selections", func() {
			So(NewGenerator(catalog, 42).Generate(500), ShouldResemble, selections)
		})

		Convey("Sports come from the catalog and are never repeated", func() {
			for _, c := range selections {
				So(len(c.Sports), ShouldBeLessThanOrEqualTo, 3)
				for i, s := range c.Sports {
					So(catalog.Sports, ShouldContain, s)
					So(slices.Contains(c.Sports[:i], s), ShouldBeFalse)
				}
			}
		})

		Convey("Events are only chosen for the selected sports", func() {
			for _, c := range selections {
				if len(c.Sports) == 0 {
					So(c.Events, ShouldBeEmpty)
					continue
				}
				var allowed []string
				for _, s := range c.Sports {
					allowed = append(allowed, catalog.Events[s]...)
				}
				for _, e := range c.Events {
					So(allowed, ShouldContain, e)
				}
			}
		})

		Convey("Some ranges need clamping and the rest sit on the slider grid", func() {
			var reversed, wide int
			for _, c := range selections {
				switch {
				case c.YearMin > c.YearMax:
					reversed++
				case c.YearMin < catalog.Years.Min:
					wide++
				default:
					So((c.YearMin-catalog.Years.Min)%catalog.Step, ShouldEqual, 0)
					So(c.YearMax, ShouldBeLessThanOrEqualTo, catalog.Years.Max)
				}
			}
			So(reversed, ShouldBeGreaterThan, 0)
			So(wide, ShouldBeGreaterThan, 0)
		})
	})

	Convey("Given an empty catalog", t, func() {
		selections := NewGenerator(Catalog{}, 1).Generate(10)

		Convey("Selections still cover every sport", func() {
			for _, c := range selections {
				So(c.Sports, ShouldBeEmpty)
				So(c.Events, ShouldBeEmpty)
			}
		})
	})
}
