package dashboard_test

import (
	"testing"

	"github.com/okian/medalboard/internal/domain/dashboard"
	"github.com/okian/medalboard/internal/domain/geo"
	"github.com/okian/medalboard/internal/domain/model"
	"github.com/okian/medalboard/internal/domain/selection"
	"github.com/okian/medalboard/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func scenario() model.Dataset {
	return model.Dataset{
		Columns: []string{"Year", "City", "Sport", "Discipline", "Athlete", "Country", "Gender", "Event", "Medal"},
		Records: []model.Record{
			{Year: 1900, Sport: "Athletics", Event: "x", Gender: model.GenderMen, Country: "USA", Medal: model.MedalGold},
			{Year: 1900, Sport: "Athletics", Event: "x", Gender: model.GenderMen, Country: "FRA", Medal: model.MedalSilver},
			{Year: 1904, Sport: "Swimming", Event: "y", Gender: model.GenderWomen, Country: "USA", Medal: model.MedalGold},
		},
	}
}

func TestBuild(t *testing.T) {
	opts := dashboard.Options{Table: geo.DefaultTable()}

	Convey("Given the three-record scenario", t, func() {
		ds := scenario()

		Convey("When selecting the year 1900", func() {
			c := selection.Default()
			c.YearMin, c.YearMax = 1900, 1900
			a := dashboard.Build(ds, c, opts)

			Convey("Then two rows and nine columns are selected", func() {
				So(a.Rows, ShouldEqual, 2)
				So(a.Columns, ShouldEqual, 9)
				So(a.DatasetRows, ShouldEqual, 3)
			})

			Convey("Then the tally has USA gold and FRA silver", func() {
				So(a.Tally, ShouldResemble, []types.CountryTally{
					{Country: "USA", Gold: 1, Total: 1},
					{Country: "FRA", Silver: 1, Total: 1},
				})
			})

			Convey("Then both countries are on the map", func() {
				So(len(a.Markers), ShouldEqual, 2)
				So(a.SkippedCountries, ShouldBeEmpty)
			})

			Convey("Then the overview series still cover the whole dataset", func() {
				So(a.OverviewScope, ShouldEqual, dashboard.ScopeDataset)
				So(a.Participation, ShouldResemble, []types.YearCount{{Year: 1900, Count: 2}, {Year: 1904, Count: 1}})
				So(a.Sports[0], ShouldResemble, types.KeyCount{Key: "Athletics", Count: 2})
			})
		})

		Convey("When selecting a medal type with no matches", func() {
			c := selection.Default()
			c.Medal = selection.MedalBronze
			a := dashboard.Build(ds, c, opts)

			Convey("Then every selection artifact is empty", func() {
				So(a.Rows, ShouldEqual, 0)
				So(a.Tally, ShouldNotBeNil)
				So(len(a.Tally), ShouldEqual, 0)
				So(a.Markers, ShouldNotBeNil)
				So(len(a.Markers), ShouldEqual, 0)
			})
		})

		Convey("When the overview follows the selection", func() {
			c := selection.Default()
			c.Sports = []string{"Swimming"}
			a := dashboard.Build(ds, c, dashboard.Options{Table: geo.DefaultTable(), OverviewFollowsSelection: true})

			Convey("Then the series use the filtered records", func() {
				So(a.OverviewScope, ShouldEqual, dashboard.ScopeSelection)
				So(a.Participation, ShouldResemble, []types.YearCount{{Year: 1904, Count: 1}})
				So(a.Sports, ShouldResemble, []types.KeyCount{{Key: "Swimming", Count: 1}})
			})
		})

		Convey("When the year range is reversed and out of bounds", func() {
			c := selection.Criteria{YearMin: 2000, YearMax: 1800}
			a := dashboard.Build(ds, c, opts)

			Convey("Then it is clamped to the dataset", func() {
				So(a.Criteria.YearMin, ShouldEqual, 1900)
				So(a.Criteria.YearMax, ShouldEqual, 1904)
				So(a.Rows, ShouldEqual, 3)
			})
		})

		Convey("When building twice with the same inputs", func() {
			c := selection.Default()
			first := dashboard.Build(ds, c, opts)
			second := dashboard.Build(ds, c, opts)

			Convey("Then the artifacts are identical", func() {
				So(second, ShouldResemble, first)
			})
		})
	})

	Convey("Given an empty dataset", t, func() {
		a := dashboard.Build(model.Dataset{}, selection.Default(), opts)

		Convey("Then everything degrades to empty", func() {
			So(a.Rows, ShouldEqual, 0)
			So(len(a.Tally), ShouldEqual, 0)
			So(len(a.Markers), ShouldEqual, 0)
			So(len(a.Participation), ShouldEqual, 0)
			So(len(a.Sports), ShouldEqual, 0)
		})
	})

	Convey("Given more than ten medal-winning countries", t, func() {
		codes := []string{"USA", "FRA", "GBR", "GER", "ITA", "HUN", "SWE", "AUS", "CAN", "JPN", "NED", "NOR"}
		ds := model.Dataset{}
		for i, code := range codes {
			for j := 0; j <= i; j++ {
				ds.Records = append(ds.Records, model.Record{Year: 1900, Country: code, Medal: model.MedalGold})
			}
		}
		a := dashboard.Build(ds, selection.Default(), opts)

		Convey("Then only the top ten are kept, highest first", func() {
			So(len(a.Tally), ShouldEqual, 10)
			So(a.Tally[0].Country, ShouldEqual, "NOR")
			So(a.Tally[9].Country, ShouldEqual, "GBR")
			So(a.Tally[9].Total, ShouldEqual, 3)
			for _, row := range a.Tally {
				So(row.Country, ShouldNotEqual, "FRA")
				So(row.Country, ShouldNotEqual, "USA")
			}
		})
	})
}
