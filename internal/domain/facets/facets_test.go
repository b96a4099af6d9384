package facets_test

import (
	"testing"

	"github.com/okian/medalboard/internal/domain/facets"
	"github.com/okian/medalboard/internal/domain/model"
	"github.com/okian/medalboard/internal/domain/selection"
	. "github.com/smartystreets/goconvey/convey"
)

func records() []model.Record {
	return []model.Record{
		{Year: 1904, Sport: "Swimming", Event: "200M"},
		{Year: 1896, Sport: "Athletics", Event: "100M"},
		{Year: 1912, Sport: "Fencing", Event: "Sabre"},
		{Year: 1900, Sport: "Athletics", Event: "Marathon"},
		{Year: 1912, Sport: "Fencing", Event: "Foil"},
		{Year: 1896, Sport: "Fencing", Event: "Epee"},
	}
}

func TestYearBounds(t *testing.T) {
	Convey("Given records spanning several Games", t, func() {
		b, ok := facets.YearBounds(records())

		Convey("Then the bounds are the extremes", func() {
			So(ok, ShouldBeTrue)
			So(b, ShouldResemble, facets.Bounds{Min: 1896, Max: 1912})
		})
	})

	Convey("Given no records", t, func() {
		_, ok := facets.YearBounds(nil)

		Convey("Then ok is false", func() {
			So(ok, ShouldBeFalse)
		})
	})
}

func TestSportsAndEvents(t *testing.T) {
	Convey("Given records", t, func() {
		rs := records()

		Convey("Then sports are All plus the sorted distinct values", func() {
			So(facets.Sports(rs), ShouldResemble, []string{"All", "Athletics", "Fencing", "Swimming"})
		})

		Convey("Then events are scoped to the chosen sports", func() {
			So(facets.Events(rs, []string{"Fencing"}), ShouldResemble, []string{"All", "Epee", "Foil", "Sabre"})
		})

		Convey("Then no sports yields only All", func() {
			So(facets.Events(rs, nil), ShouldResemble, []string{"All"})
		})
	})
}

func TestFor(t *testing.T) {
	Convey("Given criteria narrowing sport and years", t, func() {
		c := selection.Default()
		c.Sports = []string{"Fencing"}
		c.YearMin, c.YearMax = 1900, 1912
		opts := facets.For(records(), c, 0)

		Convey("Then events exclude years outside the range", func() {
			So(opts.Events, ShouldResemble, []string{"All", "Foil", "Sabre"})
		})

		Convey("Then the default slider step is used", func() {
			So(opts.YearStep, ShouldEqual, facets.DefaultYearStep)
			So(opts.Years, ShouldResemble, facets.Bounds{Min: 1896, Max: 1912})
		})

		Convey("Then the radio choices are listed", func() {
			So(opts.Genders, ShouldResemble, []string{"Both", "Men", "Women"})
			So(opts.Medals, ShouldResemble, []string{"All", "Gold", "Silver", "Bronze"})
		})
	})

	Convey("Given criteria selecting all sports", t, func() {
		opts := facets.For(records(), selection.Default(), 4)

		Convey("Then no event list is offered", func() {
			So(opts.Events, ShouldBeNil)
		})
	})
}
