package config_test

import (
	"errors"
	"testing"

	"github.com/okian/medalboard/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.LogFormat, convey.ShouldEqual, "text")
			convey.So(cfg.DatasetURL, convey.ShouldEqual, config.DefaultDatasetURL)
			convey.So(cfg.DatasetPath, convey.ShouldBeEmpty)
			convey.So(cfg.TopCountries, convey.ShouldEqual, 10)
			convey.So(cfg.YearStep, convey.ShouldEqual, 4)
			convey.So(cfg.MaxRecordsLimit, convey.ShouldEqual, 500)
			convey.So(cfg.OverviewFollowsSelection, convey.ShouldBeFalse)
		})

		convey.Convey("Then the defaults validate", func() {
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given a config with invalid fields", t, func() {
		convey.Convey("When no dataset location is set", func() {
			cfg := config.New()
			cfg.DatasetURL = ""

			convey.Convey("Then validation fails", func() {
				err := cfg.Validate()
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "DatasetURL")
			})
		})

		convey.Convey("When only a dataset path is set", func() {
			cfg := config.New()
			cfg.DatasetURL = ""
			cfg.DatasetPath = "summer.csv"

			convey.Convey("Then validation passes", func() {
				convey.So(cfg.Validate(), convey.ShouldBeNil)
			})
		})

		convey.Convey("When the dataset url is not a url", func() {
			cfg := config.New()
			cfg.DatasetURL = "not a url"

			convey.Convey("Then validation fails", func() {
				convey.So(cfg.Validate(), convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When the top size is zero", func() {
			cfg := config.New()
			cfg.TopCountries = 0

			convey.Convey("Then validation fails", func() {
				err := cfg.Validate()
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "TopCountries")
			})
		})

		convey.Convey("When the log format is unknown", func() {
			cfg := config.New()
			cfg.LogFormat = "xml"

			convey.Convey("Then validation fails", func() {
				convey.So(cfg.Validate(), convey.ShouldNotBeNil)
			})
		})
	})
}
