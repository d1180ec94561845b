package qoracle

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestConfig(t *testing.T) {
	Convey("Given an empty viper", t, func() {
		config, err := LoadConfig(viper.New())

		Convey("It should fall back to the plain demonstration", func() {
			So(err, ShouldBeNil)
			So(config.Precision, ShouldEqual, 4)
			So(config.PadLabels, ShouldBeFalse)
			So(config.ChartPath, ShouldBeEmpty)
			So(config.Verbose, ShouldBeFalse)
		})
	})

	Convey("Given explicit settings", t, func() {
		v := viper.New()
		v.Set("precision", 2)
		v.Set("pad-labels", true)
		v.Set("chart", "amplitudes.html")

		config, err := LoadConfig(v)

		Convey("They should override the defaults", func() {
			So(err, ShouldBeNil)
			So(config.Precision, ShouldEqual, 2)
			So(config.PadLabels, ShouldBeTrue)
			So(config.ChartPath, ShouldEqual, "amplitudes.html")
		})
	})

	Convey("Given values that arrive as strings", t, func() {
		v := viper.New()
		v.Set("precision", "2")
		v.Set("pad-labels", "true")

		config, err := LoadConfig(v)

		Convey("They should be parsed into their field types", func() {
			So(err, ShouldBeNil)
			So(config.Precision, ShouldEqual, 2)
			So(config.PadLabels, ShouldBeTrue)
		})
	})

	Convey("Given values that do not parse", t, func() {
		Convey("A non-numeric precision should be rejected", func() {
			v := viper.New()
			v.Set("precision", "abc")

			config, err := LoadConfig(v)
			So(config, ShouldBeNil)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldStartWith, "precision")
		})

		Convey("A non-boolean pad-labels should be rejected", func() {
			v := viper.New()
			v.Set("pad-labels", "maybe")

			_, err := LoadConfig(v)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldStartWith, "pad-labels")
		})
	})

	Convey("Given an out of range precision", t, func() {
		for _, precision := range []int{-1, MaxPrecision + 1} {
			v := viper.New()
			v.Set("precision", precision)

			_, err := LoadConfig(v)
			So(err, ShouldNotBeNil)
		}

		So(NewConfig().Validate(), ShouldBeNil)
	})
}
