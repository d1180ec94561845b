package qoracle

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestWriteChart(t *testing.T) {
	Convey("Given the snapshots of a finished demo", t, func() {
		demo := NewDemo(NewPrinter(io.Discard, NewConfig()), WithLogger(quietLogger()))
		So(demo.Run(context.Background()), ShouldBeNil)

		var buf bytes.Buffer

		Convey("The chart page should carry every listing", func() {
			So(WriteChart(&buf, demo.Snapshots()), ShouldBeNil)

			html := buf.String()
			So(html, ShouldContainSubstring, "Deutsch-Jozsa oracle amplitudes")
			So(html, ShouldContainSubstring, "echarts")
			for _, snapshot := range demo.Snapshots() {
				So(html, ShouldContainSubstring, snapshot.Title)
			}
		})
	})

	Convey("Given no snapshots", t, func() {
		Convey("WriteChart should refuse to render", func() {
			So(errors.Is(WriteChart(io.Discard, nil), ErrNoSnapshots), ShouldBeTrue)
		})
	})
}
