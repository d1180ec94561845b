package qoracle

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// ErrNoSnapshots is returned when there is nothing to chart.
var ErrNoSnapshots = errors.New("no snapshots to chart")

/*
WriteChart renders one bar chart per snapshot, real and imaginary parts as
separate series over the basis labels, and writes the HTML page to w.
*/
func WriteChart(w io.Writer, snapshots []Snapshot) error {
	if len(snapshots) == 0 {
		return ErrNoSnapshots
	}

	page := components.NewPage().SetPageTitle("Deutsch-Jozsa oracle amplitudes")

	for _, snapshot := range snapshots {
		page.AddCharts(amplitudeBar(snapshot))
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

func amplitudeBar(snapshot Snapshot) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: snapshot.Title}),
	)

	labels := make([]string, len(snapshot.Labels))
	for i, label := range snapshot.Labels {
		labels[i] = "|" + label + ">"
	}

	re := make([]opts.BarData, len(snapshot.Amplitudes))
	im := make([]opts.BarData, len(snapshot.Amplitudes))
	for i, a := range snapshot.Amplitudes {
		re[i] = opts.BarData{Value: real(a)}
		im[i] = opts.BarData{Value: imag(a)}
	}

	bar.SetXAxis(labels).
		AddSeries("real", re).
		AddSeries("imag", im)

	return bar
}
