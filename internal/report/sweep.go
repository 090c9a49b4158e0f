// Package report renders ignition sweep results.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"fire-ca/internal/sims/fire"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// WriteTable prints one row per sweep point.
func WriteTable(w io.Writer, points []fire.SweepPoint) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "ignite_p\truns\tburned\tstddev\tticks\t")
	for _, p := range points {
		fmt.Fprintf(tw, "%.3f\t%d\t%.4f\t%.4f\t%.1f\t\n", p.IgniteProbability, p.Runs, p.MeanBurned, p.StdDevBurned, p.MeanTicks)
	}
	return tw.Flush()
}

// WriteChart renders burned fraction against ignite probability as a PNG,
// with a band one standard deviation either side of the mean.
func WriteChart(w io.Writer, points []fire.SweepPoint, title string) error {
	if len(points) < 2 {
		return fmt.Errorf("chart needs at least 2 sweep points, got %d", len(points))
	}
	xs := make([]float64, len(points))
	mean := make([]float64, len(points))
	upper := make([]float64, len(points))
	lower := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.IgniteProbability
		mean[i] = p.MeanBurned
		upper[i] = min(1, p.MeanBurned+p.StdDevBurned)
		lower[i] = max(0, p.MeanBurned-p.StdDevBurned)
	}

	band := chart.Style{StrokeColor: drawing.Color{R: 255, G: 165, B: 0, A: 160}, StrokeWidth: 1.5, StrokeDashArray: []float64{4, 3}}
	graph := chart.Chart{
		Title:  title,
		Width:  800,
		Height: 480,
		XAxis: chart.XAxis{
			Name:  "ignite probability",
			Style: chart.Style{FontSize: 10.0},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%.2f", v.(float64))
			},
		},
		YAxis: chart.YAxis{
			Name:  "burned fraction",
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "mean burned",
				XValues: xs,
				YValues: mean,
				Style:   chart.Style{StrokeColor: chart.ColorRed, StrokeWidth: 3.0},
			},
			chart.ContinuousSeries{Name: "+1 sd", XValues: xs, YValues: upper, Style: band},
			chart.ContinuousSeries{Name: "-1 sd", XValues: xs, YValues: lower, Style: band},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render sweep chart: %w", err)
	}
	return nil
}
