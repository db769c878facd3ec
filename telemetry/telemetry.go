// Package telemetry records the course of a flight and renders it as an HTML chart.
package telemetry

import (
	"io"
	"strconv"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/samber/lo"
	"github.com/vestorino/Ballistic-Missile/flightsim"
	"github.com/vestorino/Ballistic-Missile/game"
	"github.com/vestorino/Ballistic-Missile/oerror"
)

// Sample is a snapshot of the flight at one tick.
type Sample struct {
	Time     float64
	Altitude float64
	Speed    float64
	Fuel     float64
	Phase    flightsim.Phase
}

// Recorder keeps one sample every Every ticks.
type Recorder struct {
	Every int

	samples []Sample
	ticks   int
}

// NewRecorder returns a Recorder keeping one sample out of every. A non-positive every keeps them all.
func NewRecorder(every int) *Recorder {
	return &Recorder{Every: max(every, 1)}
}

// Record adds the state to the recording if it falls on the sampling interval. Phase changes are always
// recorded so that the chart shows where each phase starts.
func (r *Recorder) Record(s flightsim.State) {
	r.ticks++
	changed := len(r.samples) > 0 && r.samples[len(r.samples)-1].Phase != s.Phase
	if r.ticks%r.Every != 0 && len(r.samples) > 0 && !changed {
		return
	}
	r.samples = append(r.samples, Sample{
		Time:     s.Elapsed,
		Altitude: s.Altitude(),
		Speed:    s.Speed(),
		Fuel:     s.Fuel,
		Phase:    s.Phase,
	})
}

// Samples returns the recorded samples in order.
func (r *Recorder) Samples() []Sample {
	return r.samples
}

// Reset drops every sample.
func (r *Recorder) Reset() {
	r.samples, r.ticks = nil, 0
}

// Render writes an HTML page with the altitude, speed and fuel of the flight over time.
func (r *Recorder) Render(w io.Writer) error {
	if len(r.samples) == 0 {
		return oerror.New("telemetry: nothing recorded")
	}
	times := lo.Map(r.samples, func(s Sample, _ int) string {
		return strconv.FormatFloat(game.Round64(s.Time, 2), 'f', -1, 64)
	})

	flight := charts.NewLine()
	flight.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Flight", Subtitle: r.phaseSummary()}),
		charts.WithXAxisOpts(opts.XAxis{Name: "t (s)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "m, m/s"}),
	)
	flight.SetXAxis(times).
		AddSeries("altitude", r.series(func(s Sample) float64 { return s.Altitude })).
		AddSeries("speed", r.series(func(s Sample) float64 { return s.Speed }))

	fuel := charts.NewLine()
	fuel.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Fuel"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "t (s)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "kg"}),
	)
	fuel.SetXAxis(times).AddSeries("fuel", r.series(func(s Sample) float64 { return s.Fuel }))

	page := components.NewPage()
	page.PageTitle = "Missile flight"
	page.AddCharts(flight, fuel)
	return page.Render(w)
}

func (r *Recorder) series(value func(Sample) float64) []opts.LineData {
	return lo.Map(r.samples, func(s Sample, _ int) opts.LineData {
		return opts.LineData{Value: game.Round64(value(s), 3)}
	})
}

// phaseSummary lists the time at which each phase was first recorded.
func (r *Recorder) phaseSummary() string {
	first := lo.UniqBy(r.samples, func(s Sample) flightsim.Phase { return s.Phase })
	parts := lo.Map(first, func(s Sample, _ int) string {
		return s.Phase.String() + " @ " + strconv.FormatFloat(game.Round64(s.Time, 2), 'f', -1, 64) + "s"
	})
	return strings.Join(parts, ", ")
}
