// Package benchreport turns raw benchmark timings into a Prometheus
// histogram dump and a PNG latency chart.
//
// This is an internal package not intended for direct use by
// applications; it supports cmd/bench only.
package benchreport

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/wcharczuk/go-chart/v2"
)

// Sample is one timed operation: Setup, Verify or Randomize.
type Sample struct {
	Operation string
	Duration  time.Duration
}

// Report aggregates samples into a Prometheus registry and renders a
// latency chart. WritePNG writes the chart under a directory; the
// registry is not written anywhere and is exposed through Registry.
type Report struct {
	registry   *prometheus.Registry
	histograms map[string]prometheus.Histogram
	samples    map[string][]float64
}

// New creates an empty report with one histogram per expected operation.
func New(operations ...string) *Report {
	reg := prometheus.NewRegistry()
	r := &Report{
		registry:   reg,
		histograms: make(map[string]prometheus.Histogram, len(operations)),
		samples:    make(map[string][]float64, len(operations)),
	}
	for _, op := range operations {
		h := prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ppe",
			Subsystem: "bench",
			Name:      op + "_seconds",
			Help:      fmt.Sprintf("latency of ppe.%s in seconds", op),
			Buckets:   prometheus.DefBuckets,
		})
		reg.MustRegister(h)
		r.histograms[op] = h
	}
	return r
}

// Observe records one sample against its operation's histogram.
func (r *Report) Observe(s Sample) {
	seconds := s.Duration.Seconds()
	r.histograms[s.Operation].Observe(seconds)
	r.samples[s.Operation] = append(r.samples[s.Operation], seconds)
}

// Registry exposes the underlying Prometheus registry, e.g. for a
// caller that wants to push it to a gateway or serve it over HTTP.
func (r *Report) Registry() *prometheus.Registry {
	return r.registry
}

// WritePNG renders a per-operation latency-over-iteration chart to
// dir/latency.png.
func (r *Report) WritePNG(dir string) (string, error) {
	var series []chart.Series
	for op, values := range r.samples {
		xs := make([]float64, len(values))
		for i := range values {
			xs[i] = float64(i + 1)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    op,
			XValues: xs,
			YValues: values,
		})
	}

	c := chart.Chart{
		Title:  "ppe benchmark latency (seconds)",
		Series: series,
	}
	c.Elements = []chart.Renderable{chart.Legend(&c)}

	path := filepath.Join(dir, "latency.png")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("benchreport: creating %s: %w", path, err)
	}
	defer f.Close()

	if err := c.Render(chart.PNG, f); err != nil {
		return "", fmt.Errorf("benchreport: rendering chart: %w", err)
	}
	return path, nil
}
