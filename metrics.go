package main

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector records run metrics.
type Collector interface {
	LineRouted(kind Kind)
	Rehydrated(kind Kind, replayed, failed int)
	Flush(elapsed time.Duration) error
}

type nopCollector struct{}

func (nopCollector) LineRouted(Kind)           {}
func (nopCollector) Rehydrated(Kind, int, int) {}
func (nopCollector) Flush(time.Duration) error { return nil }

// TextfileCollector keeps metrics in a private registry and writes them in the
// Prometheus text format on Flush, for the node exporter textfile collector.
type TextfileCollector struct {
	path     string
	registry *prometheus.Registry

	lines           *prometheus.CounterVec
	rehydrated      *prometheus.CounterVec
	rehydrateErrors *prometheus.CounterVec
	duration        prometheus.Gauge
}

// newCollector returns a no-op collector when path is empty.
func newCollector(path string) (Collector, error) {
	if path == "" {
		return nopCollector{}, nil
	}
	return NewTextfileCollector(path)
}

// NewTextfileCollector registers the linesort metrics in a new registry.
func NewTextfileCollector(path string) (*TextfileCollector, error) {
	c := &TextfileCollector{
		path:     path,
		registry: prometheus.NewRegistry(),
		lines: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "linesort",
			Name:      "lines_total",
			Help:      "Input lines routed to an output file, by kind.",
		}, []string{"kind"}),
		rehydrated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "linesort",
			Name:      "rehydrated_lines_total",
			Help:      "Persisted lines replayed in append mode, by kind.",
		}, []string{"kind"}),
		rehydrateErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "linesort",
			Name:      "rehydrate_errors_total",
			Help:      "Persisted lines or files that could not be replayed, by kind.",
		}, []string{"kind"}),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "linesort",
			Name:      "run_duration_seconds",
			Help:      "Wall time of the last run.",
		}),
	}
	for _, col := range []prometheus.Collector{c.lines, c.rehydrated, c.rehydrateErrors, c.duration} {
		if err := c.registry.Register(col); err != nil {
			return nil, fmt.Errorf("register metric: %w", err)
		}
	}
	// Every kind is exported even when it saw no lines.
	for _, kind := range Kinds {
		c.lines.WithLabelValues(kind.String())
		c.rehydrated.WithLabelValues(kind.String())
		c.rehydrateErrors.WithLabelValues(kind.String())
	}
	return c, nil
}

func (c *TextfileCollector) LineRouted(kind Kind) {
	c.lines.WithLabelValues(kind.String()).Inc()
}

func (c *TextfileCollector) Rehydrated(kind Kind, replayed, failed int) {
	c.rehydrated.WithLabelValues(kind.String()).Add(float64(replayed))
	c.rehydrateErrors.WithLabelValues(kind.String()).Add(float64(failed))
}

// Flush writes all metrics to the configured file.
func (c *TextfileCollector) Flush(elapsed time.Duration) error {
	c.duration.Set(elapsed.Seconds())
	if err := prometheus.WriteToTextfile(c.path, c.registry); err != nil {
		return fmt.Errorf("write metrics to %s: %w", c.path, err)
	}
	return nil
}
