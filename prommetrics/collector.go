// Package prommetrics exports boolvec storage metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	mc := prommetrics.NewCollector(reg, "myapp")
//	v := boolvec.New(boolvec.WithMetricsCollector(mc))
package prommetrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/hupe1980/boolvec"
)

const subsystem = "boolvec"

// Reserve results used as the "result" label.
const (
	ResultOK             = "ok"
	ResultLengthExceeded = "length_exceeded"
	ResultError          = "error"
)

// Collector implements boolvec.MetricsCollector with Prometheus metrics.
type Collector struct {
	reserveTotal       *prometheus.CounterVec
	reserveDuration    prometheus.Histogram
	reallocationsTotal prometheus.Counter
	chunksAllocated    prometheus.Counter
	chunksReleased     prometheus.Counter
}

var _ boolvec.MetricsCollector = (*Collector)(nil)

// NewCollector creates the metrics and registers them with reg.
// A nil reg registers with prometheus.DefaultRegisterer.
func NewCollector(reg prometheus.Registerer, namespace string) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Collector{
		reserveTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "reserve_total",
				Help:      "Total number of reserve calls by result",
			},
			[]string{"result"}, // result: ok, length_exceeded, error
		),
		reserveDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "reserve_duration_seconds",
				Help:      "Duration of reserve calls in seconds",
				Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 10),
			},
		),
		reallocationsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "reallocations_total",
				Help:      "Total number of storage reallocations",
			},
		),
		chunksAllocated: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "chunks_allocated_total",
				Help:      "Total number of chunks adopted by reallocations",
			},
		),
		chunksReleased: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "chunks_released_total",
				Help:      "Total number of chunks given back by reallocations",
			},
		),
	}
}

// RecordReserve implements boolvec.MetricsCollector.
func (c *Collector) RecordReserve(_ int, duration time.Duration, err error) {
	c.reserveTotal.WithLabelValues(resultLabel(err)).Inc()
	c.reserveDuration.Observe(duration.Seconds())
}

// RecordReallocation implements boolvec.MetricsCollector.
func (c *Collector) RecordReallocation(oldChunks, newChunks int) {
	c.reallocationsTotal.Inc()
	c.chunksAllocated.Add(float64(newChunks))
	c.chunksReleased.Add(float64(oldChunks))
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, boolvec.ErrLengthExceeded):
		return ResultLengthExceeded
	default:
		return ResultError
	}
}
