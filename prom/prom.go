// Package prom exposes Prometheus metrics about downsampling calls.
package prom

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tsenart/lttb"
)

// Metrics observes downsampling calls as Prometheus metrics.
// It's safe for concurrent use.
type Metrics struct {
	namespace string
	buckets   []float64

	calls        *prometheus.CounterVec
	inputPoints  prometheus.Counter
	outputPoints prometheus.Counter
	duration     prometheus.Histogram
}

// Opt is a functional option type for Metrics.
type Opt func(*Metrics)

// Namespace returns an Opt that sets the metric name prefix. Defaults to "lttb".
func Namespace(ns string) Opt {
	return func(pm *Metrics) { pm.namespace = ns }
}

// Buckets returns an Opt that sets the duration histogram buckets, in seconds.
func Buckets(bs []float64) Opt {
	return func(pm *Metrics) { pm.buckets = bs }
}

// NewMetrics returns a new Metrics with the given Opts applied.
// Its collectors must be registered with Register before being scraped.
func NewMetrics(opts ...Opt) *Metrics {
	pm := &Metrics{
		namespace: "lttb",
		buckets:   []float64{1e-5, 1e-4, 5e-4, 1e-3, 5e-3, 0.01, 0.05, 0.1, 0.5, 1},
	}

	for _, opt := range opts {
		opt(pm)
	}

	// A nil Registerer creates the collectors without registering them.
	f := promauto.With(nil)

	pm.calls = f.NewCounterVec(prometheus.CounterOpts{
		Namespace: pm.namespace,
		Name:      "downsample_calls_total",
		Help:      "Downsample calls, partitioned by whether any points were dropped",
	}, []string{"reduced"})

	pm.inputPoints = f.NewCounter(prometheus.CounterOpts{
		Namespace: pm.namespace,
		Name:      "downsample_input_points_total",
		Help:      "Points given to Downsample",
	})

	pm.outputPoints = f.NewCounter(prometheus.CounterOpts{
		Namespace: pm.namespace,
		Name:      "downsample_output_points_total",
		Help:      "Points returned by Downsample",
	})

	pm.duration = f.NewHistogram(prometheus.HistogramOpts{
		Namespace: pm.namespace,
		Name:      "downsample_duration_seconds",
		Help:      "Downsample latency",
		Buckets:   pm.buckets,
	})

	return pm
}

// Register registers all collectors with the given Registerer.
func (pm *Metrics) Register(r prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		pm.calls,
		pm.inputPoints,
		pm.outputPoints,
		pm.duration,
	} {
		if err := r.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Observe records a downsampling call of in points to out points
// which took the given duration.
func (pm *Metrics) Observe(in, out int, took time.Duration) {
	pm.calls.WithLabelValues(strconv.FormatBool(out < in)).Inc()
	pm.inputPoints.Add(float64(in))
	pm.outputPoints.Add(float64(out))
	pm.duration.Observe(took.Seconds())
}

// Downsample calls lttb.Downsample and observes the call.
func (pm *Metrics) Downsample(points []lttb.Point, threshold int) []lttb.Point {
	began := time.Now()
	samples := lttb.Downsample(points, threshold)
	pm.Observe(len(points), len(samples), time.Since(began))
	return samples
}

// NewHandler returns an http.Handler exposing the metrics
// gathered by the given Gatherer.
func NewHandler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
