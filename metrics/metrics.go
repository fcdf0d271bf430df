// Package metrics records sweep progress in a private prometheus registry.
// The registry is written to a node-exporter textfile when a run ends; no
// HTTP listener is started.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder collects the metrics of a single sweep run. All methods are safe
// to call on a nil Recorder.
type Recorder struct {
	registry *prometheus.Registry

	sweepFrames    prometheus.Gauge
	framesRendered prometheus.Counter
	frameFailures  prometheus.Counter
	frameSeconds   prometheus.Histogram
	encodeSeconds  prometheus.Gauge
}

// Create a recorder. The sweep name is attached to every metric as the
// "sweep" label.
func NewRecorder(sweep string) *Recorder {
	labels := prometheus.Labels{"sweep": sweep}
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		sweepFrames: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "glens_sweep_frames",
			Help:        "Number of frames in the sweep.",
			ConstLabels: labels,
		}),
		framesRendered: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "glens_frames_rendered_total",
			Help:        "Total number of frames rendered successfully.",
			ConstLabels: labels,
		}),
		frameFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "glens_frame_failures_total",
			Help:        "Total number of frames that failed to serialize or render.",
			ConstLabels: labels,
		}),
		frameSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "glens_frame_render_seconds",
			Help:        "Renderer wall time per frame in seconds.",
			Buckets:     prometheus.ExponentialBuckets(0.5, 2, 12),
			ConstLabels: labels,
		}),
		encodeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "glens_encode_seconds",
			Help:        "Wall time of the video assembly step in seconds.",
			ConstLabels: labels,
		}),
	}

	r.registry.MustRegister(r.sweepFrames, r.framesRendered, r.frameFailures, r.frameSeconds, r.encodeSeconds)
	return r
}

func (r *Recorder) SetSweepFrames(n int) {
	if r == nil {
		return
	}
	r.sweepFrames.Set(float64(n))
}

func (r *Recorder) ObserveFrame(d time.Duration) {
	if r == nil {
		return
	}
	r.framesRendered.Inc()
	r.frameSeconds.Observe(d.Seconds())
}

func (r *Recorder) FrameFailed() {
	if r == nil {
		return
	}
	r.frameFailures.Inc()
}

func (r *Recorder) ObserveEncode(d time.Duration) {
	if r == nil {
		return
	}
	r.encodeSeconds.Set(d.Seconds())
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// WriteTextfile writes all metrics to path in the text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, r.registry)
}
