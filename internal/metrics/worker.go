// internal/metrics/worker.go
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/watsona4/brightness/internal/sampler"
	"github.com/watsona4/brightness/internal/status"
)

const namespace = "brightness"

var (
	PublishDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "publish",
			Name:      "duration_seconds",
			Help:      "Sink delivery duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"sink"},
	)

	PublishTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "publish",
			Name:      "total",
			Help:      "Total number of sink deliveries",
		},
		[]string{"sink", "status"},
	)

	LastPublish = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "publish",
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last cycle in which every sink succeeded",
		},
	)

	HeartbeatErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "heartbeat",
			Name:      "write_errors_total",
			Help:      "Total number of failed liveness record writes",
		},
	)

	SampleErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sample",
			Name:      "errors_total",
			Help:      "Total number of failed sample computations",
		},
	)

	WorkerHealth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "worker",
			Name:      "health_code",
			Help:      "Worker health code: 0 unknown, 1 ok, 2 error",
		},
	)

	SecondsInError = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "worker",
			Name:      "seconds_in_error",
			Help:      "Seconds the worker has been failing",
		},
	)

	Irradiance = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "solar",
			Name:      "irradiance_watts_per_square_meter",
			Help:      "Last computed plane-of-array irradiance",
		},
		[]string{"component"},
	)

	SolarElevation = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "solar",
			Name:      "elevation_degrees",
			Help:      "Last computed solar elevation",
		},
	)
)

func init() {
	Registry.MustRegister(
		PublishDuration,
		PublishTotal,
		LastPublish,
		HeartbeatErrors,
		SampleErrors,
		WorkerHealth,
		SecondsInError,
		Irradiance,
		SolarElevation,
	)
}

// ObservePublish records one sink delivery. Its signature matches
// publisher.Observer.
func ObservePublish(sink string, took time.Duration, err error) {
	st := "ok"
	if err != nil {
		st = "error"
	}
	PublishDuration.WithLabelValues(sink).Observe(took.Seconds())
	PublishTotal.WithLabelValues(sink, st).Inc()
}

// ObserveSample records the model output of a successful sample.
func ObserveSample(res sampler.SampleResult) {
	if res.Err != nil {
		SampleErrors.Inc()
		return
	}

	irr := res.Irradiance
	Irradiance.WithLabelValues("poa_global").Set(irr.POAGlobal)
	Irradiance.WithLabelValues("poa_direct").Set(irr.POADirect)
	Irradiance.WithLabelValues("poa_diffuse").Set(irr.POADiffuse)
	Irradiance.WithLabelValues("poa_sky_diffuse").Set(irr.POASkyDiffuse)
	Irradiance.WithLabelValues("poa_ground_diffuse").Set(irr.POAGroundDiffuse)
	SolarElevation.Set(res.Position.Elevation)
}

// ObserveStatus mirrors the worker status snapshot.
func ObserveStatus(s status.Snapshot) {
	WorkerHealth.Set(float64(s.Health))
	SecondsInError.Set(float64(s.SecondsInError))
	if !s.LastPublish.IsZero() {
		LastPublish.Set(float64(s.LastPublish.Unix()))
	}
}
