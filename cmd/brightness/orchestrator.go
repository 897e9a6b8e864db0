// cmd/brightness/orchestrator.go
package main

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/watsona4/brightness/internal/metrics"
	"github.com/watsona4/brightness/internal/publisher"
	"github.com/watsona4/brightness/internal/sampler"
	"github.com/watsona4/brightness/internal/status"
)

type deliverer interface {
	Publish(ctx context.Context, res sampler.SampleResult) error
}

type recorder interface {
	Record(now time.Time) (int64, error)
}

// orchestrator owns the worker state: it publishes each sample, records the
// liveness heartbeat after a successful publish and keeps the status block
// current.
type orchestrator struct {
	pub          deliverer
	heartbeat    recorder
	tracker      *status.Tracker
	statusWriter publisher.StatusWriter // nil when disabled
	log          zerolog.Logger
	now          func() time.Time
	tick         time.Duration
}

func (o *orchestrator) run(ctx context.Context, in <-chan sampler.SampleResult) error {
	tick := o.tick
	if tick <= 0 {
		tick = time.Second
	}
	secTicker := time.NewTicker(tick)
	defer secTicker.Stop()

	// Full block write on start (identity re-assert).
	o.writeStatus()

	for {
		select {
		case <-ctx.Done():
			return nil

		case res, ok := <-in:
			if !ok {
				return nil
			}
			o.handle(ctx, res)

		case <-secTicker.C:
			// Tick 1 Hz while not OK.
			if o.tracker.Tick() {
				o.writeStatus()
			}
		}
	}
}

// handle runs one publish cycle. Failures never stop the loop; a missing
// heartbeat surfaces through the probe instead.
func (o *orchestrator) handle(ctx context.Context, res sampler.SampleResult) {
	metrics.ObserveSample(res)

	err := o.pub.Publish(ctx, res)
	at := o.now()

	if err != nil {
		o.log.Error().Err(err).Time("sample_at", res.At).Msg("publish failed")
	} else {
		o.log.Info().
			Float64("poa_global", res.Irradiance.POAGlobal).
			Float64("poa_direct", res.Irradiance.POADirect).
			Msg("published")

		if v, herr := o.heartbeat.Record(at); herr != nil {
			metrics.HeartbeatErrors.Inc()
			o.log.Error().Err(herr).Msg("heartbeat write failed")
		} else {
			o.log.Debug().Int64("heartbeat", v).Msg("heartbeat recorded")
		}
	}

	if o.tracker.Apply(err, at) {
		o.writeStatus()
	}
}

func (o *orchestrator) writeStatus() {
	snap := o.tracker.Snapshot()
	metrics.ObserveStatus(snap)

	if o.statusWriter == nil {
		return
	}
	if err := o.statusWriter.WriteStatus(snap); err != nil {
		o.log.Warn().Err(err).Str("health", status.HealthName(snap.Health)).Msg("status write failed")
	}
}
