// internal/sampler/sampler.go
package sampler

import (
	"errors"
	"fmt"
	"time"

	"github.com/watsona4/brightness/internal/solar"
)

// Model abstracts the irradiance computation the sampler drives.
type Model interface {
	Evaluate(t time.Time) solar.Result
}

// Config is the minimal runtime config the sampler needs.
type Config struct {
	Interval time.Duration
	Location *time.Location
}

// Sampler is a dumb, clock-driven evaluator.
type Sampler struct {
	cfg   Config
	model Model
	now   func() time.Time
}

// New creates a sampler with immutable config.
// now may be nil, in which case time.Now is used.
func New(cfg Config, model Model, now func() time.Time) (*Sampler, error) {
	if cfg.Interval <= 0 {
		return nil, errors.New("sampler: interval must be > 0")
	}
	if model == nil {
		return nil, errors.New("sampler: model required")
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &Sampler{cfg: cfg, model: model, now: now}, nil
}

// SampleOnce performs exactly one sample cycle at the sampler's clock.
// All-or-nothing: a non-finite result fails the cycle.
func (s *Sampler) SampleOnce() SampleResult {
	at := s.now().In(s.cfg.Location)

	res := SampleResult{At: at}

	r := s.model.Evaluate(at)
	if !r.Irradiance.Finite() {
		res.Err = fmt.Errorf("sampler: non-finite irradiance at %s", at.Format(time.RFC3339))
		return res
	}

	// Commit only if the evaluation is usable
	res.Position = r.Position
	res.ClearSky = r.ClearSky
	res.Irradiance = r.Irradiance
	return res
}
