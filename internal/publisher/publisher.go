// internal/publisher/publisher.go
package publisher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/watsona4/brightness/internal/sampler"
)

// ErrNoSinks is returned when a publisher has nowhere to deliver.
var ErrNoSinks = errors.New("publisher: no sinks configured")

// Publisher fans one sample out to every sink in order.
type Publisher struct {
	sinks   []Sink
	observe Observer
}

// New returns a Publisher. observe may be nil.
func New(sinks []Sink, observe Observer) *Publisher {
	return &Publisher{sinks: sinks, observe: observe}
}

// Sinks returns the sink names in delivery order.
func (p *Publisher) Sinks() []string {
	out := make([]string, 0, len(p.sinks))
	for _, s := range p.sinks {
		out = append(out, s.Name())
	}
	return out
}

// Publish delivers res to every sink. Every sink is attempted even after a
// failure; the publish succeeded only if the returned error is nil.
func (p *Publisher) Publish(ctx context.Context, res sampler.SampleResult) error {
	if res.Err != nil {
		return fmt.Errorf("publisher: sample failed: %w", res.Err)
	}
	if len(p.sinks) == 0 {
		return ErrNoSinks
	}

	var errs []error
	for _, s := range p.sinks {
		start := time.Now()
		err := s.Publish(ctx, res)
		if p.observe != nil {
			p.observe(s.Name(), time.Since(start), err)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("publisher: sink %s: %w", s.Name(), err))
		}
	}

	return errors.Join(errs...)
}
