// internal/sampler/runner.go
package sampler

import (
	"context"
	"time"
)

// Run emits one SampleResult immediately and then one per interval.
// One goroutine. No overlap. No retries.
// It returns when ctx is done; a blocked send is abandoned on cancellation.
func (s *Sampler) Run(ctx context.Context, out chan<- SampleResult) {
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case out <- s.SampleOnce():
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
