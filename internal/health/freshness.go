// internal/health/freshness.go
package health

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/watsona4/brightness/internal/heartbeat"
)

// FreshnessChecker is healthy while the liveness record is younger than
// MaxAge. A record from the future (clock stepped back) counts as fresh.
type FreshnessChecker struct {
	path   string
	maxAge time.Duration
	now    func() time.Time
}

var _ Checker = (*FreshnessChecker)(nil)

// NewFreshnessChecker creates a checker for the record at path.
// now may be nil, in which case time.Now is used.
func NewFreshnessChecker(path string, maxAge time.Duration, now func() time.Time) *FreshnessChecker {
	if now == nil {
		now = time.Now
	}
	return &FreshnessChecker{path: path, maxAge: maxAge, now: now}
}

// Name returns "freshness".
func (c *FreshnessChecker) Name() string {
	return "freshness"
}

// Evaluate reads the record and compares its age against the threshold.
func (c *FreshnessChecker) Evaluate(_ context.Context) Result {
	last, err := heartbeat.Read(c.path)
	if err != nil {
		if errors.Is(err, heartbeat.ErrNoRecord) {
			return down(fmt.Sprintf("no heartbeat file: %s", c.path))
		}
		return down(fmt.Sprintf("bad heartbeat: %v", err))
	}

	return Fresh(last, c.now(), c.maxAge)
}

// Fresh is the pure verdict: up iff now-last < maxAge.
func Fresh(last, now time.Time, maxAge time.Duration) Result {
	age := now.Sub(last)
	if age >= maxAge {
		return down(fmt.Sprintf("stale heartbeat: age=%.1fs >= %.0fs", age.Seconds(), maxAge.Seconds()))
	}
	return up()
}
