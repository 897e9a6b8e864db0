// internal/health/checker.go
package health

import (
	"context"
	"time"
)

// DefaultTimeout bounds one full evaluation of a Registry.
const DefaultTimeout = 5 * time.Second

// Status represents the health status of a component.
type Status string

const (
	StatusUp   Status = "up"
	StatusDown Status = "down"
)

// Result is the outcome of a single health check.
type Result struct {
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

// Healthy reports whether the result is up.
func (r Result) Healthy() bool { return r.Status == StatusUp }

func up() Result             { return Result{Status: StatusUp} }
func down(msg string) Result { return Result{Status: StatusDown, Message: msg} }

// Checker is one health strategy. Implementations must be safe to call
// repeatedly and must respect ctx.
type Checker interface {
	// Name returns the name of the strategy.
	Name() string
	// Evaluate performs the check and returns a verdict.
	Evaluate(ctx context.Context) Result
}
