// cmd/healthcheck/main.go
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/watsona4/brightness/internal/config"
	"github.com/watsona4/brightness/internal/health"
)

// Exit codes understood by the container runtime.
const (
	exitHealthy   = 0
	exitUnhealthy = 1
)

func main() {
	os.Exit(run(os.Args, os.Stderr, time.Now))
}

// run evaluates every configured check once. It always returns a defined
// exit code: configuration problems are reported as unhealthy.
func run(args []string, stderr io.Writer, now func() time.Time) int {
	cfg, err := config.Load(config.Path(args))
	if err != nil {
		return fail(stderr, "config: %v", err)
	}
	if err := config.ValidateProbe(cfg); err != nil {
		return fail(stderr, "config: %v", err)
	}
	config.Normalize(cfg)

	registry := health.Build(*cfg, now)

	timeout := time.Duration(cfg.Health.TimeoutMs) * time.Millisecond
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	report := registry.EvaluateAll(ctx)
	if report.Healthy() {
		return exitHealthy
	}

	for _, c := range report.Failed() {
		fmt.Fprintf(stderr, "%s: %s\n", c.Name, c.Message)
	}
	return exitUnhealthy
}

func fail(w io.Writer, format string, args ...interface{}) int {
	fmt.Fprintf(w, format+"\n", args...)
	return exitUnhealthy
}
