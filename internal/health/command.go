// internal/health/command.go
package health

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// CommandChecker runs an external client tool (for example mosquitto_sub)
// and is healthy iff it exits 0 within its timeout.
type CommandChecker struct {
	argv    []string
	timeout time.Duration
}

var _ Checker = (*CommandChecker)(nil)

// NewCommandChecker creates a checker for argv[0] with argv[1:] as arguments.
func NewCommandChecker(argv []string, timeout time.Duration) *CommandChecker {
	return &CommandChecker{argv: argv, timeout: timeout}
}

// Name returns "command".
func (c *CommandChecker) Name() string {
	return "command"
}

// Evaluate runs the command once.
func (c *CommandChecker) Evaluate(ctx context.Context) Result {
	if len(c.argv) == 0 {
		return down("no command configured")
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.argv[0], c.argv[1:]...)
	cmd.Stderr = &stderr
	cmd.WaitDelay = time.Second // children holding stderr open must not stall the probe

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return down(fmt.Sprintf("%s timed out after %s", c.argv[0], c.timeout))
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return down(fmt.Sprintf("%s: %v", c.argv[0], err))
		}
		return down(fmt.Sprintf("%s: %v: %s", c.argv[0], err, msg))
	}

	return up()
}
