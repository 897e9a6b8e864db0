// internal/health/tcp.go
package health

import (
	"context"
	"fmt"
	"net"
	"time"
)

// TCPChecker verifies a broker accepts TCP connections. It never opens an
// MQTT session, so probes do not litter the broker log with client ids.
type TCPChecker struct {
	addr    string
	timeout time.Duration
}

var _ Checker = (*TCPChecker)(nil)

// NewTCPChecker creates a checker dialing addr (host:port).
func NewTCPChecker(addr string, timeout time.Duration) *TCPChecker {
	return &TCPChecker{addr: addr, timeout: timeout}
}

// Name returns "mqtt-tcp".
func (c *TCPChecker) Name() string {
	return "mqtt-tcp"
}

// Evaluate dials the broker once.
func (c *TCPChecker) Evaluate(ctx context.Context) Result {
	d := net.Dialer{Timeout: c.timeout}

	conn, err := d.DialContext(ctx, "tcp", c.addr)
	if err != nil {
		return down(fmt.Sprintf("mqtt tcp unreachable %s: %v", c.addr, err))
	}
	_ = conn.Close()

	return up()
}
