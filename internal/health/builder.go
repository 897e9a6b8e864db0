// internal/health/builder.go
package health

import (
	"net"
	"strconv"
	"time"

	cfg "github.com/watsona4/brightness/internal/config"
)

// Build assembles the checkers selected by configuration.
// Assumes config has already passed ValidateProbe.
func Build(c cfg.Config, now func() time.Time) *Registry {
	var checkers []Checker

	switch c.Health.Strategy {
	case cfg.StrategyCommand:
		checkers = append(checkers, NewCommandChecker(
			c.Health.Command,
			time.Duration(c.Health.TimeoutMs)*time.Millisecond,
		))
	default:
		checkers = append(checkers, NewFreshnessChecker(
			c.Heartbeat.File,
			time.Duration(c.Health.MaxAgeSeconds)*time.Second,
			now,
		))
	}

	// Broker reachability is only meaningful when a broker is known.
	if c.Health.TCP && c.MQTT.Host != "" {
		checkers = append(checkers, NewTCPChecker(
			net.JoinHostPort(c.MQTT.Host, strconv.Itoa(c.MQTT.Port)),
			time.Duration(c.Health.TCPTimeoutMs)*time.Millisecond,
		))
	}

	return NewRegistry(checkers...)
}
