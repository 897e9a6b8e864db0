// internal/publisher/types.go
package publisher

import (
	"context"
	"time"

	"github.com/watsona4/brightness/internal/sampler"
	"github.com/watsona4/brightness/internal/status"
)

// IrradianceRegisters is the number of registers in the Modbus data block.
const IrradianceRegisters = 5

// Sink delivers one sample to one destination.
type Sink interface {
	Name() string
	Publish(ctx context.Context, res sampler.SampleResult) error
}

// StatusWriter is the delivery-only contract for worker status.
// It receives a snapshot and writes it verbatim.
type StatusWriter interface {
	WriteStatus(s status.Snapshot) error
}

// Observer is told about every sink delivery attempt.
type Observer func(sink string, took time.Duration, err error)

// mqttClient is the exact contract the MQTT sink and discovery use.
type mqttClient interface {
	Publish(ctx context.Context, topic string, qos byte, retained bool, payload []byte) error
}

// endpointClient is the exact contract the Modbus sink and status writer use.
type endpointClient interface {
	WriteRegisters(unitID uint8, addr uint16, regs []uint16) error
}
