// internal/publisher/modbus_sink.go
package publisher

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/watsona4/brightness/internal/sampler"
)

// ModbusSink writes the irradiance block into holding registers:
// base+0 poa_global, +1 poa_direct, +2 poa_diffuse, +3 poa_sky_diffuse,
// +4 poa_ground_diffuse. Values are whole W/m².
type ModbusSink struct {
	endpoint string
	unitID   uint8
	address  uint16
	cli      endpointClient
}

var _ Sink = (*ModbusSink)(nil)

func NewModbusSink(endpoint string, unitID uint8, address uint16, cli endpointClient) (*ModbusSink, error) {
	if cli == nil {
		return nil, fmt.Errorf("publisher: missing client for endpoint %s", endpoint)
	}
	if int(address)+IrradianceRegisters > 65536 {
		return nil, fmt.Errorf("publisher: address %d out of range", address)
	}
	return &ModbusSink{endpoint: endpoint, unitID: unitID, address: address, cli: cli}, nil
}

func (s *ModbusSink) Name() string { return "modbus" }

func (s *ModbusSink) Publish(_ context.Context, res sampler.SampleResult) error {
	if !res.Irradiance.Finite() {
		return errors.New("publisher: irradiance is not finite")
	}

	regs := IrradianceRegs(res.Irradiance.Values())

	if err := s.cli.WriteRegisters(s.unitID, s.address, regs); err != nil {
		return fmt.Errorf("ep=%s unit=%d addr=%d err=%w", s.endpoint, s.unitID, s.address, err)
	}
	return nil
}

// IrradianceRegs rounds each value and clamps it into [0, 65535].
func IrradianceRegs(values []float64) []uint16 {
	out := make([]uint16, len(values))
	for i, v := range values {
		out[i] = clampU16(v)
	}
	return out
}

func clampU16(v float64) uint16 {
	r := math.Round(v)
	switch {
	case math.IsNaN(r) || r <= 0:
		return 0
	case r >= math.MaxUint16:
		return math.MaxUint16
	default:
		return uint16(r)
	}
}
