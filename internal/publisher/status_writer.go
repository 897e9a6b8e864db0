// internal/publisher/status_writer.go
package publisher

import (
	"errors"
	"fmt"
	"strings"

	"github.com/watsona4/brightness/internal/status"
)

// deviceStatusWriter is the Modbus implementation of StatusWriter.
type deviceStatusWriter struct {
	endpoint string
	unitID   uint8
	baseAddr uint16
	name     string
	cli      endpointClient

	needFull bool
	last     status.Snapshot
}

var _ StatusWriter = (*deviceStatusWriter)(nil)

// NewDeviceStatusWriter builds a status writer for the block at baseAddr.
func NewDeviceStatusWriter(endpoint string, unitID uint8, baseAddr uint16, deviceName string, cli endpointClient) (StatusWriter, error) {
	if cli == nil {
		return nil, fmt.Errorf("status writer: missing client for endpoint %s", endpoint)
	}
	if int(baseAddr)+status.SlotsPerBlock > 65536 {
		return nil, fmt.Errorf("status writer: address %d out of range", baseAddr)
	}

	return &deviceStatusWriter{
		endpoint: endpoint,
		unitID:   unitID,
		baseAddr: baseAddr,
		name:     deviceName,
		cli:      cli,
		needFull: true, // full re-assert on first write
		last:     status.Snapshot{Health: status.HealthUnknown},
	}, nil
}

// WriteStatus delivers a snapshot into the status block.
// On any write failure, the next call re-asserts the full block.
func (sw *deviceStatusWriter) WriteStatus(s status.Snapshot) error {
	// ------------------------------------------------------------
	// Full block write (identity re-assert)
	// ------------------------------------------------------------
	if sw.needFull {
		regs := status.Encode(s, sw.name)

		if err := sw.cli.WriteRegisters(sw.unitID, sw.baseAddr, regs); err != nil {
			return fmt.Errorf("status writer: full block write failed: %w", err)
		}

		sw.needFull = false
		sw.last = s
		return nil
	}

	var errs []string

	write := func(slot uint16, regs []uint16, label string) bool {
		if err := sw.cli.WriteRegisters(sw.unitID, sw.baseAddr+slot, regs); err != nil {
			errs = append(errs, fmt.Sprintf("slot%d %s write failed: %v", slot, label, err))
			return false
		}
		return true
	}

	// Slot 0: health_code
	if sw.last.Health != s.Health {
		if write(status.SlotHealthCode, []uint16{s.Health}, "health") {
			sw.last.Health = s.Health
		}
	}

	// Slot 1: last_error_code
	if sw.last.LastErrorCode != s.LastErrorCode {
		if write(status.SlotLastErrorCode, []uint16{s.LastErrorCode}, "last_error") {
			sw.last.LastErrorCode = s.LastErrorCode
		}
	}

	// Slot 2: seconds_in_error
	if sw.last.SecondsInError != s.SecondsInError {
		if write(status.SlotSecondsInError, []uint16{s.SecondsInError}, "seconds") {
			sw.last.SecondsInError = s.SecondsInError
		}
	}

	// Slots 3-4: last publish time
	if !sw.last.LastPublish.Equal(s.LastPublish) {
		full := status.Encode(s, "")
		pair := full[status.SlotLastPublishHi : status.SlotLastPublishLo+1]
		if write(status.SlotLastPublishHi, pair, "last_publish") {
			sw.last.LastPublish = s.LastPublish
		}
	}

	if len(errs) > 0 {
		// Any partial failure: re-assert on next call.
		sw.needFull = true
		return errors.New("status writer: " + strings.Join(errs, " | "))
	}

	return nil
}
