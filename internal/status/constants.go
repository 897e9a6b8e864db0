// internal/status/constants.go
package status

// Worker status block layout constants.
// These values define the register protocol and MUST NOT be configurable.

// ---- BLOCK GEOMETRY ----

// SlotsPerBlock is the fixed number of registers in one status block.
const SlotsPerBlock = 20

// ---- SLOT INDICES ----

// SlotHealthCode holds the worker health state.
const SlotHealthCode = 0

// SlotLastErrorCode holds the last error code.
const SlotLastErrorCode = 1

// SlotSecondsInError holds how long (seconds) the worker has been failing.
const SlotSecondsInError = 2

// SlotLastPublishHi and SlotLastPublishLo hold the Unix time of the last
// successful publish as a big-endian 32-bit pair.
const (
	SlotLastPublishHi = 3
	SlotLastPublishLo = 4
)

// Slots 5-10 are reserved.

// ---- DEVICE NAME ----

// SlotDeviceNameStart is the first slot used for the device name.
// Device name is always placed at the END of the status block.
const SlotDeviceNameStart = 11

// SlotDeviceNameSlots is the number of slots reserved for the device name.
const SlotDeviceNameSlots = 8

// DeviceNameMaxChars is the maximum number of ASCII characters stored for device name.
const DeviceNameMaxChars = 16

// MaxSecondsInError is where the error counter saturates.
const MaxSecondsInError = 65535

// ---- HEALTH CODES ----

// HealthUnknown represents the boot state before the first sample.
const HealthUnknown uint16 = 0

// HealthOK represents a worker whose last publish succeeded.
const HealthOK uint16 = 1

// HealthError represents a worker whose last cycle failed.
const HealthError uint16 = 2

// HealthName returns a label for a health code.
func HealthName(code uint16) string {
	switch code {
	case HealthOK:
		return "ok"
	case HealthError:
		return "error"
	default:
		return "unknown"
	}
}
