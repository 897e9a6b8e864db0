// internal/publisher/modbus/client_test.go
package modbus

import (
	"bytes"
	"testing"
)

func TestPackRegistersBigEndian(t *testing.T) {
	got := PackRegisters([]uint16{0x0102, 0xA0B0})
	want := []byte{0x01, 0x02, 0xA0, 0xB0}

	if !bytes.Equal(got, want) {
		t.Fatalf("got %x want %x", got, want)
	}
}

func TestNewEndpointClientRequiresEndpoint(t *testing.T) {
	if _, err := NewEndpointClient(Config{}); err == nil {
		t.Fatalf("expected error for empty endpoint")
	}
}
