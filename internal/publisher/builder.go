// internal/publisher/builder.go
package publisher

import (
	"errors"
	"time"

	cfg "github.com/watsona4/brightness/internal/config"
	wmodbus "github.com/watsona4/brightness/internal/publisher/modbus"
)

// Built is everything the orchestrator needs to deliver samples.
type Built struct {
	Publisher *Publisher
	Status    StatusWriter // nil when the status block is disabled
	Close     func() error
}

// Build wires the sinks for a validated configuration.
// The MQTT sink is always present; the Modbus sink is opt-in.
func Build(c cfg.Config, mq mqttClient, observe Observer) (Built, error) {
	if c.Modbus.Endpoint == "" {
		return assemble(c, mq, nil, observe, func() error { return nil })
	}

	cli, err := wmodbus.NewEndpointClient(wmodbus.Config{
		Endpoint: c.Modbus.Endpoint,
		Timeout:  time.Duration(c.Modbus.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		return Built{}, err
	}

	b, err := assemble(c, mq, cli, observe, cli.Close)
	if err != nil {
		_ = cli.Close()
		return Built{}, err
	}
	return b, nil
}

func assemble(c cfg.Config, mq mqttClient, ep endpointClient, observe Observer, closeFn func() error) (Built, error) {
	if mq == nil {
		return Built{}, errors.New("publisher: mqtt client required")
	}

	mqSink, err := NewMQTTSink(mq, c.MQTT.Topic, c.MQTT.QoS)
	if err != nil {
		return Built{}, err
	}
	sinks := []Sink{mqSink}

	var sw StatusWriter
	if ep != nil {
		mbSink, err := NewModbusSink(c.Modbus.Endpoint, c.Modbus.UnitID, c.Modbus.Address, ep)
		if err != nil {
			return Built{}, err
		}
		sinks = append(sinks, mbSink)

		if c.Modbus.StatusAddress != nil {
			sw, err = NewDeviceStatusWriter(
				c.Modbus.Endpoint,
				c.Modbus.UnitID,
				*c.Modbus.StatusAddress,
				c.Modbus.DeviceName,
				ep,
			)
			if err != nil {
				return Built{}, err
			}
		}
	}

	return Built{
		Publisher: New(sinks, observe),
		Status:    sw,
		Close:     closeFn,
	}, nil
}
