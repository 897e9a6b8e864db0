// internal/publisher/mqtt_sink.go
package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/watsona4/brightness/internal/sampler"
)

// MQTTSink publishes the irradiance JSON document to one topic.
type MQTTSink struct {
	cli   mqttClient
	topic string
	qos   byte
}

var _ Sink = (*MQTTSink)(nil)

func NewMQTTSink(cli mqttClient, topic string, qos byte) (*MQTTSink, error) {
	if cli == nil {
		return nil, errors.New("publisher: mqtt client required")
	}
	if topic == "" {
		return nil, errors.New("publisher: mqtt topic required")
	}
	return &MQTTSink{cli: cli, topic: topic, qos: qos}, nil
}

func (s *MQTTSink) Name() string { return "mqtt" }

func (s *MQTTSink) Publish(ctx context.Context, res sampler.SampleResult) error {
	payload, err := Payload(res)
	if err != nil {
		return err
	}
	return s.cli.Publish(ctx, s.topic, s.qos, false, payload)
}

// Payload renders the state document:
// {"poa_global":..,"poa_direct":..,"poa_diffuse":..,"poa_sky_diffuse":..,"poa_ground_diffuse":..}
func Payload(res sampler.SampleResult) ([]byte, error) {
	if !res.Irradiance.Finite() {
		return nil, errors.New("publisher: irradiance is not finite")
	}
	b, err := json.Marshal(res.Irradiance)
	if err != nil {
		return nil, fmt.Errorf("publisher: encode payload: %w", err)
	}
	return b, nil
}
