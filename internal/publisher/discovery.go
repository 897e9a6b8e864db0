// internal/publisher/discovery.go
package publisher

import (
	"context"
	"encoding/json"
	"fmt"

	cfg "github.com/watsona4/brightness/internal/config"
)

// Home Assistant discovery constants.
const (
	DiscoveryComponent = "sensor"
	DiscoveryObjectID  = "brightness"

	// DiscoveryValueTemplate reports diffuse irradiance plus one.
	DiscoveryValueTemplate = "{{ (value_json.poa_global|float - value_json.poa_direct|float) + 1 }}"
)

// Discovery is the Home Assistant MQTT discovery document.
type Discovery struct {
	Name                string `json:"name"`
	StateTopic          string `json:"state_topic"`
	ValueTemplate       string `json:"value_template"`
	UniqueID            string `json:"unique_id"`
	DeviceClass         string `json:"device_class"`
	UnitOfMeasurement   string `json:"unit_of_measurement"`
	StateClass          string `json:"state_class"`
	JSONAttributesTopic string `json:"json_attributes_topic"`
}

// DiscoveryTopic returns <prefix>/sensor/brightness/brightness/config.
func DiscoveryTopic(prefix string) string {
	return fmt.Sprintf("%s/%s/%s/%s/config", prefix, DiscoveryComponent, DiscoveryObjectID, DiscoveryObjectID)
}

// NewDiscovery builds the document for the configured state topic.
func NewDiscovery(c cfg.MQTTConfig) Discovery {
	return Discovery{
		Name:                c.Discovery.Name,
		StateTopic:          c.Topic,
		ValueTemplate:       DiscoveryValueTemplate,
		UniqueID:            c.Discovery.UniqueID,
		DeviceClass:         "irradiance",
		UnitOfMeasurement:   "W/m²",
		StateClass:          "measurement",
		JSONAttributesTopic: c.Topic,
	}
}

// Announce publishes the retained discovery document once.
// Disabled discovery is a no-op.
func Announce(ctx context.Context, cli mqttClient, c cfg.MQTTConfig) error {
	if !c.Discovery.Enabled {
		return nil
	}

	b, err := json.Marshal(NewDiscovery(c))
	if err != nil {
		return fmt.Errorf("publisher: encode discovery: %w", err)
	}

	if err := cli.Publish(ctx, DiscoveryTopic(c.Discovery.Prefix), c.QoS, true, b); err != nil {
		return fmt.Errorf("publisher: announce: %w", err)
	}
	return nil
}
