// internal/sampler/builder.go
package sampler

import (
	"fmt"
	"time"

	cfg "github.com/watsona4/brightness/internal/config"
	"github.com/watsona4/brightness/internal/solar"
)

// Build constructs a Sampler from validated configuration.
// No retries, no loops, no semantics.
func Build(c cfg.Config) (*Sampler, error) {
	loc, err := time.LoadLocation(c.Site.Timezone)
	if err != nil {
		return nil, fmt.Errorf("sampler: timezone %q: %w", c.Site.Timezone, err)
	}

	model := solar.Model{
		Site: solar.Site{
			Latitude:  c.Site.Latitude,
			Longitude: c.Site.Longitude,
			Altitude:  c.Site.Altitude,
		},
		Surface: solar.Surface{
			Tilt:    c.Sample.SurfaceTilt,
			Azimuth: c.Sample.SurfaceAzimuth,
			Albedo:  c.Sample.Albedo,
		},
		Turbidity: solar.Turbidity{
			Constant: c.Sample.LinkeTurbidity,
			Monthly:  c.Sample.LinkeTurbidityMonthly,
		},
		DNIExtra: solar.DefaultDNIExtra,
	}

	return New(
		Config{
			Interval: time.Duration(c.Sample.IntervalMs) * time.Millisecond,
			Location: loc,
		},
		model,
		nil,
	)
}
