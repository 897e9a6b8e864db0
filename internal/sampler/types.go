// internal/sampler/types.go
package sampler

import (
	"time"

	"github.com/watsona4/brightness/internal/solar"
)

// SampleResult is a snapshot produced by one sample cycle.
type SampleResult struct {
	At time.Time

	Position   solar.Position
	ClearSky   solar.ClearSky
	Irradiance solar.Irradiance

	Err error // non-nil means the sample cycle failed
}
