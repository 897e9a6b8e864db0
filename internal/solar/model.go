// internal/solar/model.go
package solar

import "time"

// Model bundles everything needed to go from a timestamp to plane-of-array
// irradiance for one fixed site and surface.
type Model struct {
	Site      Site
	Surface   Surface
	Turbidity Turbidity
	DNIExtra  float64
}

// Result is one full evaluation of the model.
type Result struct {
	Position   Position
	ClearSky   ClearSky
	Irradiance Irradiance
}

// Evaluate runs position -> airmass -> clear sky -> transposition at t.
func (m Model) Evaluate(t time.Time) Result {
	pos := SolarPosition(t, m.Site)

	amRel := RelativeAirmass(pos.ApparentZenith)
	amAbs := AbsoluteAirmass(amRel, StandardPressure)

	sky := Ineichen(pos.ApparentZenith, amAbs, m.Turbidity.At(t), m.Site.Altitude, m.DNIExtra)

	return Result{
		Position:   pos,
		ClearSky:   sky,
		Irradiance: TotalIrradiance(m.Surface, pos.Zenith, pos.Azimuth, sky),
	}
}
