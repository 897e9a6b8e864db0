// internal/solar/clearsky.go
package solar

import (
	"math"
	"time"
)

// DefaultDNIExtra is the extraterrestrial normal irradiance (W/m²) used by
// the Ineichen model when none is supplied.
const DefaultDNIExtra = 1364.0

// StandardPressure is sea-level pressure in Pa.
const StandardPressure = 101325.0

// ClearSky holds clear-sky irradiance components in W/m².
type ClearSky struct {
	GHI float64 `json:"ghi"`
	DNI float64 `json:"dni"`
	DHI float64 `json:"dhi"`
}

// RelativeAirmass is the Kasten & Young (1989) relative optical airmass.
// It returns NaN when the sun is at or below the horizon.
func RelativeAirmass(zenith float64) float64 {
	if math.IsNaN(zenith) || zenith >= 90 {
		return math.NaN()
	}
	return 1 / (cosd(zenith) + 0.50572*math.Pow(6.07995+(90-zenith), -1.6364))
}

// AbsoluteAirmass scales relative airmass to station pressure (Pa).
func AbsoluteAirmass(relative, pressure float64) float64 {
	return relative * pressure / StandardPressure
}

// Ineichen computes the Ineichen/Perez clear-sky model.
// All outputs are zero when the sun is below the horizon or the airmass is
// undefined.
func Ineichen(apparentZenith, airmassAbsolute, linkeTurbidity, altitude, dniExtra float64) ClearSky {
	if dniExtra <= 0 {
		dniExtra = DefaultDNIExtra
	}

	cosZenith := math.Max(cosd(apparentZenith), 0)
	if apparentZenith >= 90 || cosZenith == 0 || math.IsNaN(airmassAbsolute) {
		return ClearSky{}
	}

	tl := linkeTurbidity

	fh1 := math.Exp(-altitude / 8000)
	fh2 := math.Exp(-altitude / 1250)
	cg1 := 5.09e-5*altitude + 0.868
	cg2 := 3.92e-5*altitude + 0.0387

	ghi := math.Exp(-cg2 * airmassAbsolute * (fh1 + fh2*(tl-1)))
	ghi = cg1 * dniExtra * cosZenith * math.Max(ghi, 0)

	b := 0.664 + 0.163/fh1
	bnci := b * math.Exp(-0.09*airmassAbsolute*(tl-1))
	bnci = dniExtra * math.Max(bnci, 0)

	// Cap DNI so that the diffuse part never goes negative.
	bnci2 := (1 - (0.1-0.2*math.Exp(-tl))/(0.1+0.882/fh1)) / cosZenith
	bnci2 = ghi * clamp(bnci2, 0, 1e20)

	dni := math.Min(bnci, bnci2)
	dhi := ghi - dni*cosZenith

	return ClearSky{
		GHI: ghi,
		DNI: dni,
		DHI: math.Max(dhi, 0),
	}
}

// Turbidity selects the Linke turbidity for a moment in time.
type Turbidity struct {
	Constant float64
	Monthly  []float64 // 12 values, January first; overrides Constant
}

// At returns the Linke turbidity at t. A monthly table is linearly
// interpolated between mid-month points.
func (tb Turbidity) At(t time.Time) float64 {
	if len(tb.Monthly) != 12 {
		return tb.Constant
	}

	// position in "months" where k.0 is the middle of month k (0-based)
	year := t.Year()
	start := time.Date(year, 1, 1, 0, 0, 0, 0, t.Location())
	end := time.Date(year+1, 1, 1, 0, 0, 0, 0, t.Location())
	frac := float64(t.Sub(start)) / float64(end.Sub(start))
	pos := frac*12 - 0.5

	lo := int(math.Floor(pos))
	w := pos - float64(lo)

	a := tb.Monthly[(lo%12+12)%12]
	b := tb.Monthly[((lo+1)%12+12)%12]

	return a + (b-a)*w
}
