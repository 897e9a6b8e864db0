// internal/solar/position.go
package solar

import (
	"math"
	"time"
)

// Site is an observer location.
type Site struct {
	Latitude  float64 // degrees, north positive
	Longitude float64 // degrees, east positive
	Altitude  float64 // meters above sea level
}

// Position is the sun's place in the sky, all angles in degrees.
type Position struct {
	Zenith         float64
	ApparentZenith float64 // refraction corrected
	Elevation      float64
	Azimuth        float64 // clockwise from north
}

// SolarPosition computes the sun position for t at site using the NOAA
// general solar position algorithm. Accuracy is well inside what a
// clear-sky model needs.
func SolarPosition(t time.Time, site Site) Position {
	t = t.UTC()

	jd := julianDay(t)
	jc := (jd - 2451545.0) / 36525.0

	meanLong := math.Mod(280.46646+jc*(36000.76983+jc*0.0003032), 360)
	meanAnom := 357.52911 + jc*(35999.05029-0.0001537*jc)
	ecc := 0.016708634 - jc*(0.000042037+0.0000001267*jc)

	center := sind(meanAnom)*(1.914602-jc*(0.004817+0.000014*jc)) +
		sind(2*meanAnom)*(0.019993-0.000101*jc) +
		sind(3*meanAnom)*0.000289

	trueLong := meanLong + center
	omega := 125.04 - 1934.136*jc
	appLong := trueLong - 0.00569 - 0.00478*sind(omega)

	meanObliq := 23 + (26+(21.448-jc*(46.815+jc*(0.00059-jc*0.001813)))/60)/60
	obliq := meanObliq + 0.00256*cosd(omega)

	decl := asind(sind(obliq) * sind(appLong))

	y := math.Pow(tand(obliq/2), 2)
	eqTime := 4 * deg(y*sind(2*meanLong)-
		2*ecc*sind(meanAnom)+
		4*ecc*y*sind(meanAnom)*cosd(2*meanLong)-
		0.5*y*y*sind(4*meanLong)-
		1.25*ecc*ecc*sind(2*meanAnom)) // minutes

	minutes := float64(t.Hour())*60 + float64(t.Minute()) +
		(float64(t.Second())+float64(t.Nanosecond())/1e9)/60
	trueSolar := math.Mod(minutes+eqTime+4*site.Longitude, 1440)
	if trueSolar < 0 {
		trueSolar += 1440
	}

	hourAngle := trueSolar/4 - 180 // degrees, negative before solar noon

	zenith := acosd(sind(site.Latitude)*sind(decl) +
		cosd(site.Latitude)*cosd(decl)*cosd(hourAngle))
	elevation := 90 - zenith

	var azimuth float64
	denom := cosd(site.Latitude) * sind(zenith)
	if math.Abs(denom) < 1e-12 {
		// sun at zenith or observer at a pole
		azimuth = 180
		if site.Latitude < 0 {
			azimuth = 0
		}
	} else {
		a := acosd((sind(site.Latitude)*cosd(zenith) - sind(decl)) / denom)
		if hourAngle > 0 {
			azimuth = math.Mod(a+180, 360)
		} else {
			azimuth = math.Mod(540-a, 360)
		}
	}

	apparentElevation := elevation + refraction(elevation)

	return Position{
		Zenith:         zenith,
		ApparentZenith: 90 - apparentElevation,
		Elevation:      elevation,
		Azimuth:        azimuth,
	}
}

// refraction returns the atmospheric refraction correction in degrees for a
// geometric elevation (NOAA approximation).
func refraction(elevation float64) float64 {
	var arcsec float64
	te := tand(elevation)

	switch {
	case elevation > 85:
		return 0
	case elevation > 5:
		arcsec = 58.1/te - 0.07/math.Pow(te, 3) + 0.000086/math.Pow(te, 5)
	case elevation > -0.575:
		arcsec = 1735 + elevation*(-518.2+elevation*(103.4+elevation*(-12.79+elevation*0.711)))
	default:
		arcsec = -20.772 / te
	}

	return arcsec / 3600
}

func julianDay(t time.Time) float64 {
	return float64(t.UnixNano())/1e9/86400 + 2440587.5
}

// ---- degree helpers ----

func rad(d float64) float64 { return d * math.Pi / 180 }
func deg(r float64) float64 { return r * 180 / math.Pi }

func sind(d float64) float64 { return math.Sin(rad(d)) }
func cosd(d float64) float64 { return math.Cos(rad(d)) }
func tand(d float64) float64 { return math.Tan(rad(d)) }

func asind(x float64) float64 { return deg(math.Asin(clamp(x, -1, 1))) }
func acosd(x float64) float64 { return deg(math.Acos(clamp(x, -1, 1))) }

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
