// internal/solar/solar_test.go
package solar

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var albany = Site{Latitude: 40, Longitude: 0}

func TestSolarPosition_EquinoxNoonAtEquator(t *testing.T) {
	// Solar noon at lon 0 on the March equinox is ~12:07 UTC (equation of time).
	at := time.Date(2024, 3, 20, 12, 7, 30, 0, time.UTC)

	pos := SolarPosition(at, Site{})

	assert.Less(t, pos.Zenith, 1.0)
	assert.InDelta(t, 90-pos.Zenith, pos.Elevation, 1e-9)
}

func TestSolarPosition_SolsticeNoonZenith(t *testing.T) {
	at := time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC)

	pos := SolarPosition(at, albany)

	// 40 - 23.44
	assert.InDelta(t, 16.56, pos.Zenith, 0.3)
}

func TestSolarPosition_MorningEastAfternoonWest(t *testing.T) {
	morning := SolarPosition(time.Date(2024, 6, 21, 7, 0, 0, 0, time.UTC), albany)
	afternoon := SolarPosition(time.Date(2024, 6, 21, 17, 0, 0, 0, time.UTC), albany)

	assert.InDelta(t, 80.3, morning.Azimuth, 2)
	assert.InDelta(t, 279.7, afternoon.Azimuth, 2)
	assert.InDelta(t, 64, morning.Zenith, 1)
}

func TestSolarPosition_LocalTimeIsIrrelevant(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	utc := time.Date(2024, 6, 21, 17, 0, 0, 0, time.UTC)

	assert.Equal(t, SolarPosition(utc, albany), SolarPosition(utc.In(ny), albany))
}

func TestSolarPosition_RefractionLiftsLowSun(t *testing.T) {
	pos := SolarPosition(time.Date(2024, 6, 21, 4, 30, 0, 0, time.UTC), albany)

	if pos.Zenith < 90 {
		assert.Less(t, pos.ApparentZenith, pos.Zenith)
	}
}

func TestRelativeAirmass(t *testing.T) {
	assert.InDelta(t, 1.0, RelativeAirmass(0), 1e-3)
	assert.InDelta(t, 1.994, RelativeAirmass(60), 0.01)
	assert.True(t, math.IsNaN(RelativeAirmass(90)))
	assert.True(t, math.IsNaN(RelativeAirmass(120)))
}

func TestAbsoluteAirmass(t *testing.T) {
	assert.InDelta(t, 1.5, AbsoluteAirmass(1.5, StandardPressure), 1e-12)
	assert.InDelta(t, 0.75, AbsoluteAirmass(1.5, StandardPressure/2), 1e-12)
}

func TestIneichen_OverheadSeaLevel(t *testing.T) {
	sky := Ineichen(0, 1, 3, 0, 0)

	assert.InDelta(t, 1054, sky.GHI, 2)
	assert.InDelta(t, 942, sky.DNI, 2)
	assert.InDelta(t, 112, sky.DHI, 2)
}

func TestIneichen_NightIsDark(t *testing.T) {
	assert.Equal(t, ClearSky{}, Ineichen(95, math.NaN(), 3, 0, 0))
	assert.Equal(t, ClearSky{}, Ineichen(45, math.NaN(), 3, 0, 0))
}

func TestIneichen_Closure(t *testing.T) {
	for _, z := range []float64{10, 30, 60, 80, 89} {
		am := AbsoluteAirmass(RelativeAirmass(z), StandardPressure)
		sky := Ineichen(z, am, 3.5, 300, DefaultDNIExtra)

		assert.GreaterOrEqual(t, sky.DHI, 0.0, "zenith %v", z)
		assert.InDelta(t, sky.GHI, sky.DNI*cosd(z)+sky.DHI, 1e-6, "zenith %v", z)
	}
}

func TestTotalIrradiance_HorizontalEqualsGHI(t *testing.T) {
	sky := Ineichen(30, RelativeAirmass(30), 3, 0, 0)

	irr := TotalIrradiance(Surface{Tilt: 0, Azimuth: 180, Albedo: DefaultAlbedo}, 30, 150, sky)

	assert.InDelta(t, sky.GHI, irr.POAGlobal, 1e-6)
	assert.Zero(t, irr.POAGroundDiffuse)
}

func TestTotalIrradiance_SunBehindPlane(t *testing.T) {
	sky := ClearSky{GHI: 800, DNI: 700, DHI: 100}
	southWall := Surface{Tilt: 90, Azimuth: 180, Albedo: DefaultAlbedo}

	irr := TotalIrradiance(southWall, 45, 0, sky) // sun due north

	assert.Zero(t, irr.POADirect)
	assert.InDelta(t, 50, irr.POASkyDiffuse, 1e-9)
	assert.InDelta(t, 100, irr.POAGroundDiffuse, 1e-9)
	assert.InDelta(t, 150, irr.POAGlobal, 1e-9)
}

func TestTurbidity_Monthly(t *testing.T) {
	tb := Turbidity{
		Constant: 9,
		Monthly:  []float64{2, 3, 4, 5, 6, 7, 8, 7, 6, 5, 4, 3},
	}

	assert.InDelta(t, 2, tb.At(time.Date(2023, 1, 16, 0, 0, 0, 0, time.UTC)), 0.1)
	assert.InDelta(t, 8, tb.At(time.Date(2023, 7, 16, 12, 0, 0, 0, time.UTC)), 0.1)

	// Jan 1 sits between mid-December (3) and mid-January (2)
	v := tb.At(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Greater(t, v, 2.0)
	assert.Less(t, v, 3.0)

	assert.Equal(t, 9.0, Turbidity{Constant: 9}.At(time.Now()))
}

func TestModel_Evaluate(t *testing.T) {
	m := Model{
		Site:      albany,
		Surface:   Surface{Tilt: 90, Azimuth: 180, Albedo: DefaultAlbedo},
		Turbidity: Turbidity{Constant: 3},
	}

	night := m.Evaluate(time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, Irradiance{}, night.Irradiance)

	noon := m.Evaluate(time.Date(2024, 12, 21, 12, 0, 0, 0, time.UTC))
	require.True(t, noon.Irradiance.Finite())
	assert.Greater(t, noon.Irradiance.POAGlobal, 500.0)
	assert.Greater(t, noon.Irradiance.POADirect, 0.0)
}
