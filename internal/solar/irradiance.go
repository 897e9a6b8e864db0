// internal/solar/irradiance.go
package solar

import "math"

// DefaultAlbedo is the ground reflectance used when none is configured.
const DefaultAlbedo = 0.25

// Surface is a tilted receiving plane.
type Surface struct {
	Tilt    float64 // degrees from horizontal
	Azimuth float64 // degrees clockwise from north
	Albedo  float64
}

// Irradiance is plane-of-array irradiance in W/m².
// Field order is the published JSON key order.
type Irradiance struct {
	POAGlobal        float64 `json:"poa_global"`
	POADirect        float64 `json:"poa_direct"`
	POADiffuse       float64 `json:"poa_diffuse"`
	POASkyDiffuse    float64 `json:"poa_sky_diffuse"`
	POAGroundDiffuse float64 `json:"poa_ground_diffuse"`
}

// AOI returns the angle of incidence (degrees) between the sun and the
// surface normal.
func AOI(s Surface, zenith, azimuth float64) float64 {
	proj := cosd(s.Tilt)*cosd(zenith) +
		sind(s.Tilt)*sind(zenith)*cosd(azimuth-s.Azimuth)
	return acosd(proj)
}

// TotalIrradiance transposes GHI/DNI/DHI onto the surface using the
// isotropic sky diffuse model.
func TotalIrradiance(s Surface, zenith, azimuth float64, sky ClearSky) Irradiance {
	direct := math.Max(sky.DNI*cosd(AOI(s, zenith, azimuth)), 0)
	skyDiffuse := sky.DHI * (1 + cosd(s.Tilt)) / 2
	ground := sky.GHI * s.Albedo * (1 - cosd(s.Tilt)) / 2

	diffuse := skyDiffuse + ground

	return Irradiance{
		POAGlobal:        direct + diffuse,
		POADirect:        direct,
		POADiffuse:       diffuse,
		POASkyDiffuse:    skyDiffuse,
		POAGroundDiffuse: ground,
	}
}

// Finite reports whether every component is a real number.
func (i Irradiance) Finite() bool {
	for _, v := range i.Values() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Values returns the components in published order.
func (i Irradiance) Values() []float64 {
	return []float64{
		i.POAGlobal,
		i.POADirect,
		i.POADiffuse,
		i.POASkyDiffuse,
		i.POAGroundDiffuse,
	}
}
