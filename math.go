package celestial

import (
	"math"

	"github.com/soniakeys/unit"
	"gonum.org/v1/gonum/floats"
)

const (
	twoπ = 2 * math.Pi
)

// Norm returns the Euclidean norm of a 3x1 vector.
func Norm(v []float64) float64 {
	return floats.Norm(v[:3], 2)
}

// Translate returns r shifted by dr.
func Translate(r, dr []float64) []float64 {
	o := make([]float64, 3)
	floats.AddTo(o, r[:3], dr[:3])
	return o
}

// Diff returns r - dr.
func Diff(r, dr []float64) []float64 {
	o := make([]float64, 3)
	floats.SubTo(o, r[:3], dr[:3])
	return o
}

// Cartesian2Spherical returns the radius, longitude and latitude of a
// Cartesian vector. Both angles are brought into [0, 2π) by adding 2π when
// negative, so a southern latitude comes back close to 2π.
// NOTE: the latitude is atan(z/ρ), not atan2, so it is bounded to ±π/2
// before wrapping and saturates to ±π/2 on the polar axis (ρ = 0).
func Cartesian2Spherical(a []float64) (r, lon, lat float64) {
	r = Norm(a)
	if r == 0 {
		return 0, 0, 0
	}
	lon = Wrap2π(math.Atan2(a[1], a[0]))
	lat = Wrap2π(math.Atan(a[2] / math.Hypot(a[0], a[1])))
	return
}

// Spherical2Cartesian is the inverse of Cartesian2Spherical for
// latitudes in [-π/2, π/2] (wrapped or not).
func Spherical2Cartesian(r, lon, lat float64) []float64 {
	sLon, cLon := math.Sincos(lon)
	sLat, cLat := math.Sincos(lat)
	return []float64{r * cLat * cLon, r * cLat * sLon, r * sLat}
}

// Deg2rad converts degrees to radians. Unlike PMod2π, no wrapping is applied.
func Deg2rad(a float64) float64 {
	return unit.AngleFromDeg(a).Rad()
}

// Rad2deg converts radians to degrees, no wrapping applied.
func Rad2deg(a float64) float64 {
	return unit.Angle(a).Deg()
}

// Wrap2π adds one turn to a negative angle. Angles in (-2π, 2π) end up in
// [0, 2π); anything further out is only shifted once.
func Wrap2π(a float64) float64 {
	if a < 0 {
		return a + twoπ
	}
	return a
}

// PMod2π returns a modulo 2π, always in [0, 2π).
func PMod2π(a float64) float64 {
	return unit.PMod(a, twoπ)
}
