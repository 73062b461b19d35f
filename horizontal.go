package celestial

import (
	"fmt"
	"math"
)

// degenerateε is the size under which both azimuth atan2 arguments are
// considered null (zenith or pole).
const degenerateε = 1e-12

// Horizontal coordinates, in radians.
type Horizontal struct {
	Altitude, Azimuth float64
}

// String implements the Stringer interface.
func (h Horizontal) String() string {
	return fmt.Sprintf("Az/Alt : %f/%f", Rad2deg(h.Azimuth), Rad2deg(h.Altitude))
}

// ToHorizontal converts the hour angle h and declination δ to altitude and
// azimuth for an observer at latitude φ. All angles in radians.
// The azimuth is π + atan2(...); when the direction is on the observer's
// vertical the azimuth is undefined and 0 is returned.
func ToHorizontal(h, δ, φ float64) Horizontal {
	sh, ch := math.Sincos(h)
	sδ, cδ := math.Sincos(δ)
	sφ, cφ := math.Sincos(φ)
	alt := math.Asin(math.Max(-1, math.Min(1, ch*cδ*cφ+sδ*sφ)))
	y := sh * cδ
	x := ch*cδ*sφ - sδ*cφ
	if math.Abs(x) < degenerateε && math.Abs(y) < degenerateε {
		return Horizontal{alt, 0}
	}
	return Horizontal{alt, math.Pi + math.Atan2(y, x)}
}

// HourAngle returns lst - ra, not wrapped.
func HourAngle(lst, ra float64) float64 {
	return lst - ra
}
