package celestial

import (
	"fmt"

	"github.com/soniakeys/unit"
)

// Observer defines a location on the Earth's surface.
type Observer struct {
	Name        string
	LatΦ, Longθ float64 // these are stored in radians!
	UTCOffset   int     // observer clock offset from UTC in seconds
	Elevation   float64 // minimum altitude for a target to be visible, radians
}

func (o Observer) String() string {
	return fmt.Sprintf("%s (%f,%f); UTC%+ds; el = %f deg", o.Name, Rad2deg(o.LatΦ), Rad2deg(o.Longθ), o.UTCOffset, Rad2deg(o.Elevation))
}

// NewObserver returns a new observer. Angles in degrees, longitude east positive.
func NewObserver(name string, latΦ, longθ, elevation float64, utcOffset int) Observer {
	return Observer{name, Deg2rad(latΦ), Deg2rad(longθ), utcOffset, Deg2rad(elevation)}
}

// ObserverFromConfig returns the observer defined in the configuration.
func ObserverFromConfig(c Config) Observer {
	return NewObserver("observer", c.Latitude, c.Longitude, c.MinElevation, c.UTCOffset)
}

// LocalSiderealTime returns the mean sidereal time at the observer.
func (o Observer) LocalSiderealTime(jt JulianTime) unit.Angle {
	return jt.LocalSiderealTime(Rad2deg(o.Longθ))
}

// AltAz returns the horizontal coordinates of s at jt, and whether it is
// above the elevation mask.
func (o Observer) AltAz(s Star, jt JulianTime) (Horizontal, bool) {
	h := HourAngle(o.LocalSiderealTime(jt).Rad(), s.RA.Rad())
	hz := ToHorizontal(h, s.Dec.Rad(), o.LatΦ)
	return hz, o.Visible(hz)
}

// Visible returns whether the altitude is at or above the elevation mask.
func (o Observer) Visible(hz Horizontal) bool {
	return hz.Altitude >= o.Elevation
}
