package celestial

import (
	"fmt"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/unit"
)

// JulianTime is an instant expressed as Julian dates.
type JulianTime struct {
	JD  float64   // Julian date at 0h UT of the day
	JT  float64   // Julian date of the instant
	UTC time.Time // the instant itself, in UTC
}

// NewJulianTime returns the Julian time of dt (converted to UTC).
func NewJulianTime(dt time.Time) JulianTime {
	u := dt.UTC()
	jd := julian.CalendarGregorianToJD(u.Year(), int(u.Month()), float64(u.Day()))
	return JulianTime{JD: jd, JT: julian.TimeToJD(u), UTC: u}
}

// NewJulianTimeFromLocal returns the Julian time of a civil date and time read
// on a clock which is utcOffset seconds ahead of UTC.
func NewJulianTimeFromLocal(year int, month time.Month, day, hour, min, sec, utcOffset int) JulianTime {
	zone := time.FixedZone(fmt.Sprintf("UTC%+d", utcOffset), utcOffset)
	return NewJulianTime(time.Date(year, month, day, hour, min, sec, 0, zone))
}

// JulianTimeFromJD returns the Julian time of the Julian date jt.
func JulianTimeFromJD(jt float64) JulianTime {
	return NewJulianTime(julian.JDToTime(jt))
}

// Add returns the Julian time shifted by d.
func (j JulianTime) Add(d time.Duration) JulianTime {
	return NewJulianTime(j.UTC.Add(d))
}

// Local returns the instant on a clock utcOffset seconds ahead of UTC.
func (j JulianTime) Local(utcOffset int) time.Time {
	return j.UTC.In(time.FixedZone(fmt.Sprintf("UTC%+d", utcOffset), utcOffset))
}

// Centuries returns the Julian centuries elapsed since J2000.0.
func (j JulianTime) Centuries() float64 {
	return (j.JT - J2000) / JulianCentury
}

// LocalSiderealTime returns the mean sidereal time at the east longitude
// (in degrees), wrapped to one turn.
func (j JulianTime) LocalSiderealTime(longitude float64) unit.Angle {
	θ0 := sidereal.Mean(j.JT).Angle()
	return (θ0 + unit.AngleFromDeg(longitude)).Mod1()
}

// String implements the Stringer interface.
func (j JulianTime) String() string {
	return fmt.Sprintf("JT=%.6f (%s)", j.JT, j.UTC.Format(time.RFC3339))
}
