package celestial

import (
	"fmt"
	"math"
)

const (
	// J2000 is the Julian date of the J2000.0 epoch.
	J2000 = 2451545.0
	// JulianCentury is the number of days in a Julian century.
	JulianCentury = 36525.0
)

// OrbitalElementSet defines the mean orbital elements at J2000.0 and their
// linear rates. Angles are in degrees.
// All rates are per Julian century except LDot, which is per Julian day.
type OrbitalElementSet struct {
	A0, ADot         float64 // semi-major axis (AU)
	E0, EDot         float64 // eccentricity
	I0, IDot         float64 // inclination
	Ω0, ΩDot         float64 // longitude of the ascending node
	Varpi0, VarpiDot float64 // longitude of periapsis ϖ
	L0, LDot         float64 // mean longitude
}

// Validate returns an error if the epoch eccentricity is not elliptical.
func (s OrbitalElementSet) Validate() error {
	if err := checkEccentricity(s.E0); err != nil {
		return err
	}
	for _, v := range []float64{s.A0, s.ADot, s.EDot, s.I0, s.IDot, s.Ω0, s.ΩDot, s.Varpi0, s.VarpiDot, s.L0, s.LDot} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &PreconditionError{"element", v, ErrSolverParams}
		}
	}
	return nil
}

// Propagate returns the elements at the Julian time jt.
// NOTE: the mean longitude is advanced with the elapsed days and not with T,
// as the published daily mean motions are used for LDot.
func (s OrbitalElementSet) Propagate(jt float64) PropagatedElements {
	days := jt - J2000
	T := days / JulianCentury
	return PropagatedElements{
		JT:    jt,
		A:     s.A0 + s.ADot*T,
		E:     s.E0 + s.EDot*T,
		I:     Deg2rad(s.I0 + s.IDot*T),
		Ω:     Deg2rad(s.Ω0 + s.ΩDot*T),
		Varpi: Deg2rad(s.Varpi0 + s.VarpiDot*T),
		L:     Deg2rad(s.L0 + s.LDot*days),
	}
}

// PropagatedElements are the osculating elements at JT. Angles are in radians
// and are not wrapped.
type PropagatedElements struct {
	JT       float64
	A, E     float64
	I, Ω     float64
	Varpi, L float64
}

// MeanAnomaly returns L - ϖ, not wrapped.
func (p PropagatedElements) MeanAnomaly() float64 {
	return p.L - p.Varpi
}

// ArgPeriapsis returns ω = ϖ - Ω.
func (p PropagatedElements) ArgPeriapsis() float64 {
	return p.Varpi - p.Ω
}

// String implements the Stringer interface.
func (p PropagatedElements) String() string {
	return fmt.Sprintf("a=%.6f e=%.6f i=%.4f Ω=%.4f ϖ=%.4f L=%.4f", p.A, p.E, Rad2deg(p.I), Rad2deg(p.Ω), Rad2deg(p.Varpi), Rad2deg(PMod2π(p.L)))
}
