package celestial

import (
	"fmt"
	"math"
)

// AnomalySolution holds the anomalies of a body on its orbit. Angles in radians.
type AnomalySolution struct {
	M          float64 // mean anomaly, not wrapped
	E          float64 // eccentric anomaly
	F          float64 // true (natural) anomaly in (-π, π]
	ArgPeri    float64 // argument of periapsis ω
	R          float64 // radial distance
	Iterations int     // Newton steps taken to find E
}

// String implements the Stringer interface.
func (a AnomalySolution) String() string {
	return fmt.Sprintf("ω=%.4f M=%.4f E=%.4f f=%.4f r=%.6f", Rad2deg(a.ArgPeri), Rad2deg(a.M), Rad2deg(a.E), Rad2deg(a.F), a.R)
}

// HeliocentricPosition is a position in the heliocentric ecliptic frame.
// Lon and Lat are in [0, 2π).
type HeliocentricPosition struct {
	X, Y, Z     float64
	R, Lon, Lat float64
}

// Vector returns the Cartesian coordinates.
func (h HeliocentricPosition) Vector() []float64 {
	return []float64{h.X, h.Y, h.Z}
}

// String implements the Stringer interface.
func (h HeliocentricPosition) String() string {
	return fmt.Sprintf("x=%.6f y=%.6f z=%.6f lon=%.4f lat=%.4f", h.X, h.Y, h.Z, Rad2deg(h.Lon), Rad2deg(h.Lat))
}

// ComputePosition solves the anomalies of p and returns the heliocentric
// ecliptic position, with the default solver budget.
func ComputePosition(p PropagatedElements) (AnomalySolution, HeliocentricPosition, error) {
	return ComputePositionWith(p, DefaultTolerance, DefaultMaxIterations)
}

// ComputePositionWith is ComputePosition with a caller supplied tolerance and iteration cap.
// The only runtime failure is a *ConvergenceError from the Kepler solver.
func ComputePositionWith(p PropagatedElements, tol float64, maxIterations int) (AnomalySolution, HeliocentricPosition, error) {
	var sol AnomalySolution
	sol.M = p.MeanAnomaly()
	E, it, err := solveKepler(sol.M, p.E, tol, maxIterations)
	sol.Iterations = it
	if err != nil {
		return sol, HeliocentricPosition{}, err
	}
	sol.E = E
	sol.F = SolveNaturalAnomaly(E, p.E)
	sol.ArgPeri = p.ArgPeriapsis()
	sol.R = p.A * (1 - p.E*math.Cos(E))

	R := Orbit2Ecliptic([]float64{sol.R, 0, 0}, sol.ArgPeri+sol.F, p.I, p.Ω)
	var pos HeliocentricPosition
	pos.X, pos.Y, pos.Z = R[0], R[1], R[2]
	pos.R, pos.Lon, pos.Lat = Cartesian2Spherical(R)
	return sol, pos, nil
}

// PositionAt propagates s to the Julian time jt and computes the position.
func PositionAt(s OrbitalElementSet, jt float64) (PropagatedElements, AnomalySolution, HeliocentricPosition, error) {
	p := s.Propagate(jt)
	sol, pos, err := ComputePosition(p)
	return p, sol, pos, err
}
