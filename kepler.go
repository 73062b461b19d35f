package celestial

import (
	"errors"
	"fmt"
	"math"
)

const (
	// DefaultTolerance is the absolute residual at which the Kepler solver stops.
	DefaultTolerance = 1e-9
	// DefaultMaxIterations is the number of Newton steps allowed by default.
	DefaultMaxIterations = 20
)

var (
	// ErrEccentricity is returned for eccentricities outside [0, 1).
	ErrEccentricity = errors.New("eccentricity must be in [0, 1)")
	// ErrSolverParams is returned for a non positive tolerance or iteration cap, or a non finite anomaly.
	ErrSolverParams = errors.New("invalid solver parameters")
)

// ConvergenceError is returned when the Newton iteration did not bring the
// residual under the tolerance within the allowed number of steps.
type ConvergenceError struct {
	Message       string
	Residual      float64 // last |E - e sin E - M|
	Tol           float64
	MaxIterations int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%s: residual %g > tolerance %g after %d iterations", e.Message, e.Residual, e.Tol, e.MaxIterations)
}

// PreconditionError flags inputs outside of the solver's domain.
type PreconditionError struct {
	Field string
	Value float64
	Err   error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s = %g: %s", e.Field, e.Value, e.Err)
}

func (e *PreconditionError) Unwrap() error {
	return e.Err
}

func checkEccentricity(e float64) error {
	if math.IsNaN(e) || e < 0 || e >= 1 {
		return &PreconditionError{"e", e, ErrEccentricity}
	}
	return nil
}

// highEccentricity is where the Newton starter moves away from E = M, which
// stalls past the iteration cap for e >= 0.98 and small |sin M|.
const highEccentricity = 0.8

// SolveEccentricAnomaly solves Kepler's equation M = E - e sin E for E with
// Newton-Raphson, starting at E = M (or M ± e for e >= 0.8). All angles in radians.
func SolveEccentricAnomaly(M, e, tol float64, maxIterations int) (float64, error) {
	E, _, err := solveKepler(M, e, tol, maxIterations)
	return E, err
}

// solveKepler also returns the number of Newton steps taken.
func solveKepler(M, e, tol float64, maxIterations int) (E float64, it int, err error) {
	if err = checkEccentricity(e); err != nil {
		return
	}
	if math.IsNaN(M) || math.IsInf(M, 0) {
		return 0, 0, &PreconditionError{"M", M, ErrSolverParams}
	}
	if !(tol > 0) {
		return 0, 0, &PreconditionError{"tol", tol, ErrSolverParams}
	}
	if maxIterations <= 0 {
		return 0, 0, &PreconditionError{"maxIterations", float64(maxIterations), ErrSolverParams}
	}
	E = M
	if e >= highEccentricity {
		E += math.Copysign(e, math.Sin(M))
	}
	residual := tol + 1
	for residual > tol {
		if it == maxIterations {
			return E, it, &ConvergenceError{"convergence failed", residual, tol, maxIterations}
		}
		it++
		E -= (E - e*math.Sin(E) - M) / (1 - e*math.Cos(E))
		residual = math.Abs(E - e*math.Sin(E) - M)
	}
	return E, it, nil
}

// SolveNaturalAnomaly returns the true anomaly for the eccentric anomaly E.
// The result is in (-π, π] and is not wrapped.
func SolveNaturalAnomaly(E, e float64) float64 {
	sinE, cosE := math.Sincos(E)
	denom := 1 - e*cosE
	xu := (cosE - e) / denom
	yu := math.Sqrt(1-e*e) * sinE / denom
	return math.Atan2(yu, xu)
}

// EccentricFromNatural returns the eccentric anomaly for the true anomaly f, in (-π, π].
func EccentricFromNatural(f, e float64) float64 {
	sinf, cosf := math.Sincos(f)
	return math.Atan2(math.Sqrt(1-e*e)*sinf, cosf+e)
}
