package celestial

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// R1 rotation of the frame about the 1st axis.
func R1(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{1, 0, 0, 0, c, s, 0, -s, c})
}

// R2 rotation of the frame about the 2nd axis.
func R2(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{c, 0, -s, 0, 1, 0, s, 0, c})
}

// R3 rotation of the frame about the 3rd axis.
func R3(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// MxV33 multiplies a matrix with a vector. Note that there is no dimension check!
func MxV33(m mat.Matrix, v []float64) []float64 {
	var rVec mat.VecDense
	rVec.MulVec(m, mat.NewVecDense(3, []float64{v[0], v[1], v[2]}))
	return []float64{rVec.AtVec(0), rVec.AtVec(1), rVec.AtVec(2)}
}

// The R1/R2/R3 matrices rotate the frame; rotating the vector itself by θ in
// the same frame is the frame rotation by -θ.

// RotateX rotates r counter-clockwise by angle about the X axis.
func RotateX(r []float64, angle float64) []float64 {
	return MxV33(R1(-angle), r)
}

// RotateY rotates r counter-clockwise by angle about the Y axis.
func RotateY(r []float64, angle float64) []float64 {
	return MxV33(R2(-angle), r)
}

// RotateZ rotates r counter-clockwise by angle about the Z axis.
func RotateZ(r []float64, angle float64) []float64 {
	return MxV33(R3(-angle), r)
}

// R3R1R3 returns the 3-1-3 rotation which takes a vector from the orbital
// plane (periapsis along X) to the reference plane.
// It equals R3(-Ω)·R1(-i)·R3(-u) for the argument of latitude u.
func R3R1R3(u, i, Ω float64) *mat.Dense {
	var r1r3, r3r1r3 mat.Dense
	r1r3.Mul(R1(-i), R3(-u))
	r3r1r3.Mul(R3(-Ω), &r1r3)
	return &r3r1r3
}

// Orbit2Ecliptic rotates the orbital-plane vector r by u about Z, then by the
// inclination about X, then by the node longitude about Z. The order matters.
func Orbit2Ecliptic(r []float64, u, i, Ω float64) []float64 {
	return MxV33(R3R1R3(u, i, Ω), r)
}
