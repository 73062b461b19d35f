package celestial

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestPropagateAtEpoch(t *testing.T) {
	s := Mars.Elements
	p := s.Propagate(J2000)
	if p.JT != J2000 || p.A != s.A0 || p.E != s.E0 {
		t.Fatalf("elements changed at epoch: %+v", p)
	}
	for _, c := range []struct{ got, deg float64 }{
		{p.I, s.I0}, {p.Ω, s.Ω0}, {p.Varpi, s.Varpi0}, {p.L, s.L0},
	} {
		if c.got != Deg2rad(c.deg) {
			t.Fatalf("%f != %f", Rad2deg(c.got), c.deg)
		}
	}
}

func TestPropagateRates(t *testing.T) {
	s := OrbitalElementSet{
		A0: 1, ADot: 0.5,
		E0: 0.1, EDot: 0.01,
		I0: 2, IDot: 1,
		Ω0: 10, ΩDot: -3,
		Varpi0: 20, VarpiDot: 4,
		L0: 30, LDot: 0.25,
	}
	jt := J2000 + JulianCentury
	p := s.Propagate(jt)
	for _, c := range []struct {
		name      string
		got, want float64
	}{
		{"a", p.A, 1.5},
		{"e", p.E, 0.11},
		{"i", Rad2deg(p.I), 3},
		{"Ω", Rad2deg(p.Ω), 7},
		{"ϖ", Rad2deg(p.Varpi), 24},
		// L advances per day.
		{"L", Rad2deg(p.L), 30 + 0.25*JulianCentury},
	} {
		if !scalar.EqualWithinAbs(c.got, c.want, 1e-9) {
			t.Fatalf("%s = %f, expected %f", c.name, c.got, c.want)
		}
	}
	if !scalar.EqualWithinAbs(p.MeanAnomaly(), Deg2rad(30+0.25*JulianCentury-24), 1e-9) {
		t.Fatalf("M = %f", p.MeanAnomaly())
	}
	if !scalar.EqualWithinAbs(p.ArgPeriapsis(), Deg2rad(17), 1e-12) {
		t.Fatalf("ω = %f", p.ArgPeriapsis())
	}
	// Going backwards in time.
	p = s.Propagate(J2000 - JulianCentury/2)
	if !scalar.EqualWithinAbs(p.A, 0.75, 1e-12) || !scalar.EqualWithinAbs(Rad2deg(p.L), 30-0.25*JulianCentury/2, 1e-9) {
		t.Fatalf("backward propagation: %+v", p)
	}
}

func TestElementsValidate(t *testing.T) {
	for _, obj := range Planets() {
		if err := obj.Elements.Validate(); err != nil {
			t.Fatalf("%s: %s", obj, err)
		}
	}
	s := Earth.Elements
	s.E0 = 1
	if err := s.Validate(); !errors.Is(err, ErrEccentricity) {
		t.Fatalf("expected ErrEccentricity, got %v", err)
	}
	s = Earth.Elements
	s.L0 = math.NaN()
	if err := s.Validate(); !errors.Is(err, ErrSolverParams) {
		t.Fatalf("expected ErrSolverParams, got %v", err)
	}
}
