package celestial

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestTranslateDiff(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, 5, 6}
	if !vectorsEqual(Translate(a, b), []float64{5, 7, 9}) {
		t.Fatalf("translate failed: %+v", Translate(a, b))
	}
	if !vectorsEqual(Diff(a, b), []float64{-3, -3, -3}) {
		t.Fatalf("diff failed: %+v", Diff(a, b))
	}
	if !vectorsEqual(a, []float64{1, 2, 3}) || !vectorsEqual(b, []float64{4, 5, 6}) {
		t.Fatal("inputs were modified")
	}
	if Norm([]float64{3, 4, 12}) != 13 {
		t.Fatal("norm failed")
	}
}

func TestAngles(t *testing.T) {
	if !scalar.EqualWithinAbs(Deg2rad(180), math.Pi, 1e-15) {
		t.Fatal("180 deg != π")
	}
	// No wrapping in plain conversions.
	if !scalar.EqualWithinAbs(Deg2rad(-90), -math.Pi/2, 1e-15) {
		t.Fatal("-90 deg != -π/2")
	}
	if !scalar.EqualWithinAbs(Deg2rad(720), 4*math.Pi, 1e-14) {
		t.Fatal("720 deg != 4π")
	}
	for i := -720.0; i <= 720; i += 0.5 {
		if !scalar.EqualWithinAbs(Rad2deg(Deg2rad(i)), i, 1e-10) {
			t.Fatalf("incorrect conversion for %3.2f", i)
		}
	}
}

func TestWrap(t *testing.T) {
	for _, c := range []struct{ in, exp float64 }{
		{0, 0},
		{1, 1},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{-1e-12, 2*math.Pi - 1e-12},
	} {
		if got := Wrap2π(c.in); !scalar.EqualWithinAbs(got, c.exp, 1e-15) {
			t.Fatalf("Wrap2π(%f) = %f != %f", c.in, got, c.exp)
		}
	}
	if got := PMod2π(-7 * math.Pi / 2); !scalar.EqualWithinAbs(got, math.Pi/2, 1e-12) {
		t.Fatalf("PMod2π(-7π/2) = %f", got)
	}
	if got := PMod2π(5 * math.Pi); !scalar.EqualWithinAbs(got, math.Pi, 1e-12) {
		t.Fatalf("PMod2π(5π) = %f", got)
	}
}

func TestCartesian2Spherical(t *testing.T) {
	for _, c := range []struct {
		v           []float64
		r, lon, lat float64
	}{
		{[]float64{1, 0, 0}, 1, 0, 0},
		{[]float64{0, 2, 0}, 2, math.Pi / 2, 0},
		{[]float64{0, -1, 0}, 1, 3 * math.Pi / 2, 0},
		{[]float64{1, 0, 1}, math.Sqrt2, 0, math.Pi / 4},
		{[]float64{1, 0, -1}, math.Sqrt2, 0, 2*math.Pi - math.Pi/4},
		{[]float64{-1, -1, 0}, math.Sqrt2, 5 * math.Pi / 4, 0},
		{[]float64{0, 0, 1}, 1, 0, math.Pi / 2},
		{[]float64{0, 0, -1}, 1, 0, 3 * math.Pi / 2},
		{[]float64{0, 0, 0}, 0, 0, 0},
	} {
		r, lon, lat := Cartesian2Spherical(c.v)
		if !scalar.EqualWithinAbs(r, c.r, 1e-12) || !scalar.EqualWithinAbs(lon, c.lon, 1e-12) || !scalar.EqualWithinAbs(lat, c.lat, 1e-12) {
			t.Fatalf("%+v: got (%f, %f, %f) exp (%f, %f, %f)", c.v, r, lon, lat, c.r, c.lon, c.lat)
		}
		if lon < 0 || lon >= 2*math.Pi || lat < 0 || lat >= 2*math.Pi {
			t.Fatalf("%+v: angles not wrapped", c.v)
		}
	}
}

func TestSpherical2Cartesian(t *testing.T) {
	v := []float64{-0.13008890590004588, -0.44728996174959307, -0.024597397361091698}
	r, lon, lat := Cartesian2Spherical(v)
	if back := Spherical2Cartesian(r, lon, lat); !vectorsEqual(back, v) {
		t.Fatalf("round trip failed:\n%+v\n%+v", back, v)
	}
}
