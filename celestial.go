package celestial

import (
	"fmt"
	"strings"
)

// CelestialObject defines a body orbiting the Sun by its mean elements.
type CelestialObject struct {
	Name     string
	Elements OrbitalElementSet
}

// String implements the Stringer interface.
func (c CelestialObject) String() string {
	return c.Name + " body"
}

// PositionAt returns the heliocentric ecliptic position at the Julian time jt.
func (c CelestialObject) PositionAt(jt float64) (AnomalySolution, HeliocentricPosition, error) {
	_, sol, pos, err := PositionAt(c.Elements, jt)
	return sol, pos, err
}

// Planets returns the eight planets, from the Sun outwards.
func Planets() []CelestialObject {
	return []CelestialObject{Mercury, Venus, Earth, Mars, Jupiter, Saturn, Uranus, Neptune}
}

// CelestialObjectFromString returns the object from its name
func CelestialObjectFromString(name string) (CelestialObject, error) {
	for _, obj := range Planets() {
		if strings.EqualFold(obj.Name, strings.TrimSpace(name)) {
			return obj, nil
		}
	}
	return CelestialObject{}, fmt.Errorf("undefined planet '%s'", name)
}

// arcsec converts a rate in arcseconds per century to degrees per century.
func arcsec(a float64) float64 {
	return a / 3600
}

/* Definitions: J2000 mean elements. L rates are in degrees per day. */

// Mercury is the closest to the Sun.
var Mercury = CelestialObject{"Mercury", OrbitalElementSet{
	A0: 0.38709893, ADot: 0.00000066,
	E0: 0.20563069, EDot: 0.00002527,
	I0: 7.00487, IDot: arcsec(-23.51),
	Ω0: 48.33167, ΩDot: arcsec(-446.3),
	Varpi0: 77.45645, VarpiDot: arcsec(573.57),
	L0: 252.25084, LDot: 4.09233880,
}}

// Venus is poisonous.
var Venus = CelestialObject{"Venus", OrbitalElementSet{
	A0: 0.72333199, ADot: 0.00000092,
	E0: 0.00677323, EDot: -0.00004938,
	I0: 3.39471, IDot: arcsec(-2.86),
	Ω0: 76.68069, ΩDot: arcsec(-996.89),
	Varpi0: 131.53298, VarpiDot: arcsec(-108.80),
	L0: 181.97973, LDot: 1.60213047,
}}

// Earth is home.
var Earth = CelestialObject{"Earth", OrbitalElementSet{
	A0: 1.00000011, ADot: -0.00000005,
	E0: 0.01671022, EDot: -0.00003804,
	I0: 0.00005, IDot: arcsec(-46.94),
	Ω0: -11.26064, ΩDot: arcsec(-18228.25),
	Varpi0: 102.94719, VarpiDot: arcsec(1198.28),
	L0: 100.46436, LDot: 0.98560910,
}}

// Mars is the vacation place.
var Mars = CelestialObject{"Mars", OrbitalElementSet{
	A0: 1.52366231, ADot: -0.00007221,
	E0: 0.09341233, EDot: 0.00011902,
	I0: 1.85061, IDot: arcsec(-25.47),
	Ω0: 49.57854, ΩDot: arcsec(-1020.19),
	Varpi0: 336.04084, VarpiDot: arcsec(1560.78),
	L0: 355.45332, LDot: 0.52403304,
}}

// Jupiter is big.
var Jupiter = CelestialObject{"Jupiter", OrbitalElementSet{
	A0: 5.20336301, ADot: 0.00060737,
	E0: 0.04839266, EDot: -0.00012880,
	I0: 1.30530, IDot: arcsec(-4.15),
	Ω0: 100.55615, ΩDot: arcsec(1217.17),
	Varpi0: 14.75385, VarpiDot: arcsec(839.93),
	L0: 34.40438, LDot: 0.08308687,
}}

// Saturn floats and that's really cool.
var Saturn = CelestialObject{"Saturn", OrbitalElementSet{
	A0: 9.53707032, ADot: -0.00301530,
	E0: 0.05415060, EDot: -0.00036762,
	I0: 2.48446, IDot: arcsec(6.11),
	Ω0: 113.71504, ΩDot: arcsec(-1591.05),
	Varpi0: 92.43194, VarpiDot: arcsec(-1948.89),
	L0: 49.94432, LDot: 0.03346063,
}}

// Uranus is no joke.
var Uranus = CelestialObject{"Uranus", OrbitalElementSet{
	A0: 19.19126393, ADot: 0.00152025,
	E0: 0.04716771, EDot: -0.00019150,
	I0: 0.76986, IDot: arcsec(-2.09),
	Ω0: 74.22988, ΩDot: arcsec(1681.40),
	Varpi0: 170.96424, VarpiDot: arcsec(1312.56),
	L0: 313.23218, LDot: 0.01173129,
}}

// Neptune is the last one since Pluto got demoted.
var Neptune = CelestialObject{"Neptune", OrbitalElementSet{
	A0: 30.06896348, ADot: -0.00125196,
	E0: 0.00858587, EDot: 0.00002514,
	I0: 1.76917, IDot: arcsec(-3.64),
	Ω0: 131.72169, ΩDot: arcsec(-151.25),
	Varpi0: 44.97135, VarpiDot: arcsec(-844.43),
	L0: 304.88003, LDot: 0.00598106,
}}
