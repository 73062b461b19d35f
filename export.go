package celestial

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"
)

// WriteBodyReport writes the heliocentric ecliptic coordinates of each body.
func WriteBodyReport(w io.Writer, positions []BodyPosition) error {
	for _, bp := range positions {
		if _, err := fmt.Fprintf(w, "%s:\n", bp.Body); err != nil {
			return err
		}
		if bp.Err != nil {
			if _, err := fmt.Fprintf(w, "error                 : %s\n", bp.Err); err != nil {
				return err
			}
			continue
		}
		p := bp.Position
		_, err := fmt.Fprintf(w, `x (Hel. Ecliptic)     : %f
y (Hel. Ecliptic)     : %f
z (Hel. Ecliptic)     : %f
lon (Hel. Ecliptic)   : %f (%v)
lat (Hel. Ecliptic)   : %f (%v)
`, p.X, p.Y, p.Z, Rad2deg(p.Lon), sexa.FmtAngle(unit.Angle(p.Lon)), Rad2deg(p.Lat), sexa.FmtAngle(unit.Angle(p.Lat)))
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteBodyCSV writes one record per body. Angles are in degrees.
func WriteBodyCSV(w io.Writer, positions []BodyPosition) error {
	cw := csv.NewWriter(w)
	header := []string{"body", "jt", "a", "e", "i", "node", "peri", "M", "E", "f", "r", "x", "y", "z", "lon", "lat", "error"}
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "could not write CSV header")
	}
	f := func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	for _, bp := range positions {
		el, an, p := bp.Elements, bp.Anomaly, bp.Position
		record := []string{bp.Body, f(bp.JT), f(el.A), f(el.E), f(Rad2deg(el.I)), f(Rad2deg(el.Ω)), f(Rad2deg(el.Varpi))}
		if bp.Err != nil {
			record = append(record, "", "", "", "", "", "", "", "", "", bp.Err.Error())
		} else {
			record = append(record, f(Rad2deg(an.M)), f(Rad2deg(an.E)), f(Rad2deg(an.F)), f(an.R),
				f(p.X), f(p.Y), f(p.Z), f(Rad2deg(p.Lon)), f(Rad2deg(p.Lat)), "")
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrapf(err, "could not write %s", bp.Body)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteStarReport writes the azimuth and altitude of each star in degrees.
func WriteStarReport(w io.Writer, positions []StarPosition) error {
	for _, sp := range positions {
		h := sp.Horizontal
		_, err := fmt.Fprintf(w, "%s - Az/Alt : %f/%f (%v/%v)\n", sp.Star.Name, Rad2deg(h.Azimuth), Rad2deg(h.Altitude),
			sexa.FmtAngle(unit.Angle(h.Azimuth)), sexa.FmtAngle(unit.Angle(h.Altitude)))
		if err != nil {
			return err
		}
	}
	return nil
}
