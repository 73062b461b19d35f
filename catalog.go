package celestial

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/soniakeys/unit"
)

// Column layout of the star catalog.
const (
	colName       = 1
	colRAHour     = 8
	colDecNS      = 11
	colDecDeg     = 12
	catalogFields = 15
)

// Star is a catalog entry in equatorial coordinates.
type Star struct {
	Name string
	RA   unit.RA
	Dec  unit.Angle
}

func (s Star) String() string {
	return fmt.Sprintf("%s (RA=%.4f° Dec=%.4f°)", s.Name, s.RA.Deg(), s.Dec.Deg())
}

// LoadStarCatalog reads the star catalog at path.
func LoadStarCatalog(path string) ([]Star, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open star catalog")
	}
	defer f.Close()
	stars, err := ReadStarCatalog(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return stars, nil
}

// ReadStarCatalog parses a comma separated catalog where fields may be quoted
// with '|'. The first record is a header. Records without a name are skipped.
// The declination is north for `N`, south for `S` and zero otherwise.
// Every '|' is read as a quote, so a literal '"' inside a field follows the
// double quote rules of encoding/csv (loosened by LazyQuotes) instead of
// being plain text.
func ReadStarCatalog(r io.Reader) ([]Star, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "could not read star catalog")
	}
	// encoding/csv only knows about double quotes.
	rdr := csv.NewReader(strings.NewReader(strings.ReplaceAll(string(raw), "|", `"`)))
	rdr.FieldsPerRecord = -1
	rdr.LazyQuotes = true
	var stars []Star
	for line := 1; ; line++ {
		record, err := rdr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		if line == 1 || len(record) <= colName || len(record[colName]) == 0 {
			continue
		}
		star, err := parseStar(record)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		stars = append(stars, star)
	}
	return stars, nil
}

func parseStar(record []string) (Star, error) {
	if len(record) < catalogFields {
		return Star{}, errors.Errorf("expected %d fields, got %d", catalogFields, len(record))
	}
	ra, err := parseSexa(record[colRAHour : colRAHour+3])
	if err != nil {
		return Star{}, errors.Wrap(err, "right ascension")
	}
	var dec float64
	switch strings.TrimSpace(record[colDecNS]) {
	case "N":
		dec, err = parseSexa(record[colDecDeg : colDecDeg+3])
	case "S":
		dec, err = parseSexa(record[colDecDeg : colDecDeg+3])
		dec = -dec
	}
	if err != nil {
		return Star{}, errors.Wrap(err, "declination")
	}
	return Star{
		Name: record[colName],
		RA:   unit.RAFromHour(ra),
		Dec:  unit.AngleFromDeg(dec),
	}, nil
}

// parseSexa returns a + b/60 + c/3600 for the three fields.
func parseSexa(fields []string) (float64, error) {
	var v float64
	for i, div := range []float64{1, 60, 3600} {
		f, err := strconv.ParseFloat(strings.TrimSpace(fields[i]), 64)
		if err != nil {
			return 0, err
		}
		v += f / div
	}
	return v, nil
}
