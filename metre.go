package osm2lanes

import (
	"fmt"
	"regexp"
	"strconv"
)

const (
	feetToMetres = 0.3048

	// EUROPEAN AGREEMENT ON MAIN INTERNATIONAL TRAFFIC ARTERIES (AGR), III.1.1.1
	DEFAULT_LANE_WIDTH = Metre(3.5)
)

// Metre Physical width in metres
type Metre float64

// String Pretty printing for Metre
func (m Metre) String() string {
	return fmt.Sprintf("%.2f m", float64(m))
}

func newMetre(value float64) *Metre {
	m := Metre(value)
	return &m
}

var (
	metresRegExp    = regexp.MustCompile(`^(\d+\.?\d*)\s*(?:m|meters|metres)?$`)
	feetUnitRegExp  = regexp.MustCompile(`^(\d+\.?\d*)\s*(?:ft|feet)$`)
	feetQuoteRegExp = regexp.MustCompile(`^(\d+)'(?:(\d+\.?\d*)")?$`)
)

// parseMetre Parses an OSM width value into metres.
/*
	A bare number is taken in the unit the locale defaults to. Explicit units
	('m', 'ft', feet-and-inches quotes) win over the locale default.
*/
func parseMetre(value string, measurement MeasurementSystem) (Metre, error) {
	if match := feetUnitRegExp.FindStringSubmatch(value); match != nil {
		feet, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			return 0, err
		}
		return Metre(feet * feetToMetres), nil
	}
	if match := feetQuoteRegExp.FindStringSubmatch(value); match != nil {
		feet, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			return 0, err
		}
		if match[2] != "" {
			inches, err := strconv.ParseFloat(match[2], 64)
			if err != nil {
				return 0, err
			}
			feet += inches / 12.0
		}
		return Metre(feet * feetToMetres), nil
	}
	if match := metresRegExp.FindStringSubmatch(value); match != nil {
		num, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			return 0, err
		}
		// Bare number: unit depends on the regional default.
		if value == match[1] && measurement == MEASUREMENT_IMPERIAL {
			return Metre(num * feetToMetres), nil
		}
		return Metre(num), nil
	}
	return 0, fmt.Errorf("can not parse width value '%s'", value)
}
