package osm2lanes

import (
	"math"
	"testing"
)

func TestParseMetre(t *testing.T) {
	cases := []struct {
		value       string
		measurement MeasurementSystem
		expected    float64
	}{
		{"3.5", MEASUREMENT_METRIC, 3.5},
		{"4", MEASUREMENT_METRIC, 4.0},
		{"3.5 m", MEASUREMENT_METRIC, 3.5},
		{"3.5m", MEASUREMENT_METRIC, 3.5},
		{"10", MEASUREMENT_IMPERIAL, 10 * feetToMetres},
		{"10 ft", MEASUREMENT_METRIC, 10 * feetToMetres},
		{"10ft", MEASUREMENT_IMPERIAL, 10 * feetToMetres},
		{"3.5 m", MEASUREMENT_IMPERIAL, 3.5},
		{"12'", MEASUREMENT_METRIC, 12 * feetToMetres},
		{"12'6\"", MEASUREMENT_METRIC, 12.5 * feetToMetres},
	}

	for _, c := range cases {
		got, err := parseMetre(c.value, c.measurement)
		if err != nil {
			t.Errorf("Value '%s' should parse, but got error: %v", c.value, err)
			continue
		}
		if math.Abs(float64(got)-c.expected) > 1e-9 {
			t.Errorf("Value '%s' (%s) should parse to %f, but got %f", c.value, c.measurement, c.expected, float64(got))
		}
	}
}

func TestParseMetreBadValues(t *testing.T) {
	for _, value := range []string{"", "wide", "3,5", "-2"} {
		if _, err := parseMetre(value, MEASUREMENT_METRIC); err == nil {
			t.Errorf("Value '%s' should not parse", value)
		}
	}
}
