package osm2lanes

import (
	"testing"
)

func TestResolveLocale(t *testing.T) {
	cases := []struct {
		country     string
		subdivision string
		side        DrivingSide
		measurement MeasurementSystem
		bestEffort  bool
	}{
		{"DE", "", DRIVING_SIDE_RIGHT, MEASUREMENT_METRIC, false},
		{"US", "", DRIVING_SIDE_RIGHT, MEASUREMENT_IMPERIAL, false},
		{"GB", "", DRIVING_SIDE_LEFT, MEASUREMENT_IMPERIAL, false},
		{"JP", "", DRIVING_SIDE_LEFT, MEASUREMENT_METRIC, false},
		{"US", "VI", DRIVING_SIDE_LEFT, MEASUREMENT_IMPERIAL, false},
		{"US", "CA", DRIVING_SIDE_RIGHT, MEASUREMENT_IMPERIAL, false},
		{"", "", DRIVING_SIDE_RIGHT, MEASUREMENT_METRIC, true},
		{"XX", "", DRIVING_SIDE_RIGHT, MEASUREMENT_METRIC, true},
	}

	for _, c := range cases {
		locale := ResolveLocale(c.country, c.subdivision)
		if locale.Side != c.side {
			t.Errorf("Driving side for '%s'/'%s' should be %s, but got %s", c.country, c.subdivision, c.side, locale.Side)
		}
		if locale.Measurement != c.measurement {
			t.Errorf("Measurement system for '%s'/'%s' should be %s, but got %s", c.country, c.subdivision, c.measurement, locale.Measurement)
		}
		if locale.BestEffort != c.bestEffort {
			t.Errorf("Best effort flag for '%s'/'%s' should be %t, but got %t", c.country, c.subdivision, c.bestEffort, locale.BestEffort)
		}
	}
}

func TestResolveLocaleNormalization(t *testing.T) {
	locale := ResolveLocale(" us ", "vi")
	if locale.Country != "US" || locale.Subdivision != "VI" {
		t.Errorf("Codes should be normalized to upper case, but got '%s'/'%s'", locale.Country, locale.Subdivision)
	}
	if locale.Side != DRIVING_SIDE_LEFT {
		t.Errorf("Driving side for normalized 'US-VI' should be %s, but got %s", DRIVING_SIDE_LEFT, locale.Side)
	}
}

func TestDrivingSideOpposite(t *testing.T) {
	if DRIVING_SIDE_RIGHT.Opposite() != DRIVING_SIDE_LEFT {
		t.Errorf("Opposite of right should be left")
	}
	if DRIVING_SIDE_LEFT.Opposite() != DRIVING_SIDE_RIGHT {
		t.Errorf("Opposite of left should be right")
	}
}
