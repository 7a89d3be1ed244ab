package osm2lanes

import (
	"fmt"
	"strings"
)

// Locale Regional conventions needed by lane inference.
/*
	Resolution never fails: an unknown country code produces the global
	default (right-hand driving, metric) flagged as best-effort, so callers
	can mention reduced confidence in warnings.
*/
type Locale struct {
	Country     string
	Subdivision string
	Side        DrivingSide
	Measurement MeasurementSystem
	BestEffort  bool
}

// String Pretty printing for Locale
func (locale Locale) String() string {
	region := locale.Country
	if locale.Subdivision != "" {
		region = fmt.Sprintf("%s-%s", locale.Country, locale.Subdivision)
	}
	return fmt.Sprintf("%s (%s-hand traffic, %s)", region, locale.Side, locale.Measurement)
}

// DrivingSide Side of the road traffic keeps to in this locale
func (locale Locale) DrivingSide() DrivingSide {
	return locale.Side
}

// MeasurementSystem Default measurement system of this locale
func (locale Locale) MeasurementSystem() MeasurementSystem {
	return locale.Measurement
}

// ResolveLocale Resolves a country code (ISO 3166-1 alpha-2) and optional
// subdivision code to regional conventions.
/*
	Precedence: subdivision override > country default > global default.
*/
func ResolveLocale(country, subdivision string) Locale {
	country = strings.ToUpper(strings.TrimSpace(country))
	subdivision = strings.ToUpper(strings.TrimSpace(subdivision))

	locale := Locale{
		Country:     country,
		Subdivision: subdivision,
		Side:        DRIVING_SIDE_RIGHT,
		Measurement: MEASUREMENT_METRIC,
	}

	_, known := knownCountries[country]
	if !known {
		locale.BestEffort = true
		return locale
	}

	if _, ok := leftDrivingCountries[country]; ok {
		locale.Side = DRIVING_SIDE_LEFT
	}
	if _, ok := imperialCountries[country]; ok {
		locale.Measurement = MEASUREMENT_IMPERIAL
	}

	if subdivision != "" {
		code := country + "-" + subdivision
		if override, ok := subdivisionDrivingSide[code]; ok {
			locale.Side = override
		}
		if override, ok := subdivisionMeasurement[code]; ok {
			locale.Measurement = override
		}
	}

	return locale
}
