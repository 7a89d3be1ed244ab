package osm2lanes

import (
	"os"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// TestCase Single entry of the shared lane-transform test corpus.
/*
	The corpus format follows the upstream osm2lanes data/tests.json layout:
	raw way tags, a driving side (or country), and the expected lane
	sequence left to right.
*/
type TestCase struct {
	Way         string            `json:"way,omitempty"`
	Comment     string            `json:"comment,omitempty"`
	Tags        map[string]string `json:"tags"`
	DrivingSide string            `json:"driving_side,omitempty"`
	Country     string            `json:"country,omitempty"`
	Output      []Lane            `json:"output"`
}

// Locale Resolves the locale the case should run under
func (tc TestCase) Locale() Locale {
	if tc.Country != "" {
		return ResolveLocale(tc.Country, "")
	}
	locale := ResolveLocale("", "")
	if side := getDrivingSide(tc.DrivingSide); side != 0 {
		locale.Side = side
		locale.BestEffort = false
	}
	return locale
}

// LoadTestCases Reads a corpus file into engine types
func LoadTestCases(path string) ([]TestCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "Corpus file open")
	}
	cases := []TestCase{}
	if err := json.Unmarshal(data, &cases); err != nil {
		return nil, errors.Wrap(err, "Corpus file decode")
	}
	return cases, nil
}
