package osm2lanes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var roundTripCases = []map[string]string{
	{"highway": "residential"},
	{"highway": "residential", "lanes": "2"},
	{"highway": "tertiary", "lanes": "3", "oneway": "yes"},
	{"highway": "secondary", "lanes": "3", "lanes:forward": "2", "lanes:backward": "1"},
	{"highway": "secondary", "lanes": "3", "lanes:both_ways": "1"},
	{"highway": "residential", "lanes": "2", "parking:lane:right": "parallel"},
	{"highway": "residential", "lanes": "2", "parking:lane:both": "parallel"},
	{"highway": "residential", "lanes": "2", "sidewalk": "both"},
	{"highway": "residential", "lanes": "2", "sidewalk": "right"},
	{"highway": "secondary", "lanes": "2", "cycleway:right": "lane"},
	{"highway": "secondary", "lanes": "2", "cycleway:both": "lane"},
	{"highway": "secondary", "lanes": "2", "cycleway:right": "lane", "cycleway:right:oneway": "no"},
	{"highway": "primary", "lanes": "4", "busway": "lane"},
	{"highway": "service", "lanes": "2", "access": "no", "bus": "yes"},
	{"highway": "footway"},
	{"highway": "steps"},
	{"highway": "cycleway"},
	{"highway": "residential", "lanes": "2", "width": "8", "sidewalk": "both"},
	{"highway": "living_street"},
}

func TestRoundTripStability(t *testing.T) {
	for _, locale := range []Locale{localeRight(), localeLeft()} {
		for _, kv := range roundTripCases {
			road, _, err := TagsToLanes(NewTags(kv), locale)
			if err != nil {
				t.Fatalf("inference failed for %v under %s: %v", kv, locale, err)
			}
			divergence, err := VerifyRoundTrip(NewTags(kv), locale)
			require.NoError(t, err, "round trip errored for %v under %s", kv, locale)
			if divergence != nil {
				t.Errorf("round trip diverged for %v (%s) under %s: %s", kv, road, locale, divergence)
			}
		}
	}
}

func TestRoundTripCorpus(t *testing.T) {
	cases, err := LoadTestCases("testdata/tests.json")
	require.NoError(t, err)

	for _, tc := range cases {
		divergence, err := VerifyRoundTrip(NewTags(tc.Tags), tc.Locale())
		require.NoError(t, err, "round trip errored for %q", tc.Way)
		if divergence != nil {
			t.Errorf("round trip diverged for %q: %s", tc.Way, divergence)
		}
	}
}

func TestDivergenceReporting(t *testing.T) {
	got := []Lane{forwardLane(LANE_DRIVING), forwardLane(LANE_BUS)}
	want := []Lane{forwardLane(LANE_DRIVING), forwardLane(LANE_DRIVING)}
	divergence := diffLanes(got, want)
	require.NotNil(t, divergence)
	require.Equal(t, 1, divergence.Index)
	require.NotNil(t, divergence.Got)
	require.NotNil(t, divergence.Want)
	require.NotEmpty(t, divergence.Dump)

	require.Nil(t, diffLanes(want, want))

	shorter := diffLanes(got[:1], want)
	require.NotNil(t, shorter)
	require.Equal(t, 1, shorter.Index)
}
