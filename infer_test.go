package osm2lanes

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func localeRight() Locale {
	return ResolveLocale("US", "")
}

func localeLeft() Locale {
	return ResolveLocale("GB", "")
}

func laneKinds(road *RoadLanes) [][2]string {
	kinds := make([][2]string, len(road.Lanes))
	for i, lane := range road.Lanes {
		kinds[i] = [2]string{lane.Type.String(), lane.Direction.String()}
	}
	return kinds
}

func TestResidentialDefault(t *testing.T) {
	tags := NewTags(map[string]string{"highway": "residential"})
	road, warnings, err := TagsToLanes(tags, localeRight())
	require.NoError(t, err)

	assert.Equal(t, [][2]string{
		{"driving", "backward"},
		{"driving", "forward"},
	}, laneKinds(road))
	require.Len(t, warnings, 1)
	assert.Equal(t, WARN_ASSUMED_DEFAULT, warnings[0].Code)
}

func TestOnewayExplicitLanes(t *testing.T) {
	tags := NewTags(map[string]string{"highway": "tertiary", "lanes": "3", "oneway": "yes"})
	road, warnings, err := TagsToLanes(tags, localeRight())
	require.NoError(t, err)

	assert.Empty(t, warnings)
	assert.True(t, road.Oneway)
	assert.Equal(t, [][2]string{
		{"driving", "forward"},
		{"driving", "forward"},
		{"driving", "forward"},
	}, laneKinds(road))
}

func TestParkingDrivingSideMirroring(t *testing.T) {
	kv := map[string]string{"highway": "residential", "lanes": "2", "parking:lane:right": "parallel"}

	road, _, err := TagsToLanes(NewTags(kv), localeRight())
	require.NoError(t, err)
	assert.Equal(t, [][2]string{
		{"driving", "backward"},
		{"driving", "forward"},
		{"parking", "forward"},
	}, laneKinds(road))

	mirrored, _, err := TagsToLanes(NewTags(kv), localeLeft())
	require.NoError(t, err)
	assert.Equal(t, [][2]string{
		{"driving", "forward"},
		{"driving", "backward"},
		{"parking", "backward"},
	}, laneKinds(mirrored))
}

func TestParkingShortScheme(t *testing.T) {
	tags := NewTags(map[string]string{"highway": "residential", "lanes": "2", "parking:right": "parallel"})
	road, warnings, err := TagsToLanes(tags, localeRight())
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, "parking", road.Lanes[len(road.Lanes)-1].Type.String())
}

func TestNotARoad(t *testing.T) {
	_, _, err := TagsToLanes(NewTags(map[string]string{"building": "yes"}), localeRight())
	require.Error(t, err)

	_, _, err = TagsToLanes(NewTags(map[string]string{"highway": "proposed"}), localeRight())
	require.Error(t, err)
}

func TestCyclewaySchemeConflict(t *testing.T) {
	tags := NewTags(map[string]string{
		"highway":        "residential",
		"cycleway":       "lane",
		"cycleway:right": "lane",
	})
	_, _, err := TagsToLanes(tags, localeRight())
	require.Error(t, err)
}

func TestBusSchemeConflict(t *testing.T) {
	tags := NewTags(map[string]string{
		"highway":   "primary",
		"lanes":     "4",
		"busway":    "lane",
		"bus:lanes": "designated|",
	})
	_, _, err := TagsToLanes(tags, localeRight())
	require.Error(t, err)
}

func TestBusway(t *testing.T) {
	tags := NewTags(map[string]string{"highway": "primary", "lanes": "4", "busway": "lane"})
	road, warnings, err := TagsToLanes(tags, localeRight())
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, [][2]string{
		{"bus", "backward"},
		{"driving", "backward"},
		{"driving", "forward"},
		{"bus", "forward"},
	}, laneKinds(road))
}

func TestBusOnlyRoad(t *testing.T) {
	tags := NewTags(map[string]string{"highway": "service", "lanes": "2", "access": "no", "bus": "yes"})
	road, warnings, err := TagsToLanes(tags, localeRight())
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, [][2]string{
		{"bus", "backward"},
		{"bus", "forward"},
	}, laneKinds(road))
}

func TestLaneCountRedistribution(t *testing.T) {
	tags := NewTags(map[string]string{
		"highway":        "secondary",
		"lanes":          "3",
		"lanes:forward":  "1",
		"lanes:backward": "1",
	})
	road, warnings, err := TagsToLanes(tags, localeRight())
	require.NoError(t, err)

	assert.Equal(t, 3, road.TravelLanes())
	codes := []WarningCode{}
	for _, warning := range warnings {
		codes = append(codes, warning.Code)
	}
	assert.Contains(t, codes, WARN_COUNT_MISMATCH)
}

func TestSharedLeftTurn(t *testing.T) {
	tags := NewTags(map[string]string{"highway": "secondary", "lanes": "3", "lanes:both_ways": "1"})
	road, warnings, err := TagsToLanes(tags, localeRight())
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, [][2]string{
		{"driving", "backward"},
		{"shared_left_turn", "both"},
		{"driving", "forward"},
	}, laneKinds(road))
}

func TestSingleLaneTwoWay(t *testing.T) {
	// A living street defaults to one lane but stays two-way: the lone lane
	// must not be mistaken for a oneway road, nor grow a backward lane when
	// the count is tagged explicitly.
	road, _, err := TagsToLanes(NewTags(map[string]string{"highway": "living_street"}), localeRight())
	require.NoError(t, err)
	assert.False(t, road.Oneway)
	assert.Equal(t, [][2]string{
		{"shoulder", "both"},
		{"driving", "forward"},
		{"shoulder", "both"},
	}, laneKinds(road))

	tagged, _, err := TagsToLanes(NewTags(map[string]string{"highway": "living_street", "lanes": "1"}), localeRight())
	require.NoError(t, err)
	assert.Equal(t, laneKinds(road), laneKinds(tagged))
}

func TestPartialLaneCountWarning(t *testing.T) {
	tags := NewTags(map[string]string{"highway": "secondary", "lanes:forward": "2"})
	road, warnings, err := TagsToLanes(tags, localeRight())
	require.NoError(t, err)
	assert.Equal(t, 3, road.TravelLanes())
	require.NotEmpty(t, warnings)
	assert.Equal(t, WARN_ASSUMED_DEFAULT, warnings[0].Code)
	assert.Equal(t, []TagKey{"lanes:backward"}, warnings[0].Keys)

	tags = NewTags(map[string]string{"highway": "secondary", "lanes:backward": "1"})
	_, warnings, err = TagsToLanes(tags, localeRight())
	require.NoError(t, err)
	require.NotEmpty(t, warnings)
	assert.Equal(t, WARN_ASSUMED_DEFAULT, warnings[0].Code)
	assert.Equal(t, []TagKey{"lanes:forward"}, warnings[0].Keys)
}

func TestReversibleOnewayDegrades(t *testing.T) {
	tags := NewTags(map[string]string{"highway": "primary", "lanes": "2", "oneway": "reversible"})
	road, warnings, err := TagsToLanes(tags, localeRight())
	require.NoError(t, err)
	assert.True(t, road.Oneway)
	require.NotEmpty(t, warnings)
	assert.Equal(t, WARN_CONFLICT_RESOLVED, warnings[0].Code)
}

func TestUnconsumedLaneRelatedKey(t *testing.T) {
	tags := NewTags(map[string]string{
		"highway":           "residential",
		"lanes":             "2",
		"lanes:psv:forward": "1",
	})
	_, warnings, err := TagsToLanes(tags, localeRight())
	require.NoError(t, err)
	require.NotEmpty(t, warnings)
	assert.Equal(t, WARN_UNCONSUMED_KEY, warnings[0].Code)
	assert.Equal(t, []TagKey{"lanes:psv:forward"}, warnings[0].Keys)
}

func TestIgnoredForeignKeys(t *testing.T) {
	tags := NewTags(map[string]string{
		"highway": "residential",
		"lanes":   "2",
		"name":    "Main Street",
		"surface": "asphalt",
	})
	_, warnings, err := TagsToLanes(tags, localeRight())
	require.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestBestEffortLocaleWarning(t *testing.T) {
	tags := NewTags(map[string]string{"highway": "residential", "lanes": "2"})
	_, warnings, err := TagsToLanes(tags, ResolveLocale("XX", ""))
	require.NoError(t, err)
	require.NotEmpty(t, warnings)
	assert.Equal(t, WARN_BEST_EFFORT_LOCALE, warnings[0].Code)
}

func TestWidths(t *testing.T) {
	tags := NewTags(map[string]string{"highway": "residential", "lanes": "2", "width": "8"})
	road, _, err := TagsToLanes(tags, localeRight())
	require.NoError(t, err)
	require.NotNil(t, road.Width)
	assert.InDelta(t, 8.0*feetToMetres, float64(*road.Width), 1e-9) // US defaults to feet

	road, _, err = TagsToLanes(tags, ResolveLocale("DE", ""))
	require.NoError(t, err)
	require.NotNil(t, road.Width)
	assert.InDelta(t, 8.0, float64(*road.Width), 1e-9)
}

func TestLaneWidthsList(t *testing.T) {
	tags := NewTags(map[string]string{
		"highway":     "residential",
		"lanes":       "2",
		"width:lanes": "2.5|3.5",
	})
	road, warnings, err := TagsToLanes(tags, ResolveLocale("DE", ""))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, road.Lanes, 2)
	require.NotNil(t, road.Lanes[0].Width)
	assert.InDelta(t, 2.5, float64(*road.Lanes[0].Width), 1e-9)
	require.NotNil(t, road.Lanes[1].Width)
	assert.InDelta(t, 3.5, float64(*road.Lanes[1].Width), 1e-9)
}

func TestDeterminism(t *testing.T) {
	kv := map[string]string{
		"highway":            "secondary",
		"lanes":              "4",
		"busway":             "lane",
		"sidewalk":           "both",
		"parking:lane:right": "parallel",
	}
	first, firstWarnings, err := TagsToLanes(NewTags(kv), localeRight())
	require.NoError(t, err)
	for i := 0; i < 25; i++ {
		road, warnings, err := TagsToLanes(NewTags(kv), localeRight())
		require.NoError(t, err)
		if !reflect.DeepEqual(first, road) || !reflect.DeepEqual(firstWarnings, warnings) {
			t.Fatalf("inference is not deterministic on run %d", i)
		}
	}
}

func TestErrorOnWarningsOption(t *testing.T) {
	engine := NewEngine(WithErrorOnWarnings(true))
	_, _, err := engine.TagsToLanes(NewTags(map[string]string{"highway": "residential"}), localeRight())
	require.Error(t, err)
}

func TestDefaultLanesOption(t *testing.T) {
	engine := NewEngine(WithDefaultLanes(map[string]int{"residential": 4}))
	road, _, err := engine.TagsToLanes(NewTags(map[string]string{"highway": "residential"}), localeRight())
	require.NoError(t, err)
	assert.Equal(t, 4, road.TravelLanes())
}

func TestCorpus(t *testing.T) {
	cases, err := LoadTestCases("testdata/tests.json")
	require.NoError(t, err)
	require.NotEmpty(t, cases)

	for _, tc := range cases {
		tc := tc
		t.Run(tc.Way, func(t *testing.T) {
			road, _, err := TagsToLanes(NewTags(tc.Tags), tc.Locale())
			require.NoError(t, err)
			require.Len(t, road.Lanes, len(tc.Output))
			for i := range tc.Output {
				assert.True(t, road.Lanes[i].sameKind(tc.Output[i]),
					"lane %d: got %s %s, want %s %s", i,
					road.Lanes[i].Type, road.Lanes[i].Direction,
					tc.Output[i].Type, tc.Output[i].Direction)
			}
		})
	}
}
