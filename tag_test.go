package osm2lanes

import (
	"testing"

	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagKeyQualify(t *testing.T) {
	assert.Equal(t, TagKey("cycleway:right"), TagKey("cycleway").Qualify("right"))
	assert.Equal(t, TagKey("cycleway:right:oneway"), TagKey("cycleway").Qualify("right", "oneway"))
	assert.Equal(t, "cycleway", TagKey("cycleway:right:oneway").Base())
	assert.Equal(t, "highway", TagKey("highway").Base())
}

func TestTagsChecked(t *testing.T) {
	tags, err := NewTagsChecked([][2]string{
		{"highway", "residential"},
		{"lanes", "2"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, tags.Len())

	_, err = NewTagsChecked([][2]string{
		{"highway", "residential"},
		{"highway", "service"},
	})
	require.Error(t, err)
}

func TestTagsLookups(t *testing.T) {
	tags := NewTags(map[string]string{
		"highway":       "residential",
		"lanes":         "2",
		"cycleway:left": "lane",
	})

	value, ok := tags.Get("lanes")
	assert.True(t, ok)
	assert.Equal(t, "2", value)
	assert.Equal(t, "", tags.Value("oneway"))
	assert.True(t, tags.Has("cycleway:left"))
	assert.True(t, tags.Is("highway", "residential"))
	assert.False(t, tags.Is("highway", "service"))
	assert.True(t, tags.IsAny("highway", []string{"service", "residential"}))
	assert.False(t, tags.IsAny("highway", []string{"service", "track"}))

	assert.Equal(t, []TagKey{"cycleway:left", "highway", "lanes"}, tags.Keys())
	assert.Equal(t, []TagKey{"cycleway:left"}, tags.ByPrefix("cycleway"))

	sub := tags.Subset([]TagKey{"highway", "oneway"})
	assert.Equal(t, 1, sub.Len())
	assert.True(t, sub.Has("highway"))
}

func TestTagsConsumption(t *testing.T) {
	tags := NewTags(map[string]string{
		"highway": "residential",
		"lanes":   "2",
		"name":    "Main Street",
	})
	tags.MarkConsumed("highway", "lanes", "oneway")
	assert.Equal(t, []TagKey{"name"}, tags.Unconsumed())

	// A clone starts with fresh consumption state.
	cloned := tags.clone()
	assert.Len(t, cloned.Unconsumed(), 3)
}

func TestTagsFromOSM(t *testing.T) {
	tags := TagsFromOSM(osm.Tags{
		{Key: "highway", Value: "residential"},
		{Key: "lanes", Value: "2"},
	})
	assert.True(t, tags.Is("highway", "residential"))
	assert.True(t, tags.Is("lanes", "2"))
}
