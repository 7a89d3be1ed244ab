package osm2lanes

import (
	"sort"
	"strings"

	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

// TagKey Key of an OSM tag. Qualifiers are colon-delimited, e.g. 'cycleway:right:oneway'
type TagKey string

// Qualify Appends one more qualifier part to the key
func (key TagKey) Qualify(parts ...string) TagKey {
	elems := append([]string{string(key)}, parts...)
	return TagKey(strings.Join(elems, ":"))
}

// Base Returns the first colon-delimited part of the key
func (key TagKey) Base() string {
	str := string(key)
	if idx := strings.Index(str, ":"); idx >= 0 {
		return str[:idx]
	}
	return str
}

// Tags Immutable set of OSM tags with consumption tracking.
/*
	Keys are unique. During inference every key that has been taken into
	account is marked consumed, so leftover lane-looking keys can be reported
	back to the caller.
*/
type Tags struct {
	values   map[TagKey]string
	consumed map[TagKey]struct{}
}

// NewTags Builds a tag set from a plain map
func NewTags(kv map[string]string) *Tags {
	tags := &Tags{
		values:   make(map[TagKey]string, len(kv)),
		consumed: make(map[TagKey]struct{}),
	}
	for k, v := range kv {
		tags.values[TagKey(k)] = v
	}
	return tags
}

// NewTagsChecked Builds a tag set from key/value pairs, rejecting duplicates
func NewTagsChecked(pairs [][2]string) (*Tags, error) {
	tags := &Tags{
		values:   make(map[TagKey]string, len(pairs)),
		consumed: make(map[TagKey]struct{}),
	}
	for _, pair := range pairs {
		key := TagKey(pair[0])
		if _, ok := tags.values[key]; ok {
			return nil, errors.Errorf("Duplicate tag key: '%s'", key)
		}
		tags.values[key] = pair[1]
	}
	return tags, nil
}

// TagsFromOSM Builds a tag set from paulmach/osm tags
func TagsFromOSM(osmTags osm.Tags) *Tags {
	tags := &Tags{
		values:   make(map[TagKey]string, len(osmTags)),
		consumed: make(map[TagKey]struct{}),
	}
	for _, tag := range osmTags {
		tags.values[TagKey(tag.Key)] = tag.Value
	}
	return tags
}

// Len Number of tags in the set
func (tags *Tags) Len() int {
	return len(tags.values)
}

// Get Returns value for given key and flag if the key is presented in the set
func (tags *Tags) Get(key TagKey) (string, bool) {
	value, ok := tags.values[key]
	return value, ok
}

// Value Returns value for given key ignoring its presence
func (tags *Tags) Value(key TagKey) string {
	return tags.values[key]
}

// Has Checks if the key is presented in the set
func (tags *Tags) Has(key TagKey) bool {
	_, ok := tags.values[key]
	return ok
}

// Is Checks if the key is presented and carries exactly the given value
func (tags *Tags) Is(key TagKey, value string) bool {
	found, ok := tags.values[key]
	return ok && found == value
}

// IsAny Checks if the key is presented and carries one of the given values
func (tags *Tags) IsAny(key TagKey, values []string) bool {
	found, ok := tags.values[key]
	if !ok {
		return false
	}
	for i := range values {
		if found == values[i] {
			return true
		}
	}
	return false
}

// Keys Returns all keys in deterministic (lexicographic) order
func (tags *Tags) Keys() []TagKey {
	keys := make([]TagKey, 0, len(tags.values))
	for k := range tags.values {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Subset Returns a new tag set limited to the given keys (missing ones are skipped)
func (tags *Tags) Subset(keys []TagKey) *Tags {
	sub := &Tags{
		values:   make(map[TagKey]string),
		consumed: make(map[TagKey]struct{}),
	}
	for _, key := range keys {
		if value, ok := tags.values[key]; ok {
			sub.values[key] = value
		}
	}
	return sub
}

// ByPrefix Returns all keys whose base or full text starts with the given prefix
func (tags *Tags) ByPrefix(prefix string) []TagKey {
	keys := []TagKey{}
	for _, key := range tags.Keys() {
		if strings.HasPrefix(string(key), prefix) {
			keys = append(keys, key)
		}
	}
	return keys
}

// MarkConsumed Marks keys as taken into account by inference
func (tags *Tags) MarkConsumed(keys ...TagKey) {
	for _, key := range keys {
		if _, ok := tags.values[key]; ok {
			tags.consumed[key] = struct{}{}
		}
	}
}

// Unconsumed Returns all keys not marked consumed, in deterministic order
func (tags *Tags) Unconsumed() []TagKey {
	keys := []TagKey{}
	for _, key := range tags.Keys() {
		if _, ok := tags.consumed[key]; !ok {
			keys = append(keys, key)
		}
	}
	return keys
}

// Map Returns a plain map copy of the tag set
func (tags *Tags) Map() map[string]string {
	out := make(map[string]string, len(tags.values))
	for k, v := range tags.values {
		out[string(k)] = v
	}
	return out
}

// clone Returns a deep copy with fresh consumption state
func (tags *Tags) clone() *Tags {
	cloned := &Tags{
		values:   make(map[TagKey]string, len(tags.values)),
		consumed: make(map[TagKey]struct{}),
	}
	for k, v := range tags.values {
		cloned.values[k] = v
	}
	return cloned
}
