package osm2lanes

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

// Divergence Round-trip mismatch: the lane a second inference pass produced
// differs from the first pass at Index. A non-nil Divergence points at a rule
// design defect, not at bad input.
type Divergence struct {
	Index int
	Got   *Lane
	Want  *Lane
	Dump  string
}

// String Pretty printing for Divergence
func (div *Divergence) String() string {
	return fmt.Sprintf("lane sequences diverge at index %d: got %v, want %v", div.Index, div.Got, div.Want)
}

// VerifyRoundTrip Composes the two engines and checks that
// tags -> lanes -> tags -> lanes is stable.
/*
	The two lane sequences are compared semantically (type and direction;
	widths are normalized away), not textually: synthesis canonicalizes, so
	the intermediate tag set may legitimately differ from the input tagging.
	A test-suite tool, not a production code path.
*/
func VerifyRoundTrip(tags *Tags, locale Locale, options ...func(*Engine)) (*Divergence, error) {
	engine := NewEngine(options...)

	first, _, err := engine.TagsToLanes(tags, locale)
	if err != nil {
		return nil, errors.Wrap(err, "first inference pass")
	}

	synthesized, err := LanesToTags(first, locale)
	if err != nil {
		return nil, errors.Wrap(err, "synthesis pass")
	}

	second, _, err := engine.TagsToLanes(synthesized, locale)
	if err != nil {
		return nil, errors.Wrap(err, "second inference pass")
	}

	return diffLanes(second.Lanes, first.Lanes), nil
}

// diffLanes Returns the first semantic difference between two lane sequences
func diffLanes(got, want []Lane) *Divergence {
	limit := len(got)
	if len(want) < limit {
		limit = len(want)
	}
	for i := 0; i < limit; i++ {
		if !got[i].sameKind(want[i]) {
			return &Divergence{
				Index: i,
				Got:   &got[i],
				Want:  &want[i],
				Dump:  spew.Sdump(got[i], want[i]),
			}
		}
	}
	if len(got) != len(want) {
		div := &Divergence{Index: limit, Dump: spew.Sdump(got, want)}
		if limit < len(got) {
			div.Got = &got[limit]
		}
		if limit < len(want) {
			div.Want = &want[limit]
		}
		return div
	}
	return nil
}
