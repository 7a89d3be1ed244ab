package osm2lanes

import (
	"fmt"
)

// Engine Lane inference engine. Zero value is usable; options tweak the
// defaulting behaviour, not the rule semantics.
type Engine struct {
	inferredSidewalks bool
	errorOnWarnings   bool
	defaultLanes      map[string]int
}

// String Pretty printing for Engine parameters
func (engine *Engine) String() string {
	return fmt.Sprintf(`
Lane inference parameters:
	inferred_sidewalks?: %t
	error_on_warnings?: %t
	default_lanes: %v
	`,
		engine.inferredSidewalks,
		engine.errorOnWarnings,
		engine.defaultLanes,
	)
}

// NewEngine Creates inference engine with provided options
func NewEngine(options ...func(*Engine)) *Engine {
	engine := &Engine{
		inferredSidewalks: false,
		errorOnWarnings:   false,
	}
	for _, option := range options {
		option(engine)
	}
	return engine
}

// WithInferredSidewalks When enabled, roads without explicit sidewalk tagging
// get shoulders so pedestrians always have somewhere to be
func WithInferredSidewalks(inferredSidewalks bool) func(*Engine) {
	return func(engine *Engine) {
		engine.inferredSidewalks = inferredSidewalks
	}
}

// WithErrorOnWarnings Turns any accumulated warning into a hard error
func WithErrorOnWarnings(errorOnWarnings bool) func(*Engine) {
	return func(engine *Engine) {
		engine.errorOnWarnings = errorOnWarnings
	}
}

// WithDefaultLanes Overrides the built-in per-highway-class default lane
// counts, keyed by the raw 'highway' tag value
func WithDefaultLanes(defaultLanes map[string]int) func(*Engine) {
	return func(engine *Engine) {
		engine.defaultLanes = defaultLanes
	}
}

// TagsToLanes Runs the forward transform with default engine parameters
func TagsToLanes(tags *Tags, locale Locale) (*RoadLanes, Warnings, error) {
	return NewEngine().TagsToLanes(tags, locale)
}

// TagsToLanes From an OSM way's tags, determine the lanes along the road
// from left to right.
/*
	The call is a pure function of its inputs. Missing data never aborts and
	contradictory data never aborts unless irreconcilable; every degradation
	is reported as a Warning next to the result. A non-nil error means the
	input is structurally unusable and no result is produced at all.
*/
func (engine *Engine) TagsToLanes(tags *Tags, locale Locale) (*RoadLanes, Warnings, error) {
	rb := &roadBuilder{
		tags:   tags.clone(),
		locale: locale,
		engine: engine,
	}

	if locale.BestEffort {
		rb.warnings.push(
			WARN_BEST_EFFORT_LOCALE,
			fmt.Sprintf("unknown country '%s', assumed %s-hand traffic", locale.Country, locale.Side),
		)
	}

	if err := rb.resolveHighway(); err != nil {
		return nil, nil, err
	}

	for _, group := range inferencePipeline {
		if rb.done {
			break
		}
		if err := group.apply(rb); err != nil {
			return nil, nil, err
		}
	}

	road := &RoadLanes{
		Lanes:   assembleLTR(rb.fwdSide, rb.backSide, locale.Side),
		Width:   rb.width,
		Highway: rb.highway,
		Oneway:  rb.oneway,
		Locale:  locale,
	}
	rb.applyLaneWidths(road)

	if engine.errorOnWarnings && len(rb.warnings) > 0 {
		return nil, nil, newRoadError(fmt.Sprintf("%d warnings treated as errors: %s", len(rb.warnings), rb.warnings))
	}

	return road, rb.warnings, nil
}

// resolveHighway Classifies the way. The only unconditional abort of the
// whole engine lives here: ways that are not roads at all.
func (rb *roadBuilder) resolveHighway() error {
	highway, ok := rb.tags.Get("highway")
	if !ok {
		return newRoadError("way is not a road: no 'highway' tag", "highway")
	}
	if _, negligible := negligibleHighwayTags[highway]; negligible {
		return newRoadError(fmt.Sprintf("way is not a usable road: highway='%s'", highway), "highway")
	}
	rb.tags.MarkConsumed("highway")
	rb.highway = getHighwayType(highway)
	if rb.highway == 0 {
		rb.highway = HIGHWAY_UNCLASSIFIED
		rb.warnings.push(
			WARN_ASSUMED_DEFAULT,
			fmt.Sprintf("unrecognized highway class '%s', treated as unclassified", highway),
			"highway",
		)
	}
	return nil
}

// applyLaneWidths Distributes a 'width:lanes' list over the assembled lanes
func (rb *roadBuilder) applyLaneWidths(road *RoadLanes) {
	if len(rb.laneWidths) == 0 {
		return
	}
	if len(rb.laneWidths) != len(road.Lanes) {
		rb.warnings.push(
			WARN_COUNT_MISMATCH,
			fmt.Sprintf("'width:lanes' lists %d values for %d lanes, ignored", len(rb.laneWidths), len(road.Lanes)),
			"width:lanes",
		)
		return
	}
	for i := range road.Lanes {
		if rb.laneWidths[i] > 0 {
			width := rb.laneWidths[i]
			road.Lanes[i].Width = &width
		}
	}
}
