package osm2lanes

// bicycleRule Cycle lane tagging.
/*
	The generic 'cycleway' key and the side-qualified 'cycleway:left/right/
	both' keys are mutually exclusive; both present at once has no defined
	precedence and aborts inference. The side qualifiers are resolved through
	the locale driving side: on a right-hand-traffic road 'cycleway:right'
	runs with the way, 'cycleway:left' against it, and mirrored for
	left-hand traffic.
*/
type bicycleRule struct{}

func (bicycleRule) name() string { return "bicycle" }

var cyclewayLaneValues = []string{"lane", "track"}

func (bicycleRule) apply(rb *roadBuilder) error {
	cycleway := TagKey("cycleway")
	fwdKey := cycleway.Qualify(rb.locale.Side.TagPart())
	backKey := cycleway.Qualify(rb.locale.Side.Opposite().TagPart())

	rb.tags.MarkConsumed(
		cycleway,
		cycleway.Qualify("both"),
		cycleway.Qualify("left"),
		cycleway.Qualify("right"),
		cycleway.Qualify("left", "oneway"),
		cycleway.Qualify("right", "oneway"),
		"oneway:bicycle",
	)

	switch {
	case rb.tags.IsAny(cycleway, cyclewayLaneValues):
		if rb.tags.IsAny(cycleway.Qualify("both"), cyclewayLaneValues) ||
			rb.tags.IsAny(cycleway.Qualify("left"), cyclewayLaneValues) ||
			rb.tags.IsAny(cycleway.Qualify("right"), cyclewayLaneValues) {
			return newRoadError("cycleway=* can not be combined with side-qualified cycleway:* tagging", cycleway)
		}
		rb.pushForward(forwardLane(LANE_BICYCLE))
		if rb.oneway {
			if len(rb.backSide) != 0 {
				rb.warnings.push(WARN_CONFLICT_RESOLVED, "oneway road has backward lanes when adding cycleways", "oneway", cycleway)
			}
		} else {
			rb.pushBackward(backwardLane(LANE_BICYCLE))
		}

	case rb.tags.IsAny(cycleway.Qualify("both"), cyclewayLaneValues):
		rb.pushForward(forwardLane(LANE_BICYCLE))
		if rb.oneway {
			rb.warnings.push(WARN_CONFLICT_RESOLVED, "cycleway:both on a oneway road, kept the forward lane only", "oneway", cycleway.Qualify("both"))
		} else {
			rb.pushBackward(backwardLane(LANE_BICYCLE))
		}

	default:
		// cycleway=opposite_lane
		if rb.tags.Is(cycleway, "opposite_lane") {
			rb.warnings.push(WARN_DEPRECATED_TAG, "cycleway=opposite_lane is deprecated", cycleway)
			rb.pushBackward(backwardLane(LANE_BICYCLE))
		}
		// cycleway on the driving side runs forward
		if rb.tags.IsAny(fwdKey, cyclewayLaneValues) {
			if rb.tags.Is(fwdKey.Qualify("oneway"), "no") || rb.tags.Is("oneway:bicycle", "no") {
				rb.pushForward(bothWaysLane(LANE_BICYCLE))
			} else {
				rb.pushForward(forwardLane(LANE_BICYCLE))
			}
		}
		if rb.tags.IsAny(fwdKey, []string{"opposite_lane", "opposite_track"}) {
			rb.warnings.push(WARN_DEPRECATED_TAG, "side-qualified cycleway=opposite_lane is deprecated", fwdKey)
			rb.pushForward(backwardLane(LANE_BICYCLE))
		}
		// cycleway on the non-driving side
		if rb.tags.IsAny(backKey, cyclewayLaneValues) {
			switch {
			case rb.tags.Is(backKey.Qualify("oneway"), "no") || rb.tags.Is("oneway:bicycle", "no"):
				rb.pushBackward(bothWaysLane(LANE_BICYCLE))
			case rb.oneway:
				// A oneway road with a cycleway on the wrong side.
				rb.fwdSide = append([]Lane{forwardLane(LANE_BICYCLE)}, rb.fwdSide...)
			default:
				// A contraflow bicycle lane.
				rb.pushBackward(backwardLane(LANE_BICYCLE))
			}
		}
		if rb.tags.IsAny(backKey, []string{"opposite_lane", "opposite_track"}) {
			return newRoadError("cycleway=opposite_lane on the non-driving side is unsupported", backKey)
		}
	}
	return nil
}
