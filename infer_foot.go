package osm2lanes

// footRule Sidewalks and shoulders.
/*
	Side-qualified sidewalk tagging resolves through the locale driving side.
	When inferred sidewalks are enabled, roads that give pedestrians no
	explicit space get shoulders, except road classes where walking is
	forbidden outright.
*/
type footRule struct{}

func (footRule) name() string { return "foot_and_shoulder" }

func (footRule) apply(rb *roadBuilder) error {
	rb.tags.MarkConsumed("sidewalk", "foot", "access", "motorroad")

	explicitNone := rb.tags.Is("sidewalk", "no") || rb.tags.Is("sidewalk", "none")

	switch {
	case explicitNone:
	case rb.tags.Is("sidewalk", "both"):
		rb.pushForward(bothWaysLane(LANE_SIDEWALK))
		rb.pushBackward(bothWaysLane(LANE_SIDEWALK))
	case rb.tags.Is("sidewalk", "separate") && rb.engine.inferredSidewalks:
		// Separately mapped sidewalks are not snapped to the way yet.
		rb.pushForward(forwardLane(LANE_SIDEWALK))
		if len(rb.backSide) != 0 {
			rb.pushBackward(bothWaysLane(LANE_SIDEWALK))
		}
	case rb.tags.Is("sidewalk", "right"):
		if rb.locale.Side == DRIVING_SIDE_RIGHT {
			rb.pushForward(bothWaysLane(LANE_SIDEWALK))
		} else {
			rb.pushBackward(bothWaysLane(LANE_SIDEWALK))
		}
	case rb.tags.Is("sidewalk", "left"):
		if rb.locale.Side == DRIVING_SIDE_RIGHT {
			rb.pushBackward(bothWaysLane(LANE_SIDEWALK))
		} else {
			rb.pushForward(bothWaysLane(LANE_SIDEWALK))
		}
	}

	needFwdShoulder := true
	if len(rb.fwdSide) > 0 && rb.fwdSide[len(rb.fwdSide)-1].Type == LANE_SIDEWALK {
		needFwdShoulder = false
	}
	needBackShoulder := true
	if len(rb.backSide) > 0 && rb.backSide[len(rb.backSide)-1].Type == LANE_SIDEWALK {
		needBackShoulder = false
	}

	switch {
	case rb.highway == HIGHWAY_MOTORWAY || rb.highway == HIGHWAY_MOTORWAY_LINK || rb.highway == HIGHWAY_CONSTRUCTION:
		needFwdShoulder, needBackShoulder = false, false
	case rb.tags.Is("foot", "no") || rb.tags.Is("access", "no") || rb.tags.Is("motorroad", "yes"):
		needFwdShoulder, needBackShoulder = false, false
	case explicitNone:
		needFwdShoulder, needBackShoulder = false, false
	}
	// A oneway road does not need walking space on both sides.
	if rb.oneway {
		needBackShoulder = false
	}

	// Living streets have no separate footways: people walk in the street.
	if rb.engine.inferredSidewalks || rb.highway == HIGHWAY_LIVING_STREET {
		if needFwdShoulder {
			rb.pushForward(bothWaysLane(LANE_SHOULDER))
		}
		if needBackShoulder {
			rb.pushBackward(bothWaysLane(LANE_SHOULDER))
		}
	}
	return nil
}
