package osm2lanes

import (
	"fmt"
	"strconv"
)

// nonMotorizedRule Early special casing for ways whose primary users are not
// motor vehicles: footways, cycle paths, steps, tracks.
type nonMotorizedRule struct{}

func (nonMotorizedRule) name() string { return "non_motorized" }

func (nonMotorizedRule) apply(rb *roadBuilder) error {
	if !rb.highway.isNonMotorized() {
		return nil
	}
	rb.done = true
	rb.tags.MarkConsumed("bicycle", "foot", "oneway")

	if rb.highway == HIGHWAY_STEPS {
		rb.pushForward(bothWaysLane(LANE_SIDEWALK))
		rb.warnings.push(WARN_ASSUMED_DEFAULT, "highway is steps, but lane is only a sidewalk", "highway")
		return nil
	}

	// Foot-only ways are a plain sidewalk. On footways bikes must be allowed
	// explicitly, on the remaining path-like classes they are assumed.
	if rb.tags.Is("bicycle", "no") ||
		(rb.highway == HIGHWAY_FOOTWAY && !rb.tags.IsAny("bicycle", []string{"designated", "yes"})) {
		rb.pushForward(bothWaysLane(LANE_SIDEWALK))
		return nil
	}

	rb.oneway = rb.tags.Is("oneway", "yes")
	rb.pushForward(forwardLane(LANE_BICYCLE))
	if !rb.oneway {
		rb.pushBackward(backwardLane(LANE_BICYCLE))
	}
	if !rb.tags.Is("foot", "no") {
		rb.pushForward(bothWaysLane(LANE_SHOULDER))
		if len(rb.backSide) != 0 {
			rb.pushBackward(bothWaysLane(LANE_SHOULDER))
		}
	}
	return nil
}

// drivingRule Baseline lane count and per-lane direction from the primary
// lane-count and oneway-style keys.
type drivingRule struct{}

func (drivingRule) name() string { return "driving" }

func (drivingRule) apply(rb *roadBuilder) error {
	rb.resolveOneway()

	numFwd, numBack := rb.drivingLaneDirections()

	laneType := rb.drivingLaneType()

	for i := 0; i < numFwd; i++ {
		rb.pushForward(forwardLane(laneType))
	}
	for i := 0; i < numBack; i++ {
		rb.pushBackward(backwardLane(laneType))
	}
	// https://wiki.openstreetmap.org/wiki/Key:centre_turn_lane
	if rb.tags.Is("lanes:both_ways", "1") || rb.tags.Is("centre_turn_lane", "yes") {
		rb.fwdSide = append([]Lane{bothWaysLane(LANE_SHARED_LEFT_TURN)}, rb.fwdSide...)
		rb.tags.MarkConsumed("lanes:both_ways", "centre_turn_lane", "turn:lanes:both_ways")
	}

	if laneType == LANE_CONSTRUCTION {
		rb.done = true
	}
	return nil
}

// resolveOneway Decides whether all travel happens along the way direction
func (rb *roadBuilder) resolveOneway() {
	value, ok := rb.tags.Get("oneway")
	rb.tags.MarkConsumed("oneway", "junction")
	if ok {
		if _, reversible := onewayReversible[value]; reversible {
			rb.oneway = true
			rb.warnings.push(
				WARN_CONFLICT_RESOLVED,
				fmt.Sprintf("oneway='%s' (reversible flow) treated as a plain oneway road", value),
				"oneway",
			)
			return
		}
		switch value {
		case "yes", "1", "true":
			rb.oneway = true
		case "no", "0", "false":
			rb.oneway = false
		default:
			rb.warnings.push(WARN_BAD_VALUE, fmt.Sprintf("unsupported oneway value '%s' ignored", value), "oneway")
		}
		if rb.oneway {
			return
		}
	}
	if rb.tags.Is("junction", "roundabout") || rb.tags.Is("junction", "circular") {
		rb.oneway = true
	}
}

// laneCount Parses an integer lane-count tag, consuming it. Malformed values
// are reported and skipped rather than aborting.
func (rb *roadBuilder) laneCount(key TagKey) (int, bool) {
	value, ok := rb.tags.Get(key)
	if !ok {
		return 0, false
	}
	rb.tags.MarkConsumed(key)
	num, err := strconv.Atoi(value)
	if err != nil || num < 0 {
		rb.warnings.push(
			WARN_BAD_VALUE,
			fmt.Sprintf("provided '%s' tag value should be a non-negative integer, got '%s'", key, value),
			key,
		)
		return 0, false
	}
	return num, true
}

// drivingLaneDirections Splits the tagged lane total into forward and
// backward through lanes. Missing counts fall back to per-class defaults
// with a warning.
func (rb *roadBuilder) drivingLaneDirections() (int, int) {
	bothWays, _ := rb.laneCount("lanes:both_ways")
	lanesTotal, hasTotal := rb.laneCount("lanes")
	fwd, hasFwd := rb.laneCount("lanes:forward")
	back, hasBack := rb.laneCount("lanes:backward")

	numFwd := 0
	assumedFwd := false
	switch {
	case hasFwd:
		numFwd = fwd
	case hasTotal:
		half := lanesTotal
		if !rb.oneway {
			half = (lanesTotal + 1) / 2
		}
		numFwd = half - bothWays
	default:
		numFwd = 1
		assumedFwd = true
	}

	numBack := 0
	assumedBack := false
	switch {
	case hasBack:
		numBack = back
	case hasTotal:
		base := lanesTotal - numFwd
		// A single tagged lane on a two-way road stays a lone forward lane
		// (single-track street), it does not grow a backward lane.
		if !rb.oneway && base < 1 && lanesTotal > 1 {
			base = 1
		}
		numBack = base - bothWays
	case rb.oneway:
		numBack = 0
	default:
		numBack = 1
		assumedBack = true
	}

	if !hasTotal && !hasFwd && !hasBack {
		total := rb.defaultTotal()
		if rb.oneway {
			numFwd, numBack = total, 0
		} else {
			numFwd = (total + 1) / 2
			numBack = total - numFwd
		}
		rb.warnings.push(
			WARN_ASSUMED_DEFAULT,
			fmt.Sprintf("no lane tagging, assumed %d lane(s) for highway='%s'", total, rb.highway),
			"lanes",
		)
	} else {
		if assumedFwd {
			rb.warnings.push(WARN_ASSUMED_DEFAULT, "no forward lane count tagged, assumed 1 forward lane", "lanes:forward")
		}
		if assumedBack {
			rb.warnings.push(WARN_ASSUMED_DEFAULT, "no backward lane count tagged, assumed 1 backward lane", "lanes:backward")
		}
	}

	if numFwd < 0 {
		numFwd = 0
	}
	if numBack < 0 {
		numBack = 0
	}
	return numFwd, numBack
}

// defaultTotal Total lane count assumed for the road class
func (rb *roadBuilder) defaultTotal() int {
	if rb.engine != nil && rb.engine.defaultLanes != nil {
		if total, ok := rb.engine.defaultLanes[rb.highway.String()]; ok {
			return total
		}
	}
	if total, ok := defaultLanesByHighway[rb.highway]; ok {
		return total
	}
	return 2
}

// drivingLaneType Through lanes are ordinary driving lanes unless access
// tagging says the road is bus-only or closed for construction.
func (rb *roadBuilder) drivingLaneType() LaneType {
	if rb.tags.Is("access", "no") && (rb.tags.Is("bus", "yes") || rb.tags.Is("psv", "yes")) {
		rb.tags.MarkConsumed("access", "bus", "psv")
		return LANE_BUS
	}
	if value, ok := rb.tags.Get("motor_vehicle:conditional"); ok && len(value) >= 2 && value[:2] == "no" && rb.tags.Is("bus", "yes") {
		rb.tags.MarkConsumed("motor_vehicle:conditional", "bus")
		return LANE_BUS
	}
	if rb.tags.Is("access", "no") || rb.highway == HIGHWAY_CONSTRUCTION {
		rb.tags.MarkConsumed("access", "construction")
		return LANE_CONSTRUCTION
	}
	return LANE_DRIVING
}
