package osm2lanes

import (
	"strconv"
	"strings"
)

// LanesToTags Inverse transform: synthesizes the canonical tag set describing
// a lane sequence.
/*
	Unlike inference this direction is unambiguous: a given lane sequence
	always produces exactly one tag set. Adjacent through lanes collapse into
	a single 'lanes' count, side-qualified lanes synthesize side-qualified
	keys through the locale driving side.
*/
func LanesToTags(road *RoadLanes, locale Locale) (*Tags, error) {
	if road == nil || len(road.Lanes) == 0 {
		return nil, newRoadError("can not synthesize tags for an empty lane sequence")
	}

	kv := map[string]string{}

	highway := road.Highway
	if highway == 0 {
		highway = HIGHWAY_UNCLASSIFIED
	}
	kv["highway"] = highway.String()

	if highway.isNonMotorized() {
		if road.Oneway {
			kv["oneway"] = "yes"
		}
		if road.Width != nil {
			kv["width"] = formatMetre(*road.Width)
		}
		return NewTags(kv), nil
	}

	lanes := road.Lanes

	// Through lanes per direction, in inference builder order (centre going
	// outwards), needed for counts and per-lane bus lists.
	fwdThrough := throughLanes(lanes, DIRECTION_FORWARD, locale.Side)
	backThrough := throughLanes(lanes, DIRECTION_BACKWARD, locale.Side)

	total := len(fwdThrough) + len(backThrough)
	sharedLeftTurn := false
	for _, lane := range lanes {
		if lane.Type == LANE_SHARED_LEFT_TURN {
			sharedLeftTurn = true
			total++
		}
	}
	kv["lanes"] = strconv.Itoa(total)

	// A single forward lane without backward lanes is a narrow two-way road
	// (single-track streets), not a oneway.
	oneway := road.Oneway
	if !oneway && len(backThrough) == 0 && len(fwdThrough) > 1 {
		oneway = true
	}
	if oneway {
		kv["oneway"] = "yes"
	} else if len(fwdThrough) != len(backThrough) {
		kv["lanes:forward"] = strconv.Itoa(len(fwdThrough))
		kv["lanes:backward"] = strconv.Itoa(len(backThrough))
	}

	if sharedLeftTurn {
		kv["lanes:both_ways"] = "1"
		kv["turn:lanes:both_ways"] = "left"
	}

	synthesizeBus(kv, fwdThrough, backThrough)
	synthesizeSidewalk(kv, lanes)
	synthesizeParking(kv, lanes)
	synthesizeCycleway(kv, lanes, oneway)

	if road.Width != nil {
		kv["width"] = formatMetre(*road.Width)
	}

	return NewTags(kv), nil
}

// formatMetre Canonical metric rendering of a width value. The unit is
// explicit so the value survives re-parsing under imperial locales.
func formatMetre(width Metre) string {
	return strconv.FormatFloat(float64(width), 'f', -1, 64) + " m"
}

// throughLanes Picks the lanes counting towards the 'lanes' total running in
// the given direction, ordered from the road centre going outwards.
func throughLanes(lanes []Lane, direction Direction, side DrivingSide) []Lane {
	picked := []Lane{}
	for _, lane := range lanes {
		if countsTowardsLanes(lane.Type) && lane.Direction == direction {
			picked = append(picked, lane)
		}
	}
	// Left-to-right array order equals centre-outward order for forward lanes
	// under right-hand traffic and for backward lanes under left-hand
	// traffic; the other two combinations are reversed.
	reversed := (side == DRIVING_SIDE_RIGHT && direction == DIRECTION_BACKWARD) ||
		(side == DRIVING_SIDE_LEFT && direction == DIRECTION_FORWARD)
	if reversed {
		for i, j := 0, len(picked)-1; i < j; i, j = i+1, j-1 {
			picked[i], picked[j] = picked[j], picked[i]
		}
	}
	return picked
}

// synthesizeBus Bus lane keys. A fully dedicated road synthesizes access
// tagging, anything partial uses the per-lane 'bus:lanes' list scheme.
func synthesizeBus(kv map[string]string, fwdThrough, backThrough []Lane) {
	busCount := 0
	for _, lane := range append(append([]Lane{}, fwdThrough...), backThrough...) {
		if lane.Type == LANE_BUS {
			busCount++
		}
	}
	if busCount == 0 {
		return
	}
	if busCount == len(fwdThrough)+len(backThrough) {
		kv["access"] = "no"
		kv["bus"] = "yes"
		return
	}
	if len(fwdThrough) > 0 {
		kv["bus:lanes:forward"] = busLaneList(fwdThrough)
	}
	if len(backThrough) > 0 {
		kv["bus:lanes:backward"] = busLaneList(backThrough)
	}
}

func busLaneList(through []Lane) string {
	parts := make([]string, len(through))
	for i, lane := range through {
		if lane.Type == LANE_BUS {
			parts[i] = "designated"
		}
	}
	return strings.Join(parts, "|")
}

// synthesizeSidewalk Sidewalks sit at the physical edges of the sequence
func synthesizeSidewalk(kv map[string]string, lanes []Lane) {
	left := lanes[0].Type == LANE_SIDEWALK
	right := lanes[len(lanes)-1].Type == LANE_SIDEWALK
	switch {
	case left && right:
		kv["sidewalk"] = "both"
	case left:
		kv["sidewalk"] = "left"
	case right:
		kv["sidewalk"] = "right"
	}
}

// outerLanes Lanes outside the driving core on the given physical side
func outerLanes(lanes []Lane, fromRight bool) []Lane {
	outer := []Lane{}
	if fromRight {
		for i := len(lanes) - 1; i >= 0; i-- {
			if countsTowardsLanes(lanes[i].Type) {
				break
			}
			outer = append(outer, lanes[i])
		}
	} else {
		for _, lane := range lanes {
			if countsTowardsLanes(lane.Type) {
				break
			}
			outer = append(outer, lane)
		}
	}
	return outer
}

func containsType(lanes []Lane, laneType LaneType) *Lane {
	for i := range lanes {
		if lanes[i].Type == laneType {
			return &lanes[i]
		}
	}
	return nil
}

// synthesizeParking Side-qualified parking keys from the physical edges
func synthesizeParking(kv map[string]string, lanes []Lane) {
	left := containsType(outerLanes(lanes, false), LANE_PARKING) != nil
	right := containsType(outerLanes(lanes, true), LANE_PARKING) != nil
	switch {
	case left && right:
		kv["parking:lane:both"] = "parallel"
	case left:
		kv["parking:lane:left"] = "parallel"
	case right:
		kv["parking:lane:right"] = "parallel"
	}
}

// synthesizeCycleway Side-qualified cycleway keys from the physical edges
func synthesizeCycleway(kv map[string]string, lanes []Lane, oneway bool) {
	left := containsType(outerLanes(lanes, false), LANE_BICYCLE)
	right := containsType(outerLanes(lanes, true), LANE_BICYCLE)
	switch {
	case left != nil && right != nil:
		kv["cycleway:both"] = "lane"
	case left != nil:
		kv["cycleway:left"] = "lane"
	case right != nil:
		kv["cycleway:right"] = "lane"
	}
	// https://wiki.openstreetmap.org/wiki/Key:cycleway:right:oneway
	if left != nil && left.Direction == DIRECTION_BOTH {
		kv["cycleway:left:oneway"] = "no"
	}
	if right != nil && right.Direction == DIRECTION_BOTH {
		kv["cycleway:right:oneway"] = "no"
	}
}
