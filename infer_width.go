package osm2lanes

import (
	"fmt"
	"strings"
)

// widthRule Road and per-lane widths, unit-aware via the locale.
type widthRule struct{}

func (widthRule) name() string { return "width" }

func (widthRule) apply(rb *roadBuilder) error {
	// 'maxwidth' is a legal restriction, used only when no physical width given.
	for _, key := range []TagKey{"width", "maxwidth"} {
		value, ok := rb.tags.Get(key)
		if !ok {
			continue
		}
		rb.tags.MarkConsumed(key)
		width, err := parseMetre(value, rb.locale.Measurement)
		if err != nil {
			rb.warnings.push(WARN_BAD_VALUE, fmt.Sprintf("can not parse width '%s'", value), key)
			continue
		}
		if rb.width == nil {
			rb.width = &width
		}
	}

	if value, ok := rb.tags.Get("width:lanes"); ok {
		rb.tags.MarkConsumed("width:lanes")
		parts := strings.Split(value, "|")
		widths := make([]Metre, 0, len(parts))
		bad := false
		for _, part := range parts {
			if part == "" {
				widths = append(widths, 0)
				continue
			}
			width, err := parseMetre(part, rb.locale.Measurement)
			if err != nil {
				rb.warnings.push(WARN_BAD_VALUE, fmt.Sprintf("can not parse lane width '%s'", part), "width:lanes")
				bad = true
				break
			}
			widths = append(widths, width)
		}
		if !bad {
			rb.laneWidths = widths
		}
	}
	return nil
}

// countRule Reconciliation of an explicitly asserted lane count with the
// lanes the earlier groups produced.
/*
	The explicit 'lanes' value wins: the discrepancy is pushed into the least
	specific lanes (plain driving lanes on the forward side) and reported.
*/
type countRule struct{}

func (countRule) name() string { return "lane_count" }

func (countRule) apply(rb *roadBuilder) error {
	value, ok := rb.tags.Get("lanes")
	if !ok {
		return nil
	}
	asserted := 0
	if _, err := fmt.Sscanf(value, "%d", &asserted); err != nil || asserted <= 0 {
		return nil
	}

	counted := 0
	for _, lane := range rb.fwdSide {
		if countsTowardsLanes(lane.Type) {
			counted++
		}
	}
	for _, lane := range rb.backSide {
		if countsTowardsLanes(lane.Type) {
			counted++
		}
	}
	if counted == asserted {
		return nil
	}

	if counted < asserted {
		for i := counted; i < asserted; i++ {
			rb.pushForward(forwardLane(LANE_DRIVING))
		}
	} else {
		rb.removeDrivingLanes(counted - asserted)
	}
	rb.warnings.push(
		WARN_COUNT_MISMATCH,
		fmt.Sprintf("'lanes'=%d but %d through lanes inferred, redistributed the difference", asserted, counted),
		"lanes",
	)
	return nil
}

// countsTowardsLanes Lane types included in the OSM 'lanes' total
func countsTowardsLanes(laneType LaneType) bool {
	switch laneType {
	case LANE_DRIVING, LANE_BUS, LANE_SHARED_LEFT_TURN, LANE_CONSTRUCTION:
		return true
	}
	return false
}

// removeDrivingLanes Strips plain driving lanes from the outer forward side
// first, then the backward side, leaving more specific lanes untouched.
func (rb *roadBuilder) removeDrivingLanes(count int) {
	for _, side := range []*[]Lane{&rb.fwdSide, &rb.backSide} {
		for count > 0 {
			removed := false
			for i := len(*side) - 1; i >= 0; i-- {
				if (*side)[i].Type == LANE_DRIVING {
					*side = append((*side)[:i], (*side)[i+1:]...)
					count--
					removed = true
					break
				}
			}
			if !removed {
				break
			}
		}
	}
}

// leftoverRule Reports unconsumed keys that look lane-related. Everything
// else is somebody else's tagging and stays silently ignored.
type leftoverRule struct{}

func (leftoverRule) name() string { return "leftover" }

var laneRelatedPrefixes = []string{
	"lanes",
	"oneway",
	"cycleway",
	"busway",
	"bus:",
	"psv",
	"parking:",
	"sidewalk",
	"shoulder",
	"width",
	"turn:",
	"centre_turn_lane",
	"motorroad",
}

func (leftoverRule) apply(rb *roadBuilder) error {
	for _, key := range rb.tags.Unconsumed() {
		for _, prefix := range laneRelatedPrefixes {
			if strings.HasPrefix(string(key), prefix) {
				rb.warnings.push(
					WARN_UNCONSUMED_KEY,
					fmt.Sprintf("lane-related tag '%s'='%s' was not used", key, rb.tags.Value(key)),
					key,
				)
				break
			}
		}
	}
	return nil
}
