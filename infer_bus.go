package osm2lanes

import (
	"strings"
)

// busRule Bus lane tagging.
/*
	Three tagging schemes exist in the wild (busway=*, lanes:bus=*,
	bus:lanes=*); mixing them on one way has no defined precedence and is the
	kind of irreconcilable contradiction that aborts inference.
	See ref.: https://wiki.openstreetmap.org/wiki/Bus_lanes
*/
type busRule struct{}

func (busRule) name() string { return "bus" }

func (busRule) apply(rb *roadBuilder) error {
	hasBusway := len(rb.tags.ByPrefix("busway")) > 0
	hasLanesBus := rb.tags.Has("lanes:bus") || rb.tags.Has("lanes:psv")
	hasBusLanes := len(rb.tags.ByPrefix("bus:lanes")) > 0 || len(rb.tags.ByPrefix("psv:lanes")) > 0

	schemes := 0
	for _, present := range []bool{hasBusway, hasLanesBus, hasBusLanes} {
		if present {
			schemes++
		}
	}
	if schemes > 1 {
		return newRoadError("more than one bus lane tagging scheme used", "busway", "lanes:bus", "bus:lanes")
	}

	switch {
	case hasBusway:
		return rb.applyBusway()
	case hasLanesBus:
		rb.tags.MarkConsumed("lanes:bus", "lanes:psv")
		rb.warnings.push(WARN_UNIMPLEMENTED, "'lanes:bus' scheme is not implemented, bus lanes ignored", "lanes:bus", "lanes:psv")
	case hasBusLanes:
		rb.applyBusLanes()
	}
	return nil
}

// applyBusway busway=* scheme: dedicates existing outer through lanes to buses
func (rb *roadBuilder) applyBusway() error {
	busway := TagKey("busway")
	rb.tags.MarkConsumed(
		busway,
		busway.Qualify("both"),
		busway.Qualify("left"),
		busway.Qualify("right"),
		"oneway:bus",
	)

	onewayBus := rb.oneway || rb.tags.Is("oneway:bus", "yes")

	if rb.tags.Is(busway, "lane") {
		if err := rb.setBus(&rb.fwdSide, last); err != nil {
			return err
		}
		if !onewayBus {
			if err := rb.setBus(&rb.backSide, last); err != nil {
				return err
			}
		}
	}
	if rb.tags.Is(busway, "opposite_lane") {
		if err := rb.setBus(&rb.backSide, last); err != nil {
			return err
		}
	}
	if rb.tags.Is(busway.Qualify("both"), "lane") {
		if onewayBus {
			return newRoadError("busway:both=lane on a oneway road", busway.Qualify("both"), "oneway")
		}
		if err := rb.setBus(&rb.fwdSide, last); err != nil {
			return err
		}
		if err := rb.setBus(&rb.backSide, last); err != nil {
			return err
		}
	}
	if rb.tags.Is(busway.Qualify(rb.locale.Side.TagPart()), "lane") {
		if err := rb.setBus(&rb.fwdSide, last); err != nil {
			return err
		}
	}
	if rb.tags.Is(busway.Qualify(rb.locale.Side.Opposite().TagPart()), "lane") {
		if !onewayBus {
			return newRoadError("busway on the non-driving side of a bidirectional road", busway.Qualify(rb.locale.Side.Opposite().TagPart()))
		}
		if err := rb.setBus(&rb.fwdSide, first); err != nil {
			return err
		}
	}
	return nil
}

type sidePosition uint16

const (
	first = sidePosition(iota + 1)
	last
)

// setBus Rededicates the outermost (or innermost) through lane to buses
func (rb *roadBuilder) setBus(side *[]Lane, position sidePosition) error {
	if len(*side) == 0 {
		return newRoadError("no through lane available for a busway", "busway")
	}
	idx := 0
	if position == last {
		idx = len(*side) - 1
	}
	(*side)[idx].Type = LANE_BUS
	(*side)[idx].Access = &Access{Bus: "designated"}
	return nil
}

// applyBusLanes bus:lanes=* / psv:lanes=* scheme: pipe-separated per-lane list
func (rb *roadBuilder) applyBusLanes() {
	busLanes := TagKey("bus:lanes")
	psvLanes := TagKey("psv:lanes")
	rb.tags.MarkConsumed(
		busLanes, busLanes.Qualify("forward"), busLanes.Qualify("backward"),
		psvLanes, psvLanes.Qualify("forward"), psvLanes.Qualify("backward"),
	)

	fwdSpec := rb.tags.Value(busLanes.Qualify("forward"))
	if fwdSpec == "" {
		fwdSpec = rb.tags.Value(psvLanes.Qualify("forward"))
	}
	if fwdSpec == "" && rb.oneway {
		fwdSpec = rb.tags.Value(busLanes)
		if fwdSpec == "" {
			fwdSpec = rb.tags.Value(psvLanes)
		}
	}
	if fwdSpec != "" {
		parts := strings.Split(fwdSpec, "|")
		// A shared centre turn lane sits at the start of the forward side but
		// is not part of the per-lane list.
		offset := 0
		if len(rb.fwdSide) > 0 && rb.fwdSide[0].Direction == DIRECTION_BOTH {
			offset = 1
		}
		if len(parts) == len(rb.fwdSide)-offset {
			for idx, part := range parts {
				if part == "designated" {
					rb.fwdSide[idx+offset].Type = LANE_BUS
					rb.fwdSide[idx+offset].Access = &Access{Bus: "designated"}
				}
			}
		} else {
			rb.warnings.push(WARN_COUNT_MISMATCH, "bus lane list does not match the forward lane count", busLanes)
		}
	}

	backSpec := rb.tags.Value(busLanes.Qualify("backward"))
	if backSpec == "" {
		backSpec = rb.tags.Value(psvLanes.Qualify("backward"))
	}
	if backSpec != "" {
		parts := strings.Split(backSpec, "|")
		if len(parts) == len(rb.backSide) {
			for idx, part := range parts {
				if part == "designated" {
					rb.backSide[idx].Type = LANE_BUS
					rb.backSide[idx].Access = &Access{Bus: "designated"}
				}
			}
		} else {
			rb.warnings.push(WARN_COUNT_MISMATCH, "bus lane list does not match the backward lane count", busLanes.Qualify("backward"))
		}
	}
}
