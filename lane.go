package osm2lanes

import (
	"fmt"
	"strings"
)

// Lane Single lane of a road. Identity is positional: the index inside
// RoadLanes.Lanes is the only thing that places a lane left or right of its
// neighbours.
type Lane struct {
	Type      LaneType  `json:"type"`
	Direction Direction `json:"direction"`
	Width     *Metre    `json:"width,omitempty"`
	Access    *Access   `json:"access,omitempty"`
}

// Access Per-mode access restrictions of a single lane.
/*
	Values follow https://wiki.openstreetmap.org/wiki/Key:access
	(e.g. 'yes', 'no', 'designated'). Empty string means unrestricted.
*/
type Access struct {
	Foot    string `json:"foot,omitempty"`
	Bicycle string `json:"bicycle,omitempty"`
	Bus     string `json:"bus,omitempty"`
	Motor   string `json:"motor_vehicle,omitempty"`
}

func forwardLane(laneType LaneType) Lane {
	return Lane{Type: laneType, Direction: DIRECTION_FORWARD}
}

func backwardLane(laneType LaneType) Lane {
	return Lane{Type: laneType, Direction: DIRECTION_BACKWARD}
}

func bothWaysLane(laneType LaneType) Lane {
	return Lane{Type: laneType, Direction: DIRECTION_BOTH}
}

// WidthOrDefault Lane width, falling back to the conventional default
func (lane Lane) WidthOrDefault() Metre {
	if lane.Width != nil {
		return *lane.Width
	}
	return DEFAULT_LANE_WIDTH
}

// sameKind Semantic lane equality used by round-trip verification: widths are
// normalized away, what matters is what the lane is for and where it goes.
func (lane Lane) sameKind(other Lane) bool {
	return lane.Type == other.Type && lane.Direction == other.Direction
}

// asASCII Single printable character for compact lane diagrams
func (lane Lane) asASCII() byte {
	switch lane.Type {
	case LANE_DRIVING:
		return 'd'
	case LANE_BICYCLE:
		return 'b'
	case LANE_BUS:
		return 'B'
	case LANE_PARKING:
		return 'p'
	case LANE_SIDEWALK:
		return 's'
	case LANE_SHOULDER:
		return 'S'
	case LANE_SHARED_LEFT_TURN:
		return 'm'
	case LANE_CONSTRUCTION:
		return 'c'
	}
	return '?'
}

// RoadLanes Ordered lane description of a single road.
/*
	Lanes go left to right as seen along the digitized direction of the way.
	Reordering the slice changes the meaning of the road.
*/
type RoadLanes struct {
	Lanes   []Lane      `json:"lanes"`
	Width   *Metre      `json:"width,omitempty"`
	Highway HighwayType `json:"-"`
	Oneway  bool        `json:"oneway"`
	Locale  Locale      `json:"-"`
}

// String Compact diagram, e.g. 'svd^p' style lane chart
func (road RoadLanes) String() string {
	var sb strings.Builder
	for i, lane := range road.Lanes {
		if i > 0 {
			sb.WriteByte('|')
		}
		sb.WriteByte(lane.asASCII())
		switch lane.Direction {
		case DIRECTION_FORWARD:
			sb.WriteByte('^')
		case DIRECTION_BACKWARD:
			sb.WriteByte('v')
		}
	}
	return fmt.Sprintf("[%s]", sb.String())
}

// TravelLanes Number of lanes carrying moving traffic
func (road RoadLanes) TravelLanes() int {
	total := 0
	for _, lane := range road.Lanes {
		if lane.Type.isTravel() {
			total++
		}
	}
	return total
}

// TotalWidth Sum of lane widths, explicit road width winning when present
func (road RoadLanes) TotalWidth() Metre {
	if road.Width != nil {
		return *road.Width
	}
	total := Metre(0)
	for _, lane := range road.Lanes {
		total += lane.WidthOrDefault()
	}
	return total
}
