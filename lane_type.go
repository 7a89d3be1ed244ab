package osm2lanes

import (
	"fmt"
	"strconv"
)

type LaneType uint16

const (
	LANE_DRIVING = LaneType(iota + 1)
	LANE_BICYCLE
	LANE_BUS
	LANE_PARKING
	LANE_SIDEWALK
	LANE_SHOULDER
	LANE_SHARED_LEFT_TURN
	LANE_CONSTRUCTION
)

func (iotaIdx LaneType) String() string {
	return [...]string{"driving", "bicycle", "bus", "parking", "sidewalk", "shoulder", "shared_left_turn", "construction"}[iotaIdx-1]
}

func getLaneType(str string) LaneType {
	if found, ok := laneTypes[str]; ok {
		return found
	}
	return 0
}

// isTravel Reports whether lanes of this type carry moving traffic
func (iotaIdx LaneType) isTravel() bool {
	switch iotaIdx {
	case LANE_DRIVING, LANE_BICYCLE, LANE_BUS, LANE_SHARED_LEFT_TURN:
		return true
	}
	return false
}

// MarshalJSON Serializes the lane type as its string form
func (iotaIdx LaneType) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(iotaIdx.String())), nil
}

// UnmarshalJSON Accepts canonical names and deprecated fixture aliases
func (iotaIdx *LaneType) UnmarshalJSON(data []byte) error {
	str, err := strconv.Unquote(string(data))
	if err != nil {
		return err
	}
	if found, ok := laneTypes[str]; ok {
		*iotaIdx = found
		return nil
	}
	if found, ok := laneTypeAliases[str]; ok {
		*iotaIdx = found
		return nil
	}
	return fmt.Errorf("unknown lane type '%s'", str)
}

var (
	laneTypes = map[string]LaneType{
		"driving":          LANE_DRIVING,
		"bicycle":          LANE_BICYCLE,
		"bus":              LANE_BUS,
		"parking":          LANE_PARKING,
		"sidewalk":         LANE_SIDEWALK,
		"shoulder":         LANE_SHOULDER,
		"shared_left_turn": LANE_SHARED_LEFT_TURN,
		"construction":     LANE_CONSTRUCTION,
	}

	// Deprecated spellings still found in older fixture corpora.
	laneTypeAliases = map[string]LaneType{
		"driveway":     LANE_DRIVING,
		"cycleway":     LANE_BICYCLE,
		"parking_lane": LANE_PARKING,
	}
)
