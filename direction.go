package osm2lanes

import (
	"fmt"
	"strconv"
)

type Direction uint16

const (
	DIRECTION_FORWARD = Direction(iota + 1)
	DIRECTION_BACKWARD
	DIRECTION_BOTH
	DIRECTION_NONE
)

func (iotaIdx Direction) String() string {
	return [...]string{"forward", "backward", "both", "none"}[iotaIdx-1]
}

func getDirection(str string) Direction {
	if found, ok := directions[str]; ok {
		return found
	}
	return 0
}

// MarshalJSON Serializes the direction as its string form
func (iotaIdx Direction) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(iotaIdx.String())), nil
}

// UnmarshalJSON Parses the string form of a direction
func (iotaIdx *Direction) UnmarshalJSON(data []byte) error {
	str, err := strconv.Unquote(string(data))
	if err != nil {
		return err
	}
	found := getDirection(str)
	if found == 0 {
		return fmt.Errorf("unknown direction '%s'", str)
	}
	*iotaIdx = found
	return nil
}

var (
	directions = map[string]Direction{
		"forward":  DIRECTION_FORWARD,
		"backward": DIRECTION_BACKWARD,
		"both":     DIRECTION_BOTH,
		"none":     DIRECTION_NONE,
	}
)
