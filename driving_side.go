package osm2lanes

type DrivingSide uint16

const (
	DRIVING_SIDE_RIGHT = DrivingSide(iota + 1)
	DRIVING_SIDE_LEFT
)

func (iotaIdx DrivingSide) String() string {
	return [...]string{"right", "left"}[iotaIdx-1]
}

// Opposite Returns the other side of the road
func (iotaIdx DrivingSide) Opposite() DrivingSide {
	if iotaIdx == DRIVING_SIDE_RIGHT {
		return DRIVING_SIDE_LEFT
	}
	return DRIVING_SIDE_RIGHT
}

// TagPart Returns the key qualifier naming this side, e.g. 'cycleway' + side
func (iotaIdx DrivingSide) TagPart() string {
	return iotaIdx.String()
}

func getDrivingSide(str string) DrivingSide {
	if found, ok := drivingSides[str]; ok {
		return found
	}
	return 0
}

var (
	drivingSides = map[string]DrivingSide{
		"right": DRIVING_SIDE_RIGHT,
		"left":  DRIVING_SIDE_LEFT,
	}
)
