package osm2lanes

// parkingRule Street-side parking lanes.
/*
	'parking:lane:right' sits on the driving side of a right-hand-traffic
	road, so it lands at the outer end of the forward side; mirrored under
	left-hand traffic. Parking never replaces a through lane, it is appended
	outside of them.
*/
type parkingRule struct{}

func (parkingRule) name() string { return "parking" }

var parkingLaneValues = []string{"parallel", "diagonal", "perpendicular"}

// The successor scheme drops the 'lane' part and allows value 'lane'.
var parkingSideValues = []string{"lane", "parallel", "diagonal", "perpendicular"}

func (parkingRule) apply(rb *roadBuilder) error {
	parking := TagKey("parking:lane")
	short := TagKey("parking")
	rb.tags.MarkConsumed(
		parking.Qualify("both"),
		parking.Qualify("left"),
		parking.Qualify("right"),
		short.Qualify("both"),
		short.Qualify("left"),
		short.Qualify("right"),
	)

	// Bus-only and construction roads keep no parking.
	if len(rb.fwdSide)+len(rb.backSide) > 0 {
		hasDriving := false
		for _, lane := range append(append([]Lane{}, rb.fwdSide...), rb.backSide...) {
			if lane.Type == LANE_DRIVING {
				hasDriving = true
				break
			}
		}
		if !hasDriving {
			return nil
		}
	}

	side := rb.locale.Side.TagPart()
	opposite := rb.locale.Side.Opposite().TagPart()

	fwd := rb.tags.IsAny(parking.Qualify(side), parkingLaneValues) ||
		rb.tags.IsAny(parking.Qualify("both"), parkingLaneValues) ||
		rb.tags.IsAny(short.Qualify(side), parkingSideValues) ||
		rb.tags.IsAny(short.Qualify("both"), parkingSideValues)
	back := rb.tags.IsAny(parking.Qualify(opposite), parkingLaneValues) ||
		rb.tags.IsAny(parking.Qualify("both"), parkingLaneValues) ||
		rb.tags.IsAny(short.Qualify(opposite), parkingSideValues) ||
		rb.tags.IsAny(short.Qualify("both"), parkingSideValues)

	if fwd {
		rb.pushForward(forwardLane(LANE_PARKING))
	}
	if back {
		rb.pushBackward(backwardLane(LANE_PARKING))
	}
	return nil
}
