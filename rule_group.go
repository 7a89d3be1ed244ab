package osm2lanes

// ruleGroup Single tagging concern of the inference pipeline.
/*
	Groups run in the fixed order of inferencePipeline: later groups rely on
	the through lanes already allocated by earlier ones (a parking tag only
	makes sense once the base lane count is settled).
*/
type ruleGroup interface {
	name() string
	apply(rb *roadBuilder) error
}

var inferencePipeline = []ruleGroup{
	nonMotorizedRule{},
	drivingRule{},
	busRule{},
	bicycleRule{},
	parkingRule{},
	footRule{},
	widthRule{},
	countRule{},
	leftoverRule{},
}

// roadBuilder Mutable state threaded through the rule groups of one call.
/*
	fwdSide and backSide are ordered from the road centre going outwards;
	assembleLTR flips them into left-to-right order at the end.
*/
type roadBuilder struct {
	tags       *Tags
	locale     Locale
	engine     *Engine
	highway    HighwayType
	oneway     bool
	fwdSide    []Lane
	backSide   []Lane
	width      *Metre
	laneWidths []Metre
	warnings   Warnings
	done       bool
}

func (rb *roadBuilder) pushForward(lane Lane) {
	rb.fwdSide = append(rb.fwdSide, lane)
}

func (rb *roadBuilder) pushBackward(lane Lane) {
	rb.backSide = append(rb.backSide, lane)
}

// assembleLTR Merges both sides into left-to-right order along the way
// direction. Forward lanes sit on the driving side of the road.
func assembleLTR(fwdSide, backSide []Lane, side DrivingSide) []Lane {
	lanes := make([]Lane, 0, len(fwdSide)+len(backSide))
	switch side {
	case DRIVING_SIDE_RIGHT:
		for i := len(backSide) - 1; i >= 0; i-- {
			lanes = append(lanes, backSide[i])
		}
		lanes = append(lanes, fwdSide...)
	case DRIVING_SIDE_LEFT:
		for i := len(fwdSide) - 1; i >= 0; i-- {
			lanes = append(lanes, fwdSide[i])
		}
		lanes = append(lanes, backSide...)
	}
	return lanes
}
