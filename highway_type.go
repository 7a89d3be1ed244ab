package osm2lanes

type HighwayType uint16

const (
	HIGHWAY_MOTORWAY = HighwayType(iota + 1)
	HIGHWAY_MOTORWAY_LINK
	HIGHWAY_TRUNK
	HIGHWAY_TRUNK_LINK
	HIGHWAY_PRIMARY
	HIGHWAY_PRIMARY_LINK
	HIGHWAY_SECONDARY
	HIGHWAY_SECONDARY_LINK
	HIGHWAY_TERTIARY
	HIGHWAY_TERTIARY_LINK
	HIGHWAY_RESIDENTIAL
	HIGHWAY_RESIDENTIAL_LINK
	HIGHWAY_LIVING_STREET
	HIGHWAY_SERVICE
	HIGHWAY_SERVICES
	HIGHWAY_CYCLEWAY
	HIGHWAY_FOOTWAY
	HIGHWAY_PEDESTRIAN
	HIGHWAY_STEPS
	HIGHWAY_TRACK
	HIGHWAY_PATH
	HIGHWAY_CONSTRUCTION
	HIGHWAY_UNCLASSIFIED
)

func (iotaIdx HighwayType) String() string {
	return [...]string{"motorway", "motorway_link", "trunk", "trunk_link", "primary", "primary_link", "secondary", "secondary_link", "tertiary", "tertiary_link", "residential", "residential_link", "living_street", "service", "services", "cycleway", "footway", "pedestrian", "steps", "track", "path", "construction", "unclassified"}[iotaIdx-1]
}

func getHighwayType(str string) HighwayType {
	if found, ok := highwaysTypes[str]; ok {
		return found
	}
	return 0
}

// isNonMotorized Ways where motor traffic is not the primary user
func (iotaIdx HighwayType) isNonMotorized() bool {
	_, ok := nonMotorizedHighways[iotaIdx]
	return ok
}

var (
	highwaysTypes = map[string]HighwayType{
		"motorway":         HIGHWAY_MOTORWAY,
		"motorway_link":    HIGHWAY_MOTORWAY_LINK,
		"trunk":            HIGHWAY_TRUNK,
		"trunk_link":       HIGHWAY_TRUNK_LINK,
		"primary":          HIGHWAY_PRIMARY,
		"primary_link":     HIGHWAY_PRIMARY_LINK,
		"secondary":        HIGHWAY_SECONDARY,
		"secondary_link":   HIGHWAY_SECONDARY_LINK,
		"tertiary":         HIGHWAY_TERTIARY,
		"tertiary_link":    HIGHWAY_TERTIARY_LINK,
		"residential":      HIGHWAY_RESIDENTIAL,
		"residential_link": HIGHWAY_RESIDENTIAL_LINK,
		"living_street":    HIGHWAY_LIVING_STREET,
		"service":          HIGHWAY_SERVICE,
		"services":         HIGHWAY_SERVICES,
		"cycleway":         HIGHWAY_CYCLEWAY,
		"footway":          HIGHWAY_FOOTWAY,
		"pedestrian":       HIGHWAY_PEDESTRIAN,
		"steps":            HIGHWAY_STEPS,
		"track":            HIGHWAY_TRACK,
		"path":             HIGHWAY_PATH,
		"construction":     HIGHWAY_CONSTRUCTION,
		"unclassified":     HIGHWAY_UNCLASSIFIED,
	}

	nonMotorizedHighways = map[HighwayType]struct{}{
		HIGHWAY_CYCLEWAY:   {},
		HIGHWAY_FOOTWAY:    {},
		HIGHWAY_PEDESTRIAN: {},
		HIGHWAY_STEPS:      {},
		HIGHWAY_TRACK:      {},
		HIGHWAY_PATH:       {},
	}

	// Total lane count assumed when the way carries no lane tagging at all.
	defaultLanesByHighway = map[HighwayType]int{
		HIGHWAY_MOTORWAY:         4,
		HIGHWAY_MOTORWAY_LINK:    1,
		HIGHWAY_TRUNK:            4,
		HIGHWAY_TRUNK_LINK:       1,
		HIGHWAY_PRIMARY:          2,
		HIGHWAY_PRIMARY_LINK:     1,
		HIGHWAY_SECONDARY:        2,
		HIGHWAY_SECONDARY_LINK:   1,
		HIGHWAY_TERTIARY:         2,
		HIGHWAY_TERTIARY_LINK:    1,
		HIGHWAY_RESIDENTIAL:      2,
		HIGHWAY_RESIDENTIAL_LINK: 1,
		HIGHWAY_LIVING_STREET:    1,
		HIGHWAY_SERVICE:          1,
		HIGHWAY_SERVICES:         1,
		HIGHWAY_CONSTRUCTION:     2,
		HIGHWAY_UNCLASSIFIED:     2,
	}

	// Tags describing something that is not a usable road at all.
	negligibleHighwayTags = map[string]struct{}{
		"proposed":   {},
		"planned":    {},
		"abandoned":  {},
		"dismantled": {},
		"disused":    {},
		"razed":      {},
		"raceway":    {},
		"rest_area":  {},
		"bus_stop":   {},
		"platform":   {},
		"corridor":   {},
		"elevator":   {},
		"escalator":  {},
		"no":         {},
	}

	// See ref.: https://wiki.openstreetmap.org/wiki/Tag:oneway%3Dreversible
	onewayReversible = map[string]struct{}{
		"reversible":  {},
		"alternating": {},
	}
)
