package osm2lanes

type MeasurementSystem uint16

const (
	MEASUREMENT_METRIC = MeasurementSystem(iota + 1)
	MEASUREMENT_IMPERIAL
)

func (iotaIdx MeasurementSystem) String() string {
	return [...]string{"metric", "imperial"}[iotaIdx-1]
}

func getMeasurementSystem(str string) MeasurementSystem {
	if found, ok := measurementSystems[str]; ok {
		return found
	}
	return 0
}

var (
	measurementSystems = map[string]MeasurementSystem{
		"metric":   MEASUREMENT_METRIC,
		"imperial": MEASUREMENT_IMPERIAL,
	}
)
