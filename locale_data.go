package osm2lanes

// Static locale reference tables. Initialized once, never mutated, safe for
// concurrent readers.

var (
	// See ref.: https://en.wikipedia.org/wiki/Left-_and_right-hand_traffic
	leftDrivingCountries = map[string]struct{}{
		"AU": {},
		"BD": {},
		"BN": {},
		"BS": {},
		"BT": {},
		"BW": {},
		"CY": {},
		"FJ": {},
		"GB": {},
		"GY": {},
		"HK": {},
		"ID": {},
		"IE": {},
		"IN": {},
		"JM": {},
		"JP": {},
		"KE": {},
		"LK": {},
		"LS": {},
		"MO": {},
		"MT": {},
		"MU": {},
		"MV": {},
		"MW": {},
		"MY": {},
		"MZ": {},
		"NA": {},
		"NP": {},
		"NZ": {},
		"PG": {},
		"PK": {},
		"SB": {},
		"SC": {},
		"SG": {},
		"SR": {},
		"SZ": {},
		"TH": {},
		"TT": {},
		"TZ": {},
		"UG": {},
		"ZA": {},
		"ZM": {},
		"ZW": {},
	}

	imperialCountries = map[string]struct{}{
		"GB": {},
		"LR": {},
		"MM": {},
		"US": {},
	}

	// Subdivision-level exceptions to the country default.
	subdivisionDrivingSide = map[string]DrivingSide{
		"US-VI": DRIVING_SIDE_LEFT, // US Virgin Islands keep left
	}

	subdivisionMeasurement = map[string]MeasurementSystem{}

	rightDrivingCountries = map[string]struct{}{
		"AR": {},
		"AT": {},
		"BE": {},
		"BR": {},
		"CA": {},
		"CH": {},
		"CL": {},
		"CN": {},
		"CO": {},
		"CZ": {},
		"DE": {},
		"DK": {},
		"EE": {},
		"EG": {},
		"ES": {},
		"FI": {},
		"FR": {},
		"GR": {},
		"HR": {},
		"HU": {},
		"IL": {},
		"IS": {},
		"IT": {},
		"KR": {},
		"KZ": {},
		"LR": {},
		"LT": {},
		"LU": {},
		"LV": {},
		"MA": {},
		"MM": {},
		"MX": {},
		"NG": {},
		"NL": {},
		"NO": {},
		"PE": {},
		"PH": {},
		"PL": {},
		"PT": {},
		"RO": {},
		"RS": {},
		"RU": {},
		"SA": {},
		"SE": {},
		"SI": {},
		"SK": {},
		"TR": {},
		"UA": {},
		"US": {},
		"UY": {},
		"VN": {},
	}

	knownCountries = func() map[string]struct{} {
		all := make(map[string]struct{}, len(leftDrivingCountries)+len(rightDrivingCountries))
		for code := range leftDrivingCountries {
			all[code] = struct{}{}
		}
		for code := range rightDrivingCountries {
			all[code] = struct{}{}
		}
		return all
	}()
)
