package weather

// UnknownConditions is shown for any code missing from the table.
const UnknownConditions = "unknown conditions"

var codeText = map[int]string{
	0:  "clear sky",
	1:  "mostly clear",
	2:  "mostly clear",
	3:  "overcast",
	45: "fog",
	48: "fog",
	51: "drizzle",
	53: "drizzle",
	55: "drizzle",
	61: "rain",
	63: "rain",
	65: "rain",
	71: "snow",
	73: "snow",
	75: "snow",
	80: "rain showers",
	81: "rain showers",
	82: "rain showers",
	95: "thunderstorm",
	96: "thunderstorm with hail",
	99: "thunderstorm with hail",
}

// Describe turns a WMO weather code into the dashboard wording.
func Describe(code int) string {
	if s, ok := codeText[code]; ok {
		return s
	}
	return UnknownConditions
}
