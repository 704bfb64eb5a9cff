package activity

// Profiles is the built-in activity preference table, keyed by the
// request key. Static data, read-only at runtime.
var Profiles = map[string]Profile{
	"running": {
		Name:           "Running",
		IdealTempRange: &TempRange{LowC: 5, HighC: 20},
		MinTempC:       ptr(-5),
		MaxWindKMH:     ptr(25),
		MaxHumidity:    ptr(85),
		Avoid:          []string{"Rain", "Thunderstorm", "Snow", "Extreme Heat", "Strong Wind"},
	},
	"cycling": {
		Name:           "Cycling",
		IdealTempRange: &TempRange{LowC: 8, HighC: 24},
		MinTempC:       ptr(0),
		MaxWindKMH:     ptr(30),
		Avoid:          []string{"Rain", "Thunderstorm", "Snow", "Strong Wind"},
	},
	"hiking": {
		Name:           "Hiking",
		IdealTempRange: &TempRange{LowC: 5, HighC: 25},
		MinTempC:       ptr(-10),
		MaxWindKMH:     ptr(40),
		Avoid:          []string{"Thunderstorm", "Extreme Heat"},
	},
	"picnic": {
		Name:           "Picnic",
		IdealTempRange: &TempRange{LowC: 15, HighC: 28},
		MaxWindKMH:     ptr(20),
		MaxHumidity:    ptr(80),
		Avoid:          []string{"Rain", "Drizzle", "Thunderstorm", "Strong Wind"},
	},
	"beach_day": {
		Name:           "Beach day",
		IdealTempRange: &TempRange{LowC: 22, HighC: 33},
		MaxWindKMH:     ptr(35),
		Avoid:          []string{"Rain", "Thunderstorm"},
		Require:        []string{"Clear"},
	},
	"gardening": {
		Name:           "Gardening",
		IdealTempRange: &TempRange{LowC: 10, HighC: 27},
		MaxHumidity:    ptr(90),
		Avoid:          []string{"Thunderstorm", "Snow", "Extreme Heat"},
	},
	"stargazing": {
		Name:     "Stargazing",
		MinTempC: ptr(-15),
		Avoid:    []string{"Rain", "Snow", "Fog", "Mist"},
		Require:  []string{"Clear"},
	},
	// Listing two categories keeps the historical require-all
	// behaviour observable; a single category can never match both.
	"photography": {
		Name:           "Outdoor photography",
		IdealTempRange: &TempRange{LowC: 0, HighC: 30},
		Avoid:          []string{"Rain", "Thunderstorm"},
		Require:        []string{"Clear", "Clouds"},
	},
}
