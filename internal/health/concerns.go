package health

// Concerns is the built-in health concern table, keyed by the request
// key.
var Concerns = map[string]Concern{
	"asthma": {
		Name:     "Asthma",
		Advisory: "Cold or very humid air can constrict airways. Keep a reliever inhaler at hand and warm up slowly before exertion.",
		Trigger: Trigger{
			LowTempC:        ptr(5),
			HighHumidityPct: ptr(90),
		},
	},
	"arthritis": {
		Name:     "Arthritis",
		Advisory: "Cold, damp conditions are associated with joint stiffness. Dress warmly and favor gentle indoor movement today.",
		Trigger: Trigger{
			LowTempC:     ptr(10),
			HeavyRain:    true,
			RainTempBand: &TempBand{LowC: 0, HighC: 16},
		},
	},
	"migraine": {
		Name:     "Migraine",
		Advisory: "Heat combined with high humidity is a common migraine trigger. Stay hydrated and limit time in direct sun.",
		Trigger: Trigger{
			HighTempC:          ptr(30),
			HighHumidityPct:    ptr(80),
			HumidityAboveTempC: ptr(25),
		},
	},
	"heatstroke_exhaustion": {
		Name:     "Heatstroke and heat exhaustion",
		Advisory: "Dangerous heat stress is possible. Avoid strenuous activity, seek shade, and drink water frequently.",
		Trigger: Trigger{
			HighFeelsLikeC:   ptr(38),
			ExtremeHighTempC: ptr(40),
		},
	},
	"hypothermia_frostbite": {
		Name:     "Hypothermia and frostbite",
		Advisory: "Sub-freezing conditions can cause frostbite on exposed skin. Layer up and limit time outdoors.",
		Trigger: Trigger{
			LowTempC: ptr(0),
		},
	},
	"dehydration": {
		Name:     "Dehydration",
		Advisory: "High temperatures increase fluid loss. Drink water regularly even if you do not feel thirsty.",
		Trigger: Trigger{
			HighTempC:      ptr(32),
			HighFeelsLikeC: ptr(35),
		},
	},
	"common_cold_flu": {
		Name:     "Cold and flu",
		Advisory: "Cold, wet weather strains the immune system. Stay dry, and change out of wet clothes promptly.",
		Trigger: Trigger{
			LowTempC:  ptr(8),
			HeavyRain: true,
		},
	},
}
