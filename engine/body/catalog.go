package body

// Facts holds the educational data shown in the info table for one body.
// Purely descriptive; nothing in the simulation reads these values.
type Facts struct {
	// Name matches the Config.Name of the body the facts describe.
	Name string
	// RadiusKM is the body's real mean radius in kilometers.
	RadiusKM float64
	// DayHours is the real rotation period in Earth hours.
	DayHours float64
	// YearDays is the real orbital period in Earth days (0 for the Sun).
	YearDays float64
	// Satellites is the real number of known natural satellites.
	Satellites int
	// Description is a one-sentence summary for the info table.
	Description string
}

// CatalogEntry pairs a body's simulation configuration with its facts.
type CatalogEntry struct {
	Config Config
	Facts  Facts
}

// Catalog returns the data-driven table of the Sun and the eight planets.
// Fixed orbital parameters live in each Config; mutable per-frame angles are
// created fresh by NewBodyFromConfig, so the catalog itself never changes.
// Visual radii, sizes, and speeds are exaggerated for legibility rather than
// being to scale; the Facts carry the real figures.
func Catalog() []CatalogEntry {
	return []CatalogEntry{
		{
			Config: Config{
				Name:          "Sun",
				OrbitRadius:   0,
				OrbitSpeed:    0,
				RotationSpeed: 10,
				Size:          1.0,
				TexturePath:   "textures/sun.jpg",
			},
			Facts: Facts{
				Name:        "Sun",
				RadiusKM:    696000,
				DayHours:    609.1,
				YearDays:    0,
				Satellites:  0,
				Description: "The star at the center of the solar system, a near-perfect sphere of hot plasma.",
			},
		},
		{
			Config: Config{
				Name:          "Mercury",
				OrbitRadius:   1.8,
				OrbitSpeed:    48,
				RotationSpeed: 6,
				Size:          0.12,
				TexturePath:   "textures/mercury.jpg",
			},
			Facts: Facts{
				Name:        "Mercury",
				RadiusKM:    2439.7,
				DayHours:    1407.6,
				YearDays:    88,
				Satellites:  0,
				Description: "The smallest planet and the closest to the Sun, with extreme temperature swings.",
			},
		},
		{
			Config: Config{
				Name:          "Venus",
				OrbitRadius:   2.6,
				OrbitSpeed:    35,
				RotationSpeed: -4,
				Size:          0.28,
				TexturePath:   "textures/venus.jpg",
			},
			Facts: Facts{
				Name:        "Venus",
				RadiusKM:    6051.8,
				DayHours:    5832.5,
				YearDays:    224.7,
				Satellites:  0,
				Description: "The hottest planet, wrapped in a dense carbon-dioxide atmosphere and spinning backwards.",
			},
		},
		{
			Config: Config{
				Name:          "Earth",
				OrbitRadius:   3.5,
				OrbitSpeed:    30,
				RotationSpeed: 60,
				Size:          0.3,
				Moon:          &MoonConfig{Distance: 0.7, Speed: 200},
				TexturePath:   "textures/earth.jpg",
			},
			Facts: Facts{
				Name:        "Earth",
				RadiusKM:    6371,
				DayHours:    23.9,
				YearDays:    365.2,
				Satellites:  1,
				Description: "The only known world to harbor life, orbited by a single large moon.",
			},
		},
		{
			Config: Config{
				Name:          "Mars",
				OrbitRadius:   4.6,
				OrbitSpeed:    24,
				RotationSpeed: 58,
				Size:          0.18,
				TexturePath:   "textures/mars.jpg",
			},
			Facts: Facts{
				Name:        "Mars",
				RadiusKM:    3389.5,
				DayHours:    24.6,
				YearDays:    687,
				Satellites:  2,
				Description: "The red planet, home to the tallest volcano and the deepest canyon in the solar system.",
			},
		},
		{
			Config: Config{
				Name:          "Jupiter",
				OrbitRadius:   6.2,
				OrbitSpeed:    13,
				RotationSpeed: 120,
				Size:          0.65,
				TexturePath:   "textures/jupiter.jpg",
			},
			Facts: Facts{
				Name:        "Jupiter",
				RadiusKM:    69911,
				DayHours:    9.9,
				YearDays:    4331,
				Satellites:  95,
				Description: "The largest planet, a gas giant whose Great Red Spot is a storm wider than Earth.",
			},
		},
		{
			Config: Config{
				Name:          "Saturn",
				OrbitRadius:   8.0,
				OrbitSpeed:    9,
				RotationSpeed: 110,
				Size:          0.55,
				Ring:          &RingConfig{TiltDegrees: 20, ScaleXZ: 2.0, ScaleY: 0.05},
				TexturePath:   "textures/saturn.jpg",
			},
			Facts: Facts{
				Name:        "Saturn",
				RadiusKM:    58232,
				DayHours:    10.7,
				YearDays:    10747,
				Satellites:  146,
				Description: "The ringed gas giant; its rings are made of countless chunks of ice and rock.",
			},
		},
		{
			Config: Config{
				Name:          "Uranus",
				OrbitRadius:   9.6,
				OrbitSpeed:    6,
				RotationSpeed: -90,
				Size:          0.4,
				TexturePath:   "textures/uranus.jpg",
			},
			Facts: Facts{
				Name:        "Uranus",
				RadiusKM:    25362,
				DayHours:    17.2,
				YearDays:    30589,
				Satellites:  28,
				Description: "An ice giant tipped on its side, rolling around the Sun with retrograde spin.",
			},
		},
		{
			Config: Config{
				Name:          "Neptune",
				OrbitRadius:   11.0,
				OrbitSpeed:    5,
				RotationSpeed: 95,
				Size:          0.38,
				TexturePath:   "textures/neptune.jpg",
			},
			Facts: Facts{
				Name:        "Neptune",
				RadiusKM:    24622,
				DayHours:    16.1,
				YearDays:    59800,
				Satellites:  16,
				Description: "The most distant planet, whipped by the fastest winds measured anywhere.",
			},
		},
	}
}
