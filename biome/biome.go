package biome

// Biome is a named portfolio section styled as a game world area
type Biome struct {
	ID      string
	Name    string
	Tagline string
	// SkyHex and GroundHex anchor the section's rendered gradient
	SkyHex    string
	GroundHex string
	Lines     []string
}

// Biomes is the fixed world map: each portfolio section as an area
var Biomes = []Biome{
	{
		ID:        "meadow",
		Name:      "Meadow of Origins",
		Tagline:   "about me",
		SkyHex:    "#87ceeb",
		GroundHex: "#3a7d44",
		Lines: []string{
			"Backend engineer with a weakness for terminals.",
			"I build network services, data plumbing and the",
			"occasional game that pretends to be a website.",
			"",
			"Currently roaming somewhere between Go, Linux",
			"and a pile of mechanical keyboards.",
		},
	},
	{
		ID:        "caverns",
		Name:      "Crystal Caverns",
		Tagline:   "projects",
		SkyHex:    "#2b2d42",
		GroundHex: "#5c4d7d",
		Lines: []string{
			"The deep mines hold finished artifacts.",
			"",
			"Open the inventory (press Enter) to browse the",
			"project gallery, or break trivia blocks in the",
			"caverns to dig up facts.",
		},
	},
	{
		ID:        "peaks",
		Name:      "Skyreach Peaks",
		Tagline:   "skills",
		SkyHex:    "#b8d8e8",
		GroundHex: "#6b7a8f",
		Lines: []string{
			"Climbed so far:",
			"",
			"  Go, distributed systems, protocol design,",
			"  PostgreSQL and SQLite, observability,",
			"  terminal UIs, audio synthesis for fun.",
			"",
			"The parkour course starts here. Good luck.",
		},
	},
	{
		ID:        "harbor",
		Name:      "Lastlight Harbor",
		Tagline:   "contact",
		SkyHex:    "#f4a261",
		GroundHex: "#264653",
		Lines: []string{
			"Ships leave daily. Send one back:",
			"",
			"  mail   hello@hexworth.dev",
			"  code   github.com/hexworth",
			"",
			"Messages in bottles are answered slower.",
		},
	},
}

// ByID returns the biome with the given id, ok=false when unknown
func ByID(id string) (Biome, bool) {
	for _, b := range Biomes {
		if b.ID == id {
			return b, true
		}
	}
	return Biome{}, false
}
