package parser

// Directory is the typed shape of the groups data file.
type Directory struct {
	// Version is the data format version
	Version string `yaml:"version,omitempty"`
	// Groups holds the directory entries in file order
	Groups []Group `yaml:"groups"`
}

// Group is one directory entry.
type Group struct {
	// Name is the display name of the group
	Name string `yaml:"name"`
	// Platform is the lowercase platform tag (telegram, whatsapp, ...)
	Platform string `yaml:"platform"`
	// URL is the join/landing link for the group
	URL string `yaml:"url"`
	// Locations lists where the group is anchored; empty means worldwide
	Locations []Location `yaml:"locations,omitempty"`
	// Tags are free-form labels
	Tags []string `yaml:"tags,omitempty"`
	// LanguageID is an ISO 639-1 alpha-2 language code
	LanguageID string `yaml:"language_id,omitempty"`
	// Commercial marks groups run for profit; omitted when false
	Commercial bool `yaml:"commercial,omitempty"`
	// Description is optional free text from the submission form
	Description string `yaml:"description,omitempty"`
}

// Location is one continent/country/city anchor of a group.
type Location struct {
	// Continent is one of the seven continent names
	Continent string `yaml:"continent"`
	// CountryID is an ISO 3166-1 alpha-2 country code
	CountryID string `yaml:"country_id,omitempty"`
	// City is a free-form city name
	City string `yaml:"city,omitempty"`
}

// Continents is the closed set of continent names accepted in locations.
var Continents = []string{
	"Africa",
	"Antarctica",
	"Asia",
	"Europe",
	"North America",
	"Oceania",
	"South America",
}

// ValidContinent reports whether name is one of the seven continents.
func ValidContinent(name string) bool {
	for _, c := range Continents {
		if c == name {
			return true
		}
	}
	return false
}
