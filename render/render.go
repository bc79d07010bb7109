// Package render generates the markdown directory index from a parsed groups
// file.
//
// The index has a table of contents followed by a World section for
// location-independent groups and one section per continent, with country and
// city subsections. Output is deterministic: continents, countries, and
// cities are emitted in sorted order, and groups keep their document order
// within each section.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rignaneseleo/groups-for-nomads/internal/isoref"
	"github.com/rignaneseleo/groups-for-nomads/parser"
)

// platformIcons maps platforms to their repository icon assets. Platforms
// without an icon render as a bare link.
var platformIcons = map[string]string{
	"telegram": "icons/telegram.svg",
	"whatsapp": "icons/whatsapp.svg",
	"discord":  "icons/discord.svg",
	"facebook": "icons/facebook.svg",
	"slack":    "icons/slack.svg",
	"signal":   "icons/signal.svg",
	"line":     "icons/line.svg",
	"meetup":   "icons/meetup.svg",
}

const sectionSpacer = "<p>&nbsp;</p><p>&nbsp;</p>\n\n"

// placement ties a group to one of its locations; a group with several
// locations appears once per location.
type placement struct {
	group    parser.Group
	location parser.Location
}

// country identifies a country section within a continent.
type country struct {
	id   string
	name string
}

// Index renders the full markdown index for the directory.
func Index(dir *parser.Directory) string {
	var world []parser.Group
	byContinent := make(map[string][]placement)

	for _, group := range dir.Groups {
		if len(group.Locations) == 0 {
			world = append(world, group)
			continue
		}
		for _, loc := range group.Locations {
			if loc.Continent == "" {
				world = append(world, group)
				continue
			}
			byContinent[loc.Continent] = append(byContinent[loc.Continent], placement{group, loc})
		}
	}

	continents := make([]string, 0, len(byContinent))
	for c := range byContinent {
		continents = append(continents, c)
	}
	sort.Strings(continents)

	var b strings.Builder
	writeTOC(&b, continents, byContinent)

	b.WriteString("------\n\n")

	b.WriteString("# World <a name=\"world\"></a>\n")
	b.WriteString("[//]: # (Country-independent Networks and Communities go here)\n")
	for _, group := range world {
		writeGroupLine(&b, group)
	}
	b.WriteString(sectionSpacer)

	for _, continent := range continents {
		writeContinent(&b, continent, byContinent[continent])
	}

	return b.String()
}

// writeTOC emits the index header with links to the World section and to
// every continent and country.
func writeTOC(b *strings.Builder, continents []string, byContinent map[string][]placement) {
	b.WriteString("# Index\n")
	b.WriteString("[//]: # (Continents and countries go here)\n")
	b.WriteString("### [World](#world)\n\n")

	for _, continent := range continents {
		fmt.Fprintf(b, "### [%s](#continent-%s)\n", continent, anchor(continent))
		for _, c := range countriesOf(byContinent[continent]) {
			fmt.Fprintf(b, "- [%s %s](#%s)\n", isoref.FlagEmoji(c.id), c.name, anchor(c.name))
		}
		b.WriteString("\n")
	}
}

// writeContinent emits one continent section: continent-level groups first,
// then one subsection per country.
func writeContinent(b *strings.Builder, continent string, placements []placement) {
	fmt.Fprintf(b, "# %s <a name=\"continent-%s\"></a>\n\n", continent, anchor(continent))

	for _, p := range placements {
		if p.location.CountryID == "" {
			writeGroupLine(b, p.group)
		}
	}

	for _, c := range countriesOf(placements) {
		writeCountry(b, c, placements)
	}
}

// writeCountry emits one country subsection: country-level groups first,
// then one block per city.
func writeCountry(b *strings.Builder, c country, placements []placement) {
	fmt.Fprintf(b, "## %s %s <a name=\"%s\"></a>\n", c.name, isoref.FlagEmoji(c.id), anchor(c.name))

	cities := make(map[string]bool)
	for _, p := range placements {
		if p.location.CountryID != c.id {
			continue
		}
		if p.location.City == "" {
			writeGroupLine(b, p.group)
		} else {
			cities[p.location.City] = true
		}
	}

	sorted := make([]string, 0, len(cities))
	for city := range cities {
		sorted = append(sorted, city)
	}
	sort.Strings(sorted)

	for _, city := range sorted {
		fmt.Fprintf(b, "### %s\n", city)
		for _, p := range placements {
			if p.location.CountryID == c.id && p.location.City == city {
				writeGroupLine(b, p.group)
			}
		}
	}

	b.WriteString(sectionSpacer)
}

// writeGroupLine emits a single group entry: optional platform icon, then a
// link whose label carries the language and commercial markers.
func writeGroupLine(b *strings.Builder, g parser.Group) {
	if icon, ok := platformIcons[g.Platform]; ok {
		fmt.Fprintf(b, "![%s](%s) ", capitalize(g.Platform), icon)
	}

	label := g.Name
	if label == "" {
		label = "Unknown Group"
	}
	if g.LanguageID != "" {
		label += " (" + strings.ToUpper(g.LanguageID) + ")"
	}
	if g.Commercial {
		label += " (Commercial)"
	}

	url := g.URL
	if url == "" {
		url = "#"
	}

	fmt.Fprintf(b, "[%s](%s)\n\n", label, url)
}

// countriesOf collects the distinct countries referenced by the placements,
// sorted by display name.
func countriesOf(placements []placement) []country {
	seen := make(map[string]bool)
	var out []country
	for _, p := range placements {
		id := p.location.CountryID
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, country{id: id, name: isoref.CountryName(id)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// anchor converts a display name into its markdown anchor form.
func anchor(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "-"))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
