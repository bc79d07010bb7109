package validator

import (
	"fmt"
	"strconv"

	"github.com/rignaneseleo/groups-for-nomads/internal/isoref"
	"github.com/rignaneseleo/groups-for-nomads/parser"
)

// domainFindings applies the checks the schema cannot express: invite-link
// shapes per platform, registered ISO codes, and duplicate entries.
func (v *Validator) domainFindings(dir *parser.Directory) []Finding {
	findings := make([]Finding, 0, defaultFindingCapacity)

	type identity struct {
		name string
		url  string
	}
	seen := make(map[identity]int, len(dir.Groups))

	for i, group := range dir.Groups {
		groupPtr := "/groups/" + strconv.Itoa(i)

		// Unregistered platforms have no URL shape to check; the schema
		// enum already reports them.
		if pattern := PlatformURLPattern(group.Platform); pattern != nil && group.URL != "" && !pattern.MatchString(group.URL) {
			findings = append(findings, Finding{
				Path:    groupPtr + "/url",
				Keyword: "platform-url",
				Message: fmt.Sprintf("url does not match the %s invite-link format", group.Platform),
				Value:   group.URL,
			})
		}

		for j, loc := range group.Locations {
			if loc.CountryID == "" {
				continue
			}
			if !isoref.ValidCountryCode(loc.CountryID) {
				findings = append(findings, Finding{
					Path:    groupPtr + "/locations/" + strconv.Itoa(j) + "/country_id",
					Keyword: "country-code",
					Message: fmt.Sprintf("%q is not an assigned ISO 3166-1 alpha-2 country code", loc.CountryID),
					Value:   loc.CountryID,
				})
			}
		}

		if group.LanguageID != "" && !isoref.ValidLanguageCode(group.LanguageID) {
			findings = append(findings, Finding{
				Path:    groupPtr + "/language_id",
				Keyword: "language-code",
				Message: fmt.Sprintf("%q is not an ISO 639-1 language code", group.LanguageID),
				Value:   group.LanguageID,
			})
		}

		id := identity{name: group.Name, url: group.URL}
		if first, dup := seen[id]; dup {
			findings = append(findings, Finding{
				Path:    groupPtr,
				Keyword: "duplicate",
				Message: fmt.Sprintf("duplicate of group at /groups/%d: same name and url", first),
				Value:   group.Name,
			})
		} else {
			seen[id] = i
		}
	}

	return findings
}
