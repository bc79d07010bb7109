// Package submission turns a GitHub issue-form body into a group entry and
// appends it to the data file without disturbing existing formatting.
package submission

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rignaneseleo/groups-for-nomads/parser"
)

// noResponse is the placeholder GitHub inserts for skipped optional fields.
const noResponse = "_No response_"

var sectionPattern = regexp.MustCompile(`(?m)^###\s+`)

// Submission holds the fields extracted from an issue form. Zero values mean
// the field was absent or skipped.
type Submission struct {
	Name        string
	Platform    string
	URL         string
	Continent   string
	CountryID   string
	City        string
	LanguageID  string
	Commercial  bool
	Tags        []string
	Description string
}

// ParseIssueBody extracts submission fields from the markdown body of an
// issue form. Sections are H3 headings followed by the answer; unknown
// headings are ignored.
func ParseIssueBody(body string) *Submission {
	var sub Submission

	for _, section := range sectionPattern.Split(body, -1) {
		section = strings.TrimSpace(section)
		if section == "" {
			continue
		}

		header, content, _ := strings.Cut(section, "\n")
		header = strings.TrimSpace(header)
		content = strings.TrimSpace(content)
		if content == noResponse {
			content = ""
		}

		switch header {
		case "Group Name":
			sub.Name = content
		case "Platform":
			sub.Platform = strings.ToLower(content)
		case "URL":
			sub.URL = content
		case "Continent":
			sub.Continent = content
		case "Country Code":
			sub.CountryID = strings.ToUpper(content)
		case "City":
			sub.City = content
		case "Language Code":
			sub.LanguageID = strings.ToLower(content)
		case "Commercial":
			sub.Commercial = strings.Contains(content, "[x]")
		case "Tags":
			sub.Tags = splitTags(content)
		case "Additional Information":
			sub.Description = content
		}
	}

	return &sub
}

// splitTags splits a comma-separated tag list, dropping empty entries.
func splitTags(content string) []string {
	if content == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(content, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// Validate checks that the required form fields were answered.
func (s *Submission) Validate() error {
	var missing []string
	if s.Name == "" {
		missing = append(missing, "name")
	}
	if s.Platform == "" {
		missing = append(missing, "platform")
	}
	if s.URL == "" {
		missing = append(missing, "url")
	}
	if len(missing) > 0 {
		return fmt.Errorf("submission: missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Group converts the submission into a directory entry. A location is added
// only when at least one location field was answered.
func (s *Submission) Group() parser.Group {
	g := parser.Group{
		Name:        s.Name,
		Platform:    s.Platform,
		URL:         s.URL,
		LanguageID:  s.LanguageID,
		Commercial:  s.Commercial,
		Tags:        s.Tags,
		Description: s.Description,
	}

	if s.Continent != "" || s.CountryID != "" || s.City != "" {
		g.Locations = []parser.Location{{
			Continent: s.Continent,
			CountryID: s.CountryID,
			City:      s.City,
		}}
	}

	return g
}
