package validator

import (
	"regexp"
	"sort"
)

// platformURLPatterns maps each supported chat platform to the URL shape its
// group invite links use. Patterns are anchored and case-insensitive in the
// host and scheme; invite tokens after the host keep their case.
var platformURLPatterns = map[string]*regexp.Regexp{
	"telegram": regexp.MustCompile(`(?i)^https://t\.me/.+`),
	"whatsapp": regexp.MustCompile(`(?i)^https://chat\.whatsapp\.com/.+`),
	"discord":  regexp.MustCompile(`(?i)^https://discord\.(gg|com)/.+`),
	"facebook": regexp.MustCompile(`(?i)^https://(www\.|m\.)?facebook\.com/.+`),
	"slack":    regexp.MustCompile(`(?i)^https://[a-z0-9-]+\.slack\.com/.+`),
	"signal":   regexp.MustCompile(`(?i)^https://signal\.group/.+`),
	"line":     regexp.MustCompile(`(?i)^https://line\.me/.+`),
	"meetup":   regexp.MustCompile(`(?i)^https://(www\.)?meetup\.com/.+`),
	"website":  regexp.MustCompile(`(?i)^https?://.+`),
}

// SupportedPlatforms returns the known platform identifiers in sorted order.
func SupportedPlatforms() []string {
	names := make([]string, 0, len(platformURLPatterns))
	for name := range platformURLPatterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PlatformURLPattern returns the invite-link pattern for a platform, or nil
// when the platform is unknown.
func PlatformURLPattern(platform string) *regexp.Regexp {
	return platformURLPatterns[platform]
}

// ValidPlatformURL reports whether url matches the expected invite-link shape
// for platform. Unknown platforms are reported as invalid; the schema already
// constrains the platform enum, so this is the fallback for skipped schemas.
func ValidPlatformURL(platform, url string) bool {
	pattern, ok := platformURLPatterns[platform]
	if !ok {
		return false
	}
	return pattern.MatchString(url)
}
