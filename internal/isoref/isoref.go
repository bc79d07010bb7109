// Package isoref answers membership questions against the ISO 3166-1 alpha-2
// country registry and the ISO 639-1 alpha-2 language registry.
//
// Lookups are backed by the registry data compiled into golang.org/x/text, so
// a well-formed but unassigned code (e.g. "ZZ", which is user-assigned in ISO
// 3166-1) is rejected, not just pattern-checked.
package isoref

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// ValidCountryCode reports whether code is an assigned ISO 3166-1 alpha-2
// country code in its canonical uppercase form.
func ValidCountryCode(code string) bool {
	if len(code) != 2 || !isUpperAlpha(code) {
		return false
	}
	r, err := language.ParseRegion(code)
	if err != nil {
		return false
	}
	// ParseRegion also accepts groupings (e.g. UN M.49 areas) and
	// user-assigned codes such as ZZ; only real countries qualify.
	return r.IsCountry()
}

// ValidLanguageCode reports whether code is an assigned ISO 639-1 alpha-2
// language code in its canonical lowercase form.
func ValidLanguageCode(code string) bool {
	if len(code) != 2 || !isLowerAlpha(code) {
		return false
	}
	_, err := language.ParseBase(code)
	return err == nil
}

// isoShortNames overrides CLDR display names with the official ISO 3166
// short names where the two disagree.
var isoShortNames = map[string]string{
	"US": "United States of America",
	"GB": "United Kingdom of Great Britain and Northern Ireland",
	"RU": "Russian Federation",
	"KR": "Korea, Republic of",
	"VN": "Viet Nam",
}

// CountryName returns the English name for an ISO 3166-1 alpha-2 code: the
// official ISO short name where it differs from CLDR, otherwise the CLDR
// display name, falling back to the code itself when it cannot be resolved.
func CountryName(code string) string {
	if !ValidCountryCode(code) {
		return code
	}
	if name, ok := isoShortNames[code]; ok {
		return name
	}
	r, err := language.ParseRegion(code)
	if err != nil {
		return code
	}
	if name := display.English.Regions().Name(r); name != "" {
		return name
	}
	return code
}

// FlagEmoji returns the regional-indicator flag for an ISO 3166-1 alpha-2
// code, or the empty string for anything that is not two ASCII letters.
func FlagEmoji(code string) string {
	if len(code) != 2 || !isUpperAlpha(code) {
		return ""
	}
	const base = 0x1F1E6 // REGIONAL INDICATOR SYMBOL LETTER A
	return string(rune(base+int(code[0]-'A'))) + string(rune(base+int(code[1]-'A')))
}

func isUpperAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

func isLowerAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
