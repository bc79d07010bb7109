package validator

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rignaneseleo/groups-for-nomads/parser"
	"github.com/rignaneseleo/groups-for-nomads/schema"
)

const testSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "required": ["groups"],
  "properties": {
    "version": {"type": "integer"},
    "groups": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "platform", "url"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "platform": {"enum": ["telegram", "whatsapp", "discord", "facebook", "slack", "signal", "line", "meetup", "website"]},
          "url": {"type": "string", "pattern": "^https?://"},
          "locations": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["continent"],
              "properties": {
                "continent": {"enum": ["Africa", "Antarctica", "Asia", "Europe", "North America", "Oceania", "South America"]},
                "country_id": {"type": "string", "pattern": "^[A-Z]{2}$"},
                "city": {"type": "string"}
              }
            }
          },
          "tags": {"type": "array", "items": {"type": "string"}},
          "language_id": {"type": "string", "pattern": "^[a-z]{2}$"},
          "commercial": {"type": "boolean"},
          "description": {"type": "string"}
        }
      }
    }
  }
}`

// writeDataFile writes the document and a schema.json sibling so the schema
// search order resolves without an explicit path.
func writeDataFile(t *testing.T, doc string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, schema.DefaultFileName), []byte(testSchema), 0o644))
	dataPath := filepath.Join(dir, "groups.yaml")
	require.NoError(t, os.WriteFile(dataPath, []byte(doc), 0o644))
	return dataPath
}

const cleanDoc = `version: 1
groups:
  - name: Bangkok Digital Nomads
    platform: telegram
    url: https://t.me/bangkoknomads
    locations:
      - continent: Asia
        country_id: TH
        city: Bangkok
    language_id: en
  - name: Lisbon Remote Workers
    platform: whatsapp
    url: https://chat.whatsapp.com/AbCdEf123
    locations:
      - continent: Europe
        country_id: PT
`

func TestValidateCleanDocument(t *testing.T) {
	dataPath := writeDataFile(t, cleanDoc)

	result, err := ValidateWithOptions(WithDataFile(dataPath))
	require.NoError(t, err)

	assert.True(t, result.Valid)
	assert.Empty(t, result.Findings)
	assert.Equal(t, 0, result.FindingCount)
	assert.Equal(t, 2, result.GroupCount)
	assert.Equal(t, dataPath, result.SourcePath)
}

func TestValidateMissingRequiredField(t *testing.T) {
	dataPath := writeDataFile(t, `groups:
  - name: No URL Here
    platform: telegram
`)

	result, err := ValidateWithOptions(WithDataFile(dataPath))
	require.NoError(t, err)

	assert.False(t, result.Valid)
	require.Len(t, result.Findings, 1)

	f := result.Findings[0]
	assert.Equal(t, "/groups/0", f.Path)
	assert.Equal(t, "required", f.Keyword)
	assert.Contains(t, f.Message, "url")
	assert.NotEmpty(t, f.SchemaPath)
	assert.Nil(t, f.Value)
	assert.Equal(t, 2, f.Line, "finding should carry the group's source line")
}

func TestValidateDuplicateGroups(t *testing.T) {
	dataPath := writeDataFile(t, `groups:
  - name: Berlin Nomads
    platform: telegram
    url: https://t.me/berlinnomads
  - name: Berlin Nomads
    platform: telegram
    url: https://t.me/berlinnomads
`)

	result, err := ValidateWithOptions(WithDataFile(dataPath))
	require.NoError(t, err)

	require.Len(t, result.Findings, 1, "a duplicate pair yields exactly one finding")

	f := result.Findings[0]
	assert.Equal(t, "/groups/1", f.Path)
	assert.Equal(t, "duplicate", f.Keyword)
	assert.Contains(t, f.Message, "/groups/0")
	assert.Equal(t, 5, f.Line)
}

func TestValidateCountryCodes(t *testing.T) {
	// ZZ is well-formed but user-assigned, not an actual country.
	dataPath := writeDataFile(t, `groups:
  - name: Real Country
    platform: telegram
    url: https://t.me/real
    locations:
      - continent: Asia
        country_id: TH
  - name: Fake Country
    platform: telegram
    url: https://t.me/fake
    locations:
      - continent: Asia
        country_id: ZZ
`)

	result, err := ValidateWithOptions(WithDataFile(dataPath))
	require.NoError(t, err)

	require.Len(t, result.Findings, 1)

	f := result.Findings[0]
	assert.Equal(t, "/groups/1/locations/0/country_id", f.Path)
	assert.Equal(t, "country-code", f.Keyword)
	assert.Equal(t, "ZZ", f.Value)
	assert.Greater(t, f.Line, 0)
}

func TestValidateLanguageCode(t *testing.T) {
	dataPath := writeDataFile(t, `groups:
  - name: Unknown Language
    platform: telegram
    url: https://t.me/unknown
    language_id: xx
`)

	result, err := ValidateWithOptions(WithDataFile(dataPath))
	require.NoError(t, err)

	require.Len(t, result.Findings, 1)
	assert.Equal(t, "/groups/0/language_id", result.Findings[0].Path)
	assert.Equal(t, "language-code", result.Findings[0].Keyword)
}

func TestValidatePlatformURL(t *testing.T) {
	dataPath := writeDataFile(t, `groups:
  - name: Wrong Link
    platform: telegram
    url: https://facebook.com/groups/notelegram
`)

	result, err := ValidateWithOptions(WithDataFile(dataPath))
	require.NoError(t, err)

	require.Len(t, result.Findings, 1)

	f := result.Findings[0]
	assert.Equal(t, "/groups/0/url", f.Path)
	assert.Equal(t, "platform-url", f.Keyword)
	assert.Contains(t, f.Message, "telegram")
	assert.Equal(t, "https://facebook.com/groups/notelegram", f.Value)
}

func TestValidateAggregatesAllFindings(t *testing.T) {
	dataPath := writeDataFile(t, `groups:
  - name: Missing URL
    platform: telegram
  - name: Bad Everything
    platform: telegram
    url: https://not-telegram.example.com/x
    language_id: xx
    locations:
      - continent: Asia
        country_id: ZZ
`)

	result, err := ValidateWithOptions(WithDataFile(dataPath))
	require.NoError(t, err)

	require.Len(t, result.Findings, 4)

	// Sorted by ascending path depth, then message.
	assert.Equal(t, "/groups/0", result.Findings[0].Path)
	assert.Equal(t, "/groups/1/language_id", result.Findings[1].Path)
	assert.Equal(t, "/groups/1/url", result.Findings[2].Path)
	assert.Equal(t, "/groups/1/locations/0/country_id", result.Findings[3].Path)
	assert.Equal(t, 4, result.FindingCount)
}

func TestValidateFailFast(t *testing.T) {
	dataPath := writeDataFile(t, `groups:
  - name: Missing URL
    platform: telegram
  - name: Bad Everything
    platform: telegram
    url: https://not-telegram.example.com/x
    language_id: xx
    locations:
      - continent: Asia
        country_id: ZZ
`)

	result, err := ValidateWithOptions(WithDataFile(dataPath), WithFailFast(true))
	require.NoError(t, err)

	require.Len(t, result.Findings, 1, "fail-fast keeps a single finding")
	assert.Equal(t, "/groups/1/locations/0/country_id", result.Findings[0].Path,
		"fail-fast keeps the deepest-path finding")
	assert.Equal(t, 1, result.FindingCount)
	assert.False(t, result.Valid)
}

func TestValidateUnknownPlatform(t *testing.T) {
	dataPath := writeDataFile(t, `groups:
  - name: Bad Platform
    platform: myspace
    url: https://example.com/x
`)

	result, err := ValidateWithOptions(WithDataFile(dataPath))
	require.NoError(t, err)

	// With no registered URL shape for the platform, the enum violation is
	// the only finding; no platform-url check fires.
	require.Len(t, result.Findings, 1)
	f := result.Findings[0]
	assert.Equal(t, "/groups/0/platform", f.Path)
	assert.Equal(t, "enum", f.Keyword)
	assert.Equal(t, "myspace", f.Value)
}

func TestValidateWithParsedAndSchema(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0o644))

	sch, err := schema.Load(schemaPath)
	require.NoError(t, err)

	pr, err := parser.ParseWithOptions(parser.WithBytes([]byte(cleanDoc)))
	require.NoError(t, err)

	result, err := ValidateWithOptions(WithParsed(*pr), WithSchema(sch))
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, 2, result.GroupCount)
}

func TestValidatorReuseResolvesEachDocument(t *testing.T) {
	schemaPath := filepath.Join(t.TempDir(), "schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0o644))
	sch, err := schema.Load(schemaPath)
	require.NoError(t, err)

	first, err := parser.ParseWithOptions(parser.WithBytes([]byte(`groups:
  - name: First
    platform: telegram
`)))
	require.NoError(t, err)

	// Same violation, but three lines further down.
	second, err := parser.ParseWithOptions(parser.WithBytes([]byte(`version: 1


groups:
  - name: Second
    platform: telegram
`)))
	require.NoError(t, err)

	v := New()

	r1, err := v.ValidateParsed(*first, sch)
	require.NoError(t, err)
	require.Len(t, r1.Findings, 1)
	assert.Equal(t, 2, r1.Findings[0].Line)

	r2, err := v.ValidateParsed(*second, sch)
	require.NoError(t, err)
	require.Len(t, r2.Findings, 1)
	assert.Equal(t, 5, r2.Findings[0].Line, "positions resolve against the current document")
}

func TestValidateOptionErrors(t *testing.T) {
	_, err := ValidateWithOptions()
	assert.ErrorContains(t, err, "input source")

	pr, perr := parser.ParseWithOptions(parser.WithBytes([]byte(cleanDoc)))
	require.NoError(t, perr)

	_, err = ValidateWithOptions(WithDataFile("x.yaml"), WithParsed(*pr))
	assert.ErrorContains(t, err, "exactly one")

	_, err = ValidateWithOptions(WithDataFile("x.yaml"), WithSchemaPath("a"), WithSchema(&schema.Schema{}))
	assert.ErrorContains(t, err, "mutually exclusive")
}

func TestValidPlatformURL(t *testing.T) {
	tests := []struct {
		platform string
		url      string
		want     bool
	}{
		{"telegram", "https://t.me/nomads", true},
		{"telegram", "https://example.com/nomads", false},
		{"whatsapp", "https://chat.whatsapp.com/AbC123", true},
		{"whatsapp", "https://whatsapp.com/AbC123", false},
		{"discord", "https://discord.gg/abc", true},
		{"discord", "https://discord.com/invite/abc", true},
		{"facebook", "https://www.facebook.com/groups/abc", true},
		{"facebook", "https://m.facebook.com/groups/abc", true},
		{"slack", "https://nomads.slack.com/join/xyz", true},
		{"signal", "https://signal.group/#abc", true},
		{"line", "https://line.me/R/ti/g/abc", true},
		{"meetup", "https://www.meetup.com/remote-workers/", true},
		{"website", "http://example.com", true},
		{"website", "ftp://example.com", false},
		{"myspace", "https://myspace.com/x", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidPlatformURL(tt.platform, tt.url),
			"%s %s", tt.platform, tt.url)
	}
}

func TestSupportedPlatforms(t *testing.T) {
	platforms := SupportedPlatforms()
	assert.Contains(t, platforms, "telegram")
	assert.Contains(t, platforms, "website")
	assert.True(t, sort.StringsAreSorted(platforms))
}
