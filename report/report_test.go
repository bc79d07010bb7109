package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rignaneseleo/groups-for-nomads/validator"
)

func failingResult() *validator.Result {
	return &validator.Result{
		Valid:        false,
		FindingCount: 2,
		GroupCount:   3,
		SourcePath:   "groups.yaml",
		Findings: []validator.Finding{
			{
				Path:       "/groups/0",
				SchemaPath: "/properties/groups/items/required",
				Keyword:    "required",
				Message:    "missing properties: 'url'",
				Line:       2,
				Column:     5,
				File:       "groups.yaml",
			},
			{
				Path:    "/groups/2/url",
				Keyword: "platform-url",
				Message: "url does not match the telegram invite-link format",
				Value:   "https://example.com/x",
				Line:    14,
				Column:  10,
				File:    "groups.yaml",
			},
		},
	}
}

func validResult() *validator.Result {
	return &validator.Result{Valid: true, GroupCount: 3, SourcePath: "groups.yaml"}
}

func TestReportText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(ModeText).Report(&buf, failingResult()))

	out := buf.String()
	assert.Contains(t, out, "1. ✗ /groups/0 (line 2, col 5): missing properties: 'url'")
	assert.Contains(t, out, "Schema: /properties/groups/items/required")
	assert.Contains(t, out, "Rule: required")
	assert.Contains(t, out, "2. ✗ /groups/2/url (line 14, col 10)")
	assert.Contains(t, out, "Value: https://example.com/x")
	assert.Contains(t, out, "✗ groups.yaml: 2 findings in 3 groups")
}

func TestReportTextValid(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(ModeText).Report(&buf, validResult()))
	assert.Equal(t, "✓ groups.yaml is valid (3 groups)\n", buf.String())

	buf.Reset()
	r := New(ModeText)
	r.Quiet = true
	require.NoError(t, r.Report(&buf, validResult()))
	assert.Empty(t, buf.String())
}

func TestReportJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(ModeJSON).Report(&buf, failingResult()))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, false, doc["valid"])
	assert.Equal(t, "groups.yaml", doc["source"])
	assert.Equal(t, float64(2), doc["finding_count"])

	fs, ok := doc["findings"].([]any)
	require.True(t, ok)
	require.Len(t, fs, 2)

	first := fs[0].(map[string]any)
	assert.Equal(t, "/groups/0", first["path"])
	assert.Equal(t, "required", first["keyword"])
	assert.Equal(t, float64(2), first["line"])
	_, hasValue := first["value"]
	assert.False(t, hasValue, "nil values are omitted")

	second := fs[1].(map[string]any)
	assert.Equal(t, "https://example.com/x", second["value"])
}

func TestReportJSONValidAlwaysEmitted(t *testing.T) {
	var buf bytes.Buffer
	r := New(ModeJSON)
	r.Quiet = true
	require.NoError(t, r.Report(&buf, validResult()))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, true, doc["valid"])
}

func TestReportJSONUnmarshalableValue(t *testing.T) {
	result := &validator.Result{
		FindingCount: 1,
		Findings: []validator.Finding{
			{Path: "/x", Keyword: "type", Message: "bad", Value: func() {}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, New(ModeJSON).Report(&buf, result), "marshal failures degrade, never error")
	assert.True(t, json.Valid(buf.Bytes()))
}

func TestReportGitHub(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(ModeGitHub).Report(&buf, failingResult()))

	out := buf.String()
	assert.Contains(t, out, "::error file=groups.yaml,line=2,col=5,title=required::/groups/0: missing properties: 'url'\n")
	assert.Contains(t, out, "::error file=groups.yaml,line=14,col=10,title=platform-url::")
	assert.Contains(t, out, "::notice::groups.yaml has 2 validation findings\n")
}

func TestReportGitHubEscaping(t *testing.T) {
	result := &validator.Result{
		FindingCount: 1,
		Findings: []validator.Finding{
			{
				Path:    "/groups/0",
				Keyword: "pattern",
				Message: "50% wrong\nsecond line",
				File:    "a,b:c.yaml",
				Line:    1,
				Column:  1,
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, New(ModeGitHub).Report(&buf, result))

	out := buf.String()
	assert.Contains(t, out, "file=a%2Cb%3Ac.yaml")
	assert.Contains(t, out, "50%25 wrong%0Asecond line")
}

func TestReportGitHubQuietSuccess(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(ModeGitHub).Report(&buf, validResult()))
	assert.Equal(t, "::notice::groups.yaml is valid (3 groups)\n", buf.String())

	buf.Reset()
	r := New(ModeGitHub)
	r.Quiet = true
	require.NoError(t, r.Report(&buf, validResult()))
	assert.Empty(t, buf.String())
}

// Rendering the same result twice must produce identical bytes.
func TestReportDeterministic(t *testing.T) {
	for _, mode := range Modes() {
		var a, b bytes.Buffer
		require.NoError(t, New(mode).Report(&a, failingResult()))
		require.NoError(t, New(mode).Report(&b, failingResult()))
		assert.Equal(t, a.String(), b.String(), string(mode))
	}
}

func TestValidMode(t *testing.T) {
	assert.True(t, ValidMode("text"))
	assert.True(t, ValidMode("json"))
	assert.True(t, ValidMode("github"))
	assert.False(t, ValidMode("xml"))
	assert.False(t, ValidMode(""))
}
