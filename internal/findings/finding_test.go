package findings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindingString(t *testing.T) {
	tests := []struct {
		name        string
		finding     Finding
		contains    []string
		notContains []string
	}{
		{
			name: "basic fields without location",
			finding: Finding{
				Path:    "/groups/0/platform",
				Message: "value must be one of the registered platforms",
				Keyword: "enum",
			},
			contains:    []string{"✗", "/groups/0/platform", "value must be one of"},
			notContains: []string{"line", "Schema:"},
		},
		{
			name: "with location",
			finding: Finding{
				Path:    "/groups/2/url",
				Message: "url does not match the telegram pattern",
				Line:    14,
				Column:  10,
			},
			contains: []string{"(line 14, col 10)", "/groups/2/url"},
		},
		{
			name: "with schema path",
			finding: Finding{
				Path:       "/groups/1",
				SchemaPath: "/properties/groups/items/required",
				Message:    "missing properties: 'url'",
			},
			contains: []string{"Schema: /properties/groups/items/required"},
		},
		{
			name: "root path renders as slash",
			finding: Finding{
				Path:    "",
				Message: "expected object, but got array",
			},
			contains: []string{"✗ /: expected object"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.finding.String()
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, notWant := range tt.notContains {
				assert.NotContains(t, got, notWant)
			}
		})
	}
}

func TestFindingLocation(t *testing.T) {
	f := Finding{Path: "/groups/0", Line: 3, Column: 5, File: "groups.yaml"}
	assert.Equal(t, "groups.yaml:3:5", f.Location())
	assert.True(t, f.HasLocation())

	f.File = ""
	assert.Equal(t, "3:5", f.Location())

	f.Line = 0
	assert.Equal(t, "/groups/0", f.Location())
	assert.False(t, f.HasLocation())
}

func TestFindingDepth(t *testing.T) {
	tests := []struct {
		path  string
		depth int
	}{
		{"", 0},
		{"/", 0},
		{"/groups", 1},
		{"/groups/0", 2},
		{"/groups/0/locations/1/country_id", 5},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			f := Finding{Path: tt.path}
			if got := f.Depth(); got != tt.depth {
				t.Errorf("Depth(%q) = %d, want %d", tt.path, got, tt.depth)
			}
		})
	}

	// Depth ordering must be stable for the fail-fast "deepest" rule.
	shallow := Finding{Path: "/groups"}
	deep := Finding{Path: "/groups/0/locations/0/country_id"}
	assert.Greater(t, deep.Depth(), shallow.Depth())
}
