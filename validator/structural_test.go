package validator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordOf(t *testing.T) {
	tests := []struct {
		location string
		want     string
	}{
		{"/properties/groups/items/required", "required"},
		{"/properties/groups/items/properties/url/pattern", "pattern"},
		{"/properties/groups/items/anyOf/1", "anyOf"},
		{"/additionalProperties", "additionalProperties"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, keywordOf(tt.location), tt.location)
	}
}

func TestValueAt(t *testing.T) {
	doc := map[string]any{
		"groups": []any{
			map[string]any{"name": "A", "url": "https://t.me/a"},
			map[string]any{"a/b": "slash", "key~x": "tilde"},
		},
	}

	assert.Equal(t, doc, valueAt(doc, ""))
	assert.Equal(t, "A", valueAt(doc, "/groups/0/name"))
	assert.Equal(t, "slash", valueAt(doc, "/groups/1/a~1b"))
	assert.Equal(t, "tilde", valueAt(doc, "/groups/1/key~0x"))
	assert.Nil(t, valueAt(doc, "/groups/5"))
	assert.Nil(t, valueAt(doc, "/groups/0/name/deeper"))
	assert.Nil(t, valueAt(doc, "/missing"))
}

func TestNormalizeValue(t *testing.T) {
	in := map[string]any{
		"version": 1,
		"ratio":   0.5,
		"flag":    true,
		"tags":    []any{"a", int64(2)},
		"nothing": nil,
	}

	got, ok := normalizeValue(in).(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, json.Number("1"), got["version"])
	assert.Equal(t, json.Number("0.5"), got["ratio"])
	assert.Equal(t, true, got["flag"])
	assert.Equal(t, []any{"a", json.Number("2")}, got["tags"])
	assert.Nil(t, got["nothing"])
}
