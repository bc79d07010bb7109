package submission

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/rignaneseleo/groups-for-nomads/groupserrors"
	"github.com/rignaneseleo/groups-for-nomads/parser"
)

func newGroup() parser.Group {
	return parser.Group{
		Name:      "Chiang Mai Nomads",
		Platform:  "whatsapp",
		URL:       "https://chat.whatsapp.com/12345",
		Locations: []parser.Location{{Continent: "Asia", CountryID: "TH", City: "Chiang Mai"}},
	}
}

func TestAppendGroup(t *testing.T) {
	data := []byte(`version: 1
groups:
  - name: Existing Group
    platform: telegram
    url: https://t.me/existing
`)

	updated, err := AppendGroup(data, newGroup())
	require.NoError(t, err)

	var dir parser.Directory
	require.NoError(t, yaml.Unmarshal(updated, &dir))
	require.Len(t, dir.Groups, 2)
	assert.Equal(t, "Existing Group", dir.Groups[0].Name)
	assert.Equal(t, "Chiang Mai Nomads", dir.Groups[1].Name)
	assert.Equal(t, "TH", dir.Groups[1].Locations[0].CountryID)
}

func TestAppendGroupKeepsComments(t *testing.T) {
	data := []byte(`# Community directory
version: 1
groups:
  # The first group
  - name: Existing Group
    platform: telegram
    url: https://t.me/existing
`)

	updated, err := AppendGroup(data, newGroup())
	require.NoError(t, err)

	assert.Contains(t, string(updated), "# Community directory")
	assert.Contains(t, string(updated), "# The first group")
}

func TestAppendGroupOmitsFalseCommercial(t *testing.T) {
	g := newGroup()
	g.Commercial = false

	updated, err := AppendGroup([]byte("groups: []\n"), g)
	require.NoError(t, err)
	assert.NotContains(t, string(updated), "commercial")

	g.Commercial = true
	updated, err = AppendGroup([]byte("groups: []\n"), g)
	require.NoError(t, err)
	assert.Contains(t, string(updated), "commercial: true")
}

func TestAppendGroupEmptyDocument(t *testing.T) {
	for _, input := range []string{"", "# only a comment\n", "groups:\n"} {
		updated, err := AppendGroup([]byte(input), newGroup())
		require.NoError(t, err, "input %q", input)

		var dir parser.Directory
		require.NoError(t, yaml.Unmarshal(updated, &dir))
		require.Len(t, dir.Groups, 1, "input %q", input)
		assert.Equal(t, "Chiang Mai Nomads", dir.Groups[0].Name)
	}
}

func TestAppendGroupMissingGroupsKey(t *testing.T) {
	updated, err := AppendGroup([]byte("version: 1\n"), newGroup())
	require.NoError(t, err)

	var dir parser.Directory
	require.NoError(t, yaml.Unmarshal(updated, &dir))
	assert.Equal(t, "1", dir.Version)
	require.Len(t, dir.Groups, 1)
}

func TestAppendGroupBadRoot(t *testing.T) {
	_, err := AppendGroup([]byte("- just\n- a list\n"), newGroup())
	assert.Error(t, err)
}

func TestAppendGroupNonListGroups(t *testing.T) {
	for _, input := range []string{"groups: notalist\n", "groups:\n  nested: mapping\n"} {
		_, err := AppendGroup([]byte(input), newGroup())
		require.Error(t, err, "input %q", input)
		assert.ErrorIs(t, err, groupserrors.ErrParse, "input %q", input)
	}
}

func TestAppendGroupToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "groups.yaml")
	require.NoError(t, os.WriteFile(path, []byte("groups: []\n"), 0o644))

	require.NoError(t, AppendGroupToFile(path, newGroup()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Chiang Mai Nomads")

	err = AppendGroupToFile(filepath.Join(t.TempDir(), "missing.yaml"), newGroup())
	assert.Error(t, err)
}
