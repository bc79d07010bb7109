package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testIssueBody = `### Group Name
Chiang Mai Nomads

### Platform
WhatsApp

### URL
https://chat.whatsapp.com/12345

### Continent
Asia

### Country Code
TH
`

func TestSetupNewGroupFlags(t *testing.T) {
	fs, flags := SetupNewGroupFlags()
	assert.Equal(t, "groups.yaml", flags.Data)
	assert.False(t, flags.DryRun)

	require.NoError(t, fs.Parse([]string{"-data", "d.yaml", "-dry-run", "issue.md"}))
	assert.Equal(t, "d.yaml", flags.Data)
	assert.True(t, flags.DryRun)
}

func TestHandleNewGroup_AppendsToFile(t *testing.T) {
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "groups.yaml")
	require.NoError(t, os.WriteFile(dataPath, []byte("groups: []\n"), 0o644))
	bodyPath := filepath.Join(dir, "issue.md")
	require.NoError(t, os.WriteFile(bodyPath, []byte(testIssueBody), 0o644))

	require.NoError(t, HandleNewGroup([]string{"-data", dataPath, bodyPath}))

	data, err := os.ReadFile(dataPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Chiang Mai Nomads")
	assert.Contains(t, string(data), "country_id: TH")
}

func TestHandleNewGroup_BodyFromEnv(t *testing.T) {
	dataPath := filepath.Join(t.TempDir(), "groups.yaml")
	require.NoError(t, os.WriteFile(dataPath, []byte("groups: []\n"), 0o644))

	t.Setenv(issueBodyEnv, testIssueBody)
	require.NoError(t, HandleNewGroup([]string{"-data", dataPath}))

	data, err := os.ReadFile(dataPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Chiang Mai Nomads")
}

func TestHandleNewGroup_NoBody(t *testing.T) {
	t.Setenv(issueBodyEnv, "")
	err := HandleNewGroup([]string{})
	require.Error(t, err)
	assert.Equal(t, ExitUsage, ExitCode(err))
}

func TestHandleNewGroup_MissingRequiredFields(t *testing.T) {
	t.Setenv(issueBodyEnv, "### URL\nhttps://t.me/x\n")
	err := HandleNewGroup([]string{})
	require.Error(t, err)
	assert.Equal(t, ExitUsage, ExitCode(err))
}

func TestHandleNewGroup_OutputFile(t *testing.T) {
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "groups.yaml")
	require.NoError(t, os.WriteFile(dataPath, []byte("groups: []\n"), 0o644))
	outPath := filepath.Join(dir, "updated.yaml")

	t.Setenv(issueBodyEnv, testIssueBody)
	require.NoError(t, HandleNewGroup([]string{"-data", dataPath, "-output", outPath}))

	original, err := os.ReadFile(dataPath)
	require.NoError(t, err)
	assert.Equal(t, "groups: []\n", string(original), "data file untouched with -output")

	updated, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(updated), "Chiang Mai Nomads")
}

func TestHandleNewGroup_MissingDataFile(t *testing.T) {
	t.Setenv(issueBodyEnv, testIssueBody)
	err := HandleNewGroup([]string{"-data", filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)
	assert.Equal(t, ExitParse, ExitCode(err))
}
