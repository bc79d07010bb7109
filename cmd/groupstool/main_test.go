package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rignaneseleo/groups-for-nomads/cmd/groupstool/commands"
)

func TestRun_NoArgs(t *testing.T) {
	assert.Equal(t, commands.ExitUsage, run(nil))
}

func TestRun_UnknownCommand(t *testing.T) {
	assert.Equal(t, commands.ExitUsage, run([]string{"bogus"}))
}

func TestRun_HelpAndVersion(t *testing.T) {
	assert.Equal(t, commands.ExitOK, run([]string{"help"}))
	assert.Equal(t, commands.ExitOK, run([]string{"version"}))
	assert.Equal(t, commands.ExitOK, run([]string{"--version"}))
}

func TestRun_ValidateExitCodes(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "schema.json"), []byte(`{
  "type": "object",
  "required": ["groups"],
  "properties": {
    "groups": {
      "type": "array",
      "items": {"type": "object", "required": ["name", "platform", "url"]}
    }
  }
}`), 0o644))

	valid := filepath.Join(dir, "valid.yaml")
	require.NoError(t, os.WriteFile(valid, []byte(`groups:
  - name: Bangkok Nomads
    platform: telegram
    url: https://t.me/bkk
`), 0o644))
	assert.Equal(t, commands.ExitOK, run([]string{"validate", "-q", valid}))

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte(`groups:
  - name: No URL
    platform: telegram
`), 0o644))
	assert.Equal(t, commands.ExitFindings, run([]string{"validate", "-q", invalid}))

	assert.Equal(t, commands.ExitParse, run([]string{"validate", filepath.Join(dir, "missing.yaml")}))
}
