package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
)

// serverConfig holds the configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// DataFile is the default groups data file used when a tool call
	// omits the input.
	DataFile string
	// SchemaFile is the default schema path; empty means the standard
	// search order applies.
	SchemaFile string
	// ValidateFailFast makes validate default to reporting only the most
	// specific finding.
	ValidateFailFast bool
	// FindingLimit caps the findings returned by a single validate call.
	FindingLimit int
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from GROUPSTOOL_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		DataFile:         os.Getenv("GROUPSTOOL_DATA_FILE"),
		SchemaFile:       os.Getenv("GROUPSTOOL_SCHEMA_FILE"),
		ValidateFailFast: envBool("GROUPSTOOL_VALIDATE_FAIL_FAST", false),
		FindingLimit:     envInt("GROUPSTOOL_FINDING_LIMIT", 100),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}
