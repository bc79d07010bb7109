// Package mcpserver implements an MCP (Model Context Protocol) server that
// exposes the groups directory toolkit as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	groupsfornomads "github.com/rignaneseleo/groups-for-nomads"
)

const serverInstructions = `groupstool MCP server — validates the community groups data file, renders the markdown index, and converts issue-form submissions into entries.

Configuration: All defaults are configurable via GROUPSTOOL_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- GROUPSTOOL_DATA_FILE — default groups data file when a call omits the input
- GROUPSTOOL_SCHEMA_FILE — default schema path (otherwise the standard search order applies)
- GROUPSTOOL_VALIDATE_FAIL_FAST (default: false) — report only the most specific finding
- GROUPSTOOL_FINDING_LIMIT (default: 100) — cap on findings returned per validate call`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "groupstool", Version: groupsfornomads.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate_groups",
		Description: "Validate a groups data file against its JSON Schema and the directory rules (platform link formats, ISO country and language codes, duplicates). Returns every finding with its JSON Pointer and source line. Use fail_fast to get only the most specific finding.",
	}, handleValidateGroups)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render_index",
		Description: "Render the markdown directory index from a groups data file: a table of contents, a World section, and continent/country/city sections with flag emoji anchors.",
	}, handleRenderIndex)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse_submission",
		Description: "Parse a GitHub issue-form body (### headings) into a group entry. Returns the extracted fields and the YAML that would be appended to the data file.",
	}, handleParseSubmission)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
