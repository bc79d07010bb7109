package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rignaneseleo/groups-for-nomads/schema"
	"github.com/rignaneseleo/groups-for-nomads/validator"
)

type validateInput struct {
	Data     dataInput `json:"data"                jsonschema:"The groups data file to validate"`
	Schema   string    `json:"schema,omitempty"    jsonschema:"Path to the JSON Schema (defaults to the standard search order)"`
	FailFast *bool     `json:"fail_fast,omitempty" jsonschema:"Report only the most specific finding"`
	Limit    int       `json:"limit,omitempty"     jsonschema:"Maximum number of findings to return (default 100)"`
}

type validateFinding struct {
	Path       string `json:"path"`
	SchemaPath string `json:"schema_path,omitempty"`
	Keyword    string `json:"keyword"`
	Message    string `json:"message"`
	Value      any    `json:"value,omitempty"`
	Line       int    `json:"line,omitempty"`
	Column     int    `json:"column,omitempty"`
}

type validateOutput struct {
	Valid        bool              `json:"valid"`
	GroupCount   int               `json:"group_count"`
	FindingCount int               `json:"finding_count"`
	Returned     int               `json:"returned"`
	Findings     []validateFinding `json:"findings,omitempty"`
}

func handleValidateGroups(_ context.Context, _ *mcp.CallToolRequest, input validateInput) (*mcp.CallToolResult, validateOutput, error) {
	failFast := cfg.ValidateFailFast
	if input.FailFast != nil {
		failFast = *input.FailFast
	}

	parseResult, dataPath, err := input.Data.resolve()
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	schemaPath := input.Schema
	if schemaPath == "" {
		schemaPath = cfg.SchemaFile
	}
	sch, err := schema.LoadWithSearch(schemaPath, dataPath)
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	result, err := validator.ValidateWithOptions(
		validator.WithParsed(*parseResult),
		validator.WithSchema(sch),
		validator.WithFailFast(failFast),
	)
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	limit := input.Limit
	if limit <= 0 || limit > cfg.FindingLimit {
		limit = cfg.FindingLimit
	}

	output := validateOutput{
		Valid:        result.Valid,
		GroupCount:   result.GroupCount,
		FindingCount: result.FindingCount,
	}
	for _, f := range result.Findings {
		if len(output.Findings) >= limit {
			break
		}
		output.Findings = append(output.Findings, validateFinding{
			Path:       f.Path,
			SchemaPath: f.SchemaPath,
			Keyword:    f.Keyword,
			Message:    f.Message,
			Value:      f.Value,
			Line:       f.Line,
			Column:     f.Column,
		})
	}
	output.Returned = len(output.Findings)

	return nil, output, nil
}
