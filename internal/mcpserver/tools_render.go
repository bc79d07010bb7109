package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rignaneseleo/groups-for-nomads/render"
)

type renderInput struct {
	Data dataInput `json:"data" jsonschema:"The groups data file to render"`
}

type renderOutput struct {
	Markdown   string `json:"markdown"`
	GroupCount int    `json:"group_count"`
}

func handleRenderIndex(_ context.Context, _ *mcp.CallToolRequest, input renderInput) (*mcp.CallToolResult, renderOutput, error) {
	parseResult, _, err := input.Data.resolve()
	if err != nil {
		return errResult(err), renderOutput{}, nil
	}

	dir, ok := parseResult.Directory()
	if !ok {
		return errResult(fmt.Errorf("data does not have the groups directory shape")), renderOutput{}, nil
	}

	return nil, renderOutput{
		Markdown:   render.Index(dir),
		GroupCount: len(dir.Groups),
	}, nil
}
