package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.yaml.in/yaml/v4"

	"github.com/rignaneseleo/groups-for-nomads/submission"
)

type submissionInput struct {
	Body string `json:"body" jsonschema:"The markdown body of the issue form"`
}

type submissionOutput struct {
	Name       string   `json:"name"`
	Platform   string   `json:"platform"`
	URL        string   `json:"url"`
	Continent  string   `json:"continent,omitempty"`
	CountryID  string   `json:"country_id,omitempty"`
	City       string   `json:"city,omitempty"`
	LanguageID string   `json:"language_id,omitempty"`
	Commercial bool     `json:"commercial,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	YAML       string   `json:"yaml"`
}

func handleParseSubmission(_ context.Context, _ *mcp.CallToolRequest, input submissionInput) (*mcp.CallToolResult, submissionOutput, error) {
	sub := submission.ParseIssueBody(input.Body)
	if err := sub.Validate(); err != nil {
		return errResult(err), submissionOutput{}, nil
	}

	entry, err := yaml.Marshal(sub.Group())
	if err != nil {
		return errResult(err), submissionOutput{}, nil
	}

	return nil, submissionOutput{
		Name:       sub.Name,
		Platform:   sub.Platform,
		URL:        sub.URL,
		Continent:  sub.Continent,
		CountryID:  sub.CountryID,
		City:       sub.City,
		LanguageID: sub.LanguageID,
		Commercial: sub.Commercial,
		Tags:       sub.Tags,
		YAML:       string(entry),
	}, nil
}
