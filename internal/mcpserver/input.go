package mcpserver

import (
	"fmt"

	"github.com/rignaneseleo/groups-for-nomads/parser"
)

// dataInput represents the ways a groups data file can be provided to a
// tool. At most one of File or Content may be set; when both are empty the
// GROUPSTOOL_DATA_FILE default applies.
type dataInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a groups data file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline groups data content (YAML)"`
}

// resolve parses the referenced data, also returning the file path used for
// sibling schema lookup (empty for inline content).
func (in dataInput) resolve() (*parser.ParseResult, string, error) {
	if in.File != "" && in.Content != "" {
		return nil, "", fmt.Errorf("provide either file or content, not both")
	}

	if in.Content != "" {
		result, err := parser.ParseWithOptions(parser.WithBytes([]byte(in.Content)))
		return result, "", err
	}

	path := in.File
	if path == "" {
		path = cfg.DataFile
	}
	if path == "" {
		return nil, "", fmt.Errorf("no data file given and GROUPSTOOL_DATA_FILE is not set")
	}

	p := parser.New()
	result, err := p.Parse(path)
	return result, path, err
}
