// Package findings provides the finding type shared by the validator and the
// report package.
package findings

import (
	"fmt"
	"strings"
)

// Finding represents a single validation failure. Findings are independent of
// one another; their order carries no meaning until the report package sorts
// them.
type Finding struct {
	// Path is the JSON Pointer to the offending value in the document
	// (e.g., "/groups/3/url"). Empty for root-level failures.
	Path string
	// SchemaPath is the JSON Pointer into the schema that produced the
	// failure (e.g., "/properties/groups/items/required"). Empty for
	// domain findings that have no schema counterpart.
	SchemaPath string
	// Keyword is the validator responsible: a JSON Schema keyword such as
	// "required", "type", "enum", "pattern", or a domain rule name such as
	// "platform-url", "country-code", "language-code", "duplicate".
	Keyword string
	// Message is a human-readable description of the failure
	Message string
	// Value is the offending value (nil when not applicable)
	Value any
	// Line is the 1-based line number in the source file (0 if unknown)
	Line int
	// Column is the 1-based column number in the source file (0 if unknown)
	Column int
	// File is the source file path (empty when parsed from bytes or stdin)
	File string
}

// String returns a formatted one-or-two-line representation of the finding.
func (f Finding) String() string {
	path := f.Path
	if path == "" {
		path = "/"
	}

	var result string
	if f.Line > 0 {
		result = fmt.Sprintf("✗ %s (line %d, col %d): %s", path, f.Line, f.Column, f.Message)
	} else {
		result = fmt.Sprintf("✗ %s: %s", path, f.Message)
	}

	if f.SchemaPath != "" {
		result += fmt.Sprintf("\n    Schema: %s", f.SchemaPath)
	}

	return result
}

// Location returns the source location in IDE-friendly format.
// Returns "file:line:column" if file is set, "line:column" if only line is
// set, or the JSON Pointer if the location is unknown.
func (f Finding) Location() string {
	if f.Line == 0 {
		return f.Path
	}
	if f.File != "" {
		return fmt.Sprintf("%s:%d:%d", f.File, f.Line, f.Column)
	}
	return fmt.Sprintf("%d:%d", f.Line, f.Column)
}

// HasLocation returns true if this finding has source location information.
func (f Finding) HasLocation() bool {
	return f.Line > 0
}

// Depth returns the number of segments in the document path. The root path
// has depth zero.
func (f Finding) Depth() int {
	if f.Path == "" || f.Path == "/" {
		return 0
	}
	return strings.Count(f.Path, "/")
}
