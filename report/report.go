// Package report renders validation results for humans, machines, and CI
// annotations.
//
// Rendering is deterministic: the same result always produces the same bytes,
// so reports can be diffed and cached. The JSON mode never fails; if a value
// cannot be marshaled it is replaced with its string form.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rignaneseleo/groups-for-nomads/validator"
)

// Mode selects the output representation.
type Mode string

const (
	// ModeText renders a human-readable finding list with a summary line.
	ModeText Mode = "text"
	// ModeJSON renders a single machine-readable JSON document.
	ModeJSON Mode = "json"
	// ModeGitHub renders workflow command annotations (::error ...).
	ModeGitHub Mode = "github"
)

// Modes lists the supported output modes.
func Modes() []Mode {
	return []Mode{ModeText, ModeJSON, ModeGitHub}
}

// ValidMode reports whether s names a supported output mode.
func ValidMode(s string) bool {
	switch Mode(s) {
	case ModeText, ModeJSON, ModeGitHub:
		return true
	}
	return false
}

// Reporter renders validation results to a writer.
type Reporter struct {
	// Mode selects the output representation; defaults to ModeText
	Mode Mode
	// Quiet suppresses success output (text and github modes only;
	// JSON output is always emitted)
	Quiet bool
}

// New creates a Reporter for the given mode.
func New(mode Mode) *Reporter {
	return &Reporter{Mode: mode}
}

// Report renders the result to w. The only errors returned come from the
// writer itself.
func (r *Reporter) Report(w io.Writer, result *validator.Result) error {
	switch r.Mode {
	case ModeJSON:
		return r.reportJSON(w, result)
	case ModeGitHub:
		return r.reportGitHub(w, result)
	default:
		return r.reportText(w, result)
	}
}

// reportText writes a numbered finding list followed by a summary line.
func (r *Reporter) reportText(w io.Writer, result *validator.Result) error {
	if result.Valid {
		if r.Quiet {
			return nil
		}
		_, err := fmt.Fprintf(w, "✓ %s is valid (%d groups)\n", sourceLabel(result), result.GroupCount)
		return err
	}

	for i, f := range result.Findings {
		if _, err := fmt.Fprintf(w, "%d. %s\n", i+1, f.String()); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "    Rule: %s\n", f.Keyword); err != nil {
			return err
		}
		if f.Value != nil {
			if _, err := fmt.Fprintf(w, "    Value: %v\n", f.Value); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintf(w, "\n✗ %s: %d finding%s in %d group%s\n",
		sourceLabel(result),
		result.FindingCount, plural(result.FindingCount),
		result.GroupCount, plural(result.GroupCount))
	return err
}

// jsonReport is the machine-readable shape of a validation result.
type jsonReport struct {
	Valid        bool          `json:"valid"`
	Source       string        `json:"source,omitempty"`
	GroupCount   int           `json:"group_count"`
	FindingCount int           `json:"finding_count"`
	Findings     []jsonFinding `json:"findings"`
}

type jsonFinding struct {
	Path       string `json:"path"`
	SchemaPath string `json:"schema_path,omitempty"`
	Keyword    string `json:"keyword"`
	Message    string `json:"message"`
	Value      any    `json:"value,omitempty"`
	Line       int    `json:"line,omitempty"`
	Column     int    `json:"column,omitempty"`
	File       string `json:"file,omitempty"`
}

// reportJSON writes the result as one indented JSON document. Marshaling a
// finding value can fail for exotic types; such values degrade to strings
// rather than failing the report.
func (r *Reporter) reportJSON(w io.Writer, result *validator.Result) error {
	doc := jsonReport{
		Valid:        result.Valid,
		Source:       result.SourcePath,
		GroupCount:   result.GroupCount,
		FindingCount: result.FindingCount,
		Findings:     make([]jsonFinding, 0, len(result.Findings)),
	}

	for _, f := range result.Findings {
		value := f.Value
		if value != nil {
			if _, err := json.Marshal(value); err != nil {
				value = fmt.Sprintf("%v", value)
			}
		}
		doc.Findings = append(doc.Findings, jsonFinding{
			Path:       f.Path,
			SchemaPath: f.SchemaPath,
			Keyword:    f.Keyword,
			Message:    f.Message,
			Value:      value,
			Line:       f.Line,
			Column:     f.Column,
			File:       f.File,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func sourceLabel(result *validator.Result) string {
	if result.SourcePath != "" {
		return result.SourcePath
	}
	return "document"
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
