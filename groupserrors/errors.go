// Package groupserrors provides structured error types for the groups tooling.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to map failures onto the CLI's exit-code
// taxonomy without string matching.
//
// # Error Categories
//
//   - SchemaNotFoundError: no schema file found in any searched location
//   - SchemaError: schema file exists but is malformed or fails its meta-schema
//   - NotFoundError: the data file does not exist
//   - ParseError: the data file is not valid YAML
//   - IOError: the data file exists but cannot be read
//   - ConfigError: invalid CLI arguments or option combinations
//
// # Usage with errors.Is
//
//	_, err := schema.LoadWithSearch("", "groups.yaml")
//	if errors.Is(err, groupserrors.ErrSchemaNotFound) {
//	    // report the candidate paths that were tried
//	}
package groupserrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrSchemaNotFound indicates no schema file exists at any searched path.
	ErrSchemaNotFound = errors.New("schema not found")

	// ErrSchema indicates a schema file was found but could not be used.
	ErrSchema = errors.New("schema error")

	// ErrNotFound indicates the data file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrParse indicates the data file is not syntactically valid.
	ErrParse = errors.New("parse error")

	// ErrIO indicates a read failure distinct from "not found".
	ErrIO = errors.New("i/o error")

	// ErrValidation indicates one or more validation findings.
	ErrValidation = errors.New("validation error")

	// ErrConfig indicates an invalid configuration or CLI invocation.
	ErrConfig = errors.New("configuration error")
)

// SchemaNotFoundError reports that no schema file exists at any of the
// searched candidate paths. Candidates preserves the search order.
type SchemaNotFoundError struct {
	// Candidates lists every path that was checked, in search order
	Candidates []string
}

// Error returns a human-readable error message enumerating all candidates.
func (e *SchemaNotFoundError) Error() string {
	if len(e.Candidates) == 0 {
		return "schema not found"
	}
	return fmt.Sprintf("schema not found; tried: %s", strings.Join(e.Candidates, ", "))
}

// Is reports whether target matches this error type.
func (e *SchemaNotFoundError) Is(target error) bool {
	return target == ErrSchemaNotFound
}

// SchemaError represents a schema file that exists but is unusable: either it
// is not valid structured data, or it fails the meta-rules of its schema
// language.
type SchemaError struct {
	// Path is the schema file path
	Path string
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *SchemaError) Error() string {
	msg := "schema error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}

// NotFoundError represents a missing data file.
type NotFoundError struct {
	// Path is the file path that does not exist
	Path string
}

// Error returns a human-readable error message.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

// Is reports whether target matches this error type.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ParseError represents a failure to parse the data file as YAML.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// IOError represents a read failure on a file that exists (permissions,
// device errors, and so on).
type IOError struct {
	// Path is the file path that could not be read
	Path string
	// Cause is the underlying error
	Cause error
}

// Error returns a human-readable error message.
func (e *IOError) Error() string {
	msg := "i/o error"
	if e.Path != "" {
		msg += " reading " + e.Path
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *IOError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
