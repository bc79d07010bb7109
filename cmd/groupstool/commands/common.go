// Package commands provides CLI command handlers for groupstool.
package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rignaneseleo/groups-for-nomads/groupserrors"
	"github.com/rignaneseleo/groups-for-nomads/report"
)

// Output format constants
const (
	FormatText   = "text"
	FormatJSON   = "json"
	FormatGitHub = "github"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// Exit codes returned by the groupstool binary.
const (
	// ExitOK means the command succeeded (for validate: zero findings).
	ExitOK = 0
	// ExitUsage means the arguments or flags were invalid.
	ExitUsage = 1
	// ExitSchema means the schema could not be found or compiled.
	ExitSchema = 2
	// ExitParse means the data file could not be read or parsed.
	ExitParse = 3
	// ExitFindings means validation completed and produced findings.
	ExitFindings = 4
	// ExitUnexpected means an internal failure not covered above.
	ExitUnexpected = 5
)

// ErrFindings is returned by the validate command when the document is
// invalid. The findings themselves have already been reported.
var ErrFindings = groupserrors.ErrValidation

// ErrUsage marks argument and flag errors.
var ErrUsage = errors.New("invalid usage")

// ExitCode maps a command error to the binary's exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrFindings):
		return ExitFindings
	case errors.Is(err, ErrUsage), errors.Is(err, groupserrors.ErrConfig):
		return ExitUsage
	case errors.Is(err, groupserrors.ErrSchemaNotFound), errors.Is(err, groupserrors.ErrSchema):
		return ExitSchema
	case errors.Is(err, groupserrors.ErrParse), errors.Is(err, groupserrors.ErrNotFound), errors.Is(err, groupserrors.ErrIO):
		return ExitParse
	default:
		return ExitUnexpected
	}
}

// Writef writes formatted output, ignoring write errors. Used for usage and
// diagnostic text where a failed write has nowhere better to go.
func Writef(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if !report.ValidMode(format) {
		return fmt.Errorf("%w: invalid format '%s'. Valid formats: %s, %s, %s",
			ErrUsage, format, FormatText, FormatJSON, FormatGitHub)
	}
	return nil
}

// ValidateOutputPath checks that the output path does not overwrite any of
// the input files.
func ValidateOutputPath(outputPath string, inputPaths []string) error {
	absOutputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("%w: invalid output path: %v", ErrUsage, err)
	}

	for _, inputPath := range inputPaths {
		absInputPath, err := filepath.Abs(inputPath)
		if err != nil {
			return fmt.Errorf("%w: invalid input path %s: %v", ErrUsage, inputPath, err)
		}
		if absOutputPath == absInputPath {
			return fmt.Errorf("%w: output file %s would overwrite input file %s", ErrUsage, outputPath, inputPath)
		}
	}

	if _, err := os.Stat(outputPath); err == nil {
		Writef(os.Stderr, "Warning: output file %s already exists and will be overwritten\n", outputPath)
	}

	return nil
}

// RejectSymlinkOutput checks if the output path is a symlink and returns an
// error if so, preventing a symlink from redirecting output to an unintended
// location.
func RejectSymlinkOutput(cleanedPath string) error {
	info, err := os.Lstat(cleanedPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("commands: checking output path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("commands: refusing to write to symlink: %s", cleanedPath)
	}
	return nil
}

// writeOutput writes data to path, or to stdout when path is "-" or empty.
func writeOutput(path string, data []byte) error {
	if path == "" || path == StdinFilePath {
		_, err := os.Stdout.Write(data)
		return err
	}
	cleaned := filepath.Clean(path)
	if err := RejectSymlinkOutput(cleaned); err != nil {
		return err
	}
	return os.WriteFile(cleaned, data, 0o644)
}
