package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rignaneseleo/groups-for-nomads/parser"
	"github.com/rignaneseleo/groups-for-nomads/report"
	"github.com/rignaneseleo/groups-for-nomads/schema"
	"github.com/rignaneseleo/groups-for-nomads/validator"
)

// ValidateFlags contains flags for the validate command
type ValidateFlags struct {
	Schema   string
	Format   string
	FailFast bool
	Quiet    bool
}

// SetupValidateFlags creates and configures a FlagSet for the validate command.
// Returns the FlagSet and a ValidateFlags struct with bound flag variables.
func SetupValidateFlags() (*flag.FlagSet, *ValidateFlags) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	flags := &ValidateFlags{}

	fs.StringVar(&flags.Schema, "schema", "", "path to the JSON Schema (defaults to the standard search order)")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or github")
	fs.BoolVar(&flags.FailFast, "fail-fast", false, "report only the most specific finding")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: suppress success output")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: suppress success output")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: groupstool validate [flags] <file|->\n\n")
		Writef(fs.Output(), "Validate a groups data file against its JSON Schema and the directory rules.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nSchema search order (when -schema is not given):\n")
		Writef(fs.Output(), "  1. $%s\n", schema.EnvSchemaPath)
		Writef(fs.Output(), "  2. %s next to the data file\n", schema.DefaultFileName)
		Writef(fs.Output(), "  3. %s next to the groupstool binary\n", schema.DefaultFileName)
		Writef(fs.Output(), "  4. ./%s\n", schema.DefaultFileName)
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  groupstool validate groups.yaml\n")
		Writef(fs.Output(), "  groupstool validate -schema schema.json groups.yaml\n")
		Writef(fs.Output(), "  groupstool validate -format json groups.yaml | jq '.valid'\n")
		Writef(fs.Output(), "  groupstool validate -format github groups.yaml  # CI annotations\n")
		Writef(fs.Output(), "  cat groups.yaml | groupstool validate -q -\n")
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    Document is valid\n")
		Writef(fs.Output(), "  1    Invalid arguments\n")
		Writef(fs.Output(), "  2    Schema missing or malformed\n")
		Writef(fs.Output(), "  3    Data file missing or unparsable\n")
		Writef(fs.Output(), "  4    Validation findings\n")
		Writef(fs.Output(), "  5    Unexpected failure\n")
	}

	return fs, flags
}

// HandleValidate executes the validate command
func HandleValidate(args []string) error {
	fs, flags := SetupValidateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("%w: validate command requires exactly one file path or '-' for stdin", ErrUsage)
	}

	dataPath := fs.Arg(0)

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	opts := []validator.Option{
		validator.WithFailFast(flags.FailFast),
	}
	if flags.Schema != "" {
		opts = append(opts, validator.WithSchemaPath(flags.Schema))
	}

	if dataPath == StdinFilePath {
		parseResult, err := parser.ParseWithOptions(parser.WithReader(os.Stdin))
		if err != nil {
			return err
		}
		opts = append(opts, validator.WithParsed(*parseResult))
	} else {
		opts = append(opts, validator.WithDataFile(dataPath))
	}

	result, err := validator.ValidateWithOptions(opts...)
	if err != nil {
		return err
	}

	r := report.New(report.Mode(flags.Format))
	r.Quiet = flags.Quiet
	if err := r.Report(os.Stdout, result); err != nil {
		return err
	}

	if !result.Valid {
		return fmt.Errorf("%w: %d", ErrFindings, result.FindingCount)
	}
	return nil
}
