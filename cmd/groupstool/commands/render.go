package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/rignaneseleo/groups-for-nomads/groupserrors"
	"github.com/rignaneseleo/groups-for-nomads/parser"
	"github.com/rignaneseleo/groups-for-nomads/render"
)

// RenderFlags contains flags for the render command
type RenderFlags struct {
	Output string
}

// SetupRenderFlags creates and configures a FlagSet for the render command.
func SetupRenderFlags() (*flag.FlagSet, *RenderFlags) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	flags := &RenderFlags{}

	fs.StringVar(&flags.Output, "output", StdinFilePath, "output file path ('-' for stdout)")
	fs.StringVar(&flags.Output, "o", StdinFilePath, "output file path ('-' for stdout)")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: groupstool render [flags] <file>\n\n")
		Writef(fs.Output(), "Render the markdown directory index from a groups data file.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  groupstool render groups.yaml\n")
		Writef(fs.Output(), "  groupstool render -o directory.md groups.yaml\n")
	}

	return fs, flags
}

// HandleRender executes the render command
func HandleRender(args []string) error {
	fs, flags := SetupRenderFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("%w: render command requires exactly one file path", ErrUsage)
	}

	dataPath := fs.Arg(0)

	if flags.Output != StdinFilePath {
		if err := ValidateOutputPath(flags.Output, []string{dataPath}); err != nil {
			return err
		}
	}

	p := parser.New()
	result, err := p.Parse(dataPath)
	if err != nil {
		return err
	}

	dir, ok := result.Directory()
	if !ok {
		return &groupserrors.ParseError{Path: dataPath, Message: "data does not have the groups directory shape"}
	}

	return writeOutput(flags.Output, []byte(render.Index(dir)))
}
