package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/rignaneseleo/groups-for-nomads/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: groupstool mcp\n\n")
		Writef(fs.Output(), "Start an MCP server over stdio exposing validate_groups, render_index,\n")
		Writef(fs.Output(), "and parse_submission tools.\n\n")
		Writef(fs.Output(), "Defaults are configured via GROUPSTOOL_* environment variables; see the\n")
		Writef(fs.Output(), "server instructions for the full list.\n")
	}

	return fs
}

// HandleMCP executes the mcp command
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("%w: mcp command takes no arguments", ErrUsage)
	}

	return mcpserver.Run(context.Background())
}
