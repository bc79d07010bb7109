// Command groupstool validates, renders, and maintains the community groups
// data file.
package main

import (
	"errors"
	"fmt"
	"os"

	groupsfornomads "github.com/rignaneseleo/groups-for-nomads"
	"github.com/rignaneseleo/groups-for-nomads/cmd/groupstool/commands"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 1 {
		printUsage()
		return commands.ExitUsage
	}

	command := args[0]
	rest := args[1:]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("groupstool v%s\n", groupsfornomads.Version())
		return commands.ExitOK
	case "help", "-h", "--help":
		printUsage()
		return commands.ExitOK
	case "validate":
		return finish(commands.HandleValidate(rest))
	case "render":
		return finish(commands.HandleRender(rest))
	case "newgroup":
		return finish(commands.HandleNewGroup(rest))
	case "mcp":
		return finish(commands.HandleMCP(rest))
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		return commands.ExitUsage
	}
}

// finish reports the error and maps it to the exit code. Validation findings
// have already been reported by the command, so they produce no extra output.
func finish(err error) int {
	if err != nil && !errors.Is(err, commands.ErrFindings) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return commands.ExitCode(err)
}

func printUsage() {
	fmt.Println(`groupstool - community groups directory toolkit

Usage:
  groupstool <command> [flags] [arguments]

Commands:
  validate    Validate a groups data file against its schema and the directory rules
  render      Render the markdown directory index
  newgroup    Append a group parsed from an issue-form body
  mcp         Start an MCP server over stdio
  version     Show version information
  help        Show this help message

Run 'groupstool <command> -h' for command-specific help.

Exit Codes:
  0    Success
  1    Invalid arguments
  2    Schema missing or malformed
  3    Data file missing or unparsable
  4    Validation findings
  5    Unexpected failure`)
}
