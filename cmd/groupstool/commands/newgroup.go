package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/rignaneseleo/groups-for-nomads/groupserrors"
	"github.com/rignaneseleo/groups-for-nomads/submission"
)

// issueBodyEnv is consulted when no body file argument is given, matching the
// variable the submission workflow exports.
const issueBodyEnv = "ISSUE_BODY"

// NewGroupFlags contains flags for the newgroup command
type NewGroupFlags struct {
	Data   string
	Output string
	DryRun bool
}

// SetupNewGroupFlags creates and configures a FlagSet for the newgroup command.
func SetupNewGroupFlags() (*flag.FlagSet, *NewGroupFlags) {
	fs := flag.NewFlagSet("newgroup", flag.ContinueOnError)
	flags := &NewGroupFlags{}

	fs.StringVar(&flags.Data, "data", "groups.yaml", "groups data file to append to")
	fs.StringVar(&flags.Output, "output", "", "write the updated document here instead of in-place ('-' for stdout)")
	fs.BoolVar(&flags.DryRun, "dry-run", false, "print the new entry instead of writing the data file")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: groupstool newgroup [flags] [bodyfile|-]\n\n")
		Writef(fs.Output(), "Parse a GitHub issue-form body and append the group to the data file.\n")
		Writef(fs.Output(), "The body is read from the file argument, '-' for stdin, or $%s.\n\n", issueBodyEnv)
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  groupstool newgroup -data groups.yaml issue.md\n")
		Writef(fs.Output(), "  groupstool newgroup -data groups.yaml -output updated.yaml issue.md\n")
		Writef(fs.Output(), "  gh issue view 42 --json body -q .body | groupstool newgroup -\n")
		Writef(fs.Output(), "  ISSUE_BODY=\"$BODY\" groupstool newgroup -dry-run\n")
	}

	return fs, flags
}

// HandleNewGroup executes the newgroup command
func HandleNewGroup(args []string) error {
	fs, flags := SetupNewGroupFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	body, err := readIssueBody(fs)
	if err != nil {
		return err
	}

	sub := submission.ParseIssueBody(body)
	if err := sub.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	group := sub.Group()

	if flags.DryRun {
		entry, err := yaml.Marshal(group)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(entry)
		return err
	}

	if flags.Output != "" {
		data, err := os.ReadFile(flags.Data)
		if err != nil {
			return &groupserrors.IOError{Path: flags.Data, Cause: err}
		}
		updated, err := submission.AppendGroup(data, group)
		if err != nil {
			return err
		}
		return writeOutput(flags.Output, updated)
	}

	if err := submission.AppendGroupToFile(flags.Data, group); err != nil {
		return err
	}

	Writef(os.Stdout, "Added group: %s\n", group.Name)
	return nil
}

// readIssueBody resolves the issue body from the argument, stdin, or the
// environment.
func readIssueBody(fs *flag.FlagSet) (string, error) {
	switch fs.NArg() {
	case 0:
		body := os.Getenv(issueBodyEnv)
		if body == "" {
			fs.Usage()
			return "", fmt.Errorf("%w: no body file given and $%s is not set", ErrUsage, issueBodyEnv)
		}
		return body, nil
	case 1:
		path := fs.Arg(0)
		if path == StdinFilePath {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return "", &groupserrors.IOError{Path: "<stdin>", Cause: err}
			}
			return string(data), nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return "", &groupserrors.IOError{Path: path, Cause: err}
		}
		return string(data), nil
	default:
		fs.Usage()
		return "", fmt.Errorf("%w: newgroup command takes at most one body file", ErrUsage)
	}
}
