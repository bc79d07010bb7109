package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/rignaneseleo/groups-for-nomads/validator"
)

// reportGitHub writes one workflow error command per finding, plus a summary
// notice. The command grammar is documented at
// https://docs.github.com/actions/reference/workflow-commands-for-github-actions
func (r *Reporter) reportGitHub(w io.Writer, result *validator.Result) error {
	if result.Valid {
		if r.Quiet {
			return nil
		}
		_, err := fmt.Fprintf(w, "::notice::%s is valid (%d groups)\n",
			escapeData(sourceLabel(result)), result.GroupCount)
		return err
	}

	for _, f := range result.Findings {
		if _, err := io.WriteString(w, annotation(f)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "::notice::%s has %d validation finding%s\n",
		escapeData(sourceLabel(result)), result.FindingCount, plural(result.FindingCount))
	return err
}

// annotation renders a single ::error command. File and position properties
// are included only when known, so annotations without a source location
// still surface in the workflow log.
func annotation(f validator.Finding) string {
	var props []string
	if f.File != "" {
		props = append(props, "file="+escapeProperty(f.File))
	}
	if f.Line > 0 {
		props = append(props, fmt.Sprintf("line=%d", f.Line))
		if f.Column > 0 {
			props = append(props, fmt.Sprintf("col=%d", f.Column))
		}
	}
	props = append(props, "title="+escapeProperty(f.Keyword))

	message := f.Message
	if f.Path != "" {
		message = f.Path + ": " + message
	}

	return "::error " + strings.Join(props, ",") + "::" + escapeData(message) + "\n"
}

// escapeData escapes the message portion of a workflow command.
func escapeData(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, "\r", "%0D")
	s = strings.ReplaceAll(s, "\n", "%0A")
	return s
}

// escapeProperty escapes a property value; properties additionally reserve
// ',' and ':'.
func escapeProperty(s string) string {
	s = escapeData(s)
	s = strings.ReplaceAll(s, ",", "%2C")
	s = strings.ReplaceAll(s, ":", "%3A")
	return s
}
