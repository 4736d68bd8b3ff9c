package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meetscan/meetscan/pkg/ingest"
	"github.com/meetscan/meetscan/pkg/transcript"
)

// FormatsCommandDeps holds the dependencies for the formats command.
type FormatsCommandDeps struct {
	ReadTranscript func(path string) (string, error)
	DetectFormat   func(raw string) transcript.Format
}

// DefaultFormatsDeps returns the default dependencies for production use.
func DefaultFormatsDeps() *FormatsCommandDeps {
	return &FormatsCommandDeps{
		ReadTranscript: ingest.ReadTranscript,
		DetectFormat:   transcript.DetectFormat,
	}
}

// formatDescriptions drives the formats listing, in detection precedence
// order.
var formatDescriptions = []struct {
	format  transcript.Format
	pattern string
	example string
}{
	{transcript.FormatZoom, "HH:MM:SS Name: text", "00:00:15 Sarah Chen: Let's get started"},
	{transcript.FormatMeet, "H:MM AM/PM Name: text", "10:00 AM Sarah Chen: Let's get started"},
	{transcript.FormatPlain, "Name: text", "Sarah Chen: Let's get started"},
}

// NewFormatsCommand creates the formats command.
func NewFormatsCommand(deps *FormatsCommandDeps) *cobra.Command {
	if deps == nil {
		deps = DefaultFormatsDeps()
	}

	cmd := &cobra.Command{
		Use:   "formats",
		Short: "List supported transcript layouts",
		Long: `List the transcript layouts meetscan can detect.

Layouts are tried in the order shown; the first line pattern that
matches decides the format for the whole transcript.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-8s %-22s %s\n", "FORMAT", "LINE PATTERN", "EXAMPLE")
			for _, fd := range formatDescriptions {
				fmt.Fprintf(out, "%-8s %-22s %s\n", fd.format, fd.pattern, fd.example)
			}
			return nil
		},
	}

	cmd.AddCommand(newFormatsDetectCommand(deps))
	return cmd
}

// newFormatsDetectCommand creates the formats detect subcommand.
func newFormatsDetectCommand(deps *FormatsCommandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "detect <transcript-file>",
		Short: "Detect the layout of a transcript file",
		Long: `Read a transcript file and report which layout it matches.

Exits with an error when no layout matches, which makes the command
usable as a pre-flight check in scripts.

Examples:
  meetscan formats detect standup.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := deps.ReadTranscript(args[0])
			if err != nil {
				return describeReadError(err, args[0])
			}

			format := deps.DetectFormat(raw)
			if format == transcript.FormatUnrecognized {
				return fmt.Errorf("%s: no known layout matched", args[0])
			}

			fmt.Fprintln(cmd.OutOrStdout(), format)
			return nil
		},
	}
}
