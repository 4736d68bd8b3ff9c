package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meetscan/meetscan/config"
	mserrors "github.com/meetscan/meetscan/pkg/errors"
	"github.com/meetscan/meetscan/pkg/ingest"
	"github.com/meetscan/meetscan/pkg/logging"
	"github.com/meetscan/meetscan/pkg/pipeline"
	"github.com/meetscan/meetscan/pkg/transcript"
)

// ParseCommandDeps holds the dependencies for the parse command.
type ParseCommandDeps struct {
	Logger         logging.Logger
	LoadConfig     func() (*config.CLIConfig, error)
	ReadTranscript func(path string) (string, error)
	Extract        func(raw string, opts pipeline.Options) (*pipeline.Result, error)
}

// DefaultParseDeps returns the default dependencies for production use.
func DefaultParseDeps() *ParseCommandDeps {
	return &ParseCommandDeps{
		Logger:         logging.NewNopLogger(),
		LoadConfig:     config.LoadConfig,
		ReadTranscript: ingest.ReadTranscript,
		Extract:        pipeline.Extract,
	}
}

// NewParseCommand creates the parse command.
func NewParseCommand(deps *ParseCommandDeps) *cobra.Command {
	if deps == nil {
		deps = DefaultParseDeps()
	}

	var (
		dateFlag    string
		formatFlag  string
		outputFlag  string
		contextFlag bool
		noStats     bool
		titleFlag   string
		keywords    []string
	)

	cmd := &cobra.Command{
		Use:   "parse <transcript-file>",
		Short: "Extract action items from a meeting transcript",
		Long: `Parse a meeting transcript and extract action items.

Supported transcript layouts are detected automatically: Zoom-style
(HH:MM:SS timestamps), Google Meet-style (AM/PM timestamps), and plain
"Name: text" logs. Files are read as UTF-8 with a Latin-1 fallback.

The meeting date anchors relative deadlines like "by Friday". When
--date is omitted, today is used.

Examples:
  meetscan parse standup.txt
  meetscan parse standup.txt --date 2025-12-07 --output markdown
  meetscan parse standup.txt --output json --context
  meetscan parse retro.txt --keyword "to own" --keyword "AI:"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := deps.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
			applyParseFlags(cfg, outputFlag, contextFlag, noStats, titleFlag, keywords)

			ref, err := parseReferenceDate(dateFlag)
			if err != nil {
				return err
			}

			opts := pipelineOptions(cfg, ref)
			if formatFlag != "" {
				switch f := transcript.Format(formatFlag); f {
				case transcript.FormatZoom, transcript.FormatMeet, transcript.FormatPlain:
					opts.Format = f
				default:
					return fmt.Errorf("invalid format %q (must be zoom, meet, or plain)", formatFlag)
				}
			}

			path := args[0]
			log := deps.Logger.With(logging.F("file", path))

			raw, err := deps.ReadTranscript(path)
			if err != nil {
				return describeReadError(err, path)
			}

			res, err := deps.Extract(raw, opts)
			if err != nil {
				return describeExtractError(err, path)
			}

			log.Info("extracted transcript",
				logging.F("format", res.Format.String()),
				logging.F("messages", len(res.Messages)),
				logging.F("action_items", res.Statistics.Total))

			return renderResult(cmd.OutOrStdout(), cfg.OutputFormat, res, reportOptions(cfg, ref))
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "meeting date for deadline resolution (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&formatFlag, "format", "", "force transcript layout: zoom, meet, plain (default auto-detect)")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "output format: text, markdown, json, yaml")
	cmd.Flags().BoolVar(&contextFlag, "context", false, "include surrounding messages for each action item")
	cmd.Flags().BoolVar(&noStats, "no-stats", false, "omit the statistics section")
	cmd.Flags().StringVar(&titleFlag, "title", "", "report title")
	cmd.Flags().StringArrayVar(&keywords, "keyword", nil, "extra action keyword (repeatable)")

	return cmd
}

// applyParseFlags overlays command-line flags onto the loaded configuration.
func applyParseFlags(cfg *config.CLIConfig, output string, includeContext, noStats bool, title string, keywords []string) {
	if output != "" {
		cfg.OutputFormat = config.OutputFormat(output)
	}
	if includeContext {
		cfg.IncludeContext = true
	}
	if noStats {
		cfg.IncludeStats = false
	}
	if title != "" {
		cfg.ReportTitle = title
	}
	cfg.ExtraActionKeywords = append(cfg.ExtraActionKeywords, keywords...)
}

// describeReadError turns file-reading failures into actionable messages.
func describeReadError(err error, path string) error {
	switch {
	case mserrors.IsEmptyTranscript(err):
		return fmt.Errorf("%s is empty", path)
	case mserrors.IsUnsupportedFormat(err):
		return fmt.Errorf("%s does not look like a transcript file (expected .txt)", path)
	case mserrors.IsEncoding(err):
		return fmt.Errorf("%s could not be decoded as text", path)
	default:
		return err
	}
}

// describeExtractError turns pipeline failures into actionable messages.
func describeExtractError(err error, path string) error {
	if mserrors.IsMalformedTranscript(err) {
		return fmt.Errorf("%s: no speaker lines recognized; supported layouts are Zoom, Google Meet, and plain \"Name: text\"", path)
	}
	return err
}
