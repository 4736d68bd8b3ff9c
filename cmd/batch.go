package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/meetscan/meetscan/config"
	"github.com/meetscan/meetscan/pkg/ingest"
	"github.com/meetscan/meetscan/pkg/logging"
	"github.com/meetscan/meetscan/pkg/report"
)

// BatchCommandDeps holds the dependencies for the batch command.
type BatchCommandDeps struct {
	Logger     logging.Logger
	LoadConfig func() (*config.CLIConfig, error)
	Process    func(ctx context.Context, logger logging.Logger, cfg ingest.BatchConfig, dir string) (*ingest.BatchResult, error)
}

// DefaultBatchDeps returns the default dependencies for production use.
func DefaultBatchDeps() *BatchCommandDeps {
	return &BatchCommandDeps{
		Logger:     logging.NewNopLogger(),
		LoadConfig: config.LoadConfig,
		Process: func(ctx context.Context, logger logging.Logger, cfg ingest.BatchConfig, dir string) (*ingest.BatchResult, error) {
			return ingest.NewProcessor(logger, cfg).Process(ctx, dir)
		},
	}
}

// NewBatchCommand creates the batch command.
func NewBatchCommand(deps *BatchCommandDeps) *cobra.Command {
	if deps == nil {
		deps = DefaultBatchDeps()
	}

	var (
		dateFlag    string
		concurrency int
		reportDir   string
	)

	cmd := &cobra.Command{
		Use:   "batch <directory>",
		Short: "Extract action items from every transcript in a directory",
		Long: `Process all transcript files under a directory, recursively.

Each transcript runs through the extraction pipeline independently, up
to --concurrency at a time. Files that cannot be parsed are reported and
skipped; they never abort the run.

With --report-dir, a markdown report is written per transcript; the
console shows a summary either way.

Examples:
  meetscan batch ./transcripts
  meetscan batch ./transcripts --date 2025-12-07 --concurrency 8
  meetscan batch ./transcripts --report-dir ./reports`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := deps.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
			if concurrency > 0 {
				cfg.BatchConcurrency = concurrency
			}

			ref, err := parseReferenceDate(dateFlag)
			if err != nil {
				return err
			}

			batchCfg := ingest.BatchConfig{
				Concurrency: cfg.BatchConcurrency,
				Options:     pipelineOptions(cfg, ref),
			}

			result, err := deps.Process(cmd.Context(), deps.Logger, batchCfg, args[0])
			if err != nil {
				return fmt.Errorf("batch run failed: %w", err)
			}

			if reportDir != "" {
				if err := writeReports(reportDir, result, cfg, reportOptions(cfg, ref)); err != nil {
					return err
				}
			}

			printBatchSummary(cmd, result, reportDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "meeting date for deadline resolution (YYYY-MM-DD, default today)")
	cmd.Flags().IntVarP(&concurrency, "concurrency", "c", 0, "number of transcripts processed in parallel")
	cmd.Flags().StringVar(&reportDir, "report-dir", "", "write a markdown report per transcript into this directory")

	return cmd
}

// writeReports writes one markdown report per successfully processed
// transcript.
func writeReports(dir string, result *ingest.BatchResult, cfg *config.CLIConfig, opts report.Options) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}

	for _, file := range result.Files {
		name := strings.TrimSuffix(filepath.Base(file.Path), filepath.Ext(file.Path)) + ".md"
		target := filepath.Join(dir, name)

		f, err := os.Create(target)
		if err != nil {
			return fmt.Errorf("creating report %s: %w", target, err)
		}

		fileOpts := opts
		if cfg.ReportTitle == "" {
			fileOpts.Title = "Action Items: " + filepath.Base(file.Path)
		}
		err = report.Markdown(f, file.Result, fileOpts)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("writing report %s: %w", target, err)
		}
	}
	return nil
}

// printBatchSummary renders the run outcome to the command's output.
func printBatchSummary(cmd *cobra.Command, result *ingest.BatchResult, reportDir string) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Processed %d transcripts in %s: %d succeeded, %d failed\n",
		result.TotalFiles,
		result.CompletedAt.Sub(result.StartedAt).Round(time.Millisecond),
		result.Succeeded,
		result.Failed)

	totalItems := 0
	for _, file := range result.Files {
		totalItems += file.Result.Statistics.Total
		fmt.Fprintf(out, "  %-40s %3d action items\n", filepath.Base(file.Path), file.Result.Statistics.Total)
	}
	fmt.Fprintf(out, "Total action items: %d\n", totalItems)

	if len(result.Errors) > 0 {
		fmt.Fprintln(out, "\nSkipped files:")
		for _, fe := range result.Errors {
			fmt.Fprintf(out, "  %s: %s\n", fe.Path, fe.Error)
		}
	}

	if reportDir != "" {
		fmt.Fprintf(out, "\nReports written to %s\n", reportDir)
	}
}
