// Package cmd provides CLI commands for the meetscan tool.
package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/meetscan/meetscan/config"
	"github.com/meetscan/meetscan/pkg/pipeline"
	"github.com/meetscan/meetscan/pkg/report"
)

// renderResult writes an extraction result in the requested output format.
func renderResult(w io.Writer, format config.OutputFormat, res *pipeline.Result, opts report.Options) error {
	switch format {
	case config.OutputFormatMarkdown:
		return report.Markdown(w, res, opts)
	case config.OutputFormatJSON:
		return report.JSON(w, res, opts)
	case config.OutputFormatYAML:
		return report.YAML(w, res, opts)
	case config.OutputFormatText, "":
		return report.Text(w, res, opts)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// parseReferenceDate parses a --date flag value. An empty value means today.
func parseReferenceDate(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", value)
	}
	return t, nil
}

// pipelineOptions builds pipeline options from config plus the reference
// date.
func pipelineOptions(cfg *config.CLIConfig, ref time.Time) pipeline.Options {
	return pipeline.Options{
		ReferenceDate:  ref,
		IncludeContext: cfg.IncludeContext,
		ContextWindow:  cfg.ContextWindow,
		ExtraKeywords:  cfg.ExtraActionKeywords,
	}
}

// reportOptions builds report options from config.
func reportOptions(cfg *config.CLIConfig, generatedAt time.Time) report.Options {
	return report.Options{
		Title:        cfg.ReportTitle,
		IncludeStats: cfg.IncludeStats,
		GeneratedAt:  generatedAt,
	}
}
