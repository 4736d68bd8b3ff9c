package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/meetscan/meetscan/config"
	"github.com/meetscan/meetscan/pkg/actionitem"
	"github.com/meetscan/meetscan/pkg/ingest"
	"github.com/meetscan/meetscan/pkg/logging"
	"github.com/meetscan/meetscan/pkg/pipeline"
	"github.com/meetscan/meetscan/pkg/transcript"
)

// fakeBatchResult builds a canned result with one success and one failure.
func fakeBatchResult() *ingest.BatchResult {
	items := []actionitem.ActionItem{{Task: "update the docs", Assignee: "Sarah", Priority: actionitem.PriorityMedium}}
	res := &pipeline.Result{
		Format:      transcript.FormatPlain,
		Messages:    []transcript.Message{{Speaker: "Sarah", Text: "I will update the docs"}},
		ActionItems: items,
		Statistics:  actionitem.Aggregate(items),
	}
	now := time.Now()
	return &ingest.BatchResult{
		RunID:       "run-1",
		TotalFiles:  2,
		Succeeded:   1,
		Failed:      1,
		StartedAt:   now,
		CompletedAt: now.Add(50 * time.Millisecond),
		Files:       []ingest.FileResult{{Path: "transcripts/standup.txt", Result: res}},
		Errors:      []ingest.FileError{{Path: "transcripts/broken.txt", Error: "transcript is malformed"}},
	}
}

func createBatchTestDeps(result *ingest.BatchResult) *BatchCommandDeps {
	return &BatchCommandDeps{
		Logger: logging.NewNopLogger(),
		LoadConfig: func() (*config.CLIConfig, error) {
			return config.DefaultConfig(), nil
		},
		Process: func(ctx context.Context, logger logging.Logger, cfg ingest.BatchConfig, dir string) (*ingest.BatchResult, error) {
			return result, nil
		},
	}
}

func runBatchCommand(t *testing.T, deps *BatchCommandDeps, args ...string) (string, error) {
	t.Helper()
	cmd := NewBatchCommand(deps)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestNewBatchCommand(t *testing.T) {
	cmd := NewBatchCommand(nil)

	if cmd == nil {
		t.Fatal("NewBatchCommand returned nil")
	}
	if !strings.HasPrefix(cmd.Use, "batch") {
		t.Errorf("expected Use to start with 'batch', got %q", cmd.Use)
	}

	for _, flag := range []string{"date", "concurrency", "report-dir"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected flag %q not found", flag)
		}
	}
}

func TestBatchCommandSummary(t *testing.T) {
	out, err := runBatchCommand(t, createBatchTestDeps(fakeBatchResult()), "transcripts")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"Processed 2 transcripts",
		"1 succeeded, 1 failed",
		"standup.txt",
		"Total action items: 1",
		"Skipped files:",
		"broken.txt: transcript is malformed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestBatchCommandWritesReports(t *testing.T) {
	reportDir := filepath.Join(t.TempDir(), "reports")

	out, err := runBatchCommand(t, createBatchTestDeps(fakeBatchResult()),
		"transcripts", "--report-dir", reportDir, "--date", "2025-12-07")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Reports written to") {
		t.Errorf("expected report notice, got:\n%s", out)
	}

	data, err := os.ReadFile(filepath.Join(reportDir, "standup.md"))
	if err != nil {
		t.Fatalf("expected report file: %v", err)
	}
	if !strings.Contains(string(data), "update the docs") {
		t.Errorf("report missing task:\n%s", data)
	}
	if !strings.Contains(string(data), "# Action Items: standup.txt") {
		t.Errorf("report missing per-file title:\n%s", data)
	}
}

func TestBatchCommandConcurrencyFlag(t *testing.T) {
	var captured ingest.BatchConfig
	deps := &BatchCommandDeps{
		Logger: logging.NewNopLogger(),
		LoadConfig: func() (*config.CLIConfig, error) {
			return config.DefaultConfig(), nil
		},
		Process: func(ctx context.Context, logger logging.Logger, cfg ingest.BatchConfig, dir string) (*ingest.BatchResult, error) {
			captured = cfg
			return fakeBatchResult(), nil
		},
	}

	if _, err := runBatchCommand(t, deps, "transcripts", "--concurrency", "9"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if captured.Concurrency != 9 {
		t.Errorf("expected concurrency 9, got %d", captured.Concurrency)
	}
}
