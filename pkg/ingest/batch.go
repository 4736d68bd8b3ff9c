package ingest

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/meetscan/meetscan/pkg/logging"
	"github.com/meetscan/meetscan/pkg/pipeline"
)

// DefaultConcurrency is the default number of concurrent workers.
const DefaultConcurrency = 4

// BatchConfig configures a batch run.
type BatchConfig struct {
	// Concurrency is the number of transcripts processed in parallel.
	Concurrency int

	// Options are passed unchanged to every pipeline invocation.
	Options pipeline.Options
}

// FileResult pairs a transcript path with its extraction result.
type FileResult struct {
	Path   string
	Result *pipeline.Result
}

// FileError records an error for a specific file.
type FileError struct {
	Path  string
	Error string
}

// BatchResult summarizes a batch run over a directory.
type BatchResult struct {
	RunID       string
	TotalFiles  int
	Succeeded   int
	Failed      int
	StartedAt   time.Time
	CompletedAt time.Time
	Files       []FileResult
	Errors      []FileError
}

// Processor runs the extraction pipeline over every transcript in a
// directory.
type Processor struct {
	cfg    BatchConfig
	logger logging.Logger

	mu       sync.Mutex
	files    []FileResult
	failures []FileError
}

// NewProcessor creates a batch processor.
func NewProcessor(logger logging.Logger, cfg BatchConfig) *Processor {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConcurrency
	}
	return &Processor{
		cfg:    cfg,
		logger: logger.With(logging.F("component", "batch_processor")),
	}
}

// Process walks dir for transcript files and extracts each one. Files are
// processed concurrently up to the configured limit; each invocation is
// independent, so no result ever mixes state across files.
//
// Per-file failures are collected in the result rather than aborting the
// run. Process itself fails only when the directory cannot be walked or the
// context is cancelled.
func (p *Processor) Process(ctx context.Context, dir string) (*BatchResult, error) {
	paths, err := discoverTranscripts(dir)
	if err != nil {
		return nil, fmt.Errorf("discovering transcripts: %w", err)
	}

	runID := uuid.New().String()
	log := p.logger.With(logging.F("run_id", runID))
	log.Info("batch run started",
		logging.F("dir", dir),
		logging.F("files", len(paths)),
		logging.F("concurrency", p.cfg.Concurrency))

	result := &BatchResult{
		RunID:      runID,
		TotalFiles: len(paths),
		StartedAt:  time.Now(),
	}

	p.files = nil
	p.failures = nil

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Concurrency)
	for _, path := range paths {
		path := path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p.processFile(log, path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(p.files, func(i, j int) bool { return p.files[i].Path < p.files[j].Path })
	sort.Slice(p.failures, func(i, j int) bool { return p.failures[i].Path < p.failures[j].Path })

	result.Files = p.files
	result.Errors = p.failures
	result.Succeeded = len(p.files)
	result.Failed = len(p.failures)
	result.CompletedAt = time.Now()

	log.Info("batch run finished",
		logging.F("succeeded", result.Succeeded),
		logging.F("failed", result.Failed))
	return result, nil
}

// processFile extracts a single transcript and records the outcome.
func (p *Processor) processFile(log logging.Logger, path string) {
	raw, err := ReadTranscript(path)
	if err == nil {
		var res *pipeline.Result
		res, err = pipeline.Extract(raw, p.cfg.Options)
		if err == nil {
			log.Debug("extracted transcript",
				logging.F("file", path),
				logging.F("action_items", res.Statistics.Total))
			p.mu.Lock()
			p.files = append(p.files, FileResult{Path: path, Result: res})
			p.mu.Unlock()
			return
		}
	}

	log.Warn("skipping transcript", logging.F("file", path), logging.Err(err))
	p.mu.Lock()
	p.failures = append(p.failures, FileError{Path: path, Error: err.Error()})
	p.mu.Unlock()
}

// discoverTranscripts returns the transcript files under dir, sorted.
func discoverTranscripts(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && IsTranscriptFile(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}
