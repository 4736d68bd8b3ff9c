// Package pipeline wires transcript parsing and action-item extraction into
// the single entry point the presentation layers consume.
//
// Extract is a pure function of its inputs: no file access, no shared state,
// safe to call from any number of goroutines at once.
package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/meetscan/meetscan/pkg/actionitem"
	mserrors "github.com/meetscan/meetscan/pkg/errors"
	"github.com/meetscan/meetscan/pkg/transcript"
)

// Options configure a single extraction.
type Options struct {
	// ReferenceDate anchors relative deadline resolution, typically the
	// meeting date. The zero value means "now".
	ReferenceDate time.Time

	// IncludeContext attaches surrounding-message snippets to each action
	// item.
	IncludeContext bool

	// ContextWindow is the number of neighbouring messages on each side of
	// the source message included in a snippet. Defaults to 1.
	ContextWindow int

	// ExtraKeywords extends the built-in action keyword set.
	ExtraKeywords []string

	// Format forces a transcript layout instead of detecting one. The zero
	// value means auto-detect.
	Format transcript.Format
}

// Result is the structured output of one extraction.
type Result struct {
	Format      transcript.Format       `json:"format"`
	Messages    []transcript.Message    `json:"messages"`
	ActionItems []actionitem.ActionItem `json:"action_items"`
	Statistics  actionitem.Statistics   `json:"statistics"`
}

// Extract runs the full pipeline over raw transcript text: format detection,
// message parsing, action-item detection, and statistics aggregation.
//
// It fails with ErrEmptyTranscript when the input is empty or whitespace-only
// and with ErrMalformedTranscript when no messages can be parsed. A
// transcript that parses but contains no commitments is a success with an
// empty ActionItems slice.
func Extract(raw string, opts Options) (*Result, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, mserrors.ErrEmptyTranscript
	}

	format := opts.Format
	if format == "" {
		format = transcript.DetectFormat(raw)
	}
	messages, err := transcript.Parse(raw, format)
	if err != nil {
		return nil, fmt.Errorf("parsing transcript: %w", err)
	}

	items := actionitem.Detect(messages, actionitem.Options{
		ReferenceDate:  opts.ReferenceDate,
		IncludeContext: opts.IncludeContext,
		ContextWindow:  opts.ContextWindow,
		ExtraKeywords:  opts.ExtraKeywords,
	})

	return &Result{
		Format:      format,
		Messages:    messages,
		ActionItems: items,
		Statistics:  actionitem.Aggregate(items),
	}, nil
}
