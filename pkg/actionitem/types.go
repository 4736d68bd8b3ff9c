// Package actionitem detects, extracts, and classifies action items from a
// parsed meeting transcript. Detection is driven by static keyword tables
// rather than per-keyword code paths, and every invocation is a pure
// function of the message sequence plus a reference date.
package actionitem

import "time"

// Priority is the urgency classification of an action item.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ActionItem is a single commitment extracted from a transcript.
type ActionItem struct {
	// Task is the action description with speaker attribution and the
	// leading action keyword stripped.
	Task string `json:"task" yaml:"task"`

	// Assignee is the resolved owner name, empty when unassigned.
	Assignee string `json:"assignee,omitempty" yaml:"assignee,omitempty"`

	// DeadlineExpression is the raw deadline phrase as it appeared in the
	// text (e.g. "by Friday"), empty when none was found.
	DeadlineExpression string `json:"deadline_expression,omitempty" yaml:"deadline_expression,omitempty"`

	// DeadlineDate is the resolved calendar date. Present only when
	// DeadlineExpression was resolvable.
	DeadlineDate *time.Time `json:"deadline_date,omitempty" yaml:"deadline_date,omitempty"`

	// Priority defaults to medium when no urgency signal is present.
	Priority Priority `json:"priority" yaml:"priority"`

	// SourceMessageIndex refers back to the originating message in the same
	// parse result.
	SourceMessageIndex int `json:"source_message_index" yaml:"source_message_index"`

	// Context is a snippet of the surrounding messages, populated only on
	// request.
	Context string `json:"context,omitempty" yaml:"context,omitempty"`
}

// Statistics are linear-scan tallies over a set of action items.
type Statistics struct {
	Total           int              `json:"total" yaml:"total"`
	WithAssignee    int              `json:"with_assignee" yaml:"with_assignee"`
	WithoutAssignee int              `json:"without_assignee" yaml:"without_assignee"`
	WithDeadline    int              `json:"with_deadline" yaml:"with_deadline"`
	WithoutDeadline int              `json:"without_deadline" yaml:"without_deadline"`
	ByPriority      map[Priority]int `json:"by_priority" yaml:"by_priority"`
	ByAssignee      map[string]int   `json:"by_assignee" yaml:"by_assignee"`
}

// Aggregate computes statistics over the given action items. Items without
// an assignee are counted under "Unassigned" in ByAssignee.
func Aggregate(items []ActionItem) Statistics {
	stats := Statistics{
		Total:      len(items),
		ByPriority: map[Priority]int{PriorityHigh: 0, PriorityMedium: 0, PriorityLow: 0},
		ByAssignee: make(map[string]int),
	}

	for _, item := range items {
		if item.Assignee != "" {
			stats.WithAssignee++
			stats.ByAssignee[item.Assignee]++
		} else {
			stats.ByAssignee["Unassigned"]++
		}
		if item.DeadlineDate != nil {
			stats.WithDeadline++
		}
		stats.ByPriority[item.Priority]++
	}

	stats.WithoutAssignee = stats.Total - stats.WithAssignee
	stats.WithoutDeadline = stats.Total - stats.WithDeadline
	return stats
}
