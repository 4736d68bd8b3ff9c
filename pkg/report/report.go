// Package report renders extraction results for human and machine
// consumers. Renderers serialize the pipeline output verbatim; they never
// recompute statistics or reorder action items.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/meetscan/meetscan/pkg/actionitem"
	"github.com/meetscan/meetscan/pkg/pipeline"
)

// Options configure rendering.
type Options struct {
	// Title heads markdown and text output. Defaults to "Meeting Action Items".
	Title string

	// IncludeStats appends the statistics section.
	IncludeStats bool

	// GeneratedAt is stamped into the output. The zero value means "now".
	GeneratedAt time.Time
}

func (o Options) title() string {
	if o.Title == "" {
		return "Meeting Action Items"
	}
	return o.Title
}

func (o Options) generatedAt() time.Time {
	if o.GeneratedAt.IsZero() {
		return time.Now()
	}
	return o.GeneratedAt
}

// envelope is the serialized form shared by the JSON and YAML renderers.
type envelope struct {
	Title       string                  `json:"title" yaml:"title"`
	GeneratedAt time.Time               `json:"generated_at" yaml:"generated_at"`
	Format      string                  `json:"transcript_format" yaml:"transcript_format"`
	ActionItems []actionitem.ActionItem `json:"action_items" yaml:"action_items"`
	Statistics  *actionitem.Statistics  `json:"statistics,omitempty" yaml:"statistics,omitempty"`
}

func newEnvelope(res *pipeline.Result, opts Options) envelope {
	env := envelope{
		Title:       opts.title(),
		GeneratedAt: opts.generatedAt(),
		Format:      res.Format.String(),
		ActionItems: res.ActionItems,
	}
	if opts.IncludeStats {
		stats := res.Statistics
		env.Statistics = &stats
	}
	return env
}

// JSON writes the result as indented JSON.
func JSON(w io.Writer, res *pipeline.Result, opts Options) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newEnvelope(res, opts))
}

// YAML writes the result as a YAML document.
func YAML(w io.Writer, res *pipeline.Result, opts Options) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(newEnvelope(res, opts))
}

// Markdown writes the result as a markdown report with action items grouped
// by assignee. Assignees appear in sorted order with unassigned items last.
func Markdown(w io.Writer, res *pipeline.Result, opts Options) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", opts.title())
	fmt.Fprintf(&b, "Generated: %s\n\n", opts.generatedAt().Format("2006-01-02"))

	if len(res.ActionItems) == 0 {
		b.WriteString("No action items detected.\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	for _, group := range groupByAssignee(res.ActionItems) {
		fmt.Fprintf(&b, "## %s\n\n", group.name)
		for _, item := range group.items {
			b.WriteString(markdownLine(item))
		}
		b.WriteString("\n")
	}

	if opts.IncludeStats {
		writeMarkdownStats(&b, res.Statistics)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Text writes a compact console summary.
func Text(w io.Writer, res *pipeline.Result, opts Options) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", opts.title())
	fmt.Fprintf(&b, "Transcript format: %s, %d messages\n\n", res.Format, len(res.Messages))

	if len(res.ActionItems) == 0 {
		b.WriteString("No action items detected.\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	for i, item := range res.ActionItems {
		fmt.Fprintf(&b, "%2d. %s\n", i+1, item.Task)
		owner := item.Assignee
		if owner == "" {
			owner = "unassigned"
		}
		fmt.Fprintf(&b, "    owner: %s  priority: %s%s\n", owner, item.Priority, textDeadline(item))
	}

	if opts.IncludeStats {
		stats := res.Statistics
		fmt.Fprintf(&b, "\n%d action items: %d assigned, %d with deadline, %d high priority\n",
			stats.Total, stats.WithAssignee, stats.WithDeadline, stats.ByPriority[actionitem.PriorityHigh])
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func textDeadline(item actionitem.ActionItem) string {
	switch {
	case item.DeadlineDate != nil:
		return fmt.Sprintf("  due: %s", item.DeadlineDate.Format("2006-01-02"))
	case item.DeadlineExpression != "":
		return fmt.Sprintf("  due: %s (unresolved)", item.DeadlineExpression)
	default:
		return ""
	}
}

// markdownLine renders one action item as a checkbox entry.
func markdownLine(item actionitem.ActionItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "- [ ] %s", item.Task)
	if item.DeadlineDate != nil {
		fmt.Fprintf(&b, " (due %s)", item.DeadlineDate.Format("2006-01-02"))
	} else if item.DeadlineExpression != "" {
		fmt.Fprintf(&b, " (due %s, unresolved)", item.DeadlineExpression)
	}
	if item.Priority != actionitem.PriorityMedium {
		fmt.Fprintf(&b, " **[%s]**", strings.ToUpper(string(item.Priority)))
	}
	b.WriteString("\n")
	return b.String()
}

func writeMarkdownStats(b *strings.Builder, stats actionitem.Statistics) {
	b.WriteString("## Statistics\n\n")
	fmt.Fprintf(b, "- Total action items: %d\n", stats.Total)
	fmt.Fprintf(b, "- With assignee: %d\n", stats.WithAssignee)
	fmt.Fprintf(b, "- With deadline: %d\n", stats.WithDeadline)
	fmt.Fprintf(b, "- Priority: %d high / %d medium / %d low\n",
		stats.ByPriority[actionitem.PriorityHigh],
		stats.ByPriority[actionitem.PriorityMedium],
		stats.ByPriority[actionitem.PriorityLow])
}

// assigneeGroup keeps grouped items in a deterministic render order.
type assigneeGroup struct {
	name  string
	items []actionitem.ActionItem
}

// groupByAssignee buckets items by owner, preserving item order within each
// bucket. Named owners sort alphabetically; the unassigned bucket renders
// last.
func groupByAssignee(items []actionitem.ActionItem) []assigneeGroup {
	buckets := make(map[string][]actionitem.ActionItem)
	for _, item := range items {
		name := item.Assignee
		if name == "" {
			name = "Unassigned"
		}
		buckets[name] = append(buckets[name], item)
	}

	names := make([]string, 0, len(buckets))
	for name := range buckets {
		if name != "Unassigned" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if _, ok := buckets["Unassigned"]; ok {
		names = append(names, "Unassigned")
	}

	groups := make([]assigneeGroup, 0, len(names))
	for _, name := range names {
		groups = append(groups, assigneeGroup{name: name, items: buckets[name]})
	}
	return groups
}
