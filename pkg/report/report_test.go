package report

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/meetscan/meetscan/pkg/actionitem"
	"github.com/meetscan/meetscan/pkg/pipeline"
	"github.com/meetscan/meetscan/pkg/transcript"
)

var generated = time.Date(2025, 12, 7, 10, 0, 0, 0, time.UTC)

func sampleResult() *pipeline.Result {
	due := time.Date(2025, 12, 12, 0, 0, 0, 0, time.UTC)
	items := []actionitem.ActionItem{
		{Task: "update the API documentation", Assignee: "Sarah Chen", DeadlineExpression: "by Friday", DeadlineDate: &due, Priority: actionitem.PriorityMedium},
		{Task: "fix the critical bug", Assignee: "John", Priority: actionitem.PriorityHigh, SourceMessageIndex: 1},
		{Task: "review the style guide", DeadlineExpression: "sometime soon", Priority: actionitem.PriorityLow, SourceMessageIndex: 2},
	}
	return &pipeline.Result{
		Format:      transcript.FormatZoom,
		Messages:    make([]transcript.Message, 3),
		ActionItems: items,
		Statistics:  actionitem.Aggregate(items),
	}
}

func TestMarkdownGroupsByAssignee(t *testing.T) {
	var buf bytes.Buffer
	err := Markdown(&buf, sampleResult(), Options{IncludeStats: true, GeneratedAt: generated})
	require.NoError(t, err)
	out := buf.String()

	assert.Contains(t, out, "# Meeting Action Items")
	assert.Contains(t, out, "Generated: 2025-12-07")

	// Named assignees sorted, unassigned last.
	john := bytes.Index(buf.Bytes(), []byte("## John"))
	sarah := bytes.Index(buf.Bytes(), []byte("## Sarah Chen"))
	unassigned := bytes.Index(buf.Bytes(), []byte("## Unassigned"))
	require.True(t, john >= 0 && sarah >= 0 && unassigned >= 0)
	assert.Less(t, john, sarah)
	assert.Less(t, sarah, unassigned)

	assert.Contains(t, out, "- [ ] update the API documentation (due 2025-12-12)")
	assert.Contains(t, out, "**[HIGH]**")
	assert.Contains(t, out, "(due sometime soon, unresolved)")
	assert.Contains(t, out, "## Statistics")
	assert.Contains(t, out, "- Total action items: 3")
}

func TestMarkdownEmptyResult(t *testing.T) {
	var buf bytes.Buffer
	res := &pipeline.Result{Format: transcript.FormatPlain}
	require.NoError(t, Markdown(&buf, res, Options{GeneratedAt: generated}))
	assert.Contains(t, buf.String(), "No action items detected.")
}

func TestJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, sampleResult(), Options{IncludeStats: true, GeneratedAt: generated}))

	var decoded envelope
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "zoom", decoded.Format)
	require.Len(t, decoded.ActionItems, 3)
	assert.Equal(t, "update the API documentation", decoded.ActionItems[0].Task)
	require.NotNil(t, decoded.Statistics)
	assert.Equal(t, 3, decoded.Statistics.Total)
}

func TestJSONOmitsStatsWhenDisabled(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, sampleResult(), Options{GeneratedAt: generated}))
	assert.NotContains(t, buf.String(), `"statistics"`)
}

func TestYAMLRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, YAML(&buf, sampleResult(), Options{IncludeStats: true, GeneratedAt: generated}))

	var decoded envelope
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "zoom", decoded.Format)
	require.Len(t, decoded.ActionItems, 3)
	assert.Equal(t, "John", decoded.ActionItems[1].Assignee)
}

func TestTextSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, sampleResult(), Options{IncludeStats: true, GeneratedAt: generated}))
	out := buf.String()

	assert.Contains(t, out, "Transcript format: zoom, 3 messages")
	assert.Contains(t, out, "1. update the API documentation")
	assert.Contains(t, out, "owner: Sarah Chen")
	assert.Contains(t, out, "due: 2025-12-12")
	assert.Contains(t, out, "owner: unassigned")
	assert.Contains(t, out, "3 action items: 2 assigned, 1 with deadline, 1 high priority")
}

func TestCustomTitle(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Markdown(&buf, sampleResult(), Options{Title: "Sprint Review", GeneratedAt: generated}))
	assert.Contains(t, buf.String(), "# Sprint Review")
}
