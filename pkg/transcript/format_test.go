package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Format
	}{
		{
			name: "zoom_style",
			raw:  "00:00:15 Sarah Chen: Let's get started\n00:00:22 Mike Johnson: Sounds good",
			want: FormatZoom,
		},
		{
			name: "meet_style",
			raw:  "10:00 AM Sarah Chen: Let's get started\n10:01 AM Mike Johnson: Sounds good",
			want: FormatMeet,
		},
		{
			name: "plain_style",
			raw:  "Sarah Chen: Let's get started\nMike Johnson: Sounds good",
			want: FormatPlain,
		},
		{
			// The Zoom pattern needs three colon groups, so this ambiguous
			// timestamp classifies as Meet.
			name: "ambiguous_timestamp_is_meet",
			raw:  "00:15 AM Sarah Chen: Let's get started",
			want: FormatMeet,
		},
		{
			name: "metadata_header_skipped",
			raw:  "Recording started: 2025-12-07\nMeeting ID: 123 456 789\n\n00:00:15 Sarah Chen: Hello",
			want: FormatZoom,
		},
		{
			name: "separator_lines_skipped",
			raw:  "=====================\nSarah: Hello there\n=====================",
			want: FormatPlain,
		},
		{
			name: "lowercase_pm_marker",
			raw:  "9:05 pm Dana Cruz: Evening everyone",
			want: FormatMeet,
		},
		{
			name: "unrecognized_prose",
			raw:  "this is just a paragraph of notes\nwith no speaker structure at all",
			want: FormatUnrecognized,
		},
		{
			name: "empty_input",
			raw:  "",
			want: FormatUnrecognized,
		},
		{
			name: "match_beyond_window_ignored",
			raw: "line one\nline two\nline three\nline four\nline five\n" +
				"line six\nline seven\nline eight\nline nine\nline ten\n" +
				"Sarah Chen: too late to matter",
			want: FormatUnrecognized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat(tt.raw))
		})
	}
}
