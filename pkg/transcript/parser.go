package transcript

import (
	"fmt"
	"regexp"
	"strings"

	mserrors "github.com/meetscan/meetscan/pkg/errors"
)

// annotationRegex strips parenthetical and bracketed speaker annotations
// such as "(she/her)", "(host)", or "[guest]".
var annotationRegex = regexp.MustCompile(`\s*[(\[][^)\]]*[)\]]`)

// cleanSpeaker normalizes a speaker name: annotations removed, whitespace
// collapsed.
func cleanSpeaker(name string) string {
	name = annotationRegex.ReplaceAllString(name, "")
	return strings.Join(strings.Fields(name), " ")
}

// matchLine applies the line pattern for the given format and returns the
// timestamp, speaker, and text. ok is false when the line does not start a
// new message under that format.
func matchLine(line string, format Format) (timestamp, speaker, text string, ok bool) {
	switch format {
	case FormatZoom:
		if m := zoomLineRegex.FindStringSubmatch(line); m != nil {
			return m[1], m[2], m[3], true
		}
	case FormatMeet:
		if m := meetLineRegex.FindStringSubmatch(line); m != nil {
			return m[1], m[2], m[3], true
		}
	case FormatPlain:
		if m := plainLineRegex.FindStringSubmatch(line); m != nil {
			return "", m[1], m[2], true
		}
	}
	return "", "", "", false
}

// Parse splits raw transcript text into an ordered message sequence using
// the line pattern of the detected format.
//
// Metadata lines are skipped without consuming an index. A line that matches
// the format's speaker pattern starts a new message; any other line is a
// continuation of the preceding message and is appended with a single space.
// Continuation lines before the first message have no speaker and are
// dropped. Parse is deterministic: the same input and format always yield
// the same message sequence.
//
// Parse fails with ErrMalformedTranscript when no messages can be produced.
func Parse(raw string, format Format) ([]Message, error) {
	if format == FormatUnrecognized {
		return nil, fmt.Errorf("no known line pattern matched: %w", mserrors.ErrMalformedTranscript)
	}

	var messages []Message
	var current *Message

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || isMetadataLine(line) {
			continue
		}

		if timestamp, speaker, text, ok := matchLine(line, format); ok {
			if current != nil {
				messages = append(messages, *current)
			}
			current = &Message{
				Index:     len(messages),
				Speaker:   cleanSpeaker(speaker),
				Timestamp: timestamp,
				Text:      text,
			}
			continue
		}

		// Continuation of the previous message.
		if current != nil {
			current.Text += " " + line
		}
	}

	if current != nil {
		messages = append(messages, *current)
	}

	if len(messages) == 0 {
		return nil, fmt.Errorf("no messages found in %s-format transcript: %w",
			format, mserrors.ErrMalformedTranscript)
	}
	return messages, nil
}
