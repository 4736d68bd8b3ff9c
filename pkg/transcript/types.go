// Package transcript normalizes raw meeting transcripts into an ordered
// sequence of speaker messages. It supports Zoom-style, Google Meet-style,
// and plain "Name: text" layouts.
package transcript

// Format identifies a known transcript layout.
type Format string

const (
	// FormatZoom matches lines like "00:00:15 Sarah Chen: text".
	FormatZoom Format = "zoom"
	// FormatMeet matches lines like "10:30 AM Sarah Chen: text".
	FormatMeet Format = "meet"
	// FormatPlain matches lines like "Sarah Chen: text" with no timestamp.
	FormatPlain Format = "plain"
	// FormatUnrecognized indicates no known layout matched.
	FormatUnrecognized Format = "unrecognized"
)

// String returns the string representation of a Format.
func (f Format) String() string {
	return string(f)
}

// Message is a single speaker turn in a transcript.
type Message struct {
	// Index is the ordinal position in the transcript (0-based, dense).
	Index int `json:"index"`
	// Speaker is the speaker name with parenthetical annotations stripped.
	Speaker string `json:"speaker"`
	// Timestamp is the format-native timestamp string (e.g. "00:00:15" or
	// "10:30 AM"). Empty for the plain format.
	Timestamp string `json:"timestamp,omitempty"`
	// Text is the utterance with continuation lines folded in.
	Text string `json:"text"`
}
