package transcript

import (
	"regexp"
	"strings"
)

// detectionWindow is the number of candidate lines examined during format
// detection.
const detectionWindow = 10

// Line patterns for the supported layouts.
var (
	// zoomLineRegex matches "00:00:15 Sarah Chen: text".
	zoomLineRegex = regexp.MustCompile(`^(\d{2}:\d{2}:\d{2})\s+(.+?)\s*:\s+(.+)$`)

	// meetLineRegex matches "10:30 AM Sarah Chen: text". The AM/PM marker is
	// required so that Zoom-style timestamps never partially match.
	meetLineRegex = regexp.MustCompile(`^(\d{1,2}:\d{2}\s*(?i:[AP]M))\s+(.+?)\s*:\s+(.+)$`)

	// plainLineRegex matches "Sarah Chen: text". Speaker names start with an
	// uppercase letter to avoid matching arbitrary "key: value" lines.
	plainLineRegex = regexp.MustCompile(`^([A-Z][A-Za-z .'-]*?)\s*:\s+(.+)$`)
)

// Metadata line recognition. These lines carry no dialogue and are skipped
// without being assigned a message index.
var (
	metadataPrefixes = []string{
		"recording started",
		"recording ended",
		"meeting id:",
		"passcode:",
		"transcript started",
		"transcript ended",
		"zoom meeting",
		"google meet",
	}

	separatorLineRegex    = regexp.MustCompile(`^[=-]{3,}`)
	participantsLineRegex = regexp.MustCompile(`(?i)^\d+\s+participants?\b`)
)

// isMetadataLine reports whether a line is transcript metadata (header or
// footer) rather than dialogue.
func isMetadataLine(line string) bool {
	lower := strings.ToLower(line)
	for _, prefix := range metadataPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return separatorLineRegex.MatchString(line) || participantsLineRegex.MatchString(line)
}

// DetectFormat classifies raw transcript text as one of the known layouts.
// It examines the first detectionWindow non-blank, non-metadata lines and
// applies the patterns in fixed precedence order: Zoom, then Meet, then
// plain. The first line that matches any pattern decides the format.
// Ambiguous timestamps such as "00:15 AM" therefore classify as Meet, since
// the Zoom pattern requires three colon-separated groups.
func DetectFormat(raw string) Format {
	examined := 0
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || isMetadataLine(line) {
			continue
		}
		examined++

		switch {
		case zoomLineRegex.MatchString(line):
			return FormatZoom
		case meetLineRegex.MatchString(line):
			return FormatMeet
		case plainLineRegex.MatchString(line):
			return FormatPlain
		}

		if examined >= detectionWindow {
			break
		}
	}
	return FormatUnrecognized
}
