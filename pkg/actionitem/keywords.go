package actionitem

import (
	"regexp"
	"strings"
)

// actionKeywords are the phrases that mark an utterance as action-bearing.
// Multi-word phrases come first so the alternation prefers the longest match
// at a given position. Contractions like "I'll" are deliberately absent:
// "Sure, I'll have it ready" is a confirmation, not a new commitment.
var actionKeywords = []string{
	"action item",
	"take care of",
	"follow up",
	"make sure",
	"needs to",
	"need to",
	"have to",
	"has to",
	"going to",
	"ought to",
	"can you",
	"could you",
	"will",
	"should",
	"must",
	"shall",
	"to-do",
	"todo",
	"please",
}

// negationMarkers invalidate a keyword match when they appear within the
// token window around it.
var negationMarkers = map[string]struct{}{
	"not":       {},
	"never":     {},
	"no":        {},
	"won't":     {},
	"wont":      {},
	"can't":     {},
	"cant":      {},
	"cannot":    {},
	"don't":     {},
	"dont":      {},
	"doesn't":   {},
	"doesnt":    {},
	"didn't":    {},
	"didnt":     {},
	"shouldn't": {},
	"shouldnt":  {},
	"wouldn't":  {},
	"wouldnt":   {},
	"couldn't":  {},
	"couldnt":   {},
	"isn't":     {},
	"isnt":      {},
}

// negationWindow is how many tokens before a keyword are inspected for a
// negation marker. The token immediately after the keyword is also checked,
// which catches "will not" and "must never".
const negationWindow = 3

var (
	highPriorityRegex = regexp.MustCompile(`(?i)\b(?:urgent(?:ly)?|asap|critical|immediately|right away|top priority|high priority)\b`)
	lowPriorityRegex  = regexp.MustCompile(`(?i)\b(?:eventually|when(?:ever)? you get a chance|no rush|low priority|at some point|sometime)\b`)
)

// classifyPriority scans a clause for urgency signals. High beats low when
// both are present.
func classifyPriority(clause string) Priority {
	if highPriorityRegex.MatchString(clause) {
		return PriorityHigh
	}
	if lowPriorityRegex.MatchString(clause) {
		return PriorityLow
	}
	return PriorityMedium
}

// compileKeywordRegex builds the keyword alternation, appending any
// caller-supplied extra keywords after the built-in set. Literal phrases are
// quoted and interior whitespace is relaxed.
func compileKeywordRegex(extra []string) *regexp.Regexp {
	phrases := make([]string, 0, len(actionKeywords)+len(extra))
	for _, kw := range append(append([]string{}, actionKeywords...), extra...) {
		kw = strings.TrimSpace(strings.ToLower(kw))
		if kw == "" {
			continue
		}
		quoted := strings.ReplaceAll(regexp.QuoteMeta(kw), ` `, `\s+`)
		phrases = append(phrases, quoted)
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(phrases, `|`) + `)\b`)
}

// defaultKeywordRegex serves detections without extra keywords so the
// common path compiles the alternation once.
var defaultKeywordRegex = compileKeywordRegex(nil)

// punctTrim are the characters trimmed from token and task boundaries.
const punctTrim = ".,;:!?\"'()[]"

// isNegated reports whether a keyword occurrence in clause is preceded
// within negationWindow tokens by a negation marker, or immediately followed
// by one.
func isNegated(clause string, start, end int) bool {
	before := strings.Fields(clause[:start])
	if len(before) > negationWindow {
		before = before[len(before)-negationWindow:]
	}
	for _, tok := range before {
		if _, neg := negationMarkers[strings.ToLower(strings.Trim(tok, punctTrim))]; neg {
			return true
		}
	}
	after := strings.Fields(clause[end:])
	if len(after) > 0 {
		if _, neg := negationMarkers[strings.ToLower(strings.Trim(after[0], punctTrim))]; neg {
			return true
		}
	}
	return false
}
