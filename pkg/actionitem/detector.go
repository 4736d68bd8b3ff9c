package actionitem

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/meetscan/meetscan/pkg/deadline"
	"github.com/meetscan/meetscan/pkg/transcript"
)

// Options configure a detection pass.
type Options struct {
	// ReferenceDate anchors relative deadline resolution. The zero value
	// means "now".
	ReferenceDate time.Time

	// IncludeContext attaches a snippet of the surrounding messages to each
	// action item.
	IncludeContext bool

	// ContextWindow is the number of neighbouring messages on each side
	// included in the context snippet. Defaults to 1.
	ContextWindow int

	// ExtraKeywords extends the built-in action keyword set.
	ExtraKeywords []string
}

// clauseRegex splits a message into clauses at sentence boundaries and at
// ", and " conjunctions joining separate commitments. Bare commas are kept
// intact so vocatives ("Carlos, you should ...") stay in one clause.
var clauseRegex = regexp.MustCompile(`[.;!?]+|,\s+and\s+`)

// deadlineIntroducers mark a bare deadline phrase as itself action-bearing
// ("Report due by Friday") even without a keyword.
var deadlineIntroducers = []string{"by ", "before ", "due ", "until "}

// Detect scans an ordered message sequence for action items.
//
// Each message is split into clauses; a clause yields at most one action
// item, from its first keyword occurrence that survives negation filtering.
// Detection order follows message order, then clause order within a message,
// so the result is already sorted by source message index.
//
// Detect never fails: a transcript with no commitments yields an empty,
// non-nil slice.
func Detect(messages []transcript.Message, opts Options) []ActionItem {
	ref := opts.ReferenceDate
	if ref.IsZero() {
		ref = time.Now()
	}
	keywordRegex := defaultKeywordRegex
	if len(opts.ExtraKeywords) > 0 {
		keywordRegex = compileKeywordRegex(opts.ExtraKeywords)
	}

	items := make([]ActionItem, 0)
	for _, msg := range messages {
		for _, clause := range splitClauses(msg.Text) {
			item, ok := detectInClause(clause, msg, keywordRegex, ref)
			if !ok {
				continue
			}
			if opts.IncludeContext {
				item.Context = contextSnippet(messages, msg.Index, opts.ContextWindow)
			}
			items = append(items, item)
		}
	}
	return items
}

// detectInClause extracts at most one action item from a single clause.
func detectInClause(clause string, msg transcript.Message, keywordRegex *regexp.Regexp, ref time.Time) (ActionItem, bool) {
	var preKeyword, task string
	matched := false

	for _, loc := range keywordRegex.FindAllStringIndex(clause, -1) {
		if isNegated(clause, loc[0], loc[1]) {
			continue
		}
		preKeyword = clause[:loc[0]]
		task = clause[loc[1]:]
		matched = true
		break
	}

	expr, hasExpr := deadline.FindExpression(clause)

	if !matched {
		// A deadline phrase with an explicit introducer is itself an
		// action signal: "Report due by Friday".
		if !hasExpr || !hasIntroducer(expr) {
			return ActionItem{}, false
		}
		task = clause
	}

	if hasExpr {
		task = strings.Replace(task, expr, "", 1)
	}
	task = cleanTask(task)
	if task == "" {
		return ActionItem{}, false
	}

	item := ActionItem{
		Task:               task,
		Assignee:           resolveAssignee(clause, preKeyword, msg.Speaker),
		Priority:           classifyPriority(clause),
		SourceMessageIndex: msg.Index,
	}
	if hasExpr {
		item.DeadlineExpression = expr
		if date, ok := deadline.Resolve(expr, ref); ok {
			item.DeadlineDate = &date
		}
	}
	return item, true
}

// splitClauses breaks message text into sentence-level clauses, dropping
// empties.
func splitClauses(text string) []string {
	var clauses []string
	for _, c := range clauseRegex.Split(text, -1) {
		if c = strings.TrimSpace(c); c != "" {
			clauses = append(clauses, c)
		}
	}
	return clauses
}

// hasIntroducer reports whether a deadline expression starts with an
// explicit introducer rather than a bare date.
func hasIntroducer(expr string) bool {
	lower := strings.ToLower(expr)
	for _, p := range deadlineIntroducers {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}

// cleanTask normalizes extracted task text: collapsed whitespace, boundary
// punctuation trimmed.
func cleanTask(task string) string {
	task = strings.Join(strings.Fields(task), " ")
	return strings.Trim(task, punctTrim+" ")
}

// contextSnippet renders the messages around index as "Speaker: text" lines.
func contextSnippet(messages []transcript.Message, index, window int) string {
	if window <= 0 {
		window = 1
	}
	lo, hi := index-window, index+window
	if lo < 0 {
		lo = 0
	}
	if hi > len(messages)-1 {
		hi = len(messages) - 1
	}
	lines := make([]string, 0, hi-lo+1)
	for _, m := range messages[lo : hi+1] {
		lines = append(lines, fmt.Sprintf("%s: %s", m.Speaker, m.Text))
	}
	return strings.Join(lines, "\n")
}
