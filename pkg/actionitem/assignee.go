package actionitem

import (
	"regexp"
	"strings"
)

// mentionRegex matches explicit "@Name" mentions.
var mentionRegex = regexp.MustCompile(`@([A-Z][A-Za-z'-]*(?:\s+[A-Z][A-Za-z'-]*)?)`)

// subjectRegex matches a capitalized name at the end of the text preceding a
// keyword, allowing the vocative form "Carlos, you should ...".
var subjectRegex = regexp.MustCompile(`([A-Z][a-z'-]+(?:\s+[A-Z][a-z'-]+)?)(?:,\s*you)?\s*$`)

// subjectStoplist holds capitalized tokens that look like names at the start
// of a sentence but are not resolvable people.
var subjectStoplist = map[string]struct{}{
	"we":        {},
	"i":         {},
	"you":       {},
	"he":        {},
	"she":       {},
	"it":        {},
	"they":      {},
	"this":      {},
	"that":      {},
	"there":     {},
	"team":      {},
	"everyone":  {},
	"everybody": {},
	"someone":   {},
	"somebody":  {},
	"anyone":    {},
	"anybody":   {},
	"nobody":    {},
	"folks":     {},
	"all":       {},
	"let's":     {},
	"lets":      {},
	"the":       {},
	"our":       {},
	"maybe":     {},
	"also":      {},
	"then":      {},
	"so":        {},
	"but":       {},
	"and":       {},
	"ok":        {},
	"okay":      {},
	"sure":      {},
	"yes":       {},
	"yeah":      {},
	"thanks":    {},
}

// assigneeRule is one step of the resolution chain: a named pure function
// that either produces an owner or passes.
type assigneeRule struct {
	name    string
	resolve func(clause, preKeyword, speaker string) (string, bool)
}

// assigneeRules is the resolution precedence. Rules run in order and the
// first hit wins.
var assigneeRules = []assigneeRule{
	{name: "explicit_mention", resolve: resolveMention},
	{name: "subject_before_keyword", resolve: resolveSubject},
	{name: "first_person_speaker", resolve: resolveFirstPerson},
}

// resolveAssignee runs the rule chain over a clause. preKeyword is the
// clause text before the matched action keyword; speaker is the message's
// own speaker name.
func resolveAssignee(clause, preKeyword, speaker string) string {
	for _, rule := range assigneeRules {
		if name, ok := rule.resolve(clause, preKeyword, speaker); ok {
			return name
		}
	}
	return ""
}

func resolveMention(clause, _, _ string) (string, bool) {
	if m := mentionRegex.FindStringSubmatch(clause); m != nil {
		return m[1], true
	}
	return "", false
}

func resolveSubject(_, preKeyword, _ string) (string, bool) {
	pre := strings.TrimRight(strings.TrimSpace(preKeyword), punctTrim)
	m := subjectRegex.FindStringSubmatch(pre)
	if m == nil {
		return "", false
	}
	name := m[1]
	for _, word := range strings.Fields(strings.ToLower(name)) {
		if _, stopped := subjectStoplist[word]; stopped {
			return "", false
		}
	}
	return name, true
}

func resolveFirstPerson(_, preKeyword, speaker string) (string, bool) {
	fields := strings.Fields(preKeyword)
	if len(fields) == 0 || speaker == "" {
		return "", false
	}
	last := strings.Trim(fields[len(fields)-1], punctTrim)
	if strings.EqualFold(last, "i") {
		return speaker, true
	}
	return "", false
}
