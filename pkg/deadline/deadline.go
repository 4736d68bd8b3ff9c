// Package deadline extracts and resolves natural-language deadline
// expressions ("by Friday", "in 2 days", "end of month") against a
// reference date.
//
// All resolution is timezone-naive: results are calendar dates at midnight
// UTC, never instants. Unsupported phrasing is reported via the ok return
// rather than an error, so a single unresolvable deadline never aborts an
// extraction.
package deadline

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// deadlinePatterns are the recognized deadline phrasings. Weekday and
// month-day forms require an introducer ("by", "before", "due", "until") so
// that bare weekday mentions ("Monday's meeting went well") are not captured;
// self-evident forms ("tomorrow", "in 2 days", ISO dates) match bare.
var deadlinePatterns = []string{
	`(?:by|before|due|until)\s+(?:mon|tues|wednes|thurs|fri|satur|sun)day`,
	`(?:by|before|due|until)\s+(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:tember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\s+\d{1,2}(?:st|nd|rd|th)?(?:,?\s+\d{4})?`,
	`(?:(?:by|before|due|until|on)\s+)?\d{4}-\d{2}-\d{2}`,
	`(?:(?:by|before|due|until|on)\s+)?\d{1,2}/\d{1,2}/\d{4}`,
	`in\s+\d+\s+(?:day|week)s?`,
	`(?:(?:by|before|due|until)\s+)?next\s+week`,
	`(?:(?:by|before|due|until)\s+)?end\s+of\s+(?:the\s+)?(?:day|week|month)`,
	`(?:(?:by|before|due|until)\s+)?(?:today|tomorrow|tonight)`,
}

var expressionRegex = regexp.MustCompile(`(?i)\b(?:` + strings.Join(deadlinePatterns, `|`) + `)\b`)

// introducerRegex strips the leading deadline introducer before resolution.
var introducerRegex = regexp.MustCompile(`(?i)^(?:by|before|due|until|on)\s+`)

// durationRegex matches relative offsets like "in 2 days" or "in 1 week".
var durationRegex = regexp.MustCompile(`(?i)^in\s+(\d+)\s+(day|week)s?$`)

// ordinalSuffixRegex strips ordinal suffixes from day numbers ("12th" -> "12").
var ordinalSuffixRegex = regexp.MustCompile(`(?i)(\d)(?:st|nd|rd|th)\b`)

// weekdays maps lowercase weekday names to time.Weekday.
var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// absoluteLayouts are the accepted absolute date layouts. Layouts without a
// year are completed from the reference date.
var absoluteLayouts = []string{
	"2006-01-02",
	"1/2/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2 2006",
	"Jan 2",
	"January 2",
}

// FindExpression returns the longest substring of text that matches a known
// deadline pattern, verbatim as it appeared. ok is false when no pattern
// matches.
func FindExpression(text string) (expr string, ok bool) {
	matches := expressionRegex.FindAllString(text, -1)
	for _, m := range matches {
		if len(m) > len(expr) {
			expr = m
		}
	}
	return expr, expr != ""
}

// Resolve converts a deadline expression into a calendar date anchored to
// ref. ok is false when the phrasing is not supported; the caller keeps the
// raw expression and leaves the date absent.
//
// Weekday forms resolve strictly after ref: "by Friday" on a Friday means
// the next Friday, a week out. "end of day", "today", and "tonight" resolve
// to ref itself. Fully absolute expressions ignore ref entirely.
func Resolve(expr string, ref time.Time) (time.Time, bool) {
	expr = strings.TrimSpace(expr)
	expr = introducerRegex.ReplaceAllString(expr, "")
	lower := strings.ToLower(strings.Join(strings.Fields(expr), " "))
	lower = strings.TrimPrefix(lower, "the ")

	anchor := midnight(ref)

	switch lower {
	case "today", "tonight", "end of day", "end of the day":
		return anchor, true
	case "tomorrow":
		return anchor.AddDate(0, 0, 1), true
	case "next week":
		return anchor.AddDate(0, 0, 7), true
	case "end of week", "end of the week":
		return nextWeekday(anchor, time.Friday), true
	case "end of month", "end of the month":
		firstOfNext := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
		return firstOfNext.AddDate(0, 0, -1), true
	}

	if wd, found := weekdays[lower]; found {
		return nextWeekday(anchor, wd), true
	}

	if m := durationRegex.FindStringSubmatch(lower); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, false
		}
		if m[2] == "week" {
			n *= 7
		}
		return anchor.AddDate(0, 0, n), true
	}

	return resolveAbsolute(expr, anchor)
}

// resolveAbsolute parses absolute date forms. Yearless dates take the
// reference year, rolling forward to the next year when the date has
// already passed.
func resolveAbsolute(expr string, anchor time.Time) (time.Time, bool) {
	s := ordinalSuffixRegex.ReplaceAllString(expr, "$1")
	s = canonicalizeMonth(strings.Join(strings.Fields(s), " "))

	for _, layout := range absoluteLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if !strings.Contains(layout, "2006") {
			t = time.Date(anchor.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			if t.Before(anchor) {
				t = t.AddDate(1, 0, 0)
			}
			return t, true
		}
		return midnight(t), true
	}
	return time.Time{}, false
}

// canonicalizeMonth title-cases alphabetic tokens so that lowercased month
// names ("dec 12") parse with Go's case-sensitive layouts.
func canonicalizeMonth(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		r := []rune(strings.ToLower(f))
		if unicode.IsLetter(r[0]) {
			r[0] = unicode.ToUpper(r[0])
			fields[i] = string(r)
		}
	}
	return strings.Join(fields, " ")
}

// nextWeekday returns the next occurrence of wd strictly after from.
func nextWeekday(from time.Time, wd time.Weekday) time.Time {
	days := (int(wd) - int(from.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return from.AddDate(0, 0, days)
}

// midnight truncates a time to its calendar date at midnight UTC.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
