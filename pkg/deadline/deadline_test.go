package deadline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ref is Sunday 2025-12-07, chosen so weekday arithmetic is easy to check
// by hand.
var ref = time.Date(2025, 12, 7, 15, 30, 0, 0, time.UTC)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFindExpression(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{"weekday_with_introducer", "finish the report by Friday please", "by Friday", true},
		{"bare_weekday_not_matched", "Monday's standup ran long", "", false},
		{"iso_date", "ship it on 2025-12-20", "on 2025-12-20", true},
		{"slash_date", "target is 12/20/2025", "12/20/2025", true},
		{"relative_days", "I can do that in 2 days", "in 2 days", true},
		{"tomorrow", "let's sync tomorrow morning", "tomorrow", true},
		{"end_of_week", "wrap up by end of week", "by end of week", true},
		{"end_of_the_month", "invoices go out by end of the month", "by end of the month", true},
		{"month_day", "due December 12th at the latest", "due December 12th", true},
		{"longest_wins", "by Friday or at worst by end of the month", "by end of the month", true},
		{"no_expression", "we should improve the onboarding flow", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindExpression(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want time.Time
		ok   bool
	}{
		{"by_friday", "by Friday", date(2025, 12, 12), true},
		{"by_monday", "by Monday", date(2025, 12, 8), true},
		// ref is a Sunday, so "by Sunday" means a full week out.
		{"same_weekday_rolls_forward", "by Sunday", date(2025, 12, 14), true},
		{"today", "today", date(2025, 12, 7), true},
		{"tonight", "tonight", date(2025, 12, 7), true},
		{"tomorrow", "tomorrow", date(2025, 12, 8), true},
		{"in_2_days", "in 2 days", date(2025, 12, 9), true},
		{"in_1_week", "in 1 week", date(2025, 12, 14), true},
		{"next_week", "next week", date(2025, 12, 14), true},
		{"end_of_day", "by end of day", date(2025, 12, 7), true},
		{"end_of_week", "end of week", date(2025, 12, 12), true},
		{"end_of_month", "by end of the month", date(2025, 12, 31), true},
		{"iso_date", "on 2026-01-15", date(2026, 1, 15), true},
		{"slash_date", "1/15/2026", date(2026, 1, 15), true},
		{"month_day_with_year", "due Dec 12, 2025", date(2025, 12, 12), true},
		{"month_day_yearless", "by December 12th", date(2025, 12, 12), true},
		// Dec 1 already passed relative to ref, so it rolls to next year.
		{"yearless_past_rolls_forward", "by December 1st", date(2026, 12, 1), true},
		{"unsupported", "whenever you get a chance", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.expr, ref)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

// Resolving the same expression against the same reference must always give
// the same date, and the result must never be an instant with a time-of-day
// component.
func TestResolveDeterministicMidnight(t *testing.T) {
	exprs := []string{"by Friday", "tomorrow", "in 3 weeks", "end of month", "2026-02-01"}
	for _, expr := range exprs {
		first, ok := Resolve(expr, ref)
		require.True(t, ok, expr)
		second, _ := Resolve(expr, ref)
		assert.Equal(t, first, second, expr)
		assert.Equal(t, 0, first.Hour(), expr)
		assert.Equal(t, 0, first.Minute(), expr)
		assert.Equal(t, time.UTC, first.Location(), expr)
	}
}

// Fully absolute expressions ignore the reference date entirely.
func TestResolveAbsoluteIgnoresReference(t *testing.T) {
	otherRef := time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)
	a, ok := Resolve("2026-03-10", ref)
	require.True(t, ok)
	b, ok := Resolve("2026-03-10", otherRef)
	require.True(t, ok)
	assert.Equal(t, a, b)
}

func TestResolveWeekdayStrictlyAfter(t *testing.T) {
	// For every weekday of a full week of reference dates, the resolved
	// date falls 1 to 7 days after the reference, never on it.
	for offset := 0; offset < 7; offset++ {
		r := ref.AddDate(0, 0, offset)
		for name := range weekdays {
			got, ok := Resolve("by "+name, r)
			require.True(t, ok, name)
			diff := int(got.Sub(midnight(r)).Hours() / 24)
			assert.GreaterOrEqual(t, diff, 1, "%s from %s", name, r)
			assert.LessOrEqual(t, diff, 7, "%s from %s", name, r)
		}
	}
}
