// Package schedule contains the deadline normalization, classification, and
// milestone resolution logic for scheme records. Every function is a pure
// transform over its arguments; "today" is always an explicit parameter so
// the package stays deterministic and testable without clock mocking.
package schedule

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// monthIndex maps the first three letters of an English month name
// (lowercase) to its time.Month value.
var monthIndex = map[string]time.Month{
	"jan": time.January,
	"feb": time.February,
	"mar": time.March,
	"apr": time.April,
	"may": time.May,
	"jun": time.June,
	"jul": time.July,
	"aug": time.August,
	"sep": time.September,
	"oct": time.October,
	"nov": time.November,
	"dec": time.December,
}

// genericLayouts are tried first because they subsume the well-formed
// formats cheaply; the looser patterns below recover the spreadsheet-style
// free text the feed actually contains.
var genericLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2 Jan 2006",
	"02 Jan 2006",
	"2 January 2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

var (
	isoPattern       = regexp.MustCompile(`^(\d{4})[/\-.](\d{1,2})[/\-.](\d{1,2})$`)
	numericPattern   = regexp.MustCompile(`^(\d{1,2})[/\-.](\d{1,2})(?:[/\-.](\d{2,4}))?$`)
	monthNamePattern = regexp.MustCompile(`^(\d{1,2})[/\-. ]([A-Za-z]+)(?:[/\-. ](\d{2,4}))?$`)
)

// Midnight truncates t to the start of its calendar day, re-anchored in UTC.
// All canonical dates in this package are UTC midnights, so day differences
// are exact whole days regardless of DST in the host zone.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Date constructs the canonical date for the given calendar day.
// Out-of-range values are normalized the way time.Date normalizes them.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Parse normalizes a heterogeneous date string into a canonical date.
// It tries, in order: generic date literals, ISO-like YYYY-MM-DD numerics,
// DD/MM numerics with optional year, and day + English month name with
// optional year. When the year is omitted the current year is assumed and,
// if the result falls strictly before today, the date rolls forward one year
// (an unqualified day/month refers to the next future occurrence).
//
// Empty, whitespace-only, and unmatched input yields ok=false, never an
// error: callers must treat the result as "deadline unknown".
func Parse(raw string, today time.Time) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	today = Midnight(today)

	for _, layout := range genericLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return Midnight(t), true
		}
	}

	if m := isoPattern.FindStringSubmatch(raw); m != nil {
		return parseISO(m)
	}

	if m := numericPattern.FindStringSubmatch(raw); m != nil {
		if d, ok := parseNumeric(m, today); ok {
			return d, true
		}
		// Month out of range: fall through, the month-name pattern cannot
		// match an all-numeric string so the result is unparseable.
	}

	if m := monthNamePattern.FindStringSubmatch(raw); m != nil {
		return parseMonthName(m, today)
	}

	return time.Time{}, false
}

// parseISO handles YYYY[sep]MM[sep]DD. Month and day are validated against
// the real calendar; anything out of range is rejected.
func parseISO(m []string) (time.Time, bool) {
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	if month < 1 || month > 12 {
		return time.Time{}, false
	}
	d := Date(year, time.Month(month), day)
	if d.Day() != day || d.Month() != time.Month(month) {
		return time.Time{}, false
	}
	return d, true
}

// parseNumeric handles DD[sep]MM[sep][YY|YYYY]. The month must be 1-12 or
// the pattern is rejected. A 2-digit year gets 2000 added; an omitted year
// defaults to today's year with the roll-forward policy.
func parseNumeric(m []string, today time.Time) (time.Time, bool) {
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 {
		return time.Time{}, false
	}
	yearGiven := m[3] != ""
	year := today.Year()
	if yearGiven {
		year, _ = strconv.Atoi(m[3])
		if year < 100 {
			year += 2000
		}
	}
	d := Date(year, time.Month(month), day)
	if !yearGiven && d.Before(today) {
		d = Date(year+1, time.Month(month), day)
	}
	return d, true
}

// parseMonthName handles DD[sep]MonthName[sep][year] where separators
// include space. The month name is matched case-insensitively by its first
// three letters.
func parseMonthName(m []string, today time.Time) (time.Time, bool) {
	day, _ := strconv.Atoi(m[1])
	token := strings.ToLower(m[2])
	if len(token) < 3 {
		return time.Time{}, false
	}
	month, ok := monthIndex[token[:3]]
	if !ok {
		return time.Time{}, false
	}
	yearGiven := m[3] != ""
	year := today.Year()
	if yearGiven {
		year, _ = strconv.Atoi(m[3])
		if year < 100 {
			year += 2000
		}
	}
	d := Date(year, month, day)
	if !yearGiven && d.Before(today) {
		d = Date(year+1, month, day)
	}
	return d, true
}

// FormatDate renders a canonical date the way the dashboard displays it,
// e.g. "05 Mar 2026".
func FormatDate(d time.Time) string {
	return d.Format("02 Jan 2006")
}
