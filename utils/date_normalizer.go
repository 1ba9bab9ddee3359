package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	dotDateRe   = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})\.(\d{2,4})$`)
	sepDateRe   = regexp.MustCompile(`^(\d{1,2})[-/](\d{1,2})[-/](\d{2,4})$`)
	textualDate = []string{
		"2 Jan 2006", "02 Jan 2006", "2 January 2006", "02 January 2006",
		"Jan 2, 2006", "January 2, 2006", "2006-01-02",
	}
)

// NormalizeDate converts a raw date token into canonical YYYY-MM-DD form.
// Candidate formats are tried in order: dot-separated day.month.year, then
// dash/slash-separated day-month-year, then textual month forms.
// Returns "" if nothing matches or the day/month values are out of range.
// Day is only checked against [1,31]; month-length and leap years are not
// validated.
func NormalizeDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	for _, re := range []*regexp.Regexp{dotDateRe, sepDateRe} {
		if m := re.FindStringSubmatch(raw); len(m) > 3 {
			if date := buildCanonicalDate(m[1], m[2], m[3]); date != "" {
				return date
			}
			// Structurally matched but invalid values: do not try the
			// other numeric format, the token is a bad date either way.
			return ""
		}
	}

	for _, layout := range textualDate {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02")
		}
	}

	return ""
}

// buildCanonicalDate validates day/month ranges and formats YYYY-MM-DD.
// Out-of-range values are rejected rather than wrapped.
func buildCanonicalDate(dayStr, monthStr, yearStr string) string {
	day, err := strconv.Atoi(dayStr)
	if err != nil || day < 1 || day > 31 {
		return ""
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return ""
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return ""
	}
	if year < 100 {
		year += 2000
	}

	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}
