package profiling

import (
	"strings"
	"time"
)

// Calendar layouts accepted for date cells, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// parseDate attempts to parse a text value as a calendar date
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// looksLikeDate applies the double condition for date detection: the
// value must parse as a calendar date AND contain a separator. The
// separator requirement avoids false positives on bare numeric strings
// that a lenient parser would accept.
func looksLikeDate(s string) bool {
	if !strings.ContainsAny(s, "-/") {
		return false
	}
	_, ok := parseDate(s)
	return ok
}

// formatDate renders a parsed date as YYYY-MM-DD in UTC with no time
// component.
func formatDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
