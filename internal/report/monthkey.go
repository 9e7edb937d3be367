// Package report turns raw record sets into the chart-ready series and
// KPI values the dashboard renders. Every function here is pure:
// malformed dates and numbers degrade the single record, never the run.
package report

import (
	"fmt"
	"strings"
	"time"
)

// dateLayouts are tried in order when extracting a month key. The
// backend serializes plain dates for buys/movements and RFC 3339
// timestamps for creation times.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// MonthKey derives the canonical YYYY-MM bucket key from a date string.
// Returns ok=false for anything unparsable; callers drop such records
// from time-keyed aggregation instead of erroring.
func MonthKey(date string) (string, bool) {
	s := strings.TrimSpace(date)
	if s == "" {
		return "", false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01"), true
		}
	}
	return "", false
}

var monthAbbrevs = []string{
	"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}

// MonthLabel renders a YYYY-MM key as a short localized label ("Jan/24").
// Unknown month segments fall back to the raw numeric string.
func MonthLabel(key string) string {
	year, month, ok := strings.Cut(key, "-")
	if !ok {
		return key
	}
	label := month
	if idx := monthIndex(month); idx >= 0 {
		label = monthAbbrevs[idx]
	}
	if len(year) > 2 {
		year = year[len(year)-2:]
	}
	return fmt.Sprintf("%s/%s", label, year)
}

// monthIndex returns the 0-based month for a 2-digit segment, or -1.
func monthIndex(month string) int {
	if len(month) != 2 || month[0] < '0' || month[0] > '9' || month[1] < '0' || month[1] > '9' {
		return -1
	}
	n := int(month[0]-'0')*10 + int(month[1]-'0')
	if n < 1 || n > 12 {
		return -1
	}
	return n - 1
}
