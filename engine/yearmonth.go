/*
yearmonth.go - Calendar month representation

PURPOSE:
  Defines YearMonth, the unit of time everything in the engine is indexed
  by: stage boundaries, the rollover watermark, and projection steps.

KEY INVARIANT (do not "fix" this):
  YearMonth is a fixed-width, zero-padded "YYYY-MM" string, so LEXICAL
  string comparison IS calendar comparison. "2024-09" < "2024-10" <
  "2025-01" holds both as strings and as months. All ordering in the
  engine relies on this; do not replace Compare with a time.Time diff.

GRANULARITY:
  The engine never cares about days. Stages start and end on month
  boundaries, deposits are monthly, and the watermark marks the last
  month whose deposit has been applied. time.Time only appears at the
  edges (clock reads, projection result dates).

SEE ALSO:
  - resolver.go: Ordering-based stage lookup
  - rollover.go: Month-by-month watermark advancement
*/
package engine

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the time.Parse/Format layout for a YearMonth.
const Layout = "2006-01"

// YearMonth is a calendar month as a fixed-width "YYYY-MM" string.
// The zero value "" means "unset".
type YearMonth string

// ParseYearMonth validates s as a "YYYY-MM" month (month 01-12).
func ParseYearMonth(s string) (YearMonth, error) {
	if len(s) != len(Layout) {
		return "", fmt.Errorf("invalid year-month %q (want YYYY-MM)", s)
	}
	if _, err := time.Parse(Layout, s); err != nil {
		return "", fmt.Errorf("invalid year-month %q (want YYYY-MM)", s)
	}
	return YearMonth(s), nil
}

// YearMonthOf returns the month containing t.
func YearMonthOf(t time.Time) YearMonth {
	return YearMonth(t.Format(Layout))
}

// CurrentYearMonth returns the current real-world month.
func CurrentYearMonth() YearMonth {
	return YearMonthOf(time.Now())
}

// Valid reports whether ym is a well-formed "YYYY-MM" month.
func (ym YearMonth) Valid() bool {
	_, err := ParseYearMonth(string(ym))
	return err == nil
}

// IsZero reports whether ym is unset.
func (ym YearMonth) IsZero() bool { return ym == "" }

// Compare orders two months. Lexical comparison is correct because the
// format is fixed-width and zero-padded (see package comment).
func Compare(a, b YearMonth) int {
	return strings.Compare(string(a), string(b))
}

func (ym YearMonth) Before(other YearMonth) bool { return Compare(ym, other) < 0 }
func (ym YearMonth) After(other YearMonth) bool  { return Compare(ym, other) > 0 }

// Next returns the following calendar month.
// Panics on a malformed receiver; callers validate at the plan boundary.
func (ym YearMonth) Next() YearMonth {
	t, err := time.Parse(Layout, string(ym))
	if err != nil {
		panic(fmt.Sprintf("engine: Next on invalid year-month %q", ym))
	}
	return YearMonthOf(t.AddDate(0, 1, 0))
}

// Time returns the first day of the month in UTC.
func (ym YearMonth) Time() (time.Time, error) {
	return time.Parse(Layout, string(ym))
}

func (ym YearMonth) String() string { return string(ym) }
