// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Unavailable is rendered for any figure whose inputs are missing.
// Missing data is shown explicitly, never as a zero.
const Unavailable = "—"

// FormatMoney renders a money value with comma separators and two
// decimals; nil renders as Unavailable.
func FormatMoney(d *decimal.Decimal) string {
	if d == nil {
		return Unavailable
	}
	s := d.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	parts := strings.SplitN(s, ".", 2)
	whole := parts[0]

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := b.String() + "." + parts[1]
	if neg {
		out = "-" + out
	}
	return out
}

// FormatPct renders a clamped progress percentage; nil renders as
// Unavailable.
func FormatPct(pct *float64) string {
	if pct == nil {
		return Unavailable
	}
	return fmt.Sprintf("%.1f%%", *pct)
}

// FormatMonthYear renders a projection date as "January 2030".
func FormatMonthYear(t time.Time) string {
	return t.Format("January 2006")
}

// FormatCountdown renders the time until the next rollover check.
// e.g., 72s -> "1m 12s", 4s -> "4s"
func FormatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d.Round(time.Second).Seconds())
	if secs >= 60 {
		return fmt.Sprintf("%dm %ds", secs/60, secs%60)
	}
	return fmt.Sprintf("%ds", secs)
}
