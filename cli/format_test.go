package cli_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/warp/savings-engine/cli"
)

func d(v float64) *decimal.Decimal {
	dd := decimal.NewFromFloat(v)
	return &dd
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "1,234,567.89", cli.FormatMoney(d(1234567.89)))
	assert.Equal(t, "800.00", cli.FormatMoney(d(800)))
	assert.Equal(t, "-2,100.50", cli.FormatMoney(d(-2100.5)))
	assert.Equal(t, "0.00", cli.FormatMoney(d(0)))
}

func TestFormatMoney_NilIsUnavailable(t *testing.T) {
	// Missing data renders explicitly, never as zero
	assert.Equal(t, cli.Unavailable, cli.FormatMoney(nil))
}

func TestFormatPct(t *testing.T) {
	pct := 42.5
	assert.Equal(t, "42.5%", cli.FormatPct(&pct))
	assert.Equal(t, cli.Unavailable, cli.FormatPct(nil))
}

func TestFormatCountdown(t *testing.T) {
	assert.Equal(t, "4s", cli.FormatCountdown(4*time.Second))
	assert.Equal(t, "1m 12s", cli.FormatCountdown(72*time.Second))
	assert.Equal(t, "0s", cli.FormatCountdown(-3*time.Second))
}

func TestFormatMonthYear(t *testing.T) {
	assert.Equal(t, "January 2030", cli.FormatMonthYear(time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)))
}
