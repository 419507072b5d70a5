package engine_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/savings-engine/engine"
)

func TestParseYearMonth_Valid(t *testing.T) {
	ym, err := engine.ParseYearMonth("2025-03")
	require.NoError(t, err)
	assert.Equal(t, engine.YearMonth("2025-03"), ym)
}

func TestParseYearMonth_Invalid(t *testing.T) {
	for _, s := range []string{"", "2025", "2025-3", "2025-13", "2025-00", "25-03", "2025/03", "2025-03-01"} {
		_, err := engine.ParseYearMonth(s)
		assert.Error(t, err, "input %q should be rejected", s)
	}
}

func TestYearMonth_Next(t *testing.T) {
	assert.Equal(t, engine.YearMonth("2025-04"), engine.YearMonth("2025-03").Next())

	// Year boundary
	assert.Equal(t, engine.YearMonth("2026-01"), engine.YearMonth("2025-12").Next())
}

func TestYearMonth_LexicalOrderingIsCalendarOrdering(t *testing.T) {
	// GIVEN: months out of order, spanning year and month boundaries
	months := []string{"2025-01", "2024-12", "2024-02", "2025-10", "2024-10", "2025-02"}

	// WHEN: sorted lexically
	sort.Strings(months)

	// THEN: the result is chronological
	assert.Equal(t, []string{"2024-02", "2024-10", "2024-12", "2025-01", "2025-02", "2025-10"}, months)

	assert.True(t, engine.YearMonth("2024-12").Before("2025-01"))
	assert.True(t, engine.YearMonth("2025-10").After("2025-02"))
	assert.Equal(t, 0, engine.Compare("2025-05", "2025-05"))
}
