package engine_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/warp/savings-engine/engine"
)

func TestSeedState_FromGoal(t *testing.T) {
	g := goal(100000, 8000)
	g.CurrentLongterm = d(12000)
	g.CurrentBuffer = d(2500)

	st := engine.SeedState(g, "2025-06")

	assert.True(t, st.CurrentLongterm.Equal(decimal.NewFromInt(12000)))
	assert.True(t, st.CurrentBuffer.Equal(decimal.NewFromInt(2500)))

	// Watermark starts at the current month so the first rollover pass
	// cannot double-apply the seed.
	assert.Equal(t, engine.YearMonth("2025-06"), st.LastRolloverYM)
}

func TestSeedState_AbsentSeedsDefaultToZero(t *testing.T) {
	g := goal(100000, 8000)
	g.CurrentLongterm = nil
	g.CurrentBuffer = nil

	st := engine.SeedState(g, "2025-06")

	assert.True(t, st.CurrentLongterm.IsZero())
	assert.True(t, st.CurrentBuffer.IsZero())
}

func TestSeedState_NilGoal(t *testing.T) {
	st := engine.SeedState(nil, "2025-06")

	assert.True(t, st.CurrentLongterm.IsZero())
	assert.Equal(t, engine.YearMonth("2025-06"), st.LastRolloverYM)
}

func TestSeedState_ThenRollover_NoDoubleApply(t *testing.T) {
	// GIVEN: freshly seeded state
	g := goal(100000, 8000)
	g.CurrentLongterm = d(12000)
	st := engine.SeedState(g, "2025-06")

	// WHEN: the first rollover pass runs in the same month
	out, changed := engine.ApplyRollover(st, savingStage(1000, 200), "2025-06")

	// THEN: nothing is applied
	assert.False(t, changed)
	assert.True(t, out.CurrentLongterm.Equal(decimal.NewFromInt(12000)))
}
