/*
validate_test.go - Plan validation behavior

Covers the fail-closed stages check, per-stage issue accumulation, and
goal presence checks.
*/
package plan_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/savings-engine/engine"
	"github.com/warp/savings-engine/plan"
)

func d(v float64) *decimal.Decimal {
	dd := decimal.NewFromFloat(v)
	return &dd
}

func validPlan() *plan.Plan {
	year := 2030
	return &plan.Plan{
		Stages: []engine.Stage{
			{Name: "steady", From: "2024-01", SavingLongterm: d(1000)},
		},
		Goal: &engine.Goal{
			TargetLongterm:  d(100000),
			TargetBuffer:    d(8000),
			CurrentLongterm: d(12000),
			CurrentBuffer:   d(2500),
			TargetYear:      &year,
		},
	}
}

func TestValidate_ValidPlan_NoIssues(t *testing.T) {
	assert.Empty(t, plan.Validate(validPlan()))
}

func TestValidate_EmptyStages_ExactlyOneIssue(t *testing.T) {
	// GIVEN: a plan with an empty stages list
	// THEN: exactly one issue, no per-stage breakdown
	issues := plan.Validate(&plan.Plan{Stages: []engine.Stage{}})
	assert.Len(t, issues, 1)

	issues = plan.Validate(&plan.Plan{})
	assert.Len(t, issues, 1)

	issues = plan.Validate(nil)
	assert.Len(t, issues, 1)
}

func TestValidate_AccumulatesAllStageIssues(t *testing.T) {
	// GIVEN: two malformed stages
	p := &plan.Plan{
		Stages: []engine.Stage{
			{Name: "", From: "2024-01"},        // missing name
			{Name: "bad-from", From: "2024-13"}, // month out of range
		},
	}

	// WHEN: validating
	issues := plan.Validate(p)

	// THEN: both problems are reported, not just the first
	require.GreaterOrEqual(t, len(issues), 2)
}

func TestValidate_StageFieldChecks(t *testing.T) {
	p := validPlan()
	p.Stages = append(p.Stages, engine.Stage{Name: "sloppy", From: "2024-1", To: "2025-00"})

	issues := plan.Validate(p)

	// Unpadded from and invalid to are each their own issue
	assert.Len(t, issues, 2)
}

func TestValidate_GoalPresenceChecks(t *testing.T) {
	// GIVEN: a goal missing two of the five required keys
	p := validPlan()
	p.Goal.TargetBuffer = nil
	p.Goal.TargetYear = nil

	issues := plan.Validate(p)

	assert.Len(t, issues, 2)
	assert.Contains(t, issues[0], "target_buffer")
	assert.Contains(t, issues[1], "target_year")
}

func TestValidate_NoGoal_IsAllowed(t *testing.T) {
	// A plan without a goal is structurally fine; projection later
	// reports insufficient configuration instead.
	p := validPlan()
	p.Goal = nil

	assert.Empty(t, plan.Validate(p))
}
