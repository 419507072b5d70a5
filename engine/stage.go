/*
stage.go - Stage and Goal domain types

PURPOSE:
  A Stage is a time-bounded set of financial assumptions: what comes in,
  what goes out, and what gets saved each month while the stage applies.
  A Goal holds the target thresholds the two savings tracks are measured
  against.

OPTIONAL FIELDS:
  Every money field is a *decimal.Decimal. nil means "not configured",
  and that absence propagates through every downstream computation as
  "unavailable" rather than defaulting to zero. A missing net income
  must never render as a zero leftover. This is policy, not an accident.

PRECISION:
  Uses decimal.Decimal for all money, never float64. Floats appear only
  at the growth-rate boundary in projection.go.

LIFECYCLE:
  Stages and the goal are supplied wholesale by the plan document and
  are immutable for the process lifetime. There is no in-app editing.

SEE ALSO:
  - resolver.go: Which stage applies to a given month
  - viewmodel.go: Derived display figures
*/
package engine

import "github.com/shopspring/decimal"

// =============================================================================
// STAGE - Time-bounded financial assumptions
// =============================================================================

// Stage describes one phase of a financial plan.
//
// From/To are inclusive month bounds; an empty To means open-ended.
// Stages need not be contiguous or non-overlapping; the resolver
// tolerates both gaps and overlaps.
type Stage struct {
	Name string    `json:"name"`
	From YearMonth `json:"from"`
	To   YearMonth `json:"to,omitempty"`

	// Monthly assumptions. nil = not configured ("unavailable").
	Income         *decimal.Decimal `json:"income,omitempty"`
	NetIncome      *decimal.Decimal `json:"net_income,omitempty"`
	FixedCosts     *decimal.Decimal `json:"fixed_costs,omitempty"`
	Household      *decimal.Decimal `json:"household,omitempty"`
	SavingLongterm *decimal.Decimal `json:"saving_longterm,omitempty"`
	SavingBuffer   *decimal.Decimal `json:"saving_buffer,omitempty"`
}

// OpenEnded reports whether the stage has no end month.
func (s Stage) OpenEnded() bool { return s.To.IsZero() }

// Contains reports whether ym falls within [From, To].
func (s Stage) Contains(ym YearMonth) bool {
	if ym.Before(s.From) {
		return false
	}
	return s.OpenEnded() || !ym.After(s.To)
}

// =============================================================================
// GOAL - Target thresholds for the two savings tracks
// =============================================================================

// Goal holds savings targets and first-run seed balances.
//
// The Current* fields seed BalanceState exactly once, on first run; after
// that the goal is evaluated against persisted state, never against the
// seeds. TargetYear is informational only.
type Goal struct {
	TargetLongterm  *decimal.Decimal `json:"target_longterm"`
	TargetBuffer    *decimal.Decimal `json:"target_buffer"`
	CurrentLongterm *decimal.Decimal `json:"current_longterm"`
	CurrentBuffer   *decimal.Decimal `json:"current_buffer"`
	TargetYear      *int             `json:"target_year"`
}
