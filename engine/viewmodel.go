/*
viewmodel.go - Display-ready figures for the presentation layer

PURPOSE:
  Pure transform from a resolved stage + balances + goal into everything
  the renderer needs. Recomputed on every render, never persisted. The
  presentation layer does no computation of its own beyond formatting.

DERIVED FIGURES:
  totalOut     = fixed_costs + household
  savingsTotal = saving_longterm + saving_buffer
  leftover     = net_income - totalOut - savingsTotal
  tax          = income - net_income

UNAVAILABLE PROPAGATION:
  Any missing input makes the figures depending on it nil. A nil never
  becomes a zero: a plan without net_income has no leftover, not a
  leftover of -4000. The renderer shows nil as an em dash.

PROGRESS:
  Goal progress is current/target*100 clamped to [0,100], nil when the
  target is absent or non-positive (nothing meaningful to show).

SEE ALSO:
  - projection.go: The two projection results carried alongside
  - cli/render.go: The consumer
*/
package engine

import "github.com/shopspring/decimal"

// ViewModel is the full rendering contract: the resolved stage's raw
// figures, the derived totals, goal progress, and both projections.
type ViewModel struct {
	StageName string
	StageFrom YearMonth
	StageTo   YearMonth // zero = open-ended

	// Raw stage figures (nil = unavailable).
	Income         *decimal.Decimal
	NetIncome      *decimal.Decimal
	FixedCosts     *decimal.Decimal
	Household      *decimal.Decimal
	SavingLongterm *decimal.Decimal
	SavingBuffer   *decimal.Decimal

	// Derived figures (nil when any input is unavailable).
	TotalOut     *decimal.Decimal
	SavingsTotal *decimal.Decimal
	Leftover     *decimal.Decimal
	Tax          *decimal.Decimal

	// Accumulated balances and goal progress.
	CurrentLongterm decimal.Decimal
	CurrentBuffer   decimal.Decimal
	TargetLongterm  *decimal.Decimal
	TargetBuffer    *decimal.Decimal
	LongtermPct     *float64 // clamped [0,100], nil without a usable target
	BufferPct       *float64

	Longterm Projection
	Buffer   Projection
}

// BuildViewModel composes the render contract from the resolved stage,
// persisted state, goal, and precomputed projections. stage may be nil
// (empty plan); all stage-derived fields stay nil.
func BuildViewModel(stage *Stage, st BalanceState, goal *Goal, longterm, buffer Projection) ViewModel {
	vm := ViewModel{
		CurrentLongterm: st.CurrentLongterm,
		CurrentBuffer:   st.CurrentBuffer,
		Longterm:        longterm,
		Buffer:          buffer,
	}

	if stage != nil {
		vm.StageName = stage.Name
		vm.StageFrom = stage.From
		vm.StageTo = stage.To
		vm.Income = stage.Income
		vm.NetIncome = stage.NetIncome
		vm.FixedCosts = stage.FixedCosts
		vm.Household = stage.Household
		vm.SavingLongterm = stage.SavingLongterm
		vm.SavingBuffer = stage.SavingBuffer

		vm.TotalOut = addOpt(stage.FixedCosts, stage.Household)
		vm.SavingsTotal = addOpt(stage.SavingLongterm, stage.SavingBuffer)
		vm.Leftover = subOpt(subOpt(stage.NetIncome, vm.TotalOut), vm.SavingsTotal)
		vm.Tax = subOpt(stage.Income, stage.NetIncome)
	}

	if goal != nil {
		vm.TargetLongterm = goal.TargetLongterm
		vm.TargetBuffer = goal.TargetBuffer
		vm.LongtermPct = progressPct(st.CurrentLongterm, goal.TargetLongterm)
		vm.BufferPct = progressPct(st.CurrentBuffer, goal.TargetBuffer)
	}

	return vm
}

// addOpt returns a+b, or nil when either input is unavailable.
func addOpt(a, b *decimal.Decimal) *decimal.Decimal {
	if a == nil || b == nil {
		return nil
	}
	sum := a.Add(*b)
	return &sum
}

// subOpt returns a-b, or nil when either input is unavailable.
func subOpt(a, b *decimal.Decimal) *decimal.Decimal {
	if a == nil || b == nil {
		return nil
	}
	diff := a.Sub(*b)
	return &diff
}

// progressPct returns current/target*100 clamped to [0,100], or nil
// when the target is absent or non-positive.
func progressPct(current decimal.Decimal, target *decimal.Decimal) *float64 {
	if target == nil || !target.IsPositive() {
		return nil
	}
	pct, _ := current.Div(*target).Mul(decimal.NewFromInt(100)).Float64()
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return &pct
}
