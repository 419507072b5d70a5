/*
projection.go - Goal-reaching forward simulation

PURPOSE:
  Answers "when will the savings goal be met?" by simulating future
  months: each month's stage deposit, then compounding growth, then a
  threshold check.

GROWTH MODEL:
  Long-term savings grow at a nominal annual rate (default 8%),
  compounded MONTHLY. The monthly rate is the true compounding
  equivalent (1+r)^(1/12) - 1, not a flat r/12 division, so twelve
  simulated months of growth equal exactly one annual step. Growth is
  applied once per simulated month, after that month's deposit, never
  before. The buffer track NEVER grows.

THRESHOLD POLICY (deliberately asymmetric):
  ProjectLongterm reports reached only when BOTH the long-term and the
  buffer thresholds hold simultaneously. ProjectBuffer checks only its
  own threshold. The source behavior is preserved as-is rather than
  unified.

TERMINATION:
  Simulation runs at most 600 months (a 50-year ceiling). Exceeding it
  reports not-reached rather than looping forever; that outcome is
  distinct from "insufficient configuration" (missing/invalid targets),
  which short-circuits before any simulation.

SEE ALSO:
  - resolver.go: Per-simulated-month stage lookup
  - viewmodel.go: Carries both projection results to the renderer
*/
package engine

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// MaxProjectionMonths caps the forward simulation at 50 years.
const MaxProjectionMonths = 600

// DefaultAnnualGrowthRate is the nominal yearly growth assumption for
// the long-term track.
const DefaultAnnualGrowthRate = 0.08

// Projection is the outcome of a goal simulation.
type Projection struct {
	// Reached is false both when the goal cannot be evaluated
	// (insufficient configuration) and when the 600-month ceiling was
	// hit; Attempted distinguishes the two.
	Reached bool

	// Attempted is false when preconditions failed and no simulation ran.
	Attempted bool

	// Date is the first moment the thresholds held; zero when not reached.
	Date time.Time
}

// Projector runs goal simulations against a stage plan.
type Projector struct {
	// AnnualGrowthRate is the nominal yearly rate; zero means
	// DefaultAnnualGrowthRate.
	AnnualGrowthRate float64
}

// monthlyRate derives the monthly-compounded equivalent of the annual
// rate. This is the only place float math touches money; the result is
// converted to decimal once and reused for every simulated month.
func (p Projector) monthlyRate() decimal.Decimal {
	annual := p.AnnualGrowthRate
	if annual == 0 {
		annual = DefaultAnnualGrowthRate
	}
	return decimal.NewFromFloat(math.Pow(1+annual, 1.0/12.0) - 1)
}

// ProjectLongterm simulates the long-term goal from now. Reached
// requires both the long-term and buffer thresholds to hold in the same
// simulated month.
func (p Projector) ProjectLongterm(stages []Stage, goal *Goal, st BalanceState, now time.Time) Projection {
	if goal == nil || goal.TargetLongterm == nil || !goal.TargetLongterm.IsPositive() {
		return Projection{}
	}
	if goal.TargetBuffer == nil || goal.TargetBuffer.IsNegative() {
		return Projection{}
	}
	targetLT := *goal.TargetLongterm
	targetBuf := *goal.TargetBuffer

	lt := st.CurrentLongterm
	buf := st.CurrentBuffer

	if lt.GreaterThanOrEqual(targetLT) && buf.GreaterThanOrEqual(targetBuf) {
		return Projection{Reached: true, Attempted: true, Date: now}
	}

	rate := p.monthlyRate()
	date := firstOfNextMonth(now)
	for i := 0; i < MaxProjectionMonths; i++ {
		if stage := ResolveStage(stages, YearMonthOf(date)); stage != nil {
			if stage.SavingLongterm != nil {
				lt = lt.Add(*stage.SavingLongterm)
			}
			if stage.SavingBuffer != nil {
				buf = buf.Add(*stage.SavingBuffer)
			}
		}
		// Deposit first, then growth on the long-term track only.
		lt = lt.Add(lt.Mul(rate))

		if lt.GreaterThanOrEqual(targetLT) && buf.GreaterThanOrEqual(targetBuf) {
			return Projection{Reached: true, Attempted: true, Date: date}
		}
		date = date.AddDate(0, 1, 0)
	}
	return Projection{Attempted: true}
}

// ProjectBuffer simulates the buffer goal from now. The buffer track
// accumulates deposits only; no growth is ever applied, and only the
// buffer threshold is checked.
func (p Projector) ProjectBuffer(stages []Stage, goal *Goal, st BalanceState, now time.Time) Projection {
	if goal == nil || goal.TargetBuffer == nil || goal.TargetBuffer.IsNegative() {
		return Projection{}
	}
	target := *goal.TargetBuffer

	buf := st.CurrentBuffer
	if buf.GreaterThanOrEqual(target) {
		return Projection{Reached: true, Attempted: true, Date: now}
	}

	date := firstOfNextMonth(now)
	for i := 0; i < MaxProjectionMonths; i++ {
		if stage := ResolveStage(stages, YearMonthOf(date)); stage != nil {
			if stage.SavingBuffer != nil {
				buf = buf.Add(*stage.SavingBuffer)
			}
		}
		if buf.GreaterThanOrEqual(target) {
			return Projection{Reached: true, Attempted: true, Date: date}
		}
		date = date.AddDate(0, 1, 0)
	}
	return Projection{Attempted: true}
}

// firstOfNextMonth returns the first day of the month after t, in UTC.
func firstOfNextMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
}
