/*
rollover.go - Monthly balance rollover state machine

PURPOSE:
  Advances BalanceState from its watermark to the current month,
  applying each elapsed month's stage-defined savings deposits exactly
  once. This is how the tracker catches up after being offline for any
  number of months.

ALGORITHM:
  1. Unset watermark -> set it to now, report no change (first-run guard).
  2. now <= watermark -> no-op. Calling twice in a row does nothing.
  3. Otherwise step ONE month at a time, from watermark+1 through now
     inclusive. For each stepped month: resolve its stage, add that
     stage's saving_longterm / saving_buffer (a nil field is skipped,
     not treated as a zero deposit), advance the watermark to that month.

EXACTLY-ONCE:
  The watermark is the idempotency mechanism. Each month is applied at
  most once because the watermark only ever moves forward, and catch-up
  always starts from watermark+1. Deposits land in chronological order.

THE changed FLAG:
  changed is true only when a deposit was actually applied. A stepped
  month whose stage defines no savings fields advances the watermark in
  the returned state but does not set changed; re-stepping such a month
  later deposits nothing, so this stays idempotent. Callers must persist
  the returned state when changed is true.

SEE ALSO:
  - resolver.go: Per-month stage lookup (gap months use the carried-
    forward stage, so a plan hole still deposits)
  - state.go: Watermark invariants
*/
package engine

// ApplyRollover catches state up from its watermark to now, applying
// each elapsed month's deposits exactly once. It returns the advanced
// state and whether any deposit was applied.
//
// State is passed and returned by value; call sites thread it
// explicitly and persist it when changed is true.
func ApplyRollover(st BalanceState, stages []Stage, now YearMonth) (BalanceState, bool) {
	// First-run guard: no watermark means nothing has been applied and
	// nothing should be; start counting from now.
	if st.LastRolloverYM.IsZero() {
		st.LastRolloverYM = now
		return st, false
	}

	if !now.After(st.LastRolloverYM) {
		return st, false
	}

	changed := false
	for ym := st.LastRolloverYM.Next(); ; ym = ym.Next() {
		if stage := ResolveStage(stages, ym); stage != nil {
			if stage.SavingLongterm != nil {
				st.CurrentLongterm = st.CurrentLongterm.Add(*stage.SavingLongterm)
				changed = true
			}
			if stage.SavingBuffer != nil {
				st.CurrentBuffer = st.CurrentBuffer.Add(*stage.SavingBuffer)
				changed = true
			}
		}
		st.LastRolloverYM = ym
		if !ym.Before(now) {
			break
		}
	}
	return st, changed
}
