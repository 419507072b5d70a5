/*
state.go - Persisted balance state and the storage interface

PURPOSE:
  BalanceState is the one mutable record in the system: the accumulated
  balances of the two savings tracks plus the rollover watermark. It is
  reloaded from storage on every start and persisted after every
  mutation.

THE WATERMARK:
  LastRolloverYM marks the last month whose deposit has been applied.
  It is never ahead of the current real-world month. Every elapsed
  month between it and "now" must be applied exactly once, in order,
  before any projection or render (see rollover.go).

FIRST RUN:
  SeedState builds the initial record from the goal's current_* fields
  and sets the watermark to the CURRENT month. Setting it to now is what
  prevents the just-seeded balances from being incremented again by the
  first rollover pass.

PERSISTENCE CONTRACT:
  Store.Load returns (nil, nil) when no state has ever been persisted.
  Save failures are recoverable: the caller degrades to an in-memory
  session with a visible warning, it never aborts. Last write wins;
  there is no conflict detection between concurrent sessions.

IMPLEMENTATIONS:
  - engine/store:    In-memory (tests, offline degradation)
  - store/sqlite:    Durable server-side record
  - store/httpstate: Client for the HTTP state endpoint

SEE ALSO:
  - rollover.go: The only mutator besides seeding
*/
package engine

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// BALANCE STATE - The mutable accumulator
// =============================================================================

// BalanceState holds accumulated savings balances and the watermark of
// the last month whose deposit has been applied.
type BalanceState struct {
	CurrentLongterm decimal.Decimal
	CurrentBuffer   decimal.Decimal

	// LastRolloverYM is empty before first initialization.
	LastRolloverYM YearMonth

	// UpdatedAt is stamped server-side on save; zero when the state has
	// never been persisted.
	UpdatedAt time.Time
}

// SeedState creates first-run state from the goal's seed balances.
// Absent seed values default to zero. The watermark starts at the
// current month so the seeded balances are not double-applied by the
// first rollover pass.
func SeedState(goal *Goal, now YearMonth) BalanceState {
	st := BalanceState{LastRolloverYM: now}
	if goal != nil {
		if goal.CurrentLongterm != nil {
			st.CurrentLongterm = *goal.CurrentLongterm
		}
		if goal.CurrentBuffer != nil {
			st.CurrentBuffer = *goal.CurrentBuffer
		}
	}
	return st
}

// =============================================================================
// STORE - Persistence interface
// =============================================================================

// Store persists the single BalanceState record.
//
// The read-then-write pattern is NOT transactional: two concurrent
// sessions are last-write-wins with no conflict detection. That is the
// whole consistency model, by contract of the storage collaborator.
type Store interface {
	// Load returns the last-persisted state, or (nil, nil) when no
	// state exists yet.
	Load(ctx context.Context) (*BalanceState, error)

	// Save persists the state and returns the stored record with its
	// server-stamped UpdatedAt.
	Save(ctx context.Context, st BalanceState) (BalanceState, error)
}
