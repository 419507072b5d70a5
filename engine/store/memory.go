// Package store provides engine.Store implementations.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/warp/savings-engine/engine"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (testing, offline degradation)
// =============================================================================

// Memory holds the balance state in process memory. Used by tests and
// as the fallback when external storage is unreachable: the session
// keeps working, persistence is best-effort elsewhere.
type Memory struct {
	mu    sync.RWMutex
	state *engine.BalanceState

	// failSaves makes Save return an error (for degradation tests).
	failSaves bool
}

func NewMemory() *Memory {
	return &Memory{}
}

// Load returns the saved state, or (nil, nil) when nothing was saved yet.
func (m *Memory) Load(_ context.Context) (*engine.BalanceState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.state == nil {
		return nil, nil
	}
	st := *m.state
	return &st, nil
}

// Save stores the state and stamps UpdatedAt, mirroring the server-side
// contract of the HTTP endpoint.
func (m *Memory) Save(_ context.Context, st engine.BalanceState) (engine.BalanceState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSaves {
		return engine.BalanceState{}, errors.New("memory store: saves disabled")
	}
	st.UpdatedAt = time.Now().UTC()
	stored := st
	m.state = &stored
	return st, nil
}

// FailSaves toggles save failures for tests exercising the
// degrade-to-warning path.
func (m *Memory) FailSaves(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failSaves = fail
}
