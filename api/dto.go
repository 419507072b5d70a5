/*
dto.go - Data Transfer Objects for the state-storage API

PURPOSE:
  JSON structures for the state endpoint. These types decouple the
  engine's BalanceState from the wire contract and carry the lenient
  decoding the write side requires.

LENIENT WRITE DECODING:
  SaveStateRequest keeps each field as raw JSON so the handler can
  coerce per the storage contract: non-numeric balance inputs become 0,
  a non-string last_rollover_ym becomes null. A sloppy client corrupts
  its own record, it never gets a 500.

SEE ALSO:
  - handlers.go: Coercion and persistence
*/
package api

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"github.com/warp/savings-engine/engine"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// StateDTO is the stored balance-state record as returned to clients.
type StateDTO struct {
	CurrentLongterm decimal.Decimal `json:"current_longterm"`
	CurrentBuffer   decimal.Decimal `json:"current_buffer"`
	LastRolloverYM  *string         `json:"last_rollover_ym"`
	UpdatedAt       string          `json:"updated_at"`
}

// SaveStateRequest is the write payload. Fields are raw so coercion
// can happen server-side instead of rejecting the request.
type SaveStateRequest struct {
	CurrentLongterm json.RawMessage `json:"current_longterm"`
	CurrentBuffer   json.RawMessage `json:"current_buffer"`
	LastRolloverYM  json.RawMessage `json:"last_rollover_ym"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// toStateDTO converts a stored record to its wire form.
func toStateDTO(st engine.BalanceState) StateDTO {
	dto := StateDTO{
		CurrentLongterm: st.CurrentLongterm,
		CurrentBuffer:   st.CurrentBuffer,
		UpdatedAt:       st.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if !st.LastRolloverYM.IsZero() {
		ym := string(st.LastRolloverYM)
		dto.LastRolloverYM = &ym
	}
	return dto
}

// toBalanceState applies the write-side coercion rules.
func (r SaveStateRequest) toBalanceState() engine.BalanceState {
	st := engine.BalanceState{
		CurrentLongterm: coerceDecimal(r.CurrentLongterm),
		CurrentBuffer:   coerceDecimal(r.CurrentBuffer),
	}
	if ym := coerceString(r.LastRolloverYM); ym != nil {
		st.LastRolloverYM = engine.YearMonth(*ym)
	}
	return st
}

// coerceDecimal decodes a JSON number, falling back to zero for
// anything non-numeric (including absence and null).
func coerceDecimal(raw json.RawMessage) decimal.Decimal {
	if len(raw) == 0 {
		return decimal.Zero
	}
	var d decimal.Decimal
	if err := json.Unmarshal(raw, &d); err != nil {
		return decimal.Zero
	}
	return d
}

// coerceString decodes a JSON string, falling back to nil for anything
// else.
func coerceString(raw json.RawMessage) *string {
	if len(raw) == 0 {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	return &s
}
