/*
handlers.go - HTTP handlers for the state-storage service

PURPOSE:
  Exposes the balance-state record over HTTP. This is the entire
  storage collaborator the tracker talks to: one read, one write.

ENDPOINTS:
  GET  /api/state    Last-persisted state, 404 when none exists yet
  PUT  /api/state    Coerce, stamp updated_at, persist, echo the record
  GET  /api/health   Liveness probe

WRITE SEMANTICS:
  The write side is deliberately forgiving (see dto.go): non-numeric
  balances are coerced to 0 and a non-string watermark to null, then
  the record is stored with a server-side updated_at and echoed back.
  Last write wins; there is no conflict detection between sessions.

ERROR HANDLING:
  - 400: Body is not a JSON object at all
  - 404: No state persisted yet
  - 500: Storage failure

SEE ALSO:
  - server.go: Router and middleware
  - store/sqlite/sqlite.go: Persistence
*/
package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/warp/savings-engine/engine"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds the handlers' dependencies.
type Handler struct {
	Store engine.Store
}

// NewHandler creates a handler over the given store.
func NewHandler(store engine.Store) *Handler {
	return &Handler{Store: store}
}

// =============================================================================
// STATE HANDLERS
// =============================================================================

// GetState returns the last-persisted balance state.
func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	st, err := h.Store.Load(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load state", err)
		return
	}
	if st == nil {
		writeError(w, http.StatusNotFound, "No saved state", nil)
		return
	}
	writeJSON(w, http.StatusOK, toStateDTO(*st))
}

// PutState coerces and persists a balance state, echoing the stored
// record with its server-stamped updated_at.
func (h *Handler) PutState(w http.ResponseWriter, r *http.Request) {
	var req SaveStateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	stored, err := h.Store.Save(r.Context(), req.toBalanceState())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save state", err)
		return
	}
	writeJSON(w, http.StatusOK, toStateDTO(stored))
}

// Health is a liveness probe.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[API] Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string, err error) {
	resp := ErrorResponse{Error: msg}
	if err != nil {
		resp.Detail = err.Error()
	}
	writeJSON(w, status, resp)
}
