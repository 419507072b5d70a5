/*
Package httpstate implements engine.Store over the HTTP state endpoint.

PURPOSE:
  The tracker side of the storage collaborator: a minimal JSON client
  for GET/PUT /api/state. Network calls here are the only suspension
  points in the whole system; callers tolerate arbitrary delay and
  treat failures as recoverable (in-memory session + sticky warning),
  never as fatal.

SEE ALSO:
  - api/handlers.go: The server side of this contract
  - engine/state.go: The interface implemented
*/
package httpstate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/warp/savings-engine/engine"
)

// Client is a minimal state-endpoint client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the given base URL (e.g. "http://localhost:8080").
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// stateWire mirrors the endpoint's record shape.
type stateWire struct {
	CurrentLongterm decimal.Decimal `json:"current_longterm"`
	CurrentBuffer   decimal.Decimal `json:"current_buffer"`
	LastRolloverYM  *string         `json:"last_rollover_ym"`
	UpdatedAt       string          `json:"updated_at,omitempty"`
}

// Load fetches the last-persisted state. A 404 means no state exists
// yet and returns (nil, nil).
func (c *Client) Load(ctx context.Context) (*engine.BalanceState, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/state", nil)
	if err != nil {
		return nil, fmt.Errorf("build state request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call state endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("load state failed with status %d", resp.StatusCode)
	}

	var wire stateWire
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("decode state response: %w", err)
	}
	return wire.toState(), nil
}

// Save persists the state and returns the stored record as echoed by
// the server (with its updated_at stamp).
func (c *Client) Save(ctx context.Context, st engine.BalanceState) (engine.BalanceState, error) {
	wire := stateWire{
		CurrentLongterm: st.CurrentLongterm,
		CurrentBuffer:   st.CurrentBuffer,
	}
	if !st.LastRolloverYM.IsZero() {
		ym := string(st.LastRolloverYM)
		wire.LastRolloverYM = &ym
	}

	body, err := json.Marshal(wire)
	if err != nil {
		return engine.BalanceState{}, fmt.Errorf("encode state: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/api/state", bytes.NewReader(body))
	if err != nil {
		return engine.BalanceState{}, fmt.Errorf("build save request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return engine.BalanceState{}, fmt.Errorf("call state endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return engine.BalanceState{}, fmt.Errorf("save state failed with status %d", resp.StatusCode)
	}

	var echoed stateWire
	if err := json.NewDecoder(resp.Body).Decode(&echoed); err != nil {
		return engine.BalanceState{}, fmt.Errorf("decode save response: %w", err)
	}
	return *echoed.toState(), nil
}

func (w stateWire) toState() *engine.BalanceState {
	st := engine.BalanceState{
		CurrentLongterm: w.CurrentLongterm,
		CurrentBuffer:   w.CurrentBuffer,
	}
	if w.LastRolloverYM != nil {
		st.LastRolloverYM = engine.YearMonth(*w.LastRolloverYM)
	}
	if w.UpdatedAt != "" {
		if t, err := time.Parse(time.RFC3339, w.UpdatedAt); err == nil {
			st.UpdatedAt = t
		}
	}
	return &st
}
