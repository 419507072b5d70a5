/*
handlers_test.go - State endpoint behavior

Covers the read/write contract of the storage collaborator: empty reads,
echoed writes with server-stamped updated_at, and the write-side
coercion rules (non-numeric balances to 0, non-string watermark to null).
*/
package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/savings-engine/api"
	"github.com/warp/savings-engine/store/sqlite"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestServer(t *testing.T) *httptest.Server {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	srv := httptest.NewServer(api.NewRouter(api.NewHandler(store)))
	t.Cleanup(srv.Close)
	return srv
}

func putState(t *testing.T, srv *httptest.Server, body string) (*http.Response, map[string]any) {
	req, err := http.NewRequest(http.MethodPut, srv.URL+"/api/state", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func getState(t *testing.T, srv *httptest.Server) (*http.Response, map[string]any) {
	resp, err := srv.Client().Get(srv.URL + "/api/state")
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

// =============================================================================
// READ
// =============================================================================

func TestGetState_NoStateYet_Returns404(t *testing.T) {
	srv := newTestServer(t)

	resp, body := getState(t, srv)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "error")
}

// =============================================================================
// WRITE
// =============================================================================

func TestPutState_PersistsAndEchoes(t *testing.T) {
	srv := newTestServer(t)

	resp, echoed := putState(t, srv, `{
		"current_longterm": 12345.67,
		"current_buffer": 2500,
		"last_rollover_ym": "2025-04"
	}`)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "2025-04", echoed["last_rollover_ym"])
	assert.NotEmpty(t, echoed["updated_at"], "write stamps a server-side updated_at")

	// The stored record is returned by a subsequent read
	resp, read := getState(t, srv)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, echoed["current_longterm"], read["current_longterm"])
	assert.Equal(t, echoed["updated_at"], read["updated_at"])
}

func TestPutState_CoercesNonNumericBalancesToZero(t *testing.T) {
	srv := newTestServer(t)

	resp, echoed := putState(t, srv, `{
		"current_longterm": "not a number",
		"current_buffer": null,
		"last_rollover_ym": "2025-01"
	}`)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "0", echoed["current_longterm"])
	assert.Equal(t, "0", echoed["current_buffer"])
}

func TestPutState_CoercesNonStringWatermarkToNull(t *testing.T) {
	srv := newTestServer(t)

	resp, echoed := putState(t, srv, `{
		"current_longterm": 100,
		"current_buffer": 0,
		"last_rollover_ym": 42
	}`)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, echoed["last_rollover_ym"])
}

func TestPutState_NonJSONBody_Returns400(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := putState(t, srv, "not json at all")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.Client().Get(srv.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
