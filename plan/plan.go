/*
Package plan loads and validates the financial plan document.

PURPOSE:
  The plan is the read-only input of the whole system: an ordered list
  of stages plus an optional goal, loaded once at startup from a local
  JSON file. It is immutable for the process lifetime.

FAILURE MODES (kept deliberately distinct):
  - File missing/unreadable or not JSON at all: fatal load error. The
    session shows a blocking status message, no partial UI.
  - Structurally broken content (no stages, malformed months, missing
    goal fields): accumulated as human-readable issues by Validate. The
    caller refuses to render a dashboard and shows ALL issues at once;
    it never silently picks defaults for a broken plan.

SEE ALSO:
  - validate.go: The issue-accumulating validator
  - engine/stage.go: The types the document decodes into
*/
package plan

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/warp/savings-engine/engine"
)

// DefaultPath is where the tracker looks for the plan when not
// configured otherwise.
const DefaultPath = "plan.json"

// Plan is the top-level plan document.
type Plan struct {
	Stages []engine.Stage `json:"stages"`
	Goal   *engine.Goal   `json:"goal,omitempty"`
}

// Load reads and decodes the plan file. Any failure here is fatal for
// the session; there is no dashboard without a plan.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a plan document.
func Parse(data []byte) (*Plan, error) {
	var p Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing plan: %w", err)
	}
	return &p, nil
}
