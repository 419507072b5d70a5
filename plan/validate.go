/*
validate.go - Structural plan validation

PURPOSE:
  Checks well-formedness of a loaded plan and returns ALL problems as a
  list of human-readable issues. An empty list means "ready to render";
  any non-empty list means the caller must show a blocking validation
  view instead of a dashboard.

FAIL-CLOSED ON STAGES:
  If stages is missing or empty there is exactly one issue and no
  per-stage checks run; everything downstream is meaningless without
  stages. Per-stage checks, by contrast, accumulate: a plan with two
  malformed stages reports both, never just the first.

GOAL CHECKS:
  Only PRESENCE of the five required keys is checked, not validity of
  their values. Value-level problems (e.g. a non-positive target)
  surface later as "insufficient configuration" in projection, which is
  an outcome, not an error.
*/
package plan

import "fmt"

// Required goal keys, checked for presence only.
var requiredGoalFields = []struct {
	name string
	set  func(*Plan) bool
}{
	{"target_longterm", func(p *Plan) bool { return p.Goal.TargetLongterm != nil }},
	{"target_buffer", func(p *Plan) bool { return p.Goal.TargetBuffer != nil }},
	{"current_longterm", func(p *Plan) bool { return p.Goal.CurrentLongterm != nil }},
	{"current_buffer", func(p *Plan) bool { return p.Goal.CurrentBuffer != nil }},
	{"target_year", func(p *Plan) bool { return p.Goal.TargetYear != nil }},
}

// Validate checks structural well-formedness and returns the full list
// of issues. It never stops at the first per-stage problem.
func Validate(p *Plan) []string {
	if p == nil || len(p.Stages) == 0 {
		return []string{`plan: "stages" must be a non-empty list`}
	}

	var issues []string
	for i, s := range p.Stages {
		label := s.Name
		if label == "" {
			label = fmt.Sprintf("#%d", i+1)
		}
		if s.Name == "" {
			issues = append(issues, fmt.Sprintf("stage %s: name must be a non-empty string", label))
		}
		if !s.From.Valid() {
			issues = append(issues, fmt.Sprintf("stage %s: from must be YYYY-MM with month 01-12 (got %q)", label, s.From))
		}
		if !s.To.IsZero() && !s.To.Valid() {
			issues = append(issues, fmt.Sprintf("stage %s: to must be YYYY-MM with month 01-12 (got %q)", label, s.To))
		}
	}

	if p.Goal != nil {
		for _, f := range requiredGoalFields {
			if !f.set(p) {
				issues = append(issues, fmt.Sprintf("goal: missing required field %q", f.name))
			}
		}
	}

	return issues
}
