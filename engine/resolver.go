/*
resolver.go - Stage resolution for a calendar month

PURPOSE:
  Maps a calendar month to the single stage whose assumptions apply.
  This is the one lookup everything else (rollover, projection, the
  dashboard) is built on.

THREE-TIER LOOKUP (first tier with any match wins):
  1. Containment:  stages where from <= ym <= to (to absent = open).
                   Overlap tie-break: greatest from wins, i.e. the most
                   recently started stage shadows an older one.
  2. Gap fallback: no stage contains ym (a stage ended, the next has
                   not started). The most recent PAST stage carries
                   forward, so a plan with a hole still has answers.
  3. Before-all:   ym precedes every stage. The earliest stage applies
                   retroactively.

  nil is returned only for an empty stage list.

EXAMPLE:
  Stages: job [2024-01, 2024-12], sabbatical [2025-06, open]
  resolve(2024-05) -> job         (containment)
  resolve(2025-02) -> job         (gap: job carries forward)
  resolve(2025-08) -> sabbatical  (containment)
  resolve(2023-01) -> job         (before-all)

SEE ALSO:
  - yearmonth.go: The lexical-ordering invariant all tiers rely on
  - rollover.go, projection.go: Callers
*/
package engine

// ResolveStage returns the stage applicable to ym, or nil when stages
// is empty. Input order is irrelevant; ties and fallbacks are decided
// purely on each stage's From.
func ResolveStage(stages []Stage, ym YearMonth) *Stage {
	if len(stages) == 0 {
		return nil
	}

	// Tier 1: containment, most recently started wins.
	var containing *Stage
	for i := range stages {
		s := &stages[i]
		if !s.Contains(ym) {
			continue
		}
		if containing == nil || s.From.After(containing.From) {
			containing = s
		}
	}
	if containing != nil {
		return containing
	}

	// Tier 2: most recent past stage carries forward.
	var past *Stage
	for i := range stages {
		s := &stages[i]
		if s.From.After(ym) {
			continue
		}
		if past == nil || s.From.After(past.From) {
			past = s
		}
	}
	if past != nil {
		return past
	}

	// Tier 3: ym precedes every stage; the earliest applies retroactively.
	earliest := &stages[0]
	for i := range stages {
		if stages[i].From.Before(earliest.From) {
			earliest = &stages[i]
		}
	}
	return earliest
}
