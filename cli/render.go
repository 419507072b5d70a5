/*
render.go - Terminal dashboard rendering

PURPOSE:
  Turns a ViewModel into the dashboard frame. This layer formats; it
  computes nothing. Every figure arrives precomputed (or explicitly
  unavailable) from the engine.

LAYOUT:
  - Stage header (name + month range)
  - Metric cards: net income, total out, savings, leftover, tax
  - Goal section: progress bars and projection lines per track
  - Status line: sticky "not saved" warning, countdown to next check

REDRAW MODEL:
  The caller repaints the whole frame on each tick (ANSI home+clear).
  There is no interactive event loop; redraws are scheduler-driven.

SEE ALSO:
  - engine/viewmodel.go: The contract rendered here
  - schedule/scheduler.go: The two redraw cadences
*/
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/warp/savings-engine/engine"
)

// ClearScreen is the ANSI sequence for a full repaint.
const ClearScreen = "\033[H\033[2J"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	cardStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle   = lipgloss.NewStyle().Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	barFillStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("77"))
	barRestStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Frame is everything the dashboard needs beyond the ViewModel itself.
type Frame struct {
	VM engine.ViewModel

	// Warning is the sticky persistence warning; empty when the last
	// save succeeded.
	Warning string

	// NextCheck is when the next rollover pass runs (for the countdown).
	NextCheck time.Time

	// Now is the wall clock used for the countdown line.
	Now time.Time
}

// RenderDashboard renders the full dashboard frame.
func RenderDashboard(f Frame) string {
	var b strings.Builder

	header := f.VM.StageName
	if header == "" {
		header = "(no stage)"
	}
	rng := string(f.VM.StageFrom)
	if f.VM.StageTo.IsZero() {
		rng += " → open-ended"
	} else {
		rng += " → " + string(f.VM.StageTo)
	}
	b.WriteString(titleStyle.Render("Savings Tracker") + "  " + subtleStyle.Render(header+"  "+rng) + "\n\n")

	b.WriteString(metricRow(f.VM) + "\n\n")
	b.WriteString(goalSection(f.VM) + "\n")

	if f.Warning != "" {
		b.WriteString(warnStyle.Render("⚠ "+f.Warning) + "\n")
	}
	if !f.NextCheck.IsZero() {
		b.WriteString(subtleStyle.Render("next rollover check in "+FormatCountdown(f.NextCheck.Sub(f.Now))) + "\n")
	}

	return b.String()
}

// RenderIssues renders the blocking validation-error view: all issues
// at once, no dashboard.
func RenderIssues(issues []string) string {
	var b strings.Builder
	b.WriteString(errStyle.Render("Plan validation failed") + "\n\n")
	for _, issue := range issues {
		b.WriteString("  • " + issue + "\n")
	}
	b.WriteString("\n" + subtleStyle.Render("Fix the plan file and restart.") + "\n")
	return b.String()
}

// RenderFatal renders the blocking status message for a fatal load
// failure.
func RenderFatal(msg string) string {
	return errStyle.Render("Cannot start: "+msg) + "\n"
}

func metricRow(vm engine.ViewModel) string {
	cards := []struct {
		label string
		value string
	}{
		{"Net income", FormatMoney(vm.NetIncome)},
		{"Total out", FormatMoney(vm.TotalOut)},
		{"Savings", FormatMoney(vm.SavingsTotal)},
		{"Leftover", FormatMoney(vm.Leftover)},
		{"Tax", FormatMoney(vm.Tax)},
	}

	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		content := labelStyle.Render(c.label) + "\n" + valueStyle.Render(c.value)
		rendered = append(rendered, cardStyle.Render(content))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func goalSection(vm engine.ViewModel) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Goals") + "\n")
	b.WriteString(goalLine("Long-term", &vm.CurrentLongterm, vm.TargetLongterm, vm.LongtermPct, vm.Longterm) + "\n")
	b.WriteString(goalLine("Buffer", &vm.CurrentBuffer, vm.TargetBuffer, vm.BufferPct, vm.Buffer) + "\n")

	return b.String()
}

func goalLine(label string, current, target *decimal.Decimal, pct *float64, proj engine.Projection) string {
	line := fmt.Sprintf("  %-10s %s / %s  %s %s",
		label,
		FormatMoney(current),
		FormatMoney(target),
		progressBar(pct, 24),
		FormatPct(pct),
	)
	return line + "\n" + "             " + subtleStyle.Render(projectionText(proj))
}

// progressBar renders a clamped percentage as a fixed-width bar.
func progressBar(pct *float64, width int) string {
	if pct == nil {
		return barRestStyle.Render(strings.Repeat("░", width))
	}
	filled := int(*pct / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return barFillStyle.Render(strings.Repeat("█", filled)) +
		barRestStyle.Render(strings.Repeat("░", width-filled))
}

// projectionText distinguishes the three projection outcomes: reached
// with a date, not reached within the 50-year ceiling, and not
// evaluated for lack of configuration.
func projectionText(proj engine.Projection) string {
	switch {
	case proj.Reached:
		return "projected to reach goal " + FormatMonthYear(proj.Date)
	case proj.Attempted:
		return "not reached within 50 years"
	default:
		return "needs goal configuration"
	}
}
