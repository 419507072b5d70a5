/*
main.go - Savings tracker entry point

PURPOSE:
  The user-facing dashboard. Startup sequence:
  1. Load config (file + flag overrides)
  2. Load the plan (fatal, blocking message on failure)
  3. Validate the plan (blocking issue list on failure)
  4. Load persisted state, or seed it from the goal on first run
  5. Rollover catch-up, then render
  6. Run the two periodic triggers until interrupted

COMMAND-LINE FLAGS:
  -config   Config file path (default: XDG config dir)
  -plan     Plan file path (overrides config)
  -storage  State endpoint base URL (overrides config; empty = local db)
  -db       Local SQLite path when no storage URL is set
  -once     Render a single frame and exit (no triggers)

DEGRADATION:
  Unreachable storage never kills the session. The tracker runs
  in-memory with a sticky "not saved" warning until a save succeeds.

SEE ALSO:
  - schedule/scheduler.go: The two trigger cadences
  - cli/render.go: Frame rendering
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/warp/savings-engine/cli"
	"github.com/warp/savings-engine/config"
	"github.com/warp/savings-engine/engine"
	"github.com/warp/savings-engine/plan"
	"github.com/warp/savings-engine/schedule"
	"github.com/warp/savings-engine/store/httpstate"
	"github.com/warp/savings-engine/store/sqlite"
)

func main() {
	configPath := flag.String("config", "", "config file path")
	planPath := flag.String("plan", "", "plan file path (overrides config)")
	storageURL := flag.String("storage", "", "state endpoint base URL (overrides config)")
	dbPath := flag.String("db", "", "local SQLite path when no storage URL is set")
	once := flag.Bool("once", false, "render a single frame and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Print(cli.RenderFatal(err.Error()))
		os.Exit(1)
	}
	if *planPath != "" {
		cfg.Plan.Path = *planPath
	}
	if *storageURL != "" {
		cfg.Storage.BaseURL = *storageURL
	}
	if *dbPath != "" {
		cfg.Storage.DBPath = *dbPath
	}

	// Plan load failure is terminal for the session: blocking status
	// message, no partial UI.
	p, err := plan.Load(cfg.Plan.Path)
	if err != nil {
		fmt.Print(cli.RenderFatal(err.Error()))
		os.Exit(1)
	}

	// A broken plan shows ALL issues at once instead of a dashboard.
	if issues := plan.Validate(p); len(issues) > 0 {
		fmt.Print(cli.RenderIssues(issues))
		os.Exit(1)
	}

	store, closeStore, err := openStore(cfg.Storage)
	if err != nil {
		fmt.Print(cli.RenderFatal(err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	a := &app{
		plan:      p,
		store:     store,
		projector: engine.Projector{AnnualGrowthRate: cfg.Growth.AnnualRate},
		slow:      time.Duration(cfg.Render.RolloverSeconds) * time.Second,
	}
	a.loadOrSeed(context.Background())

	if *once {
		a.rolloverTick()
		return
	}

	s := schedule.New(
		time.Duration(cfg.Render.CountdownSeconds)*time.Second,
		a.slow,
		a.renderTick,
		a.rolloverTick,
	)
	s.Start()
	defer s.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
}

// openStore picks the storage collaborator: the HTTP endpoint when a
// base URL is configured, the local SQLite file otherwise.
func openStore(sc config.StorageConfig) (engine.Store, func(), error) {
	if sc.BaseURL != "" {
		return httpstate.New(sc.BaseURL), func() {}, nil
	}
	s, err := sqlite.New(sc.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening local state db: %w", err)
	}
	return s, func() { s.Close() }, nil
}

// =============================================================================
// APP - Session state threaded through the two triggers
// =============================================================================

type app struct {
	mu        sync.Mutex
	plan      *plan.Plan
	store     engine.Store
	projector engine.Projector
	slow      time.Duration

	state     engine.BalanceState
	warning   string
	nextCheck time.Time
}

// loadOrSeed restores persisted state, or seeds it from the goal on
// first run. Unreachable storage degrades to an in-memory session.
func (a *app) loadOrSeed(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	st, err := a.store.Load(ctx)
	if err != nil {
		log.Printf("[Tracker] Storage unreachable, running in-memory: %v", err)
		a.state = engine.SeedState(a.plan.Goal, engine.CurrentYearMonth())
		a.warning = "state not saved – storage unreachable"
		return
	}
	if st != nil {
		a.state = *st
		return
	}

	// First run: seed balances from the goal; the watermark starts at
	// the current month so the first rollover pass does not re-apply
	// the seed.
	a.state = engine.SeedState(a.plan.Goal, engine.CurrentYearMonth())
	a.persistLocked(ctx)
}

// rolloverTick is the slow trigger: catch up elapsed months, persist
// only when something changed, then repaint.
func (a *app) rolloverTick() {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := engine.CurrentYearMonth()
	st, changed := engine.ApplyRollover(a.state, a.plan.Stages, now)
	a.state = st
	if changed {
		a.persistLocked(context.Background())
	}
	a.nextCheck = time.Now().Add(a.slow)
	a.renderLocked()
}

// renderTick is the fast trigger: repaint with a fresh countdown. Pure
// function of wall-clock time; no state mutation.
func (a *app) renderTick() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.renderLocked()
}

// persistLocked saves best-effort: failure degrades to a sticky
// warning, never an abort.
func (a *app) persistLocked(ctx context.Context) {
	stored, err := a.store.Save(ctx, a.state)
	if err != nil {
		log.Printf("[Tracker] Save failed: %v", err)
		a.warning = "state not saved – storage unreachable"
		return
	}
	a.state = stored
	a.warning = ""
}

func (a *app) renderLocked() {
	now := time.Now()
	stage := engine.ResolveStage(a.plan.Stages, engine.YearMonthOf(now))
	vm := engine.BuildViewModel(
		stage,
		a.state,
		a.plan.Goal,
		a.projector.ProjectLongterm(a.plan.Stages, a.plan.Goal, a.state, now),
		a.projector.ProjectBuffer(a.plan.Stages, a.plan.Goal, a.state, now),
	)

	frame := cli.Frame{
		VM:        vm,
		Warning:   a.warning,
		NextCheck: a.nextCheck,
		Now:       now,
	}
	fmt.Print(cli.ClearScreen + cli.RenderDashboard(frame))
}
