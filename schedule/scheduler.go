/*
Package schedule runs the tracker's two periodic triggers.

PURPOSE:
  The session has exactly two cadences:
  - Fast (~1s): re-render the live countdown. A pure function of
    wall-clock time; no state mutation.
  - Slow (~60s): rollover catch-up, persisting and re-rendering only
    when it produced a change.

DESIGN:
  The scheduler knows nothing about rendering or rollover; it drives
  two injected callbacks from a single goroutine, so the callbacks are
  never concurrent with each other. Both triggers run for the lifetime
  of the session; Stop exists for orderly shutdown, not mid-flight
  cancellation.

USAGE:
  s := schedule.New(time.Second, time.Minute, renderCountdown, catchUp)
  s.Start()
  defer s.Stop()
*/
package schedule

import (
	"log"
	"sync"
	"time"
)

// Scheduler drives the fast and slow callbacks on their cadences.
type Scheduler struct {
	FastInterval time.Duration
	SlowInterval time.Duration

	// OnFast is the countdown-only re-render.
	OnFast func()
	// OnSlow is the rollover catch-up pass.
	OnSlow func()

	fastTicker *time.Ticker
	slowTicker *time.Ticker
	stop       chan struct{}
	wg         sync.WaitGroup
	mu         sync.Mutex
	started    bool
	stopped    bool
}

// New creates a scheduler over the injected callbacks. Either callback
// may be nil and is then skipped.
func New(fast, slow time.Duration, onFast, onSlow func()) *Scheduler {
	return &Scheduler{
		FastInterval: fast,
		SlowInterval: slow,
		OnFast:       onFast,
		OnSlow:       onSlow,
		stop:         make(chan struct{}),
	}
}

// Start begins ticking. The slow callback runs once immediately so a
// fresh session catches up without waiting a full interval.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return
	}
	s.started = true

	s.fastTicker = time.NewTicker(s.FastInterval)
	s.slowTicker = time.NewTicker(s.SlowInterval)
	s.wg.Add(1)

	go s.run()

	log.Printf("[Scheduler] Started (fast=%v, slow=%v)", s.FastInterval, s.SlowInterval)
}

// Stop halts both tickers and waits for the loop to exit.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started || s.stopped {
		return
	}
	s.stopped = true
	s.fastTicker.Stop()
	s.slowTicker.Stop()
	close(s.stop)
	s.wg.Wait()
	log.Println("[Scheduler] Stopped")
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	// Catch up immediately on start.
	s.fire(s.OnSlow)

	for {
		select {
		case <-s.fastTicker.C:
			s.fire(s.OnFast)
		case <-s.slowTicker.C:
			s.fire(s.OnSlow)
		case <-s.stop:
			return
		}
	}
}

func (s *Scheduler) fire(fn func()) {
	if fn != nil {
		fn()
	}
}
