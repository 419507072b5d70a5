package schedule_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/warp/savings-engine/schedule"
)

func TestScheduler_SlowCallbackRunsImmediatelyOnStart(t *testing.T) {
	fired := make(chan struct{}, 1)

	s := schedule.New(time.Hour, time.Hour, nil, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	s.Start()
	defer s.Stop()

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("slow callback did not run on start")
	}
}

func TestScheduler_FastCallbackTicks(t *testing.T) {
	var count atomic.Int64

	s := schedule.New(10*time.Millisecond, time.Hour, func() {
		count.Add(1)
	}, nil)
	s.Start()

	time.Sleep(150 * time.Millisecond)
	s.Stop()

	assert.Greater(t, count.Load(), int64(2), "fast callback should have ticked repeatedly")
}

func TestScheduler_StopHaltsCallbacks(t *testing.T) {
	var count atomic.Int64

	s := schedule.New(10*time.Millisecond, time.Hour, func() {
		count.Add(1)
	}, nil)
	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.Stop()

	after := count.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, count.Load(), "no callbacks after Stop")

	// Stop twice is safe
	s.Stop()
}
