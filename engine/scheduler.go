package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// TickFunc is invoked once per scheduled tick with the current time and the
// elapsed duration since the previous tick
type TickFunc func(now time.Time, dt time.Duration)

// TickScheduler drives game logic on a fixed tick without busy-wait
// Ticks are strictly sequential; a tick never re-enters a running tick
type TickScheduler struct {
	clock        Clock
	tickInterval time.Duration
	tick         TickFunc

	// Tick bookkeeping
	lastTickTime     time.Time
	nextTickDeadline time.Time
	tickCount        atomic.Uint64
	mu               sync.RWMutex

	// Control
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewTickScheduler creates a scheduler that calls tick every tickInterval
func NewTickScheduler(clock Clock, tickInterval time.Duration, tick TickFunc) *TickScheduler {
	return &TickScheduler{
		clock:        clock,
		tickInterval: tickInterval,
		tick:         tick,
		stopChan:     make(chan struct{}),
	}
}

// Start begins the scheduler loop
func (ts *TickScheduler) Start() {
	if ts.running.CompareAndSwap(false, true) {
		ts.wg.Add(1)
		go ts.schedulerLoop()
	}
}

// Stop halts the scheduler loop and waits for the in-flight tick to finish
// Idempotent; a Stop before Start is a no-op and does not poison a later
// Start. No tick executes after Stop returns
func (ts *TickScheduler) Stop() {
	if ts.running.CompareAndSwap(true, false) {
		ts.stopOnce.Do(func() {
			close(ts.stopChan)
		})
	}
	ts.wg.Wait()
}

// TickCount returns the number of completed ticks
func (ts *TickScheduler) TickCount() uint64 {
	return ts.tickCount.Load()
}

func (ts *TickScheduler) schedulerLoop() {
	defer ts.wg.Done()

	ts.mu.Lock()
	ts.lastTickTime = ts.clock.Now()
	ts.nextTickDeadline = ts.lastTickTime.Add(ts.tickInterval)
	ts.mu.Unlock()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-ts.stopChan:
			return
		default:
		}

		now := ts.clock.Now()

		ts.mu.RLock()
		deadline := ts.nextTickDeadline
		ts.mu.RUnlock()

		if !now.Before(deadline) {
			ts.mu.Lock()
			dt := now.Sub(ts.lastTickTime)
			ts.lastTickTime = now
			ts.nextTickDeadline = ts.nextTickDeadline.Add(ts.tickInterval)

			// Drift correction: re-anchor when the loop falls far behind
			maxBehind := ts.tickInterval * 2
			if now.Sub(ts.nextTickDeadline) > maxBehind {
				ts.nextTickDeadline = now.Add(ts.tickInterval)
			}
			deadline = ts.nextTickDeadline
			ts.mu.Unlock()

			ts.tick(now, dt)
			ts.tickCount.Add(1)
		}

		sleepDuration := deadline.Sub(ts.clock.Now())
		if sleepDuration > 0 {
			timer.Reset(sleepDuration)
			select {
			case <-timer.C:
			case <-ts.stopChan:
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				return
			}
		}
	}
}
