package fs

import (
	"sync"
	"time"

	"github.com/aretw0/rapport/pkg/core"
)

// debouncer coalesces bursts of events into the last one seen after a quiet period.
type debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending core.Event
	stopped bool
	wg      sync.WaitGroup
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{delay: delay}
}

// add schedules fire with e, replacing any event still waiting.
func (d *debouncer) add(e core.Event, fire func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	d.pending = e
	if d.timer != nil && d.timer.Stop() {
		d.wg.Done()
	}

	d.wg.Add(1)
	d.timer = time.AfterFunc(d.delay, func() {
		defer d.wg.Done()
		d.mu.Lock()
		ev, stopped := d.pending, d.stopped
		d.mu.Unlock()
		if !stopped {
			fire(ev)
		}
	})
}

// stopAndWait drops pending events and waits up to timeout for in-flight callbacks.
func (d *debouncer) stopAndWait(timeout time.Duration) bool {
	d.mu.Lock()
	d.stopped = true
	if d.timer != nil && d.timer.Stop() {
		d.wg.Done()
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}
