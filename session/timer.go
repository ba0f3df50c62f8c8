package session

import (
	"sync"
	"sync/atomic"
	"time"
)

// Timer counts a poll down one tick at a time and fires onExpire exactly once
// when the count reaches zero. Cancel and natural expiry race through a
// single sync.Once: a cancelled timer never fires, an expired timer cannot be
// cancelled retroactively, and neither path runs twice.
type Timer struct {
	pollID    string
	remaining atomic.Int64
	resolved  sync.Once
	stop      chan struct{}
}

// StartTimer launches the countdown goroutine. onTick is invoked after every
// decrement with the seconds left; onExpire is invoked at most once, after
// the tick that reached zero.
func StartTimer(pollID string, seconds int, interval time.Duration, onTick func(pollID string, remaining int), onExpire func(pollID string)) *Timer {
	t := &Timer{
		pollID: pollID,
		stop:   make(chan struct{}),
	}
	t.remaining.Store(int64(seconds))
	go t.run(interval, onTick, onExpire)
	return t
}

func (t *Timer) run(interval time.Duration, onTick func(string, int), onExpire func(string)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-t.stop:
			return
		case <-ticker.C:
			remaining := int(t.remaining.Add(-1))
			onTick(t.pollID, remaining)
			if remaining <= 0 {
				fired := false
				t.resolved.Do(func() { fired = true })
				if fired {
					onExpire(t.pollID)
				}
				return
			}
		}
	}
}

// Cancel stops the countdown without firing expiry. Safe to call repeatedly
// and after natural expiry.
func (t *Timer) Cancel() {
	t.resolved.Do(func() { close(t.stop) })
}

// Remaining reports the seconds left on the countdown.
func (t *Timer) Remaining() int {
	return int(t.remaining.Load())
}
