package source

import "time"

// throttle paces an operation so that successive runs start at least one
// interval after the previous run finished. It belongs to a single
// goroutine.
type throttle struct {
	interval time.Duration
	next     time.Time
}

func newThrottle(interval time.Duration) *throttle {
	if interval <= 0 {
		return &throttle{}
	}
	return &throttle{interval: interval}
}

// wait blocks until the next slot opens. It returns false without waiting
// further once done is closed.
func (t *throttle) wait(done <-chan struct{}) bool {
	if t == nil || t.interval <= 0 {
		select {
		case <-done:
			return false
		default:
			return true
		}
	}
	for {
		wait := time.Until(t.next)
		if wait <= 0 {
			return true
		}
		if wait > t.interval {
			wait = t.interval
		}
		timer := time.NewTimer(wait)
		select {
		case <-done:
			timer.Stop()
			return false
		case <-timer.C:
		}
	}
}

// mark records that the operation just finished; the next slot opens one
// interval from now.
func (t *throttle) mark() {
	if t == nil || t.interval <= 0 {
		return
	}
	t.next = time.Now().Add(t.interval)
}
