package core

import "time"

// Throttle limits how often a periodic action, such as a progress line, fires.
type Throttle struct {
	every time.Duration
	last  time.Time
	now   func() time.Time
}

// NewThrottle returns a Throttle that allows one action per interval. A
// non-positive interval defaults to one second.
func NewThrottle(every time.Duration) *Throttle {
	if every <= 0 {
		every = time.Second
	}
	return &Throttle{every: every, now: time.Now}
}

// Ready reports whether the interval has elapsed since the last time Ready
// returned true. The first call always returns true.
func (t *Throttle) Ready() bool {
	now := t.now()
	if !t.last.IsZero() && now.Sub(t.last) < t.every {
		return false
	}
	t.last = now
	return true
}
