package core

import (
	"testing"
	"time"
)

func TestThrottleReady(t *testing.T) {
	clock := time.Unix(1000, 0)
	th := NewThrottle(2 * time.Second)
	th.now = func() time.Time { return clock }

	if !th.Ready() {
		t.Fatal("first call should be ready")
	}
	clock = clock.Add(time.Second)
	if th.Ready() {
		t.Fatal("ready before the interval elapsed")
	}
	clock = clock.Add(time.Second)
	if !th.Ready() {
		t.Fatal("not ready once the interval elapsed")
	}
	if th.Ready() {
		t.Fatal("ready twice at the same instant")
	}
}
