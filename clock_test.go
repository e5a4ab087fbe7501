package outcome

import (
	"testing"
	"time"
)

func TestRealClockNow(t *testing.T) {
	t.Parallel()

	before := time.Now()
	got := RealClock{}.Now()
	after := time.Now()

	if got.Before(before) || got.After(after) {
		t.Fatalf("Now() = %v outside [%v, %v]", got, before, after)
	}
}

func TestRealClockTimerFires(t *testing.T) {
	t.Parallel()

	timer := RealClock{}.NewTimer(time.Millisecond)

	select {
	case <-timer.C():
	case <-time.After(5 * time.Second):
		t.Fatal("timer never fired")
	}
}

func TestRealClockTimerStop(t *testing.T) {
	t.Parallel()

	timer := RealClock{}.NewTimer(time.Hour)

	if !timer.Stop() {
		t.Fatal("Stop() on a pending timer returned false")
	}
}
