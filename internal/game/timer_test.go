package game

import (
	"testing"
	"time"
)

func TestTimerAdvance(t *testing.T) {
	tm := NewTimer(30 * time.Millisecond)

	if n := tm.Advance(time.Second); n != 0 {
		t.Fatalf("stopped timer fired %d times", n)
	}

	tm.Start()
	frame := time.Second / 60
	total := 0
	for i := 0; i < 60; i++ {
		total += tm.Advance(frame)
	}
	// One second at 30ms intervals.
	if total != 33 {
		t.Errorf("fired %d times in one second, want 33", total)
	}
}

func TestTimerCatchUp(t *testing.T) {
	tm := NewTimer(30 * time.Millisecond)
	tm.Start()
	if n := tm.Advance(95 * time.Millisecond); n != 3 {
		t.Errorf("Advance(95ms) = %d, want 3", n)
	}
	if n := tm.Advance(25 * time.Millisecond); n != 1 {
		t.Errorf("remainder not carried: got %d, want 1", n)
	}
}

func TestTimerStopClearsRemainder(t *testing.T) {
	tm := NewTimer(30 * time.Millisecond)
	tm.Start()
	tm.Advance(29 * time.Millisecond)
	tm.Stop()
	if tm.Active() {
		t.Fatal("timer still active after Stop")
	}
	if n := tm.Advance(time.Second); n != 0 {
		t.Fatalf("stopped timer fired %d times", n)
	}

	tm.Start()
	if n := tm.Advance(time.Millisecond); n != 0 {
		t.Errorf("remainder survived Stop: fired %d times", n)
	}
}

func TestEventString(t *testing.T) {
	tests := map[Event]string{
		EventCreate:  "create",
		EventTick:    "tick",
		EventPaint:   "paint",
		EventClose:   "close",
		EventDestroy: "destroy",
		EventOther:   "other",
		Event(42):    "other",
	}
	for ev, want := range tests {
		if got := ev.String(); got != want {
			t.Errorf("Event(%d).String() = %q, want %q", int(ev), got, want)
		}
	}
}
