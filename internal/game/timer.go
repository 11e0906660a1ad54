package game

import "time"

// Timer fires every Interval of accumulated frame time while armed.
type Timer struct {
	Interval time.Duration
	elapsed  time.Duration
	active   bool
}

func NewTimer(interval time.Duration) *Timer {
	return &Timer{Interval: interval}
}

func (t *Timer) Start() { t.active = true }

// Stop disarms the timer and drops any partially elapsed interval.
func (t *Timer) Stop() {
	t.active = false
	t.elapsed = 0
}

func (t *Timer) Active() bool { return t.active }

// Advance adds dt and returns how many intervals completed.
func (t *Timer) Advance(dt time.Duration) int {
	if !t.active || t.Interval <= 0 || dt <= 0 {
		return 0
	}
	t.elapsed += dt
	n := int(t.elapsed / t.Interval)
	t.elapsed -= time.Duration(n) * t.Interval
	return n
}
