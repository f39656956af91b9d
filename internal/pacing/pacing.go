package pacing

import "time"

const DefaultInterval = 20 * time.Millisecond

// Limiter caps the frame rate by spinning until Interval has passed since
// the start of the frame.
type Limiter struct {
	Interval time.Duration
	now      func() time.Time
}

func New(interval time.Duration) *Limiter {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Limiter{Interval: interval, now: time.Now}
}

func (l *Limiter) Now() time.Time {
	return l.now()
}

// Wait returns the time actually spent in the frame, which is never less
// than Interval.
func (l *Limiter) Wait(frameStart time.Time) time.Duration {
	elapsed := l.now().Sub(frameStart)
	for elapsed < l.Interval {
		elapsed = l.now().Sub(frameStart)
	}
	return elapsed
}
