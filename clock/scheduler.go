// Package clock drives game updates at a fixed logical rate, independent of
// how often the frontend draws.
package clock

import "time"

// DefaultMaxCatchUp bounds how many ticks a single Step may run after a stall
const DefaultMaxCatchUp = 3

// Scheduler decides when fixed-rate ticks are due.
// It is polled from the frontend loop and never blocks or spawns goroutines.
type Scheduler struct {
	interval   time.Duration
	maxCatchUp int

	started  bool
	deadline time.Time // Next tick deadline
	ticks    uint64
}

// NewScheduler creates a scheduler firing every interval
func NewScheduler(interval time.Duration) *Scheduler {
	return &Scheduler{
		interval:   interval,
		maxCatchUp: DefaultMaxCatchUp,
	}
}

// SetMaxCatchUp changes the per-Step tick cap. Values below 1 are ignored.
func (s *Scheduler) SetMaxCatchUp(n int) {
	if n >= 1 {
		s.maxCatchUp = n
	}
}

// Interval returns the tick period
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Ticks returns the number of ticks handed out so far
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}

// Start anchors the first deadline one interval after now
func (s *Scheduler) Start(now time.Time) {
	s.started = true
	s.deadline = now.Add(s.interval)
}

// Due returns how many ticks should run at now and advances the deadline.
// When the loop falls far behind, the deadline is re-anchored instead of
// replaying every missed tick.
func (s *Scheduler) Due(now time.Time) int {
	if !s.started {
		s.Start(now)
		return 0
	}

	n := 0
	for !now.Before(s.deadline) && n < s.maxCatchUp {
		s.deadline = s.deadline.Add(s.interval)
		n++
	}

	maxBehind := s.interval * 2
	if now.Sub(s.deadline) > maxBehind {
		s.deadline = now.Add(s.interval)
	}

	s.ticks += uint64(n)
	return n
}

// Until returns the time left before the next tick, never negative
func (s *Scheduler) Until(now time.Time) time.Duration {
	if !s.started {
		return 0
	}
	d := s.deadline.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// Step runs update once per due tick. update returns false when the game has
// ended, which stops the remaining ticks. Step reports how many ran.
func (s *Scheduler) Step(now time.Time, update func() bool) int {
	due := s.Due(now)
	for i := 0; i < due; i++ {
		if !update() {
			return i + 1
		}
	}
	return due
}
