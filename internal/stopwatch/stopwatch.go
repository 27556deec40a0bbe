// Package stopwatch implements an elapsed-seconds counter.
package stopwatch

import "github.com/verte-zerg/tuiclock/internal/model"

// Stopwatch accumulates one second per tick while running.
type Stopwatch struct {
	elapsed int
	running bool
}

// New returns a stopped stopwatch at zero.
func New() *Stopwatch {
	return &Stopwatch{}
}

// ToggleRunning starts or pauses the stopwatch.
func (s *Stopwatch) ToggleRunning() {
	s.running = !s.running
}

// Reset stops the stopwatch and clears the counter.
func (s *Stopwatch) Reset() {
	s.running = false
	s.elapsed = 0
}

// OnTick adds one second while running.
func (s *Stopwatch) OnTick() {
	if s.running {
		s.elapsed++
	}
}

// Running reports whether the stopwatch is counting.
func (s *Stopwatch) Running() bool {
	return s.running
}

// ElapsedSeconds returns the accumulated seconds.
func (s *Stopwatch) ElapsedSeconds() int {
	return s.elapsed
}

// Elapsed returns the accumulated time split into parts.
func (s *Stopwatch) Elapsed() model.Duration {
	return model.DurationFromSeconds(s.elapsed)
}
