package stopwatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tick(s *Stopwatch, n int) {
	for i := 0; i < n; i++ {
		s.OnTick()
	}
}

func TestPausePreservesElapsed(t *testing.T) {
	s := New()
	s.ToggleRunning()
	tick(s, 7)
	s.ToggleRunning()
	tick(s, 3)
	assert.Equal(t, 7, s.ElapsedSeconds())

	s.ToggleRunning()
	tick(s, 5)
	assert.Equal(t, 12, s.ElapsedSeconds())
	assert.True(t, s.Running())
}

func TestStoppedDoesNotCount(t *testing.T) {
	s := New()
	tick(s, 10)
	assert.Equal(t, 0, s.ElapsedSeconds())
}

func TestResetStopsAndZeroes(t *testing.T) {
	s := New()
	s.ToggleRunning()
	tick(s, 3725)
	assert.Equal(t, "01:02:05", s.Elapsed().String())

	s.Reset()
	assert.False(t, s.Running())
	assert.Equal(t, 0, s.ElapsedSeconds())
	tick(s, 2)
	assert.Equal(t, 0, s.ElapsedSeconds())
}
