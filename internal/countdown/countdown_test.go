package countdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/tuiclock/internal/model"
)

func TestNewSeedsRemainingFromConfigured(t *testing.T) {
	timer := New(model.Duration{Minutes: 25})
	assert.Equal(t, 1500, timer.RemainingSeconds())
	assert.Equal(t, StateIdle, timer.State())
}

func TestCommitEditClampsInput(t *testing.T) {
	cases := []struct {
		name  string
		field model.Field
		input string
		want  int
	}{
		{name: "minutes over max", field: model.FieldMinutes, input: "99", want: 59},
		{name: "negative", field: model.FieldMinutes, input: "-5", want: 0},
		{name: "not a number", field: model.FieldSeconds, input: "abc", want: 0},
		{name: "empty", field: model.FieldHours, input: "", want: 0},
		{name: "hours over max", field: model.FieldHours, input: "1000", want: 23},
		{name: "in range", field: model.FieldSeconds, input: " 42 ", want: 42},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			timer := New(model.Duration{Hours: 1, Minutes: 1, Seconds: 1})
			require.True(t, timer.BeginEdit(tc.field))
			timer.SetPendingInput(tc.input)
			timer.CommitEdit()
			assert.Equal(t, tc.want, timer.Configured().Get(tc.field))
			assert.Equal(t, model.FieldNone, timer.EditingField())
			assert.Equal(t, timer.Configured().TotalSeconds(), timer.RemainingSeconds())
		})
	}
}

func TestBeginEditSeedsPendingInput(t *testing.T) {
	timer := New(model.Duration{Minutes: 25})
	require.True(t, timer.BeginEdit(model.FieldMinutes))
	assert.Equal(t, "25", timer.PendingInput())
	assert.Equal(t, StateEditing, timer.State())
}

func TestBeginEditRefusedWhileRunning(t *testing.T) {
	timer := New(model.Duration{Seconds: 10})
	timer.ToggleRunning()
	assert.False(t, timer.BeginEdit(model.FieldSeconds))
	assert.Equal(t, model.FieldNone, timer.EditingField())
}

func TestCancelEditKeepsConfiguration(t *testing.T) {
	timer := New(model.Duration{Minutes: 25})
	require.True(t, timer.BeginEdit(model.FieldMinutes))
	timer.SetPendingInput("3")
	timer.CancelEdit()
	assert.Equal(t, 25, timer.Configured().Minutes)
	assert.Equal(t, "", timer.PendingInput())
	assert.Equal(t, StateIdle, timer.State())
}

func TestStartingDiscardsOpenEdit(t *testing.T) {
	timer := New(model.Duration{Seconds: 30})
	require.True(t, timer.BeginEdit(model.FieldSeconds))
	timer.SetPendingInput("5")
	timer.ToggleRunning()
	assert.True(t, timer.Running())
	assert.Equal(t, model.FieldNone, timer.EditingField())
	assert.Equal(t, 30, timer.RemainingSeconds())
}

func TestCountdownExpiresAndStops(t *testing.T) {
	timer := New(model.Duration{Seconds: 5})
	timer.ToggleRunning()
	expiredTicks := 0
	for i := 0; i < 5; i++ {
		if timer.OnTick() {
			expiredTicks++
		}
	}
	assert.Equal(t, 0, timer.RemainingSeconds())
	assert.False(t, timer.Running())
	assert.Equal(t, StateExpired, timer.State())
	assert.Equal(t, 1, expiredTicks)

	assert.False(t, timer.OnTick())
	assert.Equal(t, 0, timer.RemainingSeconds())
}

func TestToggleWhileExpiredIsStoppedByNextTick(t *testing.T) {
	timer := New(model.Duration{Seconds: 1})
	timer.ToggleRunning()
	require.True(t, timer.OnTick())

	timer.ToggleRunning()
	assert.True(t, timer.Running())
	assert.False(t, timer.OnTick())
	assert.False(t, timer.Running())
	assert.Equal(t, 0, timer.RemainingSeconds())
}

func TestPauseKeepsRemaining(t *testing.T) {
	timer := New(model.Duration{Minutes: 1})
	timer.ToggleRunning()
	timer.OnTick()
	timer.OnTick()
	timer.ToggleRunning()
	timer.OnTick()
	assert.Equal(t, 58, timer.RemainingSeconds())
	assert.Equal(t, StateIdle, timer.State())
}

func TestSetFieldWhileRunningLeavesRemaining(t *testing.T) {
	timer := New(model.Duration{Seconds: 10})
	timer.ToggleRunning()
	timer.OnTick()
	timer.SetField(model.FieldMinutes, "2")
	assert.Equal(t, 9, timer.RemainingSeconds())
	assert.Equal(t, 2, timer.Configured().Minutes)
}

func TestFieldEditReseedsAfterExpiry(t *testing.T) {
	timer := New(model.Duration{Seconds: 1})
	timer.ToggleRunning()
	timer.OnTick()
	require.Equal(t, StateExpired, timer.State())

	timer.SetField(model.FieldSeconds, "3")
	assert.Equal(t, 3, timer.RemainingSeconds())
	assert.Equal(t, StateIdle, timer.State())
}

func TestResetIsIdempotent(t *testing.T) {
	timer := New(model.Duration{Hours: 1, Minutes: 2, Seconds: 3})
	timer.ToggleRunning()
	timer.OnTick()

	for i := 0; i < 2; i++ {
		timer.Reset()
		assert.Equal(t, model.Duration{}, timer.Configured())
		assert.Equal(t, 0, timer.RemainingSeconds())
		assert.False(t, timer.Running())
		assert.Equal(t, StateZero, timer.State())
	}
}

func TestZeroDurationIsNotIdle(t *testing.T) {
	timer := New(model.Duration{})
	assert.Equal(t, StateZero, timer.State())

	timer.SetField(model.FieldSeconds, "5")
	assert.Equal(t, StateIdle, timer.State())
}

func TestRunningAfterResetDoesNotReportExpiry(t *testing.T) {
	timer := New(model.Duration{Seconds: 3})
	timer.Reset()
	timer.ToggleRunning()
	assert.False(t, timer.OnTick())
	assert.False(t, timer.Running())
	assert.Equal(t, StateZero, timer.State())
}
