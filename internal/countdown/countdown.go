// Package countdown implements the Pomodoro countdown state machine.
package countdown

import (
	"strconv"

	"github.com/verte-zerg/tuiclock/internal/model"
)

// State is the observable countdown mode.
type State int

const (
	StateIdle State = iota
	StateEditing
	StateRunning
	StateExpired
	// StateZero is a stopped timer with nothing left that did not get there by
	// counting down, e.g. after Reset.
	StateZero
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateRunning:
		return "running"
	case StateExpired:
		return "expired"
	case StateZero:
		return "zero"
	default:
		return "idle"
	}
}

// Timer counts down from a configured duration once per tick.
type Timer struct {
	configured   model.Duration
	remaining    int
	running      bool
	expired      bool
	editingField model.Field
	pendingInput string
}

// New returns an idle timer seeded with the configured duration.
func New(configured model.Duration) *Timer {
	configured = model.NewDuration(configured.Hours, configured.Minutes, configured.Seconds)
	return &Timer{
		configured: configured,
		remaining:  configured.TotalSeconds(),
	}
}

// Configured returns the configured duration.
func (t *Timer) Configured() model.Duration {
	return t.configured
}

// RemainingSeconds returns the seconds left.
func (t *Timer) RemainingSeconds() int {
	return t.remaining
}

// Remaining returns the seconds left split into hours, minutes and seconds.
func (t *Timer) Remaining() model.Duration {
	return model.DurationFromSeconds(t.remaining)
}

// Running reports whether the timer is counting down.
func (t *Timer) Running() bool {
	return t.running
}

// EditingField returns the field being edited, or model.FieldNone.
func (t *Timer) EditingField() model.Field {
	return t.editingField
}

// PendingInput returns the uncommitted edit text.
func (t *Timer) PendingInput() string {
	return t.pendingInput
}

// State derives the current mode.
func (t *Timer) State() State {
	switch {
	case t.editingField != model.FieldNone:
		return StateEditing
	case t.running:
		return StateRunning
	case t.expired:
		return StateExpired
	case t.remaining == 0:
		return StateZero
	default:
		return StateIdle
	}
}

// SetField parses raw, clamps it to the field range and stores it. When the
// timer is stopped the remaining time is re-seeded from the configuration.
func (t *Timer) SetField(field model.Field, raw string) {
	if field == model.FieldNone {
		return
	}
	t.configured = t.configured.With(field, model.ParseFieldInput(field, raw))
	if !t.running {
		t.remaining = t.configured.TotalSeconds()
		t.expired = false
	}
}

// BeginEdit starts editing a field. Ignored while running.
func (t *Timer) BeginEdit(field model.Field) bool {
	if t.running || field == model.FieldNone {
		return false
	}
	t.editingField = field
	t.pendingInput = strconv.Itoa(t.configured.Get(field))
	return true
}

// SetPendingInput replaces the uncommitted edit text.
func (t *Timer) SetPendingInput(raw string) {
	if t.editingField == model.FieldNone {
		return
	}
	t.pendingInput = raw
}

// CommitEdit applies the pending input to the field being edited.
func (t *Timer) CommitEdit() {
	if t.editingField == model.FieldNone {
		return
	}
	field := t.editingField
	raw := t.pendingInput
	t.editingField = model.FieldNone
	t.pendingInput = ""
	t.SetField(field, raw)
}

// CancelEdit drops the pending input without touching the configuration.
func (t *Timer) CancelEdit() {
	t.editingField = model.FieldNone
	t.pendingInput = ""
}

// ToggleRunning flips the running flag. Starting discards any open edit.
// Starting with nothing left is allowed; the next tick stops it again.
func (t *Timer) ToggleRunning() {
	if !t.running {
		t.CancelEdit()
	}
	t.running = !t.running
}

// Reset stops the timer and zeroes both the configuration and the remainder.
func (t *Timer) Reset() {
	t.CancelEdit()
	t.running = false
	t.expired = false
	t.configured = model.Duration{}
	t.remaining = 0
}

// OnTick advances the countdown by one second. It reports true on the tick
// that moved the timer into the expired state.
func (t *Timer) OnTick() bool {
	if !t.running {
		return false
	}
	if t.remaining == 0 {
		t.running = false
		return false
	}
	t.remaining--
	if t.remaining > 0 {
		return false
	}
	t.running = false
	t.expired = true
	return true
}
