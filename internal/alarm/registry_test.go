package alarm

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	fired    []Entry
	silenced int
}

func (n *recordingNotifier) Fire(entry Entry) {
	n.fired = append(n.fired, entry)
}

func (n *recordingNotifier) Silence() {
	n.silenced++
}

func sequentialIDs() Option {
	next := 0
	return WithIDFunc(func() string {
		next++
		return fmt.Sprintf("id-%d", next)
	})
}

func at(day, hour, minute, second int) time.Time {
	return time.Date(2026, time.October, day, hour, minute, second, 0, time.Local)
}

func TestAddAssignsDefaultsInCreationOrder(t *testing.T) {
	r := New(nil, sequentialIDs())
	first := r.Add(Time{Hour: 7}, "")
	second := r.Add(Time{Hour: 8}, "  Gym  ")
	third := r.Add(Time{Hour: 30, Minute: 75}, "")

	assert.Equal(t, "Alarm 1", first.Label)
	assert.Equal(t, "Gym", second.Label)
	assert.Equal(t, "Alarm 3", third.Label)
	assert.Equal(t, Time{Hour: 23, Minute: 59}, third.Time)
	assert.True(t, first.Active)

	entries := r.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, []string{"id-1", "id-2", "id-3"}, []string{entries[0].ID, entries[1].ID, entries[2].ID})
}

func TestDefaultLabelFollowsCreationCountAfterDelete(t *testing.T) {
	r := New(nil, sequentialIDs())
	first := r.Add(Time{}, "")
	r.Remove(first.ID)
	second := r.Add(Time{}, "")
	assert.Equal(t, "Alarm 2", second.Label)
}

func TestDefaultIDsAreUnique(t *testing.T) {
	r := New(nil)
	a := r.Add(Time{}, "")
	b := r.Add(Time{}, "")
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestEntriesAreCopies(t *testing.T) {
	r := New(nil)
	entry := r.Add(Time{Hour: 6}, "Run")
	entries := r.Entries()
	entries[0].Label = "changed"
	got, ok := r.Get(entry.ID)
	require.True(t, ok)
	assert.Equal(t, "Run", got.Label)
}

func TestUnknownIDIsNoop(t *testing.T) {
	r := New(nil)
	entry := r.Add(Time{Hour: 6}, "Run")
	r.Remove("missing")
	r.ToggleActive("missing")
	r.Update("missing", Time{Hour: 1}, "x")
	got, ok := r.Get(entry.ID)
	require.True(t, ok)
	assert.Equal(t, entry, got)
	assert.Equal(t, 1, r.Len())
}

func TestUpdateMutatesInPlace(t *testing.T) {
	r := New(nil)
	entry := r.Add(Time{Hour: 6}, "Run")
	r.ToggleActive(entry.ID)
	r.Update(entry.ID, Time{Hour: 9, Minute: 15}, "Standup")

	got, _ := r.Get(entry.ID)
	assert.Equal(t, Time{Hour: 9, Minute: 15}, got.Time)
	assert.Equal(t, "Standup", got.Label)
	assert.False(t, got.Active)

	r.Update(entry.ID, Time{Hour: 10}, "")
	got, _ = r.Get(entry.ID)
	assert.Equal(t, "Standup", got.Label)
}

func TestActiveEntryFiresOncePerDay(t *testing.T) {
	n := &recordingNotifier{}
	r := New(n)
	entry := r.Add(Time{Hour: 7, Minute: 30}, "")

	for second := 55; second < 60; second++ {
		_, fired := r.OnTick(at(16, 7, 29, second))
		assert.False(t, fired)
	}
	fired, ok := r.OnTick(at(16, 7, 30, 0))
	require.True(t, ok)
	assert.Equal(t, entry.ID, fired.ID)

	r.Acknowledge()
	for second := 1; second < 60; second++ {
		_, ok := r.OnTick(at(16, 7, 30, second))
		assert.False(t, ok)
	}
	_, ok = r.OnTick(at(16, 7, 30, 0))
	assert.False(t, ok, "same minute must not fire twice")

	_, ok = r.OnTick(at(17, 7, 30, 0))
	assert.True(t, ok)
	assert.Len(t, n.fired, 2)
}

func TestInactiveEntryNeverFires(t *testing.T) {
	n := &recordingNotifier{}
	r := New(n)
	entry := r.Add(Time{Hour: 7, Minute: 30}, "")
	r.ToggleActive(entry.ID)

	_, ok := r.OnTick(at(16, 7, 30, 0))
	assert.False(t, ok)
	assert.Empty(t, n.fired)
}

func TestFiringEntryIsNotReplaced(t *testing.T) {
	n := &recordingNotifier{}
	r := New(n, sequentialIDs())
	first := r.Add(Time{Hour: 7, Minute: 30}, "first")
	r.Add(Time{Hour: 7, Minute: 30}, "second")
	r.Add(Time{Hour: 7, Minute: 31}, "third")

	fired, ok := r.OnTick(at(16, 7, 30, 0))
	require.True(t, ok)
	assert.Equal(t, first.ID, fired.ID)

	_, ok = r.OnTick(at(16, 7, 31, 0))
	assert.False(t, ok)
	current, ok := r.Fired()
	require.True(t, ok)
	assert.Equal(t, first.ID, current.ID)
	assert.Len(t, n.fired, 1)
}

func TestMissedMinuteDoesNotFireLate(t *testing.T) {
	r := New(nil)
	r.Add(Time{Hour: 7, Minute: 30}, "")
	_, ok := r.OnTick(at(16, 7, 29, 59))
	assert.False(t, ok)
	_, ok = r.OnTick(at(16, 7, 30, 1))
	assert.False(t, ok)
}

func TestAcknowledgeClearsAndSilences(t *testing.T) {
	n := &recordingNotifier{}
	r := New(n)
	r.Add(Time{Hour: 7}, "")
	_, ok := r.Acknowledge()
	assert.False(t, ok)
	assert.Equal(t, 0, n.silenced)

	r.OnTick(at(16, 7, 0, 0))
	acked, ok := r.Acknowledge()
	require.True(t, ok)
	assert.Equal(t, "Alarm 1", acked.Label)
	_, firing := r.Fired()
	assert.False(t, firing)
	assert.Equal(t, 1, n.silenced)
}

func TestRemovingFiringEntryClearsIt(t *testing.T) {
	n := &recordingNotifier{}
	r := New(n)
	entry := r.Add(Time{Hour: 7}, "")
	r.OnTick(at(16, 7, 0, 0))

	r.Remove(entry.ID)
	_, firing := r.Fired()
	assert.False(t, firing)
	assert.Equal(t, 1, n.silenced)
	assert.Equal(t, 0, r.Len())
}

func TestFiredReflectsEdits(t *testing.T) {
	r := New(nil)
	entry := r.Add(Time{Hour: 7}, "old")
	r.OnTick(at(16, 7, 0, 0))
	r.Update(entry.ID, Time{Hour: 7}, "new")
	fired, ok := r.Fired()
	require.True(t, ok)
	assert.Equal(t, "new", fired.Label)
}

func TestDisabledAlarmEndToEnd(t *testing.T) {
	n := &recordingNotifier{}
	r := New(n)
	wake := r.Add(Time{Hour: 8}, "Wake")
	r.ToggleActive(wake.ID)

	start := at(16, 7, 59, 50)
	for i := 0; i <= 20; i++ {
		r.OnTick(start.Add(time.Duration(i) * time.Second))
	}
	assert.Empty(t, n.fired)
}
