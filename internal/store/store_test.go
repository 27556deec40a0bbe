package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/tuiclock/internal/model"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestInsertAndListEvents(t *testing.T) {
	st := openTemp(t)
	ctx := context.Background()
	base := time.Date(2026, time.October, 16, 7, 30, 0, 0, time.UTC)

	var ids []int64
	for i, kind := range []model.EventKind{model.EventAlarmFired, model.EventAlarmAcked, model.EventCountdownExpired} {
		id, err := st.InsertEvent(ctx, model.JournalEvent{
			Kind:  kind,
			Ref:   "ref",
			Label: "Wake",
			At:    base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	all, err := st.ListEvents(ctx, model.HistoryConfig{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, ids[0], all[0].ID)
	assert.Equal(t, model.EventAlarmFired, all[0].Kind)
	assert.True(t, all[0].At.Equal(base))

	last, err := st.ListEvents(ctx, model.HistoryConfig{Last: 2})
	require.NoError(t, err)
	require.Len(t, last, 2)
	assert.Equal(t, ids[1], last[0].ID)
	assert.Equal(t, ids[2], last[1].ID)
}

func TestListEventsEmpty(t *testing.T) {
	st := openTemp(t)
	events, err := st.ListEvents(context.Background(), model.HistoryConfig{Last: 5})
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestListEventsOrdersWithinOneSecond(t *testing.T) {
	st := openTemp(t)
	ctx := context.Background()
	base := time.Date(2026, time.October, 16, 7, 30, 0, 0, time.UTC)

	_, err := st.InsertEvent(ctx, model.JournalEvent{Kind: model.EventAlarmFired, Label: "first", At: base})
	require.NoError(t, err)
	_, err = st.InsertEvent(ctx, model.JournalEvent{Kind: model.EventAlarmAcked, Label: "second", At: base.Add(500 * time.Millisecond)})
	require.NoError(t, err)

	last, err := st.ListEvents(ctx, model.HistoryConfig{Last: 1})
	require.NoError(t, err)
	require.Len(t, last, 1)
	assert.Equal(t, "second", last[0].Label)

	all, err := st.ListEvents(ctx, model.HistoryConfig{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "first", all[0].Label)
	assert.Equal(t, "second", all[1].Label)
	assert.True(t, all[1].At.Equal(base.Add(500*time.Millisecond)))
}
