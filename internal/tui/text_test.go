package tui

import (
	"testing"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/tuiclock/internal/alarm"
)

func TestTruncateLabel(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{name: "fits", in: "Wake up", width: 10, want: "Wake up"},
		{name: "exact", in: "abcde", width: 5, want: "abcde"},
		{name: "cut", in: "Morning run", width: 6, want: "Morni…"},
		{name: "zero width", in: "abc", width: 0, want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, truncateLabel(tc.in, tc.width))
		})
	}
}

func TestTruncateLabelWideRunes(t *testing.T) {
	out := truncateLabel("起床の時間です", 7)
	assert.LessOrEqual(t, runewidth.StringWidth(out), 7)
	assert.Equal(t, "起床の…", out)
}

func TestAlarmRows(t *testing.T) {
	now := time.Date(2026, time.October, 16, 6, 0, 0, 0, time.Local)
	entries := []alarm.Entry{
		{ID: "a", Time: alarm.Time{Hour: 7, Minute: 0}, Label: "Wake", Active: true},
		{ID: "b", Time: alarm.Time{Hour: 5, Minute: 30}, Label: "Off", Active: false},
	}

	rows := alarmRows(entries, now)
	require.Len(t, rows, 2)
	assert.Equal(t, "07:00", rows[0][0])
	assert.Equal(t, "Wake", rows[0][1])
	assert.Equal(t, "on", rows[0][2])
	assert.Equal(t, "1 hour from now", rows[0][3])
	assert.Equal(t, "off", rows[1][2])
	assert.Equal(t, "-", rows[1][3])
}
