// Package model defines shared data structures.
package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Field identifies one editable component of a Duration.
type Field int

const (
	FieldNone Field = iota
	FieldHours
	FieldMinutes
	FieldSeconds
)

// String returns the lowercase field name.
func (f Field) String() string {
	switch f {
	case FieldHours:
		return "hours"
	case FieldMinutes:
		return "minutes"
	case FieldSeconds:
		return "seconds"
	default:
		return "none"
	}
}

// Max returns the largest value the field accepts.
func (f Field) Max() int {
	switch f {
	case FieldHours:
		return 23
	case FieldMinutes, FieldSeconds:
		return 59
	default:
		return 0
	}
}

// Clamp limits v to the field's range.
func (f Field) Clamp(v int) int {
	if v < 0 {
		return 0
	}
	if m := f.Max(); v > m {
		return m
	}
	return v
}

// ParseFieldInput converts raw user text to a field value. Text that is not an
// integer counts as 0; the result is clamped to the field's range.
func ParseFieldInput(f Field, raw string) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		v = 0
	}
	return f.Clamp(v)
}

// Duration is an hours/minutes/seconds triple with each part kept in range.
type Duration struct {
	Hours   int
	Minutes int
	Seconds int
}

// NewDuration builds a Duration with every part clamped.
func NewDuration(hours, minutes, seconds int) Duration {
	return Duration{
		Hours:   FieldHours.Clamp(hours),
		Minutes: FieldMinutes.Clamp(minutes),
		Seconds: FieldSeconds.Clamp(seconds),
	}
}

// DurationFromSeconds splits a second count into parts. Negative input yields
// zero. Hours are not clamped so long stopwatch runs still render.
func DurationFromSeconds(total int) Duration {
	if total < 0 {
		total = 0
	}
	return Duration{
		Hours:   total / 3600,
		Minutes: (total % 3600) / 60,
		Seconds: total % 60,
	}
}

// Get returns the value of a single field.
func (d Duration) Get(f Field) int {
	switch f {
	case FieldHours:
		return d.Hours
	case FieldMinutes:
		return d.Minutes
	case FieldSeconds:
		return d.Seconds
	default:
		return 0
	}
}

// With returns a copy with one field set to the clamped value.
func (d Duration) With(f Field, v int) Duration {
	v = f.Clamp(v)
	switch f {
	case FieldHours:
		d.Hours = v
	case FieldMinutes:
		d.Minutes = v
	case FieldSeconds:
		d.Seconds = v
	}
	return d
}

// TotalSeconds returns the duration as a second count.
func (d Duration) TotalSeconds() int {
	return d.Hours*3600 + d.Minutes*60 + d.Seconds
}

// String formats as HH:MM:SS.
func (d Duration) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", d.Hours, d.Minutes, d.Seconds)
}

// Config defines runtime settings resolved from flags and the config file.
type Config struct {
	Countdown    Duration
	AlarmHour    int
	AlarmMinute  int
	Locale       string
	TimeLayout   string
	DateLayout   string
	SoundEnabled bool
	Volume       float64
	Journal      bool
}

// HistoryConfig defines filters for journal output.
type HistoryConfig struct {
	Last int
	YAML bool
}

// EventKind labels a journal entry.
type EventKind string

const (
	EventAlarmFired       EventKind = "alarm_fired"
	EventAlarmAcked       EventKind = "alarm_acknowledged"
	EventCountdownExpired EventKind = "countdown_expired"
)

// JournalEvent is one recorded firing or expiration.
type JournalEvent struct {
	ID    int64     `yaml:"id"`
	Kind  EventKind `yaml:"kind"`
	Ref   string    `yaml:"ref,omitempty"`
	Label string    `yaml:"label"`
	At    time.Time `yaml:"at"`
}
