package alarm

import (
	"errors"
	"fmt"
	"time"

	"github.com/verte-zerg/tuiclock/internal/model"
)

// ErrInvalidTime is returned by NewTime for an out-of-range hour or minute.
var ErrInvalidTime = errors.New("alarm time out of range")

// Time is a time of day with minute resolution.
type Time struct {
	Hour   int
	Minute int
}

// NewTime validates hour and minute.
func NewTime(hour, minute int) (Time, error) {
	if hour < 0 || hour > model.FieldHours.Max() || minute < 0 || minute > model.FieldMinutes.Max() {
		return Time{}, fmt.Errorf("%w: %02d:%02d", ErrInvalidTime, hour, minute)
	}
	return Time{Hour: hour, Minute: minute}, nil
}

// ClampTime forces hour and minute into range.
func ClampTime(hour, minute int) Time {
	return Time{
		Hour:   model.FieldHours.Clamp(hour),
		Minute: model.FieldMinutes.Clamp(minute),
	}
}

// ParseTime converts form text to a Time the way field edits do: non-numeric
// text counts as 0 and values are clamped.
func ParseTime(hourRaw, minuteRaw string) Time {
	return Time{
		Hour:   model.ParseFieldInput(model.FieldHours, hourRaw),
		Minute: model.ParseFieldInput(model.FieldMinutes, minuteRaw),
	}
}

// String formats as HH:MM.
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Matches reports whether now is the first second of this time's minute.
func (t Time) Matches(now time.Time) bool {
	return now.Hour() == t.Hour && now.Minute() == t.Minute && now.Second() == 0
}

// Next returns the next instant at or after now when this time rings.
func (t Time) Next(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), t.Hour, t.Minute, 0, 0, now.Location())
	if next.Before(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
