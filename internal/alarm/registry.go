// Package alarm holds the alarm list and decides when an alarm fires.
package alarm

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Entry is one user-configured alarm.
type Entry struct {
	ID     string
	Time   Time
	Label  string
	Active bool
}

// Notifier receives firing signals. Fire must not block; playback outcome is
// reported by the notifier itself.
type Notifier interface {
	Fire(entry Entry)
	Silence()
}

// Option configures a Registry.
type Option func(*Registry)

// WithIDFunc overrides how entry ids are generated.
func WithIDFunc(fn func() string) Option {
	return func(r *Registry) {
		r.newID = fn
	}
}

// Registry owns the alarm entries and the single firing slot.
type Registry struct {
	entries  []*Entry
	firedID  string
	created  int
	newID    func() string
	notifier Notifier
	// minute each entry last fired, so a repeated tick in the same minute is ignored
	lastFired map[string]time.Time
}

// New returns an empty registry. A nil notifier discards signals.
func New(notifier Notifier, opts ...Option) *Registry {
	r := &Registry{
		newID:     uuid.NewString,
		notifier:  notifier,
		lastFired: map[string]time.Time{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add appends a new active entry and returns a copy of it. Out-of-range
// times are clamped; an empty label becomes "Alarm N".
func (r *Registry) Add(t Time, label string) Entry {
	r.created++
	label = strings.TrimSpace(label)
	if label == "" {
		label = fmt.Sprintf("Alarm %d", r.created)
	}
	entry := &Entry{
		ID:     r.newID(),
		Time:   ClampTime(t.Hour, t.Minute),
		Label:  label,
		Active: true,
	}
	r.entries = append(r.entries, entry)
	return *entry
}

// Remove deletes the entry. Removing the firing entry silences it.
func (r *Registry) Remove(id string) {
	for i, entry := range r.entries {
		if entry.ID != id {
			continue
		}
		r.entries = append(r.entries[:i], r.entries[i+1:]...)
		delete(r.lastFired, id)
		if r.firedID == id {
			r.firedID = ""
			r.silence()
		}
		return
	}
}

// ToggleActive flips the active flag.
func (r *Registry) ToggleActive(id string) {
	if entry := r.find(id); entry != nil {
		entry.Active = !entry.Active
	}
}

// Update replaces the time and label in place. An empty label keeps the
// current one.
func (r *Registry) Update(id string, t Time, label string) {
	entry := r.find(id)
	if entry == nil {
		return
	}
	entry.Time = ClampTime(t.Hour, t.Minute)
	if label = strings.TrimSpace(label); label != "" {
		entry.Label = label
	}
}

// Get returns a copy of the entry.
func (r *Registry) Get(id string) (Entry, bool) {
	entry := r.find(id)
	if entry == nil {
		return Entry{}, false
	}
	return *entry, true
}

// Entries returns copies of all entries in creation order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, len(r.entries))
	for _, entry := range r.entries {
		out = append(out, *entry)
	}
	return out
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Fired returns the entry awaiting acknowledgment.
func (r *Registry) Fired() (Entry, bool) {
	if r.firedID == "" {
		return Entry{}, false
	}
	return r.Get(r.firedID)
}

// OnTick fires the first active entry matching now, in creation order. While
// an entry is already firing nothing else is considered.
func (r *Registry) OnTick(now time.Time) (Entry, bool) {
	if r.firedID != "" {
		return Entry{}, false
	}
	minute := now.Truncate(time.Minute)
	for _, entry := range r.entries {
		if !entry.Active || !entry.Time.Matches(now) {
			continue
		}
		if last, ok := r.lastFired[entry.ID]; ok && last.Equal(minute) {
			continue
		}
		r.lastFired[entry.ID] = minute
		r.firedID = entry.ID
		fired := *entry
		if r.notifier != nil {
			r.notifier.Fire(fired)
		}
		return fired, true
	}
	return Entry{}, false
}

// Acknowledge clears the firing entry and stops playback.
func (r *Registry) Acknowledge() (Entry, bool) {
	fired, ok := r.Fired()
	if !ok {
		return Entry{}, false
	}
	r.firedID = ""
	r.silence()
	return fired, true
}

func (r *Registry) silence() {
	if r.notifier != nil {
		r.notifier.Silence()
	}
}

func (r *Registry) find(id string) *Entry {
	for _, entry := range r.entries {
		if entry.ID == id {
			return entry
		}
	}
	return nil
}
