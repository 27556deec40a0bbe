// Package tick provides the shared once-per-second notifier.
//
// Ticks are scheduled one at a time: the next tick is armed only after the
// previous one was handled, so the cadence drifts the way a re-armed
// interval does rather than tracking wall-clock deadlines.
package tick

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Interval is the default tick cadence.
const Interval = time.Second

// Clock reports the current instant.
type Clock interface {
	Now() time.Time
}

// System reads time from the time package.
var System Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Listener is called once per tick with the tick instant.
type Listener func(now time.Time)

// Msg is delivered to the Bubble Tea update loop for each tick.
type Msg struct {
	Time time.Time
	gen  int
}

type subscriber struct {
	id int
	fn Listener
}

// Source fans each tick out to its subscribers in subscription order.
type Source struct {
	interval  time.Duration
	nextID    int
	listeners []subscriber
	gen       int
	running   bool
}

// NewSource returns a stopped source. A non-positive interval means Interval.
func NewSource(interval time.Duration) *Source {
	if interval <= 0 {
		interval = Interval
	}
	return &Source{interval: interval}
}

// Subscription is a scoped registration; Release ends it.
type Subscription struct {
	src *Source
	id  int
}

// Subscribe registers fn until the returned subscription is released.
func (s *Source) Subscribe(fn Listener) *Subscription {
	s.nextID++
	s.listeners = append(s.listeners, subscriber{id: s.nextID, fn: fn})
	return &Subscription{src: s, id: s.nextID}
}

// Release removes the listener. Calling it more than once is harmless.
func (sub *Subscription) Release() {
	if sub == nil || sub.src == nil {
		return
	}
	s := sub.src
	for i, l := range s.listeners {
		if l.id == sub.id {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			break
		}
	}
	sub.src = nil
}

// Active reports whether the subscription is still registered.
func (sub *Subscription) Active() bool {
	return sub != nil && sub.src != nil
}

// Len returns the number of live subscriptions.
func (s *Source) Len() int {
	return len(s.listeners)
}

// Running reports whether ticks are being scheduled.
func (s *Source) Running() bool {
	return s.running
}

// Fire delivers one tick to every listener registered when it starts.
func (s *Source) Fire(now time.Time) {
	listeners := append([]subscriber(nil), s.listeners...)
	for _, l := range listeners {
		l.fn(now)
	}
}

// Start arms the first tick. Ticks armed by an earlier Start are dropped.
func (s *Source) Start() tea.Cmd {
	s.gen++
	s.running = true
	return s.schedule()
}

// Stop drops any armed tick.
func (s *Source) Stop() {
	s.gen++
	s.running = false
}

// Handle fires a tick and arms the next one. Stale ticks return nil.
func (s *Source) Handle(msg Msg) tea.Cmd {
	if !s.running || msg.gen != s.gen {
		return nil
	}
	s.Fire(msg.Time)
	return s.schedule()
}

func (s *Source) schedule() tea.Cmd {
	gen := s.gen
	return tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return Msg{Time: t, gen: gen}
	})
}
