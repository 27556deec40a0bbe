// Package app wires the timers, the alarm registry and the clock to the
// shared tick source.
package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/verte-zerg/tuiclock/internal/alarm"
	"github.com/verte-zerg/tuiclock/internal/clockface"
	"github.com/verte-zerg/tuiclock/internal/countdown"
	"github.com/verte-zerg/tuiclock/internal/model"
	"github.com/verte-zerg/tuiclock/internal/stopwatch"
	"github.com/verte-zerg/tuiclock/internal/tick"
)

// Journal records firings and expirations.
type Journal interface {
	InsertEvent(ctx context.Context, ev model.JournalEvent) (int64, error)
}

// Options carries the collaborators of a Controller. Zero values are
// replaced with no-op or system defaults.
type Options struct {
	Notifier alarm.Notifier
	Journal  Journal
	Logger   *zap.Logger
	Clock    tick.Clock
	Source   *tick.Source
	IDFunc   func() string
}

// Controller owns every feature's state. All methods must be called from a
// single goroutine.
type Controller struct {
	cfg       model.Config
	countdown *countdown.Timer
	stopwatch *stopwatch.Stopwatch
	alarms    *alarm.Registry
	formatter *clockface.Formatter
	source    *tick.Source
	journal   Journal
	log       *zap.Logger

	now     time.Time
	reading clockface.Reading
	subs    []*tick.Subscription
}

// New builds a controller from resolved settings.
func New(cfg model.Config, opts Options) (*Controller, error) {
	formatter, err := clockface.New(cfg.Locale, cfg.TimeLayout, cfg.DateLayout)
	if err != nil {
		return nil, err
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Clock == nil {
		opts.Clock = tick.System
	}
	if opts.Source == nil {
		opts.Source = tick.NewSource(tick.Interval)
	}
	var alarmOpts []alarm.Option
	if opts.IDFunc != nil {
		alarmOpts = append(alarmOpts, alarm.WithIDFunc(opts.IDFunc))
	}

	c := &Controller{
		cfg:       cfg,
		countdown: countdown.New(cfg.Countdown),
		stopwatch: stopwatch.New(),
		alarms:    alarm.New(opts.Notifier, alarmOpts...),
		formatter: formatter,
		source:    opts.Source,
		journal:   opts.Journal,
		log:       opts.Logger,
		now:       opts.Clock.Now(),
	}
	c.reading = formatter.Format(c.now)
	c.subs = append(c.subs, c.source.Subscribe(c.onTick))
	return c, nil
}

// Close releases every tick subscription held by the controller.
func (c *Controller) Close() {
	for _, sub := range c.subs {
		sub.Release()
	}
	c.subs = nil
}

// Source returns the tick source driving the controller.
func (c *Controller) Source() *tick.Source {
	return c.source
}

// Countdown returns the Pomodoro timer.
func (c *Controller) Countdown() *countdown.Timer {
	return c.countdown
}

// Stopwatch returns the stopwatch.
func (c *Controller) Stopwatch() *stopwatch.Stopwatch {
	return c.stopwatch
}

// Alarms returns the alarm registry.
func (c *Controller) Alarms() *alarm.Registry {
	return c.alarms
}

// Now returns the instant of the most recent tick.
func (c *Controller) Now() time.Time {
	return c.now
}

// DefaultAlarmTime is the time pre-filled when creating an alarm.
func (c *Controller) DefaultAlarmTime() alarm.Time {
	return alarm.ClampTime(c.cfg.AlarmHour, c.cfg.AlarmMinute)
}

// WatchClock keeps the clock reading current until the subscription is
// released.
func (c *Controller) WatchClock() *tick.Subscription {
	c.reading = c.formatter.Format(c.now)
	return c.source.Subscribe(func(now time.Time) {
		c.reading = c.formatter.Format(now)
	})
}

// ClockReading returns the last rendered clock strings.
func (c *Controller) ClockReading() clockface.Reading {
	return c.reading
}

// AcknowledgeAlarm dismisses the firing alarm.
func (c *Controller) AcknowledgeAlarm() {
	entry, ok := c.alarms.Acknowledge()
	if !ok {
		return
	}
	c.log.Info("alarm acknowledged", zap.String("alarm_id", entry.ID), zap.String("label", entry.Label))
	c.record(model.EventAlarmAcked, entry.ID, entry.Label)
}

// RemoveAlarm deletes an alarm. A firing alarm is silenced first.
func (c *Controller) RemoveAlarm(id string) {
	if fired, ok := c.alarms.Fired(); ok && fired.ID == id {
		c.log.Info("firing alarm removed", zap.String("alarm_id", id))
	}
	c.alarms.Remove(id)
}

func (c *Controller) onTick(now time.Time) {
	c.now = now
	if c.countdown.OnTick() {
		c.log.Info("countdown expired", zap.Stringer("configured", c.countdown.Configured()))
		c.record(model.EventCountdownExpired, "", c.countdown.Configured().String())
	}
	c.stopwatch.OnTick()
	if entry, ok := c.alarms.OnTick(now); ok {
		c.log.Info("alarm fired",
			zap.String("alarm_id", entry.ID),
			zap.String("label", entry.Label),
			zap.Stringer("time", entry.Time),
		)
		c.record(model.EventAlarmFired, entry.ID, entry.Label)
	}
}

func (c *Controller) record(kind model.EventKind, ref, label string) {
	if c.journal == nil {
		return
	}
	ev := model.JournalEvent{Kind: kind, Ref: ref, Label: label, At: c.now}
	if _, err := c.journal.InsertEvent(context.Background(), ev); err != nil {
		c.log.Error("failed to write journal event", zap.String("kind", string(kind)), zap.Error(err))
	}
}
