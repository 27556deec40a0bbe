package sound

import (
	"go.uber.org/zap"

	"github.com/verte-zerg/tuiclock/internal/alarm"
)

// Alerter turns alarm firings into playback. Playback failures are logged and
// never reach the alarm state.
type Alerter struct {
	audio Audio
	log   *zap.Logger
}

// NewAlerter wraps audio. A nil logger discards output.
func NewAlerter(audio Audio, log *zap.Logger) *Alerter {
	if audio == nil {
		audio = Mute{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Alerter{audio: audio, log: log}
}

// Fire implements alarm.Notifier.
func (a *Alerter) Fire(entry alarm.Entry) {
	log := a.log.With(zap.String("alarm_id", entry.ID), zap.String("label", entry.Label))
	a.audio.Play(func(err error) {
		if err != nil {
			log.Warn("alarm sound failed", zap.Error(err))
			return
		}
		log.Debug("alarm sound started")
	})
}

// Silence implements alarm.Notifier.
func (a *Alerter) Silence() {
	a.audio.Stop()
}
