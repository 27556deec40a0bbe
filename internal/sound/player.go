// Package sound plays the alarm tone and adapts it to alarm notifications.
package sound

import (
	"bytes"
	_ "embed"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

//go:embed assets/alarm.wav
var alarmWAV []byte

// Audio starts and stops the alarm tone. Play returns immediately and reports
// the outcome through done, which may run on another goroutine.
type Audio interface {
	Play(done func(error))
	Stop()
}

// Player loops the embedded alarm tone on the default output device.
type Player struct {
	volume float64

	// open decodes the tone and opens the device; output hands a stream to it.
	open   func() (*beep.Buffer, error)
	output func(beep.Streamer)

	initOnce sync.Once
	initErr  error
	buffer   *beep.Buffer

	mu   sync.Mutex
	gen  int
	ctrl *beep.Ctrl
}

// NewPlayer returns a player. Volume is linear in [0, 1]; 0 mutes.
func NewPlayer(volume float64) *Player {
	return &Player{
		volume: volume,
		open:   openDevice,
		output: func(s beep.Streamer) { speaker.Play(s) },
	}
}

// Play starts looping the tone until Stop. A Stop issued before playback
// actually begins cancels it.
func (p *Player) Play(done func(error)) {
	p.mu.Lock()
	p.gen++
	gen := p.gen
	p.mu.Unlock()
	go func() {
		err := p.start(gen)
		if done != nil {
			done(err)
		}
	}()
}

// Stop halts playback and cancels any pending Play. It is safe to call when
// nothing is playing.
func (p *Player) Stop() {
	p.mu.Lock()
	p.gen++
	ctrl := p.ctrl
	p.ctrl = nil
	p.mu.Unlock()
	silence(ctrl)
}

func (p *Player) start(gen int) error {
	p.initOnce.Do(func() {
		p.buffer, p.initErr = p.open()
	})
	if p.initErr != nil {
		return p.initErr
	}

	loop := beep.Loop(-1, p.buffer.Streamer(0, p.buffer.Len()))
	ctrl := &beep.Ctrl{Streamer: volumeFor(loop, p.volume)}
	p.mu.Lock()
	if gen != p.gen {
		p.mu.Unlock()
		return nil
	}
	prev := p.ctrl
	p.ctrl = ctrl
	p.mu.Unlock()
	silence(prev)
	p.output(ctrl)
	return nil
}

// silence empties ctrl so the mixer drops it. A ctrl silenced before it
// reaches the mixer plays nothing.
func silence(ctrl *beep.Ctrl) {
	if ctrl == nil {
		return
	}
	speaker.Lock()
	ctrl.Streamer = nil
	speaker.Unlock()
}

func openDevice() (*beep.Buffer, error) {
	buffer, format, err := loadBuffer()
	if err != nil {
		return nil, err
	}
	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("failed to open audio device: %w", err)
	}
	return buffer, nil
}

func loadBuffer() (*beep.Buffer, beep.Format, error) {
	streamer, format, err := wav.Decode(bytes.NewReader(alarmWAV))
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("failed to decode alarm tone: %w", err)
	}
	defer func() {
		if cerr := streamer.Close(); cerr != nil {
			// Best-effort close of in-memory decoder.
			_ = cerr
		}
	}()
	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	return buffer, format, nil
}

// volumeFor maps linear volume onto the base-2 exponent effects.Volume uses.
func volumeFor(s beep.Streamer, volume float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	switch {
	case volume <= 0:
		v.Silent = true
	case volume < 1:
		v.Volume = math.Log2(volume)
	}
	return v
}

// Mute is an Audio that never plays.
type Mute struct{}

// Play reports success without producing sound.
func (Mute) Play(done func(error)) {
	if done != nil {
		done(nil)
	}
}

// Stop does nothing.
func (Mute) Stop() {}
