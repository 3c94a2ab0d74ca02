// Package audio turns game events into short synthesized sound effects.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/blockfall/game"
	"github.com/rs/zerolog"
)

// Player is a game.Sink that plays a sound for lock, clear, game over and
// restart events. Every method is a no-op until Start succeeds, so a machine
// without an audio device still runs the game.
type Player struct {
	game.NopSink

	mu      sync.Mutex
	mixer   *beep.Mixer
	volume  float64
	started bool
	muted   bool
	logger  zerolog.Logger
}

// NewPlayer creates a stopped player. volume is linear in [0, 1].
func NewPlayer(volume float64, logger zerolog.Logger) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logger,
	}
}

// Start opens the audio device and begins streaming the mixer.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return nil
	}

	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.started = true
	p.logger.Debug().Int("rate", int(SampleRate)).Msg("audio started")
	return nil
}

// Close stops all sounds and releases the audio device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.started = false
}

// SetMuted silences new sounds without closing the device.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

// Muted reports whether new sounds are suppressed.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Notify plays the sound for event, if it has one.
func (p *Player) Notify(event game.Event) {
	s := soundFor(event)
	if s == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started || p.muted {
		return
	}

	speaker.Lock()
	p.mixer.Add(newVolume(s, p.volume))
	speaker.Unlock()
}

// soundFor maps an event to its effect. Spawns are silent.
func soundFor(event game.Event) beep.Streamer {
	switch event.Kind {
	case game.EventLocked:
		return LockSound()
	case game.EventLinesCleared:
		return ClearSound(event.Lines)
	case game.EventGameOver:
		return GameOverSound()
	case game.EventRestarted:
		return RestartSound()
	default:
		return nil
	}
}
