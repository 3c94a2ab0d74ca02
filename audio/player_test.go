package audio

import (
	"testing"

	"github.com/plus3/blockfall/game"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestPlayerIgnoresEventsUntilStarted(t *testing.T) {
	p := NewPlayer(1, zerolog.Nop())

	assert.NotPanics(t, func() {
		p.Notify(game.Event{Kind: game.EventLocked})
		p.Close()
	})
	assert.Zero(t, p.mixer.Len())
}

func TestPlayerQueuesEventSounds(t *testing.T) {
	p := NewPlayer(1, zerolog.Nop())
	p.started = true // skip the device

	p.Notify(game.Event{Kind: game.EventSpawned})
	assert.Zero(t, p.mixer.Len(), "spawns are silent")

	p.Notify(game.Event{Kind: game.EventLocked})
	p.Notify(game.Event{Kind: game.EventLinesCleared, Lines: 2, Points: 2})
	assert.Equal(t, 2, p.mixer.Len())

	p.SetMuted(true)
	assert.True(t, p.Muted())
	p.Notify(game.Event{Kind: game.EventGameOver})
	assert.Equal(t, 2, p.mixer.Len())
}

func TestSoundFor(t *testing.T) {
	assert.Nil(t, soundFor(game.Event{Kind: game.EventSpawned}))
	for _, kind := range []game.EventKind{game.EventLocked, game.EventLinesCleared, game.EventGameOver, game.EventRestarted} {
		assert.NotNil(t, soundFor(game.Event{Kind: kind, Lines: 1}), kind.String())
	}
}
