package game_test

import (
	"sync"
	"testing"

	"github.com/plus3/blockfall/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	for _, cmd := range []game.Command{game.Rotate, game.SoftDrop, game.HardDrop, game.MoveLeft, game.MoveRight, game.Restart} {
		parsed, err := game.ParseCommand(cmd.String())
		require.NoError(t, err)
		assert.Equal(t, cmd, parsed)
	}

	_, err := game.ParseCommand("jump")
	assert.Error(t, err)
}

func TestCommandSetPriority(t *testing.T) {
	var set game.CommandSet
	_, ok := set.Next()
	assert.False(t, ok)

	set = set.Add(game.MoveRight).Add(game.MoveLeft)
	cmd, ok := set.Next()
	require.True(t, ok)
	assert.Equal(t, game.MoveLeft, cmd)

	set = set.Add(game.HardDrop).Add(game.SoftDrop)
	cmd, _ = set.Next()
	assert.Equal(t, game.SoftDrop, cmd)

	set = set.Add(game.Rotate)
	cmd, _ = set.Next()
	assert.Equal(t, game.Rotate, cmd)

	restartOnly := game.CommandSet(0).Add(game.Restart)
	assert.True(t, restartOnly.Has(game.Restart))
	_, ok = restartOnly.Next()
	assert.False(t, ok, "restart is not a play command")
}

func TestInputQueueConcurrentPress(t *testing.T) {
	var queue game.InputQueue
	var wg sync.WaitGroup
	for _, cmd := range []game.Command{game.Rotate, game.MoveLeft, game.HardDrop} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			queue.Press(cmd)
		}()
	}
	wg.Wait()

	pending := queue.Drain()
	assert.True(t, pending.Has(game.Rotate))
	assert.True(t, pending.Has(game.MoveLeft))
	assert.True(t, pending.Has(game.HardDrop))
	assert.False(t, pending.Has(game.MoveRight))

	assert.Zero(t, queue.Drain())
}
