package main

import (
	"math/rand/v2"
	"time"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/pipeline"
)

// botCommands are the commands a bot picks from, weighted by repetition.
var botCommands = []game.Command{
	game.MoveLeft, game.MoveLeft, game.MoveRight, game.MoveRight,
	game.Rotate, game.Rotate, game.SoftDrop, game.HardDrop,
}

// bot drives one engine with random input.
type bot struct {
	engine *game.Engine
	rng    *rand.Rand
	// pressRate is the chance of pressing a command on a given frame.
	pressRate float64
	frameTime time.Duration

	samples []time.Duration
}

func newBot(engine *game.Engine, seed uint64, pressRate float64, frameTime time.Duration) *bot {
	return &bot{
		engine:    engine,
		rng:       rand.New(rand.NewPCG(seed, seed+1)),
		pressRate: pressRate,
		frameTime: frameTime,
	}
}

// step presses at most one command and advances the engine by one frame.
func (b *bot) step() {
	if b.engine.State().Status() == game.GameOver {
		b.engine.Press(game.Restart)
	} else if b.rng.Float64() < b.pressRate {
		b.engine.Press(botCommands[b.rng.IntN(len(botCommands))])
	}

	start := time.Now()
	b.engine.Step(b.frameTime)
	b.samples = append(b.samples, time.Since(start))
}

// result summarizes the bot's session.
type result struct {
	counters game.Counters
	score    int
	samples  []time.Duration
	systems  []pipeline.SystemStats
}

func (b *bot) result() result {
	return result{
		counters: b.engine.State().Counters(),
		score:    b.engine.State().Score(),
		samples:  b.samples,
		systems:  b.engine.Stats().Systems,
	}
}
