// Package game implements the falling-block rules: spawning, gravity, player
// commands, locking, line clears, scoring, game over and restart. All state
// lives in one State value advanced by an ordered pipeline of systems.
package game

import (
	"context"
	"time"

	"github.com/plus3/blockfall/geom"
	"github.com/plus3/blockfall/pipeline"
	"github.com/rs/zerolog"
)

type options struct {
	catalog *geom.Catalog
	random  Randomizer
	logger  zerolog.Logger
	sink    Sink
}

// Option customises NewState and New.
type Option func(*options)

// WithCatalog replaces the standard shape catalog.
func WithCatalog(catalog *geom.Catalog) Option {
	return func(o *options) { o.catalog = catalog }
}

// WithRandom sets the source used to pick piece kinds.
func WithRandom(random Randomizer) Option {
	return func(o *options) { o.random = random }
}

// WithLogger sets the engine logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithSink sets the consumer of cell, status, score and event updates.
func WithSink(sink Sink) Option {
	return func(o *options) { o.sink = sink }
}

func buildOptions(cfg Config, opts []Option) options {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.catalog == nil {
		o.catalog = geom.StandardCatalog()
	}
	if o.random == nil {
		o.random = newRandomizer(cfg.Seed)
	}
	if o.sink == nil {
		o.sink = NopSink{}
	}
	return o
}

// Engine wires a State to the frame pipeline:
//
//	poll -> restart -> gravity -> input -> apply -> lock -> line clear -> score -> spawn
//
// followed by the deferred publication to the sink.
type Engine struct {
	state     *State
	input     *InputQueue
	scheduler *pipeline.Scheduler[State]
}

// New creates an engine. The first piece spawns on the first Step.
func New(cfg Config, opts ...Option) (*Engine, error) {
	o := buildOptions(cfg, opts)
	state, err := newState(cfg, o)
	if err != nil {
		return nil, err
	}

	input := &InputQueue{}
	scheduler := pipeline.NewScheduler(state)
	scheduler.Register(&PollSystem{Queue: input})
	scheduler.Register(&RestartSystem{})
	scheduler.Register(&GravitySystem{})
	scheduler.Register(&InputSystem{})
	scheduler.Register(&ApplySystem{publisher: newPublisher(o.sink, cfg.Size())})
	scheduler.Register(&LockSystem{})
	scheduler.Register(&LineClearSystem{})
	scheduler.Register(&ScoreSystem{})
	scheduler.Register(&SpawnSystem{})

	return &Engine{
		state:     state,
		input:     input,
		scheduler: scheduler,
	}, nil
}

// Register appends a system that runs after the game systems every frame.
// Extra systems may read the state but should leave its mutation to Press.
func (e *Engine) Register(system pipeline.System[State]) {
	e.scheduler.Register(system)
}

// Press queues a command edge for the next frame. Safe from any goroutine.
func (e *Engine) Press(cmd Command) {
	e.input.Press(cmd)
}

// Step runs one frame.
func (e *Engine) Step(dt time.Duration) {
	e.scheduler.Once(dt)
}

// Run steps the engine every interval until ctx is cancelled.
func (e *Engine) Run(ctx context.Context, interval time.Duration) {
	e.scheduler.Run(ctx, interval)
}

// State returns the engine state. Only touch it from the goroutine driving the engine.
func (e *Engine) State() *State {
	return e.state
}

// Snapshot copies the current state.
func (e *Engine) Snapshot() Snapshot {
	return e.state.Snapshot()
}

// Stats returns the pipeline execution statistics.
func (e *Engine) Stats() *pipeline.SchedulerStats {
	return e.scheduler.GetStats()
}
