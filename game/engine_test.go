package game_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	updates  [][]game.CellUpdate
	statuses []game.Status
	scores   []int
	events   []game.Event
}

func (r *recordingSink) CellsChanged(updates []game.CellUpdate) {
	r.updates = append(r.updates, updates)
}

func (r *recordingSink) StatusChanged(status game.Status) {
	r.statuses = append(r.statuses, status)
}

func (r *recordingSink) ScoreChanged(score int) {
	r.scores = append(r.scores, score)
}

func (r *recordingSink) Notify(event game.Event) {
	r.events = append(r.events, event)
}

func (r *recordingSink) eventKinds() []game.EventKind {
	kinds := make([]game.EventKind, len(r.events))
	for i, e := range r.events {
		kinds[i] = e.Kind
	}
	return kinds
}

func newEngine(t *testing.T, cfg game.Config, kinds ...geom.Kind) (*game.Engine, *recordingSink) {
	t.Helper()
	sink := &recordingSink{}
	engine, err := game.New(cfg,
		game.WithRandom(game.NewSequence(kinds...)),
		game.WithSink(sink),
	)
	require.NoError(t, err)
	return engine, sink
}

func origin(t *testing.T, engine *game.Engine) geom.GridPos {
	t.Helper()
	piece, ok := engine.State().Active()
	require.True(t, ok)
	return piece.Origin
}

func TestFirstStepSpawnsAndPublishes(t *testing.T) {
	engine, sink := newEngine(t, game.DefaultConfig(), geom.KindO)
	engine.Step(0)

	assert.Equal(t, geom.Pos(3, 18), origin(t, engine))
	require.Len(t, sink.updates, 1)
	assert.Equal(t, []game.CellUpdate{
		{Pos: geom.Pos(4, 18), Present: true, Active: true, Kind: geom.KindO},
		{Pos: geom.Pos(5, 18), Present: true, Active: true, Kind: geom.KindO},
		{Pos: geom.Pos(4, 19), Present: true, Active: true, Kind: geom.KindO},
		{Pos: geom.Pos(5, 19), Present: true, Active: true, Kind: geom.KindO},
	}, sink.updates[0])
	assert.Equal(t, []game.Status{game.Gaming}, sink.statuses)
	assert.Equal(t, []int{0}, sink.scores)
	assert.Equal(t, []game.EventKind{game.EventSpawned}, sink.eventKinds())

	engine.Step(0)
	assert.Len(t, sink.updates, 1, "nothing changed, nothing published")
	assert.Len(t, sink.statuses, 1)
}

func TestMovePublishesOnlyChangedCells(t *testing.T) {
	engine, sink := newEngine(t, game.DefaultConfig(), geom.KindO)
	engine.Step(0)

	engine.Press(game.MoveLeft)
	engine.Step(0)

	require.Len(t, sink.updates, 2)
	assert.ElementsMatch(t, []game.CellUpdate{
		{Pos: geom.Pos(3, 18), Present: true, Active: true, Kind: geom.KindO},
		{Pos: geom.Pos(3, 19), Present: true, Active: true, Kind: geom.KindO},
		{Pos: geom.Pos(5, 18), Kind: geom.KindO},
		{Pos: geom.Pos(5, 19), Kind: geom.KindO},
	}, sink.updates[1])
}

func TestGravityFollowsFallInterval(t *testing.T) {
	engine, _ := newEngine(t, game.DefaultConfig(), geom.KindT)
	engine.Step(0)

	engine.Step(799 * time.Millisecond)
	assert.Equal(t, geom.Pos(3, 18), origin(t, engine))

	engine.Step(time.Millisecond)
	assert.Equal(t, geom.Pos(3, 17), origin(t, engine))

	engine.Step(5 * time.Second)
	assert.Equal(t, geom.Pos(3, 16), origin(t, engine), "one drop per frame")
}

func TestOneCommandPerFrame(t *testing.T) {
	engine, _ := newEngine(t, game.DefaultConfig(), geom.KindO)
	engine.Step(0)

	engine.Press(game.MoveRight)
	engine.Press(game.MoveLeft)
	engine.Step(0)
	assert.Equal(t, geom.Pos(2, 18), origin(t, engine), "move-left outranks move-right")

	engine.Press(game.MoveLeft)
	engine.Press(game.HardDrop)
	engine.Step(0)
	assert.Equal(t, geom.Pos(2, 0), origin(t, engine), "hard-drop outranks move-left")

	engine.Press(game.MoveRight)
	engine.Step(0)
	assert.Equal(t, geom.Pos(3, 0), origin(t, engine), "discarded edges are not replayed")
}

func TestSoftDropOnRestLocksAndSpawns(t *testing.T) {
	engine, sink := newEngine(t, game.DefaultConfig(), geom.KindO, geom.KindT)
	engine.Step(0)

	engine.Press(game.HardDrop)
	engine.Step(0)
	engine.Press(game.SoftDrop)
	engine.Step(0)

	state := engine.State()
	assert.Equal(t, 4, state.Board().Len())
	piece, ok := state.Active()
	require.True(t, ok)
	assert.Equal(t, geom.KindT, piece.Kind)
	assert.Equal(t, game.PhaseFalling, state.Phase())
	assert.Equal(t, []game.EventKind{game.EventSpawned, game.EventLocked, game.EventSpawned}, sink.eventKinds())

	last := sink.updates[len(sink.updates)-1]
	for _, u := range last {
		if u.Pos.Y == 0 {
			assert.False(t, u.Active, "locked cells are published as inactive")
			assert.True(t, u.Present)
		}
	}
}

func TestGravityLockSuppressesInput(t *testing.T) {
	engine, _ := newEngine(t, game.DefaultConfig(), geom.KindO, geom.KindO)
	engine.Step(0)
	engine.Press(game.HardDrop)
	engine.Step(0)

	engine.Press(game.MoveLeft)
	engine.Step(game.DefaultFallInterval)

	state := engine.State()
	assert.Equal(t, 4, state.Board().Len())
	for c := range state.Board().Cells() {
		assert.Contains(t, []int{4, 5}, c.Pos.X, "locked where gravity found it")
	}
	assert.Equal(t, geom.Pos(3, 18), origin(t, engine), "the new piece ignored the suppressed command")
}

// lineConfig is a narrow board where every horizontal I fills a row.
func lineConfig() game.Config {
	cfg := game.DefaultConfig()
	cfg.Width = 4
	cfg.Height = 8
	return cfg
}

func TestLineClearScoring(t *testing.T) {
	engine, sink := newEngine(t, lineConfig(), geom.KindI)
	engine.Step(0)

	for range 3 {
		engine.Press(game.HardDrop)
		engine.Step(0)
		engine.Press(game.SoftDrop)
		engine.Step(0)
	}

	state := engine.State()
	assert.Equal(t, 3, state.Score())
	assert.Zero(t, state.Board().Len())
	assert.Equal(t, 3, state.Counters().Lines)
	assert.Equal(t, []int{0, 1, 2, 3}, sink.scores)

	var cleared []game.Event
	for _, e := range sink.events {
		if e.Kind == game.EventLinesCleared {
			cleared = append(cleared, e)
		}
	}
	require.Len(t, cleared, 3)
	assert.Equal(t, game.Event{Kind: game.EventLinesCleared, Lines: 1, Points: 1}, cleared[0])
}

func TestDoubleClearScoresTwo(t *testing.T) {
	engine, _ := newEngine(t, lineConfig(), geom.KindO)
	state := engine.State()
	for y := range 2 {
		require.NoError(t, state.Board().Lock(geom.KindI, geom.Pos(0, y), geom.Pos(3, y)))
	}
	require.NoError(t, state.Board().Lock(geom.KindJ, geom.Pos(0, 2)))
	engine.Step(0)

	engine.Press(game.HardDrop)
	engine.Step(0)
	engine.Press(game.SoftDrop)
	engine.Step(0)

	assert.Equal(t, 2, state.Score())
	require.Equal(t, 1, state.Board().Len())
	kind, ok := state.Board().KindAt(geom.Pos(0, 0))
	require.True(t, ok, "the row above the cleared pair drops to the floor")
	assert.Equal(t, geom.KindJ, kind)
}

func TestGameOverAndRestart(t *testing.T) {
	engine, sink := newEngine(t, game.DefaultConfig(), geom.KindO)
	state := engine.State()
	cells := state.Catalog().Cells(geom.KindO, 0, state.Anchor())
	require.NoError(t, state.Board().Lock(geom.KindZ, cells[:]...))

	engine.Step(0)
	assert.Equal(t, game.GameOver, state.Status())
	assert.Equal(t, []game.Status{game.GameOver}, sink.statuses)

	engine.Press(game.MoveLeft)
	engine.Step(time.Second)
	assert.Equal(t, geom.Pos(3, 18), origin(t, engine), "no movement after game over")

	engine.Press(game.Restart)
	engine.Step(0)
	assert.Equal(t, game.Gaming, state.Status())
	assert.Zero(t, state.Board().Len())
	assert.Zero(t, state.Score())
	assert.Equal(t, []game.Status{game.GameOver, game.Gaming}, sink.statuses)
	assert.Equal(t, []game.EventKind{
		game.EventSpawned, game.EventGameOver, game.EventRestarted, game.EventSpawned,
	}, sink.eventKinds())
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	engine, sink := newEngine(t, game.DefaultConfig(), geom.KindO)
	engine.Step(0)
	engine.Press(game.Restart)
	engine.Step(0)

	assert.Equal(t, game.PhaseFalling, engine.State().Phase())
	assert.Equal(t, []game.EventKind{game.EventSpawned}, sink.eventKinds())
}

func TestEngineStats(t *testing.T) {
	engine, _ := newEngine(t, game.DefaultConfig(), geom.KindO)
	for range 5 {
		engine.Step(16 * time.Millisecond)
	}

	stats := engine.Stats()
	assert.Equal(t, 9, stats.SystemCount)
	assert.Equal(t, uint64(5), stats.Frames)
	assert.Equal(t, int64(45), stats.TotalExecutions)

	names := make([]string, len(stats.Systems))
	for i, s := range stats.Systems {
		names[i] = s.Name
	}
	assert.Equal(t, []string{
		"PollSystem", "RestartSystem", "GravitySystem", "InputSystem", "ApplySystem",
		"LockSystem", "LineClearSystem", "ScoreSystem", "SpawnSystem",
	}, names)
}

func TestEngineRunStopsOnCancel(t *testing.T) {
	engine, _ := newEngine(t, game.DefaultConfig(), geom.KindO)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	engine.Run(ctx, time.Millisecond)

	assert.Positive(t, engine.Stats().Frames)
	assert.True(t, engine.Snapshot().HasActive)
}
