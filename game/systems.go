package game

import "github.com/plus3/blockfall/pipeline"

// Frame is the pipeline frame type used by the game systems.
type Frame = pipeline.UpdateFrame[State]

// PollSystem drains the input queue and resets the per-frame flags.
type PollSystem struct {
	Queue *InputQueue
}

func (sys *PollSystem) Execute(frame *Frame) {
	s := frame.World
	s.pressed = sys.Queue.Drain()
	s.lockRequested = false
	s.cleared = 0
}

// RestartSystem honours a restart request while the game is over.
type RestartSystem struct{}

func (sys *RestartSystem) Execute(frame *Frame) {
	s := frame.World
	if s.pressed.Has(Restart) {
		s.Restart()
	}
}

// GravitySystem drops the falling piece one row each time the fall timer
// completes. A blocked drop requests a lock.
type GravitySystem struct{}

func (sys *GravitySystem) Execute(frame *Frame) {
	s := frame.World
	if !s.controllable() {
		return
	}
	if s.fall.Tick(frame.DeltaTime) {
		s.Gravity()
	}
}

// InputSystem applies the single highest-priority command pressed this frame.
// It is skipped once gravity has asked for a lock.
type InputSystem struct{}

func (sys *InputSystem) Execute(frame *Frame) {
	s := frame.World
	if s.lockRequested || !s.controllable() {
		return
	}
	if cmd, ok := s.pressed.Next(); ok {
		s.Apply(cmd)
	}
}

// ApplySystem propagates the frame's accepted moves to the sink. Publication
// is deferred so the sink sees the board after lock, clear and respawn.
type ApplySystem struct {
	publisher *publisher
}

func (sys *ApplySystem) Execute(frame *Frame) {
	s := frame.World
	frame.Commands.Defer(func() {
		sys.publisher.publish(s)
	})
}

// LockSystem merges a resting piece into the board.
type LockSystem struct{}

func (sys *LockSystem) Execute(frame *Frame) {
	s := frame.World
	if s.lockRequested {
		s.Lock()
	}
}

// LineClearSystem clears full rows after a lock in the same frame.
type LineClearSystem struct{}

func (sys *LineClearSystem) Execute(frame *Frame) {
	s := frame.World
	if s.phase == PhaseLocking {
		s.ClearLines()
	}
}

// ScoreSystem scores the rows cleared this frame.
type ScoreSystem struct{}

func (sys *ScoreSystem) Execute(frame *Frame) {
	frame.World.awardClear()
}

// SpawnSystem spawns the next piece once the board has settled.
type SpawnSystem struct{}

func (sys *SpawnSystem) Execute(frame *Frame) {
	s := frame.World
	if s.phase == PhaseSpawning {
		s.Spawn()
	}
}
