package pipeline

import "time"

// UpdateFrame is handed to every system during one pass of the pipeline.
type UpdateFrame[W any] struct {
	// Index counts frames from zero.
	Index     uint64
	DeltaTime time.Duration
	Commands  *Commands
	World     *W
}

func newUpdateFrame[W any](index uint64, dt time.Duration, world *W, commands *Commands) *UpdateFrame[W] {
	return &UpdateFrame[W]{
		Index:     index,
		DeltaTime: dt,
		Commands:  commands,
		World:     world,
	}
}
