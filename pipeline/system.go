// Package pipeline runs an ordered list of systems against a single owned world
// value once per frame, then flushes the work they deferred.
package pipeline

// System is one stage of the frame pipeline. Systems run in registration order
// and receive the world by exclusive reference through the frame.
type System[W any] interface {
	Execute(frame *UpdateFrame[W])
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc[W any] func(frame *UpdateFrame[W])

// Execute calls f(frame).
func (f SystemFunc[W]) Execute(frame *UpdateFrame[W]) {
	f(frame)
}
