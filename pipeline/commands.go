package pipeline

// Commands buffers work that must only run after every system of the frame
// has finished, so it always observes the fully updated world.
type Commands struct {
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues fn for the end of the frame. Deferred functions run in the
// order they were queued; functions queued while flushing run in the same flush.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued functions.
func (c *Commands) Len() int {
	return len(c.defers)
}

// Flush runs every queued function and resets the buffer.
func (c *Commands) Flush() {
	for i := 0; i < len(c.defers); i++ {
		c.defers[i]()
		c.defers[i] = nil
	}
	c.defers = c.defers[:0]
}
