package game

import (
	"fmt"
	"math/bits"
	"sync"
)

// Command is a discrete player input. Play commands are declared in priority
// order: when several arrive in the same frame the earliest declared wins.
type Command uint8

const (
	Rotate Command = iota
	SoftDrop
	HardDrop
	MoveLeft
	MoveRight
	// Restart is only honoured while the game is over.
	Restart

	commandCount
)

var commandNames = [commandCount]string{
	Rotate:    "rotate",
	SoftDrop:  "soft-drop",
	HardDrop:  "hard-drop",
	MoveLeft:  "move-left",
	MoveRight: "move-right",
	Restart:   "restart",
}

func (c Command) String() string {
	if c < commandCount {
		return commandNames[c]
	}
	return fmt.Sprintf("Command(%d)", uint8(c))
}

// ParseCommand maps a command name back to its Command.
func ParseCommand(name string) (Command, error) {
	for i, n := range commandNames {
		if n == name {
			return Command(i), nil
		}
	}
	return 0, fmt.Errorf("unknown command %q", name)
}

// CommandSet is a set of commands as a bit mask.
type CommandSet uint8

const playCommands = CommandSet(1<<Restart - 1)

// Add returns the set with cmd added.
func (s CommandSet) Add(cmd Command) CommandSet {
	return s | 1<<cmd
}

// Has reports whether cmd is in the set.
func (s CommandSet) Has(cmd Command) bool {
	return s&(1<<cmd) != 0
}

// Next returns the highest-priority play command in the set.
func (s CommandSet) Next() (Command, bool) {
	play := s & playCommands
	if play == 0 {
		return 0, false
	}
	return Command(bits.TrailingZeros8(uint8(play))), true
}

// InputQueue collects command edges from any goroutine until the pipeline
// drains them once per frame.
type InputQueue struct {
	mu      sync.Mutex
	pending CommandSet
}

// Press records one input edge. Pressing the same command twice before the
// next drain has no further effect.
func (q *InputQueue) Press(cmd Command) {
	if cmd >= commandCount {
		return
	}
	q.mu.Lock()
	q.pending = q.pending.Add(cmd)
	q.mu.Unlock()
}

// Drain returns and clears the pending commands.
func (q *InputQueue) Drain() CommandSet {
	q.mu.Lock()
	defer q.mu.Unlock()
	pending := q.pending
	q.pending = 0
	return pending
}
