package game

import (
	"github.com/plus3/blockfall/geom"
)

// Status is the coarse game state shown by frontends.
type Status uint8

const (
	Gaming Status = iota
	GameOver
)

func (s Status) String() string {
	if s == GameOver {
		return "GameOver"
	}
	return "Gaming"
}

// CellUpdate reports that a board coordinate changed. Present cells carry the
// kind of their piece; Active marks cells of the falling piece.
type CellUpdate struct {
	Pos     geom.GridPos
	Present bool
	Active  bool
	Kind    geom.Kind
}

// EventKind enumerates discrete game events.
type EventKind uint8

const (
	EventSpawned EventKind = iota
	EventLocked
	EventLinesCleared
	EventGameOver
	EventRestarted
)

var eventNames = [...]string{"spawned", "locked", "lines-cleared", "game-over", "restarted"}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// Event is a discrete game event. Lines and Points are set for EventLinesCleared.
type Event struct {
	Kind   EventKind
	Piece  geom.Kind
	Lines  int
	Points int
}

// Sink consumes the authoritative game output. All methods are called from the
// goroutine driving the engine, at the end of a frame.
type Sink interface {
	// CellsChanged receives every coordinate whose presence, activity or kind changed.
	CellsChanged(updates []CellUpdate)
	StatusChanged(status Status)
	ScoreChanged(score int)
	Notify(event Event)
}

// NopSink discards everything. Embed it to implement only part of Sink.
type NopSink struct{}

func (NopSink) CellsChanged([]CellUpdate) {}
func (NopSink) StatusChanged(Status)      {}
func (NopSink) ScoreChanged(int)          {}
func (NopSink) Notify(Event)              {}

// MultiSink fans output out to several sinks in order.
type MultiSink []Sink

func (m MultiSink) CellsChanged(updates []CellUpdate) {
	for _, s := range m {
		s.CellsChanged(updates)
	}
}

func (m MultiSink) StatusChanged(status Status) {
	for _, s := range m {
		s.StatusChanged(status)
	}
}

func (m MultiSink) ScoreChanged(score int) {
	for _, s := range m {
		s.ScoreChanged(score)
	}
}

func (m MultiSink) Notify(event Event) {
	for _, s := range m {
		s.Notify(event)
	}
}
