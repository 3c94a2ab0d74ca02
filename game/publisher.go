package game

import (
	"slices"

	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/geom"
)

// shownCell is what the sink was last told about a coordinate
type shownCell struct {
	active bool
	kind   geom.Kind
}

// publisher diffs the board against what the sink last received.
type publisher struct {
	sink   Sink
	width  int
	shown  *intmap.Map[int, shownCell]
	status Status
	score  int
	primed bool
}

func newPublisher(sink Sink, size geom.Size) *publisher {
	return &publisher{
		sink:  sink,
		width: size.Width,
		shown: intmap.New[int, shownCell](size.Area()),
	}
}

func (p *publisher) key(pos geom.GridPos) int {
	return pos.Y*p.width + pos.X
}

func (p *publisher) pos(k int) geom.GridPos {
	return geom.GridPos{X: k % p.width, Y: k / p.width}
}

// publish sends the changes since the previous call, then the queued events.
func (p *publisher) publish(s *State) {
	current := intmap.New[int, shownCell](p.shown.Len() + 4)
	for c := range s.board.Cells() {
		current.Put(p.key(c.Pos), shownCell{kind: c.Kind})
	}
	if s.hasActive {
		for _, pos := range s.active.Cells(s.catalog) {
			if s.board.Size().Contains(pos) {
				current.Put(p.key(pos), shownCell{active: true, kind: s.active.Kind})
			}
		}
	}

	var updates []CellUpdate
	current.ForEach(func(k int, cell shownCell) bool {
		if prev, ok := p.shown.Get(k); !ok || prev != cell {
			updates = append(updates, CellUpdate{Pos: p.pos(k), Present: true, Active: cell.active, Kind: cell.kind})
		}
		return true
	})
	p.shown.ForEach(func(k int, cell shownCell) bool {
		if !current.Has(k) {
			updates = append(updates, CellUpdate{Pos: p.pos(k), Kind: cell.kind})
		}
		return true
	})
	p.shown = current

	if len(updates) > 0 {
		slices.SortFunc(updates, func(a, b CellUpdate) int {
			return p.key(a.Pos) - p.key(b.Pos)
		})
		p.sink.CellsChanged(updates)
	}

	status := s.Status()
	if !p.primed || status != p.status {
		p.status = status
		p.sink.StatusChanged(status)
	}
	if score := s.score.Total(); !p.primed || score != p.score {
		p.score = score
		p.sink.ScoreChanged(score)
	}
	p.primed = true

	for _, event := range s.events {
		p.sink.Notify(event)
	}
	s.events = s.events[:0]
}
