package game

import (
	"time"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/geom"
	"github.com/rs/zerolog"
)

// Phase is the position of the game in its spawn/fall/lock/clear cycle.
type Phase uint8

const (
	PhaseSpawning Phase = iota
	PhaseFalling
	PhaseLocking
	PhaseLineClearing
	PhaseGameOver
	PhaseRestarting
)

var phaseNames = [...]string{"spawning", "falling", "locking", "line-clearing", "game-over", "restarting"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

var down = geom.Pos(0, -1)

// Counters are session statistics. They survive restarts.
type Counters struct {
	Pieces    int
	Lines     int
	GamesOver int
	// Clears[n] counts clear events removing n rows.
	Clears [5]int
}

// State is the single owner of all mutable game data: locked cells, the
// active piece, the score and the fall timer. Pipeline systems receive it by
// exclusive reference; nothing else may mutate it while the engine runs.
type State struct {
	catalog *geom.Catalog
	board   *board.Board
	anchor  geom.GridPos
	random  Randomizer
	logger  zerolog.Logger

	phase     Phase
	active    ActivePiece
	hasActive bool
	score     Score
	fall      FallTimer
	counters  Counters

	// valid for the current frame only
	pressed       CommandSet
	lockRequested bool
	cleared       int
	events        []Event
}

// NewState validates cfg and creates a state in PhaseSpawning with an empty board.
func NewState(cfg Config, opts ...Option) (*State, error) {
	return newState(cfg, buildOptions(cfg, opts))
}

func newState(cfg Config, o options) (*State, error) {
	if err := cfg.Validate(o.catalog); err != nil {
		return nil, err
	}

	return &State{
		catalog: o.catalog,
		board:   board.New(cfg.Size()),
		anchor:  cfg.Anchor(),
		random:  o.random,
		logger:  o.logger,
		phase:   PhaseSpawning,
		fall:    FallTimer{Interval: cfg.FallInterval},
	}, nil
}

// Catalog returns the shape catalog.
func (s *State) Catalog() *geom.Catalog { return s.catalog }

// Board returns the locked cells.
func (s *State) Board() *board.Board { return s.board }

// Phase returns the current phase.
func (s *State) Phase() Phase { return s.phase }

// Score returns the accumulated score.
func (s *State) Score() int { return s.score.Total() }

// Counters returns the session statistics.
func (s *State) Counters() Counters { return s.counters }

// Anchor returns the spawn origin.
func (s *State) Anchor() geom.GridPos { return s.anchor }

// Status maps the phase to Gaming or GameOver.
func (s *State) Status() Status {
	if s.phase == PhaseGameOver {
		return GameOver
	}
	return Gaming
}

// Active returns the falling piece, if any.
func (s *State) Active() (ActivePiece, bool) {
	return s.active, s.hasActive
}

// ActiveCells returns the absolute cells of the falling piece, if any.
func (s *State) ActiveCells() ([4]geom.GridPos, bool) {
	if !s.hasActive {
		return [4]geom.GridPos{}, false
	}
	return s.active.Cells(s.catalog), true
}

// LockRequested reports whether a failed downward move asked for a lock this frame.
func (s *State) LockRequested() bool {
	return s.lockRequested
}

func (s *State) emit(event Event) {
	s.events = append(s.events, event)
}

func (s *State) controllable() bool {
	return s.hasActive && s.phase == PhaseFalling
}

func (s *State) legal(p ActivePiece) bool {
	cells := p.Cells(s.catalog)
	return board.IsLegal(cells[:], s.board)
}

// Spawn places a uniformly random kind at the spawn anchor in rotation 0.
func (s *State) Spawn() bool {
	return s.SpawnKind(geom.Kind(s.random.IntN(s.catalog.Len())))
}

// SpawnKind places kind at the spawn anchor in rotation 0 and starts it
// falling. If the piece overlaps a locked cell the game is over; the piece
// stays in place but accepts no further moves. It reports whether play continues.
func (s *State) SpawnKind(kind geom.Kind) bool {
	s.active = ActivePiece{Kind: kind, Origin: s.anchor}
	s.hasActive = true
	s.counters.Pieces++
	s.emit(Event{Kind: EventSpawned, Piece: kind})

	for _, p := range s.active.Cells(s.catalog) {
		if s.board.Occupied(p) {
			s.phase = PhaseGameOver
			s.counters.GamesOver++
			s.emit(Event{Kind: EventGameOver, Piece: kind})
			s.logger.Info().
				Str("kind", kind.String()).
				Int("score", s.score.Total()).
				Int("locked", s.board.Len()).
				Msg("game over")
			return false
		}
	}

	s.phase = PhaseFalling
	s.logger.Debug().Str("kind", kind.String()).Stringer("origin", s.anchor).Msg("spawn")
	return true
}

// Translate moves the falling piece by d if the destination is legal.
func (s *State) Translate(d geom.GridPos) bool {
	if !s.controllable() {
		return false
	}
	next := s.active.Translated(d)
	if !s.legal(next) {
		return false
	}
	s.active = next
	return true
}

// MoveLeft shifts the falling piece one column left if legal.
func (s *State) MoveLeft() bool {
	return s.Translate(geom.Pos(-1, 0))
}

// MoveRight shifts the falling piece one column right if legal.
func (s *State) MoveRight() bool {
	return s.Translate(geom.Pos(1, 0))
}

// SoftDrop moves the falling piece one row down. When that is illegal the
// piece is resting and a lock is requested, exactly like a failed gravity step.
func (s *State) SoftDrop() bool {
	return s.fallOne()
}

// Gravity applies one gravity step; see SoftDrop.
func (s *State) Gravity() bool {
	return s.fallOne()
}

func (s *State) fallOne() bool {
	if !s.controllable() {
		return false
	}
	if s.Translate(down) {
		return true
	}
	s.lockRequested = true
	return false
}

// DropDistance returns how many rows the falling piece can descend.
func (s *State) DropDistance() int {
	if !s.controllable() {
		return 0
	}
	distance := 0
	for s.legal(s.active.Translated(geom.Pos(0, -(distance + 1)))) {
		distance++
	}
	return distance
}

// GhostCells returns where the falling piece would land on a hard drop.
func (s *State) GhostCells() ([4]geom.GridPos, bool) {
	if !s.controllable() {
		return [4]geom.GridPos{}, false
	}
	return s.active.Translated(geom.Pos(0, -s.DropDistance())).Cells(s.catalog), true
}

// HardDrop moves the falling piece down by the largest legal distance in one
// move and returns that distance. It never locks by itself.
func (s *State) HardDrop() int {
	distance := s.DropDistance()
	if distance > 0 {
		s.active = s.active.Translated(geom.Pos(0, -distance))
	}
	return distance
}

// Rotate advances the falling piece to its next rotation state about the
// same origin if the result is legal. There is no wall kick.
func (s *State) Rotate() bool {
	if !s.controllable() {
		return false
	}
	next := s.active.Rotated(s.catalog)
	legal := s.legal(next)
	s.logger.Debug().
		Str("kind", next.Kind.String()).
		Int("from", s.active.Rotation).
		Int("to", next.Rotation).
		Stringer("origin", next.Origin).
		Bool("legal", legal).
		Msg("rotate")
	if !legal {
		return false
	}
	s.active = next
	return true
}

// Apply executes one player command and reports whether it changed the state.
func (s *State) Apply(cmd Command) bool {
	switch cmd {
	case Rotate:
		return s.Rotate()
	case SoftDrop:
		return s.SoftDrop()
	case HardDrop:
		return s.HardDrop() > 0
	case MoveLeft:
		return s.MoveLeft()
	case MoveRight:
		return s.MoveRight()
	case Restart:
		return s.Restart()
	}
	return false
}

// Lock merges the falling piece into the board and moves to PhaseLocking.
func (s *State) Lock() bool {
	if !s.controllable() {
		return false
	}

	cells := s.active.Cells(s.catalog)
	if err := s.board.Lock(s.active.Kind, cells[:]...); err != nil {
		s.logger.Error().Err(err).Str("kind", s.active.Kind.String()).Msg("lock rejected")
		return false
	}

	s.hasActive = false
	s.lockRequested = false
	s.phase = PhaseLocking
	s.emit(Event{Kind: EventLocked, Piece: s.active.Kind})
	s.logger.Debug().
		Str("kind", s.active.Kind.String()).
		Int("rotation", s.active.Rotation).
		Stringer("origin", s.active.Origin).
		Msg("lock")
	return true
}

// ClearLines removes full rows after a lock, compacts the board and moves to
// PhaseSpawning. It returns the number of rows removed.
func (s *State) ClearLines() int {
	if s.phase != PhaseLocking {
		return 0
	}
	s.phase = PhaseLineClearing

	n := len(s.board.ClearFullRows())
	s.cleared = n
	if n > 0 {
		s.counters.Lines += n
		s.counters.Clears[min(n, len(s.counters.Clears)-1)]++
	}

	s.phase = PhaseSpawning
	return n
}

// awardClear hands this frame's clear to the scoring component.
func (s *State) awardClear() {
	if s.cleared == 0 {
		return
	}
	points := s.score.OnLinesCleared(s.cleared)
	s.emit(Event{Kind: EventLinesCleared, Lines: s.cleared, Points: points})
	s.logger.Info().
		Int("rows", s.cleared).
		Int("points", points).
		Int("score", s.score.Total()).
		Msg("lines cleared")
}

// Restart is only honoured in PhaseGameOver. It empties the board, zeroes the
// score, resets the fall timer and immediately spawns a new piece.
func (s *State) Restart() bool {
	if s.phase != PhaseGameOver {
		return false
	}
	s.phase = PhaseRestarting

	s.board.Reset()
	s.hasActive = false
	s.score.Reset()
	s.fall.Reset()
	s.lockRequested = false
	s.cleared = 0
	s.emit(Event{Kind: EventRestarted})
	s.logger.Info().Msg("restart")

	s.phase = PhaseSpawning
	s.Spawn()
	return true
}

// Snapshot is a copy of the state for display and inspection.
type Snapshot struct {
	Size        geom.Size
	Phase       Phase
	Status      Status
	Score       int
	Active      ActivePiece
	HasActive   bool
	ActiveCells []geom.GridPos
	Locked      []board.Cell
	Counters    Counters
	FallElapsed time.Duration
}

// Snapshot copies the current state.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Size:        s.board.Size(),
		Phase:       s.phase,
		Status:      s.Status(),
		Score:       s.score.Total(),
		Active:      s.active,
		HasActive:   s.hasActive,
		Locked:      make([]board.Cell, 0, s.board.Len()),
		Counters:    s.counters,
		FallElapsed: s.fall.Elapsed(),
	}
	if cells, ok := s.ActiveCells(); ok {
		snap.ActiveCells = cells[:]
	}
	for c := range s.board.Cells() {
		snap.Locked = append(snap.Locked, c)
	}
	return snap
}
