// Package board stores the locked cells of a falling-block board and implements
// the legality check and full-row clearing with downward compaction.
package board

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/geom"
)

var (
	// ErrOutOfBounds is returned when a cell outside the board is locked.
	ErrOutOfBounds = errors.New("cell out of bounds")
	// ErrOccupied is returned when a cell that is already locked is locked again.
	ErrOccupied = errors.New("cell already occupied")
)

// cellKey packs an in-bounds coordinate into y*width + x
type cellKey int

// Cell is a locked cell and the kind of the piece it came from.
type Cell struct {
	Pos  geom.GridPos
	Kind geom.Kind
}

// Board is the set of locked cells on a fixed-size grid. No two locked cells
// share a coordinate and every locked cell lies inside the grid.
type Board struct {
	size  geom.Size
	cells *intmap.Map[cellKey, geom.Kind]
}

// New creates an empty board of the given size.
func New(size geom.Size) *Board {
	return &Board{
		size:  size,
		cells: intmap.New[cellKey, geom.Kind](size.Area()),
	}
}

// Size returns the board dimensions.
func (b *Board) Size() geom.Size {
	return b.size
}

// Len returns the number of locked cells.
func (b *Board) Len() int {
	return b.cells.Len()
}

func (b *Board) key(p geom.GridPos) cellKey {
	return cellKey(p.Y*b.size.Width + p.X)
}

func (b *Board) pos(k cellKey) geom.GridPos {
	return geom.GridPos{X: int(k) % b.size.Width, Y: int(k) / b.size.Width}
}

// Occupied reports whether p holds a locked cell. Coordinates outside the
// board are never occupied.
func (b *Board) Occupied(p geom.GridPos) bool {
	if !b.size.Contains(p) {
		return false
	}
	return b.cells.Has(b.key(p))
}

// KindAt returns the kind of the locked cell at p.
func (b *Board) KindAt(p geom.GridPos) (geom.Kind, bool) {
	if !b.size.Contains(p) {
		return 0, false
	}
	return b.cells.Get(b.key(p))
}

// Lock adds cells of the given kind to the board. Either every cell is added
// or, if one is out of bounds or already occupied, none is.
func (b *Board) Lock(kind geom.Kind, cells ...geom.GridPos) error {
	for i, p := range cells {
		if !b.size.Contains(p) {
			return fmt.Errorf("lock %v: %w", p, ErrOutOfBounds)
		}
		if b.cells.Has(b.key(p)) || slices.Contains(cells[:i], p) {
			return fmt.Errorf("lock %v: %w", p, ErrOccupied)
		}
	}

	for _, p := range cells {
		b.cells.Put(b.key(p), kind)
	}
	return nil
}

// Reset removes every locked cell.
func (b *Board) Reset() {
	b.cells.Clear()
}

// Cells iterates the locked cells ordered by row, then column.
func (b *Board) Cells() iter.Seq[Cell] {
	cells := make([]Cell, 0, b.cells.Len())
	b.cells.ForEach(func(k cellKey, kind geom.Kind) bool {
		cells = append(cells, Cell{Pos: b.pos(k), Kind: kind})
		return true
	})
	slices.SortFunc(cells, func(a, c Cell) int {
		return int(b.key(a.Pos) - b.key(c.Pos))
	})

	return func(yield func(Cell) bool) {
		for _, c := range cells {
			if !yield(c) {
				return
			}
		}
	}
}

// rowCounts returns the number of locked cells in each row.
func (b *Board) rowCounts() []int {
	counts := make([]int, b.size.Height)
	b.cells.ForEach(func(k cellKey, _ geom.Kind) bool {
		counts[int(k)/b.size.Width]++
		return true
	})
	return counts
}

// RowLen returns the number of locked cells in row y.
func (b *Board) RowLen(y int) int {
	if y < 0 || y >= b.size.Height {
		return 0
	}
	n := 0
	for x := range b.size.Width {
		if b.cells.Has(b.key(geom.GridPos{X: x, Y: y})) {
			n++
		}
	}
	return n
}
