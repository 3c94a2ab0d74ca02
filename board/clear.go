package board

import (
	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/geom"
)

// FullRows returns, in ascending order, every row whose width cells are all locked.
func (b *Board) FullRows() []int {
	var full []int
	for y, n := range b.rowCounts() {
		if n == b.size.Width {
			full = append(full, y)
		}
	}
	return full
}

// ClearRows removes every locked cell in rows and compacts the remaining rows
// toward y=0. Rows are walked bottom to top; surviving cells move to a target
// row that advances only after a row contributed at least one cell, so gaps
// close and vertical order among surviving rows is kept. It returns the number
// of cells removed.
func (b *Board) ClearRows(rows []int) int {
	if len(rows) == 0 {
		return 0
	}

	removed := make([]bool, b.size.Height)
	for _, y := range rows {
		if y >= 0 && y < b.size.Height {
			removed[y] = true
		}
	}

	before := b.cells.Len()
	compacted := intmap.New[cellKey, geom.Kind](b.size.Area())
	target := 0
	for y := range b.size.Height {
		if removed[y] {
			continue
		}

		contributed := false
		for x := range b.size.Width {
			kind, ok := b.cells.Get(b.key(geom.GridPos{X: x, Y: y}))
			if !ok {
				continue
			}
			compacted.Put(b.key(geom.GridPos{X: x, Y: target}), kind)
			contributed = true
		}
		if contributed {
			target++
		}
	}

	b.cells = compacted
	return before - compacted.Len()
}

// ClearFullRows clears every full row and returns the rows that were removed.
func (b *Board) ClearFullRows() []int {
	full := b.FullRows()
	b.ClearRows(full)
	return full
}
