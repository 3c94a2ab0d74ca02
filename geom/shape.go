package geom

import (
	"cmp"
	"slices"
)

// Shape is one rotation state of a piece kind: exactly four cell offsets
// relative to the piece origin.
type Shape [4]GridPos

// At returns the absolute cells of the shape placed at origin.
func (s Shape) At(origin GridPos) [4]GridPos {
	var cells [4]GridPos
	for i, offset := range s {
		cells[i] = offset.Add(origin)
	}
	return cells
}

// Bounds returns the smallest and largest offset on each axis.
func (s Shape) Bounds() (lo, hi GridPos) {
	lo, hi = s[0], s[0]
	for _, p := range s[1:] {
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
		hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
	}
	return lo, hi
}

// isometries of the square lattice that fix the origin
var isometries = [8]func(GridPos) GridPos{
	func(p GridPos) GridPos { return GridPos{p.X, p.Y} },
	func(p GridPos) GridPos { return GridPos{-p.X, p.Y} },
	func(p GridPos) GridPos { return GridPos{p.X, -p.Y} },
	func(p GridPos) GridPos { return GridPos{-p.X, -p.Y} },
	func(p GridPos) GridPos { return GridPos{p.Y, p.X} },
	func(p GridPos) GridPos { return GridPos{-p.Y, p.X} },
	func(p GridPos) GridPos { return GridPos{p.Y, -p.X} },
	func(p GridPos) GridPos { return GridPos{-p.Y, -p.X} },
}

func comparePos(a, b GridPos) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}

// normalized translates the shape so its bounding box starts at (0,0) and
// sorts the cells, giving a representation independent of offset and order.
func (s Shape) normalized() Shape {
	lo, _ := s.Bounds()
	var out Shape
	for i, p := range s {
		out[i] = p.Sub(lo)
	}
	slices.SortFunc(out[:], comparePos)
	return out
}

// Canonical returns a representative shared by every shape congruent to s
// under translation, rotation and reflection.
func (s Shape) Canonical() Shape {
	var best Shape
	for i, iso := range isometries {
		var mapped Shape
		for j, p := range s {
			mapped[j] = iso(p)
		}
		mapped = mapped.normalized()
		if i == 0 || slices.CompareFunc(mapped[:], best[:], comparePos) < 0 {
			best = mapped
		}
	}
	return best
}

// Congruent reports whether s and o cover the same four-cell pattern up to an isometry.
func (s Shape) Congruent(o Shape) bool {
	return s.Canonical() == o.Canonical()
}

// distinct reports whether the four offsets are pairwise different.
func (s Shape) distinct() bool {
	for i := range s {
		for j := i + 1; j < len(s); j++ {
			if s[i] == s[j] {
				return false
			}
		}
	}
	return true
}
