// Package geom holds the integer grid coordinate type, board dimensions and the
// immutable catalog of piece shapes.
package geom

import "fmt"

// GridPos is an integer grid coordinate. It is used both as an offset relative
// to a piece origin and as an absolute board cell. Y grows upward; row 0 is the floor.
type GridPos struct {
	X, Y int
}

// Pos is shorthand for GridPos{X: x, Y: y}.
func Pos(x, y int) GridPos {
	return GridPos{X: x, Y: y}
}

// Add returns the component-wise sum of p and o.
func (p GridPos) Add(o GridPos) GridPos {
	return GridPos{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the component-wise difference p - o.
func (p GridPos) Sub(o GridPos) GridPos {
	return GridPos{X: p.X - o.X, Y: p.Y - o.Y}
}

func (p GridPos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Size is the fixed width and height of a board.
type Size struct {
	Width  int
	Height int
}

// Contains reports whether p lies in [0,Width) x [0,Height).
func (s Size) Contains(p GridPos) bool {
	return p.X >= 0 && p.X < s.Width && p.Y >= 0 && p.Y < s.Height
}

// Area returns the number of cells on a board of this size.
func (s Size) Area() int {
	return s.Width * s.Height
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}
