package game

import "github.com/plus3/blockfall/geom"

// ActivePiece is the piece under gravity and player control.
type ActivePiece struct {
	Kind     geom.Kind
	Rotation int
	Origin   geom.GridPos
}

// Cells returns the absolute cells of the piece.
func (p ActivePiece) Cells(catalog *geom.Catalog) [4]geom.GridPos {
	return catalog.Cells(p.Kind, p.Rotation, p.Origin)
}

// Translated returns the piece moved by d.
func (p ActivePiece) Translated(d geom.GridPos) ActivePiece {
	p.Origin = p.Origin.Add(d)
	return p
}

// Rotated returns the piece in its next rotation state about the same origin.
func (p ActivePiece) Rotated(catalog *geom.Catalog) ActivePiece {
	p.Rotation = (p.Rotation + 1) % catalog.Rotations(p.Kind)
	return p
}
