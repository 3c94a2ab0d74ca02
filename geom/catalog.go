package geom

import (
	"errors"
	"fmt"
)

// Kind identifies a piece kind by its index in a Catalog.
type Kind uint8

// Kinds of the standard catalog, in table order.
const (
	KindO Kind = iota
	KindI
	KindJ
	KindL
	KindS
	KindZ
	KindT
)

// KindCount is the number of kinds in the standard catalog.
const KindCount = 7

var kindNames = [KindCount]string{"O", "I", "J", "L", "S", "Z", "T"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// KindShapes is the ordered rotation table of one piece kind.
type KindShapes struct {
	Name      string
	Rotations []Shape
}

// ErrInvalidCatalog is wrapped by every NewCatalog validation failure.
var ErrInvalidCatalog = errors.New("invalid shape catalog")

// Catalog is the immutable table of piece kinds. A Catalog is built once and
// shared read-only by everything that needs shape data.
type Catalog struct {
	kinds []KindShapes
}

// NewCatalog validates the kind table and copies it into a Catalog.
// Each kind needs 1 to 4 rotations, every rotation must have four distinct
// cells and all rotations of a kind must be congruent.
func NewCatalog(kinds []KindShapes) (*Catalog, error) {
	if len(kinds) == 0 || len(kinds) > 256 {
		return nil, fmt.Errorf("%w: %d kinds", ErrInvalidCatalog, len(kinds))
	}

	copied := make([]KindShapes, len(kinds))
	for i, k := range kinds {
		if n := len(k.Rotations); n < 1 || n > 4 {
			return nil, fmt.Errorf("%w: kind %q has %d rotations", ErrInvalidCatalog, k.Name, n)
		}
		for r, shape := range k.Rotations {
			if !shape.distinct() {
				return nil, fmt.Errorf("%w: kind %q rotation %d repeats a cell", ErrInvalidCatalog, k.Name, r)
			}
			if !shape.Congruent(k.Rotations[0]) {
				return nil, fmt.Errorf("%w: kind %q rotation %d is not congruent to rotation 0", ErrInvalidCatalog, k.Name, r)
			}
		}
		copied[i] = KindShapes{
			Name:      k.Name,
			Rotations: append([]Shape(nil), k.Rotations...),
		}
	}

	return &Catalog{kinds: copied}, nil
}

// StandardCatalog returns the seven classic kinds O, I, J, L, S, Z, T with
// 1, 2, 4, 4, 2, 2 and 4 rotation states.
func StandardCatalog() *Catalog {
	c, err := NewCatalog(standardKinds())
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of kinds.
func (c *Catalog) Len() int {
	return len(c.kinds)
}

// Name returns the display name of kind k.
func (c *Catalog) Name(k Kind) string {
	return c.kinds[k].Name
}

// Rotations returns the number of rotation states of kind k.
func (c *Catalog) Rotations(k Kind) int {
	return len(c.kinds[k].Rotations)
}

// Shape returns rotation state rot of kind k. rot wraps modulo the number of states.
func (c *Catalog) Shape(k Kind, rot int) Shape {
	rotations := c.kinds[k].Rotations
	n := len(rotations)
	return rotations[((rot%n)+n)%n]
}

// Cells returns the absolute cells of kind k in rotation rot at origin.
func (c *Catalog) Cells(k Kind, rot int, origin GridPos) [4]GridPos {
	return c.Shape(k, rot).At(origin)
}

func standardKinds() []KindShapes {
	return []KindShapes{
		{Name: "O", Rotations: []Shape{
			{{1, 0}, {1, 1}, {2, 0}, {2, 1}},
		}},
		{Name: "I", Rotations: []Shape{
			{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
			{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		}},
		{Name: "J", Rotations: []Shape{
			{{0, 1}, {1, 1}, {2, 1}, {2, 0}},
			{{1, 0}, {1, 1}, {1, 2}, {0, 0}},
			{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
			{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		}},
		{Name: "L", Rotations: []Shape{
			{{0, 1}, {1, 1}, {2, 1}, {0, 0}},
			{{1, 0}, {1, 1}, {1, 2}, {0, 2}},
			{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
			{{1, 0}, {1, 1}, {1, 2}, {2, 0}},
		}},
		{Name: "S", Rotations: []Shape{
			{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
			{{1, 2}, {1, 1}, {2, 1}, {2, 0}},
		}},
		{Name: "Z", Rotations: []Shape{
			{{0, 1}, {1, 1}, {1, 0}, {2, 0}},
			{{2, 2}, {2, 1}, {1, 1}, {1, 0}},
		}},
		{Name: "T", Rotations: []Shape{
			{{0, 1}, {1, 1}, {2, 1}, {1, 0}},
			{{1, 0}, {1, 1}, {1, 2}, {0, 1}},
			{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
			{{1, 0}, {1, 1}, {1, 2}, {2, 1}},
		}},
	}
}
