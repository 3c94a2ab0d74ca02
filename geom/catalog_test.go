package geom_test

import (
	"testing"

	"github.com/plus3/blockfall/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardCatalogRotationCounts(t *testing.T) {
	catalog := geom.StandardCatalog()
	require.Equal(t, geom.KindCount, catalog.Len())

	expected := map[geom.Kind]int{
		geom.KindO: 1,
		geom.KindI: 2,
		geom.KindJ: 4,
		geom.KindL: 4,
		geom.KindS: 2,
		geom.KindZ: 2,
		geom.KindT: 4,
	}
	for kind, count := range expected {
		assert.Equal(t, count, catalog.Rotations(kind), "kind %s", kind)
		assert.Equal(t, kind.String(), catalog.Name(kind))
	}
}

func TestStandardCatalogRotationsAreCongruent(t *testing.T) {
	catalog := geom.StandardCatalog()
	for k := range catalog.Len() {
		kind := geom.Kind(k)
		first := catalog.Shape(kind, 0)
		for r := 1; r < catalog.Rotations(kind); r++ {
			assert.True(t, first.Congruent(catalog.Shape(kind, r)), "kind %s rotation %d", kind, r)
		}
	}
}

func TestCatalogShapeWrapsRotation(t *testing.T) {
	catalog := geom.StandardCatalog()
	assert.Equal(t, catalog.Shape(geom.KindT, 0), catalog.Shape(geom.KindT, 4))
	assert.Equal(t, catalog.Shape(geom.KindT, 3), catalog.Shape(geom.KindT, -1))
	assert.Equal(t, catalog.Shape(geom.KindO, 0), catalog.Shape(geom.KindO, 7))
}

func TestCatalogCells(t *testing.T) {
	catalog := geom.StandardCatalog()
	cells := catalog.Cells(geom.KindO, 0, geom.Pos(3, 18))
	assert.ElementsMatch(t, []geom.GridPos{{4, 18}, {4, 19}, {5, 18}, {5, 19}}, cells[:])
}

func TestNewCatalogValidation(t *testing.T) {
	square := geom.Shape{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	line := geom.Shape{{0, 0}, {1, 0}, {2, 0}, {3, 0}}

	tests := []struct {
		name  string
		kinds []geom.KindShapes
	}{
		{"empty", nil},
		{"no rotations", []geom.KindShapes{{Name: "X"}}},
		{"too many rotations", []geom.KindShapes{{Name: "X", Rotations: []geom.Shape{square, square, square, square, square}}}},
		{"repeated cell", []geom.KindShapes{{Name: "X", Rotations: []geom.Shape{{{0, 0}, {0, 0}, {1, 0}, {1, 1}}}}}},
		{"incongruent rotation", []geom.KindShapes{{Name: "X", Rotations: []geom.Shape{square, line}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := geom.NewCatalog(tt.kinds)
			assert.ErrorIs(t, err, geom.ErrInvalidCatalog)
		})
	}

	catalog, err := geom.NewCatalog([]geom.KindShapes{{Name: "square", Rotations: []geom.Shape{square}}})
	require.NoError(t, err)
	assert.Equal(t, 1, catalog.Len())
}

func TestNewCatalogCopiesInput(t *testing.T) {
	rotations := []geom.Shape{{{0, 0}, {1, 0}, {2, 0}, {3, 0}}}
	catalog, err := geom.NewCatalog([]geom.KindShapes{{Name: "line", Rotations: rotations}})
	require.NoError(t, err)

	rotations[0] = geom.Shape{{9, 9}, {9, 8}, {9, 7}, {9, 6}}
	assert.Equal(t, geom.Pos(0, 0), catalog.Shape(0, 0)[0])
}

func TestShapeCanonical(t *testing.T) {
	s := geom.Shape{{0, 0}, {1, 0}, {1, 1}, {2, 1}}
	z := geom.Shape{{0, 1}, {1, 1}, {1, 0}, {2, 0}}
	moved := geom.Shape{{5, 5}, {6, 5}, {6, 6}, {7, 6}}
	square := geom.Shape{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

	assert.True(t, s.Congruent(moved))
	assert.True(t, s.Congruent(z), "reflections are isometries")
	assert.False(t, s.Congruent(square))
}

func TestShapeBounds(t *testing.T) {
	lo, hi := geom.Shape{{2, 0}, {2, 1}, {2, 2}, {2, 3}}.Bounds()
	assert.Equal(t, geom.Pos(2, 0), lo)
	assert.Equal(t, geom.Pos(2, 3), hi)
}

func TestGridPosArithmetic(t *testing.T) {
	a := geom.Pos(3, -2)
	b := geom.Pos(-1, 5)
	assert.Equal(t, geom.Pos(2, 3), a.Add(b))
	assert.Equal(t, geom.Pos(4, -7), a.Sub(b))
	assert.Equal(t, a, a.Add(b).Sub(b))
	assert.Equal(t, "(3,-2)", a.String())
}

func TestSizeContains(t *testing.T) {
	size := geom.Size{Width: 10, Height: 20}
	assert.True(t, size.Contains(geom.Pos(0, 0)))
	assert.True(t, size.Contains(geom.Pos(9, 19)))
	assert.False(t, size.Contains(geom.Pos(-1, 0)))
	assert.False(t, size.Contains(geom.Pos(10, 0)))
	assert.False(t, size.Contains(geom.Pos(0, 20)))
	assert.False(t, size.Contains(geom.Pos(0, -1)))
	assert.Equal(t, 200, size.Area())
}
