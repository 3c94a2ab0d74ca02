package board

import "github.com/plus3/blockfall/geom"

// Occupancy is the read-only view of locked cells consulted by IsLegal.
type Occupancy interface {
	Size() geom.Size
	Occupied(p geom.GridPos) bool
}

// IsLegal reports whether every candidate cell lies inside the board and none
// coincides with a locked cell.
func IsLegal(candidate []geom.GridPos, locked Occupancy) bool {
	size := locked.Size()
	for _, p := range candidate {
		if !size.Contains(p) || locked.Occupied(p) {
			return false
		}
	}
	return true
}
