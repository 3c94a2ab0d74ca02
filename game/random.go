package game

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/geom"
)

// Randomizer picks piece kinds. *rand.Rand satisfies it.
type Randomizer interface {
	IntN(n int) int
}

func newRandomizer(seed uint64) Randomizer {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Sequence is a Randomizer that cycles through a fixed list of kinds.
type Sequence struct {
	kinds []geom.Kind
	next  int
}

// NewSequence returns a Sequence yielding kinds in order, repeating forever.
func NewSequence(kinds ...geom.Kind) *Sequence {
	if len(kinds) == 0 {
		kinds = []geom.Kind{geom.KindO}
	}
	return &Sequence{kinds: kinds}
}

// IntN returns the next kind of the sequence, reduced modulo n.
func (s *Sequence) IntN(n int) int {
	k := int(s.kinds[s.next%len(s.kinds)]) % n
	s.next++
	return k
}
