package rangeproof

import (
	"fmt"

	"github.com/gtank/ristretto255"

	"github.com/anupsv/wake-darkpool/internal/field"
)

// generators holds the bit-commitment generator vectors G, H (length n) and
// the two Pedersen base points g, h, analogous to the original source's
// PedersenGens + BulletproofGens pairing but derived here by hashing
// indexed domain labels into the group instead of drawing from a
// precomputed generator table.
type generators struct {
	g, h *ristretto255.Element
	G, H []*ristretto255.Element
}

func newGenerators(n int) *generators {
	gens := &generators{
		g: field.Generator(),
		h: field.BlindingGenerator(),
		G: make([]*ristretto255.Element, n),
		H: make([]*ristretto255.Element, n),
	}
	for i := 0; i < n; i++ {
		gens.G[i] = field.HashToElement(fmt.Sprintf("wake-darkpool bulletproofs G %d", i))
		gens.H[i] = field.HashToElement(fmt.Sprintf("wake-darkpool bulletproofs H %d", i))
	}
	return gens
}
