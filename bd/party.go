package bd

import (
	"io"

	"github.com/gtank/ristretto255"

	"github.com/anupsv/wake-darkpool/internal/field"
	"github.com/anupsv/wake-darkpool/internal/pool"
)

// Party holds one participant's Burmester–Desmedt state across the two
// broadcast rounds. Field names mirror the original source's Party:
// Idx is the party's position in the ring, R its round-1 exponent, Z its
// round-1 broadcast share.
type Party struct {
	Idx int
	R   *ristretto255.Scalar
	Z   *ristretto255.Element
}

// NewParty creates a party at ring position idx. idx must be in [0, n)
// for an n-party exchange.
func NewParty(idx int) *Party {
	return &Party{Idx: idx}
}

// Round1 samples this party's exponent r and returns its broadcast share
// z = g^r.
func (p *Party) Round1(rand io.Reader) (*ristretto255.Element, error) {
	r, err := field.RandomScalar(rand)
	if err != nil {
		return nil, err
	}
	p.R = r
	p.Z = ristretto255.NewElement().ScalarBaseMult(r)
	return p.Z, nil
}

// Round2 computes this party's cross term x = (z_next - z_prev)^r given
// the full round-1 broadcast list zs, in ring order.
func (p *Party) Round2(zs []*ristretto255.Element) *ristretto255.Element {
	prev, next := field.Adjacent(zs, p.Idx)
	diff := ristretto255.NewElement().Subtract(next, prev)
	return ristretto255.NewElement().ScalarMult(p.R, diff)
}

// ComputeKey combines the round-1 broadcasts zs and round-2 cross terms xs
// (n of each, in ring order) into this party's view of the shared group
// key: key = z_prev^(r*n) + sum_{j=0}^{n-2} (n-1-j) * x[(idx+j) mod n].
// Every honest party computes the same value.
func (p *Party) ComputeKey(n int, zs, xs []*ristretto255.Element) *ristretto255.Element {
	prev, _ := field.Adjacent(zs, p.Idx)

	rn := pool.GetScalar().Multiply(p.R, field.ScalarFromUint64(uint64(n)))
	key := ristretto255.NewElement().ScalarMult(rn, prev)
	pool.PutScalar(rn)

	term := pool.GetElement()
	for j := 0; j <= n-2; j++ {
		coeff := field.ScalarFromUint64(uint64(n - 1 - j))
		term.ScalarMult(coeff, xs[(p.Idx+j)%n])
		key.Add(key, term)
	}
	pool.PutElement(term)
	return key
}
