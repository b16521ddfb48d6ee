package compilerbp

import (
	"io"

	"github.com/gtank/ristretto255"

	"github.com/anupsv/wake-darkpool/internal/field"
	"github.com/anupsv/wake-darkpool/internal/pool"
	"github.com/anupsv/wake-darkpool/proof/rangeproof"
	"github.com/anupsv/wake-darkpool/protocol"
)

// Party holds one participant's state for a Compiler-BP WAKE session:
// its public Bulletproofs commitment table (shared across all parties),
// its own secret balance and blinding, and the BD ephemerals it derives
// across rounds 2 and 3.
type Party struct {
	Idx         int
	MinBal      uint64
	Balance     uint64
	Blinding    *ristretto255.Scalar
	Commitments []*ristretto255.Element
	RangeParams *rangeproof.Params

	Nonces *protocol.Nonces
	R      *ristretto255.Scalar
	Z      *ristretto255.Element
}

// expectedCommitment reconstructs the commitment the range proof for peer
// idx must verify against: the setup-time commitment shifted by g^minBal,
// per the BP backend's asymmetric convention (SPEC_FULL §9 design note).
func (p *Party) expectedCommitment(idx int) *ristretto255.Element {
	minBalG := ristretto255.NewElement().ScalarMult(field.ScalarFromUint64(p.MinBal), field.Generator())
	return ristretto255.NewElement().Add(p.Commitments[idx], minBalG)
}

// Round1 samples this party's WAKE session nonce.
func (p *Party) Round1(rand io.Reader) (*ristretto255.Scalar, error) {
	return field.RandomScalar(rand)
}

// Round2 draws this party's BD round-1 exponent, publishes z_i = g^{r_i},
// and signs the (idx, 2, z_i, nonces) message with a range proof over its
// balance.
func (p *Party) Round2(rand io.Reader, nonces *protocol.Nonces) (*protocol.CompMessage, *rangeproof.Proof, error) {
	r, err := field.RandomScalar(rand)
	if err != nil {
		return nil, nil, err
	}
	p.R = r
	p.Z = ristretto255.NewElement().ScalarBaseMult(r)
	p.Nonces = nonces

	msg := &protocol.CompMessage{Idx: p.Idx, RoundIdx: 2, Payload: p.Z, Nonces: nonces}
	proof, err := p.RangeParams.Prove(rand, p.Balance, p.Blinding, msg.String())
	if err != nil {
		return nil, nil, err
	}
	return msg, proof, nil
}

// Round3 computes this party's BD cross term x_i = (z_next - z_prev)^{r_i}
// and signs (idx, 3, x_i, nonces) identically to Round2.
func (p *Party) Round3(rand io.Reader, zs []*ristretto255.Element) (*protocol.CompMessage, *rangeproof.Proof, error) {
	prev, next := field.Adjacent(zs, p.Idx)
	diff := ristretto255.NewElement().Subtract(next, prev)
	x := ristretto255.NewElement().ScalarMult(p.R, diff)

	msg := &protocol.CompMessage{Idx: p.Idx, RoundIdx: 3, Payload: x, Nonces: p.Nonces}
	proof, err := p.RangeParams.Prove(rand, p.Balance, p.Blinding, msg.String())
	if err != nil {
		return nil, nil, err
	}
	return msg, proof, nil
}

// VerifyMessage checks a peer's round message and attached range-proof
// signature: round number, nonce-table agreement, and the Bulletproofs
// verification itself against the peer's shifted commitment.
func (p *Party) VerifyMessage(msg *protocol.CompMessage, proof *rangeproof.Proof, wantRound int) error {
	if err := protocol.CheckRoundIdx(msg.RoundIdx, wantRound); err != nil {
		return err
	}
	if err := protocol.CheckNonces(msg.Nonces, p.Nonces); err != nil {
		return err
	}
	if err := p.RangeParams.Verify(proof, p.expectedCommitment(msg.Idx), msg.String()); err != nil {
		return protocol.ErrSignatureVerificationFail
	}
	return nil
}

// ComputeKey combines the round-2 BD shares zs and round-3 cross terms xs
// into this party's view of the shared group key (SPEC_FULL §4.5).
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
