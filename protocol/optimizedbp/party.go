package optimizedbp

import (
	"io"

	"github.com/gtank/ristretto255"

	"github.com/anupsv/wake-darkpool/internal/field"
	"github.com/anupsv/wake-darkpool/internal/pool"
	"github.com/anupsv/wake-darkpool/proof/dlk"
	"github.com/anupsv/wake-darkpool/proof/rangeproof"
	"github.com/anupsv/wake-darkpool/protocol"
)

// Party holds one participant's state for an Optimized-BP WAKE session.
// X is both the BD round-1 exponent and the DLK witness; Z = g^X is both
// the BD share and the DLK statement.
type Party struct {
	Idx         int
	MinBal      uint64
	Balance     uint64
	Blinding    *ristretto255.Scalar
	Commitments []*ristretto255.Element
	RangeParams *rangeproof.Params

	X  *ristretto255.Scalar
	Z  *ristretto255.Element
	Vk *protocol.VkTable
}

// expectedCommitment reconstructs the commitment the range proof for peer
// idx must verify against: the setup-time commitment shifted by g^minBal,
// the same BP-backend convention compilerbp uses.
func (p *Party) expectedCommitment(idx int) *ristretto255.Element {
	minBalG := ristretto255.NewElement().ScalarMult(field.ScalarFromUint64(p.MinBal), field.Generator())
	return ristretto255.NewElement().Add(p.Commitments[idx], minBalG)
}

// Round1 draws this party's shared BD/DLK exponent and publishes
// z_i = g^{x_i}.
func (p *Party) Round1(rand io.Reader) (*ristretto255.Element, error) {
	x, err := field.RandomScalar(rand)
	if err != nil {
		return nil, err
	}
	p.X = x
	p.Z = ristretto255.NewElement().ScalarBaseMult(x)
	return p.Z, nil
}

// Round2 computes this party's BD round-2 payload, constructs the
// (idx, payload, vk) message, and produces the DLK+range-proof signature
// bundle per SPEC_FULL §4.8: the DLK aux binds the message and the
// sender's own (unshifted) commitment; the range-proof aux binds the
// message and the DLK proof.
func (p *Party) Round2(rand io.Reader, vk *protocol.VkTable) (*protocol.OptimizedMessage, *Signature, error) {
	p.Vk = vk
	prev, next := field.Adjacent(vk.Zs, p.Idx)
	diff := ristretto255.NewElement().Subtract(next, prev)
	payload := ristretto255.NewElement().ScalarMult(p.X, diff)

	msg := &protocol.OptimizedMessage{Idx: p.Idx, Payload: payload, Vk: vk}

	dlkAux := msg.String() + field.ElementHex(p.Commitments[p.Idx])
	dlkProof, err := dlk.Prove(rand, p.X, p.Z, dlkAux)
	if err != nil {
		return nil, nil, err
	}

	rangeAux := msg.String() + dlkProof.String()
	rangeProof, err := p.RangeParams.Prove(rand, p.Balance, p.Blinding, rangeAux)
	if err != nil {
		return nil, nil, err
	}

	return msg, &Signature{Dlk: dlkProof, Range: rangeProof}, nil
}

// VerifyMessage checks a peer's round-2 message and signature bundle: VK
// table agreement, the DLK proof against the peer's round-1 ephemeral,
// then the Bulletproofs range proof against the peer's shifted
// commitment, in that order.
func (p *Party) VerifyMessage(msg *protocol.OptimizedMessage, sig *Signature) error {
	if err := protocol.CheckVk(msg.Vk, p.Vk); err != nil {
		return err
	}

	peerZ := p.Vk.Zs[msg.Idx]
	dlkAux := msg.String() + field.ElementHex(p.Commitments[msg.Idx])
	if err := dlk.Verify(sig.Dlk, peerZ, dlkAux); err != nil {
		return protocol.ErrSignatureVerificationFail
	}

	rangeAux := msg.String() + sig.Dlk.String()
	if err := p.RangeParams.Verify(sig.Range, p.expectedCommitment(msg.Idx), rangeAux); err != nil {
		return protocol.ErrSignatureVerificationFail
	}
	return nil
}

// ComputeKey combines the round-1 BD shares zs and round-2 payloads into
// this party's view of the shared group key (SPEC_FULL §4.5, r_i := X).
func (p *Party) ComputeKey(n int, zs, payloads []*ristretto255.Element) *ristretto255.Element {
	prev, _ := field.Adjacent(zs, p.Idx)

	rn := pool.GetScalar().Multiply(p.X, field.ScalarFromUint64(uint64(n)))
	key := ristretto255.NewElement().ScalarMult(rn, prev)
	pool.PutScalar(rn)

	term := pool.GetElement()
	for j := 0; j <= n-2; j++ {
		coeff := field.ScalarFromUint64(uint64(n - 1 - j))
		term.ScalarMult(coeff, payloads[(p.Idx+j)%n])
		key.Add(key, term)
	}
	pool.PutElement(term)
	return key
}
