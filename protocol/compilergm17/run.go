package compilergm17

import (
	"io"

	"github.com/gtank/ristretto255"

	"github.com/anupsv/wake-darkpool/proof/darkpoolsnark"
	"github.com/anupsv/wake-darkpool/protocol"
)

// RunKeyExchange drives a complete Compiler-GM17 WAKE session for n
// parties: setup, round 1 (nonces), round 2 (BD share + SNARK signature),
// round 3 (BD cross term + SNARK signature), peer verification after each
// broadcast round, and final key derivation.
func RunKeyExchange(rand io.Reader, n int, minBal, upperbound uint64, balances []uint64) ([]*ristretto255.Element, error) {
	parties, err := Setup(rand, n, minBal, upperbound, balances)
	if err != nil {
		return nil, err
	}

	idxs := make([]int, n)
	nonceScalars := make([]*ristretto255.Scalar, n)
	for i, party := range parties {
		nonce, err := party.Round1(rand)
		if err != nil {
			return nil, err
		}
		idxs[i] = i
		nonceScalars[i] = nonce
	}
	nonces := protocol.NewNonces(idxs, nonceScalars)

	round2Msgs := make([]*protocol.CompMessage, n)
	round2Proofs := make([]*darkpoolsnark.SnarkProof, n)
	for i, party := range parties {
		msg, proof, err := party.Round2(rand, nonces)
		if err != nil {
			return nil, err
		}
		round2Msgs[i] = msg
		round2Proofs[i] = proof
	}
	if err := protocol.CheckBatchLength(n, len(round2Msgs)); err != nil {
		return nil, err
	}

	for _, party := range parties {
		for i := 0; i < n; i++ {
			if i == party.Idx {
				continue
			}
			if err := party.VerifyMessage(round2Msgs[i], round2Proofs[i], 2); err != nil {
				return nil, err
			}
		}
	}

	zs := make([]*ristretto255.Element, n)
	for i, msg := range round2Msgs {
		zs[i] = msg.Payload
	}

	round3Msgs := make([]*protocol.CompMessage, n)
	round3Proofs := make([]*darkpoolsnark.SnarkProof, n)
	for i, party := range parties {
		msg, proof, err := party.Round3(rand, zs)
		if err != nil {
			return nil, err
		}
		round3Msgs[i] = msg
		round3Proofs[i] = proof
	}
	if err := protocol.CheckBatchLength(n, len(round3Msgs)); err != nil {
		return nil, err
	}

	for _, party := range parties {
		for i := 0; i < n; i++ {
			if i == party.Idx {
				continue
			}
			if err := party.VerifyMessage(round3Msgs[i], round3Proofs[i], 3); err != nil {
				return nil, err
			}
		}
	}

	xs := make([]*ristretto255.Element, n)
	for i, msg := range round3Msgs {
		xs[i] = msg.Payload
	}

	keys := make([]*ristretto255.Element, n)
	for i, party := range parties {
		keys[i] = party.ComputeKey(n, zs, xs)
	}
	return keys, nil
}
