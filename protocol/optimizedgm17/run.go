package optimizedgm17

import (
	"io"

	"github.com/gtank/ristretto255"

	"github.com/anupsv/wake-darkpool/protocol"
)

// RunKeyExchange drives a complete Optimized-GM17 WAKE session for n
// parties: setup, round 1 (fused BD share + VK table), round 2 (BD payload
// + DLK+SNARK signature), peer verification, and final key derivation.
func RunKeyExchange(rand io.Reader, n int, minBal, upperbound uint64, balances []uint64) ([]*ristretto255.Element, error) {
	parties, err := Setup(rand, n, minBal, upperbound, balances)
	if err != nil {
		return nil, err
	}

	idxs := make([]int, n)
	zs := make([]*ristretto255.Element, n)
	for i, party := range parties {
		z, err := party.Round1(rand)
		if err != nil {
			return nil, err
		}
		idxs[i] = i
		zs[i] = z
	}
	if err := protocol.CheckBatchLength(n, len(zs)); err != nil {
		return nil, err
	}
	vk := protocol.NewVkTable(idxs, zs)

	msgs := make([]*protocol.OptimizedMessage, n)
	sigs := make([]*Signature, n)
	for i, party := range parties {
		msg, sig, err := party.Round2(rand, vk)
		if err != nil {
			return nil, err
		}
		msgs[i] = msg
		sigs[i] = sig
	}
	if err := protocol.CheckBatchLength(n, len(msgs)); err != nil {
		return nil, err
	}

	for _, party := range parties {
		for i := 0; i < n; i++ {
			if i == party.Idx {
				continue
			}
			if err := party.VerifyMessage(msgs[i], sigs[i]); err != nil {
				return nil, err
			}
		}
	}

	payloads := make([]*ristretto255.Element, n)
	for i, msg := range msgs {
		payloads[i] = msg.Payload
	}

	keys := make([]*ristretto255.Element, n)
	for i, party := range parties {
		keys[i] = party.ComputeKey(n, zs, payloads)
	}
	return keys, nil
}
