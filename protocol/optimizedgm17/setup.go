package optimizedgm17

import (
	"fmt"
	"io"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	"github.com/anupsv/wake-darkpool/internal/field"
	"github.com/anupsv/wake-darkpool/proof/darkpoolsnark"
	"github.com/anupsv/wake-darkpool/protocol"
)

// Setup validates the session's balances, draws one independent darkpool
// SNARK CRS per party, samples each party's secret MiMC blinding factor,
// and computes each party's public image (SPEC_FULL §4.9 step 1-3, GM17
// backend, identical convention to protocol/compilergm17).
func Setup(rand io.Reader, n int, minBal, upperbound uint64, balances []uint64) ([]*Party, error) {
	if err := protocol.ValidateBalances(balances, minBal, n); err != nil {
		return nil, err
	}
	bits, err := field.UpperboundLog(upperbound)
	if err != nil {
		return nil, err
	}
	snarkParams, err := darkpoolsnark.SetupMany(bits, n)
	if err != nil {
		return nil, err
	}

	blinds := make([]fr.Element, n)
	images := make([]fr.Element, n)
	for j := range balances {
		if _, err := blinds[j].SetRandom(); err != nil {
			return nil, fmt.Errorf("optimizedgm17: sampling blinding factor: %w", err)
		}
		v := new(fr.Element).SetUint64(upperbound - (balances[j] - minBal))
		images[j] = darkpoolsnark.Evaluate(*v, blinds[j], snarkParams[j].Constants)
	}

	parties := make([]*Party, n)
	for j := range balances {
		parties[j] = &Party{
			Idx:        j,
			MinBal:     minBal,
			Upperbound: upperbound,
			Balance:    balances[j],
			Blind:      blinds[j],
			Images:     images,
			Snark:      snarkParams,
		}
	}
	return parties, nil
}
