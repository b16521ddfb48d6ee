package optimizedbp

import (
	"io"

	"github.com/gtank/ristretto255"

	"github.com/anupsv/wake-darkpool/internal/field"
	"github.com/anupsv/wake-darkpool/proof/rangeproof"
	"github.com/anupsv/wake-darkpool/protocol"
)

// Setup validates the session's balances, derives each party's secret
// blinding factor and public Pedersen commitment
// C_j = g^{upperbound-balances[j]} * h^{blinding_j}, identical to
// compilerbp's convention (SPEC_FULL §4.9 step 1-3, BP backend).
func Setup(rand io.Reader, n int, minBal, upperbound uint64, balances []uint64) ([]*Party, error) {
	if err := protocol.ValidateBalances(balances, minBal, n); err != nil {
		return nil, err
	}
	rangeParams, err := rangeproof.NewParams(minBal, upperbound)
	if err != nil {
		return nil, err
	}

	blindings := make([]*ristretto255.Scalar, n)
	commitments := make([]*ristretto255.Element, n)
	for j := range balances {
		blinding, err := field.RandomScalar(rand)
		if err != nil {
			return nil, err
		}
		blindings[j] = blinding

		v := upperbound - balances[j]
		c := ristretto255.NewElement().ScalarMult(field.ScalarFromUint64(v), field.Generator())
		c.Add(c, ristretto255.NewElement().ScalarMult(blinding, field.BlindingGenerator()))
		commitments[j] = c
	}

	parties := make([]*Party, n)
	for j := range balances {
		parties[j] = &Party{
			Idx:         j,
			MinBal:      minBal,
			Balance:     balances[j],
			Blinding:    blindings[j],
			Commitments: commitments,
			RangeParams: rangeParams,
		}
	}
	return parties, nil
}
