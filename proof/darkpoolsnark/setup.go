package darkpoolsnark

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
)

// Params holds one party's independently generated darkpool SNARK CRS: its
// own MiMC round constants and its own Groth16 proving/verifying keys,
// matching the original source's per-party setup_gm17_single_party. Each
// darkpool party gets a distinct Params value rather than sharing one CRS
// across the session.
type Params struct {
	N         int
	Constants []fr.Element

	ccs constraint.ConstraintSystem
	pk  groth16.ProvingKey
	vk  groth16.VerifyingKey
}

// Setup builds a single party's CRS for a darkpool circuit of bit-width n.
func Setup(n int) (*Params, error) {
	constants := make([]fr.Element, Rounds)
	for i := range constants {
		if _, err := constants[i].SetRandom(); err != nil {
			return nil, fmt.Errorf("darkpoolsnark: sampling mimc constant: %w", err)
		}
	}

	tpl := newCircuit(n, constants)
	ccs, err := frontend.Compile(ecc.BLS12_377.ScalarField(), r1cs.NewBuilder, tpl)
	if err != nil {
		return nil, fmt.Errorf("darkpoolsnark: compiling circuit: %w", err)
	}

	pk, vk, err := groth16.Setup(ccs)
	if err != nil {
		return nil, fmt.Errorf("darkpoolsnark: groth16 setup: %w", err)
	}

	return &Params{N: n, Constants: constants, ccs: ccs, pk: pk, vk: vk}, nil
}

// SetupMany builds `parties` independent CRSs, one per party, matching the
// original source's setup_gm17 sweep over setup_gm17_single_party.
func SetupMany(n, parties int) ([]*Params, error) {
	out := make([]*Params, parties)
	for i := range out {
		p, err := Setup(n)
		if err != nil {
			return nil, fmt.Errorf("darkpoolsnark: setting up party %d: %w", i, err)
		}
		out[i] = p
	}
	return out, nil
}
