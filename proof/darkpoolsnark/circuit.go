package darkpoolsnark

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark/frontend"
)

// Rounds is the MiMC-Feistel cube permutation's round count, matching the
// original source's MIMC_ROUNDS.
const Rounds = 322

// circuit proves knowledge of bits (the little-endian bit decomposition of
// a value v) and a blinding scalar r such that mimc(v, r) == Image, where v
// is reconstructed from bits inside the circuit. Aux is a public input that
// is never constrained algebraically: it exists only so the verifier's
// public-input vector is bound to the specific auxiliary challenge string
// the proof was produced for, exactly as the original source's aux input.
type circuit struct {
	Aux   frontend.Variable `gnark:",public"`
	Image frontend.Variable `gnark:",public"`

	Bits  []frontend.Variable
	Blind frontend.Variable

	constants []fr.Element
}

// newCircuit builds an unassigned circuit template of bit-width n with the
// given round constants, suitable for frontend.Compile.
func newCircuit(n int, constants []fr.Element) *circuit {
	return &circuit{
		Bits:      make([]frontend.Variable, n),
		constants: constants,
	}
}

// Define reconstructs v from its bit decomposition (asserting each bit is
// boolean, as the original source's generate_constraints does), then runs
// the MiMC-Feistel permutation for Rounds rounds, asserting the final round
// output equals Image.
func (c *circuit) Define(api frontend.API) error {
	var v frontend.Variable = 0
	pow := frontend.Variable(1)
	for _, b := range c.Bits {
		api.AssertIsBoolean(b)
		v = api.Add(v, api.Mul(b, pow))
		pow = api.Mul(pow, 2)
	}

	r := c.Blind
	for _, ci := range c.constants {
		tmp1 := api.Add(v, ci)
		cube := api.Mul(api.Mul(tmp1, tmp1), tmp1)
		newV := api.Add(cube, r)
		r = v
		v = newV
	}

	api.AssertIsEqual(v, c.Image)
	return nil
}
