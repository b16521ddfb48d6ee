package darkpoolsnark

import "github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

// Evaluate computes the same MiMC-Feistel cube permutation the circuit
// constrains, outside the circuit, so a prover can compute the public
// image before constructing a witness. Matches the original source's
// utility::mimc exactly: tmp1 = v + c_i; tmp2 = tmp1^3 + r; r = v; v = tmp2.
func Evaluate(v, r fr.Element, constants []fr.Element) fr.Element {
	for _, ci := range constants {
		var tmp1, cube, newV fr.Element
		tmp1.Add(&v, &ci)
		cube.Square(&tmp1)
		cube.Mul(&cube, &tmp1)
		newV.Add(&cube, &r)
		r = v
		v = newV
	}
	return v
}

// RandomConstants draws Rounds random field constants, matching the
// original source's Gm17Darkpool::new sampling fresh MiMC constants per
// instantiation rather than using a fixed, well-known round-constant table.
func RandomConstants(rand func() fr.Element) []fr.Element {
	out := make([]fr.Element, Rounds)
	for i := range out {
		out[i] = rand()
	}
	return out
}
