package darkpoolsnark

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/frontend"

	"github.com/anupsv/wake-darkpool/internal/field"
)

// SnarkProof is a Groth16 proof that some committed value and blinding
// factor hash, under MiMC, to Image, bound to the auxiliary challenge
// string that produced Aux. Named generically (not Gm17Proof) since the
// backend is Groth16 — see doc.go.
type SnarkProof struct {
	Proof groth16.Proof
	Aux   fr.Element
	Image fr.Element
}

// Prove builds a proof that v (bit-decomposed to p.N bits) and blind hash
// to a public image under p.Constants, binding aux into the public input
// the same way the original source's Gm17Darkpool::prove does.
func (p *Params) Prove(v uint64, blind fr.Element, aux string) (*SnarkProof, error) {
	vFr := new(fr.Element).SetUint64(v)
	image := Evaluate(*vFr, blind, p.Constants)
	auxFr := field.HashToFr(aux)

	bits := field.FrToBitsLE(*vFr, p.N)
	bitVars := make([]frontend.Variable, p.N)
	for i, b := range bits {
		if b {
			bitVars[i] = 1
		} else {
			bitVars[i] = 0
		}
	}

	assignment := &circuit{
		Aux:   auxFr,
		Image: image,
		Bits:  bitVars,
		Blind: blind,
	}

	fullWitness, err := frontend.NewWitness(assignment, ecc.BLS12_377.ScalarField())
	if err != nil {
		return nil, fmt.Errorf("darkpoolsnark: building witness: %w", err)
	}

	proof, err := groth16.Prove(p.ccs, p.pk, fullWitness)
	if err != nil {
		return nil, fmt.Errorf("darkpoolsnark: proving: %w", err)
	}

	return &SnarkProof{Proof: proof, Aux: auxFr, Image: image}, nil
}
