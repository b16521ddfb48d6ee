package darkpoolsnark

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/frontend"

	"github.com/anupsv/wake-darkpool/internal/field"
)

// Verify checks proof against the expected image and the auxiliary
// challenge string, matching the original source's Gm17Darkpool::verify
// public-input ordering [hash_to_fp(aux), image].
func (p *Params) Verify(proof *SnarkProof, image fr.Element, aux string) error {
	auxFr := field.HashToFr(aux)
	if !auxFr.Equal(&proof.Aux) {
		return ErrAuxMismatch
	}
	if !image.Equal(&proof.Image) {
		return ErrImageMismatch
	}

	pubAssignment := &circuit{
		Aux:   auxFr,
		Image: image,
		Bits:  make([]frontend.Variable, p.N),
	}

	pubWitness, err := frontend.NewWitness(pubAssignment, ecc.BLS12_377.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return fmt.Errorf("darkpoolsnark: building public witness: %w", err)
	}

	if err := groth16.Verify(proof.Proof, p.vk, pubWitness); err != nil {
		return fmt.Errorf("%w: %v", ErrVerificationFailed, err)
	}
	return nil
}
