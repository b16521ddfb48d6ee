package darkpoolsnark

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

func TestEvaluateDeterministic(t *testing.T) {
	constants := make([]fr.Element, Rounds)
	for i := range constants {
		constants[i].SetUint64(uint64(i) + 1)
	}

	var v, r fr.Element
	v.SetUint64(42)
	r.SetUint64(7)

	a := Evaluate(v, r, constants)
	b := Evaluate(v, r, constants)
	if !a.Equal(&b) {
		t.Fatalf("Evaluate not deterministic for identical input")
	}

	var r2 fr.Element
	r2.SetUint64(8)
	c := Evaluate(v, r2, constants)
	if a.Equal(&c) {
		t.Fatalf("Evaluate collided across distinct blinding factors")
	}
}

func TestSetupProveVerifyRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping Groth16 setup/prove/verify round trip in short mode: circuit has 322 MiMC rounds")
	}

	params, err := Setup(8)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}

	var blind fr.Element
	if _, err := blind.SetRandom(); err != nil {
		t.Fatalf("SetRandom: %v", err)
	}

	proof, err := params.Prove(200, blind, "round1##0##deadbeef")
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	if err := params.Verify(proof, proof.Image, "round1##0##deadbeef"); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestVerifyRejectsWrongAux(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping Groth16 setup/prove/verify round trip in short mode: circuit has 322 MiMC rounds")
	}

	params, err := Setup(8)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}

	var blind fr.Element
	if _, err := blind.SetRandom(); err != nil {
		t.Fatalf("SetRandom: %v", err)
	}

	proof, err := params.Prove(200, blind, "aux-one")
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	if err := params.Verify(proof, proof.Image, "aux-two"); err == nil {
		t.Fatalf("expected verification failure for mismatched aux")
	}
}
