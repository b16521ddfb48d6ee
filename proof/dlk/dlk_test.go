package dlk

import (
	"crypto/rand"
	"testing"

	"github.com/gtank/ristretto255"

	"github.com/anupsv/wake-darkpool/internal/field"
)

func TestProveVerifyRoundTrip(t *testing.T) {
	witness, err := field.RandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	y := ristretto255.NewElement().ScalarBaseMult(witness)

	proof, err := Prove(rand.Reader, witness, y, "test-aux-string")
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	if err := Verify(proof, y, "test-aux-string"); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestVerifyRejectsWrongAux(t *testing.T) {
	witness, err := field.RandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	y := ristretto255.NewElement().ScalarBaseMult(witness)

	proof, err := Prove(rand.Reader, witness, y, "aux-one")
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	if err := Verify(proof, y, "aux-two"); err == nil {
		t.Fatalf("expected verification failure for mismatched aux")
	}
}

func TestVerifyRejectsWrongStatement(t *testing.T) {
	witness, err := field.RandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	y := ristretto255.NewElement().ScalarBaseMult(witness)

	proof, err := Prove(rand.Reader, witness, y, "aux")
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	other, err := field.RandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	wrongY := ristretto255.NewElement().ScalarBaseMult(other)

	if err := Verify(proof, wrongY, "aux"); err == nil {
		t.Fatalf("expected verification failure for mismatched statement")
	}
}

func TestStringDeterministicAndSensitive(t *testing.T) {
	witness, err := field.RandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	y := ristretto255.NewElement().ScalarBaseMult(witness)

	proof, err := Prove(rand.Reader, witness, y, "aux")
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	if proof.String() != proof.String() {
		t.Fatalf("String() not deterministic")
	}

	other, err := Prove(rand.Reader, witness, y, "aux")
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	if proof.String() == other.String() {
		t.Fatalf("independently sampled proofs produced identical strings")
	}
}
