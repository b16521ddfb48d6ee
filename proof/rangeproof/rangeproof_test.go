package rangeproof

import (
	"crypto/rand"
	"math"
	"testing"

	"github.com/anupsv/wake-darkpool/internal/field"
)

func TestProveVerifyRoundTrip(t *testing.T) {
	params, err := NewParams(100, math.MaxUint8)
	if err != nil {
		t.Fatalf("NewParams: %v", err)
	}

	blind, err := field.RandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}

	proof, err := params.Prove(rand.Reader, 150, blind, "round2##0##deadbeef")
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	if err := params.Verify(proof, proof.Commitment(), "round2##0##deadbeef"); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestProveRejectsBalanceBelowMinimum(t *testing.T) {
	params, err := NewParams(100, math.MaxUint8)
	if err != nil {
		t.Fatalf("NewParams: %v", err)
	}

	blind, err := field.RandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}

	_, err = params.Prove(rand.Reader, 50, blind, "aux")
	if err != ErrBelowMinimum {
		t.Fatalf("expected ErrBelowMinimum, got %v", err)
	}
}

func TestVerifyRejectsMismatchedAux(t *testing.T) {
	params, err := NewParams(0, math.MaxUint8)
	if err != nil {
		t.Fatalf("NewParams: %v", err)
	}

	blind, err := field.RandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}

	proof, err := params.Prove(rand.Reader, 10, blind, "aux-one")
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	if err := params.Verify(proof, proof.Commitment(), "aux-two"); err == nil {
		t.Fatalf("expected verification failure for mismatched aux")
	}
}

func TestVerifyRejectsForgedCommitment(t *testing.T) {
	params, err := NewParams(0, math.MaxUint8)
	if err != nil {
		t.Fatalf("NewParams: %v", err)
	}

	blind, err := field.RandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}

	proof, err := params.Prove(rand.Reader, 10, blind, "aux")
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	otherBlind, err := field.RandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	otherProof, err := params.Prove(rand.Reader, 11, otherBlind, "aux")
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	if err := params.Verify(proof, otherProof.Commitment(), "aux"); err == nil {
		t.Fatalf("expected verification failure against a mismatched commitment")
	}
}

func TestNewParamsRejectsInvalidUpperbound(t *testing.T) {
	if _, err := NewParams(0, 12345); err == nil {
		t.Fatalf("expected error for invalid upperbound")
	}
}
