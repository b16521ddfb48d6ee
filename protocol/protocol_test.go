package protocol

import (
	"crypto/rand"
	"errors"
	"testing"

	"github.com/gtank/ristretto255"

	"github.com/anupsv/wake-darkpool/internal/field"
)

func randomScalars(t *testing.T, n int) []*ristretto255.Scalar {
	t.Helper()
	out := make([]*ristretto255.Scalar, n)
	for i := range out {
		s, err := field.RandomScalar(rand.Reader)
		if err != nil {
			t.Fatalf("RandomScalar: %v", err)
		}
		out[i] = s
	}
	return out
}

func TestNoncesStringDeterministicAndSensitive(t *testing.T) {
	idxs := []int{0, 1, 2}
	scalars := randomScalars(t, 3)

	a := NewNonces(idxs, scalars)
	b := NewNonces(idxs, scalars)
	if !a.Equal(b) {
		t.Fatalf("identical nonce tables produced different strings")
	}

	other := randomScalars(t, 3)
	c := NewNonces(idxs, other)
	if a.Equal(c) {
		t.Fatalf("distinct nonce tables produced the same string")
	}
}

func TestVkTableStringDeterministicAndSensitive(t *testing.T) {
	idxs := []int{0, 1, 2}
	elems := make([]*ristretto255.Element, 3)
	for i := range elems {
		s := randomScalars(t, 1)[0]
		elems[i] = ristretto255.NewElement().ScalarBaseMult(s)
	}

	a := NewVkTable(idxs, elems)
	b := NewVkTable(idxs, elems)
	if !a.Equal(b) {
		t.Fatalf("identical VK tables produced different strings")
	}

	shuffled := NewVkTable([]int{1, 0, 2}, elems)
	if a.Equal(shuffled) {
		t.Fatalf("reordered VK table produced the same string as the original order")
	}
}

func TestValidateBalances(t *testing.T) {
	if err := ValidateBalances([]uint64{10, 11, 12}, 10, 3); err != nil {
		t.Fatalf("expected valid balances to pass, got %v", err)
	}
	if err := ValidateBalances([]uint64{10, 11}, 10, 3); err != ErrBalanceLength {
		t.Fatalf("expected ErrBalanceLength, got %v", err)
	}
	if err := ValidateBalances([]uint64{9, 11, 12}, 10, 3); err != ErrBalanceBelowMin {
		t.Fatalf("expected ErrBalanceBelowMin, got %v", err)
	}
}

func TestCheckBatchLength(t *testing.T) {
	if err := CheckBatchLength(3, 3); err != nil {
		t.Fatalf("expected matching length to pass, got %v", err)
	}
	err := CheckBatchLength(3, 2)
	if !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
	if err.Error() != "Invalid length expected: 3, found 2" {
		t.Fatalf("unexpected error message: %q", err.Error())
	}
}

func TestCheckRoundIdx(t *testing.T) {
	if err := CheckRoundIdx(2, 2); err != nil {
		t.Fatalf("expected matching round to pass, got %v", err)
	}
	if err := CheckRoundIdx(2, 3); err != ErrWrongRoundNumber {
		t.Fatalf("expected ErrWrongRoundNumber, got %v", err)
	}
}
