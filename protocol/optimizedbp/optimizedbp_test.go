package optimizedbp

import (
	"crypto/rand"
	"math"
	"testing"

	"github.com/anupsv/wake-darkpool/protocol"
)

func TestRunKeyExchangeAllKeysEqual(t *testing.T) {
	n := 10
	minBal := uint64(100_000_000)
	balances := make([]uint64, n)
	for i := range balances {
		balances[i] = minBal + uint64(i)
	}

	keys, err := RunKeyExchange(rand.Reader, n, minBal, math.MaxUint64, balances)
	if err != nil {
		t.Fatalf("RunKeyExchange: %v", err)
	}
	if len(keys) != n {
		t.Fatalf("expected %d keys, got %d", n, len(keys))
	}
	for i := 1; i < n; i++ {
		if keys[i].Equal(keys[0]) != 1 {
			t.Fatalf("party %d derived a different key than party 0", i)
		}
	}
}

func TestRunKeyExchangeRejectsBalanceBelowMinimum(t *testing.T) {
	minBal := uint64(100_000_000)
	balances := []uint64{9, 10, 11, 12, 13, 14, 15, 16, 17, 18}
	if _, err := RunKeyExchange(rand.Reader, len(balances), minBal, math.MaxUint64, balances); err != protocol.ErrBalanceBelowMin {
		t.Fatalf("expected ErrBalanceBelowMin, got %v", err)
	}
}

func TestRunKeyExchangeRejectsInvalidUpperbound(t *testing.T) {
	balances := []uint64{1, 2, 3}
	if _, err := RunKeyExchange(rand.Reader, len(balances), 0, 9, balances); err == nil {
		t.Fatalf("expected error for invalid upperbound")
	}
}
