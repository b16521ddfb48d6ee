package optimizedgm17

import (
	"crypto/rand"
	"math"
	"testing"

	"github.com/anupsv/wake-darkpool/protocol"
)

func TestRunKeyExchangeAllKeysEqual(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping Groth16 setup/prove/verify round trip in short mode: circuit has 322 MiMC rounds per party")
	}

	n := 4
	minBal := uint64(10)
	balances := make([]uint64, n)
	for i := range balances {
		balances[i] = minBal + uint64(i)
	}

	keys, err := RunKeyExchange(rand.Reader, n, minBal, math.MaxUint8, balances)
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
	balances := []uint64{9, 10, 11, 12}
	if _, err := RunKeyExchange(rand.Reader, len(balances), minBal, math.MaxUint64, balances); err != protocol.ErrBalanceBelowMin {
		t.Fatalf("expected ErrBalanceBelowMin, got %v", err)
	}
}
