package bd

import (
	"crypto/rand"
	"testing"
)

func TestKeyExchangeAllPartiesAgree(t *testing.T) {
	for _, n := range []int{3, 4, 5, 8} {
		keys, err := KeyExchange(rand.Reader, n)
		if err != nil {
			t.Fatalf("KeyExchange(%d): %v", n, err)
		}
		if len(keys) != n {
			t.Fatalf("KeyExchange(%d) returned %d keys", n, len(keys))
		}
		for i := 1; i < n; i++ {
			if keys[i].Equal(keys[0]) != 1 {
				t.Fatalf("party %d derived a different key than party 0 for n=%d", i, n)
			}
		}
	}
}

func TestKeyExchangeRejectsTooFewParties(t *testing.T) {
	if _, err := KeyExchange(rand.Reader, 2); err != ErrTooFewParties {
		t.Fatalf("expected ErrTooFewParties, got %v", err)
	}
}
