package bd

import (
	"errors"
	"io"

	"github.com/gtank/ristretto255"
)

// ErrTooFewParties is returned when a key exchange is attempted with fewer
// than the three parties Burmester–Desmedt requires to have a well-defined
// ring of distinct neighbors.
var ErrTooFewParties = errors.New("bd: key exchange requires at least 3 parties")

// KeyExchange runs a complete, trusted-orchestrator Burmester–Desmedt
// exchange among partyAmount parties and returns each party's derived
// group key, in ring order. Under honest execution every entry is equal;
// this bare form has no per-round authentication, matching the original
// source's standalone key_exchange demonstration (no signature, no
// session binding) that both WAKE families build their authenticated
// rounds around.
func KeyExchange(rand io.Reader, partyAmount int) ([]*ristretto255.Element, error) {
	if partyAmount < 3 {
		return nil, ErrTooFewParties
	}

	parties := make([]*Party, partyAmount)
	zs := make([]*ristretto255.Element, partyAmount)
	for i := range parties {
		parties[i] = NewParty(i)
		z, err := parties[i].Round1(rand)
		if err != nil {
			return nil, err
		}
		zs[i] = z
	}

	xs := make([]*ristretto255.Element, partyAmount)
	for i, party := range parties {
		xs[i] = party.Round2(zs)
	}

	keys := make([]*ristretto255.Element, partyAmount)
	for i, party := range parties {
		keys[i] = party.ComputeKey(partyAmount, zs, xs)
	}
	return keys, nil
}
