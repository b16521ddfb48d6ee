package field

import (
	"crypto/sha256"
	"encoding/hex"
	"math/big"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// FrHex renders v's canonical big-endian byte representation as lowercase
// hex, the BLS12-377 scalar-field counterpart of ElementHex/ScalarHex used
// when an optimized-protocol aux string binds a public image or MiMC
// blinding factor instead of a Ristretto255 point or scalar.
func FrHex(v fr.Element) string {
	b := v.Bytes()
	return hex.EncodeToString(b[:])
}

// HashToFr reduces SHA-256(s), read as a big-endian integer, mod the
// BLS12-377 scalar field. This is the Go rendition of the original
// source's hash_string_to_fr, used to bind the auxiliary challenge string
// into the darkpool SNARK's public input.
func HashToFr(s string) fr.Element {
	h := sha256.Sum256([]byte(s))
	var out fr.Element
	out.SetBytes(h[:])
	return out
}

// FrToBitsLE returns the n least-significant bits of v, little-endian, as
// the darkpool circuit's bit-decomposition gadget expects: bit 0 is v's
// least significant bit. n must be large enough to hold v's canonical
// representative (64 covers every upperbound this module supports).
func FrToBitsLE(v fr.Element, n int) []bool {
	var rep big.Int
	v.BigInt(&rep)

	bits := bitset.New(uint(n))
	for i := 0; i < n; i++ {
		if rep.Bit(i) == 1 {
			bits.Set(uint(i))
		}
	}

	out := make([]bool, n)
	for i := 0; i < n; i++ {
		out[i] = bits.Test(uint(i))
	}
	return out
}

// BitsToFr reconstructs the field element represented by n little-endian
// bits, the inverse of FrToBitsLE and the same sum the circuit's running-sum
// reconstruction computes: v = sum_i bits[i] * 2^i.
func BitsToFr(bits []bool) fr.Element {
	var v, two, pow fr.Element
	two.SetUint64(2)
	pow.SetOne()

	for _, b := range bits {
		if b {
			var term fr.Element
			term.Set(&pow)
			v.Add(&v, &term)
		}
		pow.Mul(&pow, &two)
	}
	return v
}
