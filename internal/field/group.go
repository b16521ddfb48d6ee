package field

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/gtank/ristretto255"
)

// Generator returns the standard Ristretto255 base point, used as the
// shared group generator g across the BD core and both WAKE families.
func Generator() *ristretto255.Element {
	return ristretto255.NewGeneratorElement()
}

// BlindingGenerator returns a second generator h, independent of Generator,
// derived deterministically by hashing a fixed domain string into the group.
// It plays the role the bulletproofs crate's PedersenGens.B_blinding plays
// in the original source: a nothing-up-my-sleeve point for Pedersen
// commitments and the range-proof vector commitments.
func BlindingGenerator() *ristretto255.Element {
	return HashToElement("wake-darkpool pedersen blinding generator")
}

// RandomScalar draws a uniformly random scalar from rand, using wide
// reduction over 64 bytes to avoid modulo bias.
func RandomScalar(rand io.Reader) (*ristretto255.Scalar, error) {
	var wide [64]byte
	if _, err := io.ReadFull(rand, wide[:]); err != nil {
		return nil, fmt.Errorf("field: reading random bytes: %w", err)
	}
	sc := ristretto255.NewScalar()
	if _, err := sc.SetUniformBytes(wide[:]); err != nil {
		return nil, fmt.Errorf("field: reducing random scalar: %w", err)
	}
	return sc, nil
}

// HashToScalar reduces SHA-256(s) into a scalar mod the group order. It is
// the Go rendition of the original source's hash_string_to_scalar: the DLK
// proof's Fiat–Shamir challenge goes through it. The range proof derives its
// challenges from its own transcript, and nonces are drawn by RandomScalar.
func HashToScalar(s string) *ristretto255.Scalar {
	h := sha256.Sum256([]byte(s))
	var wide [64]byte
	copy(wide[:32], h[:])
	sc := ristretto255.NewScalar()
	if _, err := sc.SetUniformBytes(wide[:]); err != nil {
		panic("field: hash-to-scalar reduction failed: " + err.Error())
	}
	return sc
}

// HashToElement maps SHA-256(s) into a group element. It is used only for
// deriving fixed, publicly-verifiable generators (BlindingGenerator, the
// range-proof vector bases) — never for a value an adversary chooses, so
// the map need not be a full random oracle onto the group, only consistent
// and unpredictable to a party picking s in advance.
func HashToElement(s string) *ristretto255.Element {
	h := sha256.Sum256([]byte(s))
	var wide [64]byte
	copy(wide[:32], h[:])
	el := ristretto255.NewElement()
	if _, err := el.SetUniformBytes(wide[:]); err != nil {
		panic("field: hash-to-group reduction failed: " + err.Error())
	}
	return el
}

// ElementHex returns the canonical lowercase, unprefixed hex encoding of a
// Ristretto255 element, matching the original source's
// compressed_ristretto_to_string.
func ElementHex(p *ristretto255.Element) string {
	return hex.EncodeToString(p.Encode(nil))
}

// ScalarHex returns the canonical lowercase, unprefixed hex encoding of a
// Ristretto255 scalar, matching the original source's scalar_to_string.
func ScalarHex(s *ristretto255.Scalar) string {
	return hex.EncodeToString(s.Encode(nil))
}

// DecodeElement parses a canonical hex-encoded Ristretto255 element.
func DecodeElement(s string) (*ristretto255.Element, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("field: decoding element hex: %w", err)
	}
	el := ristretto255.NewElement()
	if err := el.Decode(raw); err != nil {
		return nil, fmt.Errorf("field: decoding element: %w", err)
	}
	return el, nil
}

// HashBytes returns the raw SHA-256 digest of s, matching the original
// source's hash_string. Used to bind an auxiliary string into a Fiat–Shamir
// transcript without first reducing it to a scalar.
func HashBytes(s string) []byte {
	h := sha256.Sum256([]byte(s))
	return h[:]
}

// DecodeScalar parses a canonical hex-encoded Ristretto255 scalar.
func DecodeScalar(s string) (*ristretto255.Scalar, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("field: decoding scalar hex: %w", err)
	}
	sc := ristretto255.NewScalar()
	if err := sc.Decode(raw); err != nil {
		return nil, fmt.Errorf("field: decoding scalar: %w", err)
	}
	return sc, nil
}

// ScalarFromUint64 encodes x as a canonical little-endian scalar. Any
// uint64 value is trivially below the Ristretto255 group order, so this
// never reduces.
func ScalarFromUint64(x uint64) *ristretto255.Scalar {
	var buf [32]byte
	binary.LittleEndian.PutUint64(buf[:8], x)
	sc := ristretto255.NewScalar()
	if err := sc.Decode(buf[:]); err != nil {
		panic("field: scalar from uint64: " + err.Error())
	}
	return sc
}

// ScalarZero returns the additive identity scalar.
func ScalarZero() *ristretto255.Scalar {
	return ScalarFromUint64(0)
}

// ScalarOne returns the multiplicative identity scalar.
func ScalarOne() *ristretto255.Scalar {
	return ScalarFromUint64(1)
}

// ElementIdentity returns the group identity element. Per RFC 9496, the
// Ristretto255 identity's canonical encoding is 32 zero bytes.
func ElementIdentity() *ristretto255.Element {
	var zero [32]byte
	el := ristretto255.NewElement()
	if err := el.Decode(zero[:]); err != nil {
		panic("field: identity element decode: " + err.Error())
	}
	return el
}
