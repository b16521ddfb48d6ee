package dlk

import (
	"errors"
	"io"

	"github.com/gtank/ristretto255"

	"github.com/anupsv/wake-darkpool/internal/field"
)

// ErrVerificationFailed is returned by Verify when the proof does not
// satisfy the discrete-log relation for the given statement and aux string.
var ErrVerificationFailed = errors.New("dlk: verification failed")

// Proof is a non-interactive proof of knowledge of w such that Y = g^w,
// bound to an auxiliary challenge string via Fiat–Shamir. Field names match
// the original source's DiscreteLogKnowledgeProof: statement is the
// commitment T = g^r, challenge is c, response is z = r + c*w.
type Proof struct {
	Statement *ristretto255.Element
	Challenge *ristretto255.Scalar
	Response  *ristretto255.Scalar
}

// String renders the canonical encoding hex(stmt) || scalar_hex(challenge)
// || scalar_hex(response), the form an outer signature's aux string folds
// a DLK proof into.
func (p *Proof) String() string {
	return field.ElementHex(p.Statement) + field.ScalarHex(p.Challenge) + field.ScalarHex(p.Response)
}

// challenge recomputes c = HashToScalar(hex(g) || hex(Y) || aux), binding
// the generator, the public statement and the caller-supplied auxiliary
// string into the Fiat–Shamir transform exactly as the original source's
// prove/verify do.
func challenge(g, y *ristretto255.Element, aux string) *ristretto255.Scalar {
	return field.HashToScalar(field.ElementHex(g) + field.ElementHex(y) + aux)
}

// Prove constructs a proof that the caller knows witness such that
// y = g^witness, where g is the Ristretto255 generator. aux binds the proof
// to its calling context (e.g. a protocol message string) so it cannot be
// replayed against a different statement.
func Prove(rand io.Reader, witness *ristretto255.Scalar, y *ristretto255.Element, aux string) (*Proof, error) {
	g := field.Generator()

	r, err := field.RandomScalar(rand)
	if err != nil {
		return nil, err
	}
	statement := ristretto255.NewElement().ScalarBaseMult(r)

	c := challenge(g, y, aux)

	// z = r + c*witness
	cw := ristretto255.NewScalar().Multiply(c, witness)
	z := ristretto255.NewScalar().Add(r, cw)

	return &Proof{Statement: statement, Challenge: c, Response: z}, nil
}

// Verify checks that proof is a valid discrete-log knowledge proof for
// statement y under auxiliary string aux: it recomputes the challenge and
// checks g^z == T * Y^c.
func Verify(proof *Proof, y *ristretto255.Element, aux string) error {
	g := field.Generator()

	c := challenge(g, y, aux)
	if c.Equal(proof.Challenge) != 1 {
		return ErrVerificationFailed
	}

	lhs := ristretto255.NewElement().ScalarBaseMult(proof.Response)

	yc := ristretto255.NewElement().ScalarMult(proof.Challenge, y)
	rhs := ristretto255.NewElement().Add(proof.Statement, yc)

	if lhs.Equal(rhs) != 1 {
		return ErrVerificationFailed
	}
	return nil
}
