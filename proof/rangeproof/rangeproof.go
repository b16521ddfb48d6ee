package rangeproof

import (
	"errors"
	"io"

	"github.com/gtank/ristretto255"

	"github.com/anupsv/wake-darkpool/internal/field"
)

// ErrBelowMinimum is returned by Prove when the supplied balance is below
// the configured minimum balance, matching the original source's "balance
// below minimum" rejection in compiler_bp_wake_protocol.rs.
var ErrBelowMinimum = errors.New("rangeproof: balance is below minimum balance")

// ErrVerificationFailed is returned by Verify when the proof does not
// attest that the committed value lies in range for the given aux string.
var ErrVerificationFailed = errors.New("rangeproof: verification failed")

// Params fixes a range proof's shape: the minimum balance floor, the
// upperbound that determines the proof's bit width, and the derived
// generator vectors. One Params value is reused across every party in a
// darkpool session since they all prove membership in the same range.
type Params struct {
	MinBal     uint64
	Upperbound uint64
	N          int

	gens *generators
}

// NewParams validates upperbound against field.UpperboundLog and derives
// the bit-commitment generator vectors for the resulting width.
func NewParams(minBal, upperbound uint64) (*Params, error) {
	n, err := field.UpperboundLog(upperbound)
	if err != nil {
		return nil, err
	}
	return &Params{
		MinBal:     minBal,
		Upperbound: upperbound,
		N:          n,
		gens:       newGenerators(n),
	}, nil
}

// Proof is a single-value Bulletproofs range proof plus the Pedersen
// commitment it was proved against.
type Proof struct {
	V              *ristretto255.Element
	A, S           *ristretto255.Element
	T1, T2         *ristretto255.Element
	TauX, Mu, THat *ristretto255.Scalar
	IPA            *ipaProof
}

// Commitment returns the proof's Pedersen commitment to the shifted value
// upperbound-(b-minBal), the value the protocol layer folds into its
// higher-level commitment table.
func (p *Proof) Commitment() *ristretto255.Element {
	return p.V
}

func (p *Params) initTranscript(aux string) *transcript {
	t := newTranscript("range proof")
	t.appendMessage("auxiliary challenge string", field.HashBytes(aux))
	return t
}

// Prove proves that balance b, after the darkpool's min-balance shift, lies
// in [0, 2^N). r is the Pedersen blinding factor for the commitment; aux
// binds the proof to its calling context (a protocol message string) so it
// cannot be replayed elsewhere.
func (p *Params) Prove(rand io.Reader, b uint64, blind *ristretto255.Scalar, aux string) (*Proof, error) {
	if b < p.MinBal {
		return nil, ErrBelowMinimum
	}
	v := p.Upperbound - (b - p.MinBal)

	n := p.N
	g, h := p.gens.g, p.gens.h
	G, H := p.gens.G, p.gens.H

	V := ristretto255.NewElement().ScalarMult(field.ScalarFromUint64(v), g)
	V.Add(V, scalarMultElement(blind, h))

	aL := make([]*ristretto255.Scalar, n)
	aR := make([]*ristretto255.Scalar, n)
	one := field.ScalarOne()
	negOne := ristretto255.NewScalar().Negate(one)
	zero := field.ScalarZero()
	for i := 0; i < n; i++ {
		if (v>>uint(i))&1 == 1 {
			aL[i] = one
			aR[i] = zero
		} else {
			aL[i] = zero
			aR[i] = negOne
		}
	}

	alpha, err := field.RandomScalar(rand)
	if err != nil {
		return nil, err
	}
	sL, err := randomVec(rand, n)
	if err != nil {
		return nil, err
	}
	sR, err := randomVec(rand, n)
	if err != nil {
		return nil, err
	}
	rho, err := field.RandomScalar(rand)
	if err != nil {
		return nil, err
	}

	A := scalarMultElement(alpha, h)
	A.Add(A, multiScalarMult(aL, G))
	A.Add(A, multiScalarMult(aR, H))

	S := scalarMultElement(rho, h)
	S.Add(S, multiScalarMult(sL, G))
	S.Add(S, multiScalarMult(sR, H))

	t := p.initTranscript(aux)
	t.appendPoint("V", V)
	t.appendPoint("A", A)
	t.appendPoint("S", S)

	y := t.challengeScalar("y")
	z := t.challengeScalar("z")

	yPowers := powersOf(y, n)
	twoPowers := powersOf(field.ScalarFromUint64(2), n)

	ones := onesVec(n)
	zVec := scaleVec(ones, z)
	z2 := ristretto255.NewScalar().Multiply(z, z)
	z2TwoPowers := scaleVec(twoPowers, z2)

	l0 := subVec(aL, zVec)
	l1 := sL

	aRPlusZ := addVec(aR, zVec)
	yAr := hadamard(yPowers, aRPlusZ)
	r0 := addVec(yAr, z2TwoPowers)
	r1 := hadamard(yPowers, sR)

	t1 := ristretto255.NewScalar().Add(innerProduct(l0, r1), innerProduct(l1, r0))
	t2 := innerProduct(l1, r1)

	tau1, err := field.RandomScalar(rand)
	if err != nil {
		return nil, err
	}
	tau2, err := field.RandomScalar(rand)
	if err != nil {
		return nil, err
	}

	T1 := scalarMultElement(t1, g)
	T1.Add(T1, scalarMultElement(tau1, h))
	T2 := scalarMultElement(t2, g)
	T2.Add(T2, scalarMultElement(tau2, h))

	t.appendPoint("T1", T1)
	t.appendPoint("T2", T2)

	x := t.challengeScalar("x")

	l := addVec(l0, scaleVec(l1, x))
	r := addVec(r0, scaleVec(r1, x))
	tHat := innerProduct(l, r)

	x2 := ristretto255.NewScalar().Multiply(x, x)
	tauX := ristretto255.NewScalar().Multiply(tau2, x2)
	tauX.Add(tauX, ristretto255.NewScalar().Multiply(tau1, x))
	tauX.Add(tauX, ristretto255.NewScalar().Multiply(z2, blind))

	mu := ristretto255.NewScalar().Add(alpha, ristretto255.NewScalar().Multiply(rho, x))

	t.appendScalar("tauX", tauX)
	t.appendScalar("mu", mu)
	t.appendScalar("tHat", tHat)

	u := t.challengePoint("u")

	yInv := invertVec(yPowers)
	HPrime := make([]*ristretto255.Element, n)
	for i := range H {
		HPrime[i] = scalarMultElement(yInv[i], H[i])
	}

	ipa := proveIPA(t, G, HPrime, u, l, r)

	return &Proof{V: V, A: A, S: S, T1: T1, T2: T2, TauX: tauX, Mu: mu, THat: tHat, IPA: ipa}, nil
}

func randomVec(rand io.Reader, n int) ([]*ristretto255.Scalar, error) {
	out := make([]*ristretto255.Scalar, n)
	for i := range out {
		s, err := field.RandomScalar(rand)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// Verify checks proof against commitment and aux. commitment must come from
// the verifier's own record (the darkpool's setup-time commitment table),
// never from the proof itself: a proof's embedded V exists so the prover can
// hand the verifier the same bytes it committed to, not so the verifier can
// trust whatever V the prover supplies.
func (p *Params) Verify(proof *Proof, commitment *ristretto255.Element, aux string) error {
	if proof.V.Equal(commitment) != 1 {
		return ErrVerificationFailed
	}

	n := p.N
	g, h := p.gens.g, p.gens.h
	G, H := p.gens.G, p.gens.H

	t := p.initTranscript(aux)
	t.appendPoint("V", proof.V)
	t.appendPoint("A", proof.A)
	t.appendPoint("S", proof.S)

	y := t.challengeScalar("y")
	z := t.challengeScalar("z")

	yPowers := powersOf(y, n)
	twoPowers := powersOf(field.ScalarFromUint64(2), n)

	t.appendPoint("T1", proof.T1)
	t.appendPoint("T2", proof.T2)
	x := t.challengeScalar("x")

	t.appendScalar("tauX", proof.TauX)
	t.appendScalar("mu", proof.Mu)
	t.appendScalar("tHat", proof.THat)

	u := t.challengePoint("u")

	ones := onesVec(n)
	sumY := innerProduct(ones, yPowers)
	sumTwo := innerProduct(ones, twoPowers)
	z2 := ristretto255.NewScalar().Multiply(z, z)
	z3 := ristretto255.NewScalar().Multiply(z2, z)
	zMinusZ2 := ristretto255.NewScalar().Subtract(z, z2)
	delta := ristretto255.NewScalar().Multiply(zMinusZ2, sumY)
	delta.Subtract(delta, ristretto255.NewScalar().Multiply(z3, sumTwo))

	lhs := scalarMultElement(proof.THat, g)
	lhs.Add(lhs, scalarMultElement(proof.TauX, h))

	x2 := ristretto255.NewScalar().Multiply(x, x)
	rhs := scalarMultElement(z2, proof.V)
	rhs.Add(rhs, scalarMultElement(delta, g))
	rhs.Add(rhs, scalarMultElement(x, proof.T1))
	rhs.Add(rhs, scalarMultElement(x2, proof.T2))

	if lhs.Equal(rhs) != 1 {
		return ErrVerificationFailed
	}

	yInv := invertVec(yPowers)
	HPrime := make([]*ristretto255.Element, n)
	for i := range H {
		HPrime[i] = scalarMultElement(yInv[i], H[i])
	}

	zVec := scaleVec(ones, z)
	z2TwoPowers := scaleVec(twoPowers, z2)
	hExp := addVec(hadamard(yPowers, zVec), z2TwoPowers)

	negZ := ristretto255.NewScalar().Negate(z)
	pIpa := scalarMultElement(negZ, sumElements(G))
	pIpa.Add(pIpa, proof.A)
	pIpa.Add(pIpa, scalarMultElement(x, proof.S))
	pIpa.Add(pIpa, multiScalarMult(hExp, HPrime))
	negMu := ristretto255.NewScalar().Negate(proof.Mu)
	pIpa.Add(pIpa, scalarMultElement(negMu, h))

	pTotal := scalarMultElement(proof.THat, u)
	pTotal.Add(pTotal, pIpa)

	if !verifyIPA(t, G, HPrime, u, pTotal, proof.IPA) {
		return ErrVerificationFailed
	}
	return nil
}
