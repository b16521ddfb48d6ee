package rangeproof

import "github.com/gtank/ristretto255"

// ipaProof is a logarithmic-size proof that <a, b> equals the value folded
// into the transcript's running state by the caller, for vectors a, b
// committed via P = <a,G> + <b,H> + <a,b>*u.
type ipaProof struct {
	Ls, Rs         []*ristretto255.Element
	AFinal, BFinal *ristretto255.Scalar
}

// proveIPA recursively halves the generator vectors and witness vectors,
// folding one round's challenge into each half, until a single (a, b) pair
// remains. This is the standard Bulletproofs inner-product compression
// (Bünz et al., Protocol 2).
func proveIPA(t *transcript, G, H []*ristretto255.Element, u *ristretto255.Element, a, b []*ristretto255.Scalar) *ipaProof {
	n := len(a)
	if n == 1 {
		return &ipaProof{AFinal: a[0], BFinal: b[0]}
	}

	np := n / 2
	aL, aR := a[:np], a[np:]
	bL, bR := b[:np], b[np:]
	GL, GR := G[:np], G[np:]
	HL, HR := H[:np], H[np:]

	cL := innerProduct(aL, bR)
	cR := innerProduct(aR, bL)

	L := multiScalarMult(aL, GR)
	L.Add(L, multiScalarMult(bR, HL))
	L.Add(L, scalarMultElement(cL, u))

	R := multiScalarMult(aR, GL)
	R.Add(R, multiScalarMult(bL, HR))
	R.Add(R, scalarMultElement(cR, u))

	t.appendPoint("ipa-L", L)
	t.appendPoint("ipa-R", R)
	x := t.challengeScalar("ipa-x")
	xInv := ristretto255.NewScalar().Invert(x)

	GPrime := foldPoints(GL, GR, xInv, x)
	HPrime := foldPoints(HL, HR, x, xInv)
	aPrime := addVec(scaleVec(aL, x), scaleVec(aR, xInv))
	bPrime := addVec(scaleVec(bL, xInv), scaleVec(bR, x))

	sub := proveIPA(t, GPrime, HPrime, u, aPrime, bPrime)
	return &ipaProof{
		Ls:     append([]*ristretto255.Element{L}, sub.Ls...),
		Rs:     append([]*ristretto255.Element{R}, sub.Rs...),
		AFinal: sub.AFinal,
		BFinal: sub.BFinal,
	}
}

// verifyIPA recomputes the same challenges from the transcript and folds G,
// H and the running commitment P in lockstep, checking the final base case
// P == G[0]^aFinal * H[0]^bFinal * u^(aFinal*bFinal).
func verifyIPA(t *transcript, G, H []*ristretto255.Element, u, p *ristretto255.Element, proof *ipaProof) bool {
	n := len(G)
	if n == 1 {
		rhs := scalarMultElement(proof.AFinal, G[0])
		rhs.Add(rhs, scalarMultElement(proof.BFinal, H[0]))
		ab := ristretto255.NewScalar().Multiply(proof.AFinal, proof.BFinal)
		rhs.Add(rhs, scalarMultElement(ab, u))
		return p.Equal(rhs) == 1
	}

	np := n / 2
	GL, GR := G[:np], G[np:]
	HL, HR := H[:np], H[np:]
	L, R := proof.Ls[0], proof.Rs[0]

	t.appendPoint("ipa-L", L)
	t.appendPoint("ipa-R", R)
	x := t.challengeScalar("ipa-x")
	xInv := ristretto255.NewScalar().Invert(x)
	x2 := ristretto255.NewScalar().Multiply(x, x)
	x2Inv := ristretto255.NewScalar().Invert(x2)

	GPrime := foldPoints(GL, GR, xInv, x)
	HPrime := foldPoints(HL, HR, x, xInv)

	pPrime := scalarMultElement(x2, L)
	pPrime.Add(pPrime, p)
	pPrime.Add(pPrime, scalarMultElement(x2Inv, R))

	return verifyIPA(t, GPrime, HPrime, u, pPrime, &ipaProof{
		Ls:     proof.Ls[1:],
		Rs:     proof.Rs[1:],
		AFinal: proof.AFinal,
		BFinal: proof.BFinal,
	})
}

// foldPoints computes out_i = left_i^cLeft * right_i^cRight, element-wise.
func foldPoints(left, right []*ristretto255.Element, cLeft, cRight *ristretto255.Scalar) []*ristretto255.Element {
	out := make([]*ristretto255.Element, len(left))
	for i := range left {
		out[i] = scalarMultElement(cLeft, left[i])
		out[i].Add(out[i], scalarMultElement(cRight, right[i]))
	}
	return out
}
