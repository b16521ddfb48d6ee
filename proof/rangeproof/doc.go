// Package rangeproof implements a single-value Bulletproofs range proof
// (Bünz, Bootle, Boneh, Poelstra, Wuille, Maxwell) over Ristretto255: a
// prover convinces a verifier that a committed value lies in [0, 2^n)
// without revealing the value, in size logarithmic in n.
//
// This package wraps the raw proof in the darkpool's minimum-balance
// convention: Prove(b, r, aux) rejects b below a configured floor and
// proves the shifted value upperbound-(b-minBal) lies in range, matching
// the spec's asymmetric "prove you have at least minBal, without revealing
// how much more" contract.
package rangeproof
