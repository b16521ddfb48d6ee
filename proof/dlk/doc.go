// Package dlk implements a non-interactive, Fiat–Shamir discrete-log
// knowledge proof over Ristretto255: given a statement Y = g^w, a prover
// convinces a verifier it knows w without revealing it. Both optimized WAKE
// backends use this to bind a party's round-1 Burmester–Desmedt share to a
// proof of knowledge of its exponent; the proof travels in the round-2
// signature bundle, so no separate authentication round is needed.
package dlk
