// Package darkpoolsnark proves, in zero knowledge, that a committed value
// v and blinding r hash to a public image under a 322-round MiMC-Feistel
// cube permutation, with v bit-decomposed inside the circuit so the same
// witness can be bound to a range proof's commitment by an outer protocol.
//
// The relation is identical to the original source's GM17 circuit; the
// backend is Groth16 (see DESIGN.md / SPEC_FULL.md Open Question OQ-1 for
// why), so the exported proof type is named SnarkProof rather than
// anything GM17-specific.
package darkpoolsnark
