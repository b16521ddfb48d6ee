// Package compilergm17 implements the Compiler WAKE protocol's SNARK
// backend: the same 3-round Burmester–Desmedt exchange as compilerbp, but
// rounds 2 and 3 each carry a darkpoolsnark proof that the sender's
// bit-decomposed balance hashes (under MiMC) to its published public image,
// bound to the round's message. Grounded on the original source's
// compiler_gm17_wake_protocol.rs and compiler_gm17_wake_signature.rs.
package compilergm17
