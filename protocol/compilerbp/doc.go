// Package compilerbp implements the Compiler WAKE protocol's Bulletproofs
// backend: a 3-round Burmester–Desmedt exchange whose rounds 2 and 3 each
// carry a Bulletproofs range-proof signature attesting the sender's balance
// lies in [minBal, upperbound], bound to the round's message via the
// message's canonical string. Grounded on the original source's
// compiler_bp_wake_protocol.rs and compiler_bp_wake_signature.rs.
package compilerbp
