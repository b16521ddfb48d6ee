// Package optimizedgm17 implements the Optimized WAKE protocol's SNARK
// backend: a 2-round protocol that fuses Burmester–Desmedt round 1 with
// witness-authenticated signing. Round 1's ephemeral doubles as both the
// BD share and the discrete-log-knowledge statement; round 2 carries a
// DLK proof of that ephemeral's exponent plus a darkpoolsnark proof of the
// sender's balance, each binding the next through its auxiliary string.
// Grounded on the original source's optimized_gm17_wake_protocol.rs.
package optimizedgm17
