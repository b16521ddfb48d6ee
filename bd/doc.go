// Package bd implements the bare Burmester–Desmedt group key-agreement
// skeleton over Ristretto255: every party broadcasts a round-1 share,
// derives a round-2 cross term from its neighbors' shares, and combines
// all parties' cross terms into a shared group key. Both WAKE families
// embed this same three-step shape, adding an authentication layer around
// each round's broadcast; this package is also exercised standalone as the
// bare demonstration the original source's key_exchange tests run.
package bd
