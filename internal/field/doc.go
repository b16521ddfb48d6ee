// Package field collects the group, field and encoding primitives shared by
// every proof system and protocol package in this module: canonical hex
// encodings over Ristretto255, hash-to-scalar/hash-to-field reductions, the
// bit-decomposition used by the darkpool SNARK circuit, and the small index
// helpers (adjacent-party lookup, upperbound validation) the Burmester–
// Desmedt core and both WAKE families build on.
package field
