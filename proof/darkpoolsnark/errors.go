package darkpoolsnark

import "errors"

// ErrAuxMismatch is returned by Verify when the proof's bound auxiliary
// field element does not match the aux string recomputed by the verifier.
var ErrAuxMismatch = errors.New("darkpoolsnark: auxiliary challenge mismatch")

// ErrImageMismatch is returned by Verify when the caller's expected image
// does not match the proof's bound image.
var ErrImageMismatch = errors.New("darkpoolsnark: image mismatch")

// ErrVerificationFailed wraps a Groth16 proof-verification failure.
var ErrVerificationFailed = errors.New("darkpoolsnark: proof verification failed")
