package optimizedgm17

import (
	"github.com/anupsv/wake-darkpool/proof/darkpoolsnark"
	"github.com/anupsv/wake-darkpool/proof/dlk"
)

// Signature is the optimized protocol's GM17-backend bundle: a DLK proof
// of the round-1 ephemeral's exponent, followed by a darkpoolsnark proof
// of the sender's balance. SPEC_FULL §4.8 requires verifying in this
// order and binding the SNARK aux string to the DLK proof's own encoding.
type Signature struct {
	Dlk   *dlk.Proof
	Snark *darkpoolsnark.SnarkProof
}
