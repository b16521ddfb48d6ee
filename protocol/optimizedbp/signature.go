package optimizedbp

import (
	"github.com/anupsv/wake-darkpool/proof/dlk"
	"github.com/anupsv/wake-darkpool/proof/rangeproof"
)

// Signature is the optimized protocol's BP-backend bundle: a DLK proof of
// the round-1 ephemeral's exponent, followed by a Bulletproofs range
// proof of the sender's balance. Verified in this order (SPEC_FULL §4.8).
type Signature struct {
	Dlk   *dlk.Proof
	Range *rangeproof.Proof
}
