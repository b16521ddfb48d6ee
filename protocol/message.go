package protocol

import (
	"fmt"

	"github.com/gtank/ristretto255"

	"github.com/anupsv/wake-darkpool/internal/field"
)

// CompMessage is the compiler protocol's round 2/3 envelope: a party's
// index, the round it was produced in, its BD payload for that round
// (z_i in round 2, x_i in round 3), and the nonce table the message is
// bound to.
type CompMessage struct {
	Idx      int
	RoundIdx int
	Payload  *ristretto255.Element
	Nonces   *Nonces
}

// String renders the canonical form Fiat–Shamir and the range-proof
// transcript bind to: idx##roundIdx##hex(payload)##nonces.String().
func (m *CompMessage) String() string {
	return fmt.Sprintf("%d##%d##%s##%s", m.Idx, m.RoundIdx, field.ElementHex(m.Payload), m.Nonces.String())
}

// OptimizedMessage is the optimized protocol's round 2 envelope: a party's
// index, its round-2 BD payload, and the VK table assembled from round 1.
type OptimizedMessage struct {
	Idx     int
	Payload *ristretto255.Element
	Vk      *VkTable
}

// String renders the canonical form: idx##hex(payload)##vk.String().
func (m *OptimizedMessage) String() string {
	return fmt.Sprintf("%d##%s##%s", m.Idx, field.ElementHex(m.Payload), m.Vk.String())
}
