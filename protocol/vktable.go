package protocol

import (
	"strconv"
	"strings"

	"github.com/gtank/ristretto255"

	"github.com/anupsv/wake-darkpool/internal/field"
)

// VkTable is the optimized protocol's round-1 session table: every party's
// index paired with its round-1 BD/DLK ephemeral z_i = g^{x_i}. Shaped
// identically to Nonces, it plays the same authenticating role in the
// optimized family that Nonces plays in the compiler family.
type VkTable struct {
	Idxs []int
	Zs   []*ristretto255.Element
}

// NewVkTable builds a VkTable from per-party (idx, z) pairs in party-index
// order.
func NewVkTable(idxs []int, zs []*ristretto255.Element) *VkTable {
	return &VkTable{Idxs: idxs, Zs: zs}
}

// String renders the canonical encoding: concat_j(idx_j || hex(z_j)), no
// separator between entries.
func (vk *VkTable) String() string {
	var b strings.Builder
	for i, idx := range vk.Idxs {
		b.WriteString(strconv.Itoa(idx))
		b.WriteString(field.ElementHex(vk.Zs[i]))
	}
	return b.String()
}

// Equal reports whether two VkTables have an identical canonical string
// form, the session-authentication check the optimized protocol runs
// against every peer message.
func (vk *VkTable) Equal(other *VkTable) bool {
	return vk.String() == other.String()
}
