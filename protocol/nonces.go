package protocol

import (
	"strconv"
	"strings"

	"github.com/gtank/ristretto255"

	"github.com/anupsv/wake-darkpool/internal/field"
)

// Nonces is round 1 (WAKE)'s session table: every party's index paired with
// the nonce it broadcast. Every honest party assembles the identical table,
// and round 2/3 signatures bind to its canonical string so a peer cannot
// forge membership in a session it never joined.
type Nonces struct {
	Idxs    []int
	Scalars []*ristretto255.Scalar
}

// NewNonces builds a Nonces table from per-party (idx, nonce) pairs
// collected in party-index order.
func NewNonces(idxs []int, scalars []*ristretto255.Scalar) *Nonces {
	return &Nonces{Idxs: idxs, Scalars: scalars}
}

// String renders the canonical encoding: concat_j(idx_j || scalar_hex(nonce_j)),
// no separator between entries. Two parties with identical tables produce
// byte-identical strings; this is the sole authentication mechanism for
// nonce-table agreement.
func (n *Nonces) String() string {
	var b strings.Builder
	for i, idx := range n.Idxs {
		b.WriteString(strconv.Itoa(idx))
		b.WriteString(field.ScalarHex(n.Scalars[i]))
	}
	return b.String()
}

// Equal reports whether two Nonces tables have an identical canonical
// string form, the equality test the compiler protocols use to authenticate
// a received nonce table against the local one.
func (n *Nonces) Equal(other *Nonces) bool {
	return n.String() == other.String()
}
