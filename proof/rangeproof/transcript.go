package rangeproof

import (
	"crypto/sha256"

	"github.com/gtank/ristretto255"
)

// transcript is a minimal Fiat–Shamir transcript: every appended label/value
// pair is folded into a running SHA-256 state, and challenges are derived
// from that state the same way the running state is derived, so no two
// challenges in a proof are equal unless the whole preceding transcript
// matches. It plays the role the original source's merlin Transcript plays,
// reimplemented over the hash spec.md mandates (SHA-256) instead of
// merlin's STROBE construction.
type transcript struct {
	state []byte
}

// newTranscript starts a transcript bound to a domain label, matching the
// original source's Transcript::new(b"range proof").
func newTranscript(label string) *transcript {
	h := sha256.Sum256([]byte(label))
	return &transcript{state: h[:]}
}

func (t *transcript) fold(label string, data []byte) []byte {
	buf := make([]byte, 0, len(t.state)+len(label)+len(data))
	buf = append(buf, t.state...)
	buf = append(buf, label...)
	buf = append(buf, data...)
	h := sha256.Sum256(buf)
	t.state = h[:]
	return t.state
}

// appendMessage folds an arbitrary labelled byte string into the transcript.
func (t *transcript) appendMessage(label string, data []byte) {
	t.fold(label, data)
}

// appendPoint folds a labelled Ristretto255 element into the transcript.
func (t *transcript) appendPoint(label string, p *ristretto255.Element) {
	t.fold(label, p.Encode(nil))
}

// appendScalar folds a labelled Ristretto255 scalar into the transcript.
func (t *transcript) appendScalar(label string, s *ristretto255.Scalar) {
	t.fold(label, s.Encode(nil))
}

// challengeScalar derives a scalar challenge from the transcript's current
// state under a label, then advances the state so the same label cannot be
// queried twice for the same challenge.
func (t *transcript) challengeScalar(label string) *ristretto255.Scalar {
	digest := t.fold(label, nil)

	var wide [64]byte
	copy(wide[:32], digest)
	sc := ristretto255.NewScalar()
	if _, err := sc.SetUniformBytes(wide[:]); err != nil {
		panic("rangeproof: challenge reduction failed: " + err.Error())
	}
	return sc
}

// challengePoint derives a group element challenge, used only for the
// auxiliary base u in the inner-product argument.
func (t *transcript) challengePoint(label string) *ristretto255.Element {
	digest := t.fold(label, nil)
	var wide [64]byte
	copy(wide[:32], digest)
	el := ristretto255.NewElement()
	if _, err := el.SetUniformBytes(wide[:]); err != nil {
		panic("rangeproof: challenge point reduction failed: " + err.Error())
	}
	return el
}
