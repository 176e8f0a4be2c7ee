package opt

import (
	"github.com/photonq/qopt/circuit"
	"github.com/photonq/qopt/parity"
)

// MergeAtBeginning merges a rotation Rz(k, q), conceptually placed just
// before segment, with a matching rotation found inside it. The combined
// rotation ends up at the very front of the rewritten segment. ok is
// false when no match exists, in which case the segment is unchanged.
func MergeAtBeginning(dim int, segment []circuit.Gate, k, q int) ([]circuit.Gate, bool) {
	before, k2, _, after, ok := search(segment, parity.NewBlacklist(dim), parity.NewState(dim), q)
	if !ok {
		return nil, false
	}
	out := make([]circuit.Gate, 0, len(segment))
	out = append(out, combineAngles(k, k2, q)...)
	out = append(out, before...)
	out = append(out, after...)
	return out, true
}

// MergeAtEnd is the symmetric variant: the combined rotation is placed
// where the matched gate used to be, on the matched qubit.
func MergeAtEnd(dim int, segment []circuit.Gate, k, q int) ([]circuit.Gate, bool) {
	before, k2, q2, after, ok := search(segment, parity.NewBlacklist(dim), parity.NewState(dim), q)
	if !ok {
		return nil, false
	}
	out := make([]circuit.Gate, 0, len(segment))
	out = append(out, before...)
	out = append(out, combineAngles(k, k2, q2)...)
	out = append(out, after...)
	return out, true
}
