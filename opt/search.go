package opt

import (
	"github.com/photonq/qopt/circuit"
	"github.com/photonq/qopt/parity"
)

// search walks segment left to right, threading the blacklist and the
// classical-state map, looking for a rotation whose parity set equals
// {q}. Such a rotation acts on the same classical condition as a
// rotation on q placed before the segment, so the two may be added.
//
// On success it returns the gates before the match, the matched angle
// and qubit, and the gates after the match. The search fails on an X or
// foreign gate and when the segment is exhausted.
func search(seg []circuit.Gate, bl parity.Blacklist, st *parity.State, q int) (before []circuit.Gate, k, matched int, after []circuit.Gate, ok bool) {
	before = make([]circuit.Gate, 0, len(seg))
	for i, g := range seg {
		switch g.Kind {
		case circuit.KindH:
			bl.Add(g.Target)
		case circuit.KindRz:
			if !bl.Contains(g.Target) && st.Get(g.Target).IsSingleton(q) {
				return before, g.Angle, g.Target, seg[i+1:], true
			}
		case circuit.KindCNOT:
			if bl.Contains(g.Control) {
				bl.Add(g.Target)
			} else if !bl.Contains(g.Target) {
				st.ApplyCNOT(g.Control, g.Target)
			}
		default:
			return nil, 0, 0, nil, false
		}
		before = append(before, g)
	}
	return nil, 0, 0, nil, false
}
