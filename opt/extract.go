// Package opt implements the optimization passes over gate lists: the
// rotation-merging pass and its supporting gate-cancellation and
// NOT-propagation passes.
package opt

import (
	"github.com/photonq/qopt/circuit"
	"github.com/photonq/qopt/parity"
)

// Extract splits gates into head ++ segment ++ tail without reordering
// across the three parts. The segment is the maximal run of {H, X, CNOT,
// Rz} gates reachable from qubit q while a live set and a blacklist are
// maintained; head collects the skipped gates that touch no live qubit,
// and tail starts at the first gate that ends the scan.
//
// The scan ends when the blacklist catches up with the live set (no live
// qubit is still guaranteed classical), when a gate outside the tracked
// vocabulary touches a live qubit, or when the gates run out.
func Extract(dim int, gates []circuit.Gate, q int) (head, segment, tail []circuit.Gate) {
	live := parity.NewLive(dim)
	live.Add(q)
	bl := parity.NewBlacklist(dim)

	head = make([]circuit.Gate, 0, len(gates))
	segment = make([]circuit.Gate, 0, len(gates))
	for i, g := range gates {
		if bl.CoversLive(live) {
			return head, segment, gates[i:]
		}
		if !touchesLive(g, live) {
			head = append(head, g)
			continue
		}
		switch g.Kind {
		case circuit.KindH:
			// the qubit leaves the classical subspace; stop tracking it
			bl.Add(g.Target)
		case circuit.KindX, circuit.KindRz:
		case circuit.KindCNOT:
			live.Add(g.Control)
			live.Add(g.Target)
			if bl.Contains(g.Control) {
				// the target now depends on an untracked control
				bl.Add(g.Target)
			}
		default:
			return head, segment, gates[i:]
		}
		segment = append(segment, g)
	}
	return head, segment, nil
}

func touchesLive(g circuit.Gate, live parity.Live) bool {
	if live.Contains(g.Target) {
		return true
	}
	return g.Control >= 0 && live.Contains(g.Control)
}
