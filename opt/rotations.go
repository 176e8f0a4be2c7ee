package opt

import "github.com/photonq/qopt/circuit"

// MergeRotations fuses pairs of z rotations that act on provably
// identical classical conditions, however far apart they sit in the gate
// list. A forward pass catches pairs whose match lies after the rotation
// in program order; a second pass over the inverted circuit, using
// MergeAtEnd, catches the mirror-image pairs. Gates outside {H, X, CNOT,
// Rz} pass through untouched and only bound how far a merge can reach.
func MergeRotations(c circuit.Circuit) circuit.Circuit {
	fwd := mergePass(c, false)
	bwd := mergePass(fwd.Inverse(), true)
	return bwd.Inverse()
}

// mergePass scans left to right; at each rotation it extracts the
// subcircuit of the remainder and tries to merge the rotation into it.
// After a successful splice the scan resumes at the splice point, so a
// freshly placed rotation can merge again. The number of rewrites is
// bounded by the original length; each successful merge strictly reduces
// the gate count, so the bound never truncates a legitimate merge.
func mergePass(c circuit.Circuit, atEnd bool) circuit.Circuit {
	gates := make([]circuit.Gate, len(c.Gates))
	copy(gates, c.Gates)

	fuel := len(gates)
	for i := 0; i < len(gates); {
		g := gates[i]
		if g.Kind != circuit.KindRz || fuel == 0 {
			i++
			continue
		}
		head, segment, tail := Extract(c.Dim, gates[i+1:], g.Target)
		var rewritten []circuit.Gate
		var ok bool
		if atEnd {
			rewritten, ok = MergeAtEnd(c.Dim, segment, g.Angle, g.Target)
		} else {
			rewritten, ok = MergeAtBeginning(c.Dim, segment, g.Angle, g.Target)
		}
		if !ok {
			i++
			continue
		}
		next := make([]circuit.Gate, 0, len(gates)-1)
		next = append(next, gates[:i]...)
		next = append(next, head...)
		next = append(next, rewritten...)
		next = append(next, tail...)
		gates = next
		fuel--
	}
	return circuit.Circuit{Dim: c.Dim, Gates: gates}
}
