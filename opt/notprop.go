package opt

import "github.com/photonq/qopt/circuit"

// PropagateNots pushes X gates toward the end of the gate list, using
// the rewrite rules
//
//	X q ; X q          = (nothing)
//	X q ; H q          = H q ; Rz(4) q
//	X c ; CNOT(c, t)   = CNOT(c, t) ; X c ; X t
//	X t ; CNOT(c, t)   = CNOT(c, t) ; X t
//
// so that X gates either cancel, turn into rotations, or pile up at the
// end where later passes see more uniform material. Every rule preserves
// the operator exactly, so stopping early is always sound; commuting X
// past a rotation is deliberately not among the rules, since
// X·Rz(k) = Rz(-k)·X holds only up to a global phase. The pass is fuel
// bounded for termination.
func PropagateNots(c circuit.Circuit) circuit.Circuit {
	gates := make([]circuit.Gate, len(c.Gates))
	copy(gates, c.Gates)

	out := make([]circuit.Gate, 0, len(gates))
	fuel := len(gates) + 1
	for len(gates) > 0 && fuel > 0 {
		fuel--
		g := gates[0]
		gates = gates[1:]
		if g.Kind != circuit.KindX {
			out = append(out, g)
			continue
		}
		gates = propagateNot(gates, g.Target, len(gates))
	}
	out = append(out, gates...)
	return circuit.Circuit{Dim: c.Dim, Gates: out}
}

// propagateNot rewrites rest as if an X on q ran immediately before it,
// pushing the X right until it cancels, converts, or gets stuck.
func propagateNot(rest []circuit.Gate, q, fuel int) []circuit.Gate {
	if fuel <= 0 {
		return insertAt(rest, 0, circuit.X(q))
	}
	for i, g := range rest {
		if !g.On(q) {
			continue
		}
		switch g.Kind {
		case circuit.KindX:
			return removeAt(cloneGates(rest), i)
		case circuit.KindH:
			return insertAt(rest, i+1, circuit.Rz(4, q))
		case circuit.KindCNOT:
			out := cloneGates(rest[:i+1])
			tail := rest[i+1:]
			if g.Control == q {
				// the flip on the control copies onto the target
				tail = propagateNot(tail, g.Target, fuel-1)
			}
			return append(out, propagateNot(tail, q, fuel-1)...)
		default:
			// can't move the X past a rotation or a foreign gate
			return insertAt(rest, i, circuit.X(q))
		}
	}
	return append(cloneGates(rest), circuit.X(q))
}

func cloneGates(gates []circuit.Gate) []circuit.Gate {
	out := make([]circuit.Gate, len(gates))
	copy(out, gates)
	return out
}

func insertAt(gates []circuit.Gate, i int, g circuit.Gate) []circuit.Gate {
	out := make([]circuit.Gate, 0, len(gates)+1)
	out = append(out, gates[:i]...)
	out = append(out, g)
	return append(out, gates[i:]...)
}
