package opt

import "github.com/photonq/qopt/circuit"

// CancelGates removes pairs of adjacent self-inverse gates and fuses
// adjacent rotations on the same qubit. Two gates count as adjacent when
// no gate between them acts on any qubit of the pair, so the first may
// be commuted next to the second. Identity rotations are dropped.
func CancelGates(c circuit.Circuit) circuit.Circuit {
	gates := make([]circuit.Gate, len(c.Gates))
	copy(gates, c.Gates)

	for changed := true; changed; {
		changed = false
		for i := 0; i < len(gates) && !changed; i++ {
			g := gates[i]
			if g.Kind == circuit.KindRz && g.Angle == 0 {
				gates = removeAt(gates, i)
				changed = true
				break
			}
			j := nextSharing(gates, i)
			if j < 0 {
				continue
			}
			h := gates[j]
			switch {
			case selfInversePair(g, h):
				gates = removeAt(gates, j)
				gates = removeAt(gates, i)
				changed = true
			case g.Kind == circuit.KindRz && h.Kind == circuit.KindRz && g.Target == h.Target:
				gates = removeAt(gates, j)
				gates[i] = circuit.Rz(g.Angle+h.Angle, g.Target)
				changed = true
			}
		}
	}
	return circuit.Circuit{Dim: c.Dim, Gates: gates}
}

// nextSharing returns the index of the first gate after i that acts on
// any qubit of gates[i], or -1.
func nextSharing(gates []circuit.Gate, i int) int {
	g := gates[i]
	for j := i + 1; j < len(gates); j++ {
		if gates[j].On(g.Target) || (g.Control >= 0 && gates[j].On(g.Control)) {
			return j
		}
	}
	return -1
}

func selfInversePair(g, h circuit.Gate) bool {
	if g.Kind != h.Kind {
		return false
	}
	switch g.Kind {
	case circuit.KindH, circuit.KindX:
		return g.Target == h.Target
	case circuit.KindCNOT:
		return g.Control == h.Control && g.Target == h.Target
	case circuit.KindCZ, circuit.KindSwap:
		// symmetric gates: the operand order does not matter
		return (g.Control == h.Control && g.Target == h.Target) ||
			(g.Control == h.Target && g.Target == h.Control)
	}
	return false
}

func removeAt(gates []circuit.Gate, i int) []circuit.Gate {
	return append(gates[:i], gates[i+1:]...)
}
