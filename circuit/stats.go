package circuit

type Stats struct {
	// per-kind gate counts
	NbH    int
	NbX    int
	NbCNOT int
	NbRz   int
	// gates outside the optimized vocabulary
	NbOther int
	// number of gates acting on two qubits
	NbTwoQubit int
	// total gate count
	NbTotal int
}

func (c Circuit) GetStats() Stats {
	r := Stats{NbTotal: len(c.Gates)}
	for _, g := range c.Gates {
		switch g.Kind {
		case KindH:
			r.NbH++
		case KindX:
			r.NbX++
		case KindCNOT:
			r.NbCNOT++
		case KindRz:
			r.NbRz++
		default:
			r.NbOther++
		}
		if g.Control >= 0 {
			r.NbTwoQubit++
		}
	}
	return r
}
