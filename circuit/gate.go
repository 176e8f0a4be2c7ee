package circuit

// GateKind enumerates the types of gates that can be part of a Circuit.
type GateKind int

const (
	_ GateKind = iota
	KindH
	KindX
	KindCNOT
	KindRz
	KindCZ
	KindSwap
)

// Gate represents a single operation on the qubit register. It can be:
//  1. a Hadamard, bit flip, or z rotation on one qubit
//  2. a controlled-X with a control/target pair
//  3. a CZ or Swap, which the optimizer passes through untouched
type Gate struct {
	Kind    GateKind
	Target  int
	Control int // -1 for single-qubit gates
	Angle   int // eighth turns in [0, 8), meaningful for Rz only
}

// NormalizeAngle maps k to its representative in [0, 8).
func NormalizeAngle(k int) int {
	return ((k % 8) + 8) % 8
}

func H(q int) Gate {
	return Gate{Kind: KindH, Target: q, Control: -1}
}

func X(q int) Gate {
	return Gate{Kind: KindX, Target: q, Control: -1}
}

func CNOT(c, t int) Gate {
	return Gate{Kind: KindCNOT, Target: t, Control: c}
}

// Rz returns a rotation about the z axis by k eighth turns on qubit q.
func Rz(k, q int) Gate {
	return Gate{Kind: KindRz, Target: q, Control: -1, Angle: NormalizeAngle(k)}
}

func CZ(a, b int) Gate {
	return Gate{Kind: KindCZ, Target: b, Control: a}
}

func Swap(a, b int) Gate {
	return Gate{Kind: KindSwap, Target: b, Control: a}
}

// On reports whether the gate acts on qubit q.
func (g Gate) On(q int) bool {
	return g.Target == q || g.Control == q
}

// Qubits returns the qubits the gate acts on.
func (g Gate) Qubits() []int {
	if g.Control < 0 {
		return []int{g.Target}
	}
	return []int{g.Control, g.Target}
}

// Inverse returns the gate whose unitary is the adjoint of g's.
// H, X, CNOT, CZ and Swap are self-inverse; Rz negates its angle.
func (g Gate) Inverse() Gate {
	if g.Kind == KindRz {
		g.Angle = NormalizeAngle(-g.Angle)
	}
	return g
}
