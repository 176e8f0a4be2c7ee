package circuit

import (
	"fmt"
	"strconv"
	"strings"
)

// Circuit is an ordered gate sequence over a register of Dim qubits.
// Order is semantically significant.
type Circuit struct {
	// number of qubits; fixed for the lifetime of the circuit
	Dim int
	// the gate list, applied left to right
	Gates []Gate
}

func New(dim int, gates ...Gate) Circuit {
	return Circuit{Dim: dim, Gates: gates}
}

func (c Circuit) Clone() Circuit {
	gates := make([]Gate, len(c.Gates))
	copy(gates, c.Gates)
	return Circuit{Dim: c.Dim, Gates: gates}
}

// Inverse returns the circuit whose unitary is the adjoint of c's:
// gates in reverse order, each replaced by its inverse.
func (c Circuit) Inverse() Circuit {
	gates := make([]Gate, len(c.Gates))
	for i, g := range c.Gates {
		gates[len(c.Gates)-1-i] = g.Inverse()
	}
	return Circuit{Dim: c.Dim, Gates: gates}
}

func checkQubit(q, dim int) error {
	if q < 0 || q >= dim {
		return fmt.Errorf("qubit %d is out of bound", q)
	}
	return nil
}

// Validate checks if the circuit is valid. The optimizer itself never
// calls this; it is owed valid input. Adapters that build circuits from
// external text should call it at the boundary.
func Validate(c Circuit) error {
	if c.Dim <= 0 {
		return fmt.Errorf("circuit has no qubits")
	}
	for i, g := range c.Gates {
		switch g.Kind {
		case KindH, KindX, KindRz:
			if g.Control != -1 {
				return fmt.Errorf("gate %d: single-qubit gate has a control", i)
			}
			if err := checkQubit(g.Target, c.Dim); err != nil {
				return fmt.Errorf("gate %d: %v", i, err)
			}
		case KindCNOT, KindCZ, KindSwap:
			if err := checkQubit(g.Control, c.Dim); err != nil {
				return fmt.Errorf("gate %d: %v", i, err)
			}
			if err := checkQubit(g.Target, c.Dim); err != nil {
				return fmt.Errorf("gate %d: %v", i, err)
			}
			if g.Control == g.Target {
				return fmt.Errorf("gate %d: control equals target %d", i, g.Target)
			}
		default:
			return fmt.Errorf("gate %d: unknown kind %d", i, g.Kind)
		}
		if g.Kind == KindRz && (g.Angle < 0 || g.Angle >= 8) {
			return fmt.Errorf("gate %d: angle %d is not normalized", i, g.Angle)
		}
	}
	return nil
}

func (g Gate) String() string {
	q := "q" + strconv.Itoa(g.Target)
	switch g.Kind {
	case KindH:
		return "h " + q
	case KindX:
		return "x " + q
	case KindRz:
		return "rz" + strconv.Itoa(g.Angle) + " " + q
	case KindCNOT:
		return "cx q" + strconv.Itoa(g.Control) + "," + q
	case KindCZ:
		return "cz q" + strconv.Itoa(g.Control) + "," + q
	case KindSwap:
		return "swap q" + strconv.Itoa(g.Control) + "," + q
	}
	return "?"
}

func (c Circuit) String() string {
	s := make([]string, len(c.Gates))
	for i, g := range c.Gates {
		s[i] = g.String()
	}
	return strings.Join(s, "; ")
}
