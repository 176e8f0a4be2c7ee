// Package sim is a small statevector simulator for the optimizer's gate
// vocabulary. It exists to define the optimizer's contract: two circuits
// are interchangeable exactly when they induce the same linear operator,
// and the tests check optimized circuits against originals through it.
package sim

import (
	"math"
	"math/cmplx"

	"github.com/photonq/qopt/circuit"
)

type StateVector struct {
	Amplitudes []complex128
	Dim        int
}

// NewStateVector returns the all-zero basis state on dim qubits.
func NewStateVector(dim int) *StateVector {
	return NewBasisState(dim, 0)
}

// NewBasisState returns the computational basis state |idx> on dim
// qubits, with qubit q at bit position q.
func NewBasisState(dim, idx int) *StateVector {
	amps := make([]complex128, 1<<dim)
	amps[idx] = 1
	return &StateVector{Amplitudes: amps, Dim: dim}
}

func (s *StateVector) Apply(g circuit.Gate) {
	switch g.Kind {
	case circuit.KindH:
		s.applyH(g.Target)
	case circuit.KindX:
		s.applyX(g.Target)
	case circuit.KindCNOT:
		s.applyCNOT(g.Control, g.Target)
	case circuit.KindRz:
		s.applyRz(g.Target, g.Angle)
	case circuit.KindCZ:
		s.applyCZ(g.Control, g.Target)
	case circuit.KindSwap:
		s.applySwap(g.Control, g.Target)
	}
}

func (s *StateVector) Run(c circuit.Circuit) {
	for _, g := range c.Gates {
		s.Apply(g)
	}
}

func (s *StateVector) applyH(q int) {
	hFactor := complex(1.0/math.Sqrt2, 0)
	n := len(s.Amplitudes)
	bit := 1 << q
	newAmps := make([]complex128, n)
	for i := 0; i < n; i++ {
		if i&bit == 0 {
			j := i | bit
			newAmps[i] = hFactor * (s.Amplitudes[i] + s.Amplitudes[j])
			newAmps[j] = hFactor * (s.Amplitudes[i] - s.Amplitudes[j])
		}
	}
	s.Amplitudes = newAmps
}

func (s *StateVector) applyX(q int) {
	n := len(s.Amplitudes)
	bit := 1 << q
	for i := 0; i < n; i++ {
		if i&bit == 0 {
			j := i | bit
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}

// applyRz applies the phase gate diag(1, e^{ik·π/4}). In this convention
// k = 8 is exactly the identity, so dropping a full turn preserves the
// operator itself, not just the operator up to global phase.
func (s *StateVector) applyRz(q, k int) {
	n := len(s.Amplitudes)
	bit := 1 << q
	phase := cmplx.Exp(complex(0, float64(k)*math.Pi/4))
	for i := 0; i < n; i++ {
		if i&bit != 0 {
			s.Amplitudes[i] *= phase
		}
	}
}

func (s *StateVector) applyCNOT(control, target int) {
	n := len(s.Amplitudes)
	cBit := 1 << control
	tBit := 1 << target
	for i := 0; i < n; i++ {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}

func (s *StateVector) applyCZ(control, target int) {
	n := len(s.Amplitudes)
	cBit := 1 << control
	tBit := 1 << target
	for i := 0; i < n; i++ {
		if i&cBit != 0 && i&tBit != 0 {
			s.Amplitudes[i] *= -1
		}
	}
}

func (s *StateVector) applySwap(q1, q2 int) {
	n := len(s.Amplitudes)
	bit1 := 1 << q1
	bit2 := 1 << q2
	for i := 0; i < n; i++ {
		if i&bit1 != 0 && i&bit2 == 0 {
			j := (i & ^bit1) | bit2
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}

// Equivalent reports whether a and b induce the same operator, column by
// column: both circuits are applied to every basis state and the
// resulting amplitudes compared within eps. This is exact equality of
// the operators up to float rounding, not equality up to global phase.
func Equivalent(a, b circuit.Circuit, eps float64) bool {
	if a.Dim != b.Dim {
		return false
	}
	for idx := 0; idx < 1<<a.Dim; idx++ {
		sa := NewBasisState(a.Dim, idx)
		sb := NewBasisState(b.Dim, idx)
		sa.Run(a)
		sb.Run(b)
		for i := range sa.Amplitudes {
			if cmplx.Abs(sa.Amplitudes[i]-sb.Amplitudes[i]) > eps {
				return false
			}
		}
	}
	return true
}
