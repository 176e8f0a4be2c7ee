package test

import (
	"testing"

	"github.com/photonq/qopt/circuit"
	"github.com/photonq/qopt/sim"
)

type Assert struct {
	t *testing.T
}

func NewAssert(t *testing.T) *Assert {
	return &Assert{t: t}
}

// Preserves fails unless got induces exactly the operator of want.
func (a *Assert) Preserves(want, got circuit.Circuit) {
	a.t.Helper()
	if !sim.Equivalent(want, got, 1e-9) {
		a.t.Fatalf("circuits are not equivalent\n in:  %s\n out: %s", want, got)
	}
}

// NotLarger fails when out has more gates than in.
func (a *Assert) NotLarger(in, out circuit.Circuit) {
	a.t.Helper()
	if len(out.Gates) > len(in.Gates) {
		a.t.Fatalf("gate count grew from %d to %d\n in:  %s\n out: %s",
			len(in.Gates), len(out.Gates), in, out)
	}
}

// WellTyped fails when c uses out-of-range qubits or unknown gates.
func (a *Assert) WellTyped(c circuit.Circuit) {
	a.t.Helper()
	if err := circuit.Validate(c); err != nil {
		a.t.Fatalf("output circuit is not well typed: %v", err)
	}
}
