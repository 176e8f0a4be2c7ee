package opt

import (
	"testing"

	"github.com/photonq/qopt/circuit"
	"github.com/photonq/qopt/sim"
	"github.com/stretchr/testify/require"
)

func TestPropagateNotsCancelsPair(t *testing.T) {
	c := circuit.New(1, circuit.X(0), circuit.X(0))
	require.Empty(t, PropagateNots(c).Gates)
}

func TestPropagateNotsThroughHadamard(t *testing.T) {
	c := circuit.New(1, circuit.X(0), circuit.H(0))
	r := PropagateNots(c)
	require.Equal(t, []circuit.Gate{circuit.H(0), circuit.Rz(4, 0)}, r.Gates)
	require.True(t, sim.Equivalent(c, r, 1e-9))
}

func TestPropagateNotsThroughCNOTTarget(t *testing.T) {
	c := circuit.New(2, circuit.X(1), circuit.CNOT(0, 1))
	r := PropagateNots(c)
	require.Equal(t, []circuit.Gate{circuit.CNOT(0, 1), circuit.X(1)}, r.Gates)
	require.True(t, sim.Equivalent(c, r, 1e-9))
}

func TestPropagateNotsThroughCNOTControl(t *testing.T) {
	c := circuit.New(2, circuit.X(0), circuit.CNOT(0, 1))
	r := PropagateNots(c)
	require.Equal(t, []circuit.Gate{
		circuit.CNOT(0, 1),
		circuit.X(1),
		circuit.X(0),
	}, r.Gates)
	require.True(t, sim.Equivalent(c, r, 1e-9))
}

func TestPropagateNotsBlockedByRotation(t *testing.T) {
	c := circuit.New(1, circuit.X(0), circuit.Rz(3, 0))
	r := PropagateNots(c)
	require.Equal(t, c.Gates, r.Gates)
}

func TestPropagateNotsBlockedByForeignGate(t *testing.T) {
	c := circuit.New(2, circuit.X(0), circuit.CZ(0, 1))
	r := PropagateNots(c)
	require.Equal(t, c.Gates, r.Gates)
}

func TestPropagateNotsSkipsDisjointGates(t *testing.T) {
	c := circuit.New(2, circuit.X(0), circuit.H(1), circuit.X(0))
	r := PropagateNots(c)
	require.Equal(t, []circuit.Gate{circuit.H(1)}, r.Gates)
}

func TestPropagateNotsExposesCancellation(t *testing.T) {
	// the control-leg copy meets the existing X on the target
	c := circuit.New(2, circuit.X(0), circuit.CNOT(0, 1), circuit.X(1))
	r := PropagateNots(c)
	require.Equal(t, []circuit.Gate{
		circuit.CNOT(0, 1),
		circuit.X(0),
	}, r.Gates)
	require.True(t, sim.Equivalent(c, r, 1e-9))
}

func TestPropagateNotsTrailingX(t *testing.T) {
	c := circuit.New(2, circuit.X(0), circuit.CNOT(1, 0), circuit.H(1))
	r := PropagateNots(c)
	require.Equal(t, []circuit.Gate{
		circuit.CNOT(1, 0),
		circuit.H(1),
		circuit.X(0),
	}, r.Gates)
	require.True(t, sim.Equivalent(c, r, 1e-9))
}
