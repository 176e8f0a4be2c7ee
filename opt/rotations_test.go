package opt

import (
	"testing"

	"github.com/photonq/qopt/circuit"
	"github.com/photonq/qopt/sim"
	"github.com/stretchr/testify/require"
)

func TestMergeRotationsAcrossCNOTs(t *testing.T) {
	c := circuit.New(2,
		circuit.Rz(1, 1),
		circuit.CNOT(0, 1),
		circuit.Rz(4, 1),
		circuit.CNOT(0, 1),
		circuit.Rz(4, 0),
		circuit.Rz(1, 1),
		circuit.CNOT(1, 0),
	)
	r := MergeRotations(c)
	require.Equal(t, []circuit.Gate{
		circuit.Rz(2, 1),
		circuit.CNOT(0, 1),
		circuit.Rz(4, 1),
		circuit.CNOT(0, 1),
		circuit.Rz(4, 0),
		circuit.CNOT(1, 0),
	}, r.Gates)
	require.True(t, sim.Equivalent(c, r, 1e-9))
}

func TestMergeAdjacentRotationsCancel(t *testing.T) {
	c := circuit.New(1, circuit.Rz(3, 0), circuit.Rz(5, 0))
	r := MergeRotations(c)
	require.Empty(t, r.Gates)
	require.True(t, sim.Equivalent(c, r, 1e-9))
}

func TestMergeSeparatedRotationsCancel(t *testing.T) {
	// the CNOT touches qubit 0 only as control and the Hadamard sits on
	// qubit 1, so qubit 0's parity survives and the rotations cancel
	c := circuit.New(2,
		circuit.Rz(3, 0),
		circuit.CNOT(0, 1),
		circuit.H(1),
		circuit.Rz(5, 0),
	)
	r := MergeRotations(c)
	require.Equal(t, []circuit.Gate{
		circuit.CNOT(0, 1),
		circuit.H(1),
	}, r.Gates)
	require.True(t, sim.Equivalent(c, r, 1e-9))
}

func TestXOffLiveSetGoesToHead(t *testing.T) {
	// the X never joins the live set, so extraction skips it and the
	// rotations still cancel
	c := circuit.New(2,
		circuit.Rz(3, 0),
		circuit.X(1),
		circuit.Rz(5, 0),
	)
	r := MergeRotations(c)
	require.Equal(t, []circuit.Gate{circuit.X(1)}, r.Gates)
	require.True(t, sim.Equivalent(c, r, 1e-9))
}

func TestXInsideSegmentBlocksSearch(t *testing.T) {
	// qubit 1 is live from the first CNOT on, so the X sits inside the
	// segment in both scan directions and the search gives up
	c := circuit.New(2,
		circuit.Rz(1, 0),
		circuit.CNOT(0, 1),
		circuit.X(1),
		circuit.CNOT(0, 1),
		circuit.Rz(1, 0),
	)
	r := MergeRotations(c)
	require.Equal(t, c.Gates, r.Gates)
}

func TestBackwardPassSkipsLateX(t *testing.T) {
	// forward search aborts on the X, but in the mirrored scan the X
	// precedes the CNOT and is skipped into the head
	c := circuit.New(2,
		circuit.Rz(3, 0),
		circuit.CNOT(0, 1),
		circuit.X(1),
		circuit.Rz(5, 0),
	)
	r := MergeRotations(c)
	require.Equal(t, []circuit.Gate{circuit.CNOT(0, 1), circuit.X(1)}, r.Gates)
	require.True(t, sim.Equivalent(c, r, 1e-9))
}

func TestHadamardBlocksMerging(t *testing.T) {
	c := circuit.New(1, circuit.Rz(1, 0), circuit.H(0), circuit.Rz(7, 0))
	r := MergeRotations(c)
	require.Equal(t, c.Gates, r.Gates)
}

func TestBackwardPassFindsLateMerge(t *testing.T) {
	// forward search blacklists qubit 0 at the early Hadamard, and the
	// CNOTs then drag qubit 1 into the blacklist; the mirrored scan
	// walks the CNOTs before the Hadamard and finds the merge
	c := circuit.New(2,
		circuit.Rz(1, 1),
		circuit.H(0),
		circuit.CNOT(0, 1),
		circuit.CNOT(0, 1),
		circuit.Rz(1, 1),
	)
	r := MergeRotations(c)
	require.Equal(t, []circuit.Gate{
		circuit.Rz(2, 1),
		circuit.H(0),
		circuit.CNOT(0, 1),
		circuit.CNOT(0, 1),
	}, r.Gates)
	require.True(t, sim.Equivalent(c, r, 1e-9))
}

func TestForeignGatesPassThrough(t *testing.T) {
	c := circuit.New(2,
		circuit.Rz(1, 0),
		circuit.CZ(0, 1),
		circuit.Rz(2, 0),
	)
	r := MergeRotations(c)
	require.Equal(t, c.Gates, r.Gates, "a CZ ends extraction at that point")
	require.True(t, sim.Equivalent(c, r, 1e-9))
}

func TestMergeRotationsEmptyAndTrivial(t *testing.T) {
	r := MergeRotations(circuit.New(1))
	require.Empty(t, r.Gates)

	c := circuit.New(2, circuit.H(0), circuit.CNOT(0, 1))
	require.Equal(t, c.Gates, MergeRotations(c).Gates)
}

func TestMergeRotationsChained(t *testing.T) {
	// three rotations on the same parity collapse into one after the
	// re-scan picks up the freshly merged rotation
	c := circuit.New(2,
		circuit.Rz(1, 0),
		circuit.CNOT(0, 1),
		circuit.Rz(2, 0),
		circuit.CNOT(0, 1),
		circuit.Rz(3, 0),
	)
	r := MergeRotations(c)
	require.Equal(t, []circuit.Gate{
		circuit.Rz(6, 0),
		circuit.CNOT(0, 1),
		circuit.CNOT(0, 1),
	}, r.Gates)
	require.True(t, sim.Equivalent(c, r, 1e-9))
}

func TestMergeRotationsNonIncrease(t *testing.T) {
	cases := []circuit.Circuit{
		circuit.New(2, circuit.H(0), circuit.Rz(1, 0), circuit.CNOT(0, 1), circuit.Rz(1, 0)),
		circuit.New(3, circuit.Rz(1, 0), circuit.Swap(0, 1), circuit.Rz(1, 1)),
		circuit.New(2, circuit.X(0), circuit.Rz(2, 0), circuit.X(0), circuit.Rz(6, 0)),
	}
	for _, c := range cases {
		r := MergeRotations(c)
		require.LessOrEqual(t, len(r.Gates), len(c.Gates))
		require.True(t, sim.Equivalent(c, r, 1e-9), "input %s", c)
	}
}
