// Package qopt optimizes quantum circuits over the {H, X, CNOT, Rz}
// gate vocabulary. The central pass merges pairs of z rotations that act
// on provably identical classical conditions; NOT propagation and gate
// cancellation run around it to expose more merge opportunities.
package qopt

import (
	"github.com/photonq/qopt/circuit"
	"github.com/photonq/qopt/logger"
	"github.com/photonq/qopt/opt"
)

// Optimize rewrites c into an equivalent circuit with fewer (or smaller)
// gates. It is total: on input it cannot improve, it returns an
// equivalent circuit of the same size. The caller owes it in-range qubit
// indices; adapters should run circuit.Validate at the boundary.
func Optimize(c circuit.Circuit) circuit.Circuit {
	log := logger.Logger()
	in := c.GetStats()

	r := opt.PropagateNots(c)
	r = opt.CancelGates(r)
	r = opt.MergeRotations(r)
	r = opt.CancelGates(r)
	if len(r.Gates) > len(c.Gates) {
		// NOT propagation can copy an X across a cnot control and come
		// out behind; retry without it, those passes never grow the list
		r = opt.CancelGates(opt.MergeRotations(opt.CancelGates(c)))
	}

	stats := r.GetStats()
	log.Info().
		Int("nbGatesIn", in.NbTotal).
		Int("nbGatesOut", stats.NbTotal).
		Int("nbRz", stats.NbRz).
		Int("nbTwoQubit", stats.NbTwoQubit).
		Msg("optimized")
	return r
}

// MergeRotations runs only the rotation-merging pass.
func MergeRotations(c circuit.Circuit) circuit.Circuit {
	return opt.MergeRotations(c)
}
