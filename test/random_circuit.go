package test

import (
	"math/rand"

	"github.com/photonq/qopt/circuit"
)

type randRange struct {
	l int
	r int
}

func (rr randRange) sample(r *rand.Rand) int {
	return r.Intn(rr.r-rr.l+1) + rr.l
}

// randomCircuitConfig controls the shape of generated circuits. The
// percentages select gate kinds cumulatively; whatever is left over
// becomes cz/swap gates, which the optimizer must carry through
// untouched.
type randomCircuitConfig struct {
	seed        int
	dim         randRange
	nbGates     randRange
	hPercent    int
	xPercent    int
	cnotPercent int
	rzPercent   int
}

// randomCircuit generates a random circuit; the behavior is
// deterministic based on the seed.
func randomCircuit(conf *randomCircuitConfig) circuit.Circuit {
	rand := rand.New(rand.NewSource(int64(conf.seed)))
	dim := conf.dim.sample(rand)
	if dim < 2 {
		dim = 2
	}
	n := conf.nbGates.sample(rand)
	gates := make([]circuit.Gate, 0, n)
	for i := 0; i < n; i++ {
		q := rand.Intn(dim)
		other := (q + 1 + rand.Intn(dim-1)) % dim
		op := rand.Intn(100)
		switch {
		case op < conf.hPercent:
			gates = append(gates, circuit.H(q))
		case op < conf.hPercent+conf.xPercent:
			gates = append(gates, circuit.X(q))
		case op < conf.hPercent+conf.xPercent+conf.cnotPercent:
			gates = append(gates, circuit.CNOT(q, other))
		case op < conf.hPercent+conf.xPercent+conf.cnotPercent+conf.rzPercent:
			gates = append(gates, circuit.Rz(rand.Intn(8), q))
		default:
			if rand.Intn(2) == 0 {
				gates = append(gates, circuit.CZ(q, other))
			} else {
				gates = append(gates, circuit.Swap(q, other))
			}
		}
	}
	return circuit.New(dim, gates...)
}
