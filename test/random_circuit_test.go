package test

import (
	"testing"

	"github.com/photonq/qopt"
	"github.com/photonq/qopt/logger"
)

func init() {
	logger.Disable()
}

func testRandomCircuits(t *testing.T, conf *randomCircuitConfig, seedL, seedR int) {
	a := NewAssert(t)
	for seed := seedL; seed <= seedR; seed++ {
		conf.seed = seed
		c := randomCircuit(conf)
		r := qopt.Optimize(c)
		a.WellTyped(r)
		a.NotLarger(c, r)
		a.Preserves(c, r)
	}
}

func TestRandomCircuit1(t *testing.T) {
	testRandomCircuits(t, &randomCircuitConfig{
		dim:         randRange{2, 4},
		nbGates:     randRange{5, 40},
		hPercent:    15,
		xPercent:    15,
		cnotPercent: 30,
		rzPercent:   35,
	}, 1, 300)
}

func TestRandomCircuit2(t *testing.T) {
	// rotation heavy, no Hadamards: everything stays classical, so the
	// merge pass gets maximal opportunity
	testRandomCircuits(t, &randomCircuitConfig{
		dim:         randRange{2, 5},
		nbGates:     randRange{20, 60},
		hPercent:    0,
		xPercent:    10,
		cnotPercent: 40,
		rzPercent:   50,
	}, 301, 500)
}

func TestRandomCircuit3(t *testing.T) {
	// Hadamard heavy: most tracking gets blacklisted quickly and the
	// passes must still be equivalence preserving
	testRandomCircuits(t, &randomCircuitConfig{
		dim:         randRange{2, 4},
		nbGates:     randRange{10, 50},
		hPercent:    40,
		xPercent:    20,
		cnotPercent: 20,
		rzPercent:   15,
	}, 501, 700)
}

func TestRandomMergeRotations(t *testing.T) {
	a := NewAssert(t)
	conf := &randomCircuitConfig{
		dim:         randRange{2, 4},
		nbGates:     randRange{5, 40},
		hPercent:    10,
		xPercent:    10,
		cnotPercent: 35,
		rzPercent:   40,
	}
	for seed := 1; seed <= 300; seed++ {
		conf.seed = seed
		c := randomCircuit(conf)
		r := qopt.MergeRotations(c)
		a.WellTyped(r)
		a.NotLarger(c, r)
		a.Preserves(c, r)
	}
}
