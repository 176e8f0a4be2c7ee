// Command qopt optimizes OpenQASM 2.0 circuits restricted to the
// {H, X, CNOT, Rz} gate vocabulary (plus the usual z/s/t sugar).
//
// Usage:
//
//	qopt -input bell.qasm -output bell_opt.qasm
//	qopt -input bell.qasm -stats              # report gate counts only
//	qopt -input bell.qasm -verify -output -   # re-simulate to double check
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/photonq/qopt"
	"github.com/photonq/qopt/circuit"
	"github.com/photonq/qopt/logger"
	"github.com/photonq/qopt/qasm"
	"github.com/photonq/qopt/sim"
)

// circuits above this size are too large to verify by simulation
const maxVerifyQubits = 12

var (
	inputFile  = flag.String("input", "", "Input OpenQASM file (required)")
	outputFile = flag.String("output", "-", "Output OpenQASM file, '-' for stdout")
	statsOnly  = flag.Bool("stats", false, "Report gate counts, don't write the circuit")
	verify     = flag.Bool("verify", false, "Check the optimized circuit against the input by simulation")
	quiet      = flag.Bool("quiet", false, "Suppress log output")
)

func main() {
	flag.Parse()
	if *inputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: -input flag is required\n\n")
		flag.Usage()
		os.Exit(1)
	}
	if *quiet {
		logger.Disable()
	}
	log := logger.Logger()

	f, err := os.Open(*inputFile)
	if err != nil {
		log.Fatal().Err(err).Msg("open input")
	}
	c, err := qasm.Parse(f)
	f.Close()
	if err != nil {
		log.Fatal().Err(err).Str("file", *inputFile).Msg("parse input")
	}

	r := qopt.Optimize(c)

	if *verify {
		if c.Dim > maxVerifyQubits {
			log.Warn().Int("dim", c.Dim).Msg("circuit too large to verify by simulation")
		} else if !sim.Equivalent(c, r, 1e-9) {
			log.Fatal().Msg("optimized circuit is not equivalent to the input")
		} else {
			log.Info().Msg("verified by simulation")
		}
	}

	if *statsOnly {
		printStats(os.Stdout, c.GetStats(), r.GetStats())
		return
	}
	out := os.Stdout
	if *outputFile != "-" {
		out, err = os.Create(*outputFile)
		if err != nil {
			log.Fatal().Err(err).Msg("create output")
		}
		defer out.Close()
	}
	if err := qasm.Write(out, r); err != nil {
		log.Fatal().Err(err).Msg("write output")
	}
}

func printStats(w *os.File, in, out circuit.Stats) {
	fmt.Fprintf(w, "%-10s %8s %8s\n", "", "input", "output")
	row := func(name string, a, b int) {
		fmt.Fprintf(w, "%-10s %8d %8d\n", name, a, b)
	}
	row("h", in.NbH, out.NbH)
	row("x", in.NbX, out.NbX)
	row("cx", in.NbCNOT, out.NbCNOT)
	row("rz", in.NbRz, out.NbRz)
	row("other", in.NbOther, out.NbOther)
	row("two-qubit", in.NbTwoQubit, out.NbTwoQubit)
	row("total", in.NbTotal, out.NbTotal)
}
