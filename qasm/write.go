package qasm

import (
	"fmt"
	"io"

	"github.com/photonq/qopt/circuit"
)

// rzNames holds the named forms of the eighth-turn rotations; the
// remaining angles are written as explicit rz gates.
var rzNames = map[int]string{
	1: "t",
	2: "s",
	4: "z",
	6: "sdg",
	7: "tdg",
}

// Write emits the circuit as an OpenQASM 2.0 program. Named phase gates
// are used where they exist, and identity rotations are skipped.
func Write(w io.Writer, c circuit.Circuit) error {
	if _, err := fmt.Fprintf(w, "OPENQASM 2.0;\ninclude \"qelib1.inc\";\nqreg q[%d];\n", c.Dim); err != nil {
		return err
	}
	for _, g := range c.Gates {
		var line string
		switch g.Kind {
		case circuit.KindH:
			line = fmt.Sprintf("h q[%d];", g.Target)
		case circuit.KindX:
			line = fmt.Sprintf("x q[%d];", g.Target)
		case circuit.KindCNOT:
			line = fmt.Sprintf("cx q[%d],q[%d];", g.Control, g.Target)
		case circuit.KindCZ:
			line = fmt.Sprintf("cz q[%d],q[%d];", g.Control, g.Target)
		case circuit.KindSwap:
			line = fmt.Sprintf("swap q[%d],q[%d];", g.Control, g.Target)
		case circuit.KindRz:
			if g.Angle == 0 {
				continue
			}
			if name, ok := rzNames[g.Angle]; ok {
				line = fmt.Sprintf("%s q[%d];", name, g.Target)
			} else {
				line = fmt.Sprintf("rz(%d*pi/4) q[%d];", g.Angle, g.Target)
			}
		default:
			return fmt.Errorf("unknown gate kind %d", g.Kind)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
