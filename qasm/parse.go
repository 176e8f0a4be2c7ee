// Package qasm converts between OpenQASM 2.0 text and the gate-list
// representation. It accepts the optimizer's vocabulary plus the usual
// sugar (z, s, t, sdg, tdg) which it converts to exact eighth-turn
// rotations; angles must be exact multiples of pi/4. The parser owns all
// input validation so the optimizer core can stay total.
package qasm

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/photonq/qopt/circuit"
)

// Pre-compiled regexps for QASM parsing.
var (
	qregRegex       = regexp.MustCompile(`^qreg\s+(\w+)\[(\d+)\]$`)
	singleGateRegex = regexp.MustCompile(`^(\w+)\s+(\w+)\[(\d+)\]$`)
	paramGateRegex  = regexp.MustCompile(`^(\w+)\s*\(([^)]*)\)\s+(\w+)\[(\d+)\]$`)
	twoQubitRegex   = regexp.MustCompile(`^(\w+)\s+(\w+)\[(\d+)\]\s*,\s*(\w+)\[(\d+)\]$`)
	angleRegex      = regexp.MustCompile(`^(-)?(?:(\d+)\s*\*\s*)?pi(?:\s*/\s*(2|4))?$`)
)

// sugar maps named phase gates to eighth turns.
var sugar = map[string]int{
	"z":   4,
	"s":   2,
	"sdg": 6,
	"t":   1,
	"tdg": 7,
}

// register is a declared qreg: its qubits map to the flat range
// [offset, offset+size).
type register struct {
	offset int
	size   int
}

// registerFile maps register names to their slot in the flat qubit
// numbering, in declaration order.
type registerFile map[string]register

// resolve maps a name[idx] operand to its flat qubit index.
func (rf registerFile) resolve(name string, idx int) (int, error) {
	reg, ok := rf[name]
	if !ok {
		return 0, fmt.Errorf("unknown register %q", name)
	}
	if idx < 0 || idx >= reg.size {
		return 0, fmt.Errorf("qubit %s[%d] is out of bound", name, idx)
	}
	return reg.offset + idx, nil
}

// Parse reads an OpenQASM 2.0 program restricted to the optimizer's
// vocabulary and returns the corresponding circuit. Multiple qreg
// declarations are laid out consecutively in declaration order.
func Parse(r io.Reader) (circuit.Circuit, error) {
	c := circuit.Circuit{}
	regs := registerFile{}
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if i := strings.Index(line, "//"); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		if line == "" {
			continue
		}
		line = strings.TrimSuffix(line, ";")
		switch {
		case strings.HasPrefix(line, "OPENQASM"), strings.HasPrefix(line, "include"):
			continue
		case strings.HasPrefix(line, "creg"), strings.HasPrefix(line, "barrier"):
			continue
		}
		if m := qregRegex.FindStringSubmatch(line); m != nil {
			if _, ok := regs[m[1]]; ok {
				return circuit.Circuit{}, fmt.Errorf("line %d: register %q declared twice", lineNo, m[1])
			}
			n, _ := strconv.Atoi(m[2])
			regs[m[1]] = register{offset: c.Dim, size: n}
			c.Dim += n
			continue
		}
		g, err := parseGate(line, regs)
		if err != nil {
			return circuit.Circuit{}, fmt.Errorf("line %d: %v", lineNo, err)
		}
		c.Gates = append(c.Gates, g)
	}
	if err := sc.Err(); err != nil {
		return circuit.Circuit{}, err
	}
	if err := circuit.Validate(c); err != nil {
		return circuit.Circuit{}, err
	}
	return c, nil
}

func parseGate(line string, regs registerFile) (circuit.Gate, error) {
	if m := twoQubitRegex.FindStringSubmatch(line); m != nil {
		ia, _ := strconv.Atoi(m[3])
		a, err := regs.resolve(m[2], ia)
		if err != nil {
			return circuit.Gate{}, err
		}
		ib, _ := strconv.Atoi(m[5])
		b, err := regs.resolve(m[4], ib)
		if err != nil {
			return circuit.Gate{}, err
		}
		switch m[1] {
		case "cx":
			return circuit.CNOT(a, b), nil
		case "cz":
			return circuit.CZ(a, b), nil
		case "swap":
			return circuit.Swap(a, b), nil
		}
		return circuit.Gate{}, fmt.Errorf("unsupported two-qubit gate %q", m[1])
	}
	if m := paramGateRegex.FindStringSubmatch(line); m != nil {
		iq, _ := strconv.Atoi(m[4])
		q, err := regs.resolve(m[3], iq)
		if err != nil {
			return circuit.Gate{}, err
		}
		if m[1] != "rz" && m[1] != "u1" && m[1] != "p" {
			return circuit.Gate{}, fmt.Errorf("unsupported parameterized gate %q", m[1])
		}
		k, err := parseEighthTurns(m[2])
		if err != nil {
			return circuit.Gate{}, err
		}
		return circuit.Rz(k, q), nil
	}
	if m := singleGateRegex.FindStringSubmatch(line); m != nil {
		iq, _ := strconv.Atoi(m[3])
		q, err := regs.resolve(m[2], iq)
		if err != nil {
			return circuit.Gate{}, err
		}
		switch m[1] {
		case "h":
			return circuit.H(q), nil
		case "x":
			return circuit.X(q), nil
		}
		if k, ok := sugar[m[1]]; ok {
			return circuit.Rz(k, q), nil
		}
		return circuit.Gate{}, fmt.Errorf("unsupported gate %q", m[1])
	}
	return circuit.Gate{}, fmt.Errorf("cannot parse %q", line)
}

// parseEighthTurns reads an angle expression that is an exact multiple
// of pi/4 (e.g. "pi/4", "3*pi/4", "-pi/2", "pi", "0") and returns the
// multiple. Anything else is rejected; the rotation-merging arithmetic
// is exact and no float angle ever enters the circuit.
func parseEighthTurns(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "0" {
		return 0, nil
	}
	m := angleRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("angle %q is not a multiple of pi/4", s)
	}
	coeff := 1
	if m[2] != "" {
		coeff, _ = strconv.Atoi(m[2])
	}
	unit := 4
	if m[3] == "2" {
		unit = 2
	} else if m[3] == "4" {
		unit = 1
	}
	k := coeff * unit
	if m[1] == "-" {
		k = -k
	}
	return k, nil
}
