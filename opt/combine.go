package opt

import "github.com/photonq/qopt/circuit"

// combineAngles fuses two rotations acting on the same classical
// condition into zero or one gate on qubit q. The arithmetic is exact:
// angles are integers mod 8, and a sum of 0 is a full turn, i.e. the
// identity.
func combineAngles(k1, k2, q int) []circuit.Gate {
	s := circuit.NormalizeAngle(k1 + k2)
	if s == 0 {
		return nil
	}
	return []circuit.Gate{circuit.Rz(s, q)}
}
