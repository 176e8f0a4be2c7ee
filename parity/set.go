// Package parity implements the classical-state bookkeeping used by the
// rotation-merging pass: parity sets, per-qubit state maps, and the two
// qubit-set roles threaded through subcircuit extraction.
package parity

import (
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Set is the parity set of a tracked qubit: the set of input qubits
// whose initial values, XORed together, equal the qubit's current
// classical value. All sets of one search share the same dim so that
// they compare structurally.
type Set struct {
	bits *bitset.BitSet
}

// Singleton returns the parity set {q}, the state of an untouched qubit.
func Singleton(dim, q int) Set {
	b := bitset.New(uint(dim))
	b.Set(uint(q))
	return Set{bits: b}
}

func (s Set) Clone() Set {
	return Set{bits: s.bits.Clone()}
}

// Xor returns the symmetric difference of s and o.
func (s Set) Xor(o Set) Set {
	return Set{bits: s.bits.SymmetricDifference(o.bits)}
}

func (s Set) Equal(o Set) bool {
	return s.bits.Equal(o.bits)
}

// IsSingleton reports whether s == {q}.
func (s Set) IsSingleton(q int) bool {
	return s.bits.Count() == 1 && s.bits.Test(uint(q))
}

func (s Set) String() string {
	elems := []string{}
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		elems = append(elems, strconv.Itoa(int(i)))
	}
	return "{" + strings.Join(elems, ",") + "}"
}
