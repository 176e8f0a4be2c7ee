package parity

import "github.com/bits-and-blooms/bitset"

// Live and Blacklist are both qubit sets, but they play opposite roles
// during extraction and search: Live collects the qubits that belong to
// the subcircuit under construction, Blacklist collects the qubits whose
// classical tracking has been abandoned. They are distinct types so the
// two cannot be conflated.

// Live is the set of qubits currently part of an extracted subcircuit.
type Live struct {
	bits *bitset.BitSet
}

func NewLive(dim int) Live {
	return Live{bits: bitset.New(uint(dim))}
}

func (l Live) Add(q int) {
	l.bits.Set(uint(q))
}

func (l Live) Contains(q int) bool {
	return l.bits.Test(uint(q))
}

// Blacklist is the set of qubits whose classical value is no longer
// tracked. Once a qubit enters it, tracking is abandoned for the rest of
// the search.
type Blacklist struct {
	bits *bitset.BitSet
}

func NewBlacklist(dim int) Blacklist {
	return Blacklist{bits: bitset.New(uint(dim))}
}

func (b Blacklist) Add(q int) {
	b.bits.Set(uint(q))
}

func (b Blacklist) Contains(q int) bool {
	return b.bits.Test(uint(q))
}

// CoversLive reports whether every live qubit is blacklisted, i.e. the
// two sets are equal. Extraction maintains blacklist ⊆ live, so equality
// means no live qubit is still guaranteed classical.
func (b Blacklist) CoversLive(l Live) bool {
	return b.bits.Equal(l.bits)
}
