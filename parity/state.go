package parity

// State maps each qubit to its parity set. A qubit with no entry holds
// the implicit default {q}: its value is still its own input value.
// A State is local to one merge search and is discarded afterwards.
type State struct {
	dim int
	m   map[int]Set
}

func NewState(dim int) *State {
	return &State{dim: dim, m: make(map[int]Set)}
}

// Get returns the parity set of q, defaulting to {q} when untouched.
// The default lives here, in one accessor, so that callers never branch
// on presence themselves.
func (st *State) Get(q int) Set {
	if s, ok := st.m[q]; ok {
		return s
	}
	return Singleton(st.dim, q)
}

// ApplyCNOT records that after a CNOT the target's classical value is
// the XOR of control and target: state[t] = state[c] XOR state[t].
func (st *State) ApplyCNOT(c, t int) {
	st.m[t] = st.Get(c).Xor(st.Get(t))
}
