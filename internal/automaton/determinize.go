package automaton

import (
	"strings"

	"github.com/dekarrin/mindfa/internal/util"
)

// Determinizer performs subset construction with epsilon closures, turning
// an NFA into an equivalent, total DFA. It is a distinct type (rather than
// a free function) so the working sets built up during exploration --
// the frontier and the canonical-key-to-id table -- do not have to be
// threaded through a chain of helper function arguments, mirroring how
// the teacher's LALR1 DFA construction keeps its frontier and seen-set as
// locals of one big constructor function; here they are promoted to
// fields since the algorithm is big enough to read better split across
// methods.
type Determinizer struct {
	nfa NFA

	dfa     DFA
	idOf    map[string]State
	setOf   map[State]util.Set[State]
	counter Counter
}

// NewDeterminizer prepares a Determinizer for nfa. Call Determinize to run
// it; the zero Determinizer is not usable.
func NewDeterminizer(nfa NFA) *Determinizer {
	return &Determinizer{
		nfa:   nfa,
		idOf:  map[string]State{},
		setOf: map[State]util.Set[State]{},
	}
}

// canonicalKey returns the sorted, comma-joined textual representation of
// a set of NFA states, used as the map key identifying a DFA set-state.
// Sorting first guarantees the same set of states always produces the
// same key regardless of discovery order.
func canonicalKey(states util.Set[State]) string {
	elems := states.Elements()
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = itoa(uint32(e))
	}
	return strings.Join(parts, ",")
}

func itoa(v uint32) string {
	if v == 0 {
		return "0"
	}
	var buf [10]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}

// idFor returns the DFA state id for the given set of NFA states,
// allocating a fresh one and registering it in the frontier-tracking maps
// if this exact set has not been seen before. The second return value
// reports whether the id was freshly allocated.
func (dz *Determinizer) idFor(states util.Set[State]) (State, bool) {
	key := canonicalKey(states)
	if id, ok := dz.idOf[key]; ok {
		return id, false
	}
	id := dz.counter.Tick()
	dz.idOf[key] = id
	dz.setOf[id] = states
	return id, true
}

// reach computes move-then-close: epsilon_closure(⋃ reachable(s, a)) for
// every s in states.
func (dz *Determinizer) reach(states util.Set[State], a Symbol) util.Set[State] {
	moved := util.NewSet[State]()
	for _, s := range states.Elements() {
		moved.AddAll(dz.nfa.Reachable(s, SymbolLabel(a)))
	}
	return dz.nfa.EpsilonClosure(moved)
}

// Determinize runs subset construction and returns the resulting DFA. It
// is idempotent to call more than once but wasteful; callers should treat
// a Determinizer as single-use.
func (dz *Determinizer) Determinize() DFA {
	dz.idOf = map[string]State{}
	dz.setOf = map[State]util.Set[State]{}
	dz.counter = Counter{}
	dz.dfa = newDFA()
	dz.dfa.Alphabet = dz.nfa.Alphabet.Copy()

	if dz.nfa.Initial.Empty() {
		// An NFA with no initial states at all arises only from a pattern
		// whose alternatives are all empty, such as "" or "|" (see
		// parser.Parse); it denotes the empty language, not
		// the language of the empty string, so the DFA gets no initial
		// state rather than an initial dead state.
		return dz.dfa
	}

	q0 := dz.nfa.EpsilonClosure(dz.nfa.Initial)
	q0ID, _ := dz.idFor(q0)
	initial := q0ID
	dz.dfa.Initial = &initial
	dz.dfa.States.Add(q0ID)

	alphabet := dz.dfa.Alphabet.Elements()
	frontier := []State{q0ID}

	for len(frontier) > 0 {
		s := frontier[0]
		frontier = frontier[1:]

		setS := dz.setOf[s]
		for _, a := range alphabet {
			t := dz.reach(setS, a)
			tID, fresh := dz.idFor(t)
			if fresh {
				dz.dfa.States.Add(tID)
				frontier = append(frontier, tID)
			}
			dz.dfa.addTransition(s, a, tID)
		}
	}

	for id, set := range dz.setOf {
		if set.Intersects(dz.nfa.Final) {
			dz.dfa.Final.Add(id)
		}
	}

	dz.dfa.Counter = dz.counter

	return dz.dfa
}
