package automaton

import "github.com/dekarrin/mindfa/internal/util"

// NFA is a nondeterministic finite automaton with epsilon transitions. It
// mirrors the shape of ictiobus's NFA[E] (alphabet/states/transitions/
// initial/final/counter), but the state identities are plain State values
// rather than grammar-rule strings, and labels are the epsilon-or-symbol
// sum type from label.go rather than a bare string keyed by "" for
// epsilon.
type NFA struct {
	Alphabet    util.Set[Symbol]
	States      util.Set[State]
	Transitions map[NFATransition]struct{}
	Initial     util.Set[State]
	Final       util.Set[State]
	Counter     Counter
}

func newNFA() NFA {
	return NFA{
		Alphabet:    util.NewSet[Symbol](),
		States:      util.NewSet[State](),
		Transitions: map[NFATransition]struct{}{},
		Initial:     util.NewSet[State](),
		Final:       util.NewSet[State](),
	}
}

func (n NFA) addTransition(from State, label Label, to State) {
	n.Transitions[NFATransition{From: from, Label: label, To: to}] = struct{}{}
}

// FromChar builds the two-state fragment that matches exactly the single
// character c.
func FromChar(c Symbol) NFA {
	n := newNFA()
	s1 := n.Counter.Tick()
	s2 := n.Counter.Tick()

	n.Alphabet.Add(c)
	n.States.Add(s1)
	n.States.Add(s2)
	n.addTransition(s1, SymbolLabel(c), s2)
	n.Initial.Add(s1)
	n.Final.Add(s2)

	return n
}

// FromOptionalChar builds the fragment for "c?": matches c or the empty
// string.
func FromOptionalChar(c Symbol) NFA {
	n := FromChar(c)
	n.addTransition(n.Initial.One(), Epsilon(), n.Final.One())
	return n
}

// FromPlusChar builds the fragment for "c+": matches one or more c.
func FromPlusChar(c Symbol) NFA {
	n := FromChar(c)
	final := n.Final.One()
	n.addTransition(final, SymbolLabel(c), final)
	return n
}

// shift returns a copy of n with every state id (in States, Initial,
// Final, and both endpoints of every transition) increased by amount.
// The label side of a transition is untouched. It is the building block
// concat/union use to keep two NFAs' id spaces disjoint before combining
// them.
func (n NFA) shift(amount uint32) NFA {
	shiftState := func(s State) State { return State(uint32(s) + amount) }

	shifted := newNFA()
	shifted.Alphabet = n.Alphabet.Copy()
	shifted.Counter = Counter{next: n.Counter.Value() + amount}

	for _, s := range n.States.Elements() {
		shifted.States.Add(shiftState(s))
	}
	for _, s := range n.Initial.Elements() {
		shifted.Initial.Add(shiftState(s))
	}
	for _, s := range n.Final.Elements() {
		shifted.Final.Add(shiftState(s))
	}
	for t := range n.Transitions {
		shifted.addTransition(shiftState(t.From), t.Label, shiftState(t.To))
	}

	return shifted
}

func unionTransitions(a, b map[NFATransition]struct{}) map[NFATransition]struct{} {
	out := make(map[NFATransition]struct{}, len(a)+len(b))
	for t := range a {
		out[t] = struct{}{}
	}
	for t := range b {
		out[t] = struct{}{}
	}
	return out
}

// Concat returns the NFA for "self followed by other": other is shifted
// to keep its ids disjoint from self's, an epsilon edge is added from
// every one of self's final states to every one of (shifted) other's
// initial states, and the result accepts in other's final states. self's
// initial states are carried through unchanged.
func (self NFA) Concat(other NFA) NFA {
	shiftedOther := other.shift(self.Counter.Value())

	result := NFA{
		Alphabet:    self.Alphabet.Union(shiftedOther.Alphabet),
		States:      self.States.Union(shiftedOther.States),
		Transitions: unionTransitions(self.Transitions, shiftedOther.Transitions),
		Initial:     self.Initial.Copy(),
		Final:       shiftedOther.Final.Copy(),
		Counter:     Counter{next: self.Counter.Value() + other.Counter.Value()},
	}

	for _, f := range self.Final.Elements() {
		for _, i := range shiftedOther.Initial.Elements() {
			result.addTransition(f, Epsilon(), i)
		}
	}

	return result
}

// Union returns the NFA accepting everything self or other accepts: other
// is shifted disjoint from self and every field is merged.
func (self NFA) Union(other NFA) NFA {
	shiftedOther := other.shift(self.Counter.Value())

	return NFA{
		Alphabet:    self.Alphabet.Union(shiftedOther.Alphabet),
		States:      self.States.Union(shiftedOther.States),
		Transitions: unionTransitions(self.Transitions, shiftedOther.Transitions),
		Initial:     self.Initial.Union(shiftedOther.Initial),
		Final:       self.Final.Union(shiftedOther.Final),
		Counter:     Counter{next: self.Counter.Value() + other.Counter.Value()},
	}
}

// Kleene returns the NFA for zero-or-more repetitions of self: a fresh
// initial/final pair wraps the original automaton with epsilon edges for
// enter, repeat, exit, and direct-accept-empty.
func (self NFA) Kleene() NFA {
	result := NFA{
		Alphabet:    self.Alphabet.Copy(),
		States:      self.States.Copy(),
		Transitions: unionTransitions(self.Transitions, nil),
		Counter:     self.Counter,
	}

	si := result.Counter.Tick()
	sf := result.Counter.Tick()
	result.States.Add(si)
	result.States.Add(sf)

	for _, i := range self.Initial.Elements() {
		result.addTransition(si, Epsilon(), i)
	}
	for _, f := range self.Final.Elements() {
		result.addTransition(f, Epsilon(), sf)
		for _, i := range self.Initial.Elements() {
			result.addTransition(f, Epsilon(), i)
		}
	}
	result.addTransition(si, Epsilon(), sf)

	result.Initial = util.NewSet(si)
	result.Final = util.NewSet(sf)

	return result
}

// Reachable returns the set of states reachable from start by a single
// transition labeled label (concrete symbol or epsilon).
func (n NFA) Reachable(start State, label Label) util.Set[State] {
	out := util.NewSet[State]()
	for t := range n.Transitions {
		if t.From == start && t.Label == label {
			out.Add(t.To)
		}
	}
	return out
}

// EpsilonClosure returns the smallest superset of states closed under
// following epsilon edges, computed by fixed-point traversal exactly like
// ictiobus's NFA.EpsilonClosure (there over a single state with a Stack of
// NFAState; here over a set of states with a worklist slice, since States
// are plain values rather than named structs worth pushing whole).
func (n NFA) EpsilonClosure(states util.Set[State]) util.Set[State] {
	closure := states.Copy()
	worklist := states.Elements()

	for len(worklist) > 0 {
		s := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		for _, next := range n.Reachable(s, Epsilon()).Elements() {
			if !closure.Has(next) {
				closure.Add(next)
				worklist = append(worklist, next)
			}
		}
	}

	return closure
}
