package automaton

import "github.com/dekarrin/mindfa/internal/util"

// DFA is a deterministic finite automaton: at most one outgoing
// transition per (state, symbol) pair, no epsilon transitions. Initial is
// a pointer because a DFA determinized from an NFA with no initial states
// (the empty pattern) has no initial state at all, and that absence has
// to be representable distinctly from "initial state is id 0".
type DFA struct {
	Alphabet    util.Set[Symbol]
	States      util.Set[State]
	Transitions map[DFATransition]struct{}
	Initial     *State
	Final       util.Set[State]
	Counter     Counter
}

func newDFA() DFA {
	return DFA{
		Alphabet:    util.NewSet[Symbol](),
		States:      util.NewSet[State](),
		Transitions: map[DFATransition]struct{}{},
		Final:       util.NewSet[State](),
	}
}

func (d DFA) addTransition(from State, sym Symbol, to State) {
	d.Transitions[DFATransition{From: from, Symbol: sym, To: to}] = struct{}{}
}

// step returns the destination of the single transition leaving from on
// sym, and whether one exists.
func (d DFA) step(from State, sym Symbol) (State, bool) {
	for t := range d.Transitions {
		if t.From == from && t.Symbol == sym {
			return t.To, true
		}
	}
	return State(0), false
}

// Matches reports whether text is accepted by d in its entirety: starting
// at Initial, each rune of text is consumed in order, and the automaton
// must land on a Final state having consumed all of text and no more. A
// DFA with no Initial state (from an empty pattern) never matches
// anything, including the empty string.
func (d DFA) Matches(text string) bool {
	if d.Initial == nil {
		return false
	}

	current := *d.Initial
	for _, r := range text {
		next, ok := d.step(current, r)
		if !ok {
			return false
		}
		current = next
	}

	return d.Final.Has(current)
}

// Reachable returns the set of states reachable from start by a single
// transition on sym. For a DFA this set has at most one element, but the
// shape matches NFA.Reachable for symmetry across the pipeline's stages.
func (d DFA) Reachable(start State, sym Symbol) util.Set[State] {
	out := util.NewSet[State]()
	if to, ok := d.step(start, sym); ok {
		out.Add(to)
	}
	return out
}
