package automaton

// NFATransition is an immutable (from, label, to) triple where label may
// be epsilon. Two transitions are equal iff all three components are
// equal -- true "for free" here since the struct is comparable and holds
// only value types, unlike the teacher's ictiobus FATransition which
// carries its label as a bare string and has to be parsed back out of a
// debug rendering (parseFATransition) to compare on the nose.
type NFATransition struct {
	From  State
	Label Label
	To    State
}

// Less gives the lexicographic order over (From, Label, To) spec requires
// so transitions can live in sorted containers with deterministic
// iteration.
func (t NFATransition) Less(o NFATransition) bool {
	if t.From != o.From {
		return t.From < o.From
	}
	if t.Label != o.Label {
		return t.Label.Less(o.Label)
	}
	return t.To < o.To
}

// DFATransition is the DFA equivalent of NFATransition: the label is
// always a concrete Symbol, never epsilon.
type DFATransition struct {
	From   State
	Symbol Symbol
	To     State
}

func (t DFATransition) Less(o DFATransition) bool {
	if t.From != o.From {
		return t.From < o.From
	}
	if t.Symbol != o.Symbol {
		return t.Symbol < o.Symbol
	}
	return t.To < o.To
}
