// Package mindfa compiles a small regex-like surface syntax into a
// minimal DFA and exposes whole-string matching against it. The pipeline
// is parse -> determinize -> minimize, run once at construction time;
// Expression.Matches is then a pure read over the resulting automaton.
package mindfa

import (
	"github.com/dekarrin/mindfa/internal/automaton"
	"github.com/dekarrin/mindfa/internal/parser"
)

// Expression is a compiled pattern: an immutable minimal DFA plus the
// source pattern it was built from. The zero value is not meaningful;
// construct one with New.
type Expression struct {
	pattern string
	dfa     automaton.DFA
}

// New compiles pattern into an Expression. Supported syntax is a literal
// run of characters, optionally separated into alternatives by '|', with
// postfix '?' (zero-or-one), '*' (zero-or-more), and '+' (one-or-more)
// attached to a single preceding character.
//
// The empty pattern produces an Expression that matches nothing at all,
// not even the empty string: it denotes the empty language, not the
// language containing only the empty string. A malformed pattern (a
// postfix operator with no preceding character to attach to, or two in a
// row) is never rejected; the offending character is treated as a
// literal. This leniency is deliberate and part of the public contract,
// not an oversight -- see the parser package for exactly how each case
// resolves.
func New(pattern string) Expression {
	nfa := parser.Parse(pattern)
	dfa := automaton.NewDeterminizer(nfa).Determinize()
	minimal := automaton.NewMinimizer(dfa).Minimize()

	return Expression{
		pattern: pattern,
		dfa:     minimal,
	}
}

// Matches reports whether text, in its entirety, is in the language
// denoted by e's pattern. There is no partial matching and no implied
// anchoring: the whole string must be consumed and land on an accepting
// state. A character in text that never appears in the pattern causes an
// immediate false, since no transition exists for it.
func (e Expression) Matches(text string) bool {
	return e.dfa.Matches(text)
}

// Pattern returns the source pattern e was compiled from.
func (e Expression) Pattern() string {
	return e.pattern
}

// Dump renders e's minimized DFA as a human-readable transition table,
// useful for debugging a pattern's compiled form. It has no effect on
// Matches and is not part of the matching semantics.
func (e Expression) Dump() string {
	return e.dfa.Dump()
}

// Snapshot returns a flat, deterministically-ordered encoding of e's
// compiled DFA suitable for byte-for-byte comparison across independent
// compiles of the same pattern.
func (e Expression) Snapshot() automaton.Snapshot {
	return e.dfa.Snapshot()
}
