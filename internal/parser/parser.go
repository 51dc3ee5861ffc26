// Package parser turns the surface pattern syntax into an NFA fragment,
// completing the job ictiobus's lex.RegexToNFA stub never got around to
// (that one just returns a zero-value NFA and a comment admitting as
// much). This parser targets a much smaller grammar -- literal runes
// plus postfix ?, *, + and a top-level | alternation -- so it is a
// single recursive-descent-free scan rather than a full Thompson
// construction over arbitrary regex syntax.
package parser

import "github.com/dekarrin/mindfa/internal/automaton"

// Parse builds the NFA denoted by pattern:
//
//  1. split pattern on '|' into alternatives
//  2. scan each alternative left to right; a lone char is a literal atom,
//     a char followed by '?'/'*'/'+' becomes the corresponding atom and
//     consumes the suffix
//  3. concatenate an alternative's atoms left to right
//  4. union every alternative's NFA together
//
// A metacharacter with no preceding char to attach to (a leading '?', '*'
// or '+', or two in a row) is treated the same as any other rune: it
// becomes a literal atom for that character. The parser never rejects
// input and has no error return.
func Parse(pattern string) automaton.NFA {
	result := automaton.NFA{}
	first := true

	alt := []rune{}
	flushAlternative := func() {
		nfa := parseAlternative(alt)
		if first {
			result = nfa
			first = false
		} else {
			result = result.Union(nfa)
		}
		alt = alt[:0]
	}

	for _, r := range pattern {
		if r == '|' {
			flushAlternative()
			continue
		}
		alt = append(alt, r)
	}
	flushAlternative()

	return result
}

// parseAlternative scans one '|'-delimited slice of runes into a single
// concatenated NFA, applying the postfix-operator lookahead described in
// Parse's doc comment.
func parseAlternative(runes []rune) automaton.NFA {
	result := automaton.NFA{}
	first := true

	i := 0
	for i < len(runes) {
		atom, consumed := atomAt(runes, i)
		i += consumed

		if first {
			result = atom
			first = false
		} else {
			result = result.Concat(atom)
		}
	}

	return result
}

// atomAt builds the single atom NFA starting at runes[i], returning it
// along with how many runes it consumed (1 for a bare literal, 2 when a
// postfix operator was attached).
func atomAt(runes []rune, i int) (automaton.NFA, int) {
	c := runes[i]

	if i+1 < len(runes) {
		switch runes[i+1] {
		case '?':
			return automaton.FromOptionalChar(c), 2
		case '*':
			return automaton.FromChar(c).Kleene(), 2
		case '+':
			return automaton.FromPlusChar(c), 2
		}
	}

	return automaton.FromChar(c), 1
}
