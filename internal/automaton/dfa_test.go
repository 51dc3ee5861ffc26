package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDFA_MatchesWholeStringOnly(t *testing.T) {
	nfa := FromChar('a').Concat(FromChar('b')).Concat(FromChar('c'))
	dfa := NewDeterminizer(nfa).Determinize()

	assert.True(t, dfa.Matches("abc"))
	assert.False(t, dfa.Matches("ab"))
	assert.False(t, dfa.Matches("abcd"))
	assert.False(t, dfa.Matches(""))
}

func TestDFA_NilInitialNeverMatches(t *testing.T) {
	dfa := DFA{}
	assert.False(t, dfa.Matches(""))
	assert.False(t, dfa.Matches("anything"))
}

func TestDFA_ReachableAtMostOneState(t *testing.T) {
	nfa := FromChar('a')
	dfa := NewDeterminizer(nfa).Determinize()

	reached := dfa.Reachable(*dfa.Initial, 'a')
	assert.Equal(t, 1, reached.Len())
}
