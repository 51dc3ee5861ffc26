package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildABC() NFA {
	a := FromChar('a')
	b := FromChar('b')
	c := FromChar('c')
	return a.Concat(b).Concat(c)
}

func TestDeterminize_SimpleConcat(t *testing.T) {
	dfa := NewDeterminizer(buildABC()).Determinize()

	assert.True(t, dfa.Matches("abc"))
	assert.False(t, dfa.Matches("ab"))
	assert.False(t, dfa.Matches("abcd"))
}

func TestDeterminize_Totality(t *testing.T) {
	dfa := NewDeterminizer(buildABC()).Determinize()

	for _, s := range dfa.States.Elements() {
		for _, a := range dfa.Alphabet.Elements() {
			_, ok := dfa.step(s, a)
			assert.True(t, ok, "state %d must have an outgoing transition on %q", s, a)
		}
	}
}

func TestDeterminize_InitialIDIsZero(t *testing.T) {
	dfa := NewDeterminizer(buildABC()).Determinize()
	if assert.NotNil(t, dfa.Initial) {
		assert.Equal(t, State(0), *dfa.Initial)
	}
}

func TestDeterminize_EmptyNFAHasNoInitialState(t *testing.T) {
	dfa := NewDeterminizer(NFA{}).Determinize()
	assert.Nil(t, dfa.Initial)
	assert.False(t, dfa.Matches(""))
	assert.False(t, dfa.Matches("x"))
}

func TestDeterminize_DeadStateSinksNonAcceptingSymbols(t *testing.T) {
	nfa := FromChar('a')
	dfa := NewDeterminizer(nfa).Determinize()

	assert.False(t, dfa.Matches("b"))
	assert.False(t, dfa.Matches("aa"))
}
