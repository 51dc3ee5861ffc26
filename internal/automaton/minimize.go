package automaton

import (
	"sort"
	"strings"

	"github.com/dekarrin/mindfa/internal/util"
)

// Minimizer collapses a total, deterministic DFA into its Moore-minimal
// equivalent by iterative partition refinement. Like Determinizer, it is
// a struct rather than a free function so the running partition survives
// between the steps of one refinement pass.
type Minimizer struct {
	dfa DFA

	groupOf map[State]State          // state -> current group id
	members map[State]util.Set[State] // group id -> states in it
	counter Counter
}

// NewMinimizer prepares a Minimizer for dfa. dfa must be total over its
// alphabet; minimization of a non-total DFA is an internal invariant
// violation and panics.
func NewMinimizer(dfa DFA) *Minimizer {
	return &Minimizer{dfa: dfa}
}

// signature maps each alphabet symbol to the group id containing the
// destination of s on that symbol, under the current partition. Two
// states have equal signatures (and equal group membership) iff they are
// indistinguishable by one more step of refinement.
func (mz *Minimizer) signature(s State, alphabet []Symbol) string {
	var b strings.Builder
	for _, a := range alphabet {
		to, ok := mz.dfa.step(s, a)
		if !ok {
			panic("minimizer: non-total DFA, no transition for a reachable symbol")
		}
		g, ok := mz.groupOf[to]
		if !ok {
			panic("minimizer: destination state missing from partition")
		}
		b.WriteString(itoa(uint32(g)))
		b.WriteByte(',')
	}
	return b.String()
}

// Minimize runs Moore partition refinement to completion and returns the
// minimal DFA. Like Determinizer, a Minimizer is single-use.
func (mz *Minimizer) Minimize() DFA {
	alphabet := mz.dfa.Alphabet.Elements()
	states := mz.dfa.States.Elements()

	mz.counter = Counter{}
	accepting := mz.counter.Tick()
	rejecting := mz.counter.Tick()

	mz.groupOf = map[State]State{}
	mz.members = map[State]util.Set[State]{
		accepting: util.NewSet[State](),
		rejecting: util.NewSet[State](),
	}

	for _, s := range states {
		if mz.dfa.Final.Has(s) {
			mz.groupOf[s] = accepting
			mz.members[accepting].Add(s)
		} else {
			mz.groupOf[s] = rejecting
			mz.members[rejecting].Add(s)
		}
	}

	for {
		changed := mz.refine(states, alphabet)
		if !changed {
			break
		}
	}

	return mz.build(alphabet)
}

// refine performs one pass of re-signing every group by the signatures of
// its current members, splitting any group whose members disagree. It
// returns whether the partition changed (i.e. some group split).
func (mz *Minimizer) refine(states []State, alphabet []Symbol) bool {
	nextCounter := Counter{}
	nextGroupOf := map[State]State{}
	nextMembers := map[State]util.Set[State]{}

	oldGroups := make([]State, 0, len(mz.members))
	for g := range mz.members {
		oldGroups = append(oldGroups, g)
	}
	sort.Slice(oldGroups, func(i, j int) bool { return oldGroups[i] < oldGroups[j] })

	changed := false

	for _, g := range oldGroups {
		oldMembers := mz.members[g].Elements()

		bySig := map[string][]State{}
		sigOrder := []string{}
		for _, s := range oldMembers {
			sig := mz.signature(s, alphabet)
			if _, seen := bySig[sig]; !seen {
				sigOrder = append(sigOrder, sig)
			}
			bySig[sig] = append(bySig[sig], s)
		}

		if len(sigOrder) > 1 {
			changed = true
		}

		sort.Strings(sigOrder)
		for _, sig := range sigOrder {
			newGroup := nextCounter.Tick()
			memberSet := util.NewSet(bySig[sig]...)
			nextMembers[newGroup] = memberSet
			for _, s := range bySig[sig] {
				nextGroupOf[s] = newGroup
			}
		}
	}

	mz.counter = nextCounter
	mz.groupOf = nextGroupOf
	mz.members = nextMembers

	return changed
}

// build constructs the output DFA from the final partition: one state per
// group, final iff any member was final, initial the group containing the
// input's initial state, and one transition per symbol taken from any
// member's signature (they all agree by construction).
func (mz *Minimizer) build(alphabet []Symbol) DFA {
	out := newDFA()
	out.Alphabet = mz.dfa.Alphabet.Copy()

	groups := make([]State, 0, len(mz.members))
	for g := range mz.members {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i] < groups[j] })

	for _, g := range groups {
		out.States.Add(g)
		members := mz.members[g]
		if members.Intersects(mz.dfa.Final) {
			out.Final.Add(g)
		}

		representative := members.Elements()[0]
		for _, a := range alphabet {
			to, ok := mz.dfa.step(representative, a)
			if !ok {
				panic("minimizer: non-total DFA while building output")
			}
			destGroup := mz.groupOf[to]
			out.addTransition(g, a, destGroup)
		}
	}

	if mz.dfa.Initial != nil {
		initGroup := mz.groupOf[*mz.dfa.Initial]
		out.Initial = &initGroup
	}

	out.Counter = mz.counter

	return out
}
