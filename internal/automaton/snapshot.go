package automaton

import (
	"sort"

	"github.com/dekarrin/rezi"
)

// snapshotTransition is the flat, REZI-encodable shape of one DFA
// transition.
type snapshotTransition struct {
	From   uint32
	Symbol int32
	To     uint32
}

// Snapshot is the flat, REZI-encodable shape of a DFA, used to prove
// pipeline determinism: two independent builds of the same pattern must
// produce byte-identical snapshots. Initial is carried as a (HasInitial,
// Initial) pair rather than a pointer, since REZI encodes concrete
// struct/slice/primitive shapes, not nilable fields.
type Snapshot struct {
	Alphabet    []int32
	States      []uint32
	Transitions []snapshotTransition
	HasInitial  bool
	Initial     uint32
	Final       []uint32
}

// Snapshot converts d to its flat REZI-encodable form, with every set
// field emitted in the same sorted order util.Set.Elements already
// guarantees elsewhere in the pipeline.
func (d DFA) Snapshot() Snapshot {
	snap := Snapshot{
		Alphabet: d.Alphabet.Elements(),
		States:   toUint32s(d.States.Elements()),
		Final:    toUint32s(d.Final.Elements()),
	}

	if d.Initial != nil {
		snap.HasInitial = true
		snap.Initial = uint32(*d.Initial)
	}

	transitions := make([]DFATransition, 0, len(d.Transitions))
	for t := range d.Transitions {
		transitions = append(transitions, t)
	}
	sort.Slice(transitions, func(i, j int) bool { return transitions[i].Less(transitions[j]) })

	for _, t := range transitions {
		snap.Transitions = append(snap.Transitions, snapshotTransition{
			From:   uint32(t.From),
			Symbol: int32(t.Symbol),
			To:     uint32(t.To),
		})
	}

	return snap
}

func toUint32s(states []State) []uint32 {
	out := make([]uint32, len(states))
	for i, s := range states {
		out[i] = uint32(s)
	}
	return out
}

// Encode renders snap as a deterministic byte sequence via REZI binary
// encoding, suitable for comparing two pipeline runs byte-for-byte.
func (snap Snapshot) Encode() []byte {
	return rezi.EncBinary(snap)
}
