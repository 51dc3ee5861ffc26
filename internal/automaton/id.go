package automaton

// State is a state identity, unique within the automaton that allocated
// it. Identities are opaque outside their owning automaton -- there is no
// semantic ordering beyond allocation order.
type State uint32

// Counter is a monotonic allocator of fresh State ids. The scattered
// "counter for unique state name" locals the teacher's automaton package
// reaches for inline (see ictiobus's NewLALR1ViablePrefixDFA) are promoted
// here to a real type, since the pipeline needs the same allocator
// behavior in three places: per-NFA, per-DFA, and per-minimizer-pass.
type Counter struct {
	next uint32
}

// Tick returns the current value and advances the counter.
func (c *Counter) Tick() State {
	v := c.next
	c.next++
	return State(v)
}

// Reset sets the counter back to zero. Callers must not retain any id
// handed out before the reset once the structure being renumbered is
// rebuilt -- a reset counter's old ids are no longer meaningful.
func (c *Counter) Reset() {
	c.next = 0
}

// Value returns the next id that Tick would hand out, i.e. one past the
// highest id allocated so far (or 0 if nothing has been allocated). This
// doubles as "how many ids has this counter allocated" and is used when
// shifting a second automaton's state space to keep it disjoint from the
// first's.
func (c Counter) Value() uint32 {
	return c.next
}
