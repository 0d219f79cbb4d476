package pattern

// Captures is an ordered, indexable set of capture slots. Slot i holds the
// text captured by the group with 1-based id i+1, once that group's
// GroupEnd has executed; before that it is absent.
//
// Captures is logically immutable: every mutation method returns a new
// value built via copy-on-write rather than mutating a shared table in
// place. That is what keeps a failed alternative from leaking captures
// into a sibling alternative.
type Captures struct {
	slots []*string
}

// Get returns the text in slot i and whether it has been set.
func (c Captures) Get(i int) (string, bool) {
	if i < 0 || i >= len(c.slots) || c.slots[i] == nil {
		return "", false
	}
	return *c.slots[i], true
}

// With returns a copy of c with slot i set to value, growing the slice if
// needed.
func (c Captures) With(i int, value string) Captures {
	size := len(c.slots)
	if i >= size {
		size = i + 1
	}

	slots := make([]*string, size)
	copy(slots, c.slots)
	v := value
	slots[i] = &v

	return Captures{slots: slots}
}

// Strings returns the captured groups as a slice indexed from group 1
// (index 0 in the result), with unset groups reported as the empty string.
// It is used by callers that want to report submatches, not by the
// matcher itself.
func (c Captures) Strings() []string {
	out := make([]string, len(c.slots))
	for i, s := range c.slots {
		if s != nil {
			out[i] = *s
		}
	}
	return out
}
