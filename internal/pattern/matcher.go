package pattern

// tryMatch attempts to match nodes against input starting at pos,
// greedy-left-first. On success it returns the end offset (exclusive) and
// the capture table produced along the successful path; on failure it
// returns ok=false and the other results carry no meaning. Because
// Captures is copy-on-write, the caller's own caps are never modified, so
// a failed sub-match can never contaminate a sibling alternative's view
// of captures.
//
// The "rest of the sequence" is threaded explicitly as the tail of nodes
// rather than a fixed Children slice plus a childIdx cursor. That is what
// lets Group splice a synthesized GroupEnd and the enclosing tail onto an
// alternative without needing a separate continuation type.
func tryMatch(nodes []Node, input []byte, pos int, caps Captures) (int, Captures, bool) {
	if len(nodes) == 0 {
		return pos, caps, true
	}

	head, tail := nodes[0], nodes[1:]

	switch n := head.(type) {
	case Literal:
		if pos < len(input) && input[pos] == n.Value {
			return tryMatch(tail, input, pos+1, caps)
		}
		return pos, caps, false

	case Digit:
		if pos < len(input) && isDigitByte(input[pos]) {
			return tryMatch(tail, input, pos+1, caps)
		}
		return pos, caps, false

	case Word:
		if pos < len(input) && isWordByte(input[pos]) {
			return tryMatch(tail, input, pos+1, caps)
		}
		return pos, caps, false

	case Any:
		if pos < len(input) {
			return tryMatch(tail, input, pos+1, caps)
		}
		return pos, caps, false

	case PosClass:
		if pos < len(input) && indexByte(n.Members, input[pos]) {
			return tryMatch(tail, input, pos+1, caps)
		}
		return pos, caps, false

	case NegClass:
		if pos < len(input) && !indexByte(n.Members, input[pos]) {
			return tryMatch(tail, input, pos+1, caps)
		}
		return pos, caps, false

	case Optional:
		return matchOptional(n, tail, input, pos, caps)

	case Plus:
		return matchPlus(n.Child, tail, input, pos, caps)

	case Star:
		return matchStar(n, tail, input, pos, caps)

	case Repeat:
		return matchRepeat(n, tail, input, pos, caps)

	case Group:
		return matchGroup(n, tail, input, pos, caps)

	case GroupEnd:
		return matchGroupEnd(n, tail, input, pos, caps)

	case BackRef:
		return matchBackRef(n, tail, input, pos, caps)
	}

	panic("pattern: unhandled node type")
}

func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		isDigitByte(b)
}

func indexByte(members string, b byte) bool {
	for i := 0; i < len(members); i++ {
		if members[i] == b {
			return true
		}
	}
	return false
}

// matchOptional tries "with" before "without": greedy prefers the longer
// admissible sub-match.
func matchOptional(n Optional, tail []Node, input []byte, pos int, caps Captures) (int, Captures, bool) {
	withChild := make([]Node, 0, len(tail)+1)
	withChild = append(withChild, n.Child)
	withChild = append(withChild, tail...)

	if end, c, ok := tryMatch(withChild, input, pos, caps); ok {
		return end, c, true
	}

	return tryMatch(tail, input, pos, caps)
}

// matchPlus requires at least one match of child, then greedily attempts
// more before falling back to the tail: try child once; on success,
// recursively try more Plus(child)-continuations; if that fails, match
// the tail directly from the new position. A child match that consumes
// no input (e.g. a group whose body can match empty) can never be
// retried for progress, so the "try more" branch is skipped in that
// case to avoid recursing forever at the same offset.
func matchPlus(child Node, tail []Node, input []byte, pos int, caps Captures) (int, Captures, bool) {
	end1, caps1, ok := tryMatch([]Node{child}, input, pos, caps)
	if !ok {
		return pos, caps, false
	}

	if end1 != pos {
		if end2, caps2, ok2 := matchPlus(child, tail, input, end1, caps1); ok2 {
			return end2, caps2, true
		}
	}

	return tryMatch(tail, input, end1, caps1)
}

// matchStar is Plus with the zero-match case permitted.
func matchStar(n Star, tail []Node, input []byte, pos int, caps Captures) (int, Captures, bool) {
	if end, c, ok := matchPlus(n.Child, tail, input, pos, caps); ok {
		return end, c, true
	}
	return tryMatch(tail, input, pos, caps)
}

// matchRepeat matches child exactly Count times sequentially, with no
// backtracking across the count.
func matchRepeat(n Repeat, tail []Node, input []byte, pos int, caps Captures) (int, Captures, bool) {
	cur, cc := pos, caps
	for i := 0; i < n.Count; i++ {
		end, c, ok := tryMatch([]Node{n.Child}, input, cur, cc)
		if !ok {
			return pos, caps, false
		}
		cur, cc = end, c
	}
	return tryMatch(tail, input, cur, cc)
}

// matchGroup tries each alternative in source order. For each it builds a
// temporary sequence: the alternative's own nodes, a synthetic GroupEnd
// that will close the capture once the alternative's body is satisfied,
// and the enclosing tail - then runs tryMatch over that whole composed
// sequence so the tail is attempted before backtracking into a shorter
// reading of the alternative.
func matchGroup(n Group, tail []Node, input []byte, pos int, caps Captures) (int, Captures, bool) {
	for _, alt := range n.Alternatives {
		seq := make([]Node, 0, len(alt)+1+len(tail))
		seq = append(seq, alt...)
		seq = append(seq, GroupEnd{Slot: n.ID - 1, Start: pos})
		seq = append(seq, tail...)

		if end, c, ok := tryMatch(seq, input, pos, caps); ok {
			return end, c, true
		}
	}
	return pos, caps, false
}

// matchGroupEnd closes the capture for Slot with the substring consumed
// since Start, then continues matching the tail at the same position
// (zero-width).
func matchGroupEnd(n GroupEnd, tail []Node, input []byte, pos int, caps Captures) (int, Captures, bool) {
	next := caps.With(n.Slot, string(input[n.Start:pos]))
	return tryMatch(tail, input, pos, next)
}

// matchBackRef requires slot ID-1 to be present and requires the input at
// pos to equal it byte-for-byte.
func matchBackRef(n BackRef, tail []Node, input []byte, pos int, caps Captures) (int, Captures, bool) {
	s, ok := caps.Get(n.ID - 1)
	if !ok {
		return pos, caps, false
	}

	end := pos + len(s)
	if end > len(input) || string(input[pos:end]) != s {
		return pos, caps, false
	}

	return tryMatch(tail, input, end, caps)
}

// Match reports whether c matches anywhere in input (subject to c's
// anchors), scanning admissible start offsets in ascending order.
func (c *Compiled) Match(input []byte) bool {
	_, _, _, ok := c.Find(input)
	return ok
}

// Find reports the same thing as Match but also returns the bounds of the
// whole match and the capture groups (group 1 at Strings()[0]) produced by
// the first successful attempt, scanning admissible start offsets in
// ascending order.
func (c *Compiled) Find(input []byte) (start, end int, caps Captures, ok bool) {
	starts := []int{0}
	if !c.StartAnchored {
		starts = make([]int, len(input)+1)
		for i := range starts {
			starts[i] = i
		}
	}

	for _, s := range starts {
		e, cc, matched := tryMatch(c.Nodes, input, s, Captures{})
		if !matched {
			continue
		}
		if c.EndAnchored && e != len(input) {
			continue
		}
		return s, e, cc, true
	}

	return 0, 0, Captures{}, false
}
