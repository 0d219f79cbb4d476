// Package scanner splits a block of text into line segments and reports
// the ones a compiled pattern matches, optionally labeled with a prefix.
//
// Segments keep their original terminator intact; a working copy has the
// trailing "\r\n" or "\n" stripped only for the match attempt, so the
// segment written to the caller is byte-for-byte identical to the input.
package scanner

import (
	"bytes"
	"io"

	"github.com/gophergrep/ggrep/internal/pattern"
)

// Scan splits data into segments at '\n', each segment retaining its
// terminator. For each segment it strips a trailing "\r\n" or "\n" from a
// working copy to get the candidate line; if that line matches pat, the
// original segment is written to w, prefixed with "label:" when label is
// non-empty. A final segment with no trailing newline is still processed.
//
// Scan holds no package-level state and reads data without mutating it,
// so it is safe to call concurrently across disjoint inputs - the only
// shared resource a caller must serialize is w itself.
func Scan(w io.Writer, data []byte, pat *pattern.Compiled, label string) (matched bool, err error) {
	start := 0
	for start < len(data) {
		nl := bytes.IndexByte(data[start:], '\n')

		var segment []byte
		if nl < 0 {
			segment = data[start:]
			start = len(data)
		} else {
			segment = data[start : start+nl+1]
			start += nl + 1
		}

		line := stripTerminator(segment)

		if pat.Match(line) {
			matched = true
			if werr := writeSegment(w, label, segment); werr != nil {
				return matched, werr
			}
		}
	}

	return matched, nil
}

// stripTerminator returns segment with a trailing "\r\n" or "\n" removed.
func stripTerminator(segment []byte) []byte {
	n := len(segment)
	if n > 0 && segment[n-1] == '\n' {
		n--
		if n > 0 && segment[n-1] == '\r' {
			n--
		}
	}
	return segment[:n]
}

func writeSegment(w io.Writer, label string, segment []byte) error {
	if label != "" {
		if _, err := io.WriteString(w, label+":"); err != nil {
			return err
		}
	}
	_, err := w.Write(segment)
	return err
}
