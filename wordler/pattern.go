// Package wordler is the constraint-tracking and guess-selection engine for a
// Wordle-style word guessing game. The engine is pure: it consumes a
// lowercased, length-filtered dictionary and guess/feedback rounds from its
// caller and never touches files or terminals itself.
package wordler

import (
	"errors"
	"fmt"
)

// Word is one dictionary entry, lowercase a-z, fixed length for a session.
type Word string

// Mark is the feedback class for a single guessed letter.
type Mark byte

const (
	Absent  Mark = iota // letter does not occur (or all its occurrences are claimed)
	Present             // letter occurs elsewhere
	Exact               // letter is in the right position
)

// Pattern is the per-position feedback for one guess.
type Pattern []Mark

var (
	ErrWordLength      = errors.New("wordler: word length mismatch")
	ErrPatternToken    = errors.New("wordler: invalid pattern token")
	ErrUnknownStrategy = errors.New("wordler: unknown strategy")
)

// Encode scores guess against answer. Both words must have the same length;
// a mismatch is a caller contract violation and panics rather than
// truncating.
func Encode(guess, answer Word) Pattern {
	p := make(Pattern, len(guess))
	EncodeInto(p, guess, answer)
	return p
}

// EncodeInto is Encode writing into a caller-owned buffer, so the minimax
// inner loop can score millions of pairs without allocating.
//
// Two passes, exact matches first: every exact match claims one occurrence
// of its letter before any misplaced letter may, which keeps duplicate
// letters from being over-counted (guess "speed" against "erase" must yield
// only two marked e's).
func EncodeInto(dst Pattern, guess, answer Word) {
	if len(guess) != len(answer) || len(dst) != len(guess) {
		panic("wordler: encode length mismatch: " + string(guess) + "/" + string(answer))
	}
	var remaining [26]int
	for i := 0; i < len(guess); i++ {
		if guess[i] == answer[i] {
			dst[i] = Exact
		} else {
			dst[i] = Absent
			remaining[idx(answer[i])]++
		}
	}
	for i := 0; i < len(guess); i++ {
		if dst[i] == Exact {
			continue
		}
		if j := idx(guess[i]); remaining[j] > 0 {
			dst[i] = Present
			remaining[j]--
		}
	}
}

// ParsePattern decodes the textual form used at the prompt: 'g' for an exact
// match, 'y' for present, '-' for absent.
func ParsePattern(s string) (Pattern, error) {
	p := make(Pattern, 0, len(s))
	for _, c := range s {
		switch c {
		case 'g':
			p = append(p, Exact)
		case 'y':
			p = append(p, Present)
		case '-':
			p = append(p, Absent)
		default:
			return nil, fmt.Errorf("%w: %q", ErrPatternToken, c)
		}
	}
	return p, nil
}

func (p Pattern) String() string {
	b := make([]byte, len(p))
	for i, m := range p {
		switch m {
		case Exact:
			b[i] = 'g'
		case Present:
			b[i] = 'y'
		default:
			b[i] = '-'
		}
	}
	return string(b)
}

// Solved reports whether every position is an exact match.
func (p Pattern) Solved() bool {
	for _, m := range p {
		if m != Exact {
			return false
		}
	}
	return len(p) > 0
}

// idx maps a lowercase ASCII letter to 0..25. Inputs are validated to a-z at
// the shell boundary.
func idx(c byte) int { return int(c - 'a') }
