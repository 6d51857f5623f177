package wordler

// maxWordLen bounds the session word length so per-letter position sets fit
// in a single word of bits.
const maxWordLen = 64

// Knowledge is the cumulative belief about the secret word after some number
// of guess/feedback rounds. It is mutated only by Update and only ever
// tightens: greens are never unset, counts never decrease, exclusions never
// disappear. Contradictory feedback is not detected here; it surfaces as an
// empty candidate set when filtering.
type Knowledge struct {
	length   int
	greens   []byte     // confirmed letter per position, 0 when unknown
	notAt    [26]uint64 // positions a letter is known present but not at
	minCount [26]int    // lower bound on occurrences
	maxCount [26]int    // exact occurrence count, -1 while unbounded
	excluded uint32     // letters confirmed to have zero occurrences
}

// NewKnowledge returns the empty belief for a session of length-letter words.
func NewKnowledge(length int) *Knowledge {
	if length <= 0 || length > maxWordLen {
		panic("wordler: unsupported word length")
	}
	k := &Knowledge{
		length: length,
		greens: make([]byte, length),
	}
	for i := range k.maxCount {
		k.maxCount[i] = -1
	}
	return k
}

// WordLen returns the session word length.
func (k *Knowledge) WordLen() int { return k.length }

// Green returns the confirmed letter at position i, if any.
func (k *Knowledge) Green(i int) (byte, bool) {
	c := k.greens[i]
	return c, c != 0
}

// MinCount returns the lower bound on occurrences of c in the secret word.
func (k *Knowledge) MinCount(c byte) int { return k.minCount[idx(c)] }

// MaxCount returns the exact occurrence count of c, when known.
func (k *Knowledge) MaxCount(c byte) (int, bool) {
	m := k.maxCount[idx(c)]
	return m, m >= 0
}

// Excluded reports whether c is confirmed to not occur at all.
func (k *Knowledge) Excluded(c byte) bool {
	return k.excluded&(1<<uint(idx(c))) != 0
}

// ExcludedAt reports whether c is known to be present somewhere but confirmed
// not to belong at position i.
func (k *Knowledge) ExcludedAt(c byte, i int) bool {
	return k.notAt[idx(c)]&(1<<uint(i)) != 0
}

// Update folds one round of feedback into the belief.
//
// Per position: an exact match pins the letter, a present mark records that
// the letter does not belong at that position. Per letter of the guess: the
// number of exact+present marks raises the occurrence lower bound, and an
// absent mark on a letter that also earned marks fixes the occurrence count
// exactly (the guess held more copies than the secret does). A letter with
// no marks at all is excluded outright, unless an earlier round already
// confirmed it present; a surplus copy of a confirmed letter shows absent
// without meaning the letter is missing.
func (k *Knowledge) Update(guess Word, fb Pattern) error {
	if len(guess) != k.length || len(fb) != k.length {
		return ErrWordLength
	}
	var confirmed, absent [26]int
	for i := 0; i < k.length; i++ {
		j := idx(guess[i])
		switch fb[i] {
		case Exact:
			k.greens[i] = guess[i]
			confirmed[j]++
		case Present:
			k.notAt[j] |= 1 << uint(i)
			confirmed[j]++
		default:
			absent[j]++
		}
	}
	for j := 0; j < 26; j++ {
		if confirmed[j]+absent[j] == 0 {
			continue
		}
		if confirmed[j] > k.minCount[j] {
			k.minCount[j] = confirmed[j]
		}
		if confirmed[j] > 0 && absent[j] > 0 {
			k.maxCount[j] = confirmed[j]
		}
		if confirmed[j] == 0 && k.minCount[j] == 0 {
			k.excluded |= 1 << uint(j)
		}
	}
	return nil
}

// Admits reports whether w is consistent with everything learned so far.
func (k *Knowledge) Admits(w Word) bool {
	if len(w) != k.length {
		return false
	}
	var count [26]int
	for i := 0; i < k.length; i++ {
		c := w[i]
		j := idx(c)
		if g := k.greens[i]; g != 0 && g != c {
			return false
		}
		if k.notAt[j]&(1<<uint(i)) != 0 {
			return false
		}
		if k.excluded&(1<<uint(j)) != 0 {
			return false
		}
		count[j]++
	}
	for j := 0; j < 26; j++ {
		if count[j] < k.minCount[j] {
			return false
		}
		if m := k.maxCount[j]; m >= 0 && count[j] != m {
			return false
		}
	}
	return true
}
