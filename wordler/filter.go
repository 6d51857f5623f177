package wordler

import (
	"github.com/bits-and-blooms/bitset"
)

// Filter returns the subset of words consistent with k. It works on any
// word slice; sessions that filter the same dictionary every round should
// build an Index instead.
func Filter(k *Knowledge, words []Word) []Word {
	ret := make([]Word, 0, len(words))
	for _, w := range words {
		if k.Admits(w) {
			ret = append(ret, w)
		}
	}
	return ret
}

// Index answers "which dictionary words are consistent with this knowledge"
// by set algebra over prebuilt bitsets instead of per-word scans.
//
//	letters[i][c]  words whose i-th letter is c
//	count[c][n]    words containing at least n+1 occurrences of c
//
// A word is identified by its index into words. The index is built once per
// session over the full length-filtered dictionary, and every round filters
// from that same baseline, so one mis-entered feedback row can only show up
// as an empty result, never as silent drift.
type Index struct {
	words   []Word
	wordLen int
	letters []map[byte]*bitset.BitSet
	count   map[byte][]*bitset.BitSet
}

// NewIndex builds the position and occurrence-count sets for words. All
// words must share one length.
func NewIndex(words []Word) *Index {
	ix := &Index{words: words}
	if len(words) == 0 {
		return ix
	}
	ix.wordLen = len(words[0])
	ix.letters = make([]map[byte]*bitset.BitSet, ix.wordLen)
	for i := range ix.letters {
		ix.letters[i] = make(map[byte]*bitset.BitSet)
	}
	ix.count = make(map[byte][]*bitset.BitSet, 26)
	n := uint(len(words))
	for w, word := range words {
		if len(word) != ix.wordLen {
			panic("wordler: index words differ in length: " + string(word))
		}
		var occurrences [26]int
		for i := 0; i < ix.wordLen; i++ {
			c := word[i]
			set, ok := ix.letters[i][c]
			if !ok {
				set = bitset.New(n)
				ix.letters[i][c] = set
			}
			set.Set(uint(w))
			occurrences[idx(c)]++
		}
		for j, occ := range occurrences {
			c := byte('a' + j)
			for len(ix.count[c]) < occ {
				ix.count[c] = append(ix.count[c], bitset.New(n))
			}
			for i := 0; i < occ; i++ {
				ix.count[c][i].Set(uint(w))
			}
		}
	}
	return ix
}

// Words returns the indexed dictionary in index order.
func (ix *Index) Words() []Word { return ix.words }

// Filter recomputes the candidate set for k from the full indexed
// dictionary. An empty result means the accumulated feedback is
// self-contradictory; that is the caller's condition to report, not an
// error here.
func (ix *Index) Filter(k *Knowledge) []Word {
	if len(ix.words) == 0 {
		return nil
	}
	ret := bitset.New(uint(len(ix.words))).Complement()

	// greens pin a letter per position
	for i := 0; i < ix.wordLen; i++ {
		if c, ok := k.Green(i); ok {
			set := ix.letters[i][c]
			if set == nil {
				return nil
			}
			ret.InPlaceIntersection(set)
		}
	}

	for j := 0; j < 26; j++ {
		c := byte('a' + j)
		counts := ix.count[c]

		if min := k.MinCount(c); min > 0 {
			if len(counts) < min {
				return nil
			}
			ret.InPlaceIntersection(counts[min-1])
		}
		if max, ok := k.MaxCount(c); ok {
			if len(counts) < max {
				return nil
			}
			ret.InPlaceIntersection(counts[max-1])
			if len(counts) > max {
				ret.InPlaceDifference(counts[max])
			}
		}
		if k.Excluded(c) && len(counts) > 0 {
			ret.InPlaceDifference(counts[0])
		}

		// present letters may not sit where they were guessed
		for i := 0; i < ix.wordLen; i++ {
			if k.ExcludedAt(c, i) {
				if set := ix.letters[i][c]; set != nil {
					ret.InPlaceDifference(set)
				}
			}
		}
	}

	indices := make([]uint, ret.Count())
	ret.NextSetMany(0, indices)
	out := make([]Word, len(indices))
	for i, w := range indices {
		out[i] = ix.words[w]
	}
	return out
}
