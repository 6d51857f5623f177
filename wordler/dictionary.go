package wordler

import (
	_ "embed"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set"
)

//go:embed words.txt
var embeddedWords string

// DefaultWords returns the embedded five-letter word list, for running
// without an external dictionary file.
func DefaultWords() []string {
	return strings.Fields(embeddedWords)
}

// Dictionary is the active session word set: lowercased, deduplicated and
// filtered to a single word length. It is read-only once built; removing a
// bad word from the backing file is the shell's job, after which a fresh
// Dictionary is constructed.
type Dictionary struct {
	wordLen int
	words   []Word
	members mapset.Set
}

// NewDictionary builds the session dictionary from raw word-list entries.
// Entries of the wrong length, with non a-z characters, or already seen are
// dropped; the survivors are sorted so sessions are deterministic regardless
// of source order.
func NewDictionary(raw []string, wordLen int) *Dictionary {
	d := &Dictionary{
		wordLen: wordLen,
		members: mapset.NewThreadUnsafeSet(),
	}
	for _, s := range raw {
		s = strings.ToLower(strings.TrimSpace(s))
		if len(s) != wordLen || !isLower(s) {
			continue
		}
		if d.members.Add(s) {
			d.words = append(d.words, Word(s))
		}
	}
	sort.Slice(d.words, func(i, j int) bool { return d.words[i] < d.words[j] })
	return d
}

// Len returns the number of words.
func (d *Dictionary) Len() int { return len(d.words) }

// WordLen returns the session word length.
func (d *Dictionary) WordLen() int { return d.wordLen }

// Words returns the dictionary in sorted order. Callers must not mutate it.
func (d *Dictionary) Words() []Word { return d.words }

// Contains reports whether s is a dictionary word.
func (d *Dictionary) Contains(s string) bool {
	return d.members.Contains(strings.ToLower(strings.TrimSpace(s)))
}

func isLower(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
