package wordler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDictionaryNormalizes(t *testing.T) {
	d := NewDictionary([]string{"Crane", "crane", " slate ", "toolong", "ab1de", "SLATE"}, 5)

	assert.Equal(t, 2, d.Len())
	assert.Equal(t, toWords([]string{"crane", "slate"}), d.Words(), "sorted and deduplicated")
	assert.True(t, d.Contains("CRANE"))
	assert.False(t, d.Contains("toolong"))
	assert.Equal(t, 5, d.WordLen())
}

func TestNewDictionaryOtherLength(t *testing.T) {
	d := NewDictionary([]string{"crane", "roar", "lion", "ox"}, 4)
	assert.Equal(t, toWords([]string{"lion", "roar"}), d.Words())
}

func TestDefaultWords(t *testing.T) {
	words := DefaultWords()
	assert.NotEmpty(t, words)
	assert.Contains(t, words, "crane")

	// the embedded list is already lowercase, five letters, duplicate free
	d := NewDictionary(words, 5)
	assert.Equal(t, len(words), d.Len())
}
