package wordler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrategyByName(t *testing.T) {
	s, err := StrategyByName("frequency")
	require.NoError(t, err)
	assert.IsType(t, Frequency{}, s)

	s, err = StrategyByName("minimax")
	require.NoError(t, err)
	assert.IsType(t, Minimax{}, s)

	_, err = StrategyByName("entropy")
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestFrequencySelect(t *testing.T) {
	// distinct letters only: abcde covers the two most common letter
	// pools, aaaaa gets credit for a exactly once
	candidates := toWords([]string{"aaaaa", "abcde", "fghij"})
	got, ok := Frequency{}.Select(candidates, candidates)
	require.True(t, ok)
	assert.Equal(t, Word("abcde"), got)
}

func TestFrequencyScoresCountDistinct(t *testing.T) {
	scores := FrequencyScores(toWords([]string{"aaaaa", "abcde", "fghij"}))
	assert.Equal(t, 2, scores[0].Score)
	assert.Equal(t, 6, scores[1].Score)
	assert.Equal(t, 5, scores[2].Score)
}

func TestFrequencyTieKeepsFirst(t *testing.T) {
	candidates := toWords([]string{"abcde", "edcba"})
	got, ok := Frequency{}.Select(candidates, candidates)
	require.True(t, ok)
	assert.Equal(t, Word("abcde"), got)
}

func TestFrequencyEmpty(t *testing.T) {
	_, ok := Frequency{}.Select(nil, toWords([]string{"crane"}))
	assert.False(t, ok)
}

// worstBucket recomputes a probe's worst-case partition size the slow way.
func worstBucket(probe Word, candidates []Word) int {
	buckets := make(map[string]int)
	worst := 0
	for _, c := range candidates {
		key := Encode(probe, c).String()
		buckets[key]++
		if buckets[key] > worst {
			worst = buckets[key]
		}
	}
	return worst
}

func TestMinimaxWorstCaseOptimal(t *testing.T) {
	dict := toWords([]string{
		"cigar", "rebut", "sissy", "humph", "awake", "blush", "focal",
		"evade", "naval", "serve", "heath", "dwarf", "model", "karma",
		"stink", "grade",
	})
	got, ok := Minimax{}.Select(dict, dict)
	require.True(t, ok)

	best := worstBucket(got, dict)
	for _, probe := range dict {
		assert.LessOrEqual(t, best, worstBucket(probe, dict), "probe %s", probe)
	}
}

func TestMinimaxProbesOutsideCandidates(t *testing.T) {
	// only the non-candidate probe separates all three candidates in one
	// round
	candidates := toWords([]string{"aaaab", "aaaac", "aaaad"})
	dict := append(toWords([]string{"bcdzz"}), candidates...)
	got, ok := Minimax{}.Select(candidates, dict)
	require.True(t, ok)
	assert.Equal(t, Word("bcdzz"), got)
	assert.Equal(t, 1, worstBucket(got, candidates))
}

func TestMinimaxTiePrefersCandidate(t *testing.T) {
	// aaabb ties the candidates on worst case and comes first in the
	// pool, but a candidate guess can also win the game outright
	candidates := toWords([]string{"aaaab", "aaaac", "aaaad"})
	dict := append(toWords([]string{"aaabb"}), candidates...)
	got, ok := Minimax{}.Select(candidates, dict)
	require.True(t, ok)
	assert.Equal(t, Word("aaaab"), got)
	assert.Equal(t, worstBucket("aaabb", candidates), worstBucket(got, candidates))
}

func TestMinimaxPoolRestriction(t *testing.T) {
	// with two candidates left, probing outside them is wasted motion
	candidates := toWords([]string{"aaaab", "aaaac"})
	dict := toWords([]string{"bcdzz", "aaaab", "aaaac", "zzzzz"})
	got, ok := Minimax{}.Select(candidates, dict)
	require.True(t, ok)
	assert.Contains(t, candidates, got)
}

func TestMinimaxSingleCandidate(t *testing.T) {
	got, ok := Minimax{}.Select(toWords([]string{"karma"}), toWords([]string{"cigar", "karma"}))
	require.True(t, ok)
	assert.Equal(t, Word("karma"), got)
}

func TestMinimaxEmpty(t *testing.T) {
	_, ok := Minimax{}.Select(nil, toWords([]string{"crane"}))
	assert.False(t, ok)
}

func TestMinimaxDeterministicAcrossWorkers(t *testing.T) {
	dict := toWords([]string{
		"cigar", "rebut", "sissy", "humph", "awake", "blush", "focal",
		"evade", "naval", "serve", "heath", "dwarf", "model", "karma",
	})
	want, ok := Minimax{Workers: 1}.Select(dict, dict)
	require.True(t, ok)
	for workers := 2; workers <= 5; workers++ {
		got, ok := Minimax{Workers: workers}.Select(dict, dict)
		require.True(t, ok)
		assert.Equal(t, want, got, "workers=%d", workers)
	}
}
