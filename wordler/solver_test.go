package wordler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var solverTestWords = []string{
	"cigar", "rebut", "sissy", "humph", "awake", "blush", "focal",
	"evade", "naval", "serve", "heath", "dwarf", "model", "karma",
	"stink", "grade", "quiet", "bench", "abate", "feign",
}

// playOut runs a full game with the encoder as oracle, returning the number
// of rounds used and whether the secret was found within six.
func playOut(t *testing.T, s *Solver, secret Word) (int, bool) {
	t.Helper()
	for round := 1; round <= 6; round++ {
		guess, ok := s.Suggest()
		require.True(t, ok, "round %d", round)
		fb := Encode(guess, secret)
		if fb.Solved() {
			return round, true
		}
		require.NoError(t, s.Update(guess, fb))
	}
	return 6, false
}

func TestSolverSolves(t *testing.T) {
	for _, strategy := range []Strategy{Frequency{}, Minimax{}} {
		dict := NewDictionary(solverTestWords, 5)
		s := NewSolver(dict, strategy)
		rounds, ok := playOut(t, s, "karma")
		assert.True(t, ok, "%T did not solve in 6", strategy)
		assert.LessOrEqual(t, rounds, 6)
	}
}

func TestSolverCandidatesShrink(t *testing.T) {
	dict := NewDictionary(solverTestWords, 5)
	s := NewSolver(dict, Frequency{})

	prev := len(s.Candidates())
	assert.Equal(t, dict.Len(), prev)
	for _, guess := range []Word{"serve", "grade"} {
		require.NoError(t, s.Update(guess, Encode(guess, "karma")))
		assert.LessOrEqual(t, len(s.Candidates()), prev)
		assert.Contains(t, s.Candidates(), Word("karma"))
		prev = len(s.Candidates())
	}
}

func TestSolverContradiction(t *testing.T) {
	dict := NewDictionary([]string{"aaaaa", "bbbbb"}, 5)
	s := NewSolver(dict, Frequency{})

	require.NoError(t, s.Update("aaaaa", mustPattern(t, "-----")))
	require.NoError(t, s.Update("bbbbb", mustPattern(t, "-----")))

	assert.Empty(t, s.Candidates())
	_, ok := s.Suggest()
	assert.False(t, ok, "contradictory feedback must not produce a recommendation")
}

func TestSolverReset(t *testing.T) {
	dict := NewDictionary(solverTestWords, 5)
	s := NewSolver(dict, Frequency{})

	require.NoError(t, s.Update("serve", Encode("serve", "karma")))
	assert.Less(t, len(s.Candidates()), dict.Len())

	s.Reset()
	assert.Equal(t, dict.Len(), len(s.Candidates()))
}
