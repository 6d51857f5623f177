package wordler

import (
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Strategy picks the next recommended guess. candidates is the current
// consistent set; dictionary is the full length-filtered word list, which
// adversarial strategies may draw probing guesses from. The second return
// is false when no candidate remains, meaning the accumulated feedback is
// contradictory; callers must report that rather than retry.
type Strategy interface {
	Select(candidates, dictionary []Word) (Word, bool)
}

// StrategyByName maps a configuration string to a strategy.
func StrategyByName(name string) (Strategy, error) {
	switch name {
	case "frequency":
		return Frequency{}, nil
	case "minimax":
		return Minimax{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// WordScore pairs a word with a strategy score.
type WordScore struct {
	Word  Word
	Score int
}

// FrequencyScores scores every word by the summed candidate-set frequency of
// its distinct letters. Each word contributes one count per letter it
// contains, repeats ignored, so a double letter never beats covering one
// more common letter. Results are in input order.
func FrequencyScores(words []Word) []WordScore {
	var freq [26]int
	for _, w := range words {
		for _, j := range distinctLetters(w) {
			freq[j]++
		}
	}
	scores := make([]WordScore, len(words))
	for i, w := range words {
		score := 0
		for _, j := range distinctLetters(w) {
			score += freq[j]
		}
		scores[i] = WordScore{Word: w, Score: score}
	}
	return scores
}

func distinctLetters(w Word) []int {
	var seen uint32
	letters := make([]int, 0, len(w))
	for i := 0; i < len(w); i++ {
		j := idx(w[i])
		if seen&(1<<uint(j)) == 0 {
			seen |= 1 << uint(j)
			letters = append(letters, j)
		}
	}
	return letters
}

// Frequency recommends the candidate covering the most statistically common
// letters of the remaining candidates: a cheap approximation of information
// gain at O(candidates x length). Ties keep the earliest candidate.
type Frequency struct{}

func (Frequency) Select(candidates, _ []Word) (Word, bool) {
	if len(candidates) == 0 {
		return "", false
	}
	best := candidates[0]
	bestScore := -1
	for _, ws := range FrequencyScores(candidates) {
		if ws.Score > bestScore {
			bestScore = ws.Score
			best = ws.Word
		}
	}
	return best, true
}

// Minimax recommends the guess whose worst-case feedback leaves the fewest
// candidates standing. For each probing guess the candidate set is
// partitioned by the pattern the guess would earn against each candidate as
// hypothetical answer; the largest bucket is what an adversarial answer
// would leave us. Probes are drawn from the whole dictionary until only two
// candidates remain, after which probing outside them is wasted motion.
// Ties prefer a probe that is itself a candidate (it might win outright),
// then earliest pool order.
//
// This scan is O(dictionary x candidates x length), the dominant cost of
// the engine, and every probe is independent, so the outer loop fans out
// across workers and reduces to a single minimum at the end.
type Minimax struct {
	// Workers caps the parallel scan; <= 0 means GOMAXPROCS.
	Workers int
}

type minimaxResult struct {
	word      Word
	worst     int
	candidate bool
	order     int
}

func betterMinimax(a, b minimaxResult) bool {
	if a.worst != b.worst {
		return a.worst < b.worst
	}
	if a.candidate != b.candidate {
		return a.candidate
	}
	return a.order < b.order
}

func (m Minimax) Select(candidates, dictionary []Word) (Word, bool) {
	if len(candidates) == 0 {
		return "", false
	}
	if len(candidates) == 1 {
		return candidates[0], true
	}
	pool := dictionary
	if len(candidates) <= 2 || len(pool) == 0 {
		pool = candidates
	}
	inCandidates := make(map[Word]bool, len(candidates))
	for _, w := range candidates {
		inCandidates[w] = true
	}

	workers := m.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(pool) {
		workers = len(pool)
	}
	chunk := (len(pool) + workers - 1) / workers

	results := make([]minimaxResult, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, len(pool))
		out := &results[w]
		g.Go(func() error {
			best := minimaxResult{worst: math.MaxInt}
			buf := make(Pattern, len(candidates[0]))
			buckets := make(map[string]int, len(candidates))
			for i := lo; i < hi; i++ {
				probe := pool[i]
				clear(buckets)
				worst := 0
				for _, answer := range candidates {
					EncodeInto(buf, probe, answer)
					key := string(buf)
					buckets[key]++
					if buckets[key] > worst {
						worst = buckets[key]
					}
					if worst > best.worst {
						break // already beaten, stop partitioning
					}
				}
				r := minimaxResult{word: probe, worst: worst, candidate: inCandidates[probe], order: i}
				if betterMinimax(r, best) {
					best = r
				}
			}
			*out = best
			return nil
		})
	}
	_ = g.Wait() // workers never fail; the group is for the fan-out/join

	best := results[0]
	for _, r := range results[1:] {
		if betterMinimax(r, best) {
			best = r
		}
	}
	return best.word, true
}
