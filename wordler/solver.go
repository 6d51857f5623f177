package wordler

// Solver ties the per-round control flow together for one session:
// fold a guess/feedback pair into the knowledge, refilter the dictionary,
// ask the strategy for the next recommendation. Everything is synchronous
// and single-writer; the caller supplies rounds one at a time.
type Solver struct {
	dict       *Dictionary
	index      *Index
	knowledge  *Knowledge
	strategy   Strategy
	candidates []Word
}

// NewSolver starts a session over dict using strategy.
func NewSolver(dict *Dictionary, strategy Strategy) *Solver {
	s := &Solver{
		dict:     dict,
		index:    NewIndex(dict.Words()),
		strategy: strategy,
	}
	s.Reset()
	return s
}

// Reset discards all accumulated knowledge, returning the session to
// round one.
func (s *Solver) Reset() {
	s.knowledge = NewKnowledge(s.dict.WordLen())
	s.candidates = s.dict.Words()
}

// Update folds one guess/feedback round into the session and recomputes the
// candidate set from the full dictionary.
func (s *Solver) Update(guess Word, fb Pattern) error {
	if err := s.knowledge.Update(guess, fb); err != nil {
		return err
	}
	s.candidates = s.index.Filter(s.knowledge)
	return nil
}

// Candidates returns the words still consistent with every round so far.
// Empty means the feedback history is self-contradictory.
func (s *Solver) Candidates() []Word { return s.candidates }

// Knowledge exposes the accumulated belief, for hard-mode checks and
// reporting.
func (s *Solver) Knowledge() *Knowledge { return s.knowledge }

// Suggest asks the strategy for the next guess. ok is false when no
// candidate remains.
func (s *Solver) Suggest() (Word, bool) {
	return s.strategy.Select(s.candidates, s.dict.Words())
}
