package wordler

// HardModeOK reports whether guess is playable under the hard-mode rule:
// every confirmed green must be reused in place and every letter confirmed
// present must appear somewhere in the guess. Occurrence upper bounds are
// deliberately not checked; hard mode forbids discarding information, not
// over-guessing a letter.
func (k *Knowledge) HardModeOK(guess Word) bool {
	if len(guess) != k.length {
		return false
	}
	var count [26]int
	for i := 0; i < k.length; i++ {
		if g := k.greens[i]; g != 0 && guess[i] != g {
			return false
		}
		count[idx(guess[i])]++
	}
	for j := 0; j < 26; j++ {
		if k.minCount[j] > 0 && count[j] == 0 {
			return false
		}
	}
	return true
}
