// apps/solver/internal/game/score.go
//
// Feedback scoring for the solver hot path.
// Responsibilities:
//   - Score a guess against a candidate answer with the classic
//     two-pass algorithm: greens first, then yellows paid out of the
//     remaining letter counts.
//   - Return the result directly as a base-3 Pattern so entropy
//     histograms can bucket it without further conversion.
//
// Inputs are assumed normalized: uppercase A-Z, exactly five bytes.
// words.NormalizeWord enforces this at the boundary.

package game

// Score evaluates guess against answer and returns the encoded pattern.
//
// Pass 1 marks exact matches and counts the non-hit answer letters.
// Pass 2 spends those counts left to right on the non-hit guess
// letters, so repeated letters never earn more yellows than the answer
// can supply.
func Score(guess, answer string) Pattern {
	var counts [26]int
	var hit [WordLength]bool

	var p Pattern
	for i := 0; i < WordLength; i++ {
		if guess[i] == answer[i] {
			hit[i] = true
			p += 2 * pow3[i]
		} else {
			counts[answer[i]-'A']++
		}
	}
	for i := 0; i < WordLength; i++ {
		if hit[i] {
			continue
		}
		j := guess[i] - 'A'
		if counts[j] > 0 {
			counts[j]--
			p += pow3[i]
		}
	}
	return p
}
