// apps/solver/internal/solver/constraints.go
//
// Feedback-derived constraint state.
// Responsibilities:
//   - Track the confirmed minimum count of each letter (MinLetterCounts).
//   - Eliminate candidates whose hypothetical feedback disagrees with
//     the observed pattern.

package solver

import (
	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// MinLetterCounts tracks, per letter, the confirmed minimum number of
// occurrences in the answer. Feedback only ever raises a minimum:
// a green and a yellow E in one guess prove the answer holds at least
// two E's, and later turns cannot un-prove that.
type MinLetterCounts [26]int

// Update raises the minimums from one turn of feedback. Every green or
// yellow position confirms one instance of its letter.
func (m *MinLetterCounts) Update(guess string, p game.Pattern) {
	var turnCounts [26]int
	marks := p.Marks()
	for i := 0; i < game.WordLength; i++ {
		if marks[i] != game.MarkMiss {
			turnCounts[guess[i]-'A']++
		}
	}
	for i := range turnCounts {
		if turnCounts[i] > m[i] {
			m[i] = turnCounts[i]
		}
	}
}

// KnownVowels counts the distinct vowels confirmed present so far.
func (m *MinLetterCounts) KnownVowels() int {
	n := 0
	for i := 0; i < len(vowels); i++ {
		if m[vowels[i]-'A'] > 0 {
			n++
		}
	}
	return n
}

// Eliminate flags every live candidate whose hypothetical feedback for
// guess disagrees with the observed pattern, and returns how many
// candidates survive. A candidate stays alive exactly when "if the
// answer were this word, the guess would have scored the same".
func Eliminate(arena []words.Entry, guess string, p game.Pattern) int {
	live := 0
	for i := range arena {
		if arena[i].Eliminated {
			continue
		}
		if game.Score(guess, arena[i].Word) != p {
			arena[i].Eliminated = true
			continue
		}
		live++
	}
	return live
}
