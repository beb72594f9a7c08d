// apps/solver/internal/solver/lookahead.go
//
// One-turn look-ahead scoring.
// Responsibilities:
//   - Simulate a candidate against every live answer and score the
//     bucket structure of the resulting feedback split.
//
// The bonus is added to a candidate's entropy by the standard scan, so
// its scale matters: the safety term stays within a few bits, while the
// doomsday penalty is large enough to disqualify outright.

package solver

import (
	"math"

	"github.com/robalobadob/wordle/apps/solver/internal/entropy"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// lookaheadBonus scores how playing word now would shape the next turn.
//
// Three terms:
//   - Safety: log10 of the branching factor N^2 / sum(b^2). Even splits
//     into many buckets score high; one dominant bucket scores near 0.
//   - Sniper: +0.04 per singleton bucket, from turn 2 on. A singleton
//     means the next feedback pins the answer exactly. Turn 1 is
//     excluded so risky openers don't outscore safe ones.
//   - Doomsday: if the largest bucket exceeds the guesses remaining the
//     game is lost on that branch, so the word is penalized by 100.
//     A softer -5 discourages lopsided mid-game splits.
func lookaheadBonus(word string, valid []*words.Entry, turn int) float64 {
	n := len(valid)
	if n <= 1 {
		return 0
	}

	bins := entropy.Histogram(word, valid)

	sumSquares := 0.0
	singles := 0
	maxBucket := 0
	for _, b := range bins {
		if b == 0 {
			continue
		}
		sumSquares += float64(b) * float64(b)
		if b == 1 {
			singles++
		}
		if b > maxBucket {
			maxBucket = b
		}
	}

	total := math.Log10(float64(n) * float64(n) / sumSquares)
	if turn > 1 {
		total += float64(singles) * 0.04
	}

	if maxBucket > MaxGuesses-turn {
		return total - 100.0
	}
	if n > 4 && maxBucket > n/2+1 {
		return total - 5.0
	}
	return total
}
