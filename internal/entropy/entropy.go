// apps/solver/internal/entropy/entropy.go
//
// Shannon entropy of guesses against a candidate answer pool.
// Responsibilities:
//   - Bucket feedback patterns for one guess across the pool (3^5 bins).
//   - Score a guess by the expected information of its feedback, in bits.
//   - Re-annotate a whole lexicon arena in parallel after each turn.
//
// Entropy is the only quantity the solver maximizes; everything else
// (rank, linguistics, risk) is a tie-breaker or a veto on top of it.

package entropy

import (
	"math"
	"runtime"
	"sync"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// log2e converts natural-log entropy into bits.
const log2e = 1.44269504089

// Histogram buckets the feedback pattern of word against every answer.
func Histogram(word string, answers []*words.Entry) [game.PatternCount]int {
	var buckets [game.PatternCount]int
	for _, a := range answers {
		buckets[game.Score(word, a.Word)]++
	}
	return buckets
}

// Of returns the expected information, in bits, of playing word against
// the answer pool. A pool of one (or none) carries no information and
// scores zero.
func Of(word string, answers []*words.Entry) float64 {
	n := len(answers)
	if n <= 1 {
		return 0
	}
	buckets := Histogram(word, answers)
	h := 0.0
	total := float64(n)
	for _, b := range buckets {
		if b == 0 {
			continue
		}
		p := float64(b) / total
		h -= p * math.Log(p)
	}
	return h * log2e
}

// Annotate recomputes the Entropy field of every entry in the arena
// against the answer pool, splitting the arena into contiguous index
// ranges across NumCPU goroutines. Workers write disjoint ranges, so
// no locking is needed.
//
// When includeEliminated is false (hard mode), eliminated entries are
// zeroed instead of scored: they can never be played again, so their
// information value is moot.
func Annotate(arena []words.Entry, answers []*words.Entry, includeEliminated bool) {
	n := len(arena)
	if n == 0 {
		return
	}
	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				if !includeEliminated && arena[i].Eliminated {
					arena[i].Entropy = 0
					continue
				}
				arena[i].Entropy = Of(arena[i].Word, answers)
			}
		}(lo, hi)
	}
	wg.Wait()
}
