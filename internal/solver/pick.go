// apps/solver/internal/solver/pick.go
//
// The decision pipeline.
// Responsibilities:
//   - Arbitrate one turn's guess from the sorted views, the constraint
//     state and the strategy configuration.
//
// The pipeline is a fixed list of rules tried in order; the first rule
// that claims the turn wins. The standard scan sits last and always
// produces a guess, so Pick never returns nil for a non-empty window.

package solver

import "github.com/robalobadob/wordle/apps/solver/internal/words"

const (
	// pruneCount caps how many candidates the look-ahead simulation
	// evaluates per turn. The entropy ordering puts the plausible
	// winners up front, so a deep scan buys nothing.
	pruneCount = 60

	// panicThreshold is the live-candidate count at which the scan
	// drops every clever heuristic and reverts to greedy entropy.
	panicThreshold = 20

	// endgameDirect is the live-candidate count below which a
	// still-possible answer bypasses the vetoes entirely.
	endgameDirect = 10
)

// Position is everything one pick decision may look at: the two sorted
// views, the scan window within them, the constraint state, the live
// count and the turn about to be played.
type Position struct {
	EntropyView []*words.Entry
	RankView    []*words.Entry
	Count       int
	Min         *MinLetterCounts
	ValidCount  int
	Turn        int
}

// pickRule examines the position and either claims the turn by
// returning a candidate or defers by returning nil.
type pickRule func(*Position, *Strategy) *words.Entry

// Rule order is part of the contract: exploration rules get the first
// claim, the heatmap next, and the standard scan decides everything
// that remains.
var pickRules = []pickRule{
	turn2Coverage,
	vowelContingency,
	earlyBias,
	heatmapPriority,
	standardScan,
}

// Pick runs the pipeline and returns the guess for this turn, or nil
// when the window is empty.
func Pick(pos *Position, strat *Strategy) *words.Entry {
	if pos.Count == 0 {
		return nil
	}
	for _, rule := range pickRules {
		if e := rule(pos, strat); e != nil {
			return e
		}
	}
	return nil
}

// passesFilters applies the strategy's linguistic and risk vetoes.
func passesFilters(e *words.Entry, pos *Position, strat *Strategy) bool {
	if strat.UseLinguistic && pos.Turn >= strat.LinguisticFrom && !linguisticallySound(e) {
		return false
	}
	if strat.UseRisk && riskyGuess(e.Word, pos.Min) {
		return false
	}
	return true
}

// turn2Coverage burns the second guess on alphabet coverage: among the
// hundred most common words, play the live one that tests the most
// unconfirmed letters. Strict improvement keeps the earlier (more
// common) word on ties.
func turn2Coverage(pos *Position, strat *Strategy) *words.Entry {
	if !strat.Turn2Coverage || pos.Turn != 2 {
		return nil
	}
	limit := pos.Count
	if limit > 100 {
		limit = 100
	}
	best := -1
	var bestCand *words.Entry
	for i := 0; i < limit; i++ {
		cand := pos.RankView[i]
		if cand.Eliminated || !passesFilters(cand, pos, strat) {
			continue
		}
		if cov := newLetterCoverage(cand.Word, pos.Min); cov > best {
			best = cov
			bestCand = cand
		}
	}
	return bestCand
}

// vowelContingency pivots to a vowel hunt when the opener confirmed
// fewer than two vowels: among the thirty best entropy words, play the
// one testing the most unseen vowels, entropy breaking ties.
func vowelContingency(pos *Position, strat *Strategy) *words.Entry {
	if !strat.VowelContingency || pos.Turn != 2 {
		return nil
	}
	if pos.Min.KnownVowels() >= 2 {
		return nil
	}
	limit := pos.Count
	if limit > 30 {
		limit = 30
	}
	bestNew := -1
	bestEnt := -1.0
	var best *words.Entry
	for i := 0; i < limit; i++ {
		cand := pos.EntropyView[i]
		if !passesFilters(cand, pos, strat) {
			continue
		}
		v := newVowelCount(cand.Word, pos.Min)
		if v > bestNew || (v == bestNew && cand.Entropy > bestEnt) {
			bestNew, bestEnt, best = v, cand.Entropy, cand
		}
	}
	return best
}

// earlyBias steers the first two turns toward structural anchors or
// vowel discovery, whichever the strategy asked for, scanning the
// thirty best entropy words with entropy breaking score ties.
func earlyBias(pos *Position, strat *Strategy) *words.Entry {
	if pos.Turn > 2 || (!strat.NewVowels && !strat.Anchors) {
		return nil
	}
	limit := pos.Count
	if limit > 30 {
		limit = 30
	}
	bestScore := -1
	bestEnt := -1.0
	var best *words.Entry
	for i := 0; i < limit; i++ {
		cand := pos.EntropyView[i]
		if !passesFilters(cand, pos, strat) {
			continue
		}
		var sc int
		if strat.Anchors {
			sc = anchorScore(cand.Word)
		} else {
			sc = uniqueVowelCount(cand.Word)
		}
		if sc > bestScore || (sc == bestScore && cand.Entropy > bestEnt) {
			bestScore, bestEnt, best = sc, cand.Entropy, cand
		}
	}
	return best
}

// heatmapPriority picks the word best aligned with the positional
// letter frequencies of the live candidates. The scan runs until
// twenty candidates have passed the vetoes.
func heatmapPriority(pos *Position, strat *Strategy) *words.Entry {
	if !strat.Heatmap || pos.ValidCount <= 2 {
		return nil
	}
	hm := buildHeatmap(pos.EntropyView[:pos.Count])
	best := -1
	var bestCand *words.Entry
	scanned := 0
	for i := 0; i < pos.Count && scanned < 20; i++ {
		cand := pos.EntropyView[i]
		if !passesFilters(cand, pos, strat) {
			continue
		}
		if sc := hm.score(cand.Word); sc > best {
			best = sc
			bestCand = cand
		}
		scanned++
	}
	return bestCand
}

// standardScan is the terminal rule: greedy entropy with optional
// look-ahead and rank tie-breaking.
//
// Two safety valves govern it. Below panicThreshold live candidates
// the scan goes into panic mode: the linguistic veto, the look-ahead
// bonus and the rank tie-break all switch off, leaving pure entropy.
// The risk veto stays on. Separately, once the live count is at most
// endgameDirect, any candidate that could still be the answer skips
// the vetoes outright and competes on entropy alone.
func standardScan(pos *Position, strat *Strategy) *words.Entry {
	panicMode := pos.ValidCount <= panicThreshold

	maxEvals := pos.Count
	if strat.LookAheadDepth > 0 && !panicMode {
		maxEvals = pruneCount
	}

	bestScore := -1000.0
	var best *words.Entry
	evaluated := 0
	for i := 0; i < pos.Count && evaluated < maxEvals; i++ {
		cand := pos.EntropyView[i]

		direct := !cand.Eliminated && pos.ValidCount <= endgameDirect
		if !direct {
			applyLing := strat.UseLinguistic && pos.Turn >= strat.LinguisticFrom && !panicMode
			if applyLing && !linguisticallySound(cand) {
				continue
			}
			if strat.UseRisk && riskyGuess(cand.Word, pos.Min) {
				continue
			}
		}

		score := cand.Entropy
		if strat.LookAheadDepth > 0 && !panicMode {
			score += lookaheadBonus(cand.Word, pos.RankView[:pos.ValidCount], pos.Turn)
		}
		if score > bestScore {
			bestScore = score
			best = cand
		}
		evaluated++
	}
	if best == nil {
		best = pos.EntropyView[0]
	}

	// Rank tie-break: when the most common passing word is within the
	// tolerance of the entropy pick, play the common word.
	if strat.RankTolerance > 0 && !panicMode {
		rankCand := pos.RankView[0]
		for i := 0; i < pos.Count; i++ {
			cand := pos.RankView[i]
			direct := !cand.Eliminated && pos.ValidCount <= endgameDirect
			if !direct {
				if strat.UseLinguistic && pos.Turn >= strat.LinguisticFrom && !linguisticallySound(cand) {
					continue
				}
				if strat.UseRisk && riskyGuess(cand.Word, pos.Min) {
					continue
				}
			}
			rankCand = cand
			break
		}
		if best.Entropy-rankCand.Entropy < strat.RankTolerance {
			return rankCand
		}
	}
	return best
}
