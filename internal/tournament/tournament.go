// apps/solver/internal/tournament/tournament.go
//
// The simulation engine: plays every lexicon word as the secret answer
// against a strategy and measures the outcome.
// Responsibilities:
//   - Phase 1: determine each strategy's opening word once, serially.
//   - Phase 2: fan the per-target games out over a worker pool. Every
//     game resets a worker-owned scratch arena, so games never share
//     mutable state.
//   - Phase 3: merge worker-local tallies and finalize the stats.
//
// Workers keep their own Stats and merge under a mutex when their feed
// closes; the hot loop takes no locks.

package tournament

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/entropy"
	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/views"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// Stats aggregates one strategy's tournament result. Distribution[n]
// counts games won in exactly n guesses; index 0 is unused.
type Stats struct {
	Strategy       string                        `json:"strategy"`
	Opener         string                        `json:"opener"`
	Wins           int                           `json:"wins"`
	Losses         int                           `json:"losses"`
	TotalGuesses   int64                         `json:"totalGuesses"`
	Distribution   [solver.MaxGuesses + 1]int    `json:"distribution"`
	AverageGuesses float64                       `json:"averageGuesses"`
	WinPercent     float64                       `json:"winPercent"`
	Elapsed        time.Duration                 `json:"elapsedNs"`
}

// Runner holds the fixed inputs of a tournament.
type Runner struct {
	Lexicon *words.Lexicon
	Hard    bool
	Workers int // defaults to NumCPU
}

// DefaultRoster is the stock line-up: the champion, its look-ahead
// rival and two heuristic baselines.
func DefaultRoster() []solver.Strategy {
	all := solver.Roster()
	return []solver.Strategy{all[0], all[9], all[5], all[2]}
}

// Run simulates each strategy in turn and returns their stats in the
// same order. On cancellation the partial results gathered so far are
// returned alongside the context error.
func (r *Runner) Run(ctx context.Context, strats []solver.Strategy) ([]Stats, error) {
	results := make([]Stats, 0, len(strats))
	for i := range strats {
		st, err := r.RunStrategy(ctx, strats[i])
		results = append(results, st)
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

// RunStrategy plays the full lexicon against one strategy.
func (r *Runner) RunStrategy(ctx context.Context, strat solver.Strategy) (Stats, error) {
	stats := Stats{Strategy: strat.Name}

	// The master arena carries the opening entropies; every game
	// starts from a copy of it. It is read-only once the pool starts.
	master := r.Lexicon.CloneEntries()
	entropy.Annotate(master, views.Valid(master), false)

	opener := r.openingWord(master, &strat)
	stats.Opener = opener
	log.Info().Str("strategy", strat.Name).Str("opener", opener).Bool("hard", r.Hard).Msg("simulating strategy")

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(master) {
		workers = len(master)
	}

	start := time.Now()
	jobs := make(chan int)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			scratch := make([]words.Entry, len(master))
			var local Stats
			for t := range jobs {
				won, guesses := r.playGame(&strat, master, scratch, master[t].Word, opener)
				if won {
					local.Wins++
					local.TotalGuesses += int64(guesses)
					local.Distribution[guesses]++
				} else {
					local.Losses++
				}
			}
			mu.Lock()
			stats.Wins += local.Wins
			stats.Losses += local.Losses
			stats.TotalGuesses += local.TotalGuesses
			for i := 1; i <= solver.MaxGuesses; i++ {
				stats.Distribution[i] += local.Distribution[i]
			}
			mu.Unlock()
		}()
	}

	var err error
feed:
	for t := range master {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case jobs <- t:
		}
	}
	close(jobs)
	wg.Wait()

	stats.Elapsed = time.Since(start)
	if stats.Wins > 0 {
		stats.AverageGuesses = float64(stats.TotalGuesses) / float64(stats.Wins)
	}
	if len(master) > 0 {
		stats.WinPercent = float64(stats.Wins) / float64(len(master)) * 100.0
	}

	log.Info().
		Str("strategy", strat.Name).
		Int("wins", stats.Wins).
		Int("losses", stats.Losses).
		Float64("winPercent", stats.WinPercent).
		Float64("avgGuesses", stats.AverageGuesses).
		Dur("elapsed", stats.Elapsed).
		Msg("strategy finished")
	return stats, err
}

// openingWord resolves the strategy's first guess: a forced opener if
// configured, a recommendation column for the fixed strategies, or the
// full pipeline for the adaptive ones. At turn 1 nothing is eliminated
// yet, so hard and normal mode agree.
func (r *Runner) openingWord(master []words.Entry, strat *solver.Strategy) string {
	if strat.Opener != "" {
		return strat.Opener
	}
	entView := views.Rebuild(master, views.ByEntropy)
	rankView := views.Rebuild(master, views.ByRank)
	n := len(master)

	if strat.Base != solver.BaseSmart {
		recs, ok := solver.BestCandidates(entView, rankView, n)
		if !ok {
			return ""
		}
		return recs[strat.Base].Entry.Word
	}

	var min solver.MinLetterCounts
	pos := &solver.Position{
		EntropyView: entView,
		RankView:    rankView,
		Count:       n,
		Min:         &min,
		ValidCount:  n,
		Turn:        1,
	}
	pick := solver.Pick(pos, strat)
	if pick == nil {
		return ""
	}
	return pick.Word
}

// playGame runs one full game against target on the worker's scratch
// arena and reports whether it was won and in how many guesses.
//
// Two scan paths mirror the two play modes. The normal-mode path
// (adaptive and entropy-based strategies) keeps the whole arena as the
// guess pool and re-scores it against the live answers every turn. The
// compaction path (hard mode, and the rank strategies in any mode)
// physically shrinks the scratch arena to the live candidates and
// keeps the opening entropies, which the rank orderings only consult
// as a late tie-break.
func (r *Runner) playGame(strat *solver.Strategy, master, scratch []words.Entry, target, opener string) (bool, int) {
	copy(scratch, master)
	currentCount := len(scratch)
	guess := opener
	var min solver.MinLetterCounts
	guesses := 0

	for turn := 1; turn <= solver.MaxGuesses; turn++ {
		guesses = turn
		if guess == target {
			return true, turn
		}

		p := game.Score(guess, target)
		min.Update(guess, p)
		solver.Eliminate(scratch[:currentCount], guess, p)

		// The guess computed now is played on turn+1; the forced-valid
		// safeties below fire when that will be the final turn.
		lastTurn := turn+1 == solver.MaxGuesses

		useNormalScan := !r.Hard && strat.Base <= solver.BaseEntropyFiltered
		if useNormalScan {
			valid := views.Valid(scratch)
			if len(valid) == 0 {
				return false, turn
			}
			entropy.Annotate(scratch, valid, true)
			entView := views.Rebuild(scratch, views.ByEntropyNoFilter)
			rankView := views.Rebuild(scratch, views.ByRank)

			switch {
			case turn == 1 && strat.SecondOpener != "":
				guess = strat.SecondOpener
			case strat.Base == solver.BaseEntropyRaw:
				if lastTurn {
					guess = firstLiveWord(entView, entView[0].Word)
				} else {
					guess = entView[0].Word
				}
			case strat.Base == solver.BaseEntropyFiltered:
				guess = firstLiveWord(entView, entView[0].Word)
			default: // BaseSmart
				pos := &solver.Position{
					EntropyView: entView,
					RankView:    rankView,
					Count:       len(scratch),
					Min:         &min,
					ValidCount:  len(valid),
					Turn:        turn + 1,
				}
				next := solver.Pick(pos, strat)
				if lastTurn && next.Eliminated {
					if live := firstLive(rankView); live != nil {
						next = live
					}
				}
				guess = next.Word
			}
			continue
		}

		active := views.CompactEliminated(scratch[:currentCount])
		currentCount = active
		if currentCount == 0 {
			return false, turn
		}
		live := scratch[:currentCount]
		entView := views.Rebuild(live, views.ByEntropy)
		rankView := views.Rebuild(live, views.ByRank)

		if strat.Base != solver.BaseSmart {
			recs, _ := solver.BestCandidates(entView, rankView, currentCount)
			guess = recs[strat.Base].Entry.Word
		} else {
			pos := &solver.Position{
				EntropyView: entView,
				RankView:    rankView,
				Count:       currentCount,
				Min:         &min,
				ValidCount:  currentCount,
				Turn:        turn + 1,
			}
			guess = solver.Pick(pos, strat).Word
		}
	}
	return false, guesses
}

// firstLive returns the first non-eliminated entry in the view, or nil.
func firstLive(view []*words.Entry) *words.Entry {
	for _, e := range view {
		if !e.Eliminated {
			return e
		}
	}
	return nil
}

// firstLiveWord returns the first non-eliminated word, falling back
// when the view holds none.
func firstLiveWord(view []*words.Entry, fallback string) string {
	if e := firstLive(view); e != nil {
		return e.Word
	}
	return fallback
}

// Champion returns the index of the winning strategy: highest win rate
// first, lowest average guesses second. Earlier entries keep exact
// ties. Returns -1 for an empty slice.
func Champion(results []Stats) int {
	best := -1
	bestWin := 0.0
	bestAvg := 100.0
	for i := range results {
		if results[i].WinPercent > bestWin {
			bestWin = results[i].WinPercent
			bestAvg = results[i].AverageGuesses
			best = i
		} else if results[i].WinPercent == bestWin && results[i].AverageGuesses < bestAvg {
			bestAvg = results[i].AverageGuesses
			best = i
		}
	}
	return best
}
