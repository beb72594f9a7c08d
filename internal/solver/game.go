// apps/solver/internal/solver/game.go
//
// One solving session as a value: a private arena plus the views,
// constraint state and turn counter that evolve with it.
// Responsibilities:
//   - Own the arena clone so concurrent sessions never share state.
//   - Re-annotate entropy and rebuild views after each turn's feedback.
//   - Expose suggestions and recommendations for the current turn.
//
// Normal mode keeps the whole lexicon as the guess pool and orders it
// by pure entropy; hard mode physically compacts the arena down to the
// live candidates each turn.

package solver

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/entropy"
	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/views"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// ErrExhausted means every candidate has been eliminated: some piece
// of the reported feedback must have been wrong.
var ErrExhausted = errors.New("no candidates remain")

// ErrFinished is returned when feedback arrives after the session is
// already decided.
var ErrFinished = errors.New("game already finished")

// TurnResult records one played guess and its feedback.
type TurnResult struct {
	Guess   string       `json:"guess"`
	Pattern game.Pattern `json:"pattern"`
}

// Game is one interactive solving session.
type Game struct {
	Strategy Strategy
	Hard     bool
	History  []TurnResult

	arena       []words.Entry
	entropyView []*words.Entry
	rankView    []*words.Entry
	min         MinLetterCounts
	turn        int
	validCount  int
	solved      bool
}

// NewGame clones the lexicon into a private arena, annotates the
// opening entropies and builds the initial views.
func NewGame(lex *words.Lexicon, strat Strategy, hard bool) *Game {
	g := &Game{
		Strategy:   strat,
		Hard:       hard,
		arena:      lex.CloneEntries(),
		turn:       1,
		validCount: lex.Len(),
	}
	entropy.Annotate(g.arena, views.Valid(g.arena), false)
	g.entropyView = views.Rebuild(g.arena, views.ByEntropy)
	g.rankView = views.Rebuild(g.arena, views.ByRank)
	return g
}

// Turn reports the 1-based turn about to be played.
func (g *Game) Turn() int { return g.turn }

// ValidCount reports how many candidates could still be the answer.
func (g *Game) ValidCount() int { return g.validCount }

// Solved reports whether an all-green result has been recorded.
func (g *Game) Solved() bool { return g.solved }

// Over reports whether the session is decided: solved, out of turns,
// or out of candidates.
func (g *Game) Over() bool {
	return g.solved || g.turn > MaxGuesses || g.validCount == 0
}

// scanCount is the candidate window for the current mode: hard mode
// may only play live words, normal mode may play anything.
func (g *Game) scanCount() int {
	if g.Hard {
		return g.validCount
	}
	return len(g.arena)
}

// Suggest asks the decision pipeline for this turn's guess.
func (g *Game) Suggest() *words.Entry {
	pos := &Position{
		EntropyView: g.entropyView,
		RankView:    g.rankView,
		Count:       g.scanCount(),
		Min:         &g.min,
		ValidCount:  g.validCount,
		Turn:        g.turn,
	}
	return Pick(pos, &g.Strategy)
}

// Recommendations returns the four display categories for this turn.
func (g *Game) Recommendations() ([RecommendationCount]Recommendation, bool) {
	return BestCandidates(g.entropyView, g.rankView, g.scanCount())
}

// TopCandidates returns up to n entries from the head of each view,
// for display.
func (g *Game) TopCandidates(n int) (byEntropy, byRank []*words.Entry) {
	if n > g.scanCount() {
		n = g.scanCount()
	}
	return g.entropyView[:n], g.rankView[:n]
}

// ApplyFeedback folds one turn's real-world result into the session:
// constraint update, elimination, entropy re-annotation and view
// rebuild. An all-green pattern marks the session solved and leaves
// the arena untouched.
func (g *Game) ApplyFeedback(guess string, p game.Pattern) error {
	if g.Over() {
		return ErrFinished
	}
	w, err := words.NormalizeWord(guess)
	if err != nil {
		return err
	}

	g.History = append(g.History, TurnResult{Guess: w, Pattern: p})
	if p == game.AllGreen {
		g.solved = true
		return nil
	}

	g.min.Update(w, p)
	live := Eliminate(g.arena, w, p)
	g.validCount = live
	if live == 0 {
		return ErrExhausted
	}

	g.rebuild()
	g.turn++
	log.Debug().Str("guess", w).Str("pattern", p.String()).Int("remaining", live).Msg("feedback applied")
	return nil
}

// rebuild re-annotates entropy and re-sorts the views for the next
// turn. Hard mode compacts first so the views cover only the live
// prefix; normal mode scores the whole arena against the live answers
// and lets eliminated burner words rank wherever their entropy puts
// them.
func (g *Game) rebuild() {
	if g.Hard {
		active := views.CompactEliminated(g.arena)
		live := g.arena[:active]
		entropy.Annotate(live, views.Valid(live), false)
		g.entropyView = views.Rebuild(live, views.ByEntropy)
		g.rankView = views.Rebuild(live, views.ByRank)
		g.validCount = active
		return
	}
	valid := views.Valid(g.arena)
	g.validCount = len(valid)
	entropy.Annotate(g.arena, valid, true)
	g.entropyView = views.Rebuild(g.arena, views.ByEntropyNoFilter)
	g.rankView = views.Rebuild(g.arena, views.ByRank)
}
