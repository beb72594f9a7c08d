package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// disjointLexicon holds five words sharing no letters, so feedback for
// any in-pool guess is either all green or all gray. That makes every
// game fully deterministic: one elimination per wrong guess.
func disjointLexicon() *words.Lexicon {
	return &words.Lexicon{Entries: []words.Entry{
		{Word: "ABCDE", Rank: 90, Noun: words.NounNone, Verb: words.VerbNone},
		{Word: "FGHIJ", Rank: 80, Noun: words.NounNone, Verb: words.VerbNone},
		{Word: "KLMNO", Rank: 70, Noun: words.NounNone, Verb: words.VerbNone},
		{Word: "PQRST", Rank: 60, Noun: words.NounNone, Verb: words.VerbNone},
		{Word: "UVWXY", Rank: 50, Noun: words.NounNone, Verb: words.VerbNone},
	}}
}

func TestNewGameInitialState(t *testing.T) {
	g := NewGame(disjointLexicon(), Champion(), false)

	assert.Equal(t, 1, g.Turn())
	assert.Equal(t, 5, g.ValidCount())
	assert.False(t, g.Over())
	assert.False(t, g.Solved())

	recs, ok := g.Recommendations()
	require.True(t, ok)
	for i, r := range recs {
		require.NotNil(t, r.Entry, "slot %d", i)
	}

	pick := g.Suggest()
	require.NotNil(t, pick)
	assert.Equal(t, "ABCDE", pick.Word, "equal entropies fall through to rank")
}

func TestGameSelfPlaySolves(t *testing.T) {
	const target = "UVWXY"
	g := NewGame(disjointLexicon(), Champion(), false)

	var picks []string
	for !g.Over() {
		pick := g.Suggest()
		require.NotNil(t, pick)
		picks = append(picks, pick.Word)
		require.NoError(t, g.ApplyFeedback(pick.Word, game.Score(pick.Word, target)))
	}

	assert.True(t, g.Solved())
	assert.Equal(t, []string{"ABCDE", "FGHIJ", "KLMNO", "PQRST", "UVWXY"}, picks,
		"one elimination per turn, in rank order")
	assert.Len(t, g.History, 5)
}

func TestGameSolvesImmediately(t *testing.T) {
	g := NewGame(disjointLexicon(), Champion(), false)
	pick := g.Suggest()
	require.NotNil(t, pick)

	require.NoError(t, g.ApplyFeedback(pick.Word, game.AllGreen))
	assert.True(t, g.Solved())
	assert.True(t, g.Over())
	assert.Len(t, g.History, 1)

	err := g.ApplyFeedback("FGHIJ", game.AllGreen)
	assert.ErrorIs(t, err, ErrFinished)
}

func TestGameExhaustedPool(t *testing.T) {
	g := NewGame(disjointLexicon(), Champion(), false)

	// GGGGB is impossible here: nothing shares four letters with ABCDE.
	p, err := game.ParsePattern("GGGGB")
	require.NoError(t, err)

	err = g.ApplyFeedback("ABCDE", p)
	assert.ErrorIs(t, err, ErrExhausted)
	assert.Zero(t, g.ValidCount())
	assert.True(t, g.Over())
}

func TestGameTurnBudget(t *testing.T) {
	g := NewGame(disjointLexicon(), Champion(), false)

	// An out-of-pool guess with all-gray feedback eliminates nothing.
	allGray, err := game.ParsePattern("BBBBB")
	require.NoError(t, err)

	for i := 0; i < MaxGuesses; i++ {
		require.NoError(t, g.ApplyFeedback("ZZZZZ", allGray))
		assert.Equal(t, 5, g.ValidCount())
	}
	assert.True(t, g.Over())
	assert.False(t, g.Solved())
	assert.Len(t, g.History, MaxGuesses)

	err = g.ApplyFeedback("ZZZZZ", allGray)
	assert.ErrorIs(t, err, ErrFinished)
}

func TestGameRejectsBadGuess(t *testing.T) {
	g := NewGame(disjointLexicon(), Champion(), false)
	err := g.ApplyFeedback("XYZ", game.AllGreen)
	assert.Error(t, err)
	assert.Equal(t, 1, g.Turn(), "a rejected guess does not burn the turn")
	assert.Empty(t, g.History)
}

func TestGameHardModeCompaction(t *testing.T) {
	allGray, err := game.ParsePattern("BBBBB")
	require.NoError(t, err)

	hard := NewGame(disjointLexicon(), Champion(), true)
	require.NoError(t, hard.ApplyFeedback("ABCDE", allGray))

	assert.Equal(t, 4, hard.ValidCount())
	byEntropy, byRank := hard.TopCandidates(10)
	assert.Len(t, byEntropy, 4, "hard mode scans only the live prefix")
	for _, e := range byEntropy {
		assert.NotEqual(t, "ABCDE", e.Word)
		assert.False(t, e.Eliminated)
	}
	assert.Len(t, byRank, 4)
}

func TestGameNormalModeKeepsBurners(t *testing.T) {
	allGray, err := game.ParsePattern("BBBBB")
	require.NoError(t, err)

	g := NewGame(disjointLexicon(), Champion(), false)
	require.NoError(t, g.ApplyFeedback("ABCDE", allGray))

	assert.Equal(t, 4, g.ValidCount())
	byEntropy, _ := g.TopCandidates(5)
	require.Len(t, byEntropy, 5, "normal mode keeps the whole arena playable")

	assert.Equal(t, "FGHIJ", byEntropy[0].Word)
	assert.Equal(t, "ABCDE", byEntropy[4].Word,
		"the zero-entropy burner sinks to the bottom")
	assert.True(t, byEntropy[4].Eliminated)
}
