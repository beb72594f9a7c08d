package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

func lookaheadPool(wordList ...string) []*words.Entry {
	out := make([]*words.Entry, len(wordList))
	for i, w := range wordList {
		out[i] = &words.Entry{Word: w}
	}
	return out
}

func TestLookaheadTinyPool(t *testing.T) {
	assert.Zero(t, lookaheadBonus("CRANE", nil, 2))
	assert.Zero(t, lookaheadBonus("CRANE", lookaheadPool("TONIC"), 2))
}

func TestLookaheadDoomsdayPenalty(t *testing.T) {
	// AEIOU shares no letters with any of these, so all eight answers
	// land in a single all-gray bucket. With two turns left after turn
	// four, a bucket of eight is an unavoidable loss on that branch.
	valid := lookaheadPool(
		"BCDFG", "HJKLM", "NPRST", "VWXYZ",
		"GFDCB", "MLKJH", "TSRPN", "ZYXWV",
	)
	got := lookaheadBonus("AEIOU", valid, 4)

	// One bucket: the safety term is log10(64/64) = 0, so the penalty
	// lands whole.
	assert.InDelta(t, -100.0, got, 1e-9)
}

func TestLookaheadSniperCountsFromTurnTwo(t *testing.T) {
	// CRANE against {CRANE, BHJKL(BBBBB), VWXYZ(BBBBB)}: one singleton
	// (the all-green bucket) and one pair.
	valid := lookaheadPool("CRANE", "BHJKL", "VWXYZ")

	turn1 := lookaheadBonus("CRANE", valid, 1)
	turn2 := lookaheadBonus("CRANE", valid, 2)

	assert.InDelta(t, 0.04, turn2-turn1, 1e-9, "a singleton earns its bounty only after the opener")
	assert.Greater(t, turn1, 0.0, "an even-ish split is worth something on its own")
}

func TestLookaheadSoftPenaltyForLopsidedSplits(t *testing.T) {
	// Five answers; four share the all-gray bucket against the guess.
	// A bucket of four fits the four turns remaining after turn two, so
	// no doomsday, but it is more than half the pool plus one.
	valid := lookaheadPool("ABCDE", "VWXYZ", "ZYXWV", "XZWYV", "WXYZV")
	got := lookaheadBonus("ABCDE", valid, 2)

	assert.Less(t, got, -4.0, "soft penalty dominates the small safety term")
	assert.Greater(t, got, -6.0, "but it is not the doomsday branch")
}
