// apps/solver/internal/solver/recommend.go
//
// The four recommendation categories surfaced to users each turn:
// the raw and filtered heads of the entropy and rank views. The fixed
// Base* strategies index straight into this array.

package solver

import "github.com/robalobadob/wordle/apps/solver/internal/words"

// RecommendationCount is the number of display categories.
const RecommendationCount = 4

// Recommendation pairs a display label with its candidate.
type Recommendation struct {
	Label string
	Entry *words.Entry
}

// BestCandidates assembles the recommendation array from the two
// views. The filtered columns fall back to the raw head when nothing
// passes, so every slot is always populated. Returns false only for an
// empty window.
func BestCandidates(entropyView, rankView []*words.Entry, count int) ([RecommendationCount]Recommendation, bool) {
	var recs [RecommendationCount]Recommendation
	if count == 0 {
		return recs, false
	}

	recs[BaseEntropyRaw] = Recommendation{Label: "Entropy Raw (Max Info)", Entry: entropyView[0]}
	recs[BaseRankRaw] = Recommendation{Label: "Rank Raw (Most Common)", Entry: rankView[0]}

	entFilt := firstFiltered(entropyView, count)
	if entFilt == nil {
		entFilt = entropyView[0]
	}
	recs[BaseEntropyFiltered] = Recommendation{Label: "Entropy Filtered", Entry: entFilt}

	rankFilt := firstFiltered(rankView, count)
	if rankFilt == nil {
		rankFilt = rankView[0]
	}
	recs[BaseRankFiltered] = Recommendation{Label: "Rank Filtered", Entry: rankFilt}

	return recs, true
}

// firstFiltered returns the first live entry meeting the display
// criteria. The scan stops at the first eliminated entry: both
// filtered views order eliminated entries last, so nothing beyond
// them can qualify.
func firstFiltered(view []*words.Entry, count int) *words.Entry {
	for _, e := range view[:count] {
		if e.Eliminated {
			break
		}
		if meetsFilteredCriteria(e) {
			return e
		}
	}
	return nil
}
