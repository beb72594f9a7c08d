// apps/solver/internal/views/views.go
//
// Ordered pointer views over a lexicon arena.
// Responsibilities:
//   - Build sorted []*words.Entry views without moving the arena.
//   - Define the three orderings the solver consumes (entropy-first,
//     rank-first, and entropy-first ignoring elimination).
//   - Physically compact an arena so live entries lead, for the
//     hard-mode scan path.
//
// Every ordering ends at the word itself, so sorts are total: two
// shuffles of the same arena always produce the same view.

package views

import (
	"sort"

	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// Ordering selects the comparator used to build a view.
type Ordering int

const (
	// ByEntropy puts live entries first, then highest entropy.
	ByEntropy Ordering = iota
	// ByRank puts live entries first, then highest frequency rank.
	ByRank
	// ByEntropyNoFilter orders purely by entropy; eliminated entries
	// may lead when they still carry the most information.
	ByEntropyNoFilter
)

// Preference tables for tie-breaking on part-of-speech codes. Lower is
// better. Pronouns and singular nouns make safer guesses than plurals;
// base verbs beat inflected forms.
func nounOrder(n words.NounClass) int {
	switch n {
	case words.NounPronoun:
		return 0
	case words.NounSingular:
		return 1
	case words.NounNone:
		return 2
	default: // NounPlural
		return 3
	}
}

func verbOrder(v words.VerbClass) int {
	switch v {
	case words.VerbNone:
		return 0
	case words.VerbPresent:
		return 1
	case words.VerbThird:
		return 2
	default: // VerbPast
		return 3
	}
}

// lessTie breaks exact score ties: duplicate-free words first, then
// noun and verb preference, then the remaining numeric key, then the
// word itself. rankKey selects whether rank or entropy fills the
// numeric slot.
func lessTie(a, b *words.Entry, rankKey bool) bool {
	if a.HasDuplicates != b.HasDuplicates {
		return !a.HasDuplicates
	}
	if na, nb := nounOrder(a.Noun), nounOrder(b.Noun); na != nb {
		return na < nb
	}
	if va, vb := verbOrder(a.Verb), verbOrder(b.Verb); va != vb {
		return va < vb
	}
	if rankKey {
		if a.Rank != b.Rank {
			return a.Rank > b.Rank
		}
	} else {
		if a.Entropy != b.Entropy {
			return a.Entropy > b.Entropy
		}
	}
	return a.Word < b.Word
}

func lessByEntropy(a, b *words.Entry) bool {
	if a.Eliminated != b.Eliminated {
		return !a.Eliminated
	}
	if a.Entropy != b.Entropy {
		return a.Entropy > b.Entropy
	}
	return lessTie(a, b, true)
}

func lessByRank(a, b *words.Entry) bool {
	if a.Eliminated != b.Eliminated {
		return !a.Eliminated
	}
	if a.Rank != b.Rank {
		return a.Rank > b.Rank
	}
	return lessTie(a, b, false)
}

func lessNoFilter(a, b *words.Entry) bool {
	if a.Entropy != b.Entropy {
		return a.Entropy > b.Entropy
	}
	if a.Eliminated != b.Eliminated {
		return !a.Eliminated
	}
	return lessTie(a, b, true)
}

// Less reports whether a sorts before b under ord.
func Less(ord Ordering, a, b *words.Entry) bool {
	switch ord {
	case ByRank:
		return lessByRank(a, b)
	case ByEntropyNoFilter:
		return lessNoFilter(a, b)
	default:
		return lessByEntropy(a, b)
	}
}

// Rebuild returns a freshly sorted pointer view over the whole arena.
// The arena itself is never reordered; callers that compact it must
// rebuild their views afterwards.
func Rebuild(arena []words.Entry, ord Ordering) []*words.Entry {
	ptrs := make([]*words.Entry, len(arena))
	for i := range arena {
		ptrs[i] = &arena[i]
	}
	sort.Slice(ptrs, func(i, j int) bool { return Less(ord, ptrs[i], ptrs[j]) })
	return ptrs
}

// Valid collects pointers to the non-eliminated entries in arena order.
func Valid(arena []words.Entry) []*words.Entry {
	out := make([]*words.Entry, 0, len(arena))
	for i := range arena {
		if !arena[i].Eliminated {
			out = append(out, &arena[i])
		}
	}
	return out
}

// CompactEliminated physically reorders the arena so live entries lead,
// alphabetically, and returns how many lead. Pointer views built before
// the call dangle into the reordered arena and must be rebuilt.
func CompactEliminated(arena []words.Entry) int {
	sort.Slice(arena, func(i, j int) bool {
		if arena[i].Eliminated != arena[j].Eliminated {
			return !arena[i].Eliminated
		}
		return arena[i].Word < arena[j].Word
	})
	n := 0
	for i := range arena {
		if arena[i].Eliminated {
			break
		}
		n++
	}
	return n
}
