// apps/solver/internal/solver/filters.go
//
// Candidate vetoes and heuristic scorers.
// Responsibilities:
//   - Linguistic soundness and risk vetoes applied by the pipeline.
//   - Display criteria for the "Filtered" recommendation columns.
//   - Cheap structural scores: vowel discovery, anchors, letter
//     coverage, positional heatmap.

package solver

import "github.com/robalobadob/wordle/apps/solver/internal/words"

// Y counts as a vowel throughout: it behaves like one at the end of
// five-letter English words.
const vowels = "AEIOUY"

// linguisticallySound rejects word shapes the published answer list
// almost never uses: plural nouns, past-tense verbs and third-person
// verbs.
func linguisticallySound(e *words.Entry) bool {
	if e.Noun == words.NounPlural {
		return false
	}
	if e.Verb == words.VerbPast || e.Verb == words.VerbThird {
		return false
	}
	return true
}

// riskyGuess reports whether the word repeats a letter beyond its
// confirmed minimum. Only repeated letters are checked: playing a
// single unconfirmed letter is exploration, playing it twice burns a
// position on a bet the feedback never justified.
func riskyGuess(word string, min *MinLetterCounts) bool {
	var counts [26]int
	for i := 0; i < len(word); i++ {
		counts[word[i]-'A']++
	}
	for i := range counts {
		if counts[i] > 1 && counts[i] > min[i] {
			return true
		}
	}
	return false
}

// meetsFilteredCriteria is the display-grade filter behind the
// "Entropy Filtered" and "Rank Filtered" recommendation columns:
// no repeated letters, no plural nouns or pronouns, and only base or
// non-verbs.
func meetsFilteredCriteria(e *words.Entry) bool {
	if e.HasDuplicates {
		return false
	}
	if e.Noun == words.NounPlural || e.Noun == words.NounPronoun {
		return false
	}
	if e.Verb != words.VerbNone && e.Verb != words.VerbPresent {
		return false
	}
	return true
}

// uniqueVowelCount counts distinct vowels in the word.
func uniqueVowelCount(word string) int {
	var seen [26]bool
	n := 0
	for i := 0; i < len(word); i++ {
		c := word[i]
		if !isVowel(c) {
			continue
		}
		if !seen[c-'A'] {
			seen[c-'A'] = true
			n++
		}
	}
	return n
}

// newVowelCount counts distinct vowels in the word that feedback has
// not yet confirmed.
func newVowelCount(word string, min *MinLetterCounts) int {
	var seen [26]bool
	n := 0
	for i := 0; i < len(word); i++ {
		c := word[i]
		if !isVowel(c) {
			continue
		}
		if !seen[c-'A'] && min[c-'A'] == 0 {
			seen[c-'A'] = true
			n++
		}
	}
	return n
}

func isVowel(c byte) bool {
	for i := 0; i < len(vowels); i++ {
		if vowels[i] == c {
			return true
		}
	}
	return false
}

// anchorScore rewards structural anchors common in English five-letter
// words: a terminal Y (+3) or E (+2), and a central vowel (+1). Y does
// not count as a central vowel here.
func anchorScore(word string) int {
	score := 0
	switch word[4] {
	case 'Y':
		score += 3
	case 'E':
		score += 2
	}
	switch word[2] {
	case 'A', 'E', 'I', 'O', 'U':
		score++
	}
	return score
}

// newLetterCoverage counts distinct letters in the word that feedback
// has not yet confirmed, vowel or not.
func newLetterCoverage(word string, min *MinLetterCounts) int {
	var seen [26]bool
	n := 0
	for i := 0; i < len(word); i++ {
		c := word[i] - 'A'
		if !seen[c] {
			seen[c] = true
			if min[c] == 0 {
				n++
			}
		}
	}
	return n
}

// heatmap is a positional letter-frequency matrix over the live
// candidates: heatmap[2]['A'-'A'] is how many of them have an A in the
// middle position.
type heatmap [5][26]int

func buildHeatmap(view []*words.Entry) *heatmap {
	var hm heatmap
	for _, e := range view {
		if e.Eliminated {
			continue
		}
		for j := 0; j < len(e.Word); j++ {
			hm[j][e.Word[j]-'A']++
		}
	}
	return &hm
}

// score sums the positional frequencies of the word's letters.
func (hm *heatmap) score(word string) int {
	n := 0
	for j := 0; j < len(word); j++ {
		n += hm[j][word[j]-'A']
	}
	return n
}
