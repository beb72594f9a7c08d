// apps/solver/internal/solver/strategy.go
//
// The strategy registry.
// Responsibilities:
//   - Define Strategy, the data object that parameterizes the decision
//     pipeline. Bots differ only by configuration, never by code.
//   - Keep every configuration ever fielded, so old tournament results
//     stay reproducible after pipeline changes.

package solver

// Base candidate sources. BaseSmart runs the full decision pipeline;
// the others pick straight from a recommendation column.
const (
	BaseSmart           = -1
	BaseEntropyRaw      = 0
	BaseEntropyFiltered = 1
	BaseRankRaw         = 2
	BaseRankFiltered    = 3
)

// MaxGuesses is the turn budget of a standard game.
const MaxGuesses = 6

// Strategy configures one bot personality.
type Strategy struct {
	Name             string
	Base             int     // BaseSmart or a recommendation index
	UseLinguistic    bool    // veto plurals / past-tense / third-person
	LinguisticFrom   int     // first turn the linguistic veto applies
	UseRisk          bool    // veto unconfirmed repeated letters
	NewVowels        bool    // early bias toward unseen vowels
	Anchors          bool    // early bias toward Y/E endings
	VowelContingency bool    // turn-2 pivot when vowels are missing
	LookAheadDepth   int     // 0 or 1
	RankTolerance    float64 // swap to the rank pick within this margin
	Opener           string  // forced first guess, empty for none
	Heatmap          bool    // positional-frequency priority
	SecondOpener     string  // forced second guess, empty for none
	Turn2Coverage    bool    // turn-2 burn for new-letter coverage
}

// Roster returns the full registry. Index 0 is the production default;
// the rest are baselines and retired experiments kept for regression
// tournaments.
func Roster() []Strategy {
	return []Strategy{
		// Undefeated across full-lexicon tournaments. Pure entropy
		// plus the linguistic veto from turn 1.
		{Name: "Entropy Linguist (Strict)", Base: BaseSmart, UseLinguistic: true, LinguisticFrom: 1},

		// Control group: raw math, happily guesses TARES.
		{Name: "Entropy Raw (Baseline)", Base: BaseEntropyRaw, LinguisticFrom: 99},

		// The original hybrid with heavy rank bias.
		{Name: "Legacy Reborn (Smart)", Base: BaseSmart, UseLinguistic: true, LinguisticFrom: 1, UseRisk: true, RankTolerance: 0.50},

		// Popular vowel-heavy openers.
		{Name: "Vowel Hunter (Audio)", Base: BaseSmart, UseLinguistic: true, LinguisticFrom: 1, NewVowels: true, Opener: "AUDIO"},
		{Name: "Vowel Hunter (Adieu)", Base: BaseSmart, UseLinguistic: true, LinguisticFrom: 1, NewVowels: true, Opener: "ADIEU"},

		// Pivots to a vowel hunt when turn 1 comes back dry.
		{Name: "Vowel Contingency", Base: BaseSmart, UseLinguistic: true, LinguisticFrom: 1, VowelContingency: true},

		// Chases terminal-Y/E structure early.
		{Name: "Pattern Hunter (Anchor)", Base: BaseSmart, UseLinguistic: true, LinguisticFrom: 1, Anchors: true},

		// Let plurals through early for information, then go strict.
		{Name: "Progressive (Skip T1)", Base: BaseSmart, UseLinguistic: true, LinguisticFrom: 2},
		{Name: "Progressive (Skip T1-2)", Base: BaseSmart, UseLinguistic: true, LinguisticFrom: 3},

		// Fastest average on record; needs the endgame clamp to stay safe.
		{Name: "Look Ahead (Pruned)", Base: BaseSmart, UseLinguistic: true, LinguisticFrom: 1, LookAheadDepth: 1},

		// Straight view-index strategies.
		{Name: "Entropy Filtered", Base: BaseEntropyFiltered, LinguisticFrom: 99},
		{Name: "Rank Raw", Base: BaseRankRaw, LinguisticFrom: 99},
		{Name: "Rank Filtered", Base: BaseRankFiltered, LinguisticFrom: 99},

		// Rank bias at 0.25 proved too aggressive: common-word traps.
		{Name: "Hybrid Apex (Strict)", Base: BaseSmart, UseLinguistic: true, LinguisticFrom: 1, UseRisk: true, VowelContingency: true, LookAheadDepth: 1, RankTolerance: 0.25},

		{Name: "Deep Linguist", Base: BaseSmart, UseLinguistic: true, LinguisticFrom: 1, LookAheadDepth: 1},

		{Name: "Hybrid Apex II (Safe)", Base: BaseSmart, UseLinguistic: true, LinguisticFrom: 1, LookAheadDepth: 1, RankTolerance: 0.10},

		// Positional frequency; falls into green-trap silos in hard mode.
		{Name: "Heatmap Seeker", Base: BaseSmart, UseLinguistic: true, LinguisticFrom: 1, Heatmap: true},

		// Coverage maximization lost to entropy in every tournament.
		{Name: "Dynamic Two-Step (Coverage)", Base: BaseSmart, UseLinguistic: true, LinguisticFrom: 1, Turn2Coverage: true},

		// Fixed two-word opening covering ten distinct letters.
		{Name: "Double Barrel (Salet/Courd)", Base: BaseSmart, UseLinguistic: true, LinguisticFrom: 1, Opener: "SALET", SecondOpener: "COURD"},
	}
}

// Champion returns the production default strategy.
func Champion() Strategy {
	return Roster()[0]
}
