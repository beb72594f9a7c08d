package words

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Entry
		bad  bool
	}{
		{
			name: "clean singular noun",
			raw:  "CRANE080SN",
			want: Entry{Word: "CRANE", Rank: 80, Noun: NounSingular, Verb: VerbNone},
		},
		{
			name: "lowercase input upcased",
			raw:  "crane080SN",
			want: Entry{Word: "CRANE", Rank: 80, Noun: NounSingular, Verb: VerbNone},
		},
		{
			name: "duplicate letters flagged",
			raw:  "HELLO100NN",
			want: Entry{Word: "HELLO", Rank: 100, Noun: NounNone, Verb: VerbNone, HasDuplicates: true},
		},
		{name: "too short", raw: "CRANE080S", bad: true},
		{name: "digit in word", raw: "CR4NE080SN", bad: true},
		{name: "letter in rank", raw: "CRANE08XSN", bad: true},
		{name: "rank over 100", raw: "CRANE101SN", bad: true},
		{name: "unknown noun code", raw: "CRANE080XN", bad: true},
		{name: "unknown verb code", raw: "CRANE080SX", bad: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseLine(tc.raw)
			if tc.bad {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParse(t *testing.T) {
	input := strings.Join([]string{
		"# comment line",
		"CRANE100SN",
		"",
		"SLATE095NN   ", // trailing spaces are trimmed
		"BADLINE",
		"TONIC054SN",
	}, "\n")

	lex, err := Parse(strings.NewReader(input), []string{" tonic "})
	require.NoError(t, err)

	assert.Equal(t, 2, lex.Len())
	assert.Equal(t, "CRANE", lex.Entries[0].Word)
	assert.Equal(t, "SLATE", lex.Entries[1].Word)
	assert.Equal(t, 1, lex.Skipped, "BADLINE is malformed")
	assert.Equal(t, 1, lex.Excluded, "TONIC is on the exclude list")
}

func TestParseEmptyLexicon(t *testing.T) {
	_, err := Parse(strings.NewReader("# nothing here\n"), nil)
	assert.ErrorContains(t, err, "empty")

	// Excluding everything is just as fatal as an empty file.
	_, err = Parse(strings.NewReader("CRANE100SN\n"), []string{"CRANE"})
	assert.ErrorContains(t, err, "empty")
}

func TestNormalizeWord(t *testing.T) {
	tests := []struct {
		in   string
		want string
		bad  bool
	}{
		{in: "crane", want: "CRANE"},
		{in: " CRANE ", want: "CRANE"},
		{in: "cranes", bad: true},
		{in: "cran", bad: true},
		{in: "cr4ne", bad: true},
		{in: "", bad: true},
	}
	for _, tc := range tests {
		got, err := NormalizeWord(tc.in)
		if tc.bad {
			assert.Error(t, err, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestHasDuplicateLetters(t *testing.T) {
	assert.True(t, hasDuplicateLetters("HELLO"))
	assert.True(t, hasDuplicateLetters("GEESE"))
	assert.False(t, hasDuplicateLetters("CRANE"))
}

func TestCloneEntriesIndependent(t *testing.T) {
	lex, err := Parse(strings.NewReader("CRANE100SN\nSLATE095NN\n"), nil)
	require.NoError(t, err)

	clone := lex.CloneEntries()
	clone[0].Eliminated = true
	clone[0].Entropy = 4.2

	assert.False(t, lex.Entries[0].Eliminated, "master must not see clone mutations")
	assert.Zero(t, lex.Entries[0].Entropy)
}

func TestLoadEmbeddedDefault(t *testing.T) {
	lex, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, 676, lex.Len())
	assert.Zero(t, lex.Skipped, "the embedded list must be fully well-formed")
	assert.Zero(t, lex.Excluded)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/words.txt", nil)
	assert.ErrorContains(t, err, "open word list")
}

func TestDailyIndex(t *testing.T) {
	morning := time.Date(2026, 8, 23, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 8, 23, 23, 59, 0, 0, time.UTC)

	a := DailyIndex(morning, "salt", 676)
	assert.GreaterOrEqual(t, a, 0)
	assert.Less(t, a, 676)

	// Any instant of the same UTC day lands on the same word.
	assert.Equal(t, a, DailyIndex(evening, "salt", 676))
	// Same date again is stable across calls.
	assert.Equal(t, a, DailyIndex(morning, "salt", 676))

	assert.Equal(t, 0, DailyIndex(morning, "salt", 0))
}
