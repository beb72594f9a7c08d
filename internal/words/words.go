// apps/solver/internal/words/words.go
//
// Lexicon management for the solver engine.
//
// Responsibilities:
//   - Define the Entry data model shared by every solver component.
//   - Parse the fixed-width word list format (word + rank + noun/verb codes).
//   - Load from an environment-provided file or fall back to the embedded default.
//   - Exclude previously-used answers during the load scan.
//   - Hand out independent arena clones so games never alias the master list.
//
// Record format (one word per line, fixed columns):
//   0-4  word, five letters A-Z (any case on disk, stored uppercase)
//   5-7  frequency rank, three digits, 0-100 (higher = more common)
//   8    noun code: P plural, S singular, N not a noun, R pronoun
//   9    verb code: T past, S third-person, P present, N not a verb
//
// Environment variables:
//   WORDS_FILE=/path/to/words.txt
//
// Malformed lines are skipped (counted, logged at debug), never fatal: the
// loader only fails when the resulting lexicon would be empty.

package words

import (
	"bufio"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/assets"
)

// WordLength is the fixed word size for the whole engine.
const WordLength = 5

// recordWidth is the minimum line width of a word list record.
const recordWidth = 10

// NounClass tags the noun morphology of a word.
type NounClass byte

const (
	NounPlural   NounClass = 'P'
	NounSingular NounClass = 'S'
	NounNone     NounClass = 'N'
	NounPronoun  NounClass = 'R'
)

// VerbClass tags the verb morphology of a word.
type VerbClass byte

const (
	VerbPast    VerbClass = 'T'
	VerbThird   VerbClass = 'S'
	VerbPresent VerbClass = 'P'
	VerbNone    VerbClass = 'N'
)

// Entry is the shared word record every solver component operates on.
// Word, Rank, Noun, Verb and HasDuplicates are fixed after load;
// Entropy is recomputed every turn and Eliminated only ever flips
// false→true within a single game.
type Entry struct {
	Word          string
	Entropy       float64
	Rank          int
	Noun          NounClass
	Verb          VerbClass
	HasDuplicates bool
	Eliminated    bool
}

// Lexicon is the master word store plus load provenance counts.
// The Entries slice is owned by the caller that loaded it; games must
// operate on clones (see CloneEntries), never on the master directly.
type Lexicon struct {
	Entries  []Entry
	Skipped  int // malformed lines dropped during parse
	Excluded int // words dropped by the used-answers exclusion
}

// Len returns the number of loaded entries.
func (l *Lexicon) Len() int { return len(l.Entries) }

// CloneEntries returns a fresh, independently mutable copy of the master
// entries. Every simulated or interactive game works on its own clone.
func (l *Lexicon) CloneEntries() []Entry {
	out := make([]Entry, len(l.Entries))
	copy(out, l.Entries)
	return out
}

// Load reads a lexicon from path, or from the embedded default list when
// path is empty. exclude lists words (any case) to drop during the scan.
func Load(path string, exclude []string) (*Lexicon, error) {
	var r io.ReadCloser
	var err error
	var source string

	if path == "" {
		r, err = assets.DefaultWords()
		source = "embedded"
	} else {
		r, err = os.Open(path)
		source = path
	}
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer r.Close()

	lex, err := Parse(r, exclude)
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("source", source).
		Int("words", lex.Len()).
		Int("skipped", lex.Skipped).
		Int("excluded", lex.Excluded).
		Msg("lexicon loaded")
	return lex, nil
}

// Parse scans fixed-width records from r. Blank lines and '#' comments are
// ignored; malformed records are counted and skipped; words found in the
// exclude list are dropped. Fails only if nothing valid remains.
func Parse(r io.Reader, exclude []string) (*Lexicon, error) {
	skip := make(map[string]struct{}, len(exclude))
	for _, w := range exclude {
		skip[strings.ToUpper(strings.TrimSpace(w))] = struct{}{}
	}

	lex := &Lexicon{}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimRight(sc.Text(), "\r\n ")
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		e, err := ParseLine(raw)
		if err != nil {
			lex.Skipped++
			log.Debug().Int("line", line).Err(err).Msg("skipping word record")
			continue
		}
		if _, used := skip[e.Word]; used {
			lex.Excluded++
			continue
		}
		lex.Entries = append(lex.Entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan word list: %w", err)
	}
	if len(lex.Entries) == 0 {
		return nil, errors.New("words: lexicon is empty")
	}
	return lex, nil
}

// ParseLine decodes one fixed-width record into an Entry.
func ParseLine(raw string) (Entry, error) {
	if len(raw) < recordWidth {
		return Entry{}, fmt.Errorf("record too short (%d chars)", len(raw))
	}
	word, err := NormalizeWord(raw[:WordLength])
	if err != nil {
		return Entry{}, err
	}
	rank := 0
	for i := WordLength; i < WordLength+3; i++ {
		c := raw[i]
		if c < '0' || c > '9' {
			return Entry{}, fmt.Errorf("bad rank digit %q", c)
		}
		rank = rank*10 + int(c-'0')
	}
	if rank > 100 {
		return Entry{}, fmt.Errorf("rank %d out of range", rank)
	}
	noun := NounClass(raw[8])
	switch noun {
	case NounPlural, NounSingular, NounNone, NounPronoun:
	default:
		return Entry{}, fmt.Errorf("bad noun code %q", raw[8])
	}
	verb := VerbClass(raw[9])
	switch verb {
	case VerbPast, VerbThird, VerbPresent, VerbNone:
	default:
		return Entry{}, fmt.Errorf("bad verb code %q", raw[9])
	}
	return Entry{
		Word:          word,
		Rank:          rank,
		Noun:          noun,
		Verb:          verb,
		HasDuplicates: hasDuplicateLetters(word),
	}, nil
}

// NormalizeWord uppercases s and validates it as exactly five A-Z letters.
func NormalizeWord(s string) (string, error) {
	w := strings.ToUpper(strings.TrimSpace(s))
	if len(w) != WordLength {
		return "", fmt.Errorf("word %q is not %d letters", s, WordLength)
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return "", fmt.Errorf("word %q has a non-letter", s)
		}
	}
	return w, nil
}

// hasDuplicateLetters reports whether any letter repeats in a 5-letter word.
func hasDuplicateLetters(w string) bool {
	var seen [26]bool
	for i := 0; i < len(w); i++ {
		j := w[i] - 'A'
		if seen[j] {
			return true
		}
		seen[j] = true
	}
	return false
}

// DailyIndex returns a deterministic entry index for a date using
// HMAC(salt, YYYY-MM-DD) % n. Used by the practice mode so everyone on the
// same day gets the same hidden word.
func DailyIndex(t time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	dk := t.UTC().Format("2006-01-02")
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(dk))
	sum := h.Sum(nil)
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}
