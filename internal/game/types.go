// apps/solver/internal/game/types.go
//
// Feedback types shared by the solver, the simulator and the API.
// Defines:
//   - Mark: per-letter result of a guess (miss/present/hit), doubling
//     as its base-3 digit.
//   - Pattern: a complete five-letter feedback encoded as a base-3
//     index, 0..242.
//
// Encoding: position 0 is the least significant trit, so "GBBBB"
// decodes to 2 and "BBBBG" to 162. AllGreen is 242.

package game

import "fmt"

// WordLength is the fixed word size the solver operates on.
const WordLength = 5

// PatternCount is the number of distinct feedback patterns (3^5).
const PatternCount = 243

// Mark is the evaluation of a single letter in a guess.
type Mark byte

const (
	MarkMiss    Mark = 0 // letter absent from the answer
	MarkPresent Mark = 1 // letter present, wrong position
	MarkHit     Mark = 2 // letter in the correct position
)

// Pattern is one full feedback, 0..PatternCount-1.
type Pattern uint8

// AllGreen is the pattern of a winning guess.
const AllGreen Pattern = PatternCount - 1

var pow3 = [WordLength]Pattern{1, 3, 9, 27, 81}

// Marks decodes the pattern into per-position marks, position 0 first.
func (p Pattern) Marks() [WordLength]Mark {
	var m [WordLength]Mark
	v := int(p)
	for i := 0; i < WordLength; i++ {
		m[i] = Mark(v % 3)
		v /= 3
	}
	return m
}

// String renders the pattern as five G/Y/B characters, position 0 first.
func (p Pattern) String() string {
	m := p.Marks()
	var b [WordLength]byte
	for i, mk := range m {
		switch mk {
		case MarkHit:
			b[i] = 'G'
		case MarkPresent:
			b[i] = 'Y'
		default:
			b[i] = 'B'
		}
	}
	return string(b[:])
}

// ParsePattern reads a five-character feedback string. Each position is
// G (hit), Y (present) or B (miss), case-insensitive; the digits 2, 1
// and 0 are accepted as aliases.
func ParsePattern(s string) (Pattern, error) {
	if len(s) != WordLength {
		return 0, fmt.Errorf("game: feedback must be %d characters, got %q", WordLength, s)
	}
	var p Pattern
	for i := 0; i < WordLength; i++ {
		var d Pattern
		switch s[i] {
		case 'G', 'g', '2':
			d = 2
		case 'Y', 'y', '1':
			d = 1
		case 'B', 'b', '0':
			d = 0
		default:
			return 0, fmt.Errorf("game: feedback position %d: want G, Y or B, got %q", i+1, s[i])
		}
		p += d * pow3[i]
	}
	return p, nil
}
