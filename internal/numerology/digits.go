// Package numerology builds the inverted name pyramid, the destiny number and
// the repeated-digit patterns of a reading. Every function is pure.
package numerology

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Digits is the base row of a pyramid: one value per name letter.
type Digits []int

// letterValues follows the Pythagorean table. Accented letters are looked up
// after their marks are stripped, so "á" counts as "a" and "ç" as "c".
var letterValues = map[rune]int{
	'a': 1, 'j': 1, 's': 1,
	'b': 2, 'k': 2, 't': 2,
	'c': 3, 'l': 3, 'u': 3,
	'd': 4, 'm': 4, 'v': 4,
	'e': 5, 'n': 5, 'w': 5,
	'f': 6, 'o': 6, 'x': 6,
	'g': 7, 'p': 7, 'y': 7,
	'h': 8, 'q': 8, 'z': 8,
	'i': 9, 'r': 9,
}

// NameLetters splits a name into the letters that make up the pyramid base:
// lowercased, NFC-composed, whitespace removed. Marks that do not compose stay
// attached to the letter right before them; a mark with no letter before it in
// its word is a letter of its own and counts as 0.
func NameLetters(name string) []string {
	composed := norm.NFC.String(strings.ToLower(name))

	letters := make([]string, 0, utf8.RuneCountInString(composed))
	hasBase := false
	for _, r := range composed {
		switch {
		case unicode.IsSpace(r):
			hasBase = false
		case unicode.Is(unicode.Mn, r) && hasBase:
			letters[len(letters)-1] += string(r)
		default:
			letters = append(letters, string(r))
			hasBase = !unicode.Is(unicode.Mn, r)
		}
	}
	return letters
}

// NameToDigits maps every letter of the name to its value. Letters outside the
// table count as 0 instead of failing.
func NameToDigits(name string) Digits {
	return LettersToDigits(NameLetters(name))
}

// LettersToDigits maps letters produced by NameLetters to their values.
func LettersToDigits(letters []string) Digits {
	strip := newMarkStripper()
	digits := make(Digits, len(letters))
	for i, letter := range letters {
		digits[i] = letterValue(strip, letter)
	}
	return digits
}

func letterValue(strip transform.Transformer, letter string) int {
	base, _, err := transform.String(strip, letter)
	if err != nil || utf8.RuneCountInString(base) != 1 {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(base)
	return letterValues[r]
}

// newMarkStripper returns a fresh transformer; transformers keep internal
// buffers and must not be shared between goroutines.
func newMarkStripper() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}
