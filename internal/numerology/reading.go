package numerology

import "github.com/vanshika/oraculo/internal/calendar"

// Interpretations carries the static text attached to a reading.
type Interpretations struct {
	Destiny  string
	Pyramid  string
	Detailed []NumberMeaning
}

// RepeatedDigit is a consecutive pattern with its interpretation.
type RepeatedDigit struct {
	Pattern
	Meaning string
}

// Reading is the complete numerology result for one person.
type Reading struct {
	FullName        string
	Letters         []string
	Pyramid         Pyramid
	DestinyNumber   int
	Interpretations Interpretations
	Repetitions     []RepeatedDigit
}

// DestinyNumber sums day, month and year and reduces the total.
func DestinyNumber(d calendar.Date) int {
	return ReduceToSingleDigit(d.Day + d.Month + d.Year)
}

// DestinyNumberFromString parses a YYYY-MM-DD string before computing the
// destiny number. Malformed input yields a *calendar.FormatError.
func DestinyNumberFromString(value string) (int, error) {
	d, err := calendar.ParseDate(value)
	if err != nil {
		return 0, err
	}
	return DestinyNumber(d), nil
}

// Calculate builds the full reading. The name is expected to be validated
// already; unmapped characters count as 0.
func Calculate(fullName string, birth calendar.Date) Reading {
	letters := NameLetters(fullName)
	pyramid := BuildPyramid(LettersToDigits(letters))
	destiny := DestinyNumber(birth)

	patterns := FindConsecutivePatterns(pyramid)
	repetitions := make([]RepeatedDigit, 0, len(patterns))
	for _, p := range patterns {
		repetitions = append(repetitions, RepeatedDigit{Pattern: p, Meaning: ConsecutiveMeaning(p.Number)})
	}

	return Reading{
		FullName:      fullName,
		Letters:       letters,
		Pyramid:       pyramid,
		DestinyNumber: destiny,
		Interpretations: Interpretations{
			Destiny:  DestinyMeaning(destiny),
			Pyramid:  PyramidMeaning(),
			Detailed: DetailedMeanings(),
		},
		Repetitions: repetitions,
	}
}
