package numerology

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanshika/oraculo/internal/calendar"
)

func TestNameToDigits(t *testing.T) {
	cases := []struct {
		name string
		want Digits
	}{
		{name: "Ana", want: Digits{1, 5, 1}},
		{name: "  José  Silva ", want: Digits{1, 6, 1, 5, 1, 9, 3, 4, 1}},
		{name: "Ação", want: Digits{1, 3, 1, 6}},
		{name: "Núñez", want: Digits{5, 3, 5, 5, 8}},
		{name: "ana-1", want: Digits{1, 5, 1, 0, 0}},
		{name: "", want: Digits{}},
	}
	for _, tc := range cases {
		if diff := cmp.Diff(tc.want, NameToDigits(tc.name)); diff != "" {
			t.Errorf("NameToDigits(%q) mismatch (-want +got):\n%s", tc.name, diff)
		}
	}
}

func TestNameLetters_AlignsWithDigits(t *testing.T) {
	// Decomposed input composes back to a single letter.
	letters := NameLetters("Jose\u0301 Ana")
	assert.Equal(t, []string{"j", "o", "s", "\u00e9", "a", "n", "a"}, letters)
	assert.Equal(t, Digits{1, 6, 1, 5, 1, 5, 1}, NameToDigits("Jose\u0301 Ana"))
}

func TestNameLetters_OrphanMarks(t *testing.T) {
	// Marks with no letter before them still count, as 0.
	letters := NameLetters("\u0301\u0301")
	assert.Equal(t, []string{"\u0301", "\u0301"}, letters)
	assert.Equal(t, Digits{0, 0}, NameToDigits("\u0301\u0301"))

	// A mark never jumps a space onto the previous word.
	letters = NameLetters("a \u0301b")
	assert.Equal(t, []string{"a", "\u0301", "b"}, letters)
	assert.Equal(t, Digits{1, 0, 2}, NameToDigits("a \u0301b"))

	r := Calculate("\u0301\u0301", calendar.Date{Year: 1990, Month: 5, Day: 15})
	require.Len(t, r.Pyramid, 2)
	assert.Equal(t, 0, r.Pyramid.Apex())
	assert.Equal(t, []int{0, 0}, r.Pyramid.Base())
}

func TestReduceToSingleDigit(t *testing.T) {
	assert.Equal(t, 0, ReduceToSingleDigit(0))
	assert.Equal(t, 7, ReduceToSingleDigit(7))
	assert.Equal(t, 9, ReduceToSingleDigit(18))
	assert.Equal(t, 1, ReduceToSingleDigit(1999))
	assert.Equal(t, 3, ReduceToSingleDigit(2010))

	for a := 1; a <= 9; a++ {
		for b := 1; b <= 9; b++ {
			got := ReduceToSingleDigit(a + b)
			assert.GreaterOrEqualf(t, got, 1, "%d+%d", a, b)
			assert.LessOrEqualf(t, got, 9, "%d+%d", a, b)
		}
	}
}

func TestBuildPyramid(t *testing.T) {
	got := BuildPyramid(Digits{1, 6, 1, 5})
	want := Pyramid{{9}, {5, 4}, {7, 7, 6}, {1, 6, 1, 5}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("pyramid mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 9, got.Apex())
	assert.Equal(t, []int{1, 6, 1, 5}, got.Base())
}

func TestBuildPyramid_Shape(t *testing.T) {
	base := NameToDigits("Maria Aparecida dos Santos")
	p := BuildPyramid(base)

	require.Len(t, p, len(base))
	for r, row := range p {
		assert.Lenf(t, row, r+1, "row %d", r)
	}
	for r := 0; r < len(p)-1; r++ {
		for i := range p[r] {
			assert.Equal(t, ReduceToSingleDigit(p[r+1][i]+p[r+1][i+1]), p[r][i])
		}
	}
}

func TestBuildPyramid_EdgeCases(t *testing.T) {
	assert.Empty(t, BuildPyramid(Digits{}))
	assert.Equal(t, 0, BuildPyramid(nil).Apex())
	assert.Equal(t, Pyramid{{4}}, BuildPyramid(Digits{4}))
}

func TestBuildPyramid_DoesNotAliasInput(t *testing.T) {
	base := Digits{1, 2, 3}
	p := BuildPyramid(base)
	base[0] = 9
	assert.Equal(t, []int{1, 2, 3}, p.Base())
}

func TestDestinyNumber(t *testing.T) {
	assert.Equal(t, 3, DestinyNumber(calendar.Date{Year: 1990, Month: 5, Day: 15}))

	n, err := DestinyNumberFromString("1990-05-15")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = DestinyNumberFromString("15/05/1990")
	var formatErr *calendar.FormatError
	require.ErrorAs(t, err, &formatErr)
}

func TestFindConsecutivePatterns(t *testing.T) {
	got := FindConsecutivePatterns(Pyramid{{5, 5, 5, 2, 2}})
	assert.Equal(t, []Pattern{{Row: 0, Start: 0, Number: 5, Count: 3}}, got)

	got = FindConsecutivePatterns(BuildPyramid(Digits{5, 5, 5, 2, 2}))
	assert.Equal(t, []Pattern{{Row: 4, Start: 0, Number: 5, Count: 3}}, got)
}

func TestFindConsecutivePatterns_RunsAndRows(t *testing.T) {
	p := Pyramid{
		{7, 7, 7, 7},
		{1, 1, 1, 2, 3, 3, 3},
		{4, 4, 6, 4, 4},
	}
	want := []Pattern{
		{Row: 0, Start: 0, Number: 7, Count: 4},
		{Row: 1, Start: 0, Number: 1, Count: 3},
		{Row: 1, Start: 4, Number: 3, Count: 3},
	}
	if diff := cmp.Diff(want, FindConsecutivePatterns(p)); diff != "" {
		t.Fatalf("patterns mismatch (-want +got):\n%s", diff)
	}
}

func TestFindConsecutivePatterns_NoCrossRowRuns(t *testing.T) {
	p := Pyramid{{2, 2}, {2, 2, 5}}
	assert.Empty(t, FindConsecutivePatterns(p))
	assert.NotNil(t, FindConsecutivePatterns(Pyramid{}))
}

func TestMeanings_Fallbacks(t *testing.T) {
	assert.Equal(t, "Número desconhecido", DestinyMeaning(0))
	assert.Equal(t, "Número desconhecido", DestinyMeaning(10))
	assert.Equal(t, "Padrão repetitivo que indica um desequilíbrio a ser resolvido.", ConsecutiveMeaning(0))
	assert.Contains(t, DestinyMeaning(3), "O número 3")
	assert.Contains(t, ConsecutiveMeaning(5), "Impulsividade")

	detailed := DetailedMeanings()
	require.Len(t, detailed, 9)
	for i, m := range detailed {
		assert.Equal(t, i+1, m.Number)
		assert.Equal(t, DetailedMeaning(i+1), m.Meaning)
		assert.NotEmpty(t, m.Meaning)
	}
}

func TestCalculate(t *testing.T) {
	r := Calculate("José", calendar.Date{Year: 1990, Month: 5, Day: 15})

	assert.Equal(t, "José", r.FullName)
	assert.Equal(t, []string{"j", "o", "s", "é"}, r.Letters)
	assert.Equal(t, Pyramid{{9}, {5, 4}, {7, 7, 6}, {1, 6, 1, 5}}, r.Pyramid)
	assert.Equal(t, 3, r.DestinyNumber)
	assert.Equal(t, DestinyMeaning(3), r.Interpretations.Destiny)
	assert.Equal(t, PyramidMeaning(), r.Interpretations.Pyramid)
	assert.Len(t, r.Interpretations.Detailed, 9)
	assert.Empty(t, r.Repetitions)
}

func TestCalculate_Repetitions(t *testing.T) {
	// "aaab": base [1,1,1,2]
	r := Calculate("aaab", calendar.Date{Year: 2000, Month: 1, Day: 1})
	require.Len(t, r.Repetitions, 1)
	assert.Equal(t, 1, r.Repetitions[0].Number)
	assert.Equal(t, 3, r.Repetitions[0].Count)
	assert.Equal(t, ConsecutiveMeaning(1), r.Repetitions[0].Meaning)
}

func TestCalculate_Deterministic(t *testing.T) {
	d := calendar.Date{Year: 1984, Month: 11, Day: 2}
	first := Calculate("Conceição Évora", d)
	for i := 0; i < 5; i++ {
		if diff := cmp.Diff(first, Calculate("Conceição Évora", d)); diff != "" {
			t.Fatalf("run %d differs (-first +got):\n%s", i, diff)
		}
	}
}
