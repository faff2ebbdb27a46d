package domain

import "testing"

func TestParseReadingKind(t *testing.T) {
	cases := []struct {
		input string
		want  ReadingKind
		ok    bool
	}{
		{"NUMEROLOGY", KindNumerology, true},
		{" astrology ", KindAstrology, true},
		{"Numerology", KindNumerology, true},
		{"tarot", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseReadingKind(tc.input)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseReadingKind(%q) = (%q, %v), want (%q, %v)", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}
