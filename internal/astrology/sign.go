// Package astrology derives a simplified birth chart from a date and time.
// The placements are deterministic placeholders, not ephemeris positions.
package astrology

// Sign is one of the twelve zodiac signs, Aries first.
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

// SignCount is the size of the zodiac.
const SignCount = 12

var signNames = [SignCount]string{
	"Áries", "Touro", "Gêmeos", "Câncer", "Leão", "Virgem",
	"Libra", "Escorpião", "Sagitário", "Capricórnio", "Aquário", "Peixes",
}

// String returns the Portuguese display name.
func (s Sign) String() string {
	if !s.Valid() {
		return "Desconhecido"
	}
	return signNames[s]
}

// Valid reports whether s is one of the twelve signs.
func (s Sign) Valid() bool {
	return s >= Aries && s <= Pisces
}

// SignAt maps any integer onto the zodiac, wrapping modulo 12.
func SignAt(index int) Sign {
	i := index % SignCount
	if i < 0 {
		i += SignCount
	}
	return Sign(i)
}

// ParseSign resolves a display name back to its sign.
func ParseSign(name string) (Sign, bool) {
	for i, n := range signNames {
		if n == name {
			return Sign(i), true
		}
	}
	return 0, false
}

// Signs lists the zodiac in order.
func Signs() []Sign {
	out := make([]Sign, SignCount)
	for i := range out {
		out[i] = Sign(i)
	}
	return out
}
