package astrology

import "github.com/vanshika/oraculo/internal/calendar"

type sunRange struct {
	sign                 Sign
	fromMonth, fromDay   int
	untilMonth, untilDay int
}

// Checked in order; anything left over is Capricorn (Dec 22 - Jan 19).
var sunRanges = []sunRange{
	{Aquarius, 1, 20, 2, 18},
	{Pisces, 2, 19, 3, 20},
	{Aries, 3, 21, 4, 19},
	{Taurus, 4, 20, 5, 20},
	{Gemini, 5, 21, 6, 20},
	{Cancer, 6, 21, 7, 22},
	{Leo, 7, 23, 8, 22},
	{Virgo, 8, 23, 9, 22},
	{Libra, 9, 23, 10, 22},
	{Scorpio, 10, 23, 11, 21},
	{Sagittarius, 11, 22, 12, 21},
}

func (r sunRange) contains(month, day int) bool {
	return (month == r.fromMonth && day >= r.fromDay) || (month == r.untilMonth && day <= r.untilDay)
}

// SunSign returns the tropical sun sign for the month and day of d.
func SunSign(d calendar.Date) Sign {
	for _, r := range sunRanges {
		if r.contains(d.Month, d.Day) {
			return r.sign
		}
	}
	return Capricorn
}

// MoonPhase is the index shared by the moon and the outer planets.
func MoonPhase(d calendar.Date, c calendar.Clock) int {
	return (d.Day + d.Month + c.Hour) % SignCount
}

// MoonSign is the simplified lunar placement: (day + month + hour) mod 12.
func MoonSign(d calendar.Date, c calendar.Clock) Sign {
	return SignAt(MoonPhase(d, c))
}

// Ascendant depends only on the hour of birth; minutes are ignored.
func Ascendant(c calendar.Clock) Sign {
	return SignAt(c.Hour * 2)
}
