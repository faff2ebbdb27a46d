package astrology

import "github.com/vanshika/oraculo/internal/calendar"

// Interpretations holds the text attached to a chart.
type Interpretations struct {
	Sun       string
	Moon      string
	Ascendant string
	Full      string
}

// Chart is the complete astrology result.
type Chart struct {
	Planets         []PlanetEntry
	Sun             Sign
	Moon            Sign
	Ascendant       Sign
	Interpretations Interpretations
}

// Calculate builds the chart for a birth date and time.
func Calculate(d calendar.Date, c calendar.Clock) Chart {
	sun := SunSign(d)
	phase := MoonPhase(d, c)
	moon := SignAt(phase)
	asc := Ascendant(c)

	return Chart{
		Planets:   PlanetPositions(sun, phase),
		Sun:       sun,
		Moon:      moon,
		Ascendant: asc,
		Interpretations: Interpretations{
			Sun:       SunInterpretation(sun),
			Moon:      MoonInterpretation(moon),
			Ascendant: AscendantInterpretation(asc),
			Full:      FullInterpretation(sun, moon, asc),
		},
	}
}
