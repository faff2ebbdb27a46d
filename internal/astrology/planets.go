package astrology

// Planet identifies one of the bodies drawn on the chart.
type Planet int

const (
	Sun Planet = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
)

var planetNames = [...]string{"Sol", "Lua", "Mercúrio", "Vênus", "Marte", "Júpiter"}

func (p Planet) String() string {
	if p < Sun || p > Jupiter {
		return "Desconhecido"
	}
	return planetNames[p]
}

// Position is a point on the unit square used to draw the chart.
type Position struct {
	X float64
	Y float64
}

// PlanetEntry places a planet in a sign at a fixed drawing position.
type PlanetEntry struct {
	Planet   Planet
	Sign     Sign
	Position Position
}

var planetPositions = [...]Position{
	Sun:     {X: 0.75, Y: 0.2},
	Moon:    {X: 0.6, Y: 0.7},
	Mercury: {X: 0.4, Y: 0.35},
	Venus:   {X: 0.2, Y: 0.6},
	Mars:    {X: 0.85, Y: 0.55},
	Jupiter: {X: 0.4, Y: 0.85},
}

// PlanetPositions returns the six entries in a fixed order. The moon sits at
// moonPhase and each following planet one sign further along.
func PlanetPositions(sun Sign, moonPhase int) []PlanetEntry {
	entries := make([]PlanetEntry, 0, len(planetPositions))
	entries = append(entries, PlanetEntry{Planet: Sun, Sign: sun, Position: planetPositions[Sun]})
	for p := Moon; p <= Jupiter; p++ {
		entries = append(entries, PlanetEntry{
			Planet:   p,
			Sign:     SignAt(moonPhase + int(p-Moon)),
			Position: planetPositions[p],
		})
	}
	return entries
}
