package generator

// Config drives the synthetic batch generator.
type Config struct {
	Count int
	// Share of items that only get a numerology reading (no birth time).
	NumerologyOnlyChance float64
	// Share of items that only get a chart (no name).
	AstrologyOnlyChance float64
	MinYear             int
	MaxYear             int
	Seed                int64
}

// DefaultConfig returns baseline settings for a demo-sized batch.
func DefaultConfig() Config {
	return Config{
		Count:                1000,
		NumerologyOnlyChance: 0.2,
		AstrologyOnlyChance:  0.2,
		MinYear:              1940,
		MaxYear:              2010,
		Seed:                 42,
	}
}
