package domain

// SharedTrait groups the other readings carrying the same trait.
type SharedTrait struct {
	Type       TraitType
	Value      string
	ReadingIDs []string
}

// ReadingAffinities lists every trait a reading shares with others.
type ReadingAffinities struct {
	ReadingID    string
	SharedTraits []SharedTrait
}
