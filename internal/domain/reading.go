package domain

import (
	"strings"
	"time"
)

// ReadingKind distinguishes the two calculators.
type ReadingKind string

const (
	KindNumerology ReadingKind = "NUMEROLOGY"
	KindAstrology  ReadingKind = "ASTROLOGY"
)

// ParseReadingKind accepts either kind name in any case.
func ParseReadingKind(value string) (ReadingKind, bool) {
	switch ReadingKind(strings.ToUpper(strings.TrimSpace(value))) {
	case KindNumerology:
		return KindNumerology, true
	case KindAstrology:
		return KindAstrology, true
	default:
		return "", false
	}
}

// TraitType names a property shared between readings.
type TraitType string

const (
	TraitDestiny   TraitType = "DESTINY"
	TraitApex      TraitType = "APEX"
	TraitSunSign   TraitType = "SUN_SIGN"
	TraitMoonSign  TraitType = "MOON_SIGN"
	TraitAscendant TraitType = "ASCENDANT"
	TraitPattern   TraitType = "PATTERN"
)

// Trait is a single archived property of a reading, e.g. DESTINY=3.
type Trait struct {
	Type  TraitType
	Value string
}

// Reading is an archived calculation together with the inputs that produced it.
type Reading struct {
	ID           string
	Kind         ReadingKind
	Subject      string
	BirthDate    string
	BirthTime    string
	BirthCity    string
	BirthCountry string
	Traits       []Trait
	CreatedAt    time.Time
}
