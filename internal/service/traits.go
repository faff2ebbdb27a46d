package service

import (
	"strconv"

	"github.com/vanshika/oraculo/internal/astrology"
	"github.com/vanshika/oraculo/internal/domain"
	"github.com/vanshika/oraculo/internal/numerology"
)

// TraitGenerator derives the archived traits that link readings together.
type TraitGenerator interface {
	FromNumerology(reading numerology.Reading) []domain.Trait
	FromAstrology(chart astrology.Chart) []domain.Trait
}

// DefaultTraitGenerator links numerology readings by destiny, apex and
// repeated digits, and charts by their three main signs.
type DefaultTraitGenerator struct{}

func (DefaultTraitGenerator) FromNumerology(reading numerology.Reading) []domain.Trait {
	traits := []domain.Trait{
		{Type: domain.TraitDestiny, Value: strconv.Itoa(reading.DestinyNumber)},
	}
	if len(reading.Pyramid) > 0 {
		traits = append(traits, domain.Trait{Type: domain.TraitApex, Value: strconv.Itoa(reading.Pyramid.Apex())})
	}

	seen := make(map[int]struct{})
	for _, rep := range reading.Repetitions {
		if _, ok := seen[rep.Number]; ok {
			continue
		}
		seen[rep.Number] = struct{}{}
		traits = append(traits, domain.Trait{Type: domain.TraitPattern, Value: strconv.Itoa(rep.Number)})
	}
	return traits
}

func (DefaultTraitGenerator) FromAstrology(chart astrology.Chart) []domain.Trait {
	return []domain.Trait{
		{Type: domain.TraitSunSign, Value: chart.Sun.String()},
		{Type: domain.TraitMoonSign, Value: chart.Moon.String()},
		{Type: domain.TraitAscendant, Value: chart.Ascendant.String()},
	}
}
