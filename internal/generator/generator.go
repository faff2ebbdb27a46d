package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/vanshika/oraculo/internal/service"
)

// Generator produces synthetic people for batch readings.
type Generator struct {
	cfg       Config
	rand      *rand.Rand
	fragments nameFragments
}

// New returns a configured Generator instance.
func New(cfg Config) *Generator {
	defaults := DefaultConfig()
	if cfg.Count <= 0 {
		cfg.Count = defaults.Count
	}
	if cfg.NumerologyOnlyChance < 0 {
		cfg.NumerologyOnlyChance = 0
	}
	if cfg.AstrologyOnlyChance < 0 {
		cfg.AstrologyOnlyChance = 0
	}
	if cfg.NumerologyOnlyChance+cfg.AstrologyOnlyChance > 1 {
		cfg.NumerologyOnlyChance = defaults.NumerologyOnlyChance
		cfg.AstrologyOnlyChance = defaults.AstrologyOnlyChance
	}
	if cfg.MinYear <= 0 {
		cfg.MinYear = defaults.MinYear
	}
	if cfg.MaxYear < cfg.MinYear {
		cfg.MaxYear = cfg.MinYear
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return &Generator{
		cfg:       cfg,
		rand:      rand.New(rand.NewSource(cfg.Seed)),
		fragments: defaultNameFragments(),
	}
}

// Generate synthesises cfg.Count batch items. The same seed always yields
// the same items. It respects context cancellation.
func (g *Generator) Generate(ctx context.Context) ([]service.BatchItem, error) {
	items := make([]service.BatchItem, g.cfg.Count)

	for i := range items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		item := service.BatchItem{
			FullName:  g.randomFullName(),
			BirthDate: g.randomDate(),
		}
		city, country := g.randomPlace()
		item.BirthTime = g.randomTime()
		item.BirthCity = city
		item.BirthCountry = country

		switch roll := g.rand.Float64(); {
		case roll < g.cfg.NumerologyOnlyChance:
			item.BirthTime, item.BirthCity, item.BirthCountry = "", "", ""
		case roll < g.cfg.NumerologyOnlyChance+g.cfg.AstrologyOnlyChance:
			item.FullName = ""
		}
		items[i] = item
	}
	return items, nil
}

func (g *Generator) randomFullName() string {
	first := g.fragments.first[g.rand.Intn(len(g.fragments.first))]
	last := g.fragments.last[g.rand.Intn(len(g.fragments.last))]
	if g.rand.Float64() < 0.4 {
		middle := g.fragments.last[g.rand.Intn(len(g.fragments.last))]
		return fmt.Sprintf("%s %s %s", first, middle, last)
	}
	return fmt.Sprintf("%s %s", first, last)
}

func (g *Generator) randomDate() string {
	year := g.cfg.MinYear + g.rand.Intn(g.cfg.MaxYear-g.cfg.MinYear+1)
	month := time.Month(1 + g.rand.Intn(12))
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	day := 1 + g.rand.Intn(daysInMonth)
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

func (g *Generator) randomTime() string {
	return fmt.Sprintf("%02d:%02d", g.rand.Intn(24), g.rand.Intn(60))
}

func (g *Generator) randomPlace() (string, string) {
	p := g.fragments.places[g.rand.Intn(len(g.fragments.places))]
	return p.city, p.country
}

type place struct {
	city    string
	country string
}

type nameFragments struct {
	first  []string
	last   []string
	places []place
}

func defaultNameFragments() nameFragments {
	return nameFragments{
		first: []string{"Ana", "João", "Maria", "José", "Luísa", "Antônio", "Beatriz", "Conceição", "Mário", "Inês", "Tomás", "Sofia", "Raúl", "Zoë", "Ângela"},
		last:  []string{"Silva", "Santos", "Oliveira", "Conceição", "Gonçalves", "Araújo", "Simões", "Núñez", "Müller", "Brandão", "Lima", "Pereira"},
		places: []place{
			{"São Paulo", "Brasil"},
			{"Rio de Janeiro", "Brasil"},
			{"Belo Horizonte", "Brasil"},
			{"Salvador", "Brasil"},
			{"Lisboa", "Portugal"},
			{"Porto", "Portugal"},
			{"Luanda", "Angola"},
			{"Maputo", "Moçambique"},
			{"Buenos Aires", "Argentina"},
		},
	}
}
