package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vanshika/oraculo/internal/domain"
	"github.com/vanshika/oraculo/internal/graph"
)

// ErrReadingNotFound is returned when no archived reading has the given id.
var ErrReadingNotFound = errors.New("reading not found")

// ListReadingsOptions defines filters and pagination for reading listing.
type ListReadingsOptions struct {
	Offset int
	Limit  int
	Kind   domain.ReadingKind
}

// Repository persists readings and their traits in the graph.
type Repository struct {
	client graph.Client
}

// New instantiates a Repository backed by the supplied graph client.
func New(client graph.Client) *Repository {
	return &Repository{client: client}
}

// SaveReading creates the reading node and links it to shared trait nodes.
func (r *Repository) SaveReading(ctx context.Context, reading domain.Reading) error {
	if reading.ID == "" {
		return errors.New("reading id is required")
	}
	if reading.Kind == "" {
		return errors.New("reading kind is required")
	}

	params := map[string]any{
		"readingId": reading.ID,
		"props":     readingProperties(reading),
		"traits":    traitParams(reading.Traits),
	}
	if _, err := r.client.ExecuteWrite(ctx, saveReadingCypher, params); err != nil {
		return fmt.Errorf("save reading %s: %w", reading.ID, err)
	}
	return nil
}

// GetReading loads one archived reading with its traits.
func (r *Repository) GetReading(ctx context.Context, readingID string) (domain.Reading, error) {
	if readingID == "" {
		return domain.Reading{}, errors.New("reading id is required")
	}

	res, err := r.client.ExecuteRead(ctx, getReadingCypher, map[string]any{"readingId": readingID})
	if err != nil {
		return domain.Reading{}, fmt.Errorf("get reading query: %w", err)
	}
	if len(res.Records) == 0 {
		return domain.Reading{}, fmt.Errorf("reading %s: %w", readingID, ErrReadingNotFound)
	}
	return readingFromRecord(res.Records[0]), nil
}

// ListReadings returns archived readings newest first.
func (r *Repository) ListReadings(ctx context.Context, opts ListReadingsOptions) (domain.ReadingListResult, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}

	params := map[string]any{
		"kind":  string(opts.Kind),
		"skip":  offset,
		"limit": limit,
	}

	res, err := r.client.ExecuteRead(ctx, listReadingsCypher, params)
	if err != nil {
		return domain.ReadingListResult{}, fmt.Errorf("list readings query: %w", err)
	}
	items := make([]domain.Reading, 0, len(res.Records))
	for _, record := range res.Records {
		items = append(items, readingFromRecord(record))
	}

	countRes, err := r.client.ExecuteRead(ctx, countReadingsCypher, params)
	if err != nil {
		return domain.ReadingListResult{}, fmt.Errorf("count readings query: %w", err)
	}
	var total int64
	if len(countRes.Records) > 0 {
		total = toInt64(countRes.Records[0]["total"])
	}

	return domain.ReadingListResult{Items: items, Total: total}, nil
}

// FetchAffinities finds the other readings that share at least one trait.
func (r *Repository) FetchAffinities(ctx context.Context, readingID string) (domain.ReadingAffinities, error) {
	if readingID == "" {
		return domain.ReadingAffinities{}, errors.New("reading id is required")
	}

	res, err := r.client.ExecuteRead(ctx, sharedTraitsCypher, map[string]any{"readingId": readingID})
	if err != nil {
		return domain.ReadingAffinities{}, fmt.Errorf("fetch shared traits: %w", err)
	}

	affinities := domain.ReadingAffinities{ReadingID: readingID}
	for _, record := range res.Records {
		idsRaw, ok := record["readingIds"].([]any)
		if !ok {
			continue
		}
		var ids []string
		for _, id := range idsRaw {
			if s := toString(id); s != "" {
				ids = append(ids, s)
			}
		}
		if len(ids) == 0 {
			continue
		}
		affinities.SharedTraits = append(affinities.SharedTraits, domain.SharedTrait{
			Type:       domain.TraitType(toString(record["traitType"])),
			Value:      toString(record["traitValue"]),
			ReadingIDs: ids,
		})
	}
	return affinities, nil
}

func readingProperties(reading domain.Reading) map[string]any {
	props := map[string]any{
		"kind":         string(reading.Kind),
		"subject":      reading.Subject,
		"birthDate":    reading.BirthDate,
		"birthTime":    reading.BirthTime,
		"birthCity":    reading.BirthCity,
		"birthCountry": reading.BirthCountry,
	}
	if !reading.CreatedAt.IsZero() {
		props["createdAt"] = formatTime(reading.CreatedAt)
	}
	return props
}

func traitParams(traits []domain.Trait) []map[string]any {
	result := make([]map[string]any, 0, len(traits))
	for _, trait := range traits {
		if trait.Type == "" || trait.Value == "" {
			continue
		}
		result = append(result, map[string]any{
			"type":  string(trait.Type),
			"value": trait.Value,
		})
	}
	return result
}

func readingFromRecord(record graph.Record) domain.Reading {
	reading := domain.Reading{
		ID:           toString(record["readingId"]),
		Kind:         domain.ReadingKind(toString(record["kind"])),
		Subject:      toString(record["subject"]),
		BirthDate:    toString(record["birthDate"]),
		BirthTime:    toString(record["birthTime"]),
		BirthCity:    toString(record["birthCity"]),
		BirthCountry: toString(record["birthCountry"]),
	}
	if created := toTimePtr(record["createdAt"]); created != nil {
		reading.CreatedAt = *created
	}
	if traitsRaw, ok := record["traits"].([]any); ok {
		for _, t := range traitsRaw {
			traitMap, ok := t.(map[string]any)
			if !ok {
				continue
			}
			trait := domain.Trait{
				Type:  domain.TraitType(toString(traitMap["type"])),
				Value: toString(traitMap["value"]),
			}
			if trait.Type != "" {
				reading.Traits = append(reading.Traits, trait)
			}
		}
	}
	return reading
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func toString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case []byte:
		return string(v)
	default:
		return ""
	}
}

func toInt64(val any) int64 {
	switch v := val.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}

func toTimePtr(val any) *time.Time {
	switch v := val.(type) {
	case time.Time:
		return &v
	case string:
		if v == "" {
			return nil
		}
		if parsed, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return &parsed
		}
	}
	return nil
}

const saveReadingCypher = `
MERGE (r:Reading {readingId: $readingId})
SET r += $props
WITH r
FOREACH (trait IN $traits |
	MERGE (t:Trait {type: trait.type, value: trait.value})
	MERGE (r)-[:HAS_TRAIT]->(t)
)
RETURN r.readingId AS readingId
`

const readingProjection = `
OPTIONAL MATCH (r)-[:HAS_TRAIT]->(t:Trait)
WITH r, collect(CASE WHEN t IS NULL THEN null ELSE {type: t.type, value: t.value} END) AS traits
RETURN r.readingId AS readingId,
       r.kind AS kind,
       r.subject AS subject,
       r.birthDate AS birthDate,
       r.birthTime AS birthTime,
       r.birthCity AS birthCity,
       r.birthCountry AS birthCountry,
       r.createdAt AS createdAt,
       traits
`

const getReadingCypher = `
MATCH (r:Reading {readingId: $readingId})
` + readingProjection

const listReadingsCypher = `
MATCH (r:Reading)
WHERE $kind = "" OR r.kind = $kind
` + readingProjection + `
ORDER BY createdAt DESC, readingId
SKIP $skip LIMIT $limit
`

const countReadingsCypher = `
MATCH (r:Reading)
WHERE $kind = "" OR r.kind = $kind
RETURN count(r) AS total
`

const sharedTraitsCypher = `
MATCH (r:Reading {readingId: $readingId})-[:HAS_TRAIT]->(t:Trait)<-[:HAS_TRAIT]-(other:Reading)
WHERE other.readingId <> $readingId
WITH t, collect(DISTINCT other.readingId) AS readingIds
RETURN t.type AS traitType,
       t.value AS traitValue,
       readingIds
ORDER BY size(readingIds) DESC, traitType, traitValue
`
