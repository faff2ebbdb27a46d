package service

import (
	"github.com/vanshika/oraculo/internal/astrology"
	"github.com/vanshika/oraculo/internal/domain"
	"github.com/vanshika/oraculo/internal/numerology"
)

// NumerologyInput is the inbound payload for a numerology reading.
type NumerologyInput struct {
	FullName  string
	BirthDate string
}

// AstrologyInput is the inbound payload for a birth chart. City and country
// are validated and archived but do not affect the chart.
type AstrologyInput struct {
	BirthDate    string
	BirthTime    string
	BirthCity    string
	BirthCountry string
}

// NumerologyResult pairs the reading with its archive id, empty when the
// reading was not archived.
type NumerologyResult struct {
	Reading   numerology.Reading
	ReadingID string
}

type AstrologyResult struct {
	Chart     astrology.Chart
	ReadingID string
}

// ListReadingsParams are the user-facing paging inputs for archive listing.
type ListReadingsParams struct {
	Page     int
	PageSize int
	Kind     string
}

// PaginationMeta describes the current page returned to clients.
type PaginationMeta struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// ReadingsPage is one page of archived readings.
type ReadingsPage struct {
	Items      []domain.Reading
	Pagination PaginationMeta
}
