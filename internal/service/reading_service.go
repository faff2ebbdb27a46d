package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vanshika/oraculo/internal/astrology"
	"github.com/vanshika/oraculo/internal/domain"
	"github.com/vanshika/oraculo/internal/metrics"
	"github.com/vanshika/oraculo/internal/numerology"
	"github.com/vanshika/oraculo/internal/repository"
	"github.com/vanshika/oraculo/internal/telemetry"
)

const archiveTimeout = 3 * time.Second

// ReadingArchive is the persistence the service needs from the graph layer.
type ReadingArchive interface {
	SaveReading(ctx context.Context, reading domain.Reading) error
	GetReading(ctx context.Context, readingID string) (domain.Reading, error)
	ListReadings(ctx context.Context, opts repository.ListReadingsOptions) (domain.ReadingListResult, error)
	FetchAffinities(ctx context.Context, readingID string) (domain.ReadingAffinities, error)
}

// ReadingService validates requests, runs the calculators and archives the
// results when an archive is configured.
type ReadingService struct {
	archive ReadingArchive
	traits  TraitGenerator
	metrics *metrics.Metrics
	logger  *slog.Logger
	tracer  trace.Tracer
	nowFn   func() time.Time
	newID   func() string
}

// NewReadingService builds the service. archive and m may be nil.
func NewReadingService(archive ReadingArchive, logger *slog.Logger, m *metrics.Metrics) *ReadingService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReadingService{
		archive: archive,
		traits:  DefaultTraitGenerator{},
		metrics: m,
		logger:  logger,
		tracer:  telemetry.Tracer(),
		nowFn:   time.Now,
		newID:   uuid.NewString,
	}
}

// WithClock overrides the time source. Useful for deterministic testing.
func (s *ReadingService) WithClock(now func() time.Time) *ReadingService {
	if now != nil {
		s.nowFn = now
	}
	return s
}

// WithIDGenerator overrides how archive ids are minted.
func (s *ReadingService) WithIDGenerator(fn func() string) *ReadingService {
	if fn != nil {
		s.newID = fn
	}
	return s
}

// WithTraitGenerator swaps the trait derivation strategy.
func (s *ReadingService) WithTraitGenerator(gen TraitGenerator) *ReadingService {
	if gen != nil {
		s.traits = gen
	}
	return s
}

// ArchiveEnabled reports whether readings are being persisted.
func (s *ReadingService) ArchiveEnabled() bool {
	return s.archive != nil
}

// CalculateNumerology validates the input and returns the full reading.
func (s *ReadingService) CalculateNumerology(ctx context.Context, in NumerologyInput) (NumerologyResult, error) {
	ctx, span := s.tracer.Start(ctx, "numerology.calculate")
	defer span.End()

	name := sanitizeString(in.FullName)
	if err := requireMinLength("fullName", name, 2, msgNameTooShort); err != nil {
		return NumerologyResult{}, s.rejected(span, "numerology", err)
	}
	birth, err := parseBirthDate(in.BirthDate)
	if err != nil {
		return NumerologyResult{}, s.rejected(span, "numerology", err)
	}

	start := time.Now()
	reading := numerology.Calculate(name, birth)
	reading.FullName = in.FullName
	s.metrics.ObserveReading("numerology", time.Since(start))
	span.SetAttributes(
		attribute.Int("numerology.destiny", reading.DestinyNumber),
		attribute.Int("numerology.letters", len(reading.Letters)),
		attribute.Int("numerology.repetitions", len(reading.Repetitions)),
	)

	id := s.archiveReading(ctx, span, domain.Reading{
		Kind:      domain.KindNumerology,
		Subject:   name,
		BirthDate: birth.String(),
		Traits:    s.traits.FromNumerology(reading),
	})
	return NumerologyResult{Reading: reading, ReadingID: id}, nil
}

// CalculateAstrology validates the input and returns the birth chart.
func (s *ReadingService) CalculateAstrology(ctx context.Context, in AstrologyInput) (AstrologyResult, error) {
	ctx, span := s.tracer.Start(ctx, "astrology.calculate")
	defer span.End()

	birth, err := parseBirthDate(in.BirthDate)
	if err != nil {
		return AstrologyResult{}, s.rejected(span, "astrology", err)
	}
	clock, err := parseBirthTime(in.BirthTime)
	if err != nil {
		return AstrologyResult{}, s.rejected(span, "astrology", err)
	}
	city := sanitizeString(in.BirthCity)
	if err := requireMinLength("birthCity", city, 2, msgCityTooShort); err != nil {
		return AstrologyResult{}, s.rejected(span, "astrology", err)
	}
	country := sanitizeString(in.BirthCountry)
	if err := requireMinLength("birthCountry", country, 2, msgCountryTooShort); err != nil {
		return AstrologyResult{}, s.rejected(span, "astrology", err)
	}

	start := time.Now()
	chart := astrology.Calculate(birth, clock)
	s.metrics.ObserveReading("astrology", time.Since(start))
	span.SetAttributes(
		attribute.String("astrology.sun", chart.Sun.String()),
		attribute.String("astrology.moon", chart.Moon.String()),
		attribute.String("astrology.ascendant", chart.Ascendant.String()),
	)

	id := s.archiveReading(ctx, span, domain.Reading{
		Kind:         domain.KindAstrology,
		BirthDate:    birth.String(),
		BirthTime:    clock.String(),
		BirthCity:    city,
		BirthCountry: country,
		Traits:       s.traits.FromAstrology(chart),
	})
	return AstrologyResult{Chart: chart, ReadingID: id}, nil
}

// GetReading loads one archived reading.
func (s *ReadingService) GetReading(ctx context.Context, readingID string) (domain.Reading, error) {
	if s.archive == nil {
		return domain.Reading{}, ErrArchiveDisabled
	}
	return s.archive.GetReading(ctx, readingID)
}

// ListReadings pages through archived readings, optionally by kind.
func (s *ReadingService) ListReadings(ctx context.Context, params ListReadingsParams) (ReadingsPage, error) {
	if s.archive == nil {
		return ReadingsPage{}, ErrArchiveDisabled
	}

	var kind domain.ReadingKind
	if params.Kind != "" {
		parsed, ok := domain.ParseReadingKind(params.Kind)
		if !ok {
			return ReadingsPage{}, invalid("kind", "Tipo deve ser NUMEROLOGY ou ASTROLOGY")
		}
		kind = parsed
	}

	page, pageSize := normalizePagination(params.Page, params.PageSize)
	result, err := s.archive.ListReadings(ctx, repository.ListReadingsOptions{
		Offset: (page - 1) * pageSize,
		Limit:  pageSize,
		Kind:   kind,
	})
	if err != nil {
		return ReadingsPage{}, err
	}
	return ReadingsPage{
		Items:      result.Items,
		Pagination: buildPaginationMeta(page, pageSize, result.Total),
	}, nil
}

// Affinities lists the other readings that share traits with readingID.
func (s *ReadingService) Affinities(ctx context.Context, readingID string) (domain.ReadingAffinities, error) {
	if s.archive == nil {
		return domain.ReadingAffinities{}, ErrArchiveDisabled
	}
	if _, err := s.archive.GetReading(ctx, readingID); err != nil {
		return domain.ReadingAffinities{}, err
	}
	return s.archive.FetchAffinities(ctx, readingID)
}

func (s *ReadingService) rejected(span trace.Span, kind string, err error) error {
	var verr *ValidationError
	if errors.As(err, &verr) {
		s.metrics.IncrementValidationFailure(kind, verr.Field)
	}
	span.SetStatus(codes.Error, err.Error())
	return err
}

// archiveReading stores the reading and returns its id. Failures are logged
// and counted but never surface to the caller.
func (s *ReadingService) archiveReading(ctx context.Context, span trace.Span, reading domain.Reading) string {
	if s.archive == nil {
		return ""
	}
	reading.ID = s.newID()
	reading.CreatedAt = s.nowFn().UTC()

	ctx, cancel := context.WithTimeout(ctx, archiveTimeout)
	defer cancel()

	if err := s.archive.SaveReading(ctx, reading); err != nil {
		kind := strings.ToLower(string(reading.Kind))
		s.metrics.IncrementArchiveFailure(kind)
		span.RecordError(err)
		s.logger.WarnContext(ctx, "archive reading failed",
			slog.String("kind", kind),
			slog.String("reading_id", reading.ID),
			slog.Any("error", err),
		)
		return ""
	}
	span.SetAttributes(attribute.String("reading.id", reading.ID))
	return reading.ID
}
