package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanshika/oraculo/internal/astrology"
	"github.com/vanshika/oraculo/internal/domain"
	"github.com/vanshika/oraculo/internal/logging"
	"github.com/vanshika/oraculo/internal/metrics"
	"github.com/vanshika/oraculo/internal/repository"
)

type stubArchive struct {
	mu         sync.Mutex
	saved      []domain.Reading
	saveErr    error
	list       domain.ReadingListResult
	listOpts   repository.ListReadingsOptions
	affinities domain.ReadingAffinities
}

func (s *stubArchive) SaveReading(_ context.Context, reading domain.Reading) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = append(s.saved, reading)
	return nil
}

func (s *stubArchive) GetReading(_ context.Context, id string) (domain.Reading, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.saved {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.Reading{}, fmt.Errorf("reading %s: %w", id, repository.ErrReadingNotFound)
}

func (s *stubArchive) ListReadings(_ context.Context, opts repository.ListReadingsOptions) (domain.ReadingListResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listOpts = opts
	return s.list, nil
}

func (s *stubArchive) FetchAffinities(_ context.Context, id string) (domain.ReadingAffinities, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	aff := s.affinities
	aff.ReadingID = id
	return aff, nil
}

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestService(archive ReadingArchive, m *metrics.Metrics) *ReadingService {
	var seq int
	var mu sync.Mutex
	return NewReadingService(archive, logging.Discard(), m).
		WithClock(func() time.Time { return fixedNow }).
		WithIDGenerator(func() string {
			mu.Lock()
			defer mu.Unlock()
			seq++
			return fmt.Sprintf("rd-%d", seq)
		})
}

func TestCalculateNumerology(t *testing.T) {
	archive := &stubArchive{}
	m := metrics.New()
	svc := newTestService(archive, m)

	res, err := svc.CalculateNumerology(context.Background(), NumerologyInput{
		FullName:  "  Ana  ",
		BirthDate: "1990-05-15",
	})
	require.NoError(t, err)

	// The name is echoed as sent; only the letters are trimmed.
	assert.Equal(t, "  Ana  ", res.Reading.FullName)
	assert.Equal(t, []string{"a", "n", "a"}, res.Reading.Letters)
	assert.Equal(t, 3, res.Reading.DestinyNumber)
	assert.Equal(t, 3, res.Reading.Pyramid.Apex())
	assert.Equal(t, "rd-1", res.ReadingID)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Readings.WithLabelValues("numerology")))

	require.Len(t, archive.saved, 1)
	saved := archive.saved[0]
	assert.Equal(t, domain.KindNumerology, saved.Kind)
	assert.Equal(t, "Ana", saved.Subject)
	assert.Equal(t, "1990-05-15", saved.BirthDate)
	assert.Equal(t, fixedNow, saved.CreatedAt)
	assert.Equal(t, []domain.Trait{
		{Type: domain.TraitDestiny, Value: "3"},
		{Type: domain.TraitApex, Value: "3"},
	}, saved.Traits)
}

func TestCalculateNumerology_PatternTraits(t *testing.T) {
	archive := &stubArchive{}
	svc := newTestService(archive, nil)

	res, err := svc.CalculateNumerology(context.Background(), NumerologyInput{FullName: "Aaa", BirthDate: "2000-01-01"})
	require.NoError(t, err)
	require.NotEmpty(t, res.Reading.Repetitions)

	require.Len(t, archive.saved, 1)
	assert.Contains(t, archive.saved[0].Traits, domain.Trait{Type: domain.TraitPattern, Value: "1"})
}

func TestCalculateNumerology_Validation(t *testing.T) {
	cases := []struct {
		name    string
		input   NumerologyInput
		field   string
		message string
	}{
		{"short name", NumerologyInput{FullName: " A ", BirthDate: "1990-05-15"}, "fullName", msgNameTooShort},
		{"bad date format", NumerologyInput{FullName: "Ana", BirthDate: "15/05/1990"}, "birthDate", msgDateFormat},
		{"impossible date", NumerologyInput{FullName: "Ana", BirthDate: "1990-02-30"}, "birthDate", msgDateInvalid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := metrics.New()
			archive := &stubArchive{}
			svc := newTestService(archive, m)

			_, err := svc.CalculateNumerology(context.Background(), tc.input)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
			assert.Equal(t, tc.message, verr.Message)
			assert.Equal(t, 1.0, testutil.ToFloat64(m.ValidationFailures.WithLabelValues("numerology", tc.field)))
			assert.Empty(t, archive.saved)
		})
	}
}

func TestCalculateAstrology(t *testing.T) {
	archive := &stubArchive{}
	svc := newTestService(archive, nil)

	res, err := svc.CalculateAstrology(context.Background(), AstrologyInput{
		BirthDate:    "2000-01-01",
		BirthTime:    "10:30",
		BirthCity:    " Rio  de Janeiro ",
		BirthCountry: "Brasil",
	})
	require.NoError(t, err)

	assert.Equal(t, astrology.Capricorn, res.Chart.Sun)
	assert.Equal(t, astrology.Aries, res.Chart.Moon)
	assert.Equal(t, astrology.Sagittarius, res.Chart.Ascendant)
	assert.Equal(t, "rd-1", res.ReadingID)

	require.Len(t, archive.saved, 1)
	saved := archive.saved[0]
	assert.Equal(t, "Rio de Janeiro", saved.BirthCity)
	assert.Equal(t, "10:30", saved.BirthTime)
	assert.Equal(t, []domain.Trait{
		{Type: domain.TraitSunSign, Value: "Capricórnio"},
		{Type: domain.TraitMoonSign, Value: "Áries"},
		{Type: domain.TraitAscendant, Value: "Sagitário"},
	}, saved.Traits)
}

func TestCalculateAstrology_Validation(t *testing.T) {
	valid := AstrologyInput{BirthDate: "2000-01-01", BirthTime: "10:30", BirthCity: "Rio", BirthCountry: "Brasil"}

	cases := []struct {
		name   string
		mutate func(in *AstrologyInput)
		field  string
	}{
		{"bad time format", func(in *AstrologyInput) { in.BirthTime = "10h30" }, "birthTime"},
		{"hour out of range", func(in *AstrologyInput) { in.BirthTime = "24:00" }, "birthTime"},
		{"short city", func(in *AstrologyInput) { in.BirthCity = "R" }, "birthCity"},
		{"short country", func(in *AstrologyInput) { in.BirthCountry = "  " }, "birthCountry"},
		{"bad date", func(in *AstrologyInput) { in.BirthDate = "2000-13-01" }, "birthDate"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.mutate(&in)

			_, err := newTestService(nil, nil).CalculateAstrology(context.Background(), in)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestArchiveFailureIsNotFatal(t *testing.T) {
	m := metrics.New()
	svc := newTestService(&stubArchive{saveErr: errors.New("graph unavailable")}, m)

	res, err := svc.CalculateAstrology(context.Background(), AstrologyInput{
		BirthDate: "2000-07-23", BirthTime: "00:00", BirthCity: "Lisboa", BirthCountry: "Portugal",
	})
	require.NoError(t, err)
	assert.Empty(t, res.ReadingID)
	assert.Equal(t, astrology.Leo, res.Chart.Sun)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ArchiveFailures.WithLabelValues("astrology")))
}

func TestWithoutArchive(t *testing.T) {
	svc := newTestService(nil, nil)
	assert.False(t, svc.ArchiveEnabled())

	res, err := svc.CalculateNumerology(context.Background(), NumerologyInput{FullName: "Ana", BirthDate: "1990-05-15"})
	require.NoError(t, err)
	assert.Empty(t, res.ReadingID)

	_, err = svc.ListReadings(context.Background(), ListReadingsParams{})
	assert.ErrorIs(t, err, ErrArchiveDisabled)
	_, err = svc.GetReading(context.Background(), "rd-1")
	assert.ErrorIs(t, err, ErrArchiveDisabled)
	_, err = svc.Affinities(context.Background(), "rd-1")
	assert.ErrorIs(t, err, ErrArchiveDisabled)
}

func TestListReadings(t *testing.T) {
	archive := &stubArchive{list: domain.ReadingListResult{
		Items: []domain.Reading{{ID: "rd-9", Kind: domain.KindAstrology}},
		Total: 25,
	}}
	svc := newTestService(archive, nil)

	page, err := svc.ListReadings(context.Background(), ListReadingsParams{Page: 2, PageSize: 10, Kind: "astrology"})
	require.NoError(t, err)

	assert.Equal(t, repository.ListReadingsOptions{Offset: 10, Limit: 10, Kind: domain.KindAstrology}, archive.listOpts)
	assert.Equal(t, PaginationMeta{Page: 2, PageSize: 10, Total: 25, TotalPages: 3, HasNext: true, HasPrev: true}, page.Pagination)
	assert.Len(t, page.Items, 1)

	_, err = svc.ListReadings(context.Background(), ListReadingsParams{Kind: "tarot"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "kind", verr.Field)
}

func TestNormalizePagination(t *testing.T) {
	page, size := normalizePagination(0, 0)
	assert.Equal(t, defaultPage, page)
	assert.Equal(t, defaultPageSize, size)

	_, size = normalizePagination(3, 1000)
	assert.Equal(t, maxPageSize, size)

	assert.Equal(t, PaginationMeta{Page: 1, PageSize: 20}, buildPaginationMeta(1, 20, 0))
}

func TestAffinities(t *testing.T) {
	archive := &stubArchive{affinities: domain.ReadingAffinities{SharedTraits: []domain.SharedTrait{
		{Type: domain.TraitDestiny, Value: "3", ReadingIDs: []string{"rd-2"}},
	}}}
	svc := newTestService(archive, nil)

	_, err := svc.Affinities(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrReadingNotFound)

	res, err := svc.CalculateNumerology(context.Background(), NumerologyInput{FullName: "Ana", BirthDate: "1990-05-15"})
	require.NoError(t, err)

	aff, err := svc.Affinities(context.Background(), res.ReadingID)
	require.NoError(t, err)
	assert.Equal(t, res.ReadingID, aff.ReadingID)
	assert.Len(t, aff.SharedTraits, 1)
}
