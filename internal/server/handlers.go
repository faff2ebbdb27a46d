package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vanshika/oraculo/internal/calendar"
	"github.com/vanshika/oraculo/internal/repository"
	"github.com/vanshika/oraculo/internal/service"
	"github.com/vanshika/oraculo/internal/userstore"
)

const maxBodyBytes = 1 << 20

// ReadingHandlers exposes the calculators and the reading archive.
type ReadingHandlers struct {
	logger  *slog.Logger
	service *service.ReadingService
}

// NewReadingHandlers constructs a ReadingHandlers instance.
func NewReadingHandlers(logger *slog.Logger, svc *service.ReadingService) *ReadingHandlers {
	return &ReadingHandlers{
		logger:  logger,
		service: svc,
	}
}

// Register mounts the reading routes.
func (h *ReadingHandlers) Register(r chi.Router) {
	r.Post("/numerology/calculate", h.handleNumerology)
	r.Post("/astrology/calculate", h.handleAstrology)
	r.Get("/readings", h.handleListReadings)
	r.Get("/readings/{id}", h.handleGetReading)
	r.Get("/readings/{id}/affinities", h.handleAffinities)
}

func (h *ReadingHandlers) handleNumerology(w http.ResponseWriter, r *http.Request) {
	var payload numerologyRequest
	if err := decodeJSON(w, r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid data provided")
		return
	}

	res, err := h.service.CalculateNumerology(r.Context(), service.NumerologyInput{
		FullName:  payload.FullName,
		BirthDate: payload.BirthDate,
	})
	if err != nil {
		writeServiceError(h.logger, w, r, err, "failed to calculate numerology")
		return
	}
	respondJSON(w, http.StatusOK, newNumerologyResponse(res))
}

func (h *ReadingHandlers) handleAstrology(w http.ResponseWriter, r *http.Request) {
	var payload astrologyRequest
	if err := decodeJSON(w, r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid data provided")
		return
	}

	res, err := h.service.CalculateAstrology(r.Context(), service.AstrologyInput{
		BirthDate:    payload.BirthDate,
		BirthTime:    payload.BirthTime,
		BirthCity:    payload.BirthCity,
		BirthCountry: payload.BirthCountry,
	})
	if err != nil {
		writeServiceError(h.logger, w, r, err, "failed to calculate astrology")
		return
	}
	respondJSON(w, http.StatusOK, newAstrologyResponse(res))
}

func (h *ReadingHandlers) handleListReadings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, err := h.service.ListReadings(r.Context(), service.ListReadingsParams{
		Page:     parseInt(query.Get("page"), 1),
		PageSize: parseInt(query.Get("pageSize"), 0),
		Kind:     query.Get("kind"),
	})
	if err != nil {
		writeServiceError(h.logger, w, r, err, "failed to list readings")
		return
	}

	resp := listReadingsResponse{
		Items:      make([]readingResponse, 0, len(page.Items)),
		Pagination: page.Pagination,
	}
	for _, item := range page.Items {
		resp.Items = append(resp.Items, newReadingResponse(item))
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *ReadingHandlers) handleGetReading(w http.ResponseWriter, r *http.Request) {
	reading, err := h.service.GetReading(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(h.logger, w, r, err, "failed to fetch reading")
		return
	}
	respondJSON(w, http.StatusOK, newReadingResponse(reading))
}

func (h *ReadingHandlers) handleAffinities(w http.ResponseWriter, r *http.Request) {
	readingID := chi.URLParam(r, "id")
	affinities, err := h.service.Affinities(r.Context(), readingID)
	if err != nil {
		writeServiceError(h.logger, w, r, err, "failed to fetch affinities")
		return
	}

	resp := affinitiesResponse{
		ReadingID:    readingID,
		SharedTraits: []sharedTraitResponse{},
	}
	for _, shared := range affinities.SharedTraits {
		resp.SharedTraits = append(resp.SharedTraits, sharedTraitResponse{
			Type:       string(shared.Type),
			Value:      shared.Value,
			ReadingIDs: shared.ReadingIDs,
		})
	}
	respondJSON(w, http.StatusOK, resp)
}

// UserHandlers exposes the user registry.
type UserHandlers struct {
	logger  *slog.Logger
	service *service.UserService
}

func NewUserHandlers(logger *slog.Logger, svc *service.UserService) *UserHandlers {
	return &UserHandlers{
		logger:  logger,
		service: svc,
	}
}

// Register mounts the user routes.
func (h *UserHandlers) Register(r chi.Router) {
	r.Post("/users", h.handleCreateUser)
	r.Get("/users", h.handleFindUser)
	r.Get("/users/{id}", h.handleGetUser)
	r.Post("/users/login", h.handleLogin)
}

func (h *UserHandlers) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var payload userRequest
	if err := decodeJSON(w, r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid data provided")
		return
	}

	user, err := h.service.Register(r.Context(), payload.Username, payload.Password)
	if err != nil {
		writeServiceError(h.logger, w, r, err, "failed to create user")
		return
	}
	respondJSON(w, http.StatusCreated, newUserResponse(user))
}

func (h *UserHandlers) handleFindUser(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.URL.Query().Get("username"))
	if username == "" {
		writeError(w, http.StatusBadRequest, "username is required")
		return
	}

	user, err := h.service.GetByUsername(r.Context(), username)
	if err != nil {
		writeServiceError(h.logger, w, r, err, "failed to fetch user")
		return
	}
	respondJSON(w, http.StatusOK, newUserResponse(user))
}

func (h *UserHandlers) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err, "failed to fetch user")
		return
	}
	respondJSON(w, http.StatusOK, newUserResponse(user))
}

func (h *UserHandlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	var payload userRequest
	if err := decodeJSON(w, r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid data provided")
		return
	}

	user, err := h.service.Authenticate(r.Context(), payload.Username, payload.Password)
	if err != nil {
		writeServiceError(h.logger, w, r, err, "failed to authenticate")
		return
	}
	respondJSON(w, http.StatusOK, newUserResponse(user))
}

// writeServiceError maps service and storage errors to status codes. Anything
// unrecognised is logged and reported as fallback with a 500.
func writeServiceError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var (
		verr *service.ValidationError
		ferr *calendar.FormatError
	)
	switch {
	case errors.As(err, &verr):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Message, Field: verr.Field})
	case errors.As(err, &ferr):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: ferr.Error(), Field: ferr.Field})
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, repository.ErrReadingNotFound):
		writeError(w, http.StatusNotFound, "reading not found")
	case errors.Is(err, userstore.ErrNotFound):
		writeError(w, http.StatusNotFound, "user not found")
	case errors.Is(err, userstore.ErrConflict):
		writeError(w, http.StatusConflict, "username already exists")
	case errors.Is(err, service.ErrArchiveDisabled):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	default:
		logger.ErrorContext(r.Context(), fallback,
			"error", err,
			"request_id", middleware.GetReqID(r.Context()),
		)
		writeError(w, http.StatusInternalServerError, fallback)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	if r.Body == nil {
		return errors.New("request body is required")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		return err
	}
	return nil
}

func parseInt(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	if v, err := strconv.Atoi(value); err == nil {
		return v
	}
	return fallback
}
