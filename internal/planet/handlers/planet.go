package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"space-age/internal/planet"
	"space-age/internal/shared/errors"
	"space-age/internal/shared/response"
)

type AgesResponse struct {
	Seconds uint64       `json:"seconds"`
	Ages    []planet.Age `json:"ages"`
}

type PlanetHandler struct {
	service *planet.Service
}

func NewPlanetHandler(service *planet.Service) *PlanetHandler {
	return &PlanetHandler{service: service}
}

func (h *PlanetHandler) GetPlanets(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_planets")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	response.Success(w, http.StatusOK, h.service.Catalog())
}

func (h *PlanetHandler) GetAge(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_planet_age")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	name := r.PathValue("name")
	if name == "" {
		response.Error(w, r, logger, errors.Validation("planet name is required"))
		return
	}

	seconds, err := parseSeconds(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	age, err := h.service.Age(name, seconds)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, age)
}

func (h *PlanetHandler) GetAges(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_ages")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	seconds, err := parseSeconds(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, AgesResponse{
		Seconds: seconds,
		Ages:    h.service.Ages(seconds),
	})
}

func parseSeconds(r *http.Request) (uint64, error) {
	raw := r.URL.Query().Get("seconds")
	if raw == "" {
		return 0, errors.Validation("seconds query parameter is required")
	}

	seconds, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errors.WrapValidation("seconds must be a non-negative whole number", err)
	}
	return seconds, nil
}
