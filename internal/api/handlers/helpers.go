package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"travel-planner-service/internal/api/dto"
	"travel-planner-service/internal/domain"
	"travel-planner-service/internal/platform/obs"

	"github.com/sirupsen/logrus"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithFields(obs.Fields(r.Context())).WithError(err).
			WithFields(logrus.Fields{"method": r.Method, "path": r.URL.Path}).
			Error("encode failed")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, dto.ErrorResponse{Error: msg})
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNoItinerary):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrGenerationInProgress):
		return http.StatusConflict
	case errors.Is(err, domain.ErrGeocodeFailure):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrRemoteGeneration):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError writes err with its mapped status. Unmapped errors are
// logged and hidden behind a generic message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logrus.WithFields(obs.Fields(r.Context())).WithError(err).
			WithField("path", r.URL.Path).Error("request failed")
		writeError(w, r, status, "internal server error")
		return
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		writeJSON(w, r, status, dto.ErrorResponse{Error: ve.Message, Field: ve.Field})
		return
	}
	writeError(w, r, status, err.Error())
}
