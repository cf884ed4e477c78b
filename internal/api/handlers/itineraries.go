package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"
	"travel-planner-service/internal/api/dto"
	"travel-planner-service/internal/domain"
	"travel-planner-service/internal/export"
)

// Planner is the service the itinerary endpoints drive.
type Planner interface {
	Generate(ctx context.Context, sessionID string, req domain.PlanRequest) (*domain.PlanResult, error)
	Current(ctx context.Context, sessionID string) (*domain.PlanResult, error)
}

type ItineraryHandler struct {
	Planner Planner
	Now     func() time.Time
}

func (h *ItineraryHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// Generate runs one generate action for the caller's session.
// A failed generation still answers with the stored result so clients can
// render the error the same way the current view does.
func (h *ItineraryHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	sid, _ := sessionID(w, r, true)

	planReq, err := req.ToDomain(h.now())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	res, err := h.Planner.Generate(r.Context(), sid, planReq)
	if res == nil {
		writeServiceError(w, r, err)
		return
	}

	status := http.StatusOK
	if err != nil {
		status = statusFor(err)
	}
	writeJSON(w, r, status, dto.NewResultResponse(sid, res))
}

// Current returns the session's stored result, success or failure.
func (h *ItineraryHandler) Current(w http.ResponseWriter, r *http.Request) {
	sid, res, ok := h.current(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, http.StatusOK, dto.NewResultResponse(sid, res))
}

func (h *ItineraryHandler) Map(w http.ResponseWriter, r *http.Request) {
	_, res, ok := h.current(w, r)
	if !ok {
		return
	}

	fc, err := export.MapView(res)
	if errors.Is(err, export.ErrNothingToExport) {
		writeError(w, r, http.StatusNotFound, "no map data for the current result")
		return
	}
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(fc)
}

func (h *ItineraryHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	_, res, ok := h.current(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	err := export.WriteCSV(&buf, res)
	if errors.Is(err, export.ErrNothingToExport) {
		writeError(w, r, http.StatusNotFound, "no scheduled activities to export")
		return
	}
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="itinerary.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *ItineraryHandler) current(w http.ResponseWriter, r *http.Request) (string, *domain.PlanResult, bool) {
	sid, ok := sessionID(w, r, false)
	if !ok {
		writeServiceError(w, r, domain.ErrNoItinerary)
		return "", nil, false
	}

	res, err := h.Planner.Current(r.Context(), sid)
	if err != nil {
		writeServiceError(w, r, err)
		return "", nil, false
	}
	return sid, res, true
}
