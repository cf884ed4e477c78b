package dto

import (
	"strings"
	"time"
	"travel-planner-service/internal/domain"
	"travel-planner-service/internal/export"
)

// Defaults applied to omitted request fields.
const (
	DefaultDestination = "Bengaluru, India"
	DefaultDays        = 2
	DefaultBudget      = 3000
	// DefaultLeadDays is how far after today an omitted start date falls.
	DefaultLeadDays = 7
)

// GenerateRequest is the body of POST /itineraries. Pointer fields
// distinguish "omitted" from an explicit zero value.
type GenerateRequest struct {
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	StartDate   string    `json:"start_date"`
	Days        *int      `json:"days"`
	Budget      *int      `json:"budget"`
	Interests   *[]string `json:"interests"`
	UseRemote   bool      `json:"use_remote"`
}

// ToDomain applies defaults relative to today. An omitted interests field
// selects the default interests; an explicit empty list is kept empty.
func (r GenerateRequest) ToDomain(today time.Time) (domain.PlanRequest, error) {
	out := domain.PlanRequest{
		Origin:      r.Origin,
		Destination: r.Destination,
		Days:        DefaultDays,
		Budget:      DefaultBudget,
		UseRemote:   r.UseRemote,
	}

	if strings.TrimSpace(out.Destination) == "" {
		out.Destination = DefaultDestination
	}

	y, m, d := today.Date()
	out.StartDate = time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, DefaultLeadDays)
	if s := strings.TrimSpace(r.StartDate); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return out, &domain.ValidationError{Field: "start_date", Message: "must be a date formatted YYYY-MM-DD"}
		}
		out.StartDate = t
	}

	if r.Days != nil {
		out.Days = *r.Days
	}
	if r.Budget != nil {
		out.Budget = *r.Budget
	}

	if r.Interests != nil {
		out.Interests = append([]string{}, (*r.Interests)...)
	} else {
		out.Interests = append([]string{}, domain.DefaultInterests...)
	}

	return out, nil
}

// ResultResponse is a session's current result plus its headline summary.
type ResultResponse struct {
	SessionID string `json:"session_id"`
	*domain.PlanResult
	Summary *export.Summary `json:"summary,omitempty"`
}

func NewResultResponse(sessionID string, res *domain.PlanResult) ResultResponse {
	out := ResultResponse{SessionID: sessionID, PlanResult: res}
	if s, ok := export.Summarize(res); ok {
		out.Summary = &s
	}
	return out
}

type TipsResponse struct {
	Tips []string `json:"tips"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}
