package services

import (
	"strings"
	"travel-planner-service/internal/domain"
)

// Bounds of the user-facing trip controls.
const (
	MinTripDays = 1
	MaxTripDays = 14
	MinBudget   = 500
)

// ValidatePlanRequest checks trip controls and returns a trimmed copy.
// Defaults for omitted fields are applied by the caller before validation.
func ValidatePlanRequest(req domain.PlanRequest) (domain.PlanRequest, error) {
	req.Origin = strings.TrimSpace(req.Origin)
	req.Destination = strings.TrimSpace(req.Destination)

	if req.Origin == "" {
		return req, &domain.ValidationError{Field: "origin", Message: "Starting location is required!"}
	}
	if req.Destination == "" {
		return req, &domain.ValidationError{Field: "destination", Message: "destination is required"}
	}
	if req.StartDate.IsZero() {
		return req, &domain.ValidationError{Field: "start_date", Message: "start date is required"}
	}
	if req.Days < MinTripDays || req.Days > MaxTripDays {
		return req, &domain.ValidationError{Field: "days", Message: "must be between 1 and 14"}
	}
	if req.Budget < MinBudget {
		return req, &domain.ValidationError{Field: "budget", Message: "must be at least 500"}
	}

	seen := make(map[string]struct{}, len(req.Interests))
	interests := make([]string, 0, len(req.Interests))
	for _, in := range req.Interests {
		in = strings.TrimSpace(in)
		if !domain.IsInterestOption(in) {
			return req, &domain.ValidationError{Field: "interests", Message: "unknown interest " + `"` + in + `"`}
		}
		if _, ok := seen[in]; ok {
			continue
		}
		seen[in] = struct{}{}
		interests = append(interests, in)
	}
	req.Interests = interests

	return req, nil
}
