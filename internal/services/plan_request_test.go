package services

import (
	"errors"
	"testing"
	"time"
	"travel-planner-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePlanRequest(t *testing.T) {
	req := planRequest()
	req.Origin = "  Mysuru, India "
	req.Interests = []string{"cafes", " museums", "cafes"}

	got, err := ValidatePlanRequest(req)
	require.NoError(t, err)
	assert.Equal(t, "Mysuru, India", got.Origin)
	assert.Equal(t, []string{"cafes", "museums"}, got.Interests)
}

func TestValidatePlanRequestRejects(t *testing.T) {
	cases := []struct {
		name  string
		edit  func(*domain.PlanRequest)
		field string
	}{
		{"origin", func(r *domain.PlanRequest) { r.Origin = "" }, "origin"},
		{"destination", func(r *domain.PlanRequest) { r.Destination = " " }, "destination"},
		{"start date", func(r *domain.PlanRequest) { r.StartDate = time.Time{} }, "start_date"},
		{"zero days", func(r *domain.PlanRequest) { r.Days = 0 }, "days"},
		{"too many days", func(r *domain.PlanRequest) { r.Days = 15 }, "days"},
		{"budget", func(r *domain.PlanRequest) { r.Budget = 499 }, "budget"},
		{"interest", func(r *domain.PlanRequest) { r.Interests = []string{"cafe"} }, "interests"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := planRequest()
			tc.edit(&req)

			_, err := ValidatePlanRequest(req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidRequest))

			var ve *domain.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tc.field, ve.Field)
		})
	}
}

func TestValidatePlanRequestOriginMessage(t *testing.T) {
	req := planRequest()
	req.Origin = ""

	_, err := ValidatePlanRequest(req)
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "Starting location is required!", ve.Message)
}

func TestValidatePlanRequestEmptyInterests(t *testing.T) {
	req := planRequest()
	req.Interests = nil

	got, err := ValidatePlanRequest(req)
	require.NoError(t, err)
	assert.Empty(t, got.Interests)
}
