package dto

import (
	"errors"
	"testing"
	"time"
	"travel-planner-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainDefaults(t *testing.T) {
	today := time.Date(2026, 10, 16, 15, 30, 0, 0, time.UTC)

	got, err := GenerateRequest{Origin: "Mysuru, India"}.ToDomain(today)
	require.NoError(t, err)

	assert.Equal(t, "Bengaluru, India", got.Destination)
	assert.Equal(t, time.Date(2026, 10, 23, 0, 0, 0, 0, time.UTC), got.StartDate)
	assert.Equal(t, 2, got.Days)
	assert.Equal(t, 3000, got.Budget)
	assert.Equal(t, []string{"cafes", "budget-food"}, got.Interests)
	assert.False(t, got.UseRemote)
}

func TestToDomainExplicitValues(t *testing.T) {
	days, budget := 5, 12000
	empty := []string{}

	got, err := GenerateRequest{
		Origin:      "Mysuru, India",
		Destination: "Paris, France",
		StartDate:   "2027-01-02",
		Days:        &days,
		Budget:      &budget,
		Interests:   &empty,
		UseRemote:   true,
	}.ToDomain(time.Now())
	require.NoError(t, err)

	assert.Equal(t, "Paris, France", got.Destination)
	assert.Equal(t, time.Date(2027, 1, 2, 0, 0, 0, 0, time.UTC), got.StartDate)
	assert.Equal(t, 5, got.Days)
	assert.Equal(t, 12000, got.Budget)
	assert.NotNil(t, got.Interests)
	assert.Empty(t, got.Interests)
	assert.True(t, got.UseRemote)
}

func TestToDomainBadDate(t *testing.T) {
	_, err := GenerateRequest{Origin: "x", StartDate: "tomorrow"}.ToDomain(time.Now())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidRequest))
}
