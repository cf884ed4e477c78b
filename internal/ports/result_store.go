package ports

import (
	"context"
	"travel-planner-service/internal/domain"
)

// Port: the per-session current-result slot owned by the hosting layer.
// Put replaces the previous value wholesale.
type ResultStore interface {
	Get(ctx context.Context, sessionID string) (*domain.PlanResult, bool, error)
	Put(ctx context.Context, sessionID string, result *domain.PlanResult) error
}
