package sessions

import (
	"context"
	"errors"
	"time"
	"travel-planner-service/internal/domain"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryResultStore keeps each session's current result in process memory.
// Entries expire after ttl of inactivity on Put.
type MemoryResultStore struct {
	c *gocache.Cache
}

func NewMemoryResultStore(ttl time.Duration) *MemoryResultStore {
	return &MemoryResultStore{c: gocache.New(ttl, ttl/2+time.Minute)}
}

func (s *MemoryResultStore) Get(_ context.Context, sessionID string) (*domain.PlanResult, bool, error) {
	v, ok := s.c.Get(sessionID)
	if !ok {
		return nil, false, nil
	}
	res, ok := v.(*domain.PlanResult)
	if !ok {
		return nil, false, errors.New("memory result store: unexpected value type")
	}
	return res, true, nil
}

// Put replaces the slot. The stored pointer is never mutated afterwards; the
// planner builds a fresh result for every generate action.
func (s *MemoryResultStore) Put(_ context.Context, sessionID string, result *domain.PlanResult) error {
	if sessionID == "" {
		return errors.New("memory result store: session id is empty")
	}
	if result == nil {
		return errors.New("memory result store: result is nil")
	}
	s.c.Set(sessionID, result, gocache.DefaultExpiration)
	return nil
}
