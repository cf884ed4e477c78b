package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"travel-planner-service/internal/domain"
	"travel-planner-service/internal/platform/obs"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "planner:session:"

// RedisResultStore keeps session results in Redis so several server
// instances can serve the same session.
type RedisResultStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisResultStore(rdb *redis.Client, ttl time.Duration) (*RedisResultStore, error) {
	if rdb == nil {
		return nil, errors.New("redis result store: client is nil")
	}
	return &RedisResultStore{rdb: rdb, ttl: ttl}, nil
}

// Connect parses redisURL and verifies the server answers.
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("connect redis: parse url: %w", err)
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("connect redis: ping: %w", err)
	}
	return rdb, nil
}

func (s *RedisResultStore) Get(ctx context.Context, sessionID string) (_ *domain.PlanResult, _ bool, err error) {
	defer obs.Time(ctx, "sessions.redis.Get")(&err)

	raw, err := s.rdb.Get(ctx, keyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis result store: get %q: %w", sessionID, err)
	}

	var res domain.PlanResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, false, fmt.Errorf("redis result store: decode %q: %w", sessionID, err)
	}
	return &res, true, nil
}

// Put overwrites the session key in a single SET.
func (s *RedisResultStore) Put(ctx context.Context, sessionID string, result *domain.PlanResult) (err error) {
	defer obs.Time(ctx, "sessions.redis.Put")(&err)

	if sessionID == "" {
		return errors.New("redis result store: session id is empty")
	}
	if result == nil {
		return errors.New("redis result store: result is nil")
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("redis result store: encode %q: %w", sessionID, err)
	}

	if err := s.rdb.Set(ctx, keyPrefix+sessionID, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis result store: set %q: %w", sessionID, err)
	}
	return nil
}
