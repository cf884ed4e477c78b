package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const lockPrefix = "planner:lock:"

// Deletes the lock only while it still carries the holder's token, so an
// expired holder cannot free a lock taken over by someone else.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker guards generate actions with SET NX on a per-session key.
// The TTL bounds how long a crashed instance can hold a session.
type RedisLocker struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisLocker(rdb *redis.Client, ttl time.Duration) (*RedisLocker, error) {
	if rdb == nil {
		return nil, errors.New("redis locker: client is nil")
	}
	if ttl <= 0 {
		return nil, errors.New("redis locker: ttl must be positive")
	}
	return &RedisLocker{rdb: rdb, ttl: ttl}, nil
}

func (l *RedisLocker) Acquire(ctx context.Context, sessionID string) (func(context.Context) error, bool, error) {
	if sessionID == "" {
		return nil, false, errors.New("redis locker: session id is empty")
	}

	key := lockPrefix + sessionID
	token := uuid.NewString()

	ok, err := l.rdb.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("redis locker: acquire %q: %w", sessionID, err)
	}
	if !ok {
		return nil, false, nil
	}

	release := func(ctx context.Context) error {
		if err := releaseScript.Run(ctx, l.rdb, []string{key}, token).Err(); err != nil {
			return fmt.Errorf("redis locker: release %q: %w", sessionID, err)
		}
		return nil
	}
	return release, true, nil
}
