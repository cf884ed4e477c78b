package main

import (
	"context"
	"testing"
	"time"
	"travel-planner-service/internal/adapters/sessions"
	"travel-planner-service/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunReturnsSetupErrors(t *testing.T) {
	cfg := config.Config{Port: "0", GeocoderProvider: "carrier-pigeon", SessionTTL: time.Hour}

	err := run(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "geocoder setup")
}

func TestRunClosesResourcesWhenListenFails(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := config.Config{
		Port:             "-1",
		GeocoderProvider: "static",
		RedisURL:         "redis://" + mr.Addr(),
		SessionTTL:       time.Hour,
	}

	err := run(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen on :-1")

	assert.Eventually(t, func() bool { return mr.CurrentConnectionCount() == 0 },
		time.Second, 10*time.Millisecond, "redis client left open")
}

func TestBuildStore(t *testing.T) {
	ctx := context.Background()

	store, locker, closeStore, err := buildStore(ctx, config.Config{SessionTTL: time.Hour})
	require.NoError(t, err)
	defer closeStore()
	assert.IsType(t, &sessions.MemoryResultStore{}, store)
	assert.Nil(t, locker)

	mr := miniredis.RunT(t)
	store, locker, closeRedis, err := buildStore(ctx, config.Config{RedisURL: "redis://" + mr.Addr(), SessionTTL: time.Hour})
	require.NoError(t, err)
	defer closeRedis()
	assert.IsType(t, &sessions.RedisResultStore{}, store)
	require.NotNil(t, locker)

	_, ok, err := locker.Acquire(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, generationLockTTL, mr.TTL("planner:lock:s1"))
}
