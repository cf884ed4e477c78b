package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "GEOCODER_PROVIDER", "HF_API_URL", "HF_API_KEY", "GENERATOR_PROVIDER", "SESSION_TTL"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "nominatim", cfg.GeocoderProvider)
	assert.Equal(t, "huggingface", cfg.GeneratorProvider)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.False(t, cfg.RemoteGenerationEnabled())
}

func TestRemoteGenerationNeedsEndpointAndKey(t *testing.T) {
	t.Setenv("GENERATOR_PROVIDER", "")
	t.Setenv("HF_API_URL", "https://example.test/models/x")
	t.Setenv("HF_API_KEY", "")
	assert.False(t, Load().RemoteGenerationEnabled())

	t.Setenv("HF_API_KEY", "secret")
	assert.True(t, Load().RemoteGenerationEnabled())
}

func TestGetDuration(t *testing.T) {
	t.Setenv("SESSION_TTL", "90m")
	assert.Equal(t, 90*time.Minute, GetDuration("SESSION_TTL", time.Hour))

	t.Setenv("SESSION_TTL", "30")
	assert.Equal(t, 30*time.Second, GetDuration("SESSION_TTL", time.Hour))

	t.Setenv("SESSION_TTL", "soon")
	assert.Equal(t, time.Hour, GetDuration("SESSION_TTL", time.Hour))
}

func TestGetList(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", " http://a.test, ,http://b.test ")
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, GetList("ALLOWED_ORIGINS", nil))

	t.Setenv("ALLOWED_ORIGINS", "")
	assert.Equal(t, []string{"*"}, GetList("ALLOWED_ORIGINS", []string{"*"}))
}
