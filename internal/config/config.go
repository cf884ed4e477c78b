package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds every environment-supplied setting of the service.
type Config struct {
	Port           string
	AllowedOrigins []string

	GeocoderProvider string // nominatim | ors
	NominatimURL     string
	GeocoderAgent    string
	ORSAPIKey        string

	GeocodeCache string // none | sqlite | postgres
	DBPath       string
	DatabaseURL  string
	SeedPath     string

	RedisURL   string
	SessionTTL time.Duration

	GeneratorProvider string // huggingface | openai | gemini
	HFAPIURL          string
	HFAPIKey          string
	OpenAIAPIKey      string
	OpenAIModel       string
	OpenAIBaseURL     string
	GeminiAPIKey      string
	GeminiModel       string

	LogLevel string
	LogFile  string
}

// Get returns the trimmed value of key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// GetDuration parses key as a time.Duration, falling back on absence or parse error.
func GetDuration(key string, fallback time.Duration) time.Duration {
	v := Get(key, "")
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}

// GetList splits a comma-separated value, dropping blank entries.
func GetList(key string, fallback []string) []string {
	v := Get(key, "")
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Load reads the configuration from the process environment.
func Load() Config {
	return Config{
		Port:           Get("PORT", "8080"),
		AllowedOrigins: GetList("ALLOWED_ORIGINS", nil),

		GeocoderProvider: strings.ToLower(Get("GEOCODER_PROVIDER", "nominatim")),
		NominatimURL:     Get("NOMINATIM_URL", "https://nominatim.openstreetmap.org"),
		GeocoderAgent:    Get("GEOCODER_USER_AGENT", "student_travel_planner_app"),
		ORSAPIKey:        Get("ORS_API_KEY", ""),

		GeocodeCache: strings.ToLower(Get("GEOCODE_CACHE", "sqlite")),
		DBPath:       Get("DB_PATH", "data/app.db"),
		DatabaseURL:  Get("DATABASE_URL", ""),
		SeedPath:     Get("SEED_PATH", "data/seeds/places.json"),

		RedisURL:   Get("REDIS_URL", ""),
		SessionTTL: GetDuration("SESSION_TTL", 24*time.Hour),

		GeneratorProvider: strings.ToLower(Get("GENERATOR_PROVIDER", "huggingface")),
		HFAPIURL:          Get("HF_API_URL", ""),
		HFAPIKey:          Get("HF_API_KEY", ""),
		OpenAIAPIKey:      Get("OPENAI_API_KEY", ""),
		OpenAIModel:       Get("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL:     Get("OPENAI_BASE_URL", ""),
		GeminiAPIKey:      Get("GEMINI_API_KEY", ""),
		GeminiModel:       Get("GEMINI_MODEL", "gemini-1.5-flash"),

		LogLevel: Get("LOG_LEVEL", "info"),
		LogFile:  Get("LOG_FILE", ""),
	}
}

// RemoteGenerationEnabled reports whether the selected remote provider has
// both an endpoint and a credential. Without them only local synthesis runs.
func (c Config) RemoteGenerationEnabled() bool {
	switch c.GeneratorProvider {
	case "openai":
		return c.OpenAIAPIKey != ""
	case "gemini":
		return c.GeminiAPIKey != ""
	default:
		return c.HFAPIURL != "" && c.HFAPIKey != ""
	}
}
