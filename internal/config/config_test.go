package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("GEMINI_MAX_OUTPUT_TOKENS", "2048")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("STORAGE_DRIVER", "MinIO")
	t.Setenv("IMAGES_THROTTLE", "250ms")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 2048, cfg.Gemini.MaxOutputTokens)
	assert.True(t, cfg.Storage.MinIO.UseSSL)
	assert.Equal(t, "minio", cfg.Storage.Driver)
	assert.Equal(t, 250*time.Millisecond, cfg.Images.Throttle)
}

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		"GEMINI_TEXT_MODEL", "GEMINI_TEMPERATURE", "PERPLEXITY_MODEL",
		"PERPLEXITY_MAX_TOKENS", "IMAGES_MAX_PER_ENTITY", "STORAGE_DRIVER",
	} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.TextModel)
	assert.Equal(t, 0.35, cfg.Gemini.Temperature)
	assert.Equal(t, 120*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, "sonar", cfg.Perplexity.Model)
	assert.Equal(t, 1400, cfg.Perplexity.MaxTokens)
	assert.Equal(t, 1200, cfg.Perplexity.FoodMaxTokens)
	assert.Equal(t, 2, cfg.Images.MaxPerEntity)
	assert.Equal(t, "local", cfg.Storage.Driver)
}

func TestFirstEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "google-key")
	assert.Equal(t, "google-key", firstEnv("GEMINI_API_KEY", "GOOGLE_API_KEY"))

	t.Setenv("GEMINI_API_KEY", "gemini-key")
	assert.Equal(t, "gemini-key", firstEnv("GEMINI_API_KEY", "GOOGLE_API_KEY"))
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}

func TestGetEnvFloat(t *testing.T) {
	key := "TEST_FLOAT_VAR"

	os.Setenv(key, "0.7")
	assert.Equal(t, 0.7, getEnvFloat(key, 0))

	os.Setenv(key, "warm")
	assert.Equal(t, 0.2, getEnvFloat(key, 0.2))

	os.Unsetenv(key)
	assert.Equal(t, 0.2, getEnvFloat(key, 0.2))
}

func TestGetEnvDuration(t *testing.T) {
	key := "TEST_DURATION_VAR"
	defer os.Unsetenv(key)

	os.Setenv(key, "2m")
	assert.Equal(t, 2*time.Minute, getEnvDuration(key, time.Second))

	os.Setenv(key, "45")
	assert.Equal(t, 45*time.Second, getEnvDuration(key, time.Second))

	os.Setenv(key, "soon")
	assert.Equal(t, time.Second, getEnvDuration(key, time.Second))
}
