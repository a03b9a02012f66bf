package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// GeminiConfig holds Google Gemini model settings.
type GeminiConfig struct {
	APIKey          string
	TextModel       string
	ImageModel      string
	TaskModel       string
	Temperature     float64
	TopP            float64
	TopK            float64
	MaxOutputTokens int
	Timeout         time.Duration
	ImageTimeout    time.Duration
}

// PerplexityConfig holds Perplexity search-completion settings.
type PerplexityConfig struct {
	APIKey            string
	BaseURL           string
	Model             string
	Temperature       float64
	TopP              float64
	MaxTokens         int
	FoodMaxTokens     int
	SearchContextSize string
	Timeout           time.Duration
}

// ImageConfig controls generated photos attached to itinerary entities and place cards.
type ImageConfig struct {
	Enabled      bool
	MaxPerEntity int
	MaxEntities  int
	Throttle     time.Duration
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// StorageConfig selects where generated images are written.
// Driver is "local" (LocalDir on disk) or "minio".
type StorageConfig struct {
	Driver   string
	LocalDir string
	MinIO    MinIOConfig
}

// TaskConfig controls the in-memory background task store.
type TaskConfig struct {
	TTL             time.Duration
	CleanupInterval time.Duration
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost     string
	Port        string
	Version     string
	LogLevel    string
	LogFormat   string
	CORSOrigins string
	Gemini      GeminiConfig
	Perplexity  PerplexityConfig
	Images      ImageConfig
	Storage     StorageConfig
	Tasks       TaskConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:     getEnv("APP_HOST", "localhost:8000"),
		Port:        getEnv("PORT", "8000"),
		Version:     getEnv("APP_VERSION", "1.0.0"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
		CORSOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		Gemini: GeminiConfig{
			APIKey:          firstEnv("GEMINI_API_KEY", "GOOGLE_API_KEY"),
			TextModel:       getEnv("GEMINI_TEXT_MODEL", "gemini-2.5-flash"),
			ImageModel:      getEnv("GEMINI_IMAGE_MODEL", "gemini-2.5-flash-image-preview"),
			TaskModel:       getEnv("GEMINI_TASK_MODEL", "gemini-2.5-pro"),
			Temperature:     getEnvFloat("GEMINI_TEMPERATURE", 0.35),
			TopP:            getEnvFloat("GEMINI_TOP_P", 0.9),
			TopK:            getEnvFloat("GEMINI_TOP_K", 40),
			MaxOutputTokens: getEnvInt("GEMINI_MAX_OUTPUT_TOKENS", 40960),
			Timeout:         getEnvDuration("GEMINI_TIMEOUT", 120*time.Second),
			ImageTimeout:    getEnvDuration("GEMINI_IMAGE_TIMEOUT", 60*time.Second),
		},
		Perplexity: PerplexityConfig{
			APIKey:            getEnv("PERPLEXITY_API_KEY", ""),
			BaseURL:           getEnv("PERPLEXITY_BASE_URL", "https://api.perplexity.ai"),
			Model:             getEnv("PERPLEXITY_MODEL", "sonar"),
			Temperature:       getEnvFloat("PERPLEXITY_TEMPERATURE", 0.2),
			TopP:              getEnvFloat("PERPLEXITY_TOP_P", 0.9),
			MaxTokens:         getEnvInt("PERPLEXITY_MAX_TOKENS", 1400),
			FoodMaxTokens:     getEnvInt("PERPLEXITY_FOOD_MAX_TOKENS", 1200),
			SearchContextSize: getEnv("PERPLEXITY_SEARCH_CONTEXT_SIZE", "high"),
			Timeout:           getEnvDuration("PERPLEXITY_TIMEOUT", 60*time.Second),
		},
		Images: ImageConfig{
			Enabled:      getEnvBool("IMAGES_ENABLED", true),
			MaxPerEntity: getEnvInt("IMAGES_MAX_PER_ENTITY", 2),
			MaxEntities:  getEnvInt("IMAGES_MAX_ENTITIES", 3),
			Throttle:     getEnvDuration("IMAGES_THROTTLE", 5*time.Second),
		},
		Storage: StorageConfig{
			Driver:   strings.ToLower(getEnv("STORAGE_DRIVER", "local")),
			LocalDir: getEnv("STORAGE_LOCAL_DIR", "static"),
			MinIO: MinIOConfig{
				Endpoint:  getEnv("MINIO_ENDPOINT", ""),
				AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
				SecretKey: getEnv("MINIO_SECRET_KEY", ""),
				Bucket:    getEnv("MINIO_BUCKET", ""),
				UseSSL:    getEnvBool("MINIO_USE_SSL", false),
			},
		},
		Tasks: TaskConfig{
			TTL:             getEnvDuration("TASK_TTL", 24*time.Hour),
			CleanupInterval: getEnvDuration("TASK_CLEANUP_INTERVAL", time.Hour),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// firstEnv returns the first non-empty value among keys.
func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return def
}

// getEnvDuration accepts Go duration strings ("90s", "2m") or a bare number of seconds.
func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	return def
}
