package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	ObjectStoreType string
	LocalStoreDir   string
	AWSRegion       string
	S3Bucket        string
	S3Prefix        string
	SSEKMSKeyID     string
	LLMProvider     string
	LLMModel        string
	LLMBaseURL      string
	OpenAIAPIKey    string
	LLMTimeout      time.Duration
	ModelRatePerMin int
	ModelRateBurst  int
	DatabaseURL     string
	JWTSecret       string
	Env             string
}

// Load reads configuration from environment variables with sensible defaults.
// Values from CONFIG_FILE (YAML) act as defaults for anything the environment leaves unset.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	var fc FileConfig
	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		loaded, err := LoadFile(path)
		if err != nil {
			log.Printf("config: ignoring CONFIG_FILE %s: %v", path, err)
		} else {
			fc = loaded
		}
	}
	return fromEnv(fc)
}

func fromEnv(fc FileConfig) Config {
	env := normalizeEnv(getEnv("ENV", or(fc.Env, "dev")))
	dbURL := getEnv("DATABASE_URL", fc.Database.URL)

	jwtSecret := getEnv("JWT_SECRET", fc.Auth.JWTSecret)

	if env == "production" && dbURL == "" {
		log.Printf("DATABASE_URL is required in production")
	}
	if env == "production" && jwtSecret == "" {
		log.Printf("JWT_SECRET is required in production")
	}

	return Config{
		Port:            getEnv("PORT", or(fc.Port, "8080")),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", or(strings.Join(fc.CORS.AllowOrigins, ","), "*"))),
		ObjectStoreType: normalizeStoreType(getEnv("OBJECT_STORE", or(fc.Storage.Type, "local"))),
		LocalStoreDir:   getEnv("LOCAL_STORE_DIR", or(fc.Storage.LocalDir, "./data")),
		AWSRegion:       getEnv("AWS_REGION", fc.Storage.Region),
		S3Bucket:        getEnv("S3_BUCKET", fc.Storage.Bucket),
		S3Prefix:        getEnv("S3_PREFIX", or(fc.Storage.Prefix, "job-descriptions/")),
		SSEKMSKeyID:     getEnv("SSE_KMS_KEY_ID", fc.Storage.KMSKeyID),
		LLMProvider:     strings.ToLower(getEnv("LLM_PROVIDER", or(fc.LLM.Provider, "openai"))),
		LLMModel:        getEnv("LLM_MODEL", or(fc.LLM.Model, "gpt-4o-mini")),
		LLMBaseURL:      getEnv("LLM_BASE_URL", fc.LLM.BaseURL),
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", fc.LLM.APIKey),
		LLMTimeout:      time.Duration(getEnvInt("OPENAI_TIMEOUT_SECONDS", orInt(fc.LLM.TimeoutSeconds, 120))) * time.Second,
		ModelRatePerMin: getEnvInt("MODEL_RATE_PER_MIN", orInt(fc.RateLimit.PerMinute, 20)),
		ModelRateBurst:  getEnvInt("MODEL_RATE_BURST", orInt(fc.RateLimit.Burst, 5)),
		DatabaseURL:     dbURL,
		JWTSecret:       jwtSecret,
		Env:             env,
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 0 {
		log.Printf("config: %s invalid int %q, using %d", key, raw, def)
		return def
	}
	return val
}

func or(value, def string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return def
}

func orInt(value, def int) int {
	if value > 0 {
		return value
	}
	return def
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "test":
		return "test"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}
