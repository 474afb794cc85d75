package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultPort           = "8000"
	DefaultCORSOrigin     = "http://localhost:3000"
	DefaultMaxUploadBytes = 32 << 20
	DefaultGeminiModel    = "gemini-2.5-flash"
	DefaultKafkaTopic     = "run-submitted"
)

// Config is the process configuration resolved from the environment.
type Config struct {
	Port           string
	CORSOrigin     string
	MaxUploadBytes int64

	DatabaseURL       string
	ResetStoreOnStart bool

	KafkaBroker string
	KafkaTopic  string

	GeminiAPIKey   string
	GeminiModel    string
	LandmarksInput string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool

	SentryDSN string
	Env       string
}

// LoadDotEnv reads a .env file into the process environment when one exists.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
}

// Load reads .env (if present) and resolves the typed configuration.
func Load() Config {
	LoadDotEnv()

	return Config{
		Port:              Get("PORT", DefaultPort),
		CORSOrigin:        Get("CORS_ORIGIN", DefaultCORSOrigin),
		MaxUploadBytes:    GetInt64("MAX_UPLOAD_BYTES", DefaultMaxUploadBytes),
		DatabaseURL:       strings.TrimSpace(os.Getenv("DATABASE_URL")),
		ResetStoreOnStart: GetBool("RUN_STORE_RESET_ON_START", true),
		KafkaBroker:       strings.TrimSpace(os.Getenv("KAFKA_BROKER")),
		KafkaTopic:        Get("KAFKA_TOPIC", DefaultKafkaTopic),
		GeminiAPIKey:      strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:       Get("GEMINI_MODEL", DefaultGeminiModel),
		LandmarksInput:    os.Getenv("LANDMARKS_INPUT"),
		MinioEndpoint:     os.Getenv("MINIO_ENDPOINT"),
		MinioAccessKey:    os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey:    os.Getenv("MINIO_SECRET_KEY"),
		MinioUseSSL:       GetBool("MINIO_USE_SSL", false),
		SentryDSN:         os.Getenv("SENTRY_DSN"),
		Env:               Get("APP_ENV", "development"),
	}
}

func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetBool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("config: invalid bool key=%s value=%q, using %t", key, v, fallback)
		return fallback
	}
	return b
}

func GetInt64(key string, fallback int64) int64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		log.Printf("config: invalid integer key=%s value=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

// MaskSecret returns the first four characters of a secret followed by "...".
func MaskSecret(s string) string {
	if len(s) <= 4 {
		return "..."
	}
	return s[:4] + "..."
}
