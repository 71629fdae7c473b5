package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	platformstrings "complyhub/pkg/platform/strings"
)

// Server captures process level configuration for the server and the CLI.
type Server struct {
	Addr     string `validate:"required"`
	LogLevel string `validate:"oneof=debug info warn error"`

	APIKey               string        `validate:"required"`
	BaseURL              string        `validate:"omitempty,url"`
	CompanyLookupTimeout time.Duration `validate:"gt=0"`
	ScreeningTimeout     time.Duration `validate:"gt=0"`

	// Empty brokers keep audit events in memory.
	AuditKafkaBrokers []string
	AuditTopic        string `validate:"required"`
	AuditQueueSize    int    `validate:"gt=0"`
}

// Load reads a .env file when present and builds a Server config from the
// environment. Variables already set in the environment win over the file.
func Load() (Server, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	lookupTimeout, err := millis("COMPANY_LOOKUP_TIMEOUT_MS", 10000)
	if err != nil {
		return Server{}, err
	}
	screeningTimeout, err := millis("SCREENING_TIMEOUT_MS", 30000)
	if err != nil {
		return Server{}, err
	}
	queueSize, err := intEnv("AUDIT_QUEUE_SIZE", 1024)
	if err != nil {
		return Server{}, err
	}

	cfg := Server{
		Addr:                 envOr("COMPLYHUB_ADDR", ":8080"),
		LogLevel:             strings.ToLower(envOr("LOG_LEVEL", "info")),
		APIKey:               os.Getenv("COMPLYCUBE_API_KEY"),
		BaseURL:              os.Getenv("COMPLYCUBE_BASE_URL"),
		CompanyLookupTimeout: lookupTimeout,
		ScreeningTimeout:     screeningTimeout,
		AuditKafkaBrokers:    platformstrings.SplitList(os.Getenv("AUDIT_KAFKA_BROKERS")),
		AuditTopic:           envOr("AUDIT_TOPIC", "complyhub.audit"),
		AuditQueueSize:       queueSize,
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Server{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

// millis reads a millisecond count, the unit the API documentation uses.
func millis(key string, fallback int) (time.Duration, error) {
	n, err := intEnv(key, fallback)
	if err != nil {
		return 0, err
	}
	return time.Duration(n) * time.Millisecond, nil
}
