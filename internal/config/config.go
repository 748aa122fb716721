package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ErrMissingStoreURL is returned when neither MONGO_URL nor DATABASE_URL is set.
var ErrMissingStoreURL = errors.New("MONGO_URL or DATABASE_URL must be set")

// Config aggregates application-wide configuration values.
type Config struct {
	StoreURL            string
	DBName              string
	Port                string
	CORSOrigins         []string
	CompanyTypes        []string
	PhoneRegion         string
	ListLimit           int64
	BodyLimit           string
	StoreConnectTimeout time.Duration
	LogLevel            string
	LogFormat           string
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		StoreURL:            getEnv("MONGO_URL", os.Getenv("DATABASE_URL")),
		DBName:              getEnv("DB_NAME", "vastum_db"),
		Port:                getEnv("PORT", "8001"),
		CORSOrigins:         parseList(getEnv("CORS_ORIGINS", "*")),
		CompanyTypes:        parseList(os.Getenv("COMPANY_TYPES")),
		PhoneRegion:         strings.ToUpper(getEnv("PHONE_REGION", "AR")),
		BodyLimit:           getEnv("BODY_LIMIT", "10M"),
		StoreConnectTimeout: parseDuration(getEnv("STORE_CONNECT_TIMEOUT", "10s"), 10*time.Second),
		LogLevel:            strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:           strings.ToLower(getEnv("LOG_FORMAT", "console")),
	}

	if strings.TrimSpace(cfg.StoreURL) == "" {
		return nil, ErrMissingStoreURL
	}

	limit, err := parseInt64(getEnv("LIST_LIMIT", "1000"))
	if err != nil {
		return nil, fmt.Errorf("invalid LIST_LIMIT value: %w", err)
	}
	cfg.ListLimit = limit

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseDuration(input string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(input)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func parseInt64(input string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(input), 10, 64)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("must be positive, got %d", n)
	}
	return n, nil
}

// parseList splits a comma separated value, dropping blank entries.
func parseList(input string) []string {
	var out []string
	for _, part := range strings.Split(input, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
