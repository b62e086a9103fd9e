// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/terraincognita07/essgate/internal/session"
)

const minSecretKeyLength = 32

var insecureSecretKeys = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
}

type Config struct {
	SecretKey       string
	DBDriver        string
	DBPath          string
	DatabaseDSN     string
	Port            string
	DefaultLanguage string
	SessionTTL      time.Duration
	CookieSecure    bool
	LogLevel        string
	LogFormat       string
	Location        *time.Location
}

// Load reads every setting. Only SECRET_KEY has no usable default.
func Load() (Config, error) {
	secretKey, err := resolveSecretKey()
	if err != nil {
		return Config{}, err
	}
	port, err := resolvePort()
	if err != nil {
		return Config{}, err
	}
	sessionTTL, err := resolveDuration("SESSION_TTL", session.DefaultTTL)
	if err != nil {
		return Config{}, err
	}
	cookieSecure, err := resolveBool("COOKIE_SECURE", false)
	if err != nil {
		return Config{}, err
	}

	driver := strings.ToLower(getEnv("DB_DRIVER", "sqlite"))
	if driver != "sqlite" && driver != "postgres" {
		return Config{}, fmt.Errorf("DB_DRIVER must be sqlite or postgres, got %q", driver)
	}
	dsn := getEnv("DATABASE_DSN", "")
	if driver == "postgres" && dsn == "" {
		return Config{}, errors.New("DATABASE_DSN is required when DB_DRIVER=postgres")
	}

	location, err := time.LoadLocation(getEnv("TZ", "UTC"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid TZ: %w", err)
	}

	return Config{
		SecretKey:       secretKey,
		DBDriver:        driver,
		DBPath:          getEnv("DB_PATH", filepath.Join("data", "essgate.db")),
		DatabaseDSN:     dsn,
		Port:            port,
		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "en"),
		SessionTTL:      sessionTTL,
		CookieSecure:    cookieSecure,
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "text"),
		Location:        location,
	}, nil
}

func resolveSecretKey() (string, error) {
	secretKey := getEnv("SECRET_KEY", "")
	if secretKey == "" {
		return "", errors.New("SECRET_KEY is required")
	}
	if _, insecure := insecureSecretKeys[strings.ToLower(secretKey)]; insecure {
		return "", errors.New("SECRET_KEY uses an insecure placeholder value")
	}
	if len(secretKey) < minSecretKeyLength {
		return "", fmt.Errorf("SECRET_KEY must be at least %d characters", minSecretKeyLength)
	}
	return secretKey, nil
}

func resolvePort() (string, error) {
	rawPort := getEnv("PORT", "8080")
	port, err := strconv.Atoi(rawPort)
	if err != nil || port < 1 || port > 65535 {
		return "", fmt.Errorf("PORT must be a number between 1 and 65535, got %q", rawPort)
	}
	return strconv.Itoa(port), nil
}

func resolveDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	value, err := time.ParseDuration(raw)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("%s must be a positive duration, got %q", key, raw)
	}
	return value, nil
}

func resolveBool(key string, fallback bool) (bool, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", key, raw)
	}
	return value, nil
}

func getEnv(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
