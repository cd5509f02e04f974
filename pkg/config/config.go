// Package config reads the service settings from the environment, optionally
// seeded from a .env file for local runs.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultDBPort         = "5432"
	DefaultHTTPPort       = "8080"
	DefaultDBMaxOpenConns = 2
)

// Config holds runtime settings for the invoice Lambda and the local server.
type Config struct {
	DBUser         string
	DBPass         string
	DBHost         string
	DBName         string
	DBPort         string
	DBSSLMode      string
	DBMaxOpenConns int
	// DBMigrate applies the embedded schema on startup (local server only).
	DBMigrate bool

	S3BucketName      string
	S3Region          string
	S3Endpoint        string
	S3UsePathStyle    bool
	S3AccessKeyID     string
	S3SecretAccessKey string

	HTTPPort string
	LogLevel slog.Level
}

// LoadDotEnv loads a .env file into the process environment if one exists.
// It reports whether a file was found.
func LoadDotEnv() bool {
	return godotenv.Load() == nil
}

// Load builds a Config from the process environment.
func Load() (*Config, error) {
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config using getenv, applying defaults for unset keys.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		DBUser:            getenv("DB_USER"),
		DBPass:            getenv("DB_PASS"),
		DBHost:            getenv("DB_HOST"),
		DBName:            getenv("DB_NAME"),
		DBPort:            withDefault(getenv("DB_PORT"), DefaultDBPort),
		DBSSLMode:         getenv("DB_SSLMODE"),
		DBMaxOpenConns:    DefaultDBMaxOpenConns,
		S3BucketName:      getenv("S3_BUCKET_NAME"),
		S3Region:          getenv("S3_REGION"),
		S3Endpoint:        getenv("S3_ENDPOINT"),
		S3AccessKeyID:     getenv("S3_ACCESS_KEY_ID"),
		S3SecretAccessKey: getenv("S3_SECRET_ACCESS_KEY"),
		HTTPPort:          withDefault(getenv("HTTP_PORT"), DefaultHTTPPort),
		LogLevel:          slog.LevelInfo,
	}

	var errs []error
	if v := getenv("DB_MAX_OPEN_CONNS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			errs = append(errs, fmt.Errorf("invalid DB_MAX_OPEN_CONNS %q", v))
		} else {
			cfg.DBMaxOpenConns = n
		}
	}
	if v := getenv("DB_MIGRATE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid DB_MIGRATE %q", v))
		}
		cfg.DBMigrate = b
	}
	if v := getenv("S3_USE_PATH_STYLE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid S3_USE_PATH_STYLE %q", v))
		}
		cfg.S3UsePathStyle = b
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			errs = append(errs, fmt.Errorf("invalid LOG_LEVEL %q", v))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every required setting that is missing.
func (c *Config) Validate() error {
	var errs []error
	required := []struct{ key, value string }{
		{"DB_USER", c.DBUser},
		{"DB_HOST", c.DBHost},
		{"DB_NAME", c.DBName},
		{"S3_BUCKET_NAME", c.S3BucketName},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, fmt.Errorf("%s environment variable not set", r.key))
		}
	}
	return errors.Join(errs...)
}

// DatabaseDSN returns the PostgreSQL connection URL for pgx.
func (c *Config) DatabaseDSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DBUser, c.DBPass),
		Host:   net.JoinHostPort(c.DBHost, c.DBPort),
		Path:   "/" + c.DBName,
	}
	if c.DBSSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {c.DBSSLMode}}.Encode()
	}
	return u.String()
}

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
