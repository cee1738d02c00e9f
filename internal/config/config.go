package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StoreMemory   = "memory"
	StoreFile     = "file"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

type Config struct {
	HTTPAddr     string
	Store        string
	StoreKey     string
	FilePath     string
	SQLitePath   string
	DatabaseURL  string
	KafkaBrokers []string // empty disables event publishing
	LogLevel     string
	Development  bool
}

// Load reads the given .env files (".env" when none are named) into the
// process environment, then builds a Config from it. Missing env files are
// not an error; variables already set in the environment win.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables only.
func FromEnv() (Config, error) {
	cfg := Config{
		HTTPAddr:     GetEnv("GPA_HTTP_ADDR", ":8080"),
		Store:        strings.ToLower(GetEnv("GPA_STORE", StoreMemory)),
		StoreKey:     GetEnv("GPA_STORE_KEY", "gpaSubjects"),
		FilePath:     GetEnv("GPA_FILE_PATH", "gpa_subjects.json"),
		SQLitePath:   GetEnv("GPA_SQLITE_PATH", "gpa.db"),
		DatabaseURL:  GetEnv("DATABASE_URL"),
		KafkaBrokers: splitList(GetEnv("GPA_KAFKA_BROKERS")),
		LogLevel:     GetEnv("GPA_LOG_LEVEL", "info"),
	}

	if v := GetEnv("GPA_DEV"); v != "" {
		dev, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("GPA_DEV: %w", err)
		}
		cfg.Development = dev
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Store {
	case StoreMemory, StoreFile, StoreSQLite:
	case StorePostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required when GPA_STORE=postgres")
		}
	default:
		return fmt.Errorf("unknown GPA_STORE %q", c.Store)
	}
	if c.StoreKey == "" {
		return errors.New("GPA_STORE_KEY must not be empty")
	}
	return nil
}

// GetEnv returns the variable or the first default when it is unset.
func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
