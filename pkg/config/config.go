package config

import (
	"errors"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var (
	once     sync.Once
	instance *Config
)

const envFile = "./configs/.env"

type Config struct {
}

// New loads ./configs/.env once. Variables already present in the
// environment win over the file; a missing file is fine.
func New() *Config {
	once.Do(func() {
		instance = load(envFile)
	})
	return instance
}

func load(path string) *Config {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatal("loading envs error: ", err)
	}
	if err != nil {
		slog.Info("no env file, using process environment", slog.String("path", path))
	}
	return &Config{}
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

// GetStringOr returns def when key is unset or empty.
func (c *Config) GetStringOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) GetInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid int config value, using default", slog.String("key", key), slog.Int("default", def))
		return def
	}
	return n
}

// GetDuration parses values like "15s" or "2m".
func (c *Config) GetDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid duration config value, using default", slog.String("key", key), slog.Duration("default", def))
		return def
	}
	return d
}

// GetLocation resolves an IANA zone name, UTC when unset.
func (c *Config) GetLocation(key string) (*time.Location, error) {
	v := os.Getenv(key)
	if v == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(v)
}
