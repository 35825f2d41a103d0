package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port             string
	DatabaseURL      string // empty selects the in-memory store
	Radix            int
	TableCompression string
}

// Load reads the NHUFF_* environment variables.
func Load() (Config, error) {
	cfg := Config{
		Port:             getenv("NHUFF_PORT", "8080"),
		DatabaseURL:      os.Getenv("NHUFF_DATABASE_URL"),
		Radix:            2,
		TableCompression: getenv("NHUFF_TABLE_COMPRESSION", "zstd"),
	}
	if v := os.Getenv("NHUFF_RADIX"); v != "" {
		d, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("NHUFF_RADIX: %w", err)
		}
		cfg.Radix = d
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
