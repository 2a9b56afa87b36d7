package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables that override the config file.
const (
	EnvStoreBackend = "WORKLOG_STORE_BACKEND"
	EnvStorePath    = "WORKLOG_STORE_PATH"
)

// LoadEnv loads variables from .env files into the process environment.
// Variables already set are left alone and missing files are skipped.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}

// EnvLookup reads overrides from the process environment.
func EnvLookup(key string) (string, bool) {
	return os.LookupEnv(key)
}
