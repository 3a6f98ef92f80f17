package common

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read after .env is loaded.
const (
	EnvConfig = "PLATFORMER_CONFIG"
	EnvAssets = "PLATFORMER_ASSETS"
	EnvSeed   = "PLATFORMER_SEED"
)

// LoadEnv loads the given .env files (or ./.env) into the process
// environment. A missing file is not an error.
func LoadEnv(files ...string) error {
	err := godotenv.Load(files...)
	if err == nil {
		log.Println("loaded environment overrides")
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// EnvString returns the trimmed value of key, or def when unset or blank.
func EnvString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// EnvInt64 parses key as an integer, falling back to def.
func EnvInt64(key string, def int64) (int64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
