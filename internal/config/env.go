package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// FromEnv resolves a Config using the lookup function. Unset variables fall back to their
// defaults; a variable that is set, even to an empty string, is used as is. A PORT value
// that is not an integer, including an empty one, is an error.
func FromEnv(lookup LookupFunc) (Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	cfg := NewConfig()

	if raw, ok := lookup(EnvPort); ok {
		port, err := parsePort(raw)
		if err != nil {
			return Config{}, err
		}
		cfg.Port = port
	}

	if v, ok := lookup(EnvMessage); ok {
		cfg.Message = v
	}

	if v, ok := lookup(EnvRelease); ok {
		cfg.Release = v
	}

	return cfg, nil
}

// LoadEnvFile loads variables from a dotenv file into the process environment.
// Variables that are already set are left untouched.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrFailedToLoadEnvFile, path, err)
	}
	return nil
}

func parsePort(raw string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidPort, EnvPort, raw)
	}
	return port, nil
}
