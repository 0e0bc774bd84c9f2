// Package config resolves process settings from the environment.
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
	// DefaultPort is used when PORT is unset or unusable.
	DefaultPort = 8080

	portEnv        = "PORT"
	defaultEnvFile = ".env"
)

// Config holds the settings the server needs at startup.
type Config struct {
	Port int
	// Warning describes a PORT value that was ignored in favour of the default.
	Warning string
}

// Addr returns the listen address for all interfaces.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// Load reads optional dotenv files (".env" when none are given) and resolves the port.
// Variables already present in the environment take precedence over file values.
// A missing dotenv file is not an error.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{defaultEnvFile}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{Port: DefaultPort}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv(), nil
}

// FromEnv resolves the configuration from the current environment only.
func FromEnv() Config {
	port, warning := parsePort(os.Getenv(portEnv))
	return Config{Port: port, Warning: warning}
}

func parsePort(raw string) (int, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultPort, ""
	}
	port, err := strconv.Atoi(raw)
	if err != nil {
		return DefaultPort, fmt.Sprintf("PORT %q is not numeric, using %d", raw, DefaultPort)
	}
	if port < 1 || port > 65535 {
		return DefaultPort, fmt.Sprintf("PORT %d is out of range, using %d", port, DefaultPort)
	}
	return port, ""
}
