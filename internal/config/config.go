package config

import (
	"os"
	"path/filepath"
)

type Config struct {
	// APIBaseURL is the root of the storefront backend, without the /api suffix.
	APIBaseURL string
	// StateDir holds the persisted session, address and log files.
	StateDir string
	// Addr is the listen address used by the stub backend.
	Addr string
	// JWTSecret signs stub-issued tokens.
	JWTSecret string
}

func Load() Config {
	base := os.Getenv("SMARTBUYR_API_URL")
	if base == "" {
		base = "http://localhost:8000"
	}

	stateDir := os.Getenv("SMARTBUYR_STATE_DIR")
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		stateDir = filepath.Join(home, ".smartbuyr")
	}

	addr := os.Getenv("SMARTBUYR_ADDR")
	if addr == "" {
		addr = ":8000"
	}

	return Config{
		APIBaseURL: base,
		StateDir:   stateDir,
		Addr:       addr,
		JWTSecret:  os.Getenv("JWT_SECRET"),
	}
}
