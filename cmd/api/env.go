package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// loadDotEnv loads the file named by POOLBALANCE_ENV_FILE, or .env, when it
// exists. Variables already set in the process environment win.
func loadDotEnv() error {
	path := os.Getenv("POOLBALANCE_ENV_FILE")
	if path == "" {
		path = ".env"
	}

	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
