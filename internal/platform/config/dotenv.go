package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads KEY=VALUE files into the process environment before any Conf is read.
// Missing files are skipped and variables already set are never overridden.
// It returns the files that were applied, in order
func LoadDotEnv(paths ...string) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	var loaded []string
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return loaded, fmt.Errorf("config: stat %s: %w", p, err)
		}
		if err := godotenv.Load(p); err != nil {
			return loaded, fmt.Errorf("config: load %s: %w", p, err)
		}
		loaded = append(loaded, p)
	}
	return loaded, nil
}
