package internal

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// LoadDotEnv loads variables from envPath into the process environment. A missing file is not an error,
// and variables that are already set are left alone.
func LoadDotEnv(envPath string) error {
	if _, err := os.Stat(envPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return err
	}

	if err := godotenv.Load(envPath); err != nil {
		return err
	}

	log.Debug("Loaded environment file", "path", envPath)

	return nil
}

// GetEnv returns the trimmed value of key, or defaultValue when it is unset or blank
func GetEnv(key string, defaultValue string) string {
	return FirstNonEmpty(os.Getenv(key), defaultValue)
}

// FirstNonEmpty returns the first value that isn't blank, trimmed
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}

	return ""
}
