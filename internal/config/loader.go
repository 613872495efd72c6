package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Recognized override-file keys. Unrecognized keys are ignored so older
// binaries keep working against newer config files.
const (
	keyReplaceSpaces  = "replace_spaces"
	keyTimestamp      = "timestamp"
	keyExeExtensions  = "exe_extensions"
	keyPackageMarkers = "package_markers"
)

// Resolve merges built-in defaults with the override file at path and
// validates the result. An empty path means defaults only. A missing or
// malformed override file is fatal: the caller asked for it explicitly.
func Resolve(path string, log *slog.Logger) (*Config, error) {
	cfg := NewDefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		values, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
		if err := applyOverrides(cfg, values, log); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyOverrides writes recognized keys from the override file into cfg.
func applyOverrides(cfg *Config, values map[string]string, log *slog.Logger) error {
	for key, value := range values {
		switch key {
		case keyReplaceSpaces:
			b, err := parseBool(key, value)
			if err != nil {
				return err
			}
			cfg.ReplaceSpaces = b
		case keyTimestamp:
			b, err := parseBool(key, value)
			if err != nil {
				return err
			}
			cfg.Timestamp = b
		case keyExeExtensions:
			cfg.ExeExtensions = parseList(value)
		case keyPackageMarkers:
			cfg.PackageMarkers = parseList(value)
		default:
			log.Debug("ignoring unrecognized config key", "key", key)
		}
	}
	return nil
}

func parseBool(key, value string) (bool, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, &ValidationError{
			Field:   key,
			Message: "expected a boolean",
			Value:   value,
			Wrapped: ErrInvalidConfig,
		}
	}
	return b, nil
}

// parseList splits a comma-separated value, trimming whitespace and
// dropping empty elements.
func parseList(value string) []string {
	var out []string
	for part := range strings.SplitSeq(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
