package config

import "strings"

// Validate checks the configuration for correctness and normalizes the
// detection lists in place (lowercased extensions without a leading dot).
// It is called once by Resolve, before the snapshot is handed out.
func Validate(cfg *Config) error {
	for i, ext := range cfg.ExeExtensions {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext == "" {
			return &ValidationError{
				Field:   keyExeExtensions,
				Message: "extension entries must be non-empty",
				Wrapped: ErrInvalidConfig,
			}
		}
		if strings.ContainsAny(ext, "/\\") {
			return &ValidationError{
				Field:   keyExeExtensions,
				Message: "extension entries must not contain path separators",
				Value:   ext,
				Wrapped: ErrInvalidConfig,
			}
		}
		cfg.ExeExtensions[i] = ext
	}

	for _, marker := range cfg.PackageMarkers {
		if strings.TrimSpace(marker) == "" {
			return &ValidationError{
				Field:   keyPackageMarkers,
				Message: "marker entries must be non-empty",
				Wrapped: ErrInvalidConfig,
			}
		}
		if strings.ContainsAny(marker, "/\\") {
			return &ValidationError{
				Field:   keyPackageMarkers,
				Message: "marker entries must be bare file names",
				Value:   marker,
				Wrapped: ErrInvalidConfig,
			}
		}
	}
	return nil
}
