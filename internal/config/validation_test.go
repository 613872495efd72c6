package config

import (
	"errors"
	"testing"
)

func TestValidateNormalizesExtensions(t *testing.T) {
	t.Parallel()

	cfg := NewDefaultConfig()
	cfg.ExeExtensions = []string{".EXE", "Bin"}
	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.ExeExtensions[0] != "exe" || cfg.ExeExtensions[1] != "bin" {
		t.Errorf("ExeExtensions = %v, want lowercase without leading dot", cfg.ExeExtensions)
	}
}

func TestValidateRejectsBadEntries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty extension", func(c *Config) { c.ExeExtensions = []string{""} }},
		{"extension with separator", func(c *Config) { c.ExeExtensions = []string{"bin/exe"} }},
		{"empty marker", func(c *Config) { c.PackageMarkers = []string{" "} }},
		{"marker with path", func(c *Config) { c.PackageMarkers = []string{"sub/package.json"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewDefaultConfig()
			tt.mutate(cfg)
			err := Validate(cfg)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}
