package config

import "slices"

// Config is the option snapshot for a single run. It is resolved once at
// startup and treated as immutable afterward; use the With* methods to
// derive a modified copy for command-line overrides.
type Config struct {
	// ReplaceSpaces collapses every whitespace run in a base name into a
	// single underscore before case conversion.
	ReplaceSpaces bool

	// Timestamp prepends a YYYY_MM_DD__ prefix derived from the file's
	// modification time.
	Timestamp bool

	// ExeExtensions lists extensions (lowercase, no leading dot) whose
	// files are classified as executables.
	ExeExtensions []string

	// PackageMarkers lists manifest file names that mark a directory as a
	// package root. Order is significant: when a directory holds more than
	// one marker, the first entry in this list wins.
	PackageMarkers []string
}

// WithTimestamp returns a copy of the configuration with the timestamp
// option set.
func (c *Config) WithTimestamp(enabled bool) *Config {
	out := c.clone()
	out.Timestamp = enabled
	return out
}

// WithReplaceSpaces returns a copy of the configuration with the
// replace-spaces option set.
func (c *Config) WithReplaceSpaces(enabled bool) *Config {
	out := c.clone()
	out.ReplaceSpaces = enabled
	return out
}

func (c *Config) clone() *Config {
	return &Config{
		ReplaceSpaces:  c.ReplaceSpaces,
		Timestamp:      c.Timestamp,
		ExeExtensions:  slices.Clone(c.ExeExtensions),
		PackageMarkers: slices.Clone(c.PackageMarkers),
	}
}
