package config

// Default values applied before any override file is read.
const (
	DefaultReplaceSpaces = true
	DefaultTimestamp     = false
)

// DefaultExeExtensions are the extensions treated as executables when the
// override file does not set exe_extensions.
var DefaultExeExtensions = []string{"exe", "bin", "app"}

// DefaultPackageMarkers are the recognized ecosystem manifest names, in
// tie-break priority order.
var DefaultPackageMarkers = []string{"package.json", "Cargo.toml", "pyproject.toml"}

// NewDefaultConfig returns a Config populated with built-in defaults.
// The slices are copied so callers can never alias the package-level values.
func NewDefaultConfig() *Config {
	cfg := &Config{
		ReplaceSpaces:  DefaultReplaceSpaces,
		Timestamp:      DefaultTimestamp,
		ExeExtensions:  DefaultExeExtensions,
		PackageMarkers: DefaultPackageMarkers,
	}
	return cfg.clone()
}
