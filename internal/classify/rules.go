package classify

import (
	"slices"
	"strings"

	"github.com/krakjn/filenamefmt/internal/config"
)

// rule pairs a named predicate with the category it assigns. The table is
// built once per run from the configuration and evaluated in order, which
// keeps the marker tie-break explicit and testable.
type rule struct {
	name  string
	match func(name string, siblings []string) (Category, bool)
}

func buildRules(cfg *config.Config) []rule {
	return []rule{
		{name: "package-marker", match: matchMarker(cfg)},
		{name: "executable", match: matchExecutable(cfg)},
		{name: "package-sibling", match: matchSibling(cfg)},
	}
}

// matchMarker recognizes files whose name exactly matches a configured
// package marker.
func matchMarker(cfg *config.Config) func(string, []string) (Category, bool) {
	return func(name string, _ []string) (Category, bool) {
		if slices.Contains(cfg.PackageMarkers, name) {
			return Category{Kind: KindPackageMarker, Ecosystem: EcosystemFor(name)}, true
		}
		return Category{}, false
	}
}

// matchExecutable recognizes files by extension, case-insensitively.
func matchExecutable(cfg *config.Config) func(string, []string) (Category, bool) {
	return func(name string, _ []string) (Category, bool) {
		ext := strings.ToLower(strings.TrimPrefix(extOf(name), "."))
		if ext != "" && slices.Contains(cfg.ExeExtensions, ext) {
			return Category{Kind: KindExecutable}, true
		}
		return Category{}, false
	}
}

// matchSibling recognizes files co-located with a package marker. When a
// directory holds several markers, the first one in the configured marker
// list decides the ecosystem; iteration over cfg.PackageMarkers rather
// than over the sibling set is what makes the tie-break deterministic.
func matchSibling(cfg *config.Config) func(string, []string) (Category, bool) {
	return func(name string, siblings []string) (Category, bool) {
		for _, marker := range cfg.PackageMarkers {
			if marker == name {
				continue
			}
			if slices.Contains(siblings, marker) {
				return Category{Kind: KindPackageSibling, Ecosystem: EcosystemFor(marker)}, true
			}
		}
		return Category{}, false
	}
}

// extOf mirrors the walker's extension rule: dotfiles have no extension.
func extOf(name string) string {
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		return name[i:]
	}
	return ""
}
