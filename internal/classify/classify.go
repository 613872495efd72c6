// Package classify assigns each file to a naming category from an ordered rule
// table. Classification depends only on the file's own name/extension and
// the captured sibling listing of its directory, never on file contents.
package classify

import "github.com/krakjn/filenamefmt/internal/config"

// Kind is the coarse category a file falls into.
type Kind int

const (
	// KindRegular is any file no other rule claims.
	KindRegular Kind = iota
	// KindExecutable is a file with a recognized executable extension.
	KindExecutable
	// KindPackageMarker is a recognized ecosystem manifest file.
	KindPackageMarker
	// KindPackageSibling is a file co-located with a package marker.
	KindPackageSibling
)

// String returns the category name for reports and tests.
func (k Kind) String() string {
	switch k {
	case KindExecutable:
		return "executable"
	case KindPackageMarker:
		return "package-marker"
	case KindPackageSibling:
		return "package-sibling"
	default:
		return "regular"
	}
}

// Ecosystem identifies the software ecosystem implied by a package marker.
type Ecosystem string

const (
	EcosystemNone   Ecosystem = ""
	EcosystemNode   Ecosystem = "node"
	EcosystemRust   Ecosystem = "rust"
	EcosystemPython Ecosystem = "python"
)

// Style is a filename casing convention.
type Style int

const (
	// StyleSnake joins lowercase words with underscores.
	StyleSnake Style = iota
	// StyleKebab joins lowercase words with hyphens.
	StyleKebab
	// StyleVerbatim leaves the name untouched.
	StyleVerbatim
)

// Category is the classification result: a kind plus the ecosystem it
// inherits, if any.
type Category struct {
	Kind      Kind
	Ecosystem Ecosystem
}

// Style returns the casing convention for names in this category.
// Executables and Node-project siblings are kebab-cased; everything else
// is snake-cased. Marker files themselves are never transformed: renaming
// a manifest would break the tooling that looks it up by exact name.
func (c Category) Style() Style {
	switch c.Kind {
	case KindPackageMarker:
		return StyleVerbatim
	case KindExecutable:
		return StyleKebab
	case KindPackageSibling:
		if c.Ecosystem == EcosystemNode {
			return StyleKebab
		}
		return StyleSnake
	default:
		return StyleSnake
	}
}

// ecosystems maps recognized marker names to their ecosystem. Markers
// added through configuration but absent here classify fine, they just
// carry no ecosystem and fall back to the snake_case default.
var ecosystems = map[string]Ecosystem{
	"package.json":   EcosystemNode,
	"Cargo.toml":     EcosystemRust,
	"pyproject.toml": EcosystemPython,
}

// EcosystemFor returns the ecosystem implied by a marker file name.
func EcosystemFor(marker string) Ecosystem {
	return ecosystems[marker]
}

// Classifier evaluates the rule table against descriptors.
type Classifier struct {
	cfg   *config.Config
	rules []rule
}

// New builds a Classifier for the given configuration snapshot.
func New(cfg *config.Config) *Classifier {
	c := &Classifier{cfg: cfg}
	c.rules = buildRules(cfg)
	return c
}

// Classify assigns a category to the named file given the sibling listing
// of its directory. Rules run in fixed priority order; the first match wins.
func (c *Classifier) Classify(name string, siblings []string) Category {
	for _, r := range c.rules {
		if cat, ok := r.match(name, siblings); ok {
			return cat
		}
	}
	return Category{Kind: KindRegular}
}
