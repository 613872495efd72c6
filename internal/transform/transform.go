// Package transform computes candidate filenames. The pipeline runs in a
// fixed order: whitespace handling, case conversion for the resolved
// category, then the optional date prefix. Re-applying the pipeline to its
// own output is guaranteed to change nothing; that idempotence is the
// property the rest of the system leans on.
package transform

import (
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/krakjn/filenamefmt/internal/classify"
	"github.com/krakjn/filenamefmt/internal/config"
)

// datePrefixLayout is the fixed YYYY_MM_DD layout of the timestamp prefix.
const datePrefixLayout = "2006_01_02"

// datePrefix matches an already-present timestamp prefix. It is split off
// before any other step so case conversion never resplits its digits and a
// second run never stacks a new prefix on top.
var datePrefix = regexp.MustCompile(`^\d{4}_\d{2}_\d{2}__`)

// Transformer computes candidate names under one configuration snapshot.
type Transformer struct {
	cfg *config.Config
	now func() time.Time // injectable for tests
}

// New creates a Transformer for the given configuration.
func New(cfg *config.Config) *Transformer {
	return &Transformer{cfg: cfg, now: time.Now}
}

// Transform returns the candidate name for name under the given category.
// modTime feeds the timestamp prefix; a zero value falls back to the
// current date. The extension is preserved verbatim, never case-converted.
// Package-marker files are returned untouched: tooling resolves manifests
// by exact name.
func (t *Transformer) Transform(name string, cat classify.Category, modTime time.Time) string {
	style := cat.Style()
	if style == classify.StyleVerbatim {
		return name
	}

	ext := extOf(name)
	base := strings.TrimSuffix(name, ext)

	prefix := datePrefix.FindString(base)
	base = base[len(prefix):]

	if t.cfg.ReplaceSpaces {
		base = wsRun.ReplaceAllString(base, "_")
		base = recase(base, style)
	} else {
		base = recaseSegments(base, style)
	}

	if t.cfg.Timestamp && prefix == "" {
		when := modTime
		if when.IsZero() {
			when = t.now()
		}
		prefix = when.Format(datePrefixLayout) + "__"
	}

	return norm.NFC.String(prefix + base + ext)
}

// extOf returns the extension of name. Dotfiles like ".env" count as
// extensionless so their whole name participates in case conversion.
func extOf(name string) string {
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		return name[i:]
	}
	return ""
}
