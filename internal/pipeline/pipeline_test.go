package pipeline

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/krakjn/filenamefmt/internal/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recorder captures report lines for assertions.
type recorder struct {
	would   []string
	renamed []string
	warns   []string
}

func (r *recorder) WouldRename(oldPath, newName string) {
	r.would = append(r.would, filepath.Base(oldPath)+" -> "+newName)
}

func (r *recorder) Renamed(oldPath, newName string) {
	r.renamed = append(r.renamed, filepath.Base(oldPath)+" -> "+newName)
}

func (r *recorder) Warnf(format string, args ...any) {
	r.warns = append(r.warns, fmt.Sprintf(format, args...))
}

// writeTree creates the given relative file paths under a temp root.
func writeTree(t *testing.T, paths []string) string {
	t.Helper()
	root := t.TempDir()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(full, []byte(p), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	return root
}

// snapshot returns all relative paths under root, sorted.
func snapshot(t *testing.T, root string) []string {
	t.Helper()
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, rerr := filepath.Rel(root, path)
		if rerr != nil {
			return rerr
		}
		if rel != "." {
			paths = append(paths, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	slices.Sort(paths)
	return paths
}

func run(t *testing.T, cfg *config.Config, mode Mode, root string) (RunSummary, *recorder) {
	t.Helper()
	rec := &recorder{}
	summary, err := NewRunner(cfg, mode, rec, testLogger()).Run(root)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return summary, rec
}

func TestPreviewDoesNotTouchFilesystem(t *testing.T) {
	t.Parallel()

	root := writeTree(t, []string{
		"My Document.txt",
		"sub/Another File.md",
	})
	before := snapshot(t, root)

	summary, rec := run(t, config.NewDefaultConfig(), ModePreview, root)

	if !slices.Equal(before, snapshot(t, root)) {
		t.Error("preview run mutated the filesystem")
	}
	if summary.Renamed != 2 || len(rec.would) != 2 {
		t.Errorf("summary = %+v, would = %v", summary, rec.would)
	}
	if len(rec.renamed) != 0 {
		t.Errorf("preview emitted rename confirmations: %v", rec.renamed)
	}
}

func TestApplyRenamesFiles(t *testing.T) {
	t.Parallel()

	root := writeTree(t, []string{
		"My Document.txt",
		"sub/Another File.md",
		"sub/deep/MixedCaseName.txt",
	})

	summary, rec := run(t, config.NewDefaultConfig(), ModeApply, root)

	want := []string{
		"my_document.txt",
		"sub",
		"sub/another_file.md",
		"sub/deep",
		"sub/deep/mixed_case_name.txt",
	}
	if got := snapshot(t, root); !slices.Equal(got, want) {
		t.Errorf("tree after apply = %v, want %v", got, want)
	}
	if summary.Renamed != 3 || summary.Failed != 0 {
		t.Errorf("summary = %+v", summary)
	}
	if len(rec.renamed) != 3 {
		t.Errorf("renamed lines = %v", rec.renamed)
	}
}

func TestPreviewApplyEquivalence(t *testing.T) {
	t.Parallel()

	paths := []string{
		"Some File.txt",
		"Another-Doc.md",
		"nested/CamelCase.rs",
		"nested/plain.txt",
	}
	previewRoot := writeTree(t, paths)
	applyRoot := writeTree(t, paths)

	_, previewRec := run(t, config.NewDefaultConfig(), ModePreview, previewRoot)
	_, applyRec := run(t, config.NewDefaultConfig(), ModeApply, applyRoot)

	would := slices.Clone(previewRec.would)
	applied := slices.Clone(applyRec.renamed)
	slices.Sort(would)
	slices.Sort(applied)
	if !slices.Equal(would, applied) {
		t.Errorf("preview pairs %v != applied pairs %v", would, applied)
	}
}

func TestCollisionIsSkippedNotSuffixed(t *testing.T) {
	t.Parallel()

	root := writeTree(t, []string{
		"My File.txt",  // candidate my_file.txt collides
		"my_file.txt",  // conformant occupant
	})

	summary, rec := run(t, config.NewDefaultConfig(), ModeApply, root)

	want := []string{"My File.txt", "my_file.txt"}
	if got := snapshot(t, root); !slices.Equal(got, want) {
		t.Errorf("tree after apply = %v, want untouched %v", got, want)
	}
	if summary.Skipped != 1 || summary.Unchanged != 1 || summary.Renamed != 0 {
		t.Errorf("summary = %+v", summary)
	}
	if len(rec.warns) != 1 {
		t.Errorf("warnings = %v, want one collision warning", rec.warns)
	}
}

func TestConformantNamesAreSilentNoops(t *testing.T) {
	t.Parallel()

	root := writeTree(t, []string{
		"already_fine.txt",
		"my-tool.exe",
	})

	summary, rec := run(t, config.NewDefaultConfig(), ModePreview, root)

	if summary.Unchanged != 2 || summary.Renamed != 0 {
		t.Errorf("summary = %+v", summary)
	}
	if len(rec.would) != 0 || len(rec.warns) != 0 {
		t.Errorf("conformant files produced output: would=%v warns=%v", rec.would, rec.warns)
	}
}

func TestPackageContextCasing(t *testing.T) {
	t.Parallel()

	root := writeTree(t, []string{
		"rustproj/Cargo.toml",
		"rustproj/src file.rs",
		"nodeproj/package.json",
		"nodeproj/main file.js",
	})

	_, rec := run(t, config.NewDefaultConfig(), ModeApply, root)

	want := []string{
		"nodeproj",
		"nodeproj/main-file.js",
		"nodeproj/package.json",
		"rustproj",
		"rustproj/Cargo.toml",
		"rustproj/src_file.rs",
	}
	if got := snapshot(t, root); !slices.Equal(got, want) {
		t.Errorf("tree after apply = %v, want %v", got, want)
	}
	if len(rec.renamed) != 2 {
		t.Errorf("renamed = %v, want the two sibling files only", rec.renamed)
	}
}

func TestReplaceSpacesDisabledLeavesSpacedNames(t *testing.T) {
	t.Parallel()

	root := writeTree(t, []string{"file with spaces.txt"})

	summary, _ := run(t, config.NewDefaultConfig().WithReplaceSpaces(false), ModeApply, root)

	if got := snapshot(t, root); !slices.Equal(got, []string{"file with spaces.txt"}) {
		t.Errorf("tree = %v, want name untouched", got)
	}
	if summary.Unchanged != 1 {
		t.Errorf("summary = %+v", summary)
	}
}

func TestTimestampRun(t *testing.T) {
	t.Parallel()

	root := writeTree(t, []string{"Report Draft.txt"})

	summary, rec := run(t, config.NewDefaultConfig().WithTimestamp(true), ModeApply, root)
	if summary.Renamed != 1 {
		t.Fatalf("summary = %+v", summary)
	}

	got := snapshot(t, root)
	if len(got) != 1 {
		t.Fatalf("tree = %v", got)
	}
	matched, err := filepath.Match("????_??_??__report_draft.txt", got[0])
	if err != nil || !matched {
		t.Errorf("renamed to %q, want date-prefixed name (rec=%v)", got[0], rec.renamed)
	}

	// A second run is a complete no-op.
	again, _ := run(t, config.NewDefaultConfig().WithTimestamp(true), ModeApply, root)
	if again.Renamed != 0 || again.Unchanged != 1 {
		t.Errorf("second run summary = %+v, want pure no-op", again)
	}
}

func TestDirectoriesAreNeverRenamed(t *testing.T) {
	t.Parallel()

	root := writeTree(t, []string{"Messy Dir Name/inner file.txt"})

	_, _ = run(t, config.NewDefaultConfig(), ModeApply, root)

	want := []string{"Messy Dir Name", "Messy Dir Name/inner_file.txt"}
	if got := snapshot(t, root); !slices.Equal(got, want) {
		t.Errorf("tree = %v, want directory name untouched", got)
	}
}

func TestRunInvalidRoot(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	_, err := NewRunner(config.NewDefaultConfig(), ModePreview, rec, testLogger()).
		Run(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Error("Run() on missing root should fail")
	}
}
