// Package walker enumerates regular files under a root path in a lazy,
// depth-first, pre-order traversal. Each directory's listing is captured
// once on entry; classification downstream works entirely from that
// snapshot, so renames performed later in the same pass never perturb
// decisions about already-visited siblings.
package walker

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// FileDescriptor identifies one regular file encountered during traversal.
// Identity is the absolute path; the struct is immutable once yielded.
type FileDescriptor struct {
	Path    string    // absolute path of the file
	Name    string    // base name within Dir
	Ext     string    // extension including the leading dot, "" if none
	Dir     string    // absolute parent directory
	ModTime time.Time // modification time at visit, zero if stat failed

	// Siblings is the sorted name listing of Dir captured on entry,
	// including Name itself and any subdirectory names.
	Siblings []string
}

// VisitFunc receives one descriptor per file. Returning a non-nil error
// aborts the remainder of the walk.
type VisitFunc func(desc FileDescriptor) error

// Walker performs the traversal. Skipped entries (symlinks, unreadable
// directories, failed stats) are logged as warnings, never fatal.
type Walker struct {
	log *slog.Logger
}

// New creates a Walker that reports skipped entries through log.
func New(log *slog.Logger) *Walker {
	return &Walker{log: log}
}

// Walk traverses root depth-first in pre-order, calling fn for every
// regular file. Files in a directory are yielded before its
// subdirectories are descended into; directories themselves are never
// yielded. A root that is itself a regular file yields exactly that file,
// with siblings taken from its parent directory.
func (w *Walker) Walk(root string, fn VisitFunc) error {
	abs, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("walker: resolve root %s: %w", root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("walker: invalid root path %s: %w", root, err)
	}

	if !info.IsDir() {
		dir := filepath.Dir(abs)
		names, err := listNames(dir)
		if err != nil {
			return fmt.Errorf("walker: read %s: %w", dir, err)
		}
		return fn(w.describe(dir, filepath.Base(abs), names))
	}
	return w.walkDir(abs, fn)
}

// walkDir snapshots dir, yields its regular files, then recurses into its
// subdirectories in listing order.
func (w *Walker) walkDir(dir string, fn VisitFunc) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		w.log.Warn("skipping unreadable directory", "path", dir, "error", err)
		return nil
	}

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}

	var subdirs []string
	for _, e := range entries {
		switch {
		case e.IsDir():
			subdirs = append(subdirs, e.Name())
		case e.Type()&fs.ModeSymlink != 0:
			w.log.Warn("skipping symbolic link", "path", filepath.Join(dir, e.Name()))
		case !e.Type().IsRegular():
			w.log.Warn("skipping irregular entry", "path", filepath.Join(dir, e.Name()))
		default:
			if err := fn(w.describe(dir, e.Name(), names)); err != nil {
				return err
			}
		}
	}

	for _, sub := range subdirs {
		if err := w.walkDir(filepath.Join(dir, sub), fn); err != nil {
			return err
		}
	}
	return nil
}

// describe builds a FileDescriptor for name in dir against the given
// sibling snapshot.
func (w *Walker) describe(dir, name string, siblings []string) FileDescriptor {
	path := filepath.Join(dir, name)
	desc := FileDescriptor{
		Path:     path,
		Name:     name,
		Ext:      extOf(name),
		Dir:      dir,
		Siblings: siblings,
	}
	if info, err := os.Stat(path); err == nil {
		desc.ModTime = info.ModTime()
	} else {
		w.log.Warn("stat failed, modification time unavailable", "path", path, "error", err)
	}
	return desc
}

// extOf returns the extension of name, treating dotfiles like ".bashrc"
// as having no extension.
func extOf(name string) string {
	ext := filepath.Ext(name)
	if ext == name {
		return ""
	}
	return ext
}

func listNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names, nil
}
