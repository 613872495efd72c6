package pipeline

import (
	"path/filepath"

	"github.com/krakjn/filenamefmt/internal/classify"
	"github.com/krakjn/filenamefmt/internal/walker"
)

// State tracks a plan through the executor.
type State int

const (
	// StatePlanned is the initial state of an accepted plan.
	StatePlanned State = iota
	// StateReported means the plan was printed in preview mode.
	StateReported
	// StateApplied means the rename was performed.
	StateApplied
	// StateFailed means the rename was attempted and failed.
	StateFailed
)

// Plan is one intended rename, produced per file and consumed immediately.
type Plan struct {
	Desc     walker.FileDescriptor
	Category classify.Category
	NewName  string
	State    State
}

// OldPath returns the current path of the file.
func (p *Plan) OldPath() string { return p.Desc.Path }

// NewPath returns the path the file would move to.
func (p *Plan) NewPath() string { return filepath.Join(p.Desc.Dir, p.NewName) }

// Mode selects the executor behavior.
type Mode int

const (
	// ModePreview reports intended renames without touching the filesystem.
	ModePreview Mode = iota
	// ModeApply performs the renames.
	ModeApply
)

func (m Mode) String() string {
	if m == ModeApply {
		return "apply"
	}
	return "preview"
}
