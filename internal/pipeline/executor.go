package pipeline

import (
	"os"
)

// Reporter emits the user-facing report lines. The ui package provides the
// styled implementation; tests substitute a recorder.
type Reporter interface {
	WouldRename(oldPath, newName string)
	Renamed(oldPath, newName string)
	Warnf(format string, args ...any)
}

// Executor carries accepted plans to their terminal state. Preview mode
// only reports; apply mode performs each rename as a single atomic
// filesystem operation. A failed rename is reported and the run continues.
type Executor struct {
	mode Mode
	rep  Reporter
}

// NewExecutor creates an Executor for the given mode.
func NewExecutor(mode Mode, rep Reporter) *Executor {
	return &Executor{mode: mode, rep: rep}
}

// Execute moves p to its terminal state and returns whether the intended
// change took effect (or would, in preview mode).
func (e *Executor) Execute(p *Plan) bool {
	if e.mode == ModePreview {
		e.rep.WouldRename(p.OldPath(), p.NewName)
		p.State = StateReported
		return true
	}

	target := p.NewPath()

	// The snapshot said the name was free; re-check live state in case an
	// entry appeared since the directory was listed.
	if fi, err := os.Stat(target); err == nil {
		src, serr := os.Stat(p.OldPath())
		if serr != nil || !os.SameFile(fi, src) {
			e.rep.Warnf("cannot rename %s: target %s appeared concurrently", p.OldPath(), target)
			p.State = StateFailed
			return false
		}
	}

	if err := os.Rename(p.OldPath(), target); err != nil {
		e.rep.Warnf("rename failed for %s: %v", p.OldPath(), err)
		p.State = StateFailed
		return false
	}

	e.rep.Renamed(p.OldPath(), p.NewName)
	p.State = StateApplied
	return true
}
