package pipeline

import (
	"path/filepath"
	"slices"

	"github.com/krakjn/filenamefmt/internal/walker"
)

// Decision is the collision resolver's verdict for one candidate name.
type Decision int

const (
	// DecisionAccept clears the candidate for execution.
	DecisionAccept Decision = iota
	// DecisionNoop means the candidate equals the current name.
	DecisionNoop
	// DecisionCollision means a different entry occupies the candidate
	// name; the file is skipped, never suffixed.
	DecisionCollision
)

// Resolver validates candidate names against each directory's listing
// snapshot plus the renames accepted earlier in the same run. Working from
// the snapshot rather than re-reading the directory keeps preview and
// apply runs in lockstep: both modes see the same occupancy whether or not
// earlier plans actually moved files.
type Resolver struct {
	claimed map[string]string // target path -> source path that claimed it
	vacated map[string]bool   // source paths of accepted plans
}

// NewResolver creates an empty resolver for one run.
func NewResolver() *Resolver {
	return &Resolver{
		claimed: make(map[string]string),
		vacated: make(map[string]bool),
	}
}

// Resolve decides whether desc may take newName. An accepted candidate
// claims the target path so later files in the run cannot take it too.
func (r *Resolver) Resolve(desc walker.FileDescriptor, newName string) Decision {
	if newName == desc.Name {
		return DecisionNoop
	}

	target := filepath.Join(desc.Dir, newName)
	if owner, ok := r.claimed[target]; ok && owner != desc.Path {
		return DecisionCollision
	}
	if slices.Contains(desc.Siblings, newName) && !r.vacated[target] {
		return DecisionCollision
	}

	r.claimed[target] = desc.Path
	r.vacated[desc.Path] = true
	return DecisionAccept
}
