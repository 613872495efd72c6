package pipeline

import (
	"log/slog"

	"github.com/krakjn/filenamefmt/internal/classify"
	"github.com/krakjn/filenamefmt/internal/config"
	"github.com/krakjn/filenamefmt/internal/transform"
	"github.com/krakjn/filenamefmt/internal/walker"
)

// Runner wires the walker, classifier, transformer, collision resolver and
// executor into one sequential pass over the tree.
type Runner struct {
	cfg         *config.Config
	walker      *walker.Walker
	classifier  *classify.Classifier
	transformer *transform.Transformer
	exec        *Executor
	rep         Reporter
	log         *slog.Logger
}

// NewRunner builds a Runner for one invocation. Both modes share the exact
// same classification, transformation and collision path, so a preview run
// reports precisely the set of changes an apply run would make against an
// unchanged tree.
func NewRunner(cfg *config.Config, mode Mode, rep Reporter, log *slog.Logger) *Runner {
	return &Runner{
		cfg:         cfg,
		walker:      walker.New(log),
		classifier:  classify.New(cfg),
		transformer: transform.New(cfg),
		exec:        NewExecutor(mode, rep),
		rep:         rep,
		log:         log,
	}
}

// Run processes every regular file under root and returns the aggregate
// summary. The returned error is fatal (invalid root); per-file problems
// only surface as warnings and summary counts.
func (r *Runner) Run(root string) (RunSummary, error) {
	var summary RunSummary
	resolver := NewResolver()

	err := r.walker.Walk(root, func(desc walker.FileDescriptor) error {
		summary.Scanned++

		cat := r.classifier.Classify(desc.Name, desc.Siblings)
		newName := r.transformer.Transform(desc.Name, cat, desc.ModTime)

		switch resolver.Resolve(desc, newName) {
		case DecisionNoop:
			// Conformant already: no report line, no filesystem call.
			summary.Unchanged++
		case DecisionCollision:
			r.rep.Warnf("skipping %s: %s already exists", desc.Path, newName)
			summary.Skipped++
		case DecisionAccept:
			summary.Planned++
			plan := &Plan{Desc: desc, Category: cat, NewName: newName}
			if r.exec.Execute(plan) {
				summary.Renamed++
			} else {
				summary.Failed++
			}
		}
		return nil
	})
	if err != nil {
		return summary, err
	}

	r.log.Debug("run complete", "root", root, "summary", summary.String())
	return summary, nil
}
