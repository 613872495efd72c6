package pipeline

import "fmt"

// RunSummary aggregates per-file outcomes for the final report. The yaml
// tags feed the machine-readable summary output.
type RunSummary struct {
	Scanned   int `yaml:"scanned"`
	Planned   int `yaml:"planned"`
	Renamed   int `yaml:"renamed"`
	Unchanged int `yaml:"unchanged"`
	Skipped   int `yaml:"skipped"`
	Failed    int `yaml:"failed"`
}

// String renders the one-line human summary.
func (s RunSummary) String() string {
	return fmt.Sprintf("%d scanned, %d renamed, %d unchanged, %d skipped, %d failed",
		s.Scanned, s.Renamed, s.Unchanged, s.Skipped, s.Failed)
}

// OK reports whether the run completed without rename failures.
func (s RunSummary) OK() bool { return s.Failed == 0 }
