package iconport

import (
	"fmt"

	"github.com/gucio321/iconport/pkg/importer"
)

// Task is a single source icon and where its migrated version goes.
type Task struct {
	Source   string
	Output   string
	Category string
}

// WarningKind classifies a non-fatal problem.
type WarningKind int

const (
	MissingSizing WarningKind = iota
	OracleUnavailable
	UnidentifiedElement
	Baseplate
	Placeholder
	NoDrawable
)

func (k WarningKind) String() string {
	switch k {
	case MissingSizing:
		return "missing-sizing"
	case OracleUnavailable:
		return "oracle-unavailable"
	case UnidentifiedElement:
		return "unidentified-element"
	case Baseplate:
		return "baseplate"
	case Placeholder:
		return "placeholder"
	case NoDrawable:
		return "no-drawable"
	}

	return fmt.Sprintf("WarningKind(%d)", int(k))
}

// Warning is a problem that did not stop the icon from being migrated.
type Warning struct {
	Path    string
	Kind    WarningKind
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s: %s", w.Path, w.Kind, w.Message)
}

// Result is the outcome of one Task.
type Result struct {
	Task       Task
	Placements []importer.Placement
	// Pruned lists ids removed from the source (or that would be, in a dry run).
	Pruned       []string
	Unidentified int
	Warnings     []Warning
	Err          error
	DryRun       bool
	Written      bool
}

func (r *Result) warn(kind WarningKind, format string, args ...any) {
	r.Warnings = append(r.Warnings, Warning{
		Path:    r.Task.Source,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	})
}

// Failed returns the results that carry an error.
func Failed(results []Result) []Result {
	var result []Result
	for _, r := range results {
		if r.Err != nil {
			result = append(result, r)
		}
	}

	return result
}
