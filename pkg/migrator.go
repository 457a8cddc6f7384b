// Package iconport migrates Mint-X style icons into a Mint-Y style
// multi-baseplate master template.
//
// A Migrator holds the parsed template and the options of a run; Run walks a
// source file or directory and migrates every candidate icon in turn.
package iconport

import (
	"context"
	"fmt"
	"os"

	"github.com/kpango/glg"

	"github.com/gucio321/iconport/pkg/config"
	"github.com/gucio321/iconport/pkg/importer"
	"github.com/gucio321/iconport/pkg/placement"
	"github.com/gucio321/iconport/pkg/prune"
	"github.com/gucio321/iconport/pkg/svgdoc"
	"github.com/gucio321/iconport/pkg/template"
	"github.com/gucio321/iconport/pkg/tree"
)

type Migrator struct {
	tpl    *template.Template
	opts   config.Options
	bounds prune.BoundsProvider
}

func NewMigrator(tpl *template.Template, opts config.Options) *Migrator {
	return &Migrator{
		tpl:  tpl,
		opts: opts,
	}
}

// WithBounds sets the provider used when pruning is enabled.
func (m *Migrator) WithBounds(p prune.BoundsProvider) *Migrator {
	m.bounds = p
	return m
}

// LoadTemplate reads the master template; every failure is a configuration error.
func LoadTemplate(path string) (*template.Template, error) {
	tpl, err := template.Load(path)
	if err != nil {
		return nil, configErr("template: %w", err)
	}

	return tpl, nil
}

// Run plans and migrates every icon found at source. The error is non-nil
// only for configuration problems or a cancelled context; per-icon failures
// are reported through Result.Err.
func (m *Migrator) Run(ctx context.Context, source, output string) ([]Result, error) {
	tasks, err := m.Plan(source, output)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(tasks))
	for _, task := range tasks {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		glg.Infof("Migrating: %s -> %s", task.Source, task.Output)
		r := m.MigrateOne(ctx, task)
		for _, w := range r.Warnings {
			glg.Warnf("%s", w)
		}

		if r.Err != nil {
			glg.Errorf("%v", r.Err)
		}

		results = append(results, r)
	}

	return results, nil
}

// MigrateOne migrates a single icon. It never panics on bad input; problems
// end up in the result.
func (m *Migrator) MigrateOne(ctx context.Context, task Task) Result {
	result := Result{Task: task, DryRun: m.opts.DryRun}

	// 1.0: read the source icon
	data, err := os.ReadFile(task.Source)
	if err != nil {
		result.Err = fmt.Errorf("%s: %w", task.Source, err)
		return result
	}

	src, err := svgdoc.Parse(data)
	if err != nil {
		result.Err = fmt.Errorf("%s: %w", task.Source, err)
		return result
	}

	// 2.0: how big is it?
	sizing := placement.SizingOf(src.Root())
	if sizing.Kind == placement.Unsized {
		result.warn(MissingSizing, "no viewBox, width or height; placing without scaling")
	}

	if len(svgdoc.Drawables(src.Root())) == 0 {
		result.warn(NoDrawable, "nothing to import")
	}

	// 3.0: drop what lies outside the canvas
	if m.opts.PruneOutside {
		m.prune(ctx, src, sizing, &result)
	}

	// 4.0: where does it go?
	tpl := m.tpl.Document()
	placements := m.plan(tpl, sizing, &result)
	result.Placements = placements
	for _, p := range placements {
		glg.Debugf("%s: %s at %s", task.Source, p.Baseplate.ID, p.Transform)
	}

	for _, role := range []template.Role{template.RoleContext, template.RoleIconName} {
		if template.FindPlaceholder(tpl, role) == nil {
			result.warn(Placeholder, "template has no %s placeholder", role)
		}
	}

	// 5.0: merge
	merged, err := importer.Import(src, tpl, placements, importer.Metadata{
		IconName: tree.IconName(task.Source),
		Category: task.Category,
	}, importer.Options{PreserveTemplateDefs: m.opts.PreserveTemplateDefs})
	if err != nil {
		result.Err = fmt.Errorf("%s: %w", task.Source, err)
		return result
	}

	out, err := merged.Bytes()
	if err != nil {
		result.Err = fmt.Errorf("%s: serializing: %w", task.Source, err)
		return result
	}

	// 6.0: write
	if m.opts.DryRun {
		glg.Infof("Dry run: would write %s (%d placements, %d pruned)", task.Output, len(placements), len(result.Pruned))
		return result
	}

	if err := writeFile(task.Output, out); err != nil {
		result.Err = fmt.Errorf("%s: %w", task.Source, err)
		return result
	}

	result.Written = true

	// N.N: return
	return result
}

func (m *Migrator) prune(ctx context.Context, src *svgdoc.Document, sizing placement.Sizing, result *Result) {
	vb, ok := sizing.Box()
	if !ok {
		result.warn(MissingSizing, "pruning skipped: source has no canvas")
		return
	}

	report, err := prune.Prune(ctx, src, vb, m.opts.PruneMargin, m.bounds)
	if err != nil {
		result.warn(OracleUnavailable, "pruning skipped: %v", err)
		return
	}

	result.Pruned = report.Removed()
	result.Unidentified = report.Unidentified
	if report.Unidentified > 0 {
		result.warn(UnidentifiedElement, "%d elements without id were not checked", report.Unidentified)
	}
}

func (m *Migrator) plan(tpl *svgdoc.Document, sizing placement.Sizing, result *Result) []importer.Placement {
	baseplates, notes := template.FindBaseplates(tpl)
	for _, n := range notes {
		result.warn(Baseplate, "%s", n)
	}

	if len(baseplates) == 0 && m.opts.LargestRectFallback {
		if b, ok := template.LargestRect(tpl); ok {
			result.warn(Baseplate, "no rectNxN baseplate, using the largest rect %s", b.ID)
			baseplates = []template.Baseplate{b}
		}
	}

	selected, notes := template.Select(baseplates, m.opts.TargetBaseplate, m.opts.Replicate)
	for _, n := range notes {
		result.warn(Baseplate, "%s", n)
	}

	return importer.Plan(sizing, selected)
}
