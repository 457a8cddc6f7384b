package main

import (
	"fmt"
	"strings"

	"github.com/kpango/glg"
	"github.com/spf13/cobra"

	pkg "github.com/gucio321/iconport/pkg"
	"github.com/gucio321/iconport/pkg/config"
	"github.com/gucio321/iconport/pkg/presets"
)

type flags struct {
	opts         config.Options
	noReplicate  bool
	preset       string
	presetFile   string
	makePreset   bool
	extensionCSV string
}

func newMigrateCmd(verbose *bool) *cobra.Command {
	f := flags{opts: config.Default()}

	cmd := &cobra.Command{
		Use:   "migrate SOURCE TEMPLATE OUTPUT",
		Short: "Migrate one icon or a whole theme directory",
		Long: `Migrate copies the artwork of every SOURCE icon into a fresh copy of the
TEMPLATE, once per baseplate, and writes the result to OUTPUT. A SOURCE
directory is mirrored under OUTPUT.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if f.makePreset {
				return nil
			}

			return cobra.ExactArgs(3)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.resolve(cmd)
			if err != nil {
				return err
			}

			if f.makePreset {
				if err := config.Encode(cmd.OutOrStdout(), opts); err != nil {
					return err
				}

				glg.Infof("Preset generated")

				return nil
			}

			return migrate(cmd, opts, *verbose, args[0], args[1], args[2])
		},
	}

	fl := cmd.Flags()
	fl.BoolVar(&f.opts.DryRun, "dry-run", false, "report what would be written without touching the disk")
	fl.BoolVar(&f.opts.PruneOutside, "prune-outside", false, "drop artwork lying entirely outside the source canvas")
	fl.Float64Var(&f.opts.PruneMargin, "prune-margin", f.opts.PruneMargin, "margin around the canvas kept when pruning")
	fl.BoolVar(&f.noReplicate, "no-replicate", false, "place the icon on the largest baseplate only")
	fl.StringVar(&f.opts.TargetBaseplate, "target-rect-id", "", "place the icon on this baseplate only")
	fl.BoolVar(&f.opts.PreserveTemplateDefs, "preserve-tpl-defs", false, "keep the template's <defs> instead of the source's")
	fl.StringVar(&f.extensionCSV, "extensions", strings.Join(f.opts.Extensions, ","), "comma separated icon file extensions")
	fl.StringVar(&f.opts.Category, "category", "", "context written into every icon (default: first directory, or apps)")
	fl.StringVar(&f.opts.Oracle, "oracle", f.opts.Oracle, "bounds oracle used for pruning: inkscape or static")
	fl.BoolVar(&f.opts.LargestRectFallback, "largest-rect-fallback", false, "use the template's largest rect when it has no rectNxN baseplate")
	fl.StringVar(&f.preset, "preset", "", "built-in preset (see iconport presets)")
	fl.StringVar(&f.presetFile, "preset-file", "", "TOML or YAML preset file")
	fl.BoolVar(&f.makePreset, "make-preset", false, "print the effective options as a TOML preset and exit")

	return cmd
}

// resolve layers defaults, the named preset, the preset file and finally
// the flags given on the command line.
func (f *flags) resolve(cmd *cobra.Command) (config.Options, error) {
	result := config.Default()

	if f.preset != "" {
		p, err := presets.Get(f.preset)
		if err != nil {
			return result, fmt.Errorf("%w: %w", pkg.ErrConfig, err)
		}

		result = p.Options
	}

	if f.presetFile != "" {
		loaded, err := config.Load(f.presetFile, result)
		if err != nil {
			return result, fmt.Errorf("%w: %w", pkg.ErrConfig, err)
		}

		result = loaded
	}

	changed := cmd.Flags().Changed
	if changed("dry-run") {
		result.DryRun = f.opts.DryRun
	}

	if changed("prune-outside") {
		result.PruneOutside = f.opts.PruneOutside
	}

	if changed("prune-margin") {
		result.PruneMargin = f.opts.PruneMargin
	}

	if changed("no-replicate") {
		result.Replicate = !f.noReplicate
	}

	if changed("target-rect-id") {
		result.TargetBaseplate = f.opts.TargetBaseplate
	}

	if changed("preserve-tpl-defs") {
		result.PreserveTemplateDefs = f.opts.PreserveTemplateDefs
	}

	if changed("extensions") {
		result.Extensions = splitList(f.extensionCSV)
	}

	if changed("category") {
		result.Category = f.opts.Category
	}

	if changed("oracle") {
		result.Oracle = f.opts.Oracle
	}

	if changed("largest-rect-fallback") {
		result.LargestRectFallback = f.opts.LargestRectFallback
	}

	if err := result.Validate(); err != nil {
		return result, fmt.Errorf("%w: %w", pkg.ErrConfig, err)
	}

	return result, nil
}

func splitList(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}

	return result
}

func migrate(cmd *cobra.Command, opts config.Options, verbose bool, source, templatePath, output string) error {
	tpl, err := pkg.LoadTemplate(templatePath)
	if err != nil {
		return err
	}

	m := pkg.NewMigrator(tpl, opts)
	if opts.PruneOutside {
		env, err := config.LoadEnv()
		if err != nil {
			return fmt.Errorf("%w: %w", pkg.ErrConfig, err)
		}

		bounds, err := pkg.BoundsProviderFor(opts.Oracle, env.OracleTimeout, verbose)
		if err != nil {
			return err
		}

		m.WithBounds(bounds)
	}

	results, err := m.Run(cmd.Context(), source, output)
	if err != nil {
		return err
	}

	report(cmd, results)

	if failed := pkg.Failed(results); len(failed) > 0 {
		return fmt.Errorf("%w: %d of %d", errFailed, len(failed), len(results))
	}

	return nil
}

func report(cmd *cobra.Command, results []pkg.Result) {
	w := cmd.OutOrStdout()
	for _, r := range results {
		status := "ok"
		switch {
		case r.Err != nil:
			status = "FAILED"
		case r.DryRun:
			status = "dry-run"
		}

		fmt.Fprintf(w, "%-7s %s -> %s (%d placements", status, r.Task.Source, r.Task.Output, len(r.Placements))
		if len(r.Pruned) > 0 {
			fmt.Fprintf(w, ", pruned %s", strings.Join(r.Pruned, " "))
		}

		if len(r.Warnings) > 0 {
			fmt.Fprintf(w, ", %d warnings", len(r.Warnings))
		}

		fmt.Fprintln(w, ")")
	}

	glg.Infof("%d icons, %d failed", len(results), len(pkg.Failed(results)))
}
