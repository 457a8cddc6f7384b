package iconport

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gucio321/iconport/pkg/tree"
)

// Plan turns source and output into tasks. source may be a single icon or a
// theme directory; directories are mirrored under output. Nothing is created
// in a dry run.
func (m *Migrator) Plan(source, output string) ([]Task, error) {
	if err := m.opts.Validate(); err != nil {
		return nil, configErr("%w", err)
	}

	info, err := os.Lstat(source)
	if err != nil {
		return nil, configErr("source: %w", err)
	}

	switch {
	case info.Mode()&os.ModeSymlink != 0:
		return nil, configErr("source %s is a symlink", source)
	case info.Mode().IsRegular():
		return m.planFile(source, output)
	case info.IsDir():
		return m.planDir(source, output)
	}

	return nil, configErr("source %s is neither a file nor a directory", source)
}

func (m *Migrator) planFile(source, output string) ([]Task, error) {
	out := output
	if info, err := os.Stat(output); (err == nil && info.IsDir()) || strings.HasSuffix(output, string(filepath.Separator)) {
		out = filepath.Join(output, filepath.Base(source))
	}

	if same(source, out) {
		return nil, configErr("output %s would overwrite the source", out)
	}

	if !m.opts.DryRun {
		if err := ensureDir(filepath.Dir(out)); err != nil {
			return nil, err
		}
	}

	return []Task{{
		Source:   source,
		Output:   out,
		Category: tree.Category(filepath.Base(source), m.opts.Category),
	}}, nil
}

func (m *Migrator) planDir(source, output string) ([]Task, error) {
	if info, err := os.Stat(output); err == nil && !info.IsDir() {
		return nil, configErr("output %s is not a directory", output)
	}

	// an output root inside the source tree must not feed later runs
	skip := ""
	if rel, err := filepath.Rel(absPath(source), absPath(output)); err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		if rel == "." {
			return nil, configErr("output %s is the source directory", output)
		}

		skip = filepath.ToSlash(rel) + "/"
	}

	var tasks []Task
	for rel, err := range tree.Candidates(source, tree.ExtensionFilter(m.opts.Extensions)) {
		if err != nil {
			return nil, configErr("walking %s: %w", source, err)
		}

		if skip != "" && strings.HasPrefix(rel, skip) {
			continue
		}

		tasks = append(tasks, Task{
			Source:   filepath.Join(source, filepath.FromSlash(rel)),
			Output:   tree.Mirror(output, rel),
			Category: tree.Category(rel, m.opts.Category),
		})
	}

	if len(tasks) == 0 {
		return nil, configErr("no %s files under %s", strings.Join(m.opts.Extensions, "/"), source)
	}

	if !m.opts.DryRun {
		if err := ensureDir(output); err != nil {
			return nil, err
		}
	}

	return tasks, nil
}

func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return configErr("output: %w", err)
	}

	return nil
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}

	return filepath.Clean(p)
}

func same(a, b string) bool {
	if absPath(a) == absPath(b) {
		return true
	}

	ia, errA := os.Stat(a)
	ib, errB := os.Stat(b)

	return errA == nil && errB == nil && os.SameFile(ia, ib)
}
