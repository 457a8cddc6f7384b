// Package config holds the migration options, their on-disk preset formats
// and the environment knobs.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Oracle names accepted by Options.Oracle.
const (
	OracleInkscape = "inkscape"
	OracleStatic   = "static"
)

// Options controls a migration run.
type Options struct {
	DryRun       bool    `toml:"dry_run" yaml:"dry_run"`
	PruneOutside bool    `toml:"prune_outside" yaml:"prune_outside"`
	PruneMargin  float64 `toml:"prune_margin" yaml:"prune_margin"`
	// Replicate places the icon on every baseplate; otherwise only the largest is used.
	Replicate            bool     `toml:"replicate" yaml:"replicate"`
	TargetBaseplate      string   `toml:"target_baseplate" yaml:"target_baseplate"`
	Category             string   `toml:"category" yaml:"category"`
	PreserveTemplateDefs bool     `toml:"preserve_template_defs" yaml:"preserve_template_defs"`
	Extensions           []string `toml:"extensions" yaml:"extensions"`
	Oracle               string   `toml:"oracle" yaml:"oracle"`
	LargestRectFallback  bool     `toml:"largest_rect_fallback" yaml:"largest_rect_fallback"`
}

func Default() Options {
	return Options{
		PruneMargin: 2.0,
		Replicate:   true,
		Extensions:  []string{"svg"},
		Oracle:      OracleInkscape,
	}
}

// Validate reports the first problem found in o.
func (o Options) Validate() error {
	switch {
	case o.PruneMargin < 0:
		return fmt.Errorf("%w: prune margin %v is negative", ErrInvalidOptions, o.PruneMargin)
	case len(o.Extensions) == 0:
		return fmt.Errorf("%w: no extensions", ErrInvalidOptions)
	}

	switch o.Oracle {
	case OracleInkscape, OracleStatic:
	default:
		return fmt.Errorf("%w: unknown oracle %q (want %s or %s)", ErrInvalidOptions, o.Oracle, OracleInkscape, OracleStatic)
	}

	return nil
}

// Load decodes the preset file at path on top of base. Keys absent from the
// file keep base's values.
func Load(path string, base Options) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("reading preset %s: %w", path, err)
	}

	result := base
	result.Extensions = append([]string(nil), base.Extensions...)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &result); err != nil {
			return base, fmt.Errorf("%w: %s: %w", ErrInvalidOptions, path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &result); err != nil {
			return base, fmt.Errorf("%w: %s: %w", ErrInvalidOptions, path, err)
		}
	default:
		return base, fmt.Errorf("%w: %s: unsupported preset format %q", ErrInvalidOptions, path, ext)
	}

	return result, nil
}

// Encode writes o as a TOML preset.
func Encode(w io.Writer, o Options) error {
	buf := &bytes.Buffer{}
	if err := toml.NewEncoder(buf).Encode(o); err != nil {
		return fmt.Errorf("encoding preset: %w", err)
	}

	_, err := w.Write(buf.Bytes())

	return err
}
