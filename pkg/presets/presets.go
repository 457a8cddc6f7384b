// Package presets ships named option sets with the binary.
package presets

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/gucio321/iconport/pkg/config"
)

//go:embed presets.toml
var presets string

var ErrUnknownPreset = errors.New("unknown preset")

// Preset is a named set of options.
type Preset struct {
	Name        string
	Description string
	Options     config.Options
}

type rawPreset struct {
	Name        string         `toml:"name"`
	Description string         `toml:"description"`
	Options     toml.Primitive `toml:"options"`
}

func decodePresets() ([]Preset, error) {
	var raw struct {
		Preset []rawPreset `toml:"preset"`
	}

	md, err := toml.Decode(presets, &raw)
	if err != nil {
		return nil, err
	}

	result := make([]Preset, 0, len(raw.Preset))
	for _, r := range raw.Preset {
		// options decode on top of the defaults, so presets only list what they change
		opts := config.Default()
		if err := md.PrimitiveDecode(r.Options, &opts); err != nil {
			return nil, fmt.Errorf("preset %s: %w", r.Name, err)
		}

		result = append(result, Preset{Name: r.Name, Description: r.Description, Options: opts})
	}

	return result, nil
}

// List returns every embedded preset in file order.
func List() ([]Preset, error) {
	return decodePresets()
}

func Get(name string) (*Preset, error) {
	all, err := decodePresets()
	if err != nil {
		return nil, err
	}

	for _, p := range all {
		if p.Name == name {
			return &p, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}
