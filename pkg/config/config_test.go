package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/kpango/glg"
)

func write(t *testing.T, name, content string) string {
	t.Helper()

	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	return p
}

func TestDefault(t *testing.T) {
	o := Default()
	if err := o.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}

	if !o.Replicate || o.PruneMargin != 2 || o.Oracle != OracleInkscape || !reflect.DeepEqual(o.Extensions, []string{"svg"}) {
		t.Errorf("Default() = %+v", o)
	}
}

func TestValidate(t *testing.T) {
	tests := map[string]func(*Options){
		"negative margin": func(o *Options) { o.PruneMargin = -1 },
		"no extensions":   func(o *Options) { o.Extensions = nil },
		"unknown oracle":  func(o *Options) { o.Oracle = "magic" },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			o := Default()
			mutate(&o)
			if err := o.Validate(); !errors.Is(err, ErrInvalidOptions) {
				t.Errorf("Validate() = %v, want ErrInvalidOptions", err)
			}
		})
	}
}

func TestLoadTOML(t *testing.T) {
	p := write(t, "preset.toml", `
prune_outside = true
prune_margin = 3.5
extensions = ["svg", "svgz"]
`)

	got, err := Load(p, Default())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := Default()
	want.PruneOutside = true
	want.PruneMargin = 3.5
	want.Extensions = []string{"svg", "svgz"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestLoadYAML(t *testing.T) {
	p := write(t, "preset.yml", `
replicate: false
target_baseplate: rect32x32
oracle: static
`)

	base := Default()
	base.Category = "places"

	got, err := Load(p, base)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got.Replicate || got.TargetBaseplate != "rect32x32" || got.Oracle != OracleStatic {
		t.Errorf("Load() = %+v", got)
	}

	if got.Category != "places" || got.PruneMargin != 2 {
		t.Errorf("Load() dropped base values: %+v", got)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml"), Default()); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: %v", err)
	}

	for name, content := range map[string]string{
		"bad.toml": "prune_margin = [",
		"bad.yaml": "replicate: [",
		"bad.json": "{}",
	} {
		if _, err := Load(write(t, name, content), Default()); !errors.Is(err, ErrInvalidOptions) {
			t.Errorf("Load(%s) = %v, want ErrInvalidOptions", name, err)
		}
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	o := Default()
	o.DryRun = true
	o.TargetBaseplate = "rect16x16"

	buf := &bytes.Buffer{}
	if err := Encode(buf, o); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	if !strings.Contains(buf.String(), `target_baseplate = "rect16x16"`) {
		t.Errorf("Encode() = %s", buf)
	}

	p := write(t, "made.toml", buf.String())
	got, err := Load(p, Options{})
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(got, o) {
		t.Errorf("round trip = %+v, want %+v", got, o)
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("ICONPORT_ORACLE_TIMEOUT", "")
	t.Setenv("ICONPORT_LOG_LEVEL", "")

	e, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}

	if e.OracleTimeout != 30*time.Second || e.LogLevel != "info" {
		t.Errorf("LoadEnv() = %+v", e)
	}

	t.Setenv("ICONPORT_ORACLE_TIMEOUT", "5s")
	t.Setenv("ICONPORT_LOG_LEVEL", "DEBUG")

	e, err = LoadEnv()
	if err != nil {
		t.Fatal(err)
	}

	if lvl, _ := e.Level(); e.OracleTimeout != 5*time.Second || lvl != glg.DEBG {
		t.Errorf("LoadEnv() = %+v", e)
	}
}

func TestLoadEnvErrors(t *testing.T) {
	tests := map[string][2]string{
		"bad duration": {"soon", "info"},
		"zero timeout": {"0s", "info"},
		"bad level":    {"1s", "loud"},
	}

	for name, vals := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv("ICONPORT_ORACLE_TIMEOUT", vals[0])
			t.Setenv("ICONPORT_LOG_LEVEL", vals[1])

			if _, err := LoadEnv(); err == nil {
				t.Error("LoadEnv() succeeded")
			}
		})
	}
}
