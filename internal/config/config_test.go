package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jondoveston/memtop/internal/monitor"
	"github.com/spf13/viper"
)

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(newViper())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Samples != DEFAULT_SAMPLES {
		t.Errorf("Samples = %d", cfg.Samples)
	}
	if cfg.Interval != 10*time.Second {
		t.Errorf("Interval = %v", cfg.Interval)
	}
	if cfg.Axis != monitor.HighestObserved {
		t.Errorf("Axis = %v", cfg.Axis)
	}
	if cfg.Scale != monitor.BytesToMB {
		t.Errorf("Scale = %v", cfg.Scale)
	}
	if cfg.Colors.Line == "" || cfg.Colors.Background == "" {
		t.Errorf("palette defaults missing: %+v", cfg.Colors)
	}
}

func TestLoadClampsSamples(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, MIN_SAMPLES},
		{1, MIN_SAMPLES},
		{2, 2},
		{35, 35},
		{50, 50},
		{500, MAX_SAMPLES},
	}
	for _, tt := range tests {
		v := newViper()
		v.Set("samples", tt.in)
		cfg, err := Load(v)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Samples != tt.want {
			t.Errorf("samples %d: got %d, want %d", tt.in, cfg.Samples, tt.want)
		}
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value interface{}
		want  error
	}{
		{"zero interval", "interval", "0s", monitor.ErrInvalidInterval},
		{"negative interval", "interval", "-5s", monitor.ErrInvalidInterval},
		{"unknown axis", "axis", "sideways", monitor.ErrInvalidArgument},
		{"zero timeout", "timeout", "0s", monitor.ErrInvalidArgument},
		{"negative scale", "scale", -1.0, monitor.ErrInvalidArgument},
		{"named color", "colors.line", "blue", monitor.ErrInvalidArgument},
		{"color out of range", "colors.background", "256", monitor.ErrInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newViper()
			v.Set(tt.key, tt.value)
			if _, err := Load(v); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("MEMTOP_SAMPLES", "7")
	t.Setenv("MEMTOP_AXIS", "capacity")
	t.Setenv("MEMTOP_COLORS_LINE", "82")

	v := newViper()
	Setup(v)
	cfg, err := Load(v)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Samples != 7 || cfg.Axis != monitor.ExternalCapacity {
		t.Errorf("got samples %d axis %v", cfg.Samples, cfg.Axis)
	}
	if cfg.Colors.Line != "82" {
		t.Errorf("nested env key ignored: %q", cfg.Colors.Line)
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	yaml := "samples: 12\ninterval: 3s\ncolors:\n  line: \"45\"\n"
	if err := os.WriteFile(filepath.Join(dir, "memtop.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	v := newViper()
	v.SetConfigName("memtop")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := ReadFile(v); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(v)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Samples != 12 || cfg.Interval != 3*time.Second || cfg.Colors.Line != "45" {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Colors.Points != "196" {
		t.Errorf("unset nested key lost its default: %q", cfg.Colors.Points)
	}

	missing := newViper()
	missing.SetConfigName("memtop")
	missing.AddConfigPath(t.TempDir())
	if err := ReadFile(missing); err != nil {
		t.Errorf("missing file reported: %v", err)
	}
}
