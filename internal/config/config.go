package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jondoveston/memtop/internal/monitor"
	"github.com/jondoveston/memtop/internal/source"
	"github.com/spf13/viper"
)

// Palette holds ANSI-256 color numbers for the chart
type Palette struct {
	Line       string
	Points     string
	Axes       string
	Titles     string
	Background string
}

// Validate checks every color is an ANSI-256 number
func (p Palette) Validate() error {
	for name, c := range map[string]string{
		"line":       p.Line,
		"points":     p.Points,
		"axes":       p.Axes,
		"titles":     p.Titles,
		"background": p.Background,
	} {
		n, err := strconv.Atoi(c)
		if err != nil || n < 0 || n > 255 {
			return fmt.Errorf("colors.%s %q is not an ANSI-256 color: %w", name, c, monitor.ErrInvalidArgument)
		}
	}
	return nil
}

// Config is the validated runtime configuration
type Config struct {
	PrometheusURL  string
	MetricsURL     string
	UsageQuery     string
	CapacityQuery  string
	UsageMetric    string
	CapacityMetric string
	Samples        int
	Interval       time.Duration
	Axis           monitor.AxisPolicy
	Scale          float64
	Timeout        time.Duration
	ExportDir      string
	ExpressionOut  string
	TargetKnob     string
	Headless       bool
	Colors         Palette
}

// SetDefaults registers every key's default on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("usage_query", source.DefaultUsageQuery)
	v.SetDefault("capacity_query", source.DefaultCapacityQuery)
	v.SetDefault("usage_metric", source.DefaultUsageMetric)
	v.SetDefault("capacity_metric", source.DefaultCapacityMetric)
	v.SetDefault("samples", DEFAULT_SAMPLES)
	v.SetDefault("interval", DefaultInterval())
	v.SetDefault("axis", monitor.HighestObserved.String())
	v.SetDefault("scale", monitor.BytesToMB)
	v.SetDefault("timeout", DefaultTimeout())
	v.SetDefault("export_dir", ".")
	v.SetDefault("target_knob", "exprEval")
	v.SetDefault("headless", false)

	v.SetDefault("colors.line", "33")
	v.SetDefault("colors.points", "196")
	v.SetDefault("colors.axes", "250")
	v.SetDefault("colors.titles", "229")
	v.SetDefault("colors.background", "235")
}

// Setup points v at the environment and the optional memtop.yaml
func Setup(v *viper.Viper) {
	v.SetEnvPrefix(ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("memtop")
	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "memtop"))
	}
	v.AddConfigPath(".")
}

// ReadFile reads memtop.yaml when present; a missing file is not an error
func ReadFile(v *viper.Viper) error {
	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err == nil || errors.As(err, &notFound) {
		return nil
	}
	return fmt.Errorf("failed to read config file: %w", err)
}

// Load validates v into a Config. Samples outside the accepted range are
// clamped rather than rejected.
func Load(v *viper.Viper) (Config, error) {
	axis, err := monitor.ParseAxisPolicy(v.GetString("axis"))
	if err != nil {
		return Config{}, fmt.Errorf("axis %q: %w", v.GetString("axis"), err)
	}

	interval := v.GetDuration("interval")
	if interval <= 0 {
		return Config{}, fmt.Errorf("interval %q: %w", v.GetString("interval"), monitor.ErrInvalidInterval)
	}

	timeout := v.GetDuration("timeout")
	if timeout <= 0 {
		return Config{}, fmt.Errorf("timeout %q: %w", v.GetString("timeout"), monitor.ErrInvalidArgument)
	}

	scale := v.GetFloat64("scale")
	if scale <= 0 {
		return Config{}, fmt.Errorf("scale %v: %w", scale, monitor.ErrInvalidArgument)
	}

	colors := Palette{
		Line:       v.GetString("colors.line"),
		Points:     v.GetString("colors.points"),
		Axes:       v.GetString("colors.axes"),
		Titles:     v.GetString("colors.titles"),
		Background: v.GetString("colors.background"),
	}
	if err := colors.Validate(); err != nil {
		return Config{}, err
	}

	return Config{
		PrometheusURL:  v.GetString("prometheus_url"),
		MetricsURL:     v.GetString("metrics_url"),
		UsageQuery:     v.GetString("usage_query"),
		CapacityQuery:  v.GetString("capacity_query"),
		UsageMetric:    v.GetString("usage_metric"),
		CapacityMetric: v.GetString("capacity_metric"),
		Samples:        ClampSamples(v.GetInt("samples")),
		Interval:       interval,
		Axis:           axis,
		Scale:          scale,
		Timeout:        timeout,
		ExportDir:      v.GetString("export_dir"),
		ExpressionOut:  v.GetString("expression_out"),
		TargetKnob:     v.GetString("target_knob"),
		Headless:       v.GetBool("headless"),
		Colors:         colors,
	}, nil
}
