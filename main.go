package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/jondoveston/memtop/internal/config"
	"github.com/jondoveston/memtop/internal/expressions"
	"github.com/jondoveston/memtop/internal/monitor"
	"github.com/jondoveston/memtop/internal/source"
	"github.com/jondoveston/memtop/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "memtop [url]",
	Short: "Terminal memory monitor for Prometheus and metrics endpoints",
	Long: `memtop samples memory usage from Prometheus or a metrics endpoint
and charts a sliding window of samples in an interactive terminal panel.

Examples:
  memtop http://prometheus.lan:9090
  memtop --prometheus-url http://prometheus.lan:9090 --usage-query 'sum(container_memory_rss)'
  memtop --metrics-url http://localhost:9100/metrics --samples 30 --interval 2s
  memtop --headless --metrics-url http://localhost:9100/metrics
  MEMTOP_PROMETHEUS_URL=http://prometheus.lan:9090 memtop`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	flags := rootCmd.Flags()
	flags.String("prometheus-url", "", "Prometheus server URL")
	flags.String("metrics-url", "", "text-format metrics endpoint URL")
	flags.String("usage-query", source.DefaultUsageQuery, "PromQL query for memory used, in bytes")
	flags.String("capacity-query", source.DefaultCapacityQuery, "PromQL query for total memory, in bytes")
	flags.String("usage-metric", source.DefaultUsageMetric, "metric summed for memory used")
	flags.String("capacity-metric", source.DefaultCapacityMetric, "metric summed for total memory")
	flags.IntP("samples", "n", config.DEFAULT_SAMPLES, fmt.Sprintf("samples kept in the window (%d-%d)", config.MIN_SAMPLES, config.MAX_SAMPLES))
	flags.DurationP("interval", "i", config.DefaultInterval(), "auto-update interval")
	flags.String("axis", monitor.HighestObserved.String(), "y-axis policy: highest or capacity")
	flags.Duration("timeout", config.DefaultTimeout(), "provider query timeout")
	flags.String("export-dir", ".", "directory for exported PNG charts")
	flags.String("expression-out", "", "file receiving generated expressions (default: the log)")
	flags.String("knob", "exprEval", "knob name written before each expression")
	flags.Bool("headless", false, "log samples instead of showing the panel")
	flags.String("config", "", "config file (default $HOME/.config/memtop/memtop.yaml)")
	flags.BoolP("version", "v", false, "Print version information")

	// dashes in flags become underscores in viper
	for key, flag := range map[string]string{
		"prometheus_url":  "prometheus-url",
		"metrics_url":     "metrics-url",
		"usage_query":     "usage-query",
		"capacity_query":  "capacity-query",
		"usage_metric":    "usage-metric",
		"capacity_metric": "capacity-metric",
		"samples":         "samples",
		"interval":        "interval",
		"axis":            "axis",
		"timeout":         "timeout",
		"export_dir":      "export-dir",
		"expression_out":  "expression-out",
		"target_knob":     "knob",
		"headless":        "headless",
	} {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			log.Fatalf("failed to bind %s: %v", key, err)
		}
	}

	config.SetDefaults(viper.GetViper())
	config.Setup(viper.GetViper())
}

func run(cmd *cobra.Command, args []string) error {
	// Handle --version flag first
	versionFlag, _ := cmd.Flags().GetBool("version")
	if versionFlag {
		fmt.Printf("memtop version %s\n", version)
		return nil
	}

	log.SetOutput(os.Stderr)
	log.Printf("Starting memtop %s", version)

	if file, _ := cmd.Flags().GetString("config"); file != "" {
		viper.SetConfigFile(file)
	}
	if err := config.ReadFile(viper.GetViper()); err != nil {
		return err
	}
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	name, provider, err := selectSource(ctx, cfg, args)
	if err != nil {
		return err
	}

	m, cache, err := newMonitor(ctx, cfg, provider)
	if err != nil {
		return err
	}

	if cfg.Headless {
		return runHeadless(ctx, m, name)
	}

	// Keep the log off the screen while the panel owns the terminal
	logFile, err := os.CreateTemp("", "memtop-*.log")
	if err == nil {
		log.Printf("Logging to %s", logFile.Name())
		log.SetOutput(logFile)
		defer logFile.Close()
	}

	target, closeTarget, err := expressionTarget(cfg)
	if err != nil {
		return err
	}
	defer closeTarget()

	return ui.Dashboard(m, ui.Options{
		Source:     name,
		Palette:    cfg.Colors,
		ExportDir:  cfg.ExportDir,
		Target:     target,
		Timeout:    cfg.Timeout,
		Invalidate: cache.Invalidate,
	})
}

// newMonitor wraps provider in a capacity cache and primes the capacity so
// the capacity axis and tooltips are meaningful before the first sample
func newMonitor(ctx context.Context, cfg config.Config, provider monitor.ValueProvider) (*monitor.Monitor, *source.Cache, error) {
	cache := source.NewCache(provider)
	m, err := monitor.New(cache, cfg.Samples, cfg.Interval, cfg.Axis)
	if err != nil {
		return nil, nil, err
	}
	m.Sampler().Scale = cfg.Scale

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	if err := m.RefreshCapacity(ctx); err != nil {
		log.Printf("Capacity unavailable: %v", err)
	}
	return m, cache, nil
}

// selectSource picks the backend: an explicit Prometheus URL, then an
// explicit metrics URL, then whatever answers at the positional URL
func selectSource(ctx context.Context, cfg config.Config, args []string) (string, monitor.ValueProvider, error) {
	switch {
	case cfg.PrometheusURL != "":
		u, err := url.Parse(cfg.PrometheusURL)
		if err != nil {
			return "", nil, fmt.Errorf("invalid prometheus_url: %w", err)
		}
		p, err := source.NewPrometheusProvider(u)
		if err != nil {
			return "", nil, err
		}
		p.UsageQuery = cfg.UsageQuery
		p.CapacityQuery = cfg.CapacityQuery
		p.Timeout = cfg.Timeout
		log.Printf("Using Prometheus backend: %s", u)
		return u.Host, p, nil

	case cfg.MetricsURL != "":
		u, err := url.Parse(cfg.MetricsURL)
		if err != nil {
			return "", nil, fmt.Errorf("invalid metrics_url: %w", err)
		}
		p := source.NewScrapeProvider(u)
		p.UsageMetric = cfg.UsageMetric
		p.CapacityMetric = cfg.CapacityMetric
		p.SetTimeout(cfg.Timeout)
		log.Printf("Using metrics endpoint: %s", u)
		return u.Host, p, nil

	case len(args) == 1:
		u, err := url.Parse(args[0])
		if err != nil || u.Host == "" {
			// bare host[:port]
			u, err = url.Parse("http://" + args[0])
			if err != nil {
				return "", nil, fmt.Errorf("invalid url %q: %w", args[0], err)
			}
		}
		detected := source.Detect(ctx, u)
		if len(detected) == 0 {
			return "", nil, fmt.Errorf("no Prometheus server or metrics endpoint found at %s", args[0])
		}
		d := detected[0]
		switch p := d.Provider.(type) {
		case *source.PrometheusProvider:
			p.UsageQuery = cfg.UsageQuery
			p.CapacityQuery = cfg.CapacityQuery
			p.Timeout = cfg.Timeout
		case *source.ScrapeProvider:
			p.UsageMetric = cfg.UsageMetric
			p.CapacityMetric = cfg.CapacityMetric
			p.SetTimeout(cfg.Timeout)
		}
		log.Printf("Using %s backend: %s", d.Kind, d.Name)
		return d.Name, d.Provider, nil
	}

	return "", nil, errors.New("prometheus_url, metrics_url or a url argument must be set")
}

// expressionTarget opens expression_out for appending, or falls back to the log
func expressionTarget(cfg config.Config) (expressions.Target, func(), error) {
	if cfg.ExpressionOut == "" {
		return expressions.NewWriterTarget(log.Writer(), cfg.TargetKnob), func() {}, nil
	}
	f, err := os.OpenFile(cfg.ExpressionOut, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open expression_out: %w", err)
	}
	return expressions.NewWriterTarget(f, cfg.TargetKnob), func() { f.Close() }, nil
}

func runHeadless(ctx context.Context, m *monitor.Monitor, name string) error {
	log.Printf("Sampling %s every %s, %d samples kept", name, m.Interval(), m.MaxSample())
	report := func(s monitor.Sample, err error) {
		if err != nil {
			return
		}
		snap := m.Snapshot()
		log.Printf("%s used %.2fMB (%.2f%% of %.2fMB), axis 0-%.2fMB",
			s.Label(), s.Value, monitor.PercentOf(s.Value, snap.Capacity), snap.Capacity, snap.Axis.Max)
	}

	err := m.Run(ctx, report)
	if errors.Is(err, context.Canceled) {
		log.Printf("Stopped after %d samples", m.Snapshot().Ticks)
		return nil
	}
	return err
}
