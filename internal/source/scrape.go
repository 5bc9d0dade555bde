package source

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/prometheus/common/expfmt"
	dto "github.com/prometheus/client_model/go"
)

const (
	// DefaultUsageMetric is exported by every Prometheus client library
	DefaultUsageMetric = "process_resident_memory_bytes"

	// DefaultCapacityMetric is exported by node_exporter
	DefaultCapacityMetric = "node_memory_MemTotal_bytes"
)

// ScrapeProvider reads memory figures from a text-format metrics endpoint,
// such as the one the monitored application or node_exporter serves
type ScrapeProvider struct {
	url            *url.URL
	client         http.Client
	UsageMetric    string
	CapacityMetric string
}

func NewScrapeProvider(metricsURL *url.URL) *ScrapeProvider {
	return &ScrapeProvider{
		url: metricsURL,
		client: http.Client{
			Timeout: DefaultTimeout,
		},
		UsageMetric:    DefaultUsageMetric,
		CapacityMetric: DefaultCapacityMetric,
	}
}

// URL returns the endpoint address
func (s *ScrapeProvider) URL() *url.URL {
	return s.url
}

// SetTimeout bounds each scrape
func (s *ScrapeProvider) SetTimeout(d time.Duration) {
	s.client.Timeout = d
}

// Check verifies the endpoint serves the usage metric
func (s *ScrapeProvider) Check(ctx context.Context) error {
	_, err := s.CurrentUsage(ctx)
	return err
}

func (s *ScrapeProvider) CurrentUsage(ctx context.Context) (float64, error) {
	families, err := s.scrape(ctx)
	if err != nil {
		return 0, err
	}
	return familyValue(families, s.UsageMetric)
}

func (s *ScrapeProvider) MaxCapacity(ctx context.Context) (float64, error) {
	families, err := s.scrape(ctx)
	if err != nil {
		return 0, err
	}
	return familyValue(families, s.CapacityMetric)
}

func (s *ScrapeProvider) scrape(ctx context.Context) (map[string]*dto.MetricFamily, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url.String(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error querying %s: %w", s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error querying %s: %s", s.url, resp.Status)
	}

	parser := expfmt.TextParser{}
	families, err := parser.TextToMetricFamilies(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse metrics: %w", err)
	}
	return families, nil
}
