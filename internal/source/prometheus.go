package source

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/prometheus/client_golang/api"
	v1 "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"
)

const (
	// DefaultUsageQuery is the resident memory of the monitored processes
	DefaultUsageQuery = "sum(process_resident_memory_bytes)"

	// DefaultCapacityQuery is the total memory of the nodes they run on
	DefaultCapacityQuery = "sum(node_memory_MemTotal_bytes)"

	// DefaultTimeout bounds every provider query
	DefaultTimeout = 5 * time.Second
)

// PrometheusProvider reads memory figures from PromQL instant queries
type PrometheusProvider struct {
	client        api.Client
	url           *url.URL
	UsageQuery    string
	CapacityQuery string
	Timeout       time.Duration
}

func NewPrometheusProvider(prometheusURL *url.URL) (*PrometheusProvider, error) {
	client, err := api.NewClient(api.Config{
		Address: prometheusURL.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus client: %w", err)
	}

	return &PrometheusProvider{
		client:        client,
		url:           prometheusURL,
		UsageQuery:    DefaultUsageQuery,
		CapacityQuery: DefaultCapacityQuery,
		Timeout:       DefaultTimeout,
	}, nil
}

// URL returns the server address
func (p *PrometheusProvider) URL() *url.URL {
	return p.url
}

// Check verifies the server answers queries
func (p *PrometheusProvider) Check(ctx context.Context) error {
	if _, err := p.query(ctx, "up"); err != nil {
		return fmt.Errorf("prometheus API query failed: %w", err)
	}
	return nil
}

func (p *PrometheusProvider) CurrentUsage(ctx context.Context) (float64, error) {
	return p.scalar(ctx, p.UsageQuery)
}

func (p *PrometheusProvider) MaxCapacity(ctx context.Context) (float64, error) {
	return p.scalar(ctx, p.CapacityQuery)
}

func (p *PrometheusProvider) query(ctx context.Context, query string) (model.Value, error) {
	v1api := v1.NewAPI(p.client)
	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	result, warnings, err := v1api.Query(ctx, query, time.Now())
	if err != nil {
		return nil, err
	}
	if len(warnings) > 0 {
		log.Printf("Prometheus warnings for %q: %v", query, warnings)
	}
	return result, nil
}

// scalar reduces a query result to one number. Vectors are summed so the
// query may select several series.
func (p *PrometheusProvider) scalar(ctx context.Context, query string) (float64, error) {
	result, err := p.query(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("query %q: %w", query, err)
	}

	switch v := result.(type) {
	case *model.Scalar:
		return float64(v.Value), nil
	case model.Vector:
		if v.Len() == 0 {
			return 0, fmt.Errorf("query %q returned no samples", query)
		}
		total := 0.0
		for _, sample := range v {
			total += float64(sample.Value)
		}
		return total, nil
	default:
		return 0, fmt.Errorf("query %q returned unsupported %s result", query, result.Type())
	}
}
