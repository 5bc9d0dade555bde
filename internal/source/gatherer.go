package source

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// GathererProvider reads memory figures from an in-process registry. The
// memtop binary always samples a remote backend; this provider is for
// programs that embed a monitor.Monitor and already register their own
// memory gauges, such as a service exposing process_resident_memory_bytes
// through its default registry.
type GathererProvider struct {
	Gatherer       prometheus.Gatherer
	UsageMetric    string
	CapacityMetric string
}

func NewGathererProvider(g prometheus.Gatherer) *GathererProvider {
	return &GathererProvider{
		Gatherer:       g,
		UsageMetric:    DefaultUsageMetric,
		CapacityMetric: DefaultCapacityMetric,
	}
}

func (g *GathererProvider) CurrentUsage(ctx context.Context) (float64, error) {
	families, err := g.gather()
	if err != nil {
		return 0, err
	}
	return familyValue(families, g.UsageMetric)
}

func (g *GathererProvider) MaxCapacity(ctx context.Context) (float64, error) {
	families, err := g.gather()
	if err != nil {
		return 0, err
	}
	return familyValue(families, g.CapacityMetric)
}

func (g *GathererProvider) gather() (map[string]*dto.MetricFamily, error) {
	gathered, err := g.Gatherer.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather metrics: %w", err)
	}
	families := make(map[string]*dto.MetricFamily, len(gathered))
	for _, family := range gathered {
		families[family.GetName()] = family
	}
	return families, nil
}
