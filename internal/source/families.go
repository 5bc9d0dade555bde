package source

import (
	"fmt"

	dto "github.com/prometheus/client_model/go"
)

// familyValue sums every series of the named metric family. Gauges, counters
// and untyped samples are supported since memory metrics come in all three.
func familyValue(families map[string]*dto.MetricFamily, name string) (float64, error) {
	family, ok := families[name]
	if !ok || len(family.GetMetric()) == 0 {
		return 0, fmt.Errorf("metric %s not found", name)
	}

	total := 0.0
	for _, metric := range family.GetMetric() {
		switch family.GetType() {
		case dto.MetricType_GAUGE:
			total += metric.GetGauge().GetValue()
		case dto.MetricType_COUNTER:
			total += metric.GetCounter().GetValue()
		case dto.MetricType_UNTYPED:
			total += metric.GetUntyped().GetValue()
		default:
			return 0, fmt.Errorf("metric %s has unsupported type %s", name, family.GetType())
		}
	}
	return total, nil
}
