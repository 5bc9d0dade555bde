package source_test

import (
	"context"
	"fmt"
	"time"

	"github.com/jondoveston/memtop/internal/monitor"
	"github.com/jondoveston/memtop/internal/source"
	"github.com/prometheus/client_golang/prometheus"
)

func ExampleGathererProvider() {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "process_resident_memory_bytes",
		Help: "Resident memory size in bytes.",
	}, func() float64 { return 3.2e9 }))
	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "node_memory_MemTotal_bytes",
		Help: "Total memory.",
	}, func() float64 { return 6.4e9 }))

	m, err := monitor.New(source.NewGathererProvider(reg), 20, 10*time.Second, monitor.ExternalCapacity)
	if err != nil {
		fmt.Println(err)
		return
	}
	s, err := m.Tick(context.Background())
	if err != nil {
		fmt.Println(err)
		return
	}
	snap := m.Snapshot()
	fmt.Printf("%.2fMB of %.2fMB (%.2f%%)\n", s.Value, snap.Capacity, monitor.PercentOf(s.Value, snap.Capacity))
	// Output: 3200.00MB of 6400.00MB (50.00%)
}
