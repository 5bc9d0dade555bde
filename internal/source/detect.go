package source

import (
	"context"
	"log"
	"net/url"

	"github.com/jondoveston/memtop/internal/monitor"
)

// DetectedSource holds a provider and its display name
type DetectedSource struct {
	Provider monitor.ValueProvider
	Name     string
	Kind     string // "prometheus" or "scrape"
}

// Detect tries URL variants of baseURL, first as a Prometheus server and then
// as a metrics endpoint. It returns every backend that answered.
func Detect(ctx context.Context, baseURL *url.URL) []DetectedSource {
	var detected []DetectedSource
	variants := generateURLVariants(baseURL)

	for _, variant := range variants {
		log.Printf("Trying Prometheus backend: %s", variant)
		pp, err := NewPrometheusProvider(variant)
		if err != nil {
			log.Printf("Failed to create Prometheus client: %v", err)
			continue
		}
		if err := pp.Check(ctx); err != nil {
			log.Printf("Prometheus check failed: %v", err)
			continue
		}
		log.Printf("Found Prometheus backend at %s", variant)
		detected = append(detected, DetectedSource{Provider: pp, Name: variant.Host, Kind: "prometheus"})
		break
	}

	for _, variant := range variants {
		log.Printf("Trying metrics endpoint: %s", variant)
		sp := NewScrapeProvider(variant)
		if err := sp.Check(ctx); err != nil {
			log.Printf("Metrics endpoint check failed: %v", err)
			continue
		}
		log.Printf("Found metrics endpoint at %s", variant)
		detected = append(detected, DetectedSource{Provider: sp, Name: variant.Host, Kind: "scrape"})
		break
	}

	return detected
}

// generateURLVariants creates the scheme, port and path combinations to try
func generateURLVariants(base *url.URL) []*url.URL {
	var variants []*url.URL
	hostname := base.Hostname()
	port := base.Port()
	path := base.Path

	// prefer HTTPS unless HTTP was asked for
	schemes := []string{"https", "http"}
	if base.Scheme == "http" {
		schemes = []string{"http", "https"}
	}

	// 9090 Prometheus, 9100 node_exporter
	ports := []string{"9090", "9100", "443", "80"}
	if port != "" {
		ports = append([]string{port}, ports...)
	}

	seen := make(map[string]bool)
	uniquePorts := []string{}
	for _, p := range ports {
		if !seen[p] {
			seen[p] = true
			uniquePorts = append(uniquePorts, p)
		}
	}
	ports = uniquePorts

	paths := []string{path}
	if path == "" || path == "/" {
		paths = []string{"", "/metrics"}
	}

	for _, scheme := range schemes {
		for _, p := range ports {
			for _, urlPath := range paths {
				variants = append(variants, &url.URL{
					Scheme: scheme,
					Host:   hostname + ":" + p,
					Path:   urlPath,
				})
			}
		}
	}

	return variants
}
