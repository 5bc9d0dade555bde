package source

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsText = `# HELP process_resident_memory_bytes Resident memory size in bytes.
# TYPE process_resident_memory_bytes gauge
process_resident_memory_bytes 2.5e+08
# HELP node_memory_MemTotal_bytes Memory information field MemTotal_bytes.
# TYPE node_memory_MemTotal_bytes gauge
node_memory_MemTotal_bytes 1.6e+10
# TYPE app_cache_bytes untyped
app_cache_bytes{pool="a"} 100
app_cache_bytes{pool="b"} 50
`

func promHandler(t *testing.T, results map[string]string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("bad form: %v", err)
		}
		body, ok := results[r.Form.Get("query")]
		if !ok {
			body = `{"status":"success","data":{"resultType":"vector","result":[]}}`
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}
}

func vectorResult(values ...string) string {
	var series []string
	for i, v := range values {
		series = append(series, fmt.Sprintf(`{"metric":{"instance":"node%d"},"value":[1606464000,"%s"]}`, i, v))
	}
	return `{"status":"success","data":{"resultType":"vector","result":[` + strings.Join(series, ",") + `]}}`
}

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatal(err)
	}
	return u
}

func TestPrometheusProvider(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/query", promHandler(t, map[string]string{
		"up":                 vectorResult("1"),
		DefaultUsageQuery:    vectorResult("1000000", "2000000"),
		DefaultCapacityQuery: `{"status":"success","data":{"resultType":"scalar","result":[1606464000,"8000000000"]}}`,
	}))
	srv := httptest.NewServer(mux)
	defer srv.Close()

	p, err := NewPrometheusProvider(mustParse(t, srv.URL))
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	if err := p.Check(ctx); err != nil {
		t.Fatalf("Check: %v", err)
	}

	usage, err := p.CurrentUsage(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if usage != 3000000 {
		t.Errorf("usage = %v, want summed 3000000", usage)
	}
	capacity, err := p.MaxCapacity(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if capacity != 8e9 {
		t.Errorf("capacity = %v, want 8e9", capacity)
	}

	p.UsageQuery = "absent_metric"
	if _, err := p.CurrentUsage(ctx); err == nil {
		t.Error("empty vector accepted")
	}
}

func TestPrometheusProviderUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	p, err := NewPrometheusProvider(mustParse(t, srv.URL))
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Check(context.Background()); err == nil {
		t.Error("Check succeeded against a closed server")
	}
}

func TestScrapeProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/metrics" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, metricsText)
	}))
	defer srv.Close()

	p := NewScrapeProvider(mustParse(t, srv.URL+"/metrics"))
	ctx := context.Background()

	usage, err := p.CurrentUsage(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if usage != 2.5e8 {
		t.Errorf("usage = %v", usage)
	}
	capacity, err := p.MaxCapacity(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if capacity != 1.6e10 {
		t.Errorf("capacity = %v", capacity)
	}

	p.UsageMetric = "app_cache_bytes"
	if usage, _ := p.CurrentUsage(ctx); usage != 150 {
		t.Errorf("untyped sum = %v, want 150", usage)
	}

	p.UsageMetric = "missing_bytes"
	if _, err := p.CurrentUsage(ctx); err == nil {
		t.Error("missing metric accepted")
	}

	bad := NewScrapeProvider(mustParse(t, srv.URL+"/nope"))
	if err := bad.Check(ctx); err == nil {
		t.Error("404 endpoint passed Check")
	}
}

func TestGathererProvider(t *testing.T) {
	reg := prometheus.NewRegistry()
	usage := 3.2e9
	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "process_resident_memory_bytes",
		Help: "Resident memory size in bytes.",
	}, func() float64 { return usage }))
	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "node_memory_MemTotal_bytes",
		Help: "Total memory.",
	}, func() float64 { return 6.4e10 }))

	p := NewGathererProvider(reg)
	ctx := context.Background()
	got, err := p.CurrentUsage(ctx)
	if err != nil || got != 3.2e9 {
		t.Fatalf("CurrentUsage = %v, %v", got, err)
	}
	usage = 4e9
	if got, _ := p.CurrentUsage(ctx); got != 4e9 {
		t.Errorf("CurrentUsage after change = %v", got)
	}
	if got, _ := p.MaxCapacity(ctx); got != 6.4e10 {
		t.Errorf("MaxCapacity = %v", got)
	}
}

type countingProvider struct {
	capacityCalls int
	err           error
}

func (c *countingProvider) CurrentUsage(ctx context.Context) (float64, error) { return 1, nil }

func (c *countingProvider) MaxCapacity(ctx context.Context) (float64, error) {
	c.capacityCalls++
	if c.err != nil {
		return 0, c.err
	}
	return 42, nil
}

func TestCache(t *testing.T) {
	inner := &countingProvider{err: errors.New("not yet")}
	c := NewCache(inner)
	ctx := context.Background()

	if _, err := c.MaxCapacity(ctx); err == nil {
		t.Fatal("error swallowed")
	}
	inner.err = nil
	for i := 0; i < 3; i++ {
		if v, err := c.MaxCapacity(ctx); err != nil || v != 42 {
			t.Fatalf("MaxCapacity = %v, %v", v, err)
		}
	}
	if inner.capacityCalls != 2 {
		t.Errorf("provider queried %d times, want 2", inner.capacityCalls)
	}
	c.Invalidate()
	c.MaxCapacity(ctx)
	if inner.capacityCalls != 3 {
		t.Errorf("Invalidate did not force a query")
	}
	if v, _ := c.CurrentUsage(ctx); v != 1 {
		t.Errorf("CurrentUsage not delegated")
	}
}

func TestGenerateURLVariants(t *testing.T) {
	variants := generateURLVariants(mustParse(t, "http://nuke-host:9100"))
	if len(variants) != 16 {
		t.Fatalf("got %d variants, want 16", len(variants))
	}
	if got := variants[0].String(); got != "http://nuke-host:9100" {
		t.Errorf("first variant = %s", got)
	}
	if got := variants[1].String(); got != "http://nuke-host:9100/metrics" {
		t.Errorf("second variant = %s", got)
	}

	withPath := generateURLVariants(mustParse(t, "https://h/custom"))
	for _, v := range withPath {
		if v.Path != "/custom" {
			t.Errorf("variant %s lost the path", v)
		}
	}
	if withPath[0].Scheme != "https" {
		t.Errorf("https not preferred: %s", withPath[0])
	}
}

func TestDetect(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/query", promHandler(t, map[string]string{"up": vectorResult("1")}))
	mux.HandleFunc("/metrics", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, metricsText)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	detected := Detect(context.Background(), mustParse(t, srv.URL))
	if len(detected) != 2 {
		t.Fatalf("detected %d sources, want 2", len(detected))
	}
	if detected[0].Kind != "prometheus" || detected[1].Kind != "scrape" {
		t.Errorf("kinds = %s, %s", detected[0].Kind, detected[1].Kind)
	}
	if _, ok := detected[1].Provider.(*ScrapeProvider); !ok {
		t.Errorf("second provider is %T", detected[1].Provider)
	}
}
