package observability

import (
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Metrics holds the process counters exposed in Prometheus text format. A
// nil *Metrics is valid and records nothing.
type Metrics struct {
	apiRequests    *CounterVec
	apiLatency     *HistogramVec
	apiInflight    *GaugeVec
	cacheLookups   *CounterVec
	datasetInits   *CounterVec
	datasetRecords *GaugeVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		apiRequests: NewCounterVec("wfa_api_requests_total", "Total API requests by method/route/status.", []string{"method", "route", "status"}),
		apiLatency: NewHistogramVec(
			"wfa_api_request_duration_seconds",
			"API request latency in seconds by method/route.",
			[]string{"method", "route"},
			[]float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		),
		apiInflight:    NewGaugeVec("wfa_api_inflight_requests", "In-flight API requests.", nil),
		cacheLookups:   NewCounterVec("wfa_response_cache_lookups_total", "Response cache lookups by view/result.", []string{"view", "result"}),
		datasetInits:   NewCounterVec("wfa_dataset_initializations_total", "Dataset initializations by status.", []string{"status"}),
		datasetRecords: NewGaugeVec("wfa_dataset_records", "Records written by the last initialization, by collection.", []string{"collection"}),
	}
}

func (m *Metrics) ObserveAPI(method, route string, status int, dur time.Duration) {
	if m == nil {
		return
	}
	if method == "" {
		method = "UNKNOWN"
	}
	if route == "" {
		route = "unmatched"
	}
	m.apiRequests.Inc(method, route, strconv.Itoa(status))
	m.apiLatency.Observe(dur.Seconds(), method, route)
}

func (m *Metrics) APIInflight(delta float64) {
	if m == nil {
		return
	}
	m.apiInflight.Add(delta)
}

func (m *Metrics) ObserveCacheLookup(view string, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.Inc(view, result)
}

// ObserveDatasetInit records an initialization outcome. counts is keyed by
// collection name and only applied on success.
func (m *Metrics) ObserveDatasetInit(err error, counts map[string]int) {
	if m == nil {
		return
	}
	if err != nil {
		m.datasetInits.Inc("failed")
		return
	}
	m.datasetInits.Inc("succeeded")
	for collection, n := range counts {
		m.datasetRecords.Set(float64(n), collection)
	}
}

func (m *Metrics) WritePrometheus(w io.Writer) error {
	if m == nil {
		return nil
	}
	for _, f := range []interface{ WritePrometheus(io.Writer) error }{
		m.apiRequests, m.apiLatency, m.apiInflight, m.cacheLookups, m.datasetInits, m.datasetRecords,
	} {
		if err := f.WritePrometheus(w); err != nil {
			return err
		}
	}
	return nil
}

func (m *Metrics) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")
		_ = m.WritePrometheus(w)
	})
}

// ---- metric primitives ----

type series struct {
	name       string
	help       string
	kind       string
	labelNames []string
}

func (s series) header(w io.Writer) error {
	_, err := fmt.Fprintf(w, "# HELP %s %s\n# TYPE %s %s\n", s.name, s.help, s.name, s.kind)
	return err
}

type CounterVec struct {
	series
	mu     sync.RWMutex
	values map[string]float64
}

func NewCounterVec(name, help string, labels []string) *CounterVec {
	return &CounterVec{series: series{name, help, "counter", labels}, values: map[string]float64{}}
}

func (c *CounterVec) Inc(values ...string) {
	lbl := labelString(c.labelNames, values)
	c.mu.Lock()
	c.values[lbl]++
	c.mu.Unlock()
}

func (c *CounterVec) Value(values ...string) float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.values[labelString(c.labelNames, values)]
}

func (c *CounterVec) WritePrometheus(w io.Writer) error {
	if err := c.header(w); err != nil {
		return err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, k := range sortedKeys(c.values) {
		if _, err := fmt.Fprintf(w, "%s%s %g\n", c.name, k, c.values[k]); err != nil {
			return err
		}
	}
	return nil
}

type GaugeVec struct {
	series
	mu     sync.RWMutex
	values map[string]float64
}

func NewGaugeVec(name, help string, labels []string) *GaugeVec {
	return &GaugeVec{series: series{name, help, "gauge", labels}, values: map[string]float64{}}
}

func (g *GaugeVec) Set(v float64, values ...string) {
	lbl := labelString(g.labelNames, values)
	g.mu.Lock()
	g.values[lbl] = v
	g.mu.Unlock()
}

func (g *GaugeVec) Add(v float64, values ...string) {
	lbl := labelString(g.labelNames, values)
	g.mu.Lock()
	g.values[lbl] += v
	g.mu.Unlock()
}

func (g *GaugeVec) WritePrometheus(w io.Writer) error {
	if err := g.header(w); err != nil {
		return err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, k := range sortedKeys(g.values) {
		if _, err := fmt.Fprintf(w, "%s%s %g\n", g.name, k, g.values[k]); err != nil {
			return err
		}
	}
	return nil
}

type HistogramVec struct {
	series
	buckets []float64
	mu      sync.RWMutex
	values  map[string]*histogram
}

type histogram struct {
	counts []uint64 // cumulative per bucket, last is +Inf
	sum    float64
	total  uint64
}

func NewHistogramVec(name, help string, labels []string, buckets []float64) *HistogramVec {
	return &HistogramVec{series: series{name, help, "histogram", labels}, buckets: buckets, values: map[string]*histogram{}}
}

func (h *HistogramVec) Observe(v float64, values ...string) {
	lbl := labelString(h.labelNames, values)
	h.mu.Lock()
	defer h.mu.Unlock()
	hist, ok := h.values[lbl]
	if !ok {
		hist = &histogram{counts: make([]uint64, len(h.buckets)+1)}
		h.values[lbl] = hist
	}
	hist.sum += v
	hist.total++
	for i, b := range h.buckets {
		if v <= b {
			hist.counts[i]++
		}
	}
	hist.counts[len(h.buckets)]++
}

func (h *HistogramVec) WritePrometheus(w io.Writer) error {
	if err := h.header(w); err != nil {
		return err
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	keys := make([]string, 0, len(h.values))
	for k := range h.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := h.values[k]
		for i, b := range h.buckets {
			if _, err := fmt.Fprintf(w, "%s_bucket%s %d\n", h.name, withLe(k, strconv.FormatFloat(b, 'g', -1, 64)), v.counts[i]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s_bucket%s %d\n%s_sum%s %g\n%s_count%s %d\n",
			h.name, withLe(k, "+Inf"), v.counts[len(h.buckets)],
			h.name, k, v.sum,
			h.name, k, v.total); err != nil {
			return err
		}
	}
	return nil
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func labelString(names []string, values []string) string {
	if len(names) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("{")
	for i, name := range names {
		if i > 0 {
			b.WriteString(",")
		}
		val := "unknown"
		if i < len(values) {
			val = values[i]
		}
		b.WriteString(name)
		b.WriteString("=\"")
		b.WriteString(escapeLabel(val))
		b.WriteString("\"")
	}
	b.WriteString("}")
	return b.String()
}

func escapeLabel(v string) string {
	v = strings.ReplaceAll(v, "\\", "\\\\")
	v = strings.ReplaceAll(v, "\"", "\\\"")
	return strings.ReplaceAll(v, "\n", "\\n")
}

func withLe(labels string, le string) string {
	if labels == "" {
		return "{le=\"" + le + "\"}"
	}
	return strings.TrimSuffix(labels, "}") + ",le=\"" + le + "\"}"
}
