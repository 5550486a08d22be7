package observability

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestMetricsExposition(t *testing.T) {
	m := NewMetrics()
	m.ObserveAPI("GET", "/api/analytics/skill-gaps", 200, 30*time.Millisecond)
	m.ObserveAPI("GET", "/api/analytics/skill-gaps", 200, 2*time.Second)
	m.ObserveCacheLookup("skill-gaps", true)
	m.ObserveDatasetInit(nil, map[string]int{"employees": 50})
	m.ObserveDatasetInit(errors.New("x"), nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()

	for _, want := range []string{
		`# TYPE wfa_api_requests_total counter`,
		`wfa_api_requests_total{method="GET",route="/api/analytics/skill-gaps",status="200"} 2`,
		`wfa_api_request_duration_seconds_bucket{method="GET",route="/api/analytics/skill-gaps",le="0.05"} 1`,
		`wfa_api_request_duration_seconds_bucket{method="GET",route="/api/analytics/skill-gaps",le="+Inf"} 2`,
		`wfa_api_request_duration_seconds_count{method="GET",route="/api/analytics/skill-gaps"} 2`,
		`wfa_response_cache_lookups_total{view="skill-gaps",result="hit"} 1`,
		`wfa_dataset_initializations_total{status="failed"} 1`,
		`wfa_dataset_records{collection="employees"} 50`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("missing %q in:\n%s", want, body)
		}
	}
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.ObserveAPI("GET", "/", 200, time.Millisecond)
	m.APIInflight(1)
	m.ObserveCacheLookup("v", false)
	m.ObserveDatasetInit(nil, nil)
	if err := m.WritePrometheus(&strings.Builder{}); err != nil {
		t.Fatalf("WritePrometheus: %v", err)
	}
}

func TestLabelEscaping(t *testing.T) {
	got := labelString([]string{"k"}, []string{"a\"b\\c\nd"})
	if got != `{k="a\"b\\c\nd"}` {
		t.Fatalf("labelString=%s", got)
	}
	if got := withLe("", "1"); got != `{le="1"}` {
		t.Fatalf("withLe=%s", got)
	}
}
