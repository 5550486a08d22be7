package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/workforce-analytics-backend/internal/analytics"
	"github.com/yungbote/workforce-analytics-backend/internal/clients/redis"
	"github.com/yungbote/workforce-analytics-backend/internal/data/repos"
	"github.com/yungbote/workforce-analytics-backend/internal/data/repos/testutil"
	httpH "github.com/yungbote/workforce-analytics-backend/internal/http/handlers"
	"github.com/yungbote/workforce-analytics-backend/internal/observability"
	"github.com/yungbote/workforce-analytics-backend/internal/platform/apierr"
	"github.com/yungbote/workforce-analytics-backend/internal/sampledata"
	"github.com/yungbote/workforce-analytics-backend/internal/services"
)

type memoryCache struct {
	mu         sync.Mutex
	generation redis.Generation
	entries    map[string][]byte
	gets       int
	hits       int
}

func newMemoryCache() *memoryCache { return &memoryCache{entries: map[string][]byte{}} }

func memoryKey(gen redis.Generation, view string) string { return fmt.Sprintf("%d:%s", gen, view) }

func (c *memoryCache) Get(_ context.Context, view string) ([]byte, redis.Generation, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	b, ok := c.entries[memoryKey(c.generation, view)]
	if ok {
		c.hits++
	}
	return b, c.generation, ok, nil
}

func (c *memoryCache) Set(_ context.Context, view string, gen redis.Generation, body []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[memoryKey(gen, view)] = append([]byte(nil), body...)
	return nil
}

func (c *memoryCache) Invalidate(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	return nil
}

func (c *memoryCache) Close() error { return nil }

func newTestRouter(t *testing.T, cache *memoryCache) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.DB(t)
	log := testutil.Logger(t)
	employees := repos.NewEmployeeRepo(db, log, 100)
	projects := repos.NewProjectRepo(db, log, 100)
	edges := repos.NewCollaborationRepo(db, log, 100)
	gaps := repos.NewSkillGapRepo(db, log, 100)

	gen := sampledata.NewSeeded(2024, func() time.Time { return time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC) })
	dataset := services.NewDatasetService(db, log, employees, projects, edges, gaps, gen, cache, nil)
	svc := services.NewAnalyticsService(db, log, employees, projects, edges, gaps)
	metrics := observability.NewMetrics()

	return NewRouter(RouterConfig{
		Log:              log,
		CORSOrigins:      []string{"*"},
		Metrics:          metrics,
		MetricsPath:      "/metrics",
		HealthHandler:    httpH.NewHealthHandler(),
		DatasetHandler:   httpH.NewDatasetHandler(dataset, metrics),
		AnalyticsHandler: httpH.NewAnalyticsHandler(log, svc, cache, metrics),
	})
}

func do(t *testing.T, r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode: %v (%s)", err, rec.Body.String())
	}
}

func TestRootAndHealth(t *testing.T) {
	r := newTestRouter(t, newMemoryCache())

	rec := do(t, r, http.MethodGet, "/api/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
	var root map[string]string
	decode(t, rec, &root)
	if root["message"] != httpH.RootMessage {
		t.Fatalf("root=%v", root)
	}

	if rec := do(t, r, http.MethodGet, "/healthcheck"); rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("health=%d %q", rec.Code, rec.Body.String())
	}
}

func TestEndToEndScenario(t *testing.T) {
	cache := newMemoryCache()
	r := newTestRouter(t, cache)

	rec := do(t, r, http.MethodPost, "/api/initialize-data")
	if rec.Code != http.StatusOK {
		t.Fatalf("init status=%d body=%s", rec.Code, rec.Body.String())
	}
	var init services.InitializeResult
	decode(t, rec, &init)
	want := services.DatasetCounts{Employees: 50, Projects: 8, Collaborations: 100, SkillGaps: 18}
	if init.Message != services.InitializedMessage || init.Counts != want {
		t.Fatalf("init=%+v", init)
	}

	rec = do(t, r, http.MethodGet, "/api/dashboard/overview")
	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard status=%d", rec.Code)
	}
	var dash struct {
		Metrics analytics.DashboardMetrics `json:"metrics"`
		Dist    map[string]int             `json:"department_distribution"`
		Stamp   string                     `json:"timestamp"`
	}
	decode(t, rec, &dash)
	if dash.Metrics.TotalEmployees != 50 || dash.Metrics.TotalProjects != 8 {
		t.Fatalf("metrics=%+v", dash.Metrics)
	}
	if dash.Metrics.AvgPerformanceScore < 0.6 || dash.Metrics.AvgPerformanceScore > 1.0 {
		t.Fatalf("avg performance=%v", dash.Metrics.AvgPerformanceScore)
	}
	total := 0
	for _, n := range dash.Dist {
		total += n
	}
	if total != 50 {
		t.Fatalf("distribution sums to %d", total)
	}
	if _, err := time.Parse(time.RFC3339Nano, dash.Stamp); err != nil {
		t.Fatalf("timestamp %q: %v", dash.Stamp, err)
	}

	for _, path := range []string{
		"/api/analytics/collaboration-network",
		"/api/analytics/skill-gaps",
		"/api/analytics/project-forecasting",
		"/api/analytics/performance-trends",
		"/api/analytics/semantic-matching",
	} {
		if rec := do(t, r, http.MethodGet, path); rec.Code != http.StatusOK {
			t.Fatalf("%s status=%d body=%s", path, rec.Code, rec.Body.String())
		}
	}
}

func TestCachedResponsesAreByteIdentical(t *testing.T) {
	cache := newMemoryCache()
	r := newTestRouter(t, cache)
	do(t, r, http.MethodPost, "/api/initialize-data")

	first := do(t, r, http.MethodGet, "/api/analytics/skill-gaps")
	second := do(t, r, http.MethodGet, "/api/analytics/skill-gaps")
	if first.Body.String() != second.Body.String() {
		t.Fatalf("cached body differs")
	}
	if cache.hits != 1 {
		t.Fatalf("hits=%d want 1", cache.hits)
	}
	if !strings.HasPrefix(second.Header().Get("Content-Type"), "application/json") {
		t.Fatalf("content-type=%q", second.Header().Get("Content-Type"))
	}

	// re-initialization moves to a new generation, so the next read recomputes
	do(t, r, http.MethodPost, "/api/initialize-data")
	if cache.generation != 2 {
		t.Fatalf("generation=%d", cache.generation)
	}
	do(t, r, http.MethodGet, "/api/analytics/skill-gaps")
	if cache.hits != 1 {
		t.Fatalf("stale entry served after init: hits=%d", cache.hits)
	}
}

func TestEmptyStoreReturnsZeroAggregates(t *testing.T) {
	r := newTestRouter(t, newMemoryCache())

	rec := do(t, r, http.MethodGet, "/api/analytics/collaboration-network")
	if rec.Code != http.StatusOK || rec.Body.String() != `{"nodes":[],"edges":[]}` {
		t.Fatalf("network=%d %s", rec.Code, rec.Body.String())
	}
	rec = do(t, r, http.MethodGet, "/api/dashboard/overview")
	var dash struct {
		Metrics analytics.DashboardMetrics `json:"metrics"`
	}
	decode(t, rec, &dash)
	if dash.Metrics.AvgPerformanceScore != 0 || dash.Metrics.TotalEmployees != 0 {
		t.Fatalf("metrics=%+v", dash.Metrics)
	}
}

// racingAnalytics moves the cache to a new generation while a skill-gap
// body is being computed, as a concurrent initialization would.
type racingAnalytics struct {
	services.AnalyticsService
	cache *memoryCache
	calls int
}

func (r *racingAnalytics) SkillGaps(ctx context.Context) (*analytics.SkillGapAnalysis, error) {
	r.calls++
	if r.calls == 1 {
		_ = r.cache.Invalidate(ctx)
	}
	return &analytics.SkillGapAnalysis{
		ByDepartment: analytics.NewOrderedMap[[]analytics.GapDetail](),
		CriticalGaps: []analytics.CriticalGap{},
		Summary:      analytics.SkillGapSummary{TotalGaps: r.calls},
	}, nil
}

func TestBodyComputedAcrossInvalidateIsNotServedLater(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := testutil.Logger(t)
	cache := newMemoryCache()
	svc := &racingAnalytics{cache: cache}
	r := NewRouter(RouterConfig{
		Log:              log,
		AnalyticsHandler: httpH.NewAnalyticsHandler(log, svc, cache, nil),
	})

	first := do(t, r, http.MethodGet, "/api/analytics/skill-gaps")
	second := do(t, r, http.MethodGet, "/api/analytics/skill-gaps")
	if first.Code != http.StatusOK || second.Code != http.StatusOK {
		t.Fatalf("status=%d,%d", first.Code, second.Code)
	}
	if svc.calls != 2 {
		t.Fatalf("stale body served from cache: compute calls=%d", svc.calls)
	}
	if first.Body.String() == second.Body.String() {
		t.Fatalf("second response repeated the pre-invalidate body")
	}

	third := do(t, r, http.MethodGet, "/api/analytics/skill-gaps")
	if third.Body.String() != second.Body.String() || svc.calls != 2 {
		t.Fatalf("fresh body not cached: calls=%d", svc.calls)
	}
}

type failingAnalytics struct{ services.AnalyticsService }

func (failingAnalytics) SkillGaps(context.Context) (*analytics.SkillGapAnalysis, error) {
	return nil, apierr.Internal(services.CodeAnalyticsFailed, errors.New("store unavailable"))
}

func TestFailureEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := testutil.Logger(t)
	r := NewRouter(RouterConfig{
		Log:              log,
		AnalyticsHandler: httpH.NewAnalyticsHandler(log, failingAnalytics{}, nil, nil),
	})

	rec := do(t, r, http.MethodGet, "/api/analytics/skill-gaps")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d", rec.Code)
	}
	var body struct {
		Detail string `json:"detail"`
		Code   string `json:"code"`
	}
	decode(t, rec, &body)
	if body.Detail != "store unavailable" || body.Code != services.CodeAnalyticsFailed {
		t.Fatalf("body=%+v", body)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(t, newMemoryCache())
	do(t, r, http.MethodGet, "/api/")

	rec := do(t, r, http.MethodGet, "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `wfa_api_requests_total{method="GET",route="/api/",status="200"} 1`) {
		t.Fatalf("metrics body:\n%s", rec.Body.String())
	}
}
