package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/workforce-analytics-backend/internal/clients/redis"
	"github.com/yungbote/workforce-analytics-backend/internal/http/response"
	"github.com/yungbote/workforce-analytics-backend/internal/observability"
	"github.com/yungbote/workforce-analytics-backend/internal/platform/apierr"
	"github.com/yungbote/workforce-analytics-backend/internal/platform/ctxutil"
	"github.com/yungbote/workforce-analytics-backend/internal/platform/logger"
	"github.com/yungbote/workforce-analytics-backend/internal/services"
)

// Cache view names. The dashboard carries a generation timestamp and is
// never cached.
const (
	ViewCollaborationNetwork = "collaboration-network"
	ViewSkillGaps            = "skill-gaps"
	ViewProjectForecasting   = "project-forecasting"
	ViewPerformanceTrends    = "performance-trends"
	ViewSemanticMatching     = "semantic-matching"
)

type AnalyticsHandler struct {
	log       *logger.Logger
	analytics services.AnalyticsService
	cache     redis.ResponseCache
	metrics   *observability.Metrics
}

func NewAnalyticsHandler(log *logger.Logger, analytics services.AnalyticsService, cache redis.ResponseCache, metrics *observability.Metrics) *AnalyticsHandler {
	if cache == nil {
		cache = redis.NewNoopCache()
	}
	return &AnalyticsHandler{
		log:       log.With("handler", "AnalyticsHandler"),
		analytics: analytics,
		cache:     cache,
		metrics:   metrics,
	}
}

// GET /api/dashboard/overview
func (h *AnalyticsHandler) DashboardOverview(c *gin.Context) {
	h.serve(c, "", func(ctx context.Context) (any, error) { return h.analytics.Dashboard(ctx) })
}

// GET /api/analytics/collaboration-network
func (h *AnalyticsHandler) CollaborationNetwork(c *gin.Context) {
	h.serve(c, ViewCollaborationNetwork, func(ctx context.Context) (any, error) { return h.analytics.CollaborationNetwork(ctx) })
}

// GET /api/analytics/skill-gaps
func (h *AnalyticsHandler) SkillGaps(c *gin.Context) {
	h.serve(c, ViewSkillGaps, func(ctx context.Context) (any, error) { return h.analytics.SkillGaps(ctx) })
}

// GET /api/analytics/project-forecasting
func (h *AnalyticsHandler) ProjectForecasting(c *gin.Context) {
	h.serve(c, ViewProjectForecasting, func(ctx context.Context) (any, error) { return h.analytics.ProjectForecast(ctx) })
}

// GET /api/analytics/performance-trends
func (h *AnalyticsHandler) PerformanceTrends(c *gin.Context) {
	h.serve(c, ViewPerformanceTrends, func(ctx context.Context) (any, error) { return h.analytics.PerformanceTrends(ctx) })
}

// GET /api/analytics/semantic-matching
func (h *AnalyticsHandler) SemanticMatching(c *gin.Context) {
	h.serve(c, ViewSemanticMatching, func(ctx context.Context) (any, error) { return h.analytics.SkillMatching(ctx) })
}

// serve answers from the response cache when view is set and cached,
// otherwise computes, encodes and stores the body under the generation the
// lookup saw. Cache faults are logged and never fail the request; a failed
// lookup also skips the store.
func (h *AnalyticsHandler) serve(c *gin.Context, view string, compute func(context.Context) (any, error)) {
	ctx := c.Request.Context()

	cacheable := view != ""
	var gen redis.Generation
	if cacheable {
		body, g, hit, err := h.cache.Get(ctx, view)
		if err != nil {
			h.log.Warn("response cache get failed", append([]interface{}{"view", view, "error", err}, ctxutil.LogFields(ctx)...)...)
			cacheable = false
		}
		h.metrics.ObserveCacheLookup(view, hit)
		if hit {
			response.RespondJSONBytes(c, body)
			return
		}
		gen = g
	}

	out, err := compute(ctx)
	if err != nil {
		status, code := apierr.StatusOf(err, services.CodeAnalyticsFailed)
		response.RespondError(c, status, code, err)
		return
	}
	body, err := json.Marshal(out)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, services.CodeAnalyticsFailed, err)
		return
	}

	if cacheable {
		if err := h.cache.Set(ctx, view, gen, body); err != nil {
			h.log.Warn("response cache set failed", append([]interface{}{"view", view, "generation", gen, "error", err}, ctxutil.LogFields(ctx)...)...)
		}
	}
	response.RespondJSONBytes(c, body)
}
