package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/workforce-analytics-backend/internal/http/handlers"
	httpMW "github.com/yungbote/workforce-analytics-backend/internal/http/middleware"
	"github.com/yungbote/workforce-analytics-backend/internal/observability"
	"github.com/yungbote/workforce-analytics-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	CORSOrigins []string

	// TracingService enables otelgin spans under this service name.
	TracingService string
	Metrics        *observability.Metrics
	MetricsPath    string

	HealthHandler    *httpH.HealthHandler
	DatasetHandler   *httpH.DatasetHandler
	AnalyticsHandler *httpH.AnalyticsHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	if cfg.TracingService != "" {
		r.Use(otelgin.Middleware(cfg.TracingService))
	}
	r.Use(httpMW.RequestIDs())
	r.Use(httpMW.AccessLog(cfg.Log, "/healthcheck", cfg.MetricsPath))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.Recovery(cfg.Log))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	if cfg.Metrics != nil && cfg.MetricsPath != "" {
		r.GET(cfg.MetricsPath, gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api")
	{
		if cfg.HealthHandler != nil {
			api.GET("/", cfg.HealthHandler.Root)
		}

		// Dataset
		if cfg.DatasetHandler != nil {
			api.POST("/initialize-data", cfg.DatasetHandler.Initialize)
		}

		// Analytics
		if cfg.AnalyticsHandler != nil {
			api.GET("/dashboard/overview", cfg.AnalyticsHandler.DashboardOverview)
			api.GET("/analytics/collaboration-network", cfg.AnalyticsHandler.CollaborationNetwork)
			api.GET("/analytics/skill-gaps", cfg.AnalyticsHandler.SkillGaps)
			api.GET("/analytics/project-forecasting", cfg.AnalyticsHandler.ProjectForecasting)
			api.GET("/analytics/performance-trends", cfg.AnalyticsHandler.PerformanceTrends)
			api.GET("/analytics/semantic-matching", cfg.AnalyticsHandler.SemanticMatching)
		}
	}

	return r
}
