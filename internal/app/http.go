package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/workforce-analytics-backend/internal/config"
	httpx "github.com/yungbote/workforce-analytics-backend/internal/http"
	httpH "github.com/yungbote/workforce-analytics-backend/internal/http/handlers"
	"github.com/yungbote/workforce-analytics-backend/internal/observability"
	"github.com/yungbote/workforce-analytics-backend/internal/platform/logger"
)

type Handlers struct {
	Health    *httpH.HealthHandler
	Dataset   *httpH.DatasetHandler
	Analytics *httpH.AnalyticsHandler
}

func wireHandlers(log *logger.Logger, services Services, clients Clients, metrics *observability.Metrics) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:    httpH.NewHealthHandler(),
		Dataset:   httpH.NewDatasetHandler(services.Dataset, metrics),
		Analytics: httpH.NewAnalyticsHandler(log, services.Analytics, clients.Cache, metrics),
	}
}

func wireRouter(log *logger.Logger, cfg *config.Config, handlers Handlers, metrics *observability.Metrics) *gin.Engine {
	tracing := ""
	if cfg.Otel.Enabled {
		tracing = cfg.Otel.ServiceName
		if tracing == "" {
			tracing = "workforce-analytics"
		}
	}
	return httpx.NewRouter(httpx.RouterConfig{
		Log:              log,
		CORSOrigins:      cfg.HTTP.CORSOrigins,
		TracingService:   tracing,
		Metrics:          metrics,
		MetricsPath:      cfg.Metrics.Path,
		HealthHandler:    handlers.Health,
		DatasetHandler:   handlers.Dataset,
		AnalyticsHandler: handlers.Analytics,
	})
}
