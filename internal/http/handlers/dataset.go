package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/workforce-analytics-backend/internal/http/response"
	"github.com/yungbote/workforce-analytics-backend/internal/observability"
	"github.com/yungbote/workforce-analytics-backend/internal/platform/apierr"
	"github.com/yungbote/workforce-analytics-backend/internal/services"
)

type DatasetHandler struct {
	dataset services.DatasetService
	metrics *observability.Metrics
}

func NewDatasetHandler(dataset services.DatasetService, metrics *observability.Metrics) *DatasetHandler {
	return &DatasetHandler{dataset: dataset, metrics: metrics}
}

// POST /api/initialize-data
func (h *DatasetHandler) Initialize(c *gin.Context) {
	res, err := h.dataset.Initialize(c.Request.Context())
	if err != nil {
		h.metrics.ObserveDatasetInit(err, nil)
		status, code := apierr.StatusOf(err, services.CodeInitializeFailed)
		response.RespondError(c, status, code, err)
		return
	}
	h.metrics.ObserveDatasetInit(nil, map[string]int{
		"employees":              res.Counts.Employees,
		"projects":               res.Counts.Projects,
		"collaboration_networks": res.Counts.Collaborations,
		"skill_gaps":             res.Counts.SkillGaps,
	})
	response.RespondOK(c, res)
}
