package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const RootMessage = "Workforce Productivity Analytics API"

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// Root answers GET /api/ with the service banner.
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": RootMessage})
}
