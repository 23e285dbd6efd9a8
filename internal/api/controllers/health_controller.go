package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"thisorthat/internal/services"
	"thisorthat/pkg/utils"
)

type HealthController struct {
	catalogService services.CatalogServiceInterface
}

func NewHealthController(catalogService services.CatalogServiceInterface) *HealthController {
	return &HealthController{catalogService: catalogService}
}

func (h *HealthController) Healthz(c *gin.Context) {
	designs := h.catalogService.Snapshot().Len()
	status := "ok"
	if designs < 2 {
		status = "degraded"
	}
	utils.RespondWithCode(c, http.StatusOK, gin.H{"status": status, "designs": designs}, "")
}
