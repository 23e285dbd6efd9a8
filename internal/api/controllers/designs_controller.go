package controllers

import (
	"github.com/gin-gonic/gin"

	"thisorthat/internal/services"
	"thisorthat/pkg/utils"
)

type DesignController struct {
	catalogService services.CatalogServiceInterface
}

func NewDesignController(catalogService services.CatalogServiceInterface) *DesignController {
	return &DesignController{catalogService: catalogService}
}

// ListDesigns godoc
// @Summary List designs
// @Description Paginated view of the current design catalog, ordered by id
// @Tags Designs
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse
// @Router /designs [get]
func (d *DesignController) ListDesigns(c *gin.Context) {
	page, pageSize, err := utils.ParsePagination(c, 20)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	designs, err := d.catalogService.ListDesigns(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, designs, "Fetched designs successfully")
}

// GetDesign godoc
// @Summary Get a design
// @Tags Designs
// @Produce json
// @Param id path string true "Design ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /designs/{id} [get]
func (d *DesignController) GetDesign(c *gin.Context) {
	design, err := d.catalogService.GetDesign(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, design, "Fetched design successfully")
}
