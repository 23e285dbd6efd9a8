package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"thisorthat/internal/models/request_models"
	"thisorthat/internal/services"
	"thisorthat/pkg/utils"
)

// MaxImportBytes bounds the dataset body accepted by ImportDesigns.
const MaxImportBytes = 32 << 20

type AdminController struct {
	authService    services.AuthServiceInterface
	catalogService services.CatalogServiceInterface
}

func NewAdminController(authService services.AuthServiceInterface, catalogService services.CatalogServiceInterface) *AdminController {
	return &AdminController{authService: authService, catalogService: catalogService}
}

// Login godoc
// @Summary Admin login
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /admin/login [post]
func (a *AdminController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := a.authService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, token, "Login successful")
}

// ImportDesigns godoc
// @Summary Import a design dataset
// @Description Normalizes a raw dataset document, upserts its designs and reloads the catalog
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /admin/designs/import [post]
func (a *AdminController) ImportDesigns(c *gin.Context) {
	body := http.MaxBytesReader(c.Writer, c.Request.Body, MaxImportBytes)
	report, err := a.catalogService.ImportDocument(c.Request.Context(), body)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Dataset imported")
}
