package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"thisorthat/internal/models/request_models"
	"thisorthat/internal/services"
	"thisorthat/pkg/utils"
)

type ResultsController struct {
	resultsService  services.ResultsServiceInterface
	feedbackService services.FeedbackServiceInterface
}

func NewResultsController(resultsService services.ResultsServiceInterface, feedbackService services.FeedbackServiceInterface) *ResultsController {
	return &ResultsController{resultsService: resultsService, feedbackService: feedbackService}
}

// GetResult godoc
// @Summary Saved result
// @Tags Results
// @Produce json
// @Param id path string true "Result ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /results/{id} [get]
func (r *ResultsController) GetResult(c *gin.Context) {
	result, err := r.resultsService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Fetched result successfully")
}

// Analyze godoc
// @Summary Analyze selections
// @Description Builds a preference profile from caller supplied selections
// @Tags Results
// @Accept json
// @Produce json
// @Param request body request_models.AnalyzeRequest true "Selections"
// @Success 200 {object} utils.APIResponse
// @Router /profiles/analyze [post]
func (r *ResultsController) Analyze(c *gin.Context) {
	var req request_models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	profile, err := r.resultsService.Analyze(c.Request.Context(), req.Selections)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Built preference profile")
}

// AddFeedback godoc
// @Summary Rate a result
// @Tags Results
// @Accept json
// @Produce json
// @Param id path string true "Result ID"
// @Param request body request_models.AddFeedbackRequest true "Feedback payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /results/{id}/feedback [post]
func (r *ResultsController) AddFeedback(c *gin.Context) {
	var req request_models.AddFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	feedback, err := r.feedbackService.AddFeedback(c.Request.Context(), c.Param("id"), req.Rating, req.Comment)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondWithCode(c, http.StatusCreated, feedback, "Feedback added successfully")
}

// ListFeedback godoc
// @Summary List feedback of a result
// @Tags Results
// @Param id path string true "Result ID"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse
// @Router /results/{id}/feedback [get]
func (r *ResultsController) ListFeedback(c *gin.Context) {
	page, pageSize, err := utils.ParsePagination(c, 10)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	feedbacks, err := r.feedbackService.GetFeedback(c.Request.Context(), c.Param("id"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, feedbacks, "Feedback fetched successfully")
}
