package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"thisorthat/internal/models/request_models"
	"thisorthat/internal/services"
	"thisorthat/pkg/utils"
)

type QuizController struct {
	quizService    services.QuizServiceInterface
	resultsService services.ResultsServiceInterface
}

func NewQuizController(quizService services.QuizServiceInterface, resultsService services.ResultsServiceInterface) *QuizController {
	return &QuizController{quizService: quizService, resultsService: resultsService}
}

// StartSession godoc
// @Summary Start a quiz session
// @Description Creates a session and returns the first pair of designs
// @Tags Quiz
// @Accept json
// @Produce json
// @Param request body request_models.StartQuizRequest false "Optional round override"
// @Success 201 {object} utils.APIResponse
// @Router /quiz/sessions [post]
func (q *QuizController) StartSession(c *gin.Context) {
	var req request_models.StartQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	session, err := q.quizService.Start(c.Request.Context(), req.Rounds)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondWithCode(c, http.StatusCreated, session, "Quiz session started")
}

// GetSession godoc
// @Summary Quiz session state
// @Tags Quiz
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /quiz/sessions/{id} [get]
func (q *QuizController) GetSession(c *gin.Context) {
	session, err := q.quizService.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Fetched quiz session successfully")
}

// Choose godoc
// @Summary Record a choice
// @Description Picks one design of the current pair and advances the session
// @Tags Quiz
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body request_models.ChoiceRequest true "Choice payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /quiz/sessions/{id}/choices [post]
func (q *QuizController) Choose(c *gin.Context) {
	var req request_models.ChoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	session, err := q.quizService.Choose(c.Request.Context(), c.Param("id"), req.SelectedID, req.TimeToDecisionSeconds)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Choice recorded")
}

// GetResults godoc
// @Summary Preference profile of a session
// @Tags Quiz
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Router /quiz/sessions/{id}/results [get]
func (q *QuizController) GetResults(c *gin.Context) {
	profile, err := q.resultsService.Profile(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Built preference profile")
}

// SaveResults godoc
// @Summary Save a session profile
// @Tags Quiz
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body request_models.SaveResultRequest false "Optional contact email"
// @Success 201 {object} utils.APIResponse
// @Router /quiz/sessions/{id}/results [post]
func (q *QuizController) SaveResults(c *gin.Context) {
	var req request_models.SaveResultRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	saved, err := q.resultsService.Save(c.Request.Context(), c.Param("id"), req.Email)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondWithCode(c, http.StatusCreated, saved, "Result saved")
}
