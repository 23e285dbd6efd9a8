package controllers

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thisorthat/internal/dataset"
	"thisorthat/internal/models/response_models"
	"thisorthat/internal/preference"
	"thisorthat/internal/services"
	"thisorthat/pkg/middleware"
	"thisorthat/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	TraceID string          `json:"trace_id"`
	Data    json.RawMessage `json:"data"`
}

func perform(t *testing.T, method, route, target string, body io.Reader, h gin.HandlerFunc) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Handle(method, route, h)

	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	assert.NotEmpty(t, env.TraceID)
	return w, env
}

func TestDesignController(t *testing.T) {
	catalog := &stubCatalog{page: response_models.DesignPage{
		Items: []response_models.DesignResponse{{ID: "d1", Tags: map[string][]string{}}},
		Total: 1,
	}}
	ctrl := NewDesignController(catalog)

	w, env := perform(t, http.MethodGet, "/designs", "/designs?page=2&pageSize=5", nil, ctrl.ListDesigns)
	assert.Equal(t, http.StatusOK, w.Code)
	var page response_models.DesignPage
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 5, page.PageSize)

	w, _ = perform(t, http.MethodGet, "/designs", "/designs?pageSize=0", nil, ctrl.ListDesigns)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	catalog.err = utils.ErrDesignNotFound
	w, env = perform(t, http.MethodGet, "/designs/:id", "/designs/nope", nil, ctrl.GetDesign)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "error", env.Status)
}

func TestTagController(t *testing.T) {
	tags := &stubTags{out: []response_models.TagCategoryResponse{{Category: "style"}}}
	ctrl := NewTagController(tags)

	w, _ := perform(t, http.MethodGet, "/tags", "/tags?category=style", nil, ctrl.ListTagsHandler)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "style", tags.gotCategory)

	tags.err = fmt.Errorf("%w: unknown category", utils.ErrInvalidInput)
	w, _ = perform(t, http.MethodGet, "/tags", "/tags?category=mood", nil, ctrl.ListTagsHandler)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQuizController_StartAndChoose(t *testing.T) {
	quiz := &stubQuiz{resp: &response_models.QuizSessionResponse{SessionID: "s1", Round: 1, TotalRounds: 10}}
	ctrl := NewQuizController(quiz, &stubResults{})

	w, env := perform(t, http.MethodPost, "/quiz/sessions", "/quiz/sessions", nil, ctrl.StartSession)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Zero(t, quiz.gotRounds)
	var session response_models.QuizSessionResponse
	require.NoError(t, json.Unmarshal(env.Data, &session))
	assert.Equal(t, "s1", session.SessionID)

	w, _ = perform(t, http.MethodPost, "/quiz/sessions", "/quiz/sessions", strings.NewReader(`{"rounds": 5}`), ctrl.StartSession)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 5, quiz.gotRounds)

	w, _ = perform(t, http.MethodPost, "/quiz/sessions", "/quiz/sessions", strings.NewReader(`{"rounds": 500}`), ctrl.StartSession)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = perform(t, http.MethodPost, "/quiz/sessions/:id/choices", "/quiz/sessions/s1/choices",
		strings.NewReader(`{"selectedId": "d2", "timeToDecisionSeconds": 2.5}`), ctrl.Choose)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "s1", quiz.gotSession)
	assert.Equal(t, "d2", quiz.gotChoice)
	require.NotNil(t, quiz.gotTime)
	assert.Equal(t, 2.5, *quiz.gotTime)

	w, _ = perform(t, http.MethodPost, "/quiz/sessions/:id/choices", "/quiz/sessions/s1/choices",
		strings.NewReader(`{}`), ctrl.Choose)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQuizController_ChooseErrors(t *testing.T) {
	cases := map[error]int{
		utils.ErrSessionComplete: http.StatusConflict,
		utils.ErrInvalidChoice:   http.StatusBadRequest,
		utils.ErrSessionNotFound: http.StatusNotFound,
	}
	for err, code := range cases {
		ctrl := NewQuizController(&stubQuiz{err: err}, &stubResults{})
		w, _ := perform(t, http.MethodPost, "/quiz/sessions/:id/choices", "/quiz/sessions/s1/choices",
			strings.NewReader(`{"selectedId": "d2"}`), ctrl.Choose)
		assert.Equal(t, code, w.Code, err.Error())
	}
}

func TestQuizController_Results(t *testing.T) {
	results := &stubResults{
		profile: &preference.ResultsProfile{Summary: "Your taste is clearly defined.", TopRecommendations: []string{}},
		saved:   &response_models.SavedResultResponse{ID: "r1"},
	}
	ctrl := NewQuizController(&stubQuiz{}, results)

	w, env := perform(t, http.MethodGet, "/quiz/sessions/:id/results", "/quiz/sessions/s1/results", nil, ctrl.GetResults)
	assert.Equal(t, http.StatusOK, w.Code)
	var profile preference.ResultsProfile
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.Equal(t, "Your taste is clearly defined.", profile.Summary)

	w, _ = perform(t, http.MethodPost, "/quiz/sessions/:id/results", "/quiz/sessions/s1/results",
		strings.NewReader(`{"email": "me@example.com"}`), ctrl.SaveResults)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "me@example.com", results.gotEmail)

	w, _ = perform(t, http.MethodPost, "/quiz/sessions/:id/results", "/quiz/sessions/s1/results",
		strings.NewReader(`{"email": "not-an-email"}`), ctrl.SaveResults)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResultsController(t *testing.T) {
	results := &stubResults{profile: &preference.ResultsProfile{TopRecommendations: []string{}}}
	feedback := &stubFeedback{feedback: &response_models.FeedbackResponse{ID: "f1", Rating: 4}}
	ctrl := NewResultsController(results, feedback)

	w, _ := perform(t, http.MethodPost, "/profiles/analyze", "/profiles/analyze",
		strings.NewReader(`{"selections": [{"selectedId": "d1", "rejectedId": "d2", "roundNumber": 1}]}`), ctrl.Analyze)
	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, results.gotSelections, 1)
	assert.Equal(t, "d1", results.gotSelections[0].SelectedID)

	w, _ = perform(t, http.MethodPost, "/profiles/analyze", "/profiles/analyze", strings.NewReader(`{}`), ctrl.Analyze)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = perform(t, http.MethodPost, "/results/:id/feedback", "/results/r1/feedback",
		strings.NewReader(`{"rating": 4, "comment": "nice"}`), ctrl.AddFeedback)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 4, feedback.gotRating)

	w, _ = perform(t, http.MethodPost, "/results/:id/feedback", "/results/r1/feedback",
		strings.NewReader(`{"rating": 9}`), ctrl.AddFeedback)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = perform(t, http.MethodGet, "/results/:id/feedback", "/results/r1/feedback?page=3", nil, ctrl.ListFeedback)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, feedback.gotPage)

	results.err = utils.ErrResultNotFound
	w, _ = perform(t, http.MethodGet, "/results/:id", "/results/r1", nil, ctrl.GetResult)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminController(t *testing.T) {
	auth := &stubAuth{resp: &response_models.LoginResponse{Token: "tok", ExpiresIn: 3600}}
	catalog := &stubCatalog{report: &dataset.Report{Total: 2, Designs: 2}}
	ctrl := NewAdminController(auth, catalog)

	w, env := perform(t, http.MethodPost, "/admin/login", "/admin/login",
		strings.NewReader(`{"email": "admin@example.com", "password": "secret-pass"}`), ctrl.Login)
	assert.Equal(t, http.StatusOK, w.Code)
	var login response_models.LoginResponse
	require.NoError(t, json.Unmarshal(env.Data, &login))
	assert.Equal(t, "tok", login.Token)

	auth.err = utils.ErrInvalidCredentials
	w, _ = perform(t, http.MethodPost, "/admin/login", "/admin/login",
		strings.NewReader(`{"email": "admin@example.com", "password": "secret-pass"}`), ctrl.Login)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	doc := `{"designs": [{"id": "a"}]}`
	w, env = perform(t, http.MethodPost, "/admin/designs/import", "/admin/designs/import", strings.NewReader(doc), ctrl.ImportDesigns)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, doc, string(catalog.imported))
	var report dataset.Report
	require.NoError(t, json.Unmarshal(env.Data, &report))
	assert.Equal(t, 2, report.Designs)

	catalog.err = fmt.Errorf("%w: no valid designs", utils.ErrDatasetInvalid)
	w, _ = perform(t, http.MethodPost, "/admin/designs/import", "/admin/designs/import", strings.NewReader(doc), ctrl.ImportDesigns)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHealthController(t *testing.T) {
	catalog := &stubCatalog{snapshot: services.NewCatalog([]preference.Design{{ID: "a"}, {ID: "b"}})}
	ctrl := NewHealthController(catalog)

	w, env := perform(t, http.MethodGet, "/healthz", "/healthz", nil, ctrl.Healthz)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok", "designs": 2}`, string(env.Data))

	w, env = perform(t, http.MethodGet, "/healthz", "/healthz", nil, NewHealthController(&stubCatalog{}).Healthz)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "degraded", "designs": 0}`, string(env.Data))
}
