package controllers

import (
	"context"
	"io"

	"thisorthat/internal/dataset"
	"thisorthat/internal/models/request_models"
	"thisorthat/internal/models/response_models"
	"thisorthat/internal/preference"
	"thisorthat/internal/services"
)

type stubCatalog struct {
	services.CatalogServiceInterface
	snapshot *services.Catalog
	page     response_models.DesignPage
	design   *response_models.DesignResponse
	report   *dataset.Report
	err      error
	imported []byte
}

func (s *stubCatalog) Snapshot() *services.Catalog {
	if s.snapshot == nil {
		return services.NewCatalog(nil)
	}
	return s.snapshot
}

func (s *stubCatalog) ListDesigns(ctx context.Context, page, pageSize int) (response_models.DesignPage, error) {
	s.page.Page, s.page.PageSize = page, pageSize
	return s.page, s.err
}

func (s *stubCatalog) GetDesign(ctx context.Context, id string) (*response_models.DesignResponse, error) {
	return s.design, s.err
}

func (s *stubCatalog) ImportDocument(ctx context.Context, r io.Reader) (*dataset.Report, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	s.imported = b
	return s.report, s.err
}

type stubQuiz struct {
	services.QuizServiceInterface
	resp       *response_models.QuizSessionResponse
	err        error
	gotRounds  int
	gotChoice  string
	gotSession string
	gotTime    *float64
}

func (s *stubQuiz) Start(ctx context.Context, rounds int) (*response_models.QuizSessionResponse, error) {
	s.gotRounds = rounds
	return s.resp, s.err
}

func (s *stubQuiz) GetSession(ctx context.Context, sessionID string) (*response_models.QuizSessionResponse, error) {
	s.gotSession = sessionID
	return s.resp, s.err
}

func (s *stubQuiz) Choose(ctx context.Context, sessionID, selectedID string, timeToDecision *float64) (*response_models.QuizSessionResponse, error) {
	s.gotSession, s.gotChoice, s.gotTime = sessionID, selectedID, timeToDecision
	return s.resp, s.err
}

type stubResults struct {
	services.ResultsServiceInterface
	profile       *preference.ResultsProfile
	saved         *response_models.SavedResultResponse
	err           error
	gotSelections []preference.Selection
	gotEmail      string
}

func (s *stubResults) Profile(ctx context.Context, sessionID string) (*preference.ResultsProfile, error) {
	return s.profile, s.err
}

func (s *stubResults) Analyze(ctx context.Context, selections []preference.Selection) (*preference.ResultsProfile, error) {
	s.gotSelections = selections
	return s.profile, s.err
}

func (s *stubResults) Save(ctx context.Context, sessionID, email string) (*response_models.SavedResultResponse, error) {
	s.gotEmail = email
	return s.saved, s.err
}

func (s *stubResults) Get(ctx context.Context, resultID string) (*response_models.SavedResultResponse, error) {
	return s.saved, s.err
}

type stubFeedback struct {
	feedback  *response_models.FeedbackResponse
	list      []response_models.FeedbackResponse
	err       error
	gotRating int
	gotPage   int
}

func (s *stubFeedback) AddFeedback(ctx context.Context, resultID string, rating int, comment string) (*response_models.FeedbackResponse, error) {
	s.gotRating = rating
	return s.feedback, s.err
}

func (s *stubFeedback) GetFeedback(ctx context.Context, resultID string, page, pageSize int) ([]response_models.FeedbackResponse, error) {
	s.gotPage = page
	return s.list, s.err
}

type stubTags struct {
	out         []response_models.TagCategoryResponse
	err         error
	gotCategory string
}

func (s *stubTags) GetTagVocabulary(ctx context.Context, category string) ([]response_models.TagCategoryResponse, error) {
	s.gotCategory = category
	return s.out, s.err
}

type stubAuth struct {
	resp *response_models.LoginResponse
	err  error
}

func (s *stubAuth) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	return s.resp, s.err
}
