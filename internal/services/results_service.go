package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"thisorthat/internal/metrics"
	"thisorthat/internal/models/db_models"
	"thisorthat/internal/models/response_models"
	"thisorthat/internal/preference"
	"thisorthat/internal/repositories"
	"thisorthat/pkg/utils"
)

type ResultsServiceInterface interface {
	// Profile analyzes the selections recorded so far in a quiz session.
	Profile(ctx context.Context, sessionID string) (*preference.ResultsProfile, error)
	// Analyze runs the engine over caller supplied selections.
	Analyze(ctx context.Context, selections []preference.Selection) (*preference.ResultsProfile, error)
	Save(ctx context.Context, sessionID, email string) (*response_models.SavedResultResponse, error)
	Get(ctx context.Context, resultID string) (*response_models.SavedResultResponse, error)
}

type ResultsService struct {
	quiz       QuizServiceInterface
	catalog    CatalogServiceInterface
	analyzer   *preference.Analyzer
	resultRepo repositories.ResultRepositoryInterface
	metrics    *metrics.Metrics
	logger     *zap.Logger
	now        func() time.Time
}

func NewResultsService(
	quiz QuizServiceInterface,
	catalog CatalogServiceInterface,
	analyzer *preference.Analyzer,
	resultRepo repositories.ResultRepositoryInterface,
	m *metrics.Metrics,
	logger *zap.Logger,
) *ResultsService {
	return &ResultsService{
		quiz:       quiz,
		catalog:    catalog,
		analyzer:   analyzer,
		resultRepo: resultRepo,
		metrics:    m,
		logger:     logger.Named("results"),
		now:        time.Now,
	}
}

func (s *ResultsService) Profile(ctx context.Context, sessionID string) (*preference.ResultsProfile, error) {
	session, err := s.quiz.Session(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.build("session", session.Selections, completedAt(session, s.now))
}

func (s *ResultsService) Analyze(ctx context.Context, selections []preference.Selection) (*preference.ResultsProfile, error) {
	return s.build("analyze", selections, s.now().UTC())
}

func (s *ResultsService) build(source string, selections []preference.Selection, at time.Time) (*preference.ResultsProfile, error) {
	profile, err := s.analyzer.Analyze(selections, s.catalog.Snapshot(), at)
	if err != nil {
		if errors.Is(err, preference.ErrNilSelections) {
			return nil, fmt.Errorf("%w: selections are required", utils.ErrInvalidInput)
		}
		return nil, err
	}
	s.metrics.ProfileBuilt(source, profile.Metadata.SkippedSelections)
	return profile, nil
}

func (s *ResultsService) Save(ctx context.Context, sessionID, email string) (*response_models.SavedResultResponse, error) {
	session, err := s.quiz.Session(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	profile, err := s.build("session", session.Selections, completedAt(session, s.now))
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("encode profile: %w", err)
	}
	row := &db_models.SavedResult{
		Email:           email,
		TotalSelections: profile.Metadata.TotalSelections,
		Profile:         payload,
	}
	if id, err := uuid.Parse(session.ID); err == nil {
		row.SessionID = id
	}
	if err := s.resultRepo.CreateResult(ctx, row); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	s.logger.Info("result saved",
		zap.String("result_id", row.ID.String()),
		zap.String("session_id", sessionID),
		zap.Int("selections", profile.Metadata.TotalSelections))

	return savedResultResponse(row, profile), nil
}

func (s *ResultsService) Get(ctx context.Context, resultID string) (*response_models.SavedResultResponse, error) {
	id, err := uuid.Parse(resultID)
	if err != nil {
		return nil, utils.ErrResultNotFound
	}
	row, err := s.resultRepo.GetResult(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if row == nil {
		return nil, utils.ErrResultNotFound
	}

	var profile preference.ResultsProfile
	if err := json.Unmarshal(row.Profile, &profile); err != nil {
		return nil, fmt.Errorf("decode stored profile %s: %w", row.ID, err)
	}
	return savedResultResponse(row, &profile), nil
}

func completedAt(session QuizSession, now func() time.Time) time.Time {
	if session.CompletedAt != nil {
		return *session.CompletedAt
	}
	return now().UTC()
}

func savedResultResponse(row *db_models.SavedResult, profile *preference.ResultsProfile) *response_models.SavedResultResponse {
	resp := &response_models.SavedResultResponse{
		ID:        row.ID.String(),
		Email:     row.Email,
		CreatedAt: row.CreatedAt,
		Profile:   profile,
	}
	if row.SessionID != uuid.Nil {
		resp.SessionID = row.SessionID.String()
	}
	return resp
}
