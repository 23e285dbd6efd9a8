package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"thisorthat/internal/models/db_models"
	"thisorthat/internal/models/response_models"
	"thisorthat/internal/repositories"
	"thisorthat/pkg/utils"
)

type FeedbackServiceInterface interface {
	AddFeedback(ctx context.Context, resultID string, rating int, comment string) (*response_models.FeedbackResponse, error)
	GetFeedback(ctx context.Context, resultID string, page, pageSize int) ([]response_models.FeedbackResponse, error)
}

type FeedbackService struct {
	feedbackRepo repositories.FeedbackRepositoryInterface
	resultRepo   repositories.ResultRepositoryInterface
}

func NewFeedbackService(
	feedbackRepo repositories.FeedbackRepositoryInterface,
	resultRepo repositories.ResultRepositoryInterface,
) FeedbackServiceInterface {
	return &FeedbackService{feedbackRepo: feedbackRepo, resultRepo: resultRepo}
}

func (s *FeedbackService) AddFeedback(ctx context.Context, resultID string, rating int, comment string) (*response_models.FeedbackResponse, error) {
	if rating < 1 || rating > 5 {
		return nil, utils.ErrInvalidRating
	}
	id, err := s.resolveResult(ctx, resultID)
	if err != nil {
		return nil, err
	}

	feedback := &db_models.ResultFeedback{
		ResultID: id,
		Comment:  comment,
		Rating:   rating,
	}
	if err := s.feedbackRepo.CreateFeedback(ctx, feedback); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	resp := feedbackResponse(*feedback)
	return &resp, nil
}

func (s *FeedbackService) GetFeedback(ctx context.Context, resultID string, page, pageSize int) ([]response_models.FeedbackResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > utils.MaxPageSize {
		return nil, utils.ErrInvalidPageSize
	}
	id, err := s.resolveResult(ctx, resultID)
	if err != nil {
		return nil, err
	}

	rows, err := s.feedbackRepo.ListFeedback(ctx, id, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	out := make([]response_models.FeedbackResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, feedbackResponse(row))
	}
	return out, nil
}

func (s *FeedbackService) resolveResult(ctx context.Context, resultID string) (uuid.UUID, error) {
	id, err := uuid.Parse(resultID)
	if err != nil {
		return uuid.Nil, utils.ErrResultNotFound
	}
	row, err := s.resultRepo.GetResult(ctx, id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if row == nil {
		return uuid.Nil, utils.ErrResultNotFound
	}
	return id, nil
}

func feedbackResponse(row db_models.ResultFeedback) response_models.FeedbackResponse {
	return response_models.FeedbackResponse{
		ID:        row.ID.String(),
		Rating:    row.Rating,
		Comment:   row.Comment,
		CreatedAt: row.CreatedAt,
	}
}
