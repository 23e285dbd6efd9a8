package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thisorthat/internal/models/db_models"
	"thisorthat/pkg/utils"
)

func TestFeedbackService(t *testing.T) {
	ctx := context.Background()
	results := newFakeResultRepo()
	result := &db_models.SavedResult{Profile: []byte(`{}`)}
	require.NoError(t, results.CreateResult(ctx, result))

	svc := NewFeedbackService(&fakeFeedbackRepo{}, results)

	added, err := svc.AddFeedback(ctx, result.ID.String(), 4, "spot on")
	require.NoError(t, err)
	assert.Equal(t, 4, added.Rating)
	assert.NotEmpty(t, added.ID)

	_, err = svc.AddFeedback(ctx, result.ID.String(), 5, "")
	require.NoError(t, err)

	list, err := svc.GetFeedback(ctx, result.ID.String(), 1, 10)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = svc.AddFeedback(ctx, result.ID.String(), 6, "")
	assert.ErrorIs(t, err, utils.ErrInvalidRating)
	_, err = svc.AddFeedback(ctx, uuid.NewString(), 3, "")
	assert.ErrorIs(t, err, utils.ErrResultNotFound)
	_, err = svc.GetFeedback(ctx, "bad", 1, 10)
	assert.ErrorIs(t, err, utils.ErrResultNotFound)
	_, err = svc.GetFeedback(ctx, result.ID.String(), 0, 10)
	assert.ErrorIs(t, err, utils.ErrInvalidPage)
}
